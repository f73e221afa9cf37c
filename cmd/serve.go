package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridside/funding-cli/internal/evaluate"
	"github.com/gridside/funding-cli/internal/form"
)

// evalErrorMessage is the only failure detail callers ever see; root causes
// stay in server logs.
const evalErrorMessage = "Failed to evaluate funding eligibility."

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the evaluation HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pipe, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Post("/api/evaluate", evaluateHandler(pipe))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// evaluateRequest mirrors the wire body: the form nested under "formData".
type evaluateRequest struct {
	FormData form.ProjectForm `json:"formData"`
}

// evaluateHandler runs the pipeline for one request. Scrape and search
// trouble degrades inside the pipeline; only a model failure produces the
// fixed 500 body.
func evaluateHandler(pipe *evaluate.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		log := zap.L().With(zap.String("request_id", reqID))

		var req evaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("evaluate: invalid request body", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		res, err := pipe.Run(r.Context(), req.FormData)
		if err != nil {
			log.Error("evaluate: pipeline failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": evalErrorMessage})
			return
		}

		log.Info("evaluate: request complete",
			zap.Int("links", res.Links),
			zap.Int("sources_failed", res.SourcesFailed),
		)
		writeJSON(w, http.StatusOK, map[string]string{"result": res.Text})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
