package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/gridside/funding-cli/internal/form"
)

var evaluateFile string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a single site from a JSON form file",
	Long:  "Runs one funding evaluation without the HTTP server. Reads the form JSON (the formData object) from --file or stdin and prints the model's answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if evaluateFile != "" {
			data, err = os.ReadFile(evaluateFile)
			if err != nil {
				return eris.Wrap(err, "evaluate: read form file")
			}
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return eris.Wrap(err, "evaluate: read stdin")
			}
		}

		var f form.ProjectForm
		if err := json.Unmarshal(data, &f); err != nil {
			return eris.Wrap(err, "evaluate: parse form")
		}

		pipe, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		res, err := pipe.Run(cmd.Context(), f)
		if err != nil {
			return eris.Wrap(err, "evaluate: run pipeline")
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateFile, "file", "", "path to a JSON form file (default: stdin)")
	rootCmd.AddCommand(evaluateCmd)
}
