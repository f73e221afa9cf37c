package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/gridside/funding-cli/internal/prompt"
)

// OpenAIResponses calls the responses style API, optionally attaching the
// provider's web-search capability. The envelope is a typed output-item
// list; the answer sits in the item tagged as a message.
type OpenAIResponses struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	webSearch   bool
	http        *http.Client
}

// NewOpenAIResponses creates a responses-API adapter.
func NewOpenAIResponses(apiKey, baseURL, model string, temperature float64, webSearch bool) *OpenAIResponses {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIResponses{
		apiKey:      apiKey,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		model:       model,
		temperature: temperature,
		webSearch:   webSearch,
		http: &http.Client{
			Timeout: 180 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *OpenAIResponses) Name() string { return "openai-responses" }

type responsesTool struct {
	Type string `json:"type"`
}

type responsesRequest struct {
	Model        string          `json:"model"`
	Instructions string          `json:"instructions"`
	Input        string          `json:"input"`
	Temperature  float64         `json:"temperature"`
	Tools        []responsesTool `json:"tools,omitempty"`
}

type responsesEnvelope struct {
	Output []outputItem `json:"output"`
}

type outputItem struct {
	Type    string        `json:"type"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Evaluate sends the prompt and scans the output items for the assistant
// message, returning its first text block. No text anywhere yields
// NoResponseSentinel.
func (c *OpenAIResponses) Evaluate(ctx context.Context, p prompt.Prompt) (string, error) {
	reqBody := responsesRequest{
		Model:        c.model,
		Instructions: p.System,
		Input:        p.User,
		Temperature:  c.temperature,
	}
	if c.webSearch {
		reqBody.Tools = []responsesTool{{Type: "web_search"}}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", eris.Wrap(err, "llm: marshal responses request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "llm: create responses request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "llm: send responses request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "llm: read responses body")
	}

	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("llm: responses status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope responsesEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", eris.Wrap(err, "llm: unmarshal responses envelope")
	}

	for _, item := range envelope.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" && strings.TrimSpace(part.Text) != "" {
				return part.Text, nil
			}
		}
	}
	return NoResponseSentinel, nil
}
