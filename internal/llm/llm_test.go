package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridside/funding-cli/internal/config"
	"github.com/gridside/funding-cli/internal/prompt"
)

var testPrompt = prompt.Prompt{System: "You are a consultant.", User: "Evaluate this site."}

func TestNewSelectsProvider(t *testing.T) {
	t.Parallel()

	p, err := New(config.LLM{Provider: "openai-chat"})
	require.NoError(t, err)
	assert.Equal(t, "openai-chat", p.Name())

	p, err = New(config.LLM{Provider: "openai-responses"})
	require.NoError(t, err)
	assert.Equal(t, "openai-responses", p.Name())

	p, err = New(config.LLM{Provider: "anthropic"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())

	// Empty provider defaults to chat style.
	p, err = New(config.LLM{})
	require.NoError(t, err)
	assert.Equal(t, "openai-chat", p.Name())

	_, err = New(config.LLM{Provider: "mystery"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestOpenAIChatEvaluate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req.Model)
		assert.InDelta(t, 0.2, req.Temperature, 0.001)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "You are a consultant.", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Funding summary here."}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat("test-key", srv.URL, "gpt-4", 0.2, 2048)
	got, err := c.Evaluate(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, "Funding summary here.", got)
}

func TestOpenAIChatEmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat("k", srv.URL, "gpt-4", 0.2, 0)
	got, err := c.Evaluate(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, NoResponseSentinel, got)
}

func TestOpenAIChatProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat("k", srv.URL, "gpt-4", 0.2, 0)
	_, err := c.Evaluate(context.Background(), testPrompt)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestOpenAIResponsesEvaluate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/responses", r.URL.Path)

		var req responsesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "You are a consultant.", req.Instructions)
		require.Len(t, req.Tools, 1)
		assert.Equal(t, "web_search", req.Tools[0].Type)

		// Output mixes tool-call items with the assistant message.
		w.Write([]byte(`{"output":[
			{"type":"web_search_call"},
			{"type":"message","content":[{"type":"output_text","text":"Answer from responses API."}]}
		]}`))
	}))
	defer srv.Close()

	c := NewOpenAIResponses("k", srv.URL, "gpt-4.1", 0.2, true)
	got, err := c.Evaluate(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, "Answer from responses API.", got)
}

func TestOpenAIResponsesNoMessageItem(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req responsesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Empty(t, req.Tools, "web search disabled must send no tools")

		w.Write([]byte(`{"output":[{"type":"web_search_call"}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIResponses("k", srv.URL, "gpt-4.1", 0.2, false)
	got, err := c.Evaluate(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, NoResponseSentinel, got)
}

func TestAnthropicEvaluate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/messages"), "unexpected path %s", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5-20250929",
			"content": [{"type": "text", "text": "Anthropic answer."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer srv.Close()

	c := NewAnthropic("k", "claude-sonnet-4-5-20250929", 0.2, 1024, option.WithBaseURL(srv.URL))
	got, err := c.Evaluate(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, "Anthropic answer.", got)
}

func TestAnthropicEmptyContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_2",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5-20250929",
			"content": [],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 0}
		}`))
	}))
	defer srv.Close()

	c := NewAnthropic("k", "claude-sonnet-4-5-20250929", 0.2, 1024, option.WithBaseURL(srv.URL))
	got, err := c.Evaluate(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.Equal(t, NoResponseSentinel, got)
}

func TestAnthropicProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"bad key"}}`))
	}))
	defer srv.Close()

	c := NewAnthropic("bad", "claude-sonnet-4-5-20250929", 0.2, 1024, option.WithBaseURL(srv.URL))
	_, err := c.Evaluate(context.Background(), testPrompt)
	require.Error(t, err)
}
