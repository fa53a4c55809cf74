package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projgen/model"
	"projgen/provider/testutil"
)

const stepReply = `{"step":"final","content":"ok"}`

// captured holds the decoded body of the last request a fake server received.
type captured struct {
	path string
	body map[string]any
}

func fakeServer(t *testing.T, status int, respond func(w http.ResponseWriter)) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &c.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		respond(w)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func openAIResponse(w http.ResponseWriter) {
	resp := map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []any{map[string]any{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": stepReply},
		}},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func anthropicResponse(w http.ResponseWriter) {
	resp := map[string]any{
		"id":            "msg_1",
		"type":          "message",
		"role":          "assistant",
		"model":         "test-model",
		"stop_reason":   "end_turn",
		"stop_sequence": nil,
		"content":       []any{map[string]any{"type": "text", "text": stepReply}},
		"usage":         map[string]any{"input_tokens": 1, "output_tokens": 1},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func ollamaResponse(w http.ResponseWriter) {
	resp := map[string]any{
		"model":      "test-model",
		"created_at": time.Now().UTC().Format(time.RFC3339),
		"message":    map[string]any{"role": "assistant", "content": stepReply},
		"done":       true,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// TestProviderContract checks every provider returns the raw reply text for a
// conversation and identifies itself.
func TestProviderContract(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	openaiSrv, openaiReq := fakeServer(t, http.StatusOK, openAIResponse)
	anthropicSrv, anthropicReq := fakeServer(t, http.StatusOK, anthropicResponse)
	ollamaSrv, ollamaReq := fakeServer(t, http.StatusOK, ollamaResponse)

	ollamaProvider, err := NewOllamaProvider(ollamaSrv.URL, "test-model")
	require.NoError(t, err)

	tests := []struct {
		name     string
		provider model.Provider
		req      *captured
		wantPath string
		check    func(t *testing.T, body map[string]any)
	}{
		{
			name:     "groq",
			provider: NewOpenAIProvider("groq", openaiSrv.URL, "key", "test-model"),
			req:      openaiReq,
			wantPath: "/chat/completions",
			check: func(t *testing.T, body map[string]any) {
				format, ok := body["response_format"].(map[string]any)
				require.True(t, ok, "response_format missing")
				assert.Equal(t, "json_object", format["type"])
				assert.Len(t, body["messages"], 3)
			},
		},
		{
			name:     "anthropic",
			provider: NewAnthropicProvider(anthropicSrv.URL, "key", "test-model"),
			req:      anthropicReq,
			wantPath: "/v1/messages",
			check: func(t *testing.T, body map[string]any) {
				raw, _ := json.Marshal(body["system"])
				assert.Contains(t, string(raw), "exactly one JSON object")
				msgs, ok := body["messages"].([]any)
				require.True(t, ok)
				last := msgs[len(msgs)-1].(map[string]any)
				assert.Equal(t, "user", last["role"])
			},
		},
		{
			name:     "ollama",
			provider: ollamaProvider,
			req:      ollamaReq,
			wantPath: "/api/chat",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "json", body["format"])
				assert.Equal(t, false, body["stream"])
			},
		},
		{
			name:     "mock",
			provider: testutil.NewScriptedProvider(stepReply),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := tt.provider.RunQuery(ctx, testutil.TestMessages())
			require.NoError(t, err)
			assert.Equal(t, stepReply, strings.TrimSpace(reply))
			assert.NotEmpty(t, tt.provider.Name())
			assert.NotEmpty(t, tt.provider.GetModel())

			if tt.req != nil {
				assert.Equal(t, tt.wantPath, tt.req.path)
				tt.check(t, tt.req.body)
			}
		})
	}
}

func TestOpenAIProviderHTTPError(t *testing.T) {
	srv, _ := fakeServer(t, http.StatusUnauthorized, func(w http.ResponseWriter) {
		_, _ = io.WriteString(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	})

	p := NewOpenAIProvider("gemini", srv.URL, "wrong", "test-model")
	_, err := p.RunQuery(context.Background(), testutil.SingleUserMessage("hi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini request failed")
}

func TestOpenAIProviderNoChoices(t *testing.T) {
	srv, _ := fakeServer(t, http.StatusOK, func(w http.ResponseWriter) {
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`)
	})

	p := NewOpenAIProvider("groq", srv.URL, "key", "test-model")
	_, err := p.RunQuery(context.Background(), testutil.SingleUserMessage("hi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
