package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-haiku-4-5-20251001",
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": "A slice is a view into an underlying array."},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are Talo, a programming tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "What is a slice?"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 50 {
		t.Fatalf("expected 50 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

// sseEvent writes one server-sent event and flushes it out.
func sseEvent(w http.ResponseWriter, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	w.(http.Flusher).Flush()
}

func anthropicStreamPreamble(w http.ResponseWriter, model string) {
	w.Header().Set("Content-Type", "text/event-stream")
	sseEvent(w, "message_start", fmt.Sprintf(
		`{"type":"message_start","message":{"id":"msg_s","type":"message","role":"assistant","content":[],"model":%q,"stop_reason":null,"usage":{"input_tokens":12,"output_tokens":0}}}`, model))
	sseEvent(w, "content_block_start",
		`{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`)
}

func TestAnthropicProvider_StreamDeliversDeltas(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		anthropicStreamPreamble(w, "claude-haiku-4-5-20251001")
		for _, chunk := range []string{"A loop ", "repeats ", "code."} {
			data, _ := json.Marshal(map[string]any{
				"type":  "content_block_delta",
				"index": 0,
				"delta": map[string]any{"type": "text_delta", "text": chunk},
			})
			sseEvent(w, "content_block_delta", string(data))
		}
		sseEvent(w, "content_block_stop", `{"type":"content_block_stop","index":0}`)
		sseEvent(w, "message_delta",
			`{"type":"message_delta","delta":{"stop_reason":"end_turn","stop_sequence":null},"usage":{"output_tokens":6}}`)
		sseEvent(w, "message_stop", `{"type":"message_stop"}`)
	}

	p := newTestAnthropicProvider(t, handler)
	var got []string
	resp, err := p.GenerateStream(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "what is a loop?"}},
		MaxTokens: 256,
	}, func(delta string) { got = append(got, delta) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != "A loop repeats code." {
		t.Fatalf("content = %q", resp.Content)
	}
	if len(got) != 3 || got[0] != "A loop " {
		t.Fatalf("deltas = %v", got)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicProvider_StreamInterruption(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		anthropicStreamPreamble(w, "claude-haiku-4-5-20251001")
		sseEvent(w, "content_block_delta",
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"A loop "}}`)
		sseEvent(w, "content_block_delta",
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"repeats "}}`)
		// Drop the connection mid-stream.
		panic(http.ErrAbortHandler)
	}

	p := newTestAnthropicProvider(t, handler)
	var delivered string
	resp, err := p.GenerateStream(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "what is a loop?"}},
		MaxTokens: 256,
	}, func(delta string) { delivered += delta })

	var interrupted *ErrStreamInterrupted
	if !errors.As(err, &interrupted) {
		t.Fatalf("expected ErrStreamInterrupted, got %v", err)
	}
	if interrupted.Partial != "A loop repeats " {
		t.Fatalf("Partial = %q", interrupted.Partial)
	}
	if delivered != interrupted.Partial {
		t.Fatalf("delivered %q != partial %q", delivered, interrupted.Partial)
	}
	if resp == nil || resp.StopReason != "interrupted" {
		t.Fatalf("resp = %+v, want interrupted stop reason", resp)
	}
}

func TestAnthropicProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "rate_limit_error",
				"message": "Rate limit exceeded",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "api_error",
				"message": "Internal server error",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-haiku-4-5-20251001"}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Fatalf("expected 'claude-haiku-4-5-20251001', got %q", p.ModelID())
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
