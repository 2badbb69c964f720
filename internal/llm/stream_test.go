package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_StreamDeliversChunksInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Chunks: []string{"Hello", ", ", "world"}},
	)

	var got []string
	resp, err := mock.GenerateStream(context.Background(), Request{}, func(delta string) {
		got = append(got, delta)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != "Hello, world" {
		t.Fatalf("accumulated content = %q, want %q", resp.Content, "Hello, world")
	}
	if len(got) != 3 || got[0] != "Hello" || got[2] != "world" {
		t.Fatalf("chunks = %v", got)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestMockProvider_StreamInterruption(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Chunks:    []string{"partial ", "output ", "never seen"},
			FailAfter: 2,
			Err:       errors.New("connection reset"),
		},
	)

	var delivered string
	resp, err := mock.GenerateStream(context.Background(), Request{}, func(delta string) {
		delivered += delta
	})

	var interrupted *ErrStreamInterrupted
	if !errors.As(err, &interrupted) {
		t.Fatalf("expected ErrStreamInterrupted, got %v", err)
	}
	if interrupted.Partial != "partial output " {
		t.Fatalf("Partial = %q, want %q", interrupted.Partial, "partial output ")
	}
	if delivered != "partial output " {
		t.Fatalf("delivered = %q", delivered)
	}
	if resp == nil || resp.StopReason != "interrupted" {
		t.Fatalf("resp = %+v, want interrupted stop reason", resp)
	}
	if string(resp.Content) != interrupted.Partial {
		t.Fatalf("response content %q != partial %q", resp.Content, interrupted.Partial)
	}
}

func TestRetry_DoesNotRetryStreams(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Chunks:    []string{"a", "b"},
			FailAfter: 1,
			Err:       errors.New("mid-stream failure"),
		},
		MockResponse{Chunks: []string{"should not be used"}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.GenerateStream(context.Background(), Request{}, func(string) {})

	var interrupted *ErrStreamInterrupted
	if !errors.As(err, &interrupted) {
		t.Fatalf("expected ErrStreamInterrupted, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (streams are never retried), got %d", mock.CallCount())
	}
}
