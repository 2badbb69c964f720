package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/llm"
	"github.com/mkale/tutorloop/internal/store"
)

func TestShouldSummarize_Cadence(t *testing.T) {
	want := map[int]bool{6: true, 10: true, 14: true, 18: true, 22: true}
	for n := 0; n <= 24; n++ {
		if got := ShouldSummarize(n); got != want[n] {
			t.Errorf("ShouldSummarize(%d) = %v, want %v", n, got, want[n])
		}
	}
	for _, n := range []int{50, 98} {
		if !ShouldSummarize(n) {
			t.Errorf("ShouldSummarize(%d) = false, want true", n)
		}
	}
	for _, n := range []int{51, 99} {
		if ShouldSummarize(n) {
			t.Errorf("ShouldSummarize(%d) = true, want false", n)
		}
	}
}

type fakeChatRepo struct {
	messages    []store.ChatMessageData
	messagesErr error
	saved       []store.SessionSummaryData
	saveErr     error
}

func (f *fakeChatRepo) Append(context.Context, store.ChatMessageData) error { return nil }

func (f *fakeChatRepo) Messages(context.Context, string) ([]store.ChatMessageData, error) {
	return f.messages, f.messagesErr
}

func (f *fakeChatRepo) CountMessages(context.Context, string) (int, error) {
	return len(f.messages), nil
}

func (f *fakeChatRepo) RecentSummaries(context.Context, string, int) ([]store.SessionSummaryData, error) {
	return nil, nil
}

func (f *fakeChatRepo) SaveSummary(_ context.Context, s store.SessionSummaryData) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

func sessionMessages() []store.ChatMessageData {
	return []store.ChatMessageData{
		{Role: "user", Content: "how do for loops work?"},
		{Role: "assistant", Content: "A for loop repeats a block..."},
		{Role: "user", Content: "got it, thanks"},
	}
}

func validSummaryJSON() json.RawMessage {
	return json.RawMessage(`{"summary":"Covered for loops.","concepts":["loops"],"user_state":"progressing"}`)
}

func TestSummarize_PersistsValidSummary(t *testing.T) {
	repo := &fakeChatRepo{messages: sessionMessages()}
	provider := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := NewService(DefaultConfig(), provider, repo, zap.NewNop())

	if err := svc.Summarize(context.Background(), "sess-1", "u1"); err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("saved %d summaries, want 1", len(repo.saved))
	}
	got := repo.saved[0]
	if got.SessionID != "sess-1" || got.UserID != "u1" {
		t.Errorf("identity = %s/%s", got.SessionID, got.UserID)
	}
	if got.Summary != "Covered for loops." || got.UserState != StateProgressing {
		t.Errorf("summary = %+v", got)
	}
	if len(got.Concepts) != 1 || got.Concepts[0] != "loops" {
		t.Errorf("Concepts = %v", got.Concepts)
	}
}

func TestSummarize_EmptySessionIsNoop(t *testing.T) {
	repo := &fakeChatRepo{}
	provider := llm.NewMockProvider()
	svc := NewService(DefaultConfig(), provider, repo, zap.NewNop())

	if err := svc.Summarize(context.Background(), "sess-1", "u1"); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if provider.CallCount() != 0 {
		t.Error("provider called for empty session")
	}
}

func TestSummarize_InvalidOutputDiscardedSilently(t *testing.T) {
	cases := []struct {
		name    string
		content json.RawMessage
	}{
		{"malformed json", json.RawMessage(`not json`)},
		{"empty summary", json.RawMessage(`{"summary":"","concepts":[],"user_state":"stuck"}`)},
		{"unknown state", json.RawMessage(`{"summary":"x","concepts":[],"user_state":"confused"}`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeChatRepo{messages: sessionMessages()}
			provider := llm.NewMockProvider(llm.MockResponse{Content: tc.content})
			svc := NewService(DefaultConfig(), provider, repo, zap.NewNop())

			if err := svc.Summarize(context.Background(), "sess-1", "u1"); err != nil {
				t.Fatalf("invalid output must not surface an error, got %v", err)
			}
			if len(repo.saved) != 0 {
				t.Errorf("invalid summary was persisted: %+v", repo.saved)
			}
		})
	}
}

func TestSummarize_ProviderErrorDiscardedSilently(t *testing.T) {
	repo := &fakeChatRepo{messages: sessionMessages()}
	provider := llm.NewMockProvider(llm.MockResponse{Err: errors.New("model down")})
	svc := NewService(DefaultConfig(), provider, repo, zap.NewNop())

	if err := svc.Summarize(context.Background(), "sess-1", "u1"); err != nil {
		t.Fatalf("provider failure must not surface an error, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Error("summary saved despite provider failure")
	}
}

func TestSummarize_StorageErrorsSurface(t *testing.T) {
	repo := &fakeChatRepo{messagesErr: errors.New("db locked")}
	svc := NewService(DefaultConfig(), llm.NewMockProvider(), repo, zap.NewNop())
	if err := svc.Summarize(context.Background(), "sess-1", "u1"); err == nil {
		t.Error("load failure must surface")
	}

	repo = &fakeChatRepo{messages: sessionMessages(), saveErr: errors.New("db locked")}
	provider := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc = NewService(DefaultConfig(), provider, repo, zap.NewNop())
	if err := svc.Summarize(context.Background(), "sess-1", "u1"); err == nil {
		t.Error("save failure must surface")
	}
}

func TestTranscript_BoundsAndLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTranscriptMessages = 2
	svc := NewService(cfg, llm.NewMockProvider(), &fakeChatRepo{}, zap.NewNop())

	got := svc.transcript(sessionMessages())
	if strings.Contains(got, "how do for loops work?") {
		t.Error("transcript kept a message past the cap")
	}
	if !strings.Contains(got, "Tutor: A for loop repeats a block...") {
		t.Error("assistant turn not labeled Tutor")
	}
	if !strings.Contains(got, "Learner: got it, thanks") {
		t.Error("user turn not labeled Learner")
	}
}

func TestSummarize_TimestampsFromClock(t *testing.T) {
	fixed := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	repo := &fakeChatRepo{messages: sessionMessages()}
	provider := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := NewService(DefaultConfig(), provider, repo, zap.NewNop())
	svc.now = func() time.Time { return fixed }

	if err := svc.Summarize(context.Background(), "sess-1", "u1"); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !repo.saved[0].CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", repo.saved[0].CreatedAt, fixed)
	}
}
