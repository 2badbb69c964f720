package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/background"
	"github.com/mkale/tutorloop/internal/curriculum"
	"github.com/mkale/tutorloop/internal/learner"
	"github.com/mkale/tutorloop/internal/llm"
	"github.com/mkale/tutorloop/internal/signals"
	"github.com/mkale/tutorloop/internal/store"
	"github.com/mkale/tutorloop/internal/summarize"
)

type memChatRepo struct {
	mu        sync.Mutex
	messages  []store.ChatMessageData
	summaries []store.SessionSummaryData
	appendErr error
}

func (m *memChatRepo) Append(_ context.Context, msg store.ChatMessageData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memChatRepo) Messages(_ context.Context, sessionID string) ([]store.ChatMessageData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.ChatMessageData
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memChatRepo) CountMessages(_ context.Context, sessionID string) (int, error) {
	msgs, _ := m.Messages(context.Background(), sessionID)
	return len(msgs), nil
}

func (m *memChatRepo) RecentSummaries(context.Context, string, int) ([]store.SessionSummaryData, error) {
	return nil, nil
}

func (m *memChatRepo) SaveSummary(_ context.Context, s store.SessionSummaryData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, s)
	return nil
}

func (m *memChatRepo) all() []store.ChatMessageData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]store.ChatMessageData(nil), m.messages...)
}

func (m *memChatRepo) savedSummaries() []store.SessionSummaryData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]store.SessionSummaryData(nil), m.summaries...)
}

type memProfileRepo struct {
	mu      sync.Mutex
	touched []time.Time
}

func (m *memProfileRepo) Get(context.Context, string) (*store.ProfileData, error) { return nil, nil }

func (m *memProfileRepo) Upsert(context.Context, store.ProfileData) error { return nil }

func (m *memProfileRepo) TouchLastChat(_ context.Context, _ string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched = append(m.touched, at)
	return nil
}

func (m *memProfileRepo) touchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.touched)
}

type emptyProgressRepo struct{}

func (emptyProgressRepo) LessonStatuses(context.Context, string) (map[string]curriculum.StatusEntry, error) {
	return nil, nil
}

func (emptyProgressRepo) SetLessonStatus(context.Context, string, string, curriculum.Status, *time.Time) error {
	return nil
}

type emptyMasteryRepo struct{}

func (emptyMasteryRepo) Masteries(context.Context, string) ([]store.ConceptMasteryData, error) {
	return nil, nil
}

func (emptyMasteryRepo) RecordAttempt(context.Context, string, string, bool) error { return nil }

type emptyCurriculumRepo struct{}

func (emptyCurriculumRepo) Published(context.Context) ([]curriculum.Path, error) { return nil, nil }

func (emptyCurriculumRepo) Upsert(context.Context, curriculum.Path) error { return nil }

type harness struct {
	svc      *Service
	chats    *memChatRepo
	profiles *memProfileRepo
	runner   *background.Runner
}

func newHarness(t *testing.T, provider llm.Provider) *harness {
	t.Helper()
	return newHarnessWithConfig(t, provider, DefaultConfig())
}

func newHarnessWithConfig(t *testing.T, provider llm.Provider, cfg Config) *harness {
	t.Helper()
	chats := &memChatRepo{}
	profiles := &memProfileRepo{}
	logger := zap.NewNop()

	assembler := learner.NewAssembler(learner.DefaultConfig(), learner.RepoSet{
		Profiles:   profiles,
		Progress:   emptyProgressRepo{},
		Mastery:    emptyMasteryRepo{},
		Chats:      chats,
		Curriculum: emptyCurriculumRepo{},
	}, logger)
	aggregator := signals.NewAggregator(signals.DefaultConfig(), profiles, emptyMasteryRepo{}, chats, logger)
	summarizer := summarize.NewService(summarize.DefaultConfig(), provider, chats, logger)
	runner := background.NewRunner(4, logger)
	t.Cleanup(runner.Close)

	svc := NewService(cfg, Deps{
		Provider:   provider,
		Chats:      chats,
		Profiles:   profiles,
		Assembler:  assembler,
		Aggregator: aggregator,
		Summarizer: summarizer,
		Runner:     runner,
		Logger:     logger,
	})
	return &harness{svc: svc, chats: chats, profiles: profiles, runner: runner}
}

func TestSend_FullTurn(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("A loop repeats a block of code."),
		Chunks:  []string{"A loop repeats ", "a block of code."},
	})
	h := newHarness(t, provider)
	sess := NewSession("u1")

	var deltas []string
	res, err := h.svc.Send(context.Background(), sess, "what is a loop?", func(d string) {
		deltas = append(deltas, d)
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if res.Reply != "A loop repeats a block of code." {
		t.Errorf("Reply = %q", res.Reply)
	}
	if len(deltas) != 2 || deltas[0] != "A loop repeats " {
		t.Errorf("deltas = %v", deltas)
	}
	if res.Interrupted {
		t.Error("turn marked interrupted")
	}

	h.runner.Close()
	msgs := h.chats.all()
	if len(msgs) != 2 {
		t.Fatalf("persisted %d messages, want user + assistant", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "what is a loop?" {
		t.Errorf("first persisted = %+v, want the user message", msgs[0])
	}
	if msgs[0].FrustrationLevel != "none" {
		t.Errorf("FrustrationLevel = %s, want none for a calm question", msgs[0].FrustrationLevel)
	}
	if msgs[1].Role != "assistant" || msgs[1].Interrupted {
		t.Errorf("second persisted = %+v", msgs[1])
	}
	if h.profiles.touchCount() != 1 {
		t.Errorf("TouchLastChat called %d times, want 1", h.profiles.touchCount())
	}
}

func TestSend_FrustrationRecordedOnUserMessage(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Let's slow down.")})
	h := newHarness(t, provider)
	sess := NewSession("u1")

	res, err := h.svc.Send(context.Background(), sess, "WHY DOESN'T THIS WORK??", func(string) {})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.Frustration.Level != "high" {
		t.Errorf("Frustration.Level = %s, want high", res.Frustration.Level)
	}

	msgs := h.chats.all()
	if msgs[0].FrustrationScore != res.Frustration.Score {
		t.Errorf("persisted score %v != result score %v", msgs[0].FrustrationScore, res.Frustration.Score)
	}
	if msgs[0].FrustrationLevel != "high" {
		t.Errorf("persisted level = %s", msgs[0].FrustrationLevel)
	}
}

func TestSend_ConfiguredThresholdsFlowThrough(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Let's slow down.")})
	cfg := DefaultConfig()
	cfg.Affect.HighThreshold = 0.95
	h := newHarnessWithConfig(t, provider, cfg)
	sess := NewSession("u1")

	// Scores 0.50, high under the defaults but only mild here.
	res, err := h.svc.Send(context.Background(), sess, "WHY DOESN'T THIS WORK??", func(string) {})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.Frustration.Level != "mild" {
		t.Errorf("Frustration.Level = %s, want mild with raised threshold", res.Frustration.Level)
	}
	if msgs := h.chats.all(); msgs[0].FrustrationLevel != "mild" {
		t.Errorf("persisted level = %s, want mild", msgs[0].FrustrationLevel)
	}
}

func TestSend_InterruptedStreamPersistsPartial(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Chunks:    []string{"A loop ", "repeats ", "never seen"},
		FailAfter: 2,
		Err:       errors.New("connection reset"),
	})
	h := newHarness(t, provider)
	sess := NewSession("u1")

	res, err := h.svc.Send(context.Background(), sess, "what is a loop?", func(string) {})

	var interrupted *llm.ErrStreamInterrupted
	if !errors.As(err, &interrupted) {
		t.Fatalf("err = %v, want ErrStreamInterrupted", err)
	}
	if res == nil || !res.Interrupted {
		t.Fatalf("result = %+v, want interrupted result alongside the error", res)
	}
	if res.Reply != "A loop repeats " {
		t.Errorf("Reply = %q, want the accumulated partial", res.Reply)
	}

	h.runner.Close()
	msgs := h.chats.all()
	if len(msgs) != 2 {
		t.Fatalf("persisted %d messages, want user + partial assistant", len(msgs))
	}
	if !msgs[1].Interrupted || msgs[1].Content != "A loop repeats " {
		t.Errorf("assistant row = %+v, want interrupted partial", msgs[1])
	}
}

func TestSend_UserMessageDurabilityIsHard(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("hi")})
	h := newHarness(t, provider)
	h.chats.appendErr = errors.New("disk full")
	sess := NewSession("u1")

	if _, err := h.svc.Send(context.Background(), sess, "hello", func(string) {}); err == nil {
		t.Fatal("Send succeeded with an unrecordable user message")
	}
	if provider.CallCount() != 0 {
		t.Error("generation started before the user message was durable")
	}
}

func TestSend_SummaryTriggeredAtCadence(t *testing.T) {
	reply := llm.MockResponse{Content: json.RawMessage("Sure."), Chunks: []string{"Sure."}}
	summary := llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Covered loops.","concepts":["loops"],"user_state":"progressing"}`),
	}
	provider := llm.NewMockProvider(reply, summary)
	h := newHarness(t, provider)
	sess := NewSession("u1")

	// Four prior messages so this turn lands on message six.
	now := time.Now()
	for i, content := range []string{"hi", "hello!", "loops?", "a loop repeats"} {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		if err := h.chats.Append(context.Background(), store.ChatMessageData{
			SessionID: sess.ID, UserID: sess.UserID, Role: role, Content: content, CreatedAt: now,
		}); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := h.svc.Send(context.Background(), sess, "show me an example", func(string) {}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	h.runner.Close()

	saved := h.chats.savedSummaries()
	if len(saved) != 1 {
		t.Fatalf("saved %d summaries, want 1 at the six-message mark", len(saved))
	}
	if saved[0].SessionID != sess.ID || saved[0].Summary != "Covered loops." {
		t.Errorf("summary = %+v", saved[0])
	}
}

func TestSend_NoSummaryOffCadence(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Hi!")})
	h := newHarness(t, provider)
	sess := NewSession("u1")

	if _, err := h.svc.Send(context.Background(), sess, "hi", func(string) {}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	h.runner.Close()

	if n := len(h.chats.savedSummaries()); n != 0 {
		t.Errorf("saved %d summaries for a two-message session", n)
	}
	// Only the reply call; no summary generation.
	if provider.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", provider.CallCount())
	}
}

func TestNewSession_UniqueIDs(t *testing.T) {
	a, b := NewSession("u1"), NewSession("u1")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("session IDs not unique: %q vs %q", a.ID, b.ID)
	}
}
