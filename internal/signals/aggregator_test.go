package signals

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mkale/tutorloop/internal/affect"
	"github.com/mkale/tutorloop/internal/store"
)

// mockProfileRepo implements store.ProfileRepo for testing.
type mockProfileRepo struct {
	profile *store.ProfileData
	err     error
}

func (m *mockProfileRepo) Get(_ context.Context, _ string) (*store.ProfileData, error) {
	return m.profile, m.err
}
func (m *mockProfileRepo) Upsert(_ context.Context, _ store.ProfileData) error { return nil }
func (m *mockProfileRepo) TouchLastChat(_ context.Context, _ string, _ time.Time) error {
	return nil
}

// mockMasteryRepo implements store.MasteryRepo for testing.
type mockMasteryRepo struct {
	masteries []store.ConceptMasteryData
	err       error
}

func (m *mockMasteryRepo) Masteries(_ context.Context, _ string) ([]store.ConceptMasteryData, error) {
	return m.masteries, m.err
}
func (m *mockMasteryRepo) RecordAttempt(_ context.Context, _, _ string, _ bool) error { return nil }

// mockChatRepo implements store.ChatRepo for testing.
type mockChatRepo struct {
	summaries []store.SessionSummaryData
	err       error
}

func (m *mockChatRepo) Append(_ context.Context, _ store.ChatMessageData) error { return nil }
func (m *mockChatRepo) Messages(_ context.Context, _ string) ([]store.ChatMessageData, error) {
	return nil, nil
}
func (m *mockChatRepo) CountMessages(_ context.Context, _ string) (int, error) { return 0, nil }
func (m *mockChatRepo) RecentSummaries(_ context.Context, _ string, limit int) ([]store.SessionSummaryData, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.summaries) > limit {
		return m.summaries[:limit], nil
	}
	return m.summaries, nil
}
func (m *mockChatRepo) SaveSummary(_ context.Context, _ store.SessionSummaryData) error { return nil }

func newAggregator(p *mockProfileRepo, ma *mockMasteryRepo, c *mockChatRepo) *Aggregator {
	return NewAggregator(DefaultConfig(), p, ma, c, nil)
}

func userTurns(contents ...string) []affect.Turn {
	turns := make([]affect.Turn, len(contents))
	for i, c := range contents {
		turns[i] = affect.Turn{Role: affect.RoleUser, Content: c}
	}
	return turns
}

func TestAggregate_PaceDefaultsWithFewMessages(t *testing.T) {
	agg := newAggregator(&mockProfileRepo{}, &mockMasteryRepo{}, &mockChatRepo{})

	sig := agg.Aggregate(context.Background(), "u1", userTurns("hi", "ok"), affect.Result{}, time.Now())
	if sig.Pace != PaceNormal {
		t.Errorf("Pace = %s, want normal with < 3 user messages", sig.Pace)
	}
}

func TestAggregate_PaceFast(t *testing.T) {
	agg := newAggregator(&mockProfileRepo{}, &mockMasteryRepo{}, &mockChatRepo{})

	sig := agg.Aggregate(context.Background(), "u1", userTurns("ok", "yes", "sure"), affect.Result{}, time.Now())
	if sig.Pace != PaceFast {
		t.Errorf("Pace = %s, want fast", sig.Pace)
	}
}

func TestAggregate_PaceSlow(t *testing.T) {
	long := strings.Repeat("a detailed question about interfaces ", 5)
	agg := newAggregator(&mockProfileRepo{}, &mockMasteryRepo{}, &mockChatRepo{})

	sig := agg.Aggregate(context.Background(), "u1", userTurns(long, long, long), affect.Result{}, time.Now())
	if sig.Pace != PaceSlow {
		t.Errorf("Pace = %s, want slow", sig.Pace)
	}
}

func TestAggregate_PaceIgnoresAssistantTurns(t *testing.T) {
	history := []affect.Turn{
		{Role: affect.RoleUser, Content: "ok"},
		{Role: affect.RoleAssistant, Content: strings.Repeat("long assistant text ", 20)},
		{Role: affect.RoleUser, Content: "yes"},
		{Role: affect.RoleUser, Content: "sure"},
	}
	agg := newAggregator(&mockProfileRepo{}, &mockMasteryRepo{}, &mockChatRepo{})

	sig := agg.Aggregate(context.Background(), "u1", history, affect.Result{}, time.Now())
	if sig.Pace != PaceFast {
		t.Errorf("Pace = %s, want fast (assistant lengths excluded)", sig.Pace)
	}
}

func TestAggregate_HoursSinceLastChat(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	last := now.Add(-50 * time.Hour)
	agg := newAggregator(
		&mockProfileRepo{profile: &store.ProfileData{UserID: "u1", LastChatAt: &last}},
		&mockMasteryRepo{},
		&mockChatRepo{},
	)

	sig := agg.Aggregate(context.Background(), "u1", nil, affect.Result{}, now)
	if sig.HoursSinceLastChat == nil {
		t.Fatal("HoursSinceLastChat = nil, want 50")
	}
	if *sig.HoursSinceLastChat != 50 {
		t.Errorf("HoursSinceLastChat = %f, want 50", *sig.HoursSinceLastChat)
	}
}

func TestAggregate_NeverChatted(t *testing.T) {
	agg := newAggregator(
		&mockProfileRepo{profile: &store.ProfileData{UserID: "u1"}},
		&mockMasteryRepo{},
		&mockChatRepo{},
	)

	sig := agg.Aggregate(context.Background(), "u1", nil, affect.Result{}, time.Now())
	if sig.HoursSinceLastChat != nil {
		t.Errorf("HoursSinceLastChat = %v, want nil", *sig.HoursSinceLastChat)
	}
}

func TestAggregate_WrongAttempts(t *testing.T) {
	agg := newAggregator(
		&mockProfileRepo{},
		&mockMasteryRepo{masteries: []store.ConceptMasteryData{
			{Concept: "loops", PracticeCount: 5, CorrectCount: 1},      // 4 wrong
			{Concept: "maps", PracticeCount: 3, CorrectCount: 3},       // clean
			{Concept: "recursion", PracticeCount: 2, CorrectCount: 0},  // 2 wrong
			{Concept: "untouched", PracticeCount: 0, CorrectCount: 0},  // never practiced
		}},
		&mockChatRepo{},
	)

	sig := agg.Aggregate(context.Background(), "u1", nil, affect.Result{}, time.Now())
	if sig.WrongAttempts["loops"] != 4 {
		t.Errorf("WrongAttempts[loops] = %d, want 4", sig.WrongAttempts["loops"])
	}
	if _, ok := sig.WrongAttempts["maps"]; ok {
		t.Error("concepts with no wrong attempts should be excluded")
	}
	if _, ok := sig.WrongAttempts["untouched"]; ok {
		t.Error("unpracticed concepts should be excluded")
	}

	high := sig.HighStruggleConcepts(3)
	if len(high) != 1 || high[0] != "loops" {
		t.Errorf("HighStruggleConcepts = %v, want [loops]", high)
	}
}

func TestAggregate_RecentSummaries(t *testing.T) {
	summaries := []store.SessionSummaryData{
		{Summary: "newest", Concepts: []string{"maps", "slices"}, UserState: "progressing"},
		{Summary: "older", UserState: "stuck"},
	}
	agg := newAggregator(&mockProfileRepo{}, &mockMasteryRepo{}, &mockChatRepo{summaries: summaries})

	sig := agg.Aggregate(context.Background(), "u1", nil, affect.Result{}, time.Now())
	if len(sig.RecentSummaries) != 2 {
		t.Fatalf("RecentSummaries len = %d, want 2", len(sig.RecentSummaries))
	}
	if sig.LastSessionState != "progressing" {
		t.Errorf("LastSessionState = %q, want progressing", sig.LastSessionState)
	}
	if len(sig.LastSessionConcepts) != 2 {
		t.Errorf("LastSessionConcepts = %v", sig.LastSessionConcepts)
	}
}

func TestAggregate_DegradesOnStorageFailures(t *testing.T) {
	boom := errors.New("storage down")
	agg := newAggregator(
		&mockProfileRepo{err: boom},
		&mockMasteryRepo{err: boom},
		&mockChatRepo{err: boom},
	)

	fr := affect.Result{Score: 0.3, Level: affect.LevelMild}
	sig := agg.Aggregate(context.Background(), "u1", userTurns("ok", "yes", "no"), fr, time.Now())

	// Partial signals: pace and frustration still computed.
	if sig.Pace != PaceFast {
		t.Errorf("Pace = %s, want fast", sig.Pace)
	}
	if sig.Frustration.Level != affect.LevelMild {
		t.Errorf("Frustration.Level = %s, want mild", sig.Frustration.Level)
	}
	if sig.HoursSinceLastChat != nil || sig.WrongAttempts != nil || sig.RecentSummaries != nil {
		t.Error("failed reads should yield empty defaults")
	}
}
