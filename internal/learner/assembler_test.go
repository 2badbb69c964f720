package learner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkale/tutorloop/internal/curriculum"
	"github.com/mkale/tutorloop/internal/store"
)

type mockProfileRepo struct {
	profile *store.ProfileData
	err     error
}

func (m *mockProfileRepo) Get(_ context.Context, _ string) (*store.ProfileData, error) {
	return m.profile, m.err
}
func (m *mockProfileRepo) Upsert(_ context.Context, _ store.ProfileData) error          { return nil }
func (m *mockProfileRepo) TouchLastChat(_ context.Context, _ string, _ time.Time) error { return nil }

type mockProgressRepo struct {
	statuses map[string]curriculum.StatusEntry
	err      error
}

func (m *mockProgressRepo) LessonStatuses(_ context.Context, _ string) (map[string]curriculum.StatusEntry, error) {
	return m.statuses, m.err
}
func (m *mockProgressRepo) SetLessonStatus(_ context.Context, _, _ string, _ curriculum.Status, _ *time.Time) error {
	return nil
}

type mockMasteryRepo struct {
	masteries []store.ConceptMasteryData
	err       error
}

func (m *mockMasteryRepo) Masteries(_ context.Context, _ string) ([]store.ConceptMasteryData, error) {
	return m.masteries, m.err
}
func (m *mockMasteryRepo) RecordAttempt(_ context.Context, _, _ string, _ bool) error { return nil }

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

type mockCurriculumRepo struct {
	paths []curriculum.Path
	err   error
}

func (m *mockCurriculumRepo) Published(_ context.Context) ([]curriculum.Path, error) {
	return m.paths, m.err
}
func (m *mockCurriculumRepo) Upsert(_ context.Context, _ curriculum.Path) error { return nil }

func testPaths() []curriculum.Path {
	return []curriculum.Path{
		{
			ID: "p1", Title: "Fundamentals", Difficulty: "beginner", Order: 1,
			Modules: []curriculum.Module{
				{
					ID: "m1", Title: "Basics", Order: 1,
					Lessons: []curriculum.Lesson{
						{ID: "l1", Title: "Intro", Order: 1, Concepts: []string{"programs"}},
						{ID: "l2", Title: "Variables", Order: 2, Concepts: []string{"variables"}},
						{ID: "l3", Title: "Loops", Order: 3, Concepts: []string{"loops", "iteration"}},
					},
				},
			},
		},
	}
}

func newAssembler(p *mockProfileRepo, pr *mockProgressRepo, ma *mockMasteryRepo, c *mockChatRepo, cu *mockCurriculumRepo) *Assembler {
	return NewAssembler(DefaultConfig(), RepoSet{
		Profiles:   p,
		Progress:   pr,
		Mastery:    ma,
		Chats:      c,
		Curriculum: cu,
	}, nil)
}

func TestAssemble_ProfileDefaults(t *testing.T) {
	a := newAssembler(&mockProfileRepo{}, &mockProgressRepo{}, &mockMasteryRepo{}, &mockChatRepo{}, &mockCurriculumRepo{})

	lc := a.Assemble(context.Background(), "u1", "")
	if lc.Name != "Learner" {
		t.Errorf("Name = %q, want Learner", lc.Name)
	}
	if lc.SkillLevel != "beginner" {
		t.Errorf("SkillLevel = %q, want beginner", lc.SkillLevel)
	}
	if lc.StreakDays != 0 || lc.TotalXP != 0 || lc.LastChatAt != nil {
		t.Error("zero-value defaults expected for missing profile")
	}
}

func TestAssemble_ProfileReadFailureFallsBackToDefaults(t *testing.T) {
	a := newAssembler(
		&mockProfileRepo{err: errors.New("down")},
		&mockProgressRepo{}, &mockMasteryRepo{}, &mockChatRepo{}, &mockCurriculumRepo{},
	)

	lc := a.Assemble(context.Background(), "u1", "")
	if lc.Name != "Learner" || lc.SkillLevel != "beginner" {
		t.Errorf("defaults not applied on read failure: %+v", lc)
	}
}

func TestAssemble_MasteryBuckets(t *testing.T) {
	a := newAssembler(
		&mockProfileRepo{},
		&mockProgressRepo{},
		&mockMasteryRepo{masteries: []store.ConceptMasteryData{
			{Concept: "loops", MasteryLevel: 85, PracticeCount: 10, CorrectCount: 9},
			{Concept: "maps", MasteryLevel: 70, PracticeCount: 4, CorrectCount: 3},
			{Concept: "recursion", MasteryLevel: 20, PracticeCount: 3, CorrectCount: 1},
			{Concept: "interfaces", MasteryLevel: 10, PracticeCount: 0, CorrectCount: 0},
			{Concept: "slices", MasteryLevel: 55, PracticeCount: 5, CorrectCount: 3},
		}},
		&mockChatRepo{}, &mockCurriculumRepo{},
	)

	lc := a.Assemble(context.Background(), "u1", "")
	if len(lc.MasteredConcepts) != 2 {
		t.Errorf("MasteredConcepts = %v, want loops and maps", lc.MasteredConcepts)
	}
	if len(lc.StrugglingConcepts) != 1 || lc.StrugglingConcepts[0] != "recursion" {
		t.Errorf("StrugglingConcepts = %v, want [recursion]", lc.StrugglingConcepts)
	}
}

func TestAssemble_CurrentLessonFromProgression(t *testing.T) {
	a := newAssembler(
		&mockProfileRepo{},
		&mockProgressRepo{statuses: map[string]curriculum.StatusEntry{
			"l1": {Status: curriculum.StatusCompleted},
			"l2": {Status: curriculum.StatusInProgress},
		}},
		&mockMasteryRepo{}, &mockChatRepo{},
		&mockCurriculumRepo{paths: testPaths()},
	)

	lc := a.Assemble(context.Background(), "u1", "")
	if lc.CurrentLesson == nil || lc.CurrentLesson.ID != "l2" {
		t.Fatalf("CurrentLesson = %+v, want l2", lc.CurrentLesson)
	}
	if lc.Progression == nil {
		t.Fatal("Progression = nil, want built")
	}
}

func TestAssemble_ExplicitLessonTakesPrecedence(t *testing.T) {
	a := newAssembler(
		&mockProfileRepo{},
		&mockProgressRepo{statuses: map[string]curriculum.StatusEntry{
			"l2": {Status: curriculum.StatusInProgress},
		}},
		&mockMasteryRepo{}, &mockChatRepo{},
		&mockCurriculumRepo{paths: testPaths()},
	)

	lc := a.Assemble(context.Background(), "u1", "l3")
	if lc.CurrentLesson == nil || lc.CurrentLesson.ID != "l3" {
		t.Fatalf("CurrentLesson = %+v, want l3", lc.CurrentLesson)
	}
}

func TestAssemble_UnknownExplicitLessonFallsBack(t *testing.T) {
	a := newAssembler(
		&mockProfileRepo{},
		&mockProgressRepo{statuses: map[string]curriculum.StatusEntry{
			"l2": {Status: curriculum.StatusInProgress},
		}},
		&mockMasteryRepo{}, &mockChatRepo{},
		&mockCurriculumRepo{paths: testPaths()},
	)

	lc := a.Assemble(context.Background(), "u1", "missing")
	if lc.CurrentLesson == nil || lc.CurrentLesson.ID != "l2" {
		t.Fatalf("CurrentLesson = %+v, want fallback to l2", lc.CurrentLesson)
	}
}

func TestAssemble_AlwaysProducesContext(t *testing.T) {
	boom := errors.New("storage down")
	a := newAssembler(
		&mockProfileRepo{err: boom},
		&mockProgressRepo{err: boom},
		&mockMasteryRepo{err: boom},
		&mockChatRepo{err: boom},
		&mockCurriculumRepo{err: boom},
	)

	lc := a.Assemble(context.Background(), "u1", "")
	if lc.Name != "Learner" {
		t.Errorf("Name = %q, want Learner", lc.Name)
	}
	if lc.Progression != nil {
		t.Error("Progression should be nil with no curriculum")
	}
}
