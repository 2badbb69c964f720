package curriculum

import (
	"reflect"
	"testing"
	"time"
)

func fixturePaths() []Path {
	return []Path{
		{
			ID:         "fund",
			Title:      "Programming Fundamentals",
			Difficulty: "beginner",
			Order:      1,
			Modules: []Module{
				{
					ID:    "fund-basics",
					Title: "Basics",
					Order: 1,
					Lessons: []Lesson{
						{ID: "l-vars", Title: "Variables", Order: 1, Concepts: []string{"variables"}},
						{ID: "l-cond", Title: "Conditionals", Order: 2, Concepts: []string{"booleans", "if statements"}},
					},
				},
				{
					ID:    "fund-flow",
					Title: "Control Flow",
					Order: 2,
					Lessons: []Lesson{
						{ID: "l-loops", Title: "Loops", Order: 1, Concepts: []string{"loops", "iteration"}},
						{ID: "l-funcs", Title: "Functions", Order: 2, Concepts: []string{"functions"}},
					},
				},
			},
		},
		{
			ID:         "ds",
			Title:      "Data Structures",
			Difficulty: "intermediate",
			Order:      2,
			Modules: []Module{
				{
					ID:    "ds-linear",
					Title: "Linear Structures",
					Order: 1,
					Lessons: []Lesson{
						{ID: "l-slices", Title: "Slices", Order: 1, Concepts: []string{"slices"}},
					},
				},
			},
		},
	}
}

func completedAt(t time.Time) StatusEntry {
	return StatusEntry{Status: StatusCompleted, CompletedAt: &t}
}

func TestFlatten_KeyOrder(t *testing.T) {
	flat := Flatten(fixturePaths(), nil)
	if len(flat) != 5 {
		t.Fatalf("len = %d, want 5", len(flat))
	}

	wantIDs := []string{"l-vars", "l-cond", "l-loops", "l-funcs", "l-slices"}
	for i, id := range wantIDs {
		if flat[i].ID != id {
			t.Errorf("flat[%d].ID = %s, want %s", i, flat[i].ID, id)
		}
	}
	for i := 1; i < len(flat); i++ {
		if flat[i].Key <= flat[i-1].Key {
			t.Errorf("keys not strictly increasing at %d: %d then %d", i, flat[i-1].Key, flat[i].Key)
		}
	}
	if flat[0].Key != 10101 {
		t.Errorf("first key = %d, want 10101", flat[0].Key)
	}
}

func TestFlatten_StatusOverlayDefaults(t *testing.T) {
	statuses := map[string]StatusEntry{
		"l-vars": {Status: StatusInProgress},
	}
	flat := Flatten(fixturePaths(), statuses)

	if flat[0].Status != StatusInProgress {
		t.Errorf("l-vars status = %s, want in_progress", flat[0].Status)
	}
	if flat[1].Status != StatusNotStarted {
		t.Errorf("lesson without entry defaults to %s, want not_started", flat[1].Status)
	}
}

func TestBuildProgression_EmptyCurriculum(t *testing.T) {
	if p := BuildProgression(nil, nil, nil); p != nil {
		t.Fatalf("got %+v, want nil for empty curriculum", p)
	}
}

func TestBuildProgression_FreshUser(t *testing.T) {
	p := BuildProgression(fixturePaths(), nil, nil)
	if p == nil {
		t.Fatal("nil progression for fresh user")
	}
	if p.CurrentLesson == nil || p.CurrentLesson.ID != "l-vars" {
		t.Fatalf("current = %+v, want first lesson l-vars", p.CurrentLesson)
	}
	if p.PathTitle != "Programming Fundamentals" {
		t.Errorf("PathTitle = %s", p.PathTitle)
	}
	if p.OverallPercent != 0 {
		t.Errorf("OverallPercent = %d, want 0", p.OverallPercent)
	}
	if !reflect.DeepEqual(p.NextLessons, []string{"Conditionals", "Loops", "Functions"}) {
		t.Errorf("NextLessons = %v", p.NextLessons)
	}
}

func TestBuildProgression_InProgressWinsOverNotStarted(t *testing.T) {
	statuses := map[string]StatusEntry{
		"l-loops": {Status: StatusInProgress},
	}
	p := BuildProgression(fixturePaths(), statuses, nil)
	if p.CurrentLesson.ID != "l-loops" {
		t.Fatalf("current = %s, want l-loops ahead of earlier not_started lessons", p.CurrentLesson.ID)
	}
	if p.CurrentModule != "Control Flow" {
		t.Errorf("CurrentModule = %s", p.CurrentModule)
	}
}

func TestBuildProgression_FirstInProgressByKeyWins(t *testing.T) {
	statuses := map[string]StatusEntry{
		"l-slices": {Status: StatusInProgress},
		"l-cond":   {Status: StatusInProgress},
	}
	p := BuildProgression(fixturePaths(), statuses, nil)
	if p.CurrentLesson.ID != "l-cond" {
		t.Fatalf("current = %s, want earliest in_progress by key", p.CurrentLesson.ID)
	}
}

func TestBuildProgression_NextSkipsNonNotStarted(t *testing.T) {
	statuses := map[string]StatusEntry{
		"l-vars":  {Status: StatusInProgress},
		"l-cond":  completedAt(time.Now()),
		"l-loops": {Status: StatusInProgress},
	}
	p := BuildProgression(fixturePaths(), statuses, nil)
	if p.CurrentLesson.ID != "l-vars" {
		t.Fatalf("current = %s", p.CurrentLesson.ID)
	}
	if !reflect.DeepEqual(p.NextLessons, []string{"Functions", "Slices"}) {
		t.Errorf("NextLessons = %v, want only not_started lessons after current", p.NextLessons)
	}
}

func TestBuildProgression_RecentCompletedOrderedByRecency(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	statuses := map[string]StatusEntry{
		"l-vars":  completedAt(base),
		"l-cond":  completedAt(base.Add(48 * time.Hour)),
		"l-loops": completedAt(base.Add(24 * time.Hour)),
	}
	p := BuildProgression(fixturePaths(), statuses, nil)

	want := []string{"Conditionals", "Loops", "Variables"}
	if !reflect.DeepEqual(p.RecentCompleted, want) {
		t.Errorf("RecentCompleted = %v, want %v", p.RecentCompleted, want)
	}
}

func TestBuildProgression_RecentCompletedTieBreaksByKey(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	statuses := map[string]StatusEntry{
		"l-vars": completedAt(base),
		"l-cond": completedAt(base),
	}
	p := BuildProgression(fixturePaths(), statuses, nil)

	want := []string{"Variables", "Conditionals"}
	if !reflect.DeepEqual(p.RecentCompleted, want) {
		t.Errorf("RecentCompleted = %v, want key order on equal timestamps", p.RecentCompleted)
	}
}

func TestBuildProgression_RecentConceptsDeduped(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	paths := fixturePaths()
	// Duplicate concept under different casing in a later lesson.
	paths[0].Modules[1].Lessons[0].Concepts = []string{"Loops", "iteration"}
	statuses := map[string]StatusEntry{
		"l-loops": completedAt(base.Add(time.Hour)),
		"l-vars":  completedAt(base),
	}
	paths[0].Modules[0].Lessons[0].Concepts = []string{"variables", "loops"}

	p := BuildProgression(paths, statuses, nil)

	want := []string{"Loops", "iteration", "variables"}
	if !reflect.DeepEqual(p.RecentConcepts, want) {
		t.Errorf("RecentConcepts = %v, want %v", p.RecentConcepts, want)
	}
}

func TestBuildProgression_ConceptGapsCaseInsensitive(t *testing.T) {
	statuses := map[string]StatusEntry{
		"l-loops": {Status: StatusInProgress},
	}
	p := BuildProgression(fixturePaths(), statuses, []string{"LOOPS"})

	if !reflect.DeepEqual(p.ConceptGaps, []string{"iteration"}) {
		t.Errorf("ConceptGaps = %v, want [iteration]", p.ConceptGaps)
	}
}

func TestBuildProgression_ModuleAndPercentScopedToCurrentPath(t *testing.T) {
	now := time.Now()
	statuses := map[string]StatusEntry{
		"l-vars": completedAt(now),
		"l-cond": completedAt(now),
	}
	p := BuildProgression(fixturePaths(), statuses, nil)

	if p.CurrentLesson.ID != "l-loops" {
		t.Fatalf("current = %s", p.CurrentLesson.ID)
	}
	if p.ModulesCompleted != 1 || p.ModulesTotal != 2 {
		t.Errorf("modules = %d/%d, want 1/2", p.ModulesCompleted, p.ModulesTotal)
	}
	if p.OverallPercent != 50 {
		t.Errorf("OverallPercent = %d, want 50", p.OverallPercent)
	}
}

func TestBuildProgression_EverythingCompleted(t *testing.T) {
	now := time.Now()
	statuses := make(map[string]StatusEntry)
	for _, l := range Flatten(fixturePaths(), nil) {
		statuses[l.ID] = completedAt(now)
	}
	p := BuildProgression(fixturePaths(), statuses, nil)

	if p == nil {
		t.Fatal("nil progression for fully completed curriculum")
	}
	if p.CurrentLesson != nil {
		t.Errorf("CurrentLesson = %+v, want nil when nothing is left", p.CurrentLesson)
	}
	if p.OverallPercent != 100 {
		t.Errorf("OverallPercent = %d, want 100", p.OverallPercent)
	}
	if p.ModulesCompleted != p.ModulesTotal {
		t.Errorf("modules = %d/%d, want all completed", p.ModulesCompleted, p.ModulesTotal)
	}
	if len(p.NextLessons) != 0 {
		t.Errorf("NextLessons = %v, want empty", p.NextLessons)
	}
}

func TestBuildProgression_PercentNeverDecreasesAsLessonsComplete(t *testing.T) {
	paths := DefaultPaths()
	statuses := map[string]StatusEntry{}
	seen := map[string]int{} // highest percent observed per path

	flat := Flatten(paths, nil)
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i, l := range flat {
		done := base.Add(time.Duration(i) * time.Hour)
		statuses[l.ID] = StatusEntry{Status: StatusCompleted, CompletedAt: &done}

		prog := BuildProgression(paths, statuses, nil)
		if prog == nil {
			t.Fatal("BuildProgression returned nil mid-walk")
		}
		if prev := seen[prog.PathTitle]; prog.OverallPercent < prev {
			t.Fatalf("after completing %q: percent for %q dropped %d -> %d",
				l.Title, prog.PathTitle, prev, prog.OverallPercent)
		}
		seen[prog.PathTitle] = prog.OverallPercent
	}

	final := BuildProgression(paths, statuses, nil)
	if final.CurrentLesson != nil {
		t.Errorf("CurrentLesson = %+v, want nil with everything done", final.CurrentLesson)
	}
	if final.OverallPercent != 100 {
		t.Errorf("OverallPercent = %d, want 100", final.OverallPercent)
	}
}

func TestDefaultPaths_WellFormed(t *testing.T) {
	paths := DefaultPaths()
	if len(paths) == 0 {
		t.Fatal("no seed paths")
	}
	seen := make(map[string]bool)
	for _, l := range Flatten(paths, nil) {
		if l.ID == "" || l.Title == "" {
			t.Errorf("lesson with empty ID or title: %+v", l)
		}
		if seen[l.ID] {
			t.Errorf("duplicate lesson ID %s", l.ID)
		}
		seen[l.ID] = true
	}
}
