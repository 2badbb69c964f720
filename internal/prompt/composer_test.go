package prompt

import (
	"strings"
	"testing"

	"github.com/mkale/tutorloop/internal/affect"
	"github.com/mkale/tutorloop/internal/curriculum"
	"github.com/mkale/tutorloop/internal/learner"
	"github.com/mkale/tutorloop/internal/signals"
	"github.com/mkale/tutorloop/internal/store"
)

func baseContext() learner.Context {
	return learner.Context{
		Name:       "Learner",
		SkillLevel: "beginner",
	}
}

func hoursPtr(h float64) *float64 { return &h }

func TestCompose_PersonaAlwaysFirst(t *testing.T) {
	out := Compose(DefaultConfig(), baseContext(), signals.AdaptiveSignals{})
	if !strings.HasPrefix(out, "You are Talo") {
		t.Fatalf("prompt does not open with persona: %q", out[:40])
	}
	if !strings.Contains(out, "Name: Learner\n") {
		t.Error("missing learner name line")
	}
	if !strings.Contains(out, "Skill level: beginner\n") {
		t.Error("missing skill level line")
	}
}

func TestCompose_OmitsEmptySections(t *testing.T) {
	out := Compose(DefaultConfig(), baseContext(), signals.AdaptiveSignals{})

	for _, header := range []string{
		"## Where they are in the curriculum",
		"## Previous sessions",
		"## Returning learner",
		"## Adapt this turn",
	} {
		if strings.Contains(out, header) {
			t.Errorf("section %q emitted with no source data", header)
		}
	}
	if strings.Contains(out, "Learning goal:") {
		t.Error("learning goal line emitted for empty goal")
	}
	if strings.Contains(out, "Progress so far:") {
		t.Error("progress line emitted for zero XP and lessons")
	}
}

func TestCompose_UserContextDetails(t *testing.T) {
	lc := baseContext()
	lc.Name = "Maya"
	lc.SkillLevel = "intermediate"
	lc.TotalXP = 420
	lc.LessonsCompleted = 7
	lc.LearningGoal = "build a web scraper"
	lc.StreakDays = 5
	lc.MasteredConcepts = []string{"variables", "loops"}
	lc.StrugglingConcepts = []string{"recursion"}
	lc.CurrentLesson = &curriculum.FlatLesson{
		Title:    "Recursion Basics",
		Concepts: []string{"recursion", "base case"},
	}

	out := Compose(DefaultConfig(), lc, signals.AdaptiveSignals{})

	for _, want := range []string{
		"Name: Maya\n",
		"Progress so far: 420 XP, 7 lessons completed\n",
		"Learning goal: build a web scraper\n",
		"Current lesson: Recursion Basics (covers: recursion, base case)\n",
		"Concepts mastered: variables, loops\n",
		"Concepts they struggle with: recursion\n",
		"Learning streak: 5 days\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestCompose_ProgressionSection(t *testing.T) {
	lc := baseContext()
	lc.Progression = &curriculum.Progression{
		PathTitle:        "Programming Fundamentals",
		Difficulty:       "beginner",
		OverallPercent:   33,
		CurrentModule:    "Control Flow",
		ModulesCompleted: 1,
		ModulesTotal:     2,
		CurrentLesson:    &curriculum.FlatLesson{Title: "Loops"},
		NextLessons:      []string{"Functions", "Slices"},
		RecentCompleted:  []string{"Conditionals"},
		RecentConcepts:   []string{"if statements", "booleans"},
		ConceptGaps:      []string{"iteration"},
	}

	out := Compose(DefaultConfig(), lc, signals.AdaptiveSignals{})

	for _, want := range []string{
		"## Where they are in the curriculum\n",
		"Path: Programming Fundamentals (beginner) — 33% complete\n",
		"Module: Control Flow (1 of 2 modules finished)\n",
		"Now on: Loops\n",
		"Coming after: Functions → Slices\n",
		"Recently completed: Conditionals\n",
		"Recently learned concepts: if statements, booleans\n",
		"Concept gaps in the current lesson: iteration\n",
		"Build on recently learned concepts",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestCompose_SessionMemoryLabels(t *testing.T) {
	lc := baseContext()
	lc.RecentSummaries = []store.SessionSummaryData{
		{Summary: "Worked through for-loops.", Concepts: []string{"loops"}, UserState: "progressing"},
		{Summary: "Struggled with conditionals.", UserState: "stuck"},
		{Summary: "First intro chat."},
	}

	out := Compose(DefaultConfig(), lc, signals.AdaptiveSignals{})

	for _, want := range []string{
		"Last session: Worked through for-loops. (discussed: loops) [learner was progressing]\n",
		"2 sessions ago: Struggled with conditionals. [learner was stuck]\n",
		"3 sessions ago: First intro chat.\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestCompose_ReturningUserThreshold(t *testing.T) {
	sig := signals.AdaptiveSignals{
		HoursSinceLastChat:  hoursPtr(50),
		LastSessionConcepts: []string{"loops"},
		LastSessionState:    "stuck",
	}

	out := Compose(DefaultConfig(), baseContext(), sig)

	for _, want := range []string{
		"## Returning learner\n",
		"They have been away for 2 day(s).\n",
		"Last time they worked on: loops\n",
		"They left off stuck.\n",
		"Welcome them back warmly",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}

	// Under the threshold the section is absent entirely.
	sig.HoursSinceLastChat = hoursPtr(10)
	out = Compose(DefaultConfig(), baseContext(), sig)
	if strings.Contains(out, "## Returning learner") {
		t.Error("returning section emitted for a 10 hour absence")
	}
}

func TestCompose_AdaptiveDirectives(t *testing.T) {
	sig := signals.AdaptiveSignals{
		Frustration:   affect.Result{Score: 0.6, Level: affect.LevelHigh},
		Pace:          signals.PaceFast,
		WrongAttempts: map[string]int{"recursion": 4, "loops": 1},
	}

	out := Compose(DefaultConfig(), baseContext(), sig)

	if !strings.Contains(out, "## Adapt this turn\n") {
		t.Fatal("adaptive section missing")
	}
	if !strings.Contains(out, "strong signs of frustration") {
		t.Error("missing high-frustration directive")
	}
	if !strings.Contains(out, "replies are very short") {
		t.Error("missing fast-pace directive")
	}
	if !strings.Contains(out, "revisit the fundamentals of recursion") &&
		!strings.Contains(out, "Revisit the fundamentals of recursion") {
		t.Error("missing high-struggle directive for recursion")
	}
	if strings.Contains(out, "fundamentals of loops") {
		t.Error("directive emitted for a concept below the struggle threshold")
	}
}

func TestCompose_MildFrustrationAndSlowPace(t *testing.T) {
	sig := signals.AdaptiveSignals{
		Frustration: affect.Result{Score: 0.3, Level: affect.LevelMild},
		Pace:        signals.PaceSlow,
	}

	out := Compose(DefaultConfig(), baseContext(), sig)

	if !strings.Contains(out, "may be getting frustrated") {
		t.Error("missing mild-frustration directive")
	}
	if !strings.Contains(out, "long and detailed") {
		t.Error("missing slow-pace directive")
	}
}

func TestCompose_Deterministic(t *testing.T) {
	lc := baseContext()
	lc.MasteredConcepts = []string{"loops", "maps"}
	sig := signals.AdaptiveSignals{
		Frustration:   affect.Result{Level: affect.LevelMild},
		WrongAttempts: map[string]int{"recursion": 3},
	}

	first := Compose(DefaultConfig(), lc, sig)
	for i := 0; i < 10; i++ {
		if got := Compose(DefaultConfig(), lc, sig); got != first {
			t.Fatal("composition is not deterministic")
		}
	}
}
