// Package prompt renders the assembled context and adaptive signals
// into the tutor's system instruction. Composition is a pure function:
// identical inputs produce byte-identical output, which the tests
// assert directly.
package prompt

import (
	"fmt"
	"math"
	"strings"

	"github.com/mkale/tutorloop/internal/affect"
	"github.com/mkale/tutorloop/internal/learner"
	"github.com/mkale/tutorloop/internal/signals"
)

// Config holds the composer's adaptive thresholds.
type Config struct {
	// ReturningUserHours is the absence, in hours, after which the
	// returning-user section is emitted.
	ReturningUserHours float64

	// HighStruggleAttempts is the wrong-attempt count at which a
	// concept earns a dedicated directive.
	HighStruggleAttempts int
}

// DefaultConfig returns the standard composition parameters.
func DefaultConfig() Config {
	return Config{
		ReturningUserHours:   24,
		HighStruggleAttempts: 3,
	}
}

// personaBlock is the fixed persona and style section. Always first.
const personaBlock = `You are Talo, a friendly and patient programming tutor.
Your teaching style:
- Explain concepts in plain language before introducing terminology.
- Use short, concrete examples rather than abstract descriptions.
- Ask one guiding question at a time instead of lecturing.
- Celebrate progress specifically, not generically.
- Never make the learner feel bad for not knowing something.`

// Compose renders the system instruction from the learner context and
// the turn's adaptive signals. Sections appear in a fixed order and are
// included only when their source data is non-empty.
func Compose(cfg Config, lc learner.Context, sig signals.AdaptiveSignals) string {
	var b strings.Builder

	b.WriteString(personaBlock)
	writeUserContext(&b, lc)
	writeProgression(&b, lc)
	writeSessionMemory(&b, lc)
	writeReturningUser(&b, cfg, sig)
	writeAdaptive(&b, cfg, sig)

	return b.String()
}

func writeUserContext(b *strings.Builder, lc learner.Context) {
	b.WriteString("\n\n## About the learner\n")
	fmt.Fprintf(b, "Name: %s\n", lc.Name)
	fmt.Fprintf(b, "Skill level: %s\n", lc.SkillLevel)
	if lc.TotalXP > 0 || lc.LessonsCompleted > 0 {
		fmt.Fprintf(b, "Progress so far: %d XP, %d lessons completed\n", lc.TotalXP, lc.LessonsCompleted)
	}
	if lc.LearningGoal != "" {
		fmt.Fprintf(b, "Learning goal: %s\n", lc.LearningGoal)
	}
	if lc.CurrentLesson != nil {
		fmt.Fprintf(b, "Current lesson: %s", lc.CurrentLesson.Title)
		if len(lc.CurrentLesson.Concepts) > 0 {
			fmt.Fprintf(b, " (covers: %s)", strings.Join(lc.CurrentLesson.Concepts, ", "))
		}
		b.WriteString("\n")
	}
	if len(lc.MasteredConcepts) > 0 {
		fmt.Fprintf(b, "Concepts mastered: %s\n", strings.Join(lc.MasteredConcepts, ", "))
	}
	if len(lc.StrugglingConcepts) > 0 {
		fmt.Fprintf(b, "Concepts they struggle with: %s\n", strings.Join(lc.StrugglingConcepts, ", "))
	}
	if lc.StreakDays > 0 {
		fmt.Fprintf(b, "Learning streak: %d days\n", lc.StreakDays)
	}
}

// progressionDirectives is the fixed teaching guidance attached to the
// progression section.
const progressionDirectives = `Teaching guidance:
- Build on recently learned concepts when explaining new ones.
- If the learner asks about a concept from an upcoming lesson, give a light preview and note it is coming up.
- Close concept gaps through the current lesson before moving ahead.
- Keep explanations anchored to where the learner is in the path.`

func writeProgression(b *strings.Builder, lc learner.Context) {
	p := lc.Progression
	if p == nil {
		return
	}

	b.WriteString("\n## Where they are in the curriculum\n")
	fmt.Fprintf(b, "Path: %s (%s) — %d%% complete\n", p.PathTitle, p.Difficulty, p.OverallPercent)
	if p.CurrentModule != "" {
		fmt.Fprintf(b, "Module: %s (%d of %d modules finished)\n", p.CurrentModule, p.ModulesCompleted, p.ModulesTotal)
	}
	if p.CurrentLesson != nil {
		fmt.Fprintf(b, "Now on: %s\n", p.CurrentLesson.Title)
	}
	if len(p.NextLessons) > 0 {
		fmt.Fprintf(b, "Coming after: %s\n", strings.Join(p.NextLessons, " → "))
	}
	if len(p.RecentCompleted) > 0 {
		fmt.Fprintf(b, "Recently completed: %s\n", strings.Join(p.RecentCompleted, ", "))
	}
	if len(p.RecentConcepts) > 0 {
		fmt.Fprintf(b, "Recently learned concepts: %s\n", strings.Join(p.RecentConcepts, ", "))
	}
	if len(p.ConceptGaps) > 0 {
		fmt.Fprintf(b, "Concept gaps in the current lesson: %s\n", strings.Join(p.ConceptGaps, ", "))
	}
	b.WriteString(progressionDirectives)
	b.WriteString("\n")
}

func writeSessionMemory(b *strings.Builder, lc learner.Context) {
	if len(lc.RecentSummaries) == 0 {
		return
	}

	b.WriteString("\n## Previous sessions\n")
	for i, s := range lc.RecentSummaries {
		label := "Last session"
		if i > 0 {
			label = fmt.Sprintf("%d sessions ago", i+1)
		}
		fmt.Fprintf(b, "%s: %s", label, s.Summary)
		if len(s.Concepts) > 0 {
			fmt.Fprintf(b, " (discussed: %s)", strings.Join(s.Concepts, ", "))
		}
		if s.UserState != "" {
			fmt.Fprintf(b, " [learner was %s]", s.UserState)
		}
		b.WriteString("\n")
	}
}

func writeReturningUser(b *strings.Builder, cfg Config, sig signals.AdaptiveSignals) {
	if sig.HoursSinceLastChat == nil || *sig.HoursSinceLastChat < cfg.ReturningUserHours {
		return
	}

	days := int(math.Floor(*sig.HoursSinceLastChat / 24))
	b.WriteString("\n## Returning learner\n")
	fmt.Fprintf(b, "They have been away for %d day(s).\n", days)
	if len(sig.LastSessionConcepts) > 0 {
		fmt.Fprintf(b, "Last time they worked on: %s\n", strings.Join(sig.LastSessionConcepts, ", "))
	}
	if sig.LastSessionState != "" {
		fmt.Fprintf(b, "They left off %s.\n", sig.LastSessionState)
	}
	b.WriteString("Welcome them back warmly and briefly reconnect to where they left off before diving in.\n")
}

func writeAdaptive(b *strings.Builder, cfg Config, sig signals.AdaptiveSignals) {
	var directives []string

	switch sig.Frustration.Level {
	case affect.LevelHigh:
		directives = append(directives,
			"The learner is showing strong signs of frustration. Slow way down, acknowledge the difficulty, and break the problem into the smallest possible steps.")
	case affect.LevelMild:
		directives = append(directives,
			"The learner may be getting frustrated. Be extra encouraging and check understanding before moving on.")
	}

	switch sig.Pace {
	case signals.PaceFast:
		directives = append(directives,
			"Their replies are very short. Ask open questions that invite them to say more.")
	case signals.PaceSlow:
		directives = append(directives,
			"Their messages are long and detailed. Match their depth and address each point they raise.")
	}

	for _, concept := range sig.HighStruggleConcepts(cfg.HighStruggleAttempts) {
		directives = append(directives,
			fmt.Sprintf("They have repeatedly answered %s exercises incorrectly. Revisit the fundamentals of %s with a fresh example before any new exercise.", concept, concept))
	}

	if len(directives) == 0 {
		return
	}

	b.WriteString("\n## Adapt this turn\n")
	for _, d := range directives {
		fmt.Fprintf(b, "- %s\n", d)
	}
}
