// Package progress shows the learner's position in the curriculum:
// path completion, current and upcoming lessons, and concept mastery.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkale/tutorloop/internal/learner"
	"github.com/mkale/tutorloop/internal/screen"
	"github.com/mkale/tutorloop/internal/ui/components"
	"github.com/mkale/tutorloop/internal/ui/layout"
	"github.com/mkale/tutorloop/internal/ui/theme"
)

// contextReadyMsg delivers the assembled learner context.
type contextReadyMsg struct {
	Context learner.Context
}

// ProgressScreen implements screen.Screen for the curriculum overview.
type ProgressScreen struct {
	assembler *learner.Assembler
	userID    string
	lc        *learner.Context
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a progress screen for the user.
func New(assembler *learner.Assembler, userID string) *ProgressScreen {
	return &ProgressScreen{assembler: assembler, userID: userID}
}

func (s *ProgressScreen) Init() tea.Cmd {
	assembler, userID := s.assembler, s.userID
	return func() tea.Msg {
		return contextReadyMsg{Context: assembler.Assemble(context.Background(), userID, "")}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(contextReadyMsg); ok {
		s.lc = &msg.Context
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.lc == nil {
		return theme.Hint.Render("\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")

	p := s.lc.Progression
	if p == nil {
		b.WriteString(theme.Hint.Render("  No curriculum available yet.") + "\n")
		return b.String()
	}

	b.WriteString("  " + theme.Title.Render(p.PathTitle) + "  " +
		theme.Subtitle.Render("("+p.Difficulty+")") + "\n\n")

	bar := components.NewProgressBar("  Path", float64(p.OverallPercent)/100, true, min(width-6, 60))
	b.WriteString(bar.View() + "\n")
	fmt.Fprintf(&b, "  %s\n\n",
		theme.Hint.Render(fmt.Sprintf("%d of %d modules finished", p.ModulesCompleted, p.ModulesTotal)))

	if p.CurrentLesson != nil {
		b.WriteString("  " + theme.Selected.Render("▸ "+p.CurrentLesson.Title) +
			theme.Hint.Render("  ("+p.CurrentModule+")") + "\n")
	} else {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render("Path complete!") + "\n")
	}
	for _, title := range p.NextLessons {
		b.WriteString("    " + theme.Body.Render(title) + "\n")
	}
	b.WriteString("\n")

	if len(s.lc.MasteredConcepts) > 0 {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render("Mastered: ") +
			theme.Body.Render(strings.Join(s.lc.MasteredConcepts, ", ")) + "\n")
	}
	if len(s.lc.StrugglingConcepts) > 0 {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render("Needs work: ") +
			theme.Body.Render(strings.Join(s.lc.StrugglingConcepts, ", ")) + "\n")
	}

	return b.String()
}
