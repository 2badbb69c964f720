// Package home is the landing screen: a greeting plus the main menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chatsvc "github.com/mkale/tutorloop/internal/chat"
	"github.com/mkale/tutorloop/internal/learner"
	"github.com/mkale/tutorloop/internal/router"
	"github.com/mkale/tutorloop/internal/screen"
	chatscreen "github.com/mkale/tutorloop/internal/screens/chat"
	progressscreen "github.com/mkale/tutorloop/internal/screens/progress"
	"github.com/mkale/tutorloop/internal/ui/components"
	"github.com/mkale/tutorloop/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu        components.Menu
	greeting    string
	streakDays  int
	lessonsDone int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the chat service and context assembler.
func New(svc *chatsvc.Service, assembler *learner.Assembler, lc learner.Context, userID string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START CHAT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(svc, userID)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(assembler, userID)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		greeting:    fmt.Sprintf("Welcome back, %s!", lc.Name),
		streakDays:  lc.StreakDays,
		lessonsDone: lc.LessonsCompleted,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render(h.greeting) + "\n")

	sub := fmt.Sprintf("%d day streak · %d lessons completed", h.streakDays, h.lessonsDone)
	b.WriteString("  " + theme.Subtitle.Render(sub) + "\n\n")

	b.WriteString(h.menu.View())

	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("  Your tutor remembers where you left off.")
	b.WriteString("\n" + hint + "\n")

	return b.String()
}
