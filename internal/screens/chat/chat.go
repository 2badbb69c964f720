// Package chat is the interactive tutoring screen: a scrolling
// transcript with a text input, streaming the tutor's replies as they
// arrive.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chatsvc "github.com/mkale/tutorloop/internal/chat"
	"github.com/mkale/tutorloop/internal/screen"
	"github.com/mkale/tutorloop/internal/ui/components"
	"github.com/mkale/tutorloop/internal/ui/layout"
	"github.com/mkale/tutorloop/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// entry is one rendered transcript line group.
type entry struct {
	role        string // "user" or "assistant"
	text        string
	interrupted bool
}

// streamEvent is what the turn goroutine feeds back into the program.
type streamEvent struct {
	delta string
	done  bool
	res   *chatsvc.TurnResult
	err   error
}

// ChatScreen implements screen.Screen for the tutoring conversation.
type ChatScreen struct {
	svc     *chatsvc.Service
	session *chatsvc.Session

	transcript []entry
	input      components.TextInput
	events     chan streamEvent
	streaming  bool
	spinner    int
	errMsg     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen with a fresh session for the user.
func New(svc *chatsvc.Service, userID string) *ChatScreen {
	return &ChatScreen{
		svc:     svc,
		session: chatsvc.NewSession(userID),
		input:   components.NewTextInput("Ask your tutor anything...", 500),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Chat"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	if s.streaming {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case streamDeltaMsg:
		s.appendToReply(string(msg))
		return s, s.waitEvent()

	case streamDoneMsg:
		return s.handleDone(msg)

	case spinnerTickMsg:
		if !s.streaming {
			return s, nil
		}
		s.spinner = (s.spinner + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.streaming {
			return s, s.send()
		}
	}

	if !s.streaming {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// send starts a turn: the learner's text goes into the transcript
// immediately, then a goroutine runs the turn and feeds deltas back
// through the event channel.
func (s *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return nil
	}

	s.input.Reset()
	s.errMsg = ""
	s.transcript = append(s.transcript,
		entry{role: "user", text: text},
		entry{role: "assistant"},
	)
	s.streaming = true

	events := make(chan streamEvent, 64)
	s.events = events

	svc, sess := s.svc, s.session
	go func() {
		res, err := svc.Send(context.Background(), sess, text, func(delta string) {
			events <- streamEvent{delta: delta}
		})
		events <- streamEvent{done: true, res: res, err: err}
		close(events)
	}()

	return tea.Batch(s.waitEvent(), spinnerTick())
}

// waitEvent blocks on the next stream event and converts it to a message.
func (s *ChatScreen) waitEvent() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok || ev.done {
			return streamDoneMsg{Result: ev.res, Err: ev.err}
		}
		return streamDeltaMsg(ev.delta)
	}
}

func (s *ChatScreen) handleDone(msg streamDoneMsg) (screen.Screen, tea.Cmd) {
	s.streaming = false
	s.events = nil

	last := s.lastReply()
	if msg.Result != nil {
		if last != nil {
			last.text = msg.Result.Reply
			last.interrupted = msg.Result.Interrupted
		}
		if msg.Result.Interrupted {
			s.errMsg = "Connection dropped mid-reply. The partial answer was kept."
		}
		return s, s.input.Init()
	}

	// Nothing came back: drop the empty placeholder and show the error.
	if last != nil && last.text == "" {
		s.transcript = s.transcript[:len(s.transcript)-1]
	}
	if msg.Err != nil {
		s.errMsg = "The tutor is unreachable right now. Your message was saved, try again in a moment."
	}
	return s, s.input.Init()
}

func (s *ChatScreen) appendToReply(delta string) {
	if last := s.lastReply(); last != nil {
		last.text += delta
	}
}

func (s *ChatScreen) lastReply() *entry {
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].role == "assistant" {
			return &s.transcript[i]
		}
	}
	return nil
}

func (s *ChatScreen) View(width, height int) string {
	inputLine := "  > " + s.input.View()
	if s.streaming {
		inputLine = "  " + theme.Hint.Render(spinnerFrames[s.spinner]+" Tutor is thinking...")
	}

	errLine := ""
	if s.errMsg != "" {
		errLine = "  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)
	}

	reserved := 3 // input row plus padding
	if errLine != "" {
		reserved++
	}

	transcript := s.renderTranscript(width, height-reserved)

	var b strings.Builder
	b.WriteString(transcript)
	b.WriteString("\n")
	if errLine != "" {
		b.WriteString(errLine)
		b.WriteString("\n")
	}
	b.WriteString(inputLine)
	return b.String()
}

func (s *ChatScreen) renderTranscript(width, maxLines int) string {
	if len(s.transcript) == 0 {
		return theme.Hint.Render("\n  Say hi to get started.")
	}

	wrap := lipgloss.NewStyle().Width(width - 4)

	var lines []string
	for _, e := range s.transcript {
		label := theme.LearnerLabel.Render("You")
		if e.role == "assistant" {
			label = theme.TutorLabel.Render("Tutor")
		}
		text := e.text
		if e.interrupted {
			text += theme.Hint.Render("  [interrupted]")
		}
		block := "  " + label + "\n" + wrap.Render("  "+text)
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}

// spinnerTick animates the thinking indicator.
func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
