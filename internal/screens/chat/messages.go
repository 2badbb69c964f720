package chat

import (
	"time"

	chatsvc "github.com/mkale/tutorloop/internal/chat"
)

// streamDeltaMsg carries one text fragment of the tutor's reply.
type streamDeltaMsg string

// streamDoneMsg is sent when the turn finishes, normally or not.
type streamDoneMsg struct {
	Result *chatsvc.TurnResult
	Err    error
}

// spinnerTickMsg is sent at short intervals to animate the thinking spinner.
type spinnerTickMsg time.Time
