package summarize

import "github.com/mkale/tutorloop/internal/llm"

// UserState values a summary may report.
const (
	StateProgressing = "progressing"
	StateStuck       = "stuck"
	StateExploring   = "exploring"
	StateReviewing   = "reviewing"
)

// SummarySchema defines the JSON schema for session recaps.
var SummarySchema = &llm.Schema{
	Name:        "session-summary",
	Description: "Compact recap of a tutoring session for future context",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence recap of what was covered and how it went",
			},
			"concepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concepts discussed this session",
			},
			"user_state": map[string]any{
				"type":        "string",
				"enum":        []any{StateProgressing, StateStuck, StateExploring, StateReviewing},
				"description": "How the learner was doing by the end of the session",
			},
		},
		"required":             []any{"summary", "concepts", "user_state"},
		"additionalProperties": false,
	},
}
