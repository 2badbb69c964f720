package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/llm"
	"github.com/mkale/tutorloop/internal/store"
)

// Config holds summarization parameters.
type Config struct {
	// MaxTokens caps the summary response size.
	MaxTokens int

	// Temperature for summary generation. Kept low for consistency.
	Temperature float64

	// MaxTranscriptMessages bounds how much of the session is sent to
	// the model; older messages are dropped first.
	MaxTranscriptMessages int
}

// DefaultConfig returns the standard summarization parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:             512,
		Temperature:           0.2,
		MaxTranscriptMessages: 30,
	}
}

// Service generates and persists session summaries.
type Service struct {
	cfg      Config
	provider llm.Provider
	chats    store.ChatRepo
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a summarization service.
func NewService(cfg Config, provider llm.Provider, chats store.ChatRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		provider: provider,
		chats:    chats,
		logger:   logger,
		now:      time.Now,
	}
}

const summarySystemPrompt = `You summarize a tutoring chat session for the tutor's future reference.
Extract what was covered, the concepts discussed, and how the learner was doing.
Be factual and concise. Do not include pleasantries or meta-commentary.`

type summaryOutput struct {
	Summary   string   `json:"summary"`
	Concepts  []string `json:"concepts"`
	UserState string   `json:"user_state"`
}

// Summarize reads the session's messages, asks the LLM for a recap and
// persists it. Recaps are best-effort: an unusable model response is
// logged and dropped rather than surfaced, since the chat that prompted
// the summary has already succeeded.
func (s *Service) Summarize(ctx context.Context, sessionID, userID string) error {
	msgs, err := s.chats.Messages(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if len(msgs) == 0 {
		return nil
	}

	out, err := s.generate(ctx, msgs)
	if err != nil {
		s.logger.Warn("session summary discarded",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil
	}

	summary := store.SessionSummaryData{
		SessionID: sessionID,
		UserID:    userID,
		Summary:   out.Summary,
		Concepts:  out.Concepts,
		UserState: out.UserState,
		CreatedAt: s.now(),
	}
	if err := s.chats.SaveSummary(ctx, summary); err != nil {
		return fmt.Errorf("save summary for session %s: %w", sessionID, err)
	}

	s.logger.Debug("session summarized",
		zap.String("session_id", sessionID),
		zap.Strings("concepts", out.Concepts),
		zap.String("user_state", out.UserState))
	return nil
}

func (s *Service) generate(ctx context.Context, msgs []store.ChatMessageData) (*summaryOutput, error) {
	ctx = llm.WithPurpose(ctx, "session-summary")

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: s.transcript(msgs)},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("empty summary text")
	}
	switch out.UserState {
	case StateProgressing, StateStuck, StateExploring, StateReviewing:
	default:
		return nil, fmt.Errorf("unknown user_state %q", out.UserState)
	}

	return &out, nil
}

func (s *Service) transcript(msgs []store.ChatMessageData) string {
	if n := s.cfg.MaxTranscriptMessages; n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}

	var b strings.Builder
	b.WriteString("Session transcript:\n\n")
	for _, m := range msgs {
		label := "Learner"
		if m.Role == "assistant" {
			label = "Tutor"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, m.Content)
	}
	return b.String()
}
