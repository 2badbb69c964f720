// Package chat orchestrates a tutoring turn: it scores the incoming
// message, assembles the learner's context, composes the system prompt,
// streams the tutor's reply and schedules the follow-up bookkeeping.
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/affect"
	"github.com/mkale/tutorloop/internal/background"
	"github.com/mkale/tutorloop/internal/learner"
	"github.com/mkale/tutorloop/internal/llm"
	"github.com/mkale/tutorloop/internal/prompt"
	"github.com/mkale/tutorloop/internal/signals"
	"github.com/mkale/tutorloop/internal/store"
	"github.com/mkale/tutorloop/internal/summarize"
)

// Config holds turn orchestration parameters.
type Config struct {
	// HistoryLimit caps how many prior messages are replayed to the
	// model each turn, newest kept.
	HistoryLimit int

	// MaxTokens caps the tutor's reply length.
	MaxTokens int

	// Temperature for reply generation.
	Temperature float64

	// Affect and Prompt tune the detector and composer thresholds
	// for turns run through this service.
	Affect affect.Config
	Prompt prompt.Config
}

// DefaultConfig returns the standard orchestration parameters.
func DefaultConfig() Config {
	return Config{
		HistoryLimit: 40,
		MaxTokens:    2048,
		Temperature:  0.7,
		Affect:       affect.DefaultConfig(),
		Prompt:       prompt.DefaultConfig(),
	}
}

// Session identifies one conversation.
type Session struct {
	ID     string
	UserID string

	// ActiveLessonID, when set, pins context assembly to a specific
	// lesson instead of the derived curriculum position.
	ActiveLessonID string
}

// NewSession starts a fresh conversation for the user.
func NewSession(userID string) *Session {
	return &Session{ID: uuid.NewString(), UserID: userID}
}

// TurnResult is what one completed (or interrupted) turn produced.
type TurnResult struct {
	Reply       string
	Frustration affect.Result
	Interrupted bool
}

// Service runs tutoring turns end to end.
type Service struct {
	cfg        Config
	provider   llm.Provider
	chats      store.ChatRepo
	profiles   store.ProfileRepo
	assembler  *learner.Assembler
	aggregator *signals.Aggregator
	affectCfg  affect.Config
	promptCfg  prompt.Config
	summarizer *summarize.Service
	runner     *background.Runner
	logger     *zap.Logger
	now        func() time.Time
}

// Deps bundles the service's collaborators.
type Deps struct {
	Provider   llm.Provider
	Chats      store.ChatRepo
	Profiles   store.ProfileRepo
	Assembler  *learner.Assembler
	Aggregator *signals.Aggregator
	Summarizer *summarize.Service
	Runner     *background.Runner
	Logger     *zap.Logger
}

// NewService creates a turn orchestrator.
func NewService(cfg Config, deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:        cfg,
		provider:   deps.Provider,
		chats:      deps.Chats,
		profiles:   deps.Profiles,
		assembler:  deps.Assembler,
		aggregator: deps.Aggregator,
		affectCfg:  cfg.Affect,
		promptCfg:  cfg.Prompt,
		summarizer: deps.Summarizer,
		runner:     deps.Runner,
		logger:     logger,
		now:        time.Now,
	}
}

// Send runs one turn: score the message, persist it, build the prompt,
// stream the reply through onDelta and persist the outcome.
//
// The user's message is recorded before generation starts, so a
// provider failure never loses their input. An interrupted stream
// persists whatever text arrived, flagged as interrupted, and the
// interruption is surfaced as the turn's error alongside the partial
// result.
func (s *Service) Send(ctx context.Context, sess *Session, message string, onDelta func(string)) (*TurnResult, error) {
	now := s.now()
	history := s.history(ctx, sess.ID)
	turns := toTurns(history)

	frustration := affect.Detect(s.affectCfg, message, turns)

	userMsg := store.ChatMessageData{
		SessionID:        sess.ID,
		UserID:           sess.UserID,
		Role:             "user",
		Content:          message,
		FrustrationScore: frustration.Score,
		FrustrationLevel: string(frustration.Level),
		CreatedAt:        now,
	}
	if err := s.chats.Append(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("record user message: %w", err)
	}

	lc := s.assembler.Assemble(ctx, sess.UserID, sess.ActiveLessonID)
	sig := s.aggregator.Aggregate(ctx, sess.UserID,
		append(turns, affect.Turn{Role: affect.RoleUser, Content: message}),
		frustration, now)
	system := prompt.Compose(s.promptCfg, lc, sig)

	req := llm.Request{
		System:      system,
		Messages:    append(s.modelHistory(history), llm.Message{Role: llm.RoleUser, Content: message}),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, genErr := s.provider.GenerateStream(llm.WithPurpose(ctx, "tutor-reply"), req, onDelta)

	var interrupted *llm.ErrStreamInterrupted
	switch {
	case genErr == nil:
		// fall through to persist the full reply
	case errors.As(genErr, &interrupted):
		if interrupted.Partial != "" {
			s.persistReply(ctx, sess, interrupted.Partial, true, now)
			s.afterTurn(sess)
		}
		return &TurnResult{
			Reply:       interrupted.Partial,
			Frustration: frustration,
			Interrupted: true,
		}, genErr
	default:
		return nil, fmt.Errorf("generate reply: %w", genErr)
	}

	reply := resp.Text()
	s.persistReply(ctx, sess, reply, false, now)
	s.afterTurn(sess)

	return &TurnResult{Reply: reply, Frustration: frustration}, nil
}

func (s *Service) persistReply(ctx context.Context, sess *Session, text string, interrupted bool, at time.Time) {
	msg := store.ChatMessageData{
		SessionID:   sess.ID,
		UserID:      sess.UserID,
		Role:        "assistant",
		Content:     text,
		Interrupted: interrupted,
		CreatedAt:   at,
	}
	if err := s.chats.Append(ctx, msg); err != nil {
		// The learner already saw the reply; losing the stored copy
		// degrades memory, not the conversation.
		s.logger.Warn("assistant message not persisted",
			zap.String("session_id", sess.ID),
			zap.Error(err))
	}
}

// afterTurn schedules the post-turn bookkeeping off the interactive
// path. Both tasks are best-effort.
func (s *Service) afterTurn(sess *Session) {
	at := s.now()
	s.runner.Submit(context.Background(), "touch-last-chat", func(ctx context.Context) error {
		return s.profiles.TouchLastChat(ctx, sess.UserID, at)
	})

	s.runner.Submit(context.Background(), "maybe-summarize", func(ctx context.Context) error {
		count, err := s.chats.CountMessages(ctx, sess.ID)
		if err != nil {
			return fmt.Errorf("count session messages: %w", err)
		}
		if !summarize.ShouldSummarize(count) {
			return nil
		}
		return s.summarizer.Summarize(ctx, sess.ID, sess.UserID)
	})
}

func (s *Service) history(ctx context.Context, sessionID string) []store.ChatMessageData {
	msgs, err := s.chats.Messages(ctx, sessionID)
	if err != nil {
		s.logger.Warn("chat history unavailable, starting turn without it",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil
	}
	return msgs
}

func (s *Service) modelHistory(history []store.ChatMessageData) []llm.Message {
	if n := s.cfg.HistoryLimit; n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	msgs := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	return msgs
}

func toTurns(history []store.ChatMessageData) []affect.Turn {
	turns := make([]affect.Turn, 0, len(history))
	for _, m := range history {
		role := affect.RoleUser
		if m.Role == "assistant" {
			role = affect.RoleAssistant
		}
		turns = append(turns, affect.Turn{Role: role, Content: m.Content})
	}
	return turns
}
