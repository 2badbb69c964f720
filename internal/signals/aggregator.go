// Package signals fuses the frustration result with historical and
// pacing signals into one AdaptiveSignals value per turn.
//
// Every external read here is independently fault-tolerant: a storage
// failure on any sub-read logs a warning and yields that signal's
// default, never an error to the caller. A turn always gets signals,
// possibly partial ones.
package signals

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/affect"
	"github.com/mkale/tutorloop/internal/store"
)

// Pace classifies how quickly the user is moving through the session.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
)

// AdaptiveSignals is everything the prompt composer adapts on.
type AdaptiveSignals struct {
	Frustration affect.Result
	Pace        Pace

	// WrongAttempts maps concept name to wrong-attempt count, only for
	// concepts with at least one wrong attempt.
	WrongAttempts map[string]int

	// HoursSinceLastChat is nil when the user has never chatted.
	HoursSinceLastChat *float64

	// RecentSummaries holds up to MaxRecentSummaries prior session
	// summaries, newest first.
	RecentSummaries []store.SessionSummaryData

	// LastSessionConcepts and LastSessionState come from the most
	// recent summary, when one exists.
	LastSessionConcepts []string
	LastSessionState    string
}

// HighStruggleConcepts returns the concepts at or above the
// high-struggle attempt threshold, sorted for deterministic output.
func (s AdaptiveSignals) HighStruggleConcepts(threshold int) []string {
	var out []string
	for concept, wrong := range s.WrongAttempts {
		if wrong >= threshold {
			out = append(out, concept)
		}
	}
	sort.Strings(out)
	return out
}

// Aggregator combines per-turn affect with stored history signals.
type Aggregator struct {
	cfg      Config
	profiles store.ProfileRepo
	mastery  store.MasteryRepo
	chats    store.ChatRepo
	logger   *zap.Logger
}

// NewAggregator creates an Aggregator over the given repositories.
func NewAggregator(cfg Config, profiles store.ProfileRepo, mastery store.MasteryRepo, chats store.ChatRepo, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		cfg:      cfg,
		profiles: profiles,
		mastery:  mastery,
		chats:    chats,
		logger:   logger,
	}
}

// Aggregate builds the turn's AdaptiveSignals from the frustration
// result, the in-session history and the store.
func (a *Aggregator) Aggregate(ctx context.Context, userID string, history []affect.Turn, frustration affect.Result, now time.Time) AdaptiveSignals {
	sig := AdaptiveSignals{
		Frustration: frustration,
		Pace:        a.inferPace(history),
	}

	if profile, err := a.profiles.Get(ctx, userID); err != nil {
		a.logger.Warn("signals: profile read failed", zap.String("user_id", userID), zap.Error(err))
	} else if profile != nil && profile.LastChatAt != nil {
		hours := now.Sub(*profile.LastChatAt).Hours()
		sig.HoursSinceLastChat = &hours
	}

	if summaries, err := a.chats.RecentSummaries(ctx, userID, a.cfg.MaxRecentSummaries); err != nil {
		a.logger.Warn("signals: summaries read failed", zap.String("user_id", userID), zap.Error(err))
	} else if len(summaries) > 0 {
		sig.RecentSummaries = summaries
		sig.LastSessionConcepts = summaries[0].Concepts
		sig.LastSessionState = summaries[0].UserState
	}

	if masteries, err := a.mastery.Masteries(ctx, userID); err != nil {
		a.logger.Warn("signals: mastery read failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		wrong := make(map[string]int)
		for _, m := range masteries {
			if m.PracticeCount > 0 && m.WrongAttempts() > 0 {
				wrong[m.Concept] = m.WrongAttempts()
			}
		}
		if len(wrong) > 0 {
			sig.WrongAttempts = wrong
		}
	}

	return sig
}

// inferPace reads the session's user message lengths. It is purely
// in-session: no storage involved.
func (a *Aggregator) inferPace(history []affect.Turn) Pace {
	var count, total int
	for _, turn := range history {
		if turn.Role != affect.RoleUser {
			continue
		}
		count++
		total += len(turn.Content)
	}
	if count < a.cfg.MinMessages {
		return PaceNormal
	}

	avg := float64(total) / float64(count)
	switch {
	case avg < float64(a.cfg.FastMaxLen):
		return PaceFast
	case avg > float64(a.cfg.SlowMinLen):
		return PaceSlow
	default:
		return PaceNormal
	}
}
