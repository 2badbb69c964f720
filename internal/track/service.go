// Package track records learning outcomes: lesson status transitions,
// practice attempts and the profile counters derived from them. It is
// the write side of the data the context assembler later reads.
package track

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/curriculum"
	"github.com/mkale/tutorloop/internal/store"
)

// Config holds progress accounting parameters.
type Config struct {
	// LessonXP is awarded per completed lesson.
	LessonXP int
}

// DefaultConfig returns the standard accounting parameters.
func DefaultConfig() Config {
	return Config{LessonXP: 50}
}

// Service applies progress updates across the progress and profile stores.
type Service struct {
	cfg      Config
	profiles store.ProfileRepo
	progress store.ProgressRepo
	mastery  store.MasteryRepo
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a progress tracking service.
func NewService(cfg Config, profiles store.ProfileRepo, progress store.ProgressRepo, mastery store.MasteryRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		profiles: profiles,
		progress: progress,
		mastery:  mastery,
		logger:   logger,
		now:      time.Now,
	}
}

// StartLesson marks a lesson in_progress. Starting an already completed
// lesson reopens it.
func (s *Service) StartLesson(ctx context.Context, userID, lessonID string) error {
	if err := s.progress.SetLessonStatus(ctx, userID, lessonID, curriculum.StatusInProgress, nil); err != nil {
		return fmt.Errorf("start lesson %s: %w", lessonID, err)
	}
	return nil
}

// CompleteLesson marks a lesson completed and updates the profile
// counters: lessons completed, XP, and the daily streak.
func (s *Service) CompleteLesson(ctx context.Context, userID, lessonID string) error {
	now := s.now()
	if err := s.progress.SetLessonStatus(ctx, userID, lessonID, curriculum.StatusCompleted, &now); err != nil {
		return fmt.Errorf("complete lesson %s: %w", lessonID, err)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		profile = &store.ProfileData{UserID: userID}
	}

	profile.LessonsCompleted++
	profile.TotalXP += s.cfg.LessonXP
	profile.StreakDays = nextStreak(profile.StreakDays, profile.LastChatAt, now)
	profile.LastChatAt = &now

	if err := s.profiles.Upsert(ctx, *profile); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	s.logger.Debug("lesson completed",
		zap.String("user_id", userID),
		zap.String("lesson_id", lessonID),
		zap.Int("streak_days", profile.StreakDays))
	return nil
}

// RecordAttempt records one practice attempt on a concept.
func (s *Service) RecordAttempt(ctx context.Context, userID, concept string, correct bool) error {
	if err := s.mastery.RecordAttempt(ctx, userID, concept, correct); err != nil {
		return fmt.Errorf("record attempt on %s: %w", concept, err)
	}
	return nil
}

// nextStreak advances the daily streak: same calendar day keeps it,
// consecutive days extend it, a gap resets it to one.
func nextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	lastDay := startOfDay(last.Local())
	today := startOfDay(now.Local())
	switch days := int(today.Sub(lastDay).Hours() / 24); {
	case days == 0:
		if current < 1 {
			return 1
		}
		return current
	case days == 1:
		return current + 1
	default:
		return 1
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
