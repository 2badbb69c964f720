// Package learner assembles the per-turn tutoring context: profile,
// mastery, current lesson, progression and session memory merged into
// one value the prompt composer renders.
//
// Every external read is independently guarded. A failure anywhere
// yields that field's documented default; assembly itself never fails.
package learner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/curriculum"
	"github.com/mkale/tutorloop/internal/store"
)

// Defaults used when the profile read fails or is incomplete.
const (
	DefaultName       = "Learner"
	DefaultSkillLevel = "beginner"
)

// Config holds mastery thresholds and memory depth.
type Config struct {
	// MasteredLevel: concepts at or above this mastery level count as
	// mastered.
	MasteredLevel int

	// StrugglingLevel: attempted concepts below this level count as
	// struggling.
	StrugglingLevel int

	// MaxRecentSummaries caps the session-memory depth.
	MaxRecentSummaries int
}

// DefaultConfig returns the standard assembly parameters.
func DefaultConfig() Config {
	return Config{
		MasteredLevel:      70,
		StrugglingLevel:    40,
		MaxRecentSummaries: 3,
	}
}

// Context is the merged tutoring context for one turn.
type Context struct {
	Name             string
	SkillLevel       string
	LearningGoal     string
	StreakDays       int
	TotalXP          int
	LessonsCompleted int
	LastChatAt       *time.Time

	MasteredConcepts   []string
	StrugglingConcepts []string

	CurrentLesson   *curriculum.FlatLesson
	RecentSummaries []store.SessionSummaryData
	Progression     *curriculum.Progression
}

// Assembler builds Contexts from the store.
type Assembler struct {
	cfg        Config
	profiles   store.ProfileRepo
	progress   store.ProgressRepo
	mastery    store.MasteryRepo
	chats      store.ChatRepo
	curriculum store.CurriculumRepo
	logger     *zap.Logger
}

// NewAssembler creates an Assembler over the given repositories.
func NewAssembler(cfg Config, s RepoSet, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		cfg:        cfg,
		profiles:   s.Profiles,
		progress:   s.Progress,
		mastery:    s.Mastery,
		chats:      s.Chats,
		curriculum: s.Curriculum,
		logger:     logger,
	}
}

// RepoSet bundles the repositories the assembler reads from.
type RepoSet struct {
	Profiles   store.ProfileRepo
	Progress   store.ProgressRepo
	Mastery    store.MasteryRepo
	Chats      store.ChatRepo
	Curriculum store.CurriculumRepo
}

// Assemble merges all context sources for userID. An explicit
// activeLessonID takes precedence over the first in-progress lesson in
// curriculum order. Assemble always returns a usable context.
func (a *Assembler) Assemble(ctx context.Context, userID, activeLessonID string) Context {
	lc := Context{
		Name:       DefaultName,
		SkillLevel: DefaultSkillLevel,
	}

	if profile, err := a.profiles.Get(ctx, userID); err != nil {
		a.logger.Warn("assemble: profile read failed", zap.String("user_id", userID), zap.Error(err))
	} else if profile != nil {
		applyProfile(&lc, profile)
	}

	if masteries, err := a.mastery.Masteries(ctx, userID); err != nil {
		a.logger.Warn("assemble: mastery read failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		for _, m := range masteries {
			switch {
			case m.MasteryLevel >= a.cfg.MasteredLevel:
				lc.MasteredConcepts = append(lc.MasteredConcepts, m.Concept)
			case m.MasteryLevel < a.cfg.StrugglingLevel && m.PracticeCount > 0:
				lc.StrugglingConcepts = append(lc.StrugglingConcepts, m.Concept)
			}
		}
	}

	paths, statuses := a.readCurriculum(ctx, userID)
	lc.Progression = curriculum.BuildProgression(paths, statuses, lc.MasteredConcepts)
	lc.CurrentLesson = a.resolveCurrentLesson(paths, statuses, activeLessonID, lc.Progression)

	if summaries, err := a.chats.RecentSummaries(ctx, userID, a.cfg.MaxRecentSummaries); err != nil {
		a.logger.Warn("assemble: summaries read failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		lc.RecentSummaries = summaries
	}

	return lc
}

func applyProfile(lc *Context, p *store.ProfileData) {
	if p.Name != "" {
		lc.Name = p.Name
	}
	if p.SkillLevel != "" {
		lc.SkillLevel = p.SkillLevel
	}
	lc.LearningGoal = p.LearningGoal
	lc.StreakDays = p.StreakDays
	lc.TotalXP = p.TotalXP
	lc.LessonsCompleted = p.LessonsCompleted
	lc.LastChatAt = p.LastChatAt
}

func (a *Assembler) readCurriculum(ctx context.Context, userID string) ([]curriculum.Path, map[string]curriculum.StatusEntry) {
	paths, err := a.curriculum.Published(ctx)
	if err != nil {
		a.logger.Warn("assemble: curriculum read failed", zap.Error(err))
		return nil, nil
	}

	statuses, err := a.progress.LessonStatuses(ctx, userID)
	if err != nil {
		a.logger.Warn("assemble: progress read failed", zap.String("user_id", userID), zap.Error(err))
		statuses = nil
	}
	return paths, statuses
}

// resolveCurrentLesson prefers the explicitly requested lesson and falls
// back to the progression's current one.
func (a *Assembler) resolveCurrentLesson(paths []curriculum.Path, statuses map[string]curriculum.StatusEntry, activeLessonID string, prog *curriculum.Progression) *curriculum.FlatLesson {
	if activeLessonID != "" {
		flat := curriculum.Flatten(paths, statuses)
		for i := range flat {
			if flat[i].ID == activeLessonID {
				return &flat[i]
			}
		}
		a.logger.Warn("assemble: active lesson not in curriculum", zap.String("lesson_id", activeLessonID))
	}
	if prog != nil {
		return prog.CurrentLesson
	}
	return nil
}
