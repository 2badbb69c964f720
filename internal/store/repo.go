package store

import (
	"context"
	"time"

	"github.com/mkale/tutorloop/internal/curriculum"
)

// ProfileData holds the learner profile fields consumed by the context
// assembler. Missing rows surface as nil; defaulting happens at the
// assembler boundary, not here.
type ProfileData struct {
	UserID           string
	Name             string
	SkillLevel       string
	LearningGoal     string
	StreakDays       int
	TotalXP          int
	LessonsCompleted int
	LastChatAt       *time.Time
}

// ConceptMasteryData is one concept's practice counters for a user.
type ConceptMasteryData struct {
	Concept       string
	MasteryLevel  int
	PracticeCount int
	CorrectCount  int
}

// WrongAttempts returns practice_count - correct_count, floored at zero.
func (c ConceptMasteryData) WrongAttempts() int {
	n := c.PracticeCount - c.CorrectCount
	if n < 0 {
		return 0
	}
	return n
}

// ChatMessageData is one persisted chat turn message.
type ChatMessageData struct {
	SessionID        string
	UserID           string
	Role             string // "user" or "assistant"
	Content          string
	FrustrationScore float64
	FrustrationLevel string
	Interrupted      bool
	CreatedAt        time.Time
}

// SessionSummaryData is a validated, persisted session recap.
type SessionSummaryData struct {
	SessionID string
	UserID    string
	Summary   string
	Concepts  []string
	UserState string // progressing, stuck, exploring, reviewing
	CreatedAt time.Time
}

// ProfileRepo reads and writes learner profiles.
type ProfileRepo interface {
	// Get returns the profile for userID, or nil if absent.
	Get(ctx context.Context, userID string) (*ProfileData, error)

	// Upsert creates or replaces the profile row.
	Upsert(ctx context.Context, p ProfileData) error

	// TouchLastChat updates last_chat_at, creating the row if needed.
	TouchLastChat(ctx context.Context, userID string, at time.Time) error
}

// ProgressRepo reads and writes per-lesson progress.
type ProgressRepo interface {
	// LessonStatuses returns the user's lesson status map. Lessons
	// without a row are simply absent (callers default to not_started).
	LessonStatuses(ctx context.Context, userID string) (map[string]curriculum.StatusEntry, error)

	// SetLessonStatus records a status transition for one lesson.
	SetLessonStatus(ctx context.Context, userID, lessonID string, status curriculum.Status, completedAt *time.Time) error
}

// MasteryRepo reads and writes per-concept mastery counters.
type MasteryRepo interface {
	// Masteries returns all mastery rows for the user.
	Masteries(ctx context.Context, userID string) ([]ConceptMasteryData, error)

	// RecordAttempt atomically increments practice_count (and
	// correct_count when correct) for one concept, creating the row on
	// first attempt. Concurrent turns may race on the same concept, so
	// the increment happens in a single SQL statement.
	RecordAttempt(ctx context.Context, userID, concept string, correct bool) error
}

// ChatRepo reads and writes chat messages and session summaries.
type ChatRepo interface {
	// Append durably records one message.
	Append(ctx context.Context, msg ChatMessageData) error

	// Messages returns a session's messages ordered oldest first.
	Messages(ctx context.Context, sessionID string) ([]ChatMessageData, error)

	// CountMessages returns the session's cumulative message count.
	CountMessages(ctx context.Context, sessionID string) (int, error)

	// RecentSummaries returns up to limit summaries for the user,
	// newest first.
	RecentSummaries(ctx context.Context, userID string, limit int) ([]SessionSummaryData, error)

	// SaveSummary persists one validated session summary.
	SaveSummary(ctx context.Context, s SessionSummaryData) error
}

// CurriculumRepo reads the published curriculum.
type CurriculumRepo interface {
	// Published returns all published paths in position order.
	Published(ctx context.Context) ([]curriculum.Path, error)

	// Upsert creates or replaces one path (used for seeding).
	Upsert(ctx context.Context, p curriculum.Path) error
}
