package track

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkale/tutorloop/internal/curriculum"
	"github.com/mkale/tutorloop/internal/store"
)

type fakeProfileRepo struct {
	profile *store.ProfileData
	getErr  error
}

func (f *fakeProfileRepo) Get(context.Context, string) (*store.ProfileData, error) {
	return f.profile, f.getErr
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p store.ProfileData) error {
	f.profile = &p
	return nil
}

func (f *fakeProfileRepo) TouchLastChat(context.Context, string, time.Time) error { return nil }

type fakeProgressRepo struct {
	statuses map[string]curriculum.StatusEntry
	err      error
}

func (f *fakeProgressRepo) LessonStatuses(context.Context, string) (map[string]curriculum.StatusEntry, error) {
	return f.statuses, nil
}

func (f *fakeProgressRepo) SetLessonStatus(_ context.Context, _, lessonID string, status curriculum.Status, completedAt *time.Time) error {
	if f.err != nil {
		return f.err
	}
	if f.statuses == nil {
		f.statuses = make(map[string]curriculum.StatusEntry)
	}
	f.statuses[lessonID] = curriculum.StatusEntry{Status: status, CompletedAt: completedAt}
	return nil
}

type fakeMasteryRepo struct {
	attempts []string
}

func (f *fakeMasteryRepo) Masteries(context.Context, string) ([]store.ConceptMasteryData, error) {
	return nil, nil
}

func (f *fakeMasteryRepo) RecordAttempt(_ context.Context, _, concept string, correct bool) error {
	suffix := ":wrong"
	if correct {
		suffix = ":correct"
	}
	f.attempts = append(f.attempts, concept+suffix)
	return nil
}

func newTestService(profiles *fakeProfileRepo, progress *fakeProgressRepo, mastery *fakeMasteryRepo) *Service {
	return NewService(DefaultConfig(), profiles, progress, mastery, zap.NewNop())
}

func timePtr(t time.Time) *time.Time { return &t }

func TestCompleteLesson_UpdatesProfileCounters(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &store.ProfileData{
		UserID: "u1", LessonsCompleted: 2, TotalXP: 100,
	}}
	progress := &fakeProgressRepo{}
	svc := newTestService(profiles, progress, &fakeMasteryRepo{})

	require.NoError(t, svc.CompleteLesson(context.Background(), "u1", "l-loops"))

	entry := progress.statuses["l-loops"]
	assert.Equal(t, curriculum.StatusCompleted, entry.Status)
	assert.NotNil(t, entry.CompletedAt)
	assert.Equal(t, 3, profiles.profile.LessonsCompleted)
	assert.Equal(t, 150, profiles.profile.TotalXP)
}

func TestCompleteLesson_CreatesProfileWhenAbsent(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newTestService(profiles, &fakeProgressRepo{}, &fakeMasteryRepo{})

	require.NoError(t, svc.CompleteLesson(context.Background(), "u1", "l1"))
	require.NotNil(t, profiles.profile)
	assert.Equal(t, "u1", profiles.profile.UserID)
	assert.Equal(t, 1, profiles.profile.StreakDays, "first activity starts a streak")
}

func TestCompleteLesson_StatusWriteFailureAborts(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &store.ProfileData{UserID: "u1", TotalXP: 10}}
	progress := &fakeProgressRepo{err: errors.New("db locked")}
	svc := newTestService(profiles, progress, &fakeMasteryRepo{})

	require.Error(t, svc.CompleteLesson(context.Background(), "u1", "l1"))
	assert.Equal(t, 10, profiles.profile.TotalXP, "profile must not change when the status write fails")
}

func TestStartLesson(t *testing.T) {
	progress := &fakeProgressRepo{}
	svc := newTestService(&fakeProfileRepo{}, progress, &fakeMasteryRepo{})

	require.NoError(t, svc.StartLesson(context.Background(), "u1", "l1"))
	assert.Equal(t, curriculum.StatusInProgress, progress.statuses["l1"].Status)
}

func TestRecordAttempt(t *testing.T) {
	mastery := &fakeMasteryRepo{}
	svc := newTestService(&fakeProfileRepo{}, &fakeProgressRepo{}, mastery)

	require.NoError(t, svc.RecordAttempt(context.Background(), "u1", "loops", false))
	require.NoError(t, svc.RecordAttempt(context.Background(), "u1", "loops", true))
	assert.Equal(t, []string{"loops:wrong", "loops:correct"}, mastery.attempts)
}

func TestNextStreak(t *testing.T) {
	noon := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
	}

	cases := []struct {
		name    string
		current int
		last    *time.Time
		now     time.Time
		want    int
	}{
		{"first activity", 0, nil, noon(2026, 8, 28), 1},
		{"same day keeps streak", 4, timePtr(noon(2026, 8, 28)), noon(2026, 8, 28).Add(5 * time.Hour), 4},
		{"next day extends", 4, timePtr(noon(2026, 8, 27)), noon(2026, 8, 28), 5},
		{"gap resets", 9, timePtr(noon(2026, 8, 20)), noon(2026, 8, 28), 1},
		{"same day floors at one", 0, timePtr(noon(2026, 8, 28)), noon(2026, 8, 28), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextStreak(tc.current, tc.last, tc.now))
		})
	}
}
