package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkale/tutorloop/ent"
	"github.com/mkale/tutorloop/ent/lessonprogress"
	"github.com/mkale/tutorloop/internal/curriculum"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) LessonStatuses(ctx context.Context, userID string) (map[string]curriculum.StatusEntry, error) {
	rows, err := r.client.LessonProgress.Query().
		Where(lessonprogress.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson progress: %w", err)
	}

	statuses := make(map[string]curriculum.StatusEntry, len(rows))
	for _, row := range rows {
		statuses[row.LessonID] = curriculum.StatusEntry{
			Status:      curriculum.Status(row.Status),
			CompletedAt: row.CompletedAt,
		}
	}
	return statuses, nil
}

func (r *progressRepo) SetLessonStatus(ctx context.Context, userID, lessonID string, status curriculum.Status, completedAt *time.Time) error {
	update := r.client.LessonProgress.Update().
		Where(
			lessonprogress.UserID(userID),
			lessonprogress.LessonID(lessonID),
		).
		SetStatus(string(status))
	if completedAt != nil {
		update.SetCompletedAt(*completedAt)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("update lesson progress: %w", err)
	}
	if n > 0 {
		return nil
	}

	create := r.client.LessonProgress.Create().
		SetUserID(userID).
		SetLessonID(lessonID).
		SetStatus(string(status))
	if completedAt != nil {
		create.SetCompletedAt(*completedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create lesson progress: %w", err)
	}
	return nil
}
