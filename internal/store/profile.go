package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkale/tutorloop/ent"
	"github.com/mkale/tutorloop/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*ProfileData, error) {
	p, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &ProfileData{
		UserID:           p.UserID,
		Name:             p.Name,
		SkillLevel:       p.SkillLevel,
		LearningGoal:     p.LearningGoal,
		StreakDays:       p.StreakDays,
		TotalXP:          p.TotalXp,
		LessonsCompleted: p.LessonsCompleted,
		LastChatAt:       p.LastChatAt,
	}, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p ProfileData) error {
	existing, err := r.client.Profile.Query().
		Where(profile.UserID(p.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if existing == nil {
		create := r.client.Profile.Create().
			SetUserID(p.UserID).
			SetName(p.Name).
			SetSkillLevel(p.SkillLevel).
			SetLearningGoal(p.LearningGoal).
			SetStreakDays(p.StreakDays).
			SetTotalXp(p.TotalXP).
			SetLessonsCompleted(p.LessonsCompleted)
		if p.LastChatAt != nil {
			create.SetLastChatAt(*p.LastChatAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetName(p.Name).
		SetSkillLevel(p.SkillLevel).
		SetLearningGoal(p.LearningGoal).
		SetStreakDays(p.StreakDays).
		SetTotalXp(p.TotalXP).
		SetLessonsCompleted(p.LessonsCompleted)
	if p.LastChatAt != nil {
		update.SetLastChatAt(*p.LastChatAt)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *profileRepo) TouchLastChat(ctx context.Context, userID string, at time.Time) error {
	n, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		SetLastChatAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch last chat: %w", err)
	}
	if n == 0 {
		_, err := r.client.Profile.Create().
			SetUserID(userID).
			SetLastChatAt(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile on touch: %w", err)
		}
	}
	return nil
}
