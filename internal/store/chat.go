package store

import (
	"context"
	"fmt"

	"github.com/mkale/tutorloop/ent"
	"github.com/mkale/tutorloop/ent/chatmessage"
	"github.com/mkale/tutorloop/ent/sessionsummary"
)

// chatRepo implements ChatRepo using the ent client.
type chatRepo struct {
	client *ent.Client
}

func (r *chatRepo) Append(ctx context.Context, msg ChatMessageData) error {
	create := r.client.ChatMessage.Create().
		SetSessionID(msg.SessionID).
		SetUserID(msg.UserID).
		SetRole(msg.Role).
		SetContent(msg.Content).
		SetFrustrationScore(msg.FrustrationScore).
		SetFrustrationLevel(msg.FrustrationLevel).
		SetInterrupted(msg.Interrupted)
	if !msg.CreatedAt.IsZero() {
		create.SetCreatedAt(msg.CreatedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append chat message: %w", err)
	}
	return nil
}

func (r *chatRepo) Messages(ctx context.Context, sessionID string) ([]ChatMessageData, error) {
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt), ent.Asc(chatmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat messages: %w", err)
	}

	out := make([]ChatMessageData, len(rows))
	for i, row := range rows {
		out[i] = ChatMessageData{
			SessionID:        row.SessionID,
			UserID:           row.UserID,
			Role:             row.Role,
			Content:          row.Content,
			FrustrationScore: row.FrustrationScore,
			FrustrationLevel: row.FrustrationLevel,
			Interrupted:      row.Interrupted,
			CreatedAt:        row.CreatedAt,
		}
	}
	return out, nil
}

func (r *chatRepo) CountMessages(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count chat messages: %w", err)
	}
	return n, nil
}

func (r *chatRepo) RecentSummaries(ctx context.Context, userID string, limit int) ([]SessionSummaryData, error) {
	rows, err := r.client.SessionSummary.Query().
		Where(sessionsummary.UserID(userID)).
		Order(ent.Desc(sessionsummary.FieldCreatedAt), ent.Desc(sessionsummary.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	out := make([]SessionSummaryData, len(rows))
	for i, row := range rows {
		out[i] = SessionSummaryData{
			SessionID: row.SessionID,
			UserID:    row.UserID,
			Summary:   row.Summary,
			Concepts:  row.Concepts,
			UserState: row.UserState,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

func (r *chatRepo) SaveSummary(ctx context.Context, s SessionSummaryData) error {
	create := r.client.SessionSummary.Create().
		SetSessionID(s.SessionID).
		SetUserID(s.UserID).
		SetSummary(s.Summary).
		SetConcepts(s.Concepts).
		SetUserState(s.UserState)
	if !s.CreatedAt.IsZero() {
		create.SetCreatedAt(s.CreatedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save session summary: %w", err)
	}
	return nil
}
