package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkale/tutorloop/ent"
	"github.com/mkale/tutorloop/ent/conceptmastery"
)

// masteryRepo implements MasteryRepo using the ent client plus one raw
// SQL statement for the atomic counter increment.
type masteryRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *masteryRepo) Masteries(ctx context.Context, userID string) ([]ConceptMasteryData, error) {
	rows, err := r.client.ConceptMastery.Query().
		Where(conceptmastery.UserID(userID)).
		Order(ent.Asc(conceptmastery.FieldConcept)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concept mastery: %w", err)
	}

	out := make([]ConceptMasteryData, len(rows))
	for i, row := range rows {
		out[i] = ConceptMasteryData{
			Concept:       row.Concept,
			MasteryLevel:  row.MasteryLevel,
			PracticeCount: row.PracticeCount,
			CorrectCount:  row.CorrectCount,
		}
	}
	return out, nil
}

func (r *masteryRepo) RecordAttempt(ctx context.Context, userID, concept string, correct bool) error {
	correctInc := 0
	if correct {
		correctInc = 1
	}

	// Single upsert so concurrent turns never lose an increment.
	const q = `
INSERT INTO concept_masteries (user_id, concept, mastery_level, practice_count, correct_count)
VALUES (?, ?, 0, 1, ?)
ON CONFLICT (user_id, concept) DO UPDATE SET
    practice_count = practice_count + 1,
    correct_count = correct_count + ?`

	if _, err := r.db.ExecContext(ctx, q, userID, concept, correctInc, correctInc); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}
