package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptMastery tracks a user's demonstrated competence on one concept.
// Counters are incremented atomically at the storage layer because
// concurrent turns may record attempts for the same concept.
type ConceptMastery struct {
	ent.Schema
}

func (ConceptMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("concept").
			NotEmpty(),
		field.Int("mastery_level").
			Default(0).
			Min(0).
			Max(100),
		field.Int("practice_count").
			Default(0),
		field.Int("correct_count").
			Default(0),
	}
}

func (ConceptMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept").Unique(),
	}
}
