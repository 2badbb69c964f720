package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile holds per-user learner profile fields consumed by the
// context assembler. One row per user.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("External user identity"),
		field.String("name").
			Default("Learner"),
		field.String("skill_level").
			Default("beginner").
			Comment("beginner, intermediate or advanced"),
		field.String("learning_goal").
			Optional(),
		field.Int("streak_days").
			Default(0),
		field.Int("total_xp").
			Default(0),
		field.Int("lessons_completed").
			Default(0),
		field.Time("last_chat_at").
			Optional().
			Nillable().
			Comment("Updated best-effort after each turn"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
