package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one turn message in a chat session. User messages carry
// the frustration score/level computed for that turn; the full
// FrustrationResult is never persisted.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping messages in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("role").
			NotEmpty().
			Comment("user or assistant"),
		field.Text("content"),
		field.Float("frustration_score").
			Default(0).
			Comment("User messages only"),
		field.String("frustration_level").
			Default("").
			Comment("none, mild or high; user messages only"),
		field.Bool("interrupted").
			Default(false).
			Comment("Assistant messages persisted from a broken stream"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("user_id"),
	}
}
