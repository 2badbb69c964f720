package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSummary is a compact recap of a chat session, generated
// asynchronously. Only schema-valid summaries are ever written.
type SessionSummary struct {
	ent.Schema
}

func (SessionSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.Text("summary"),
		field.JSON("concepts", []string{}).
			Optional(),
		field.String("user_state").
			NotEmpty().
			Comment("progressing, stuck, exploring or reviewing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (SessionSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("session_id"),
	}
}
