package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CurriculumPath is one published learning path. The nested module and
// lesson tree is stored as a JSON document; the progression builder
// flattens it per request.
type CurriculumPath struct {
	ent.Schema
}

// ModuleDoc is the serialized form of a module within a path.
type ModuleDoc struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Order   int         `json:"order"`
	Lessons []LessonDoc `json:"lessons"`
}

// LessonDoc is the serialized form of a lesson within a module.
type LessonDoc struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Order    int      `json:"order"`
	Concepts []string `json:"concepts"`
}

func (CurriculumPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			NotEmpty().
			Unique(),
		field.String("title").
			NotEmpty(),
		field.String("difficulty").
			Default("beginner"),
		field.Int("position").
			Default(0).
			Comment("Path order within the published curriculum"),
		field.Bool("published").
			Default(true),
		field.JSON("modules", []ModuleDoc{}).
			Optional(),
	}
}

func (CurriculumPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
		index.Fields("published"),
	}
}
