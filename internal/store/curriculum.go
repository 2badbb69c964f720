package store

import (
	"context"
	"fmt"

	"github.com/mkale/tutorloop/ent"
	"github.com/mkale/tutorloop/ent/curriculumpath"
	"github.com/mkale/tutorloop/ent/schema"
	"github.com/mkale/tutorloop/internal/curriculum"
)

// curriculumRepo implements CurriculumRepo using the ent client.
type curriculumRepo struct {
	client *ent.Client
}

func (r *curriculumRepo) Published(ctx context.Context) ([]curriculum.Path, error) {
	rows, err := r.client.CurriculumPath.Query().
		Where(curriculumpath.Published(true)).
		Order(ent.Asc(curriculumpath.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query curriculum: %w", err)
	}

	paths := make([]curriculum.Path, len(rows))
	for i, row := range rows {
		paths[i] = curriculum.Path{
			ID:         row.PathID,
			Title:      row.Title,
			Difficulty: row.Difficulty,
			Order:      row.Position,
			Modules:    modulesFromDocs(row.Modules),
		}
	}
	return paths, nil
}

func (r *curriculumRepo) Upsert(ctx context.Context, p curriculum.Path) error {
	docs := modulesToDocs(p.Modules)

	n, err := r.client.CurriculumPath.Update().
		Where(curriculumpath.PathID(p.ID)).
		SetTitle(p.Title).
		SetDifficulty(p.Difficulty).
		SetPosition(p.Order).
		SetModules(docs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update curriculum path: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CurriculumPath.Create().
		SetPathID(p.ID).
		SetTitle(p.Title).
		SetDifficulty(p.Difficulty).
		SetPosition(p.Order).
		SetModules(docs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create curriculum path: %w", err)
	}
	return nil
}

func modulesFromDocs(docs []schema.ModuleDoc) []curriculum.Module {
	modules := make([]curriculum.Module, len(docs))
	for i, d := range docs {
		lessons := make([]curriculum.Lesson, len(d.Lessons))
		for j, l := range d.Lessons {
			lessons[j] = curriculum.Lesson{
				ID:       l.ID,
				Title:    l.Title,
				Order:    l.Order,
				Concepts: l.Concepts,
			}
		}
		modules[i] = curriculum.Module{
			ID:      d.ID,
			Title:   d.Title,
			Order:   d.Order,
			Lessons: lessons,
		}
	}
	return modules
}

func modulesToDocs(modules []curriculum.Module) []schema.ModuleDoc {
	docs := make([]schema.ModuleDoc, len(modules))
	for i, m := range modules {
		lessons := make([]schema.LessonDoc, len(m.Lessons))
		for j, l := range m.Lessons {
			lessons[j] = schema.LessonDoc{
				ID:       l.ID,
				Title:    l.Title,
				Order:    l.Order,
				Concepts: l.Concepts,
			}
		}
		docs[i] = schema.ModuleDoc{
			ID:      m.ID,
			Title:   m.Title,
			Order:   m.Order,
			Lessons: lessons,
		}
	}
	return docs
}
