// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/curriculumpath"
	"github.com/mkale/tutorloop/ent/predicate"
)

// CurriculumPathDelete is the builder for deleting a CurriculumPath entity.
type CurriculumPathDelete struct {
	config
	hooks    []Hook
	mutation *CurriculumPathMutation
}

// Where appends a list predicates to the CurriculumPathDelete builder.
func (_d *CurriculumPathDelete) Where(ps ...predicate.CurriculumPath) *CurriculumPathDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CurriculumPathDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CurriculumPathDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CurriculumPathDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(curriculumpath.Table, sqlgraph.NewFieldSpec(curriculumpath.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CurriculumPathDeleteOne is the builder for deleting a single CurriculumPath entity.
type CurriculumPathDeleteOne struct {
	_d *CurriculumPathDelete
}

// Where appends a list predicates to the CurriculumPathDelete builder.
func (_d *CurriculumPathDeleteOne) Where(ps ...predicate.CurriculumPath) *CurriculumPathDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CurriculumPathDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{curriculumpath.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CurriculumPathDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
