// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/curriculumpath"
	"github.com/mkale/tutorloop/ent/schema"
)

// CurriculumPathCreate is the builder for creating a CurriculumPath entity.
type CurriculumPathCreate struct {
	config
	mutation *CurriculumPathMutation
	hooks    []Hook
}

// SetPathID sets the "path_id" field.
func (_c *CurriculumPathCreate) SetPathID(v string) *CurriculumPathCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CurriculumPathCreate) SetTitle(v string) *CurriculumPathCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CurriculumPathCreate) SetDifficulty(v string) *CurriculumPathCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *CurriculumPathCreate) SetNillableDifficulty(v *string) *CurriculumPathCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CurriculumPathCreate) SetPosition(v int) *CurriculumPathCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CurriculumPathCreate) SetNillablePosition(v *int) *CurriculumPathCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *CurriculumPathCreate) SetPublished(v bool) *CurriculumPathCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *CurriculumPathCreate) SetNillablePublished(v *bool) *CurriculumPathCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetModules sets the "modules" field.
func (_c *CurriculumPathCreate) SetModules(v []schema.ModuleDoc) *CurriculumPathCreate {
	_c.mutation.SetModules(v)
	return _c
}

// Mutation returns the CurriculumPathMutation object of the builder.
func (_c *CurriculumPathCreate) Mutation() *CurriculumPathMutation {
	return _c.mutation
}

// Save creates the CurriculumPath in the database.
func (_c *CurriculumPathCreate) Save(ctx context.Context) (*CurriculumPath, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CurriculumPathCreate) SaveX(ctx context.Context) *CurriculumPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumPathCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumPathCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CurriculumPathCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := curriculumpath.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := curriculumpath.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := curriculumpath.DefaultPublished
		_c.mutation.SetPublished(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CurriculumPathCreate) check() error {
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "CurriculumPath.path_id"`)}
	}
	if v, ok := _c.mutation.PathID(); ok {
		if err := curriculumpath.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumPath.path_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CurriculumPath.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := curriculumpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CurriculumPath.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CurriculumPath.difficulty"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CurriculumPath.position"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`ent: missing required field "CurriculumPath.published"`)}
	}
	return nil
}

func (_c *CurriculumPathCreate) sqlSave(ctx context.Context) (*CurriculumPath, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CurriculumPathCreate) createSpec() (*CurriculumPath, *sqlgraph.CreateSpec) {
	var (
		_node = &CurriculumPath{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(curriculumpath.Table, sqlgraph.NewFieldSpec(curriculumpath.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(curriculumpath.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(curriculumpath.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(curriculumpath.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(curriculumpath.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(curriculumpath.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.Modules(); ok {
		_spec.SetField(curriculumpath.FieldModules, field.TypeJSON, value)
		_node.Modules = value
	}
	return _node, _spec
}

// CurriculumPathCreateBulk is the builder for creating many CurriculumPath entities in bulk.
type CurriculumPathCreateBulk struct {
	config
	err      error
	builders []*CurriculumPathCreate
}

// Save creates the CurriculumPath entities in the database.
func (_c *CurriculumPathCreateBulk) Save(ctx context.Context) ([]*CurriculumPath, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CurriculumPath, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CurriculumPathMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CurriculumPathCreateBulk) SaveX(ctx context.Context) []*CurriculumPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumPathCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumPathCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
