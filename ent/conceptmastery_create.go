// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/conceptmastery"
)

// ConceptMasteryCreate is the builder for creating a ConceptMastery entity.
type ConceptMasteryCreate struct {
	config
	mutation *ConceptMasteryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ConceptMasteryCreate) SetUserID(v string) *ConceptMasteryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *ConceptMasteryCreate) SetConcept(v string) *ConceptMasteryCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *ConceptMasteryCreate) SetMasteryLevel(v int) *ConceptMasteryCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableMasteryLevel(v *int) *ConceptMasteryCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *ConceptMasteryCreate) SetPracticeCount(v int) *ConceptMasteryCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillablePracticeCount(v *int) *ConceptMasteryCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *ConceptMasteryCreate) SetCorrectCount(v int) *ConceptMasteryCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *ConceptMasteryCreate) SetNillableCorrectCount(v *int) *ConceptMasteryCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// Mutation returns the ConceptMasteryMutation object of the builder.
func (_c *ConceptMasteryCreate) Mutation() *ConceptMasteryMutation {
	return _c.mutation
}

// Save creates the ConceptMastery in the database.
func (_c *ConceptMasteryCreate) Save(ctx context.Context) (*ConceptMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptMasteryCreate) SaveX(ctx context.Context) *ConceptMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptMasteryCreate) defaults() {
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := conceptmastery.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := conceptmastery.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := conceptmastery.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptMasteryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ConceptMastery.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := conceptmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "ConceptMastery.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := conceptmastery.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ConceptMastery.mastery_level"`)}
	}
	if v, ok := _c.mutation.MasteryLevel(); ok {
		if err := conceptmastery.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.mastery_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "ConceptMastery.practice_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "ConceptMastery.correct_count"`)}
	}
	return nil
}

func (_c *ConceptMasteryCreate) sqlSave(ctx context.Context) (*ConceptMastery, error) {
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

func (_c *ConceptMasteryCreate) createSpec() (*ConceptMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptmastery.Table, sqlgraph.NewFieldSpec(conceptmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conceptmastery.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(conceptmastery.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptmastery.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(conceptmastery.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(conceptmastery.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	return _node, _spec
}

// ConceptMasteryCreateBulk is the builder for creating many ConceptMastery entities in bulk.
type ConceptMasteryCreateBulk struct {
	config
	err      error
	builders []*ConceptMasteryCreate
}

// Save creates the ConceptMastery entities in the database.
func (_c *ConceptMasteryCreateBulk) Save(ctx context.Context) ([]*ConceptMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptMasteryMutation)
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
func (_c *ConceptMasteryCreateBulk) SaveX(ctx context.Context) []*ConceptMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
