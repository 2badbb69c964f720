// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/sessionsummary"
)

// SessionSummaryCreate is the builder for creating a SessionSummary entity.
type SessionSummaryCreate struct {
	config
	mutation *SessionSummaryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionSummaryCreate) SetSessionID(v string) *SessionSummaryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionSummaryCreate) SetUserID(v string) *SessionSummaryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionSummaryCreate) SetSummary(v string) *SessionSummaryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetConcepts sets the "concepts" field.
func (_c *SessionSummaryCreate) SetConcepts(v []string) *SessionSummaryCreate {
	_c.mutation.SetConcepts(v)
	return _c
}

// SetUserState sets the "user_state" field.
func (_c *SessionSummaryCreate) SetUserState(v string) *SessionSummaryCreate {
	_c.mutation.SetUserState(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionSummaryCreate) SetCreatedAt(v time.Time) *SessionSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionSummaryCreate) SetNillableCreatedAt(v *time.Time) *SessionSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_c *SessionSummaryCreate) Mutation() *SessionSummaryMutation {
	return _c.mutation
}

// Save creates the SessionSummary in the database.
func (_c *SessionSummaryCreate) Save(ctx context.Context) (*SessionSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionSummaryCreate) SaveX(ctx context.Context) *SessionSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionSummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionsummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionSummaryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionSummary.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionsummary.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionSummary.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := sessionsummary.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "SessionSummary.summary"`)}
	}
	if _, ok := _c.mutation.UserState(); !ok {
		return &ValidationError{Name: "user_state", err: errors.New(`ent: missing required field "SessionSummary.user_state"`)}
	}
	if v, ok := _c.mutation.UserState(); ok {
		if err := sessionsummary.UserStateValidator(v); err != nil {
			return &ValidationError{Name: "user_state", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.user_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionSummary.created_at"`)}
	}
	return nil
}

func (_c *SessionSummaryCreate) sqlSave(ctx context.Context) (*SessionSummary, error) {
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

func (_c *SessionSummaryCreate) createSpec() (*SessionSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionsummary.Table, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionsummary.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionsummary.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(sessionsummary.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Concepts(); ok {
		_spec.SetField(sessionsummary.FieldConcepts, field.TypeJSON, value)
		_node.Concepts = value
	}
	if value, ok := _c.mutation.UserState(); ok {
		_spec.SetField(sessionsummary.FieldUserState, field.TypeString, value)
		_node.UserState = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionsummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SessionSummaryCreateBulk is the builder for creating many SessionSummary entities in bulk.
type SessionSummaryCreateBulk struct {
	config
	err      error
	builders []*SessionSummaryCreate
}

// Save creates the SessionSummary entities in the database.
func (_c *SessionSummaryCreateBulk) Save(ctx context.Context) ([]*SessionSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionSummaryMutation)
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
func (_c *SessionSummaryCreateBulk) SaveX(ctx context.Context) []*SessionSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
