// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/predicate"
	"github.com/mkale/tutorloop/ent/sessionsummary"
)

// SessionSummaryUpdate is the builder for updating SessionSummary entities.
type SessionSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SessionSummaryMutation
}

// Where appends a list predicates to the SessionSummaryUpdate builder.
func (_u *SessionSummaryUpdate) Where(ps ...predicate.SessionSummary) *SessionSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSummaryUpdate) SetSessionID(v string) *SessionSummaryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableSessionID(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionSummaryUpdate) SetUserID(v string) *SessionSummaryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableUserID(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionSummaryUpdate) SetSummary(v string) *SessionSummaryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableSummary(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *SessionSummaryUpdate) SetConcepts(v []string) *SessionSummaryUpdate {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *SessionSummaryUpdate) AppendConcepts(v []string) *SessionSummaryUpdate {
	_u.mutation.AppendConcepts(v)
	return _u
}

// ClearConcepts clears the value of the "concepts" field.
func (_u *SessionSummaryUpdate) ClearConcepts() *SessionSummaryUpdate {
	_u.mutation.ClearConcepts()
	return _u
}

// SetUserState sets the "user_state" field.
func (_u *SessionSummaryUpdate) SetUserState(v string) *SessionSummaryUpdate {
	_u.mutation.SetUserState(v)
	return _u
}

// SetNillableUserState sets the "user_state" field if the given value is not nil.
func (_u *SessionSummaryUpdate) SetNillableUserState(v *string) *SessionSummaryUpdate {
	if v != nil {
		_u.SetUserState(*v)
	}
	return _u
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_u *SessionSummaryUpdate) Mutation() *SessionSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSummaryUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsummary.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionsummary.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserState(); ok {
		if err := sessionsummary.UserStateValidator(v); err != nil {
			return &ValidationError{Name: "user_state", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.user_state": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsummary.Table, sessionsummary.Columns, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionsummary.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionsummary.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(sessionsummary.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionsummary.FieldConcepts, value)
		})
	}
	if _u.mutation.ConceptsCleared() {
		_spec.ClearField(sessionsummary.FieldConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserState(); ok {
		_spec.SetField(sessionsummary.FieldUserState, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionSummaryUpdateOne is the builder for updating a single SessionSummary entity.
type SessionSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionSummaryMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionSummaryUpdateOne) SetSessionID(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableSessionID(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionSummaryUpdateOne) SetUserID(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableUserID(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionSummaryUpdateOne) SetSummary(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableSummary(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetConcepts sets the "concepts" field.
func (_u *SessionSummaryUpdateOne) SetConcepts(v []string) *SessionSummaryUpdateOne {
	_u.mutation.SetConcepts(v)
	return _u
}

// AppendConcepts appends value to the "concepts" field.
func (_u *SessionSummaryUpdateOne) AppendConcepts(v []string) *SessionSummaryUpdateOne {
	_u.mutation.AppendConcepts(v)
	return _u
}

// ClearConcepts clears the value of the "concepts" field.
func (_u *SessionSummaryUpdateOne) ClearConcepts() *SessionSummaryUpdateOne {
	_u.mutation.ClearConcepts()
	return _u
}

// SetUserState sets the "user_state" field.
func (_u *SessionSummaryUpdateOne) SetUserState(v string) *SessionSummaryUpdateOne {
	_u.mutation.SetUserState(v)
	return _u
}

// SetNillableUserState sets the "user_state" field if the given value is not nil.
func (_u *SessionSummaryUpdateOne) SetNillableUserState(v *string) *SessionSummaryUpdateOne {
	if v != nil {
		_u.SetUserState(*v)
	}
	return _u
}

// Mutation returns the SessionSummaryMutation object of the builder.
func (_u *SessionSummaryUpdateOne) Mutation() *SessionSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionSummaryUpdate builder.
func (_u *SessionSummaryUpdateOne) Where(ps ...predicate.SessionSummary) *SessionSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionSummaryUpdateOne) Select(field string, fields ...string) *SessionSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionSummary entity.
func (_u *SessionSummaryUpdateOne) Save(ctx context.Context) (*SessionSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionSummaryUpdateOne) SaveX(ctx context.Context) *SessionSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionsummary.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionsummary.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserState(); ok {
		if err := sessionsummary.UserStateValidator(v); err != nil {
			return &ValidationError{Name: "user_state", err: fmt.Errorf(`ent: validator failed for field "SessionSummary.user_state": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionSummaryUpdateOne) sqlSave(ctx context.Context) (_node *SessionSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionsummary.Table, sessionsummary.Columns, sqlgraph.NewFieldSpec(sessionsummary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionsummary.FieldID)
		for _, f := range fields {
			if !sessionsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionsummary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionsummary.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionsummary.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionsummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concepts(); ok {
		_spec.SetField(sessionsummary.FieldConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionsummary.FieldConcepts, value)
		})
	}
	if _u.mutation.ConceptsCleared() {
		_spec.ClearField(sessionsummary.FieldConcepts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserState(); ok {
		_spec.SetField(sessionsummary.FieldUserState, field.TypeString, value)
	}
	_node = &SessionSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
