// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/chatmessage"
	"github.com/mkale/tutorloop/ent/predicate"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatMessageUpdate) SetSessionID(v string) *ChatMessageUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSessionID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatMessageUpdate) SetUserID(v string) *ChatMessageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableUserID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdate) SetRole(v string) *ChatMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableRole(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdate) SetContent(v string) *ChatMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableContent(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFrustrationScore sets the "frustration_score" field.
func (_u *ChatMessageUpdate) SetFrustrationScore(v float64) *ChatMessageUpdate {
	_u.mutation.ResetFrustrationScore()
	_u.mutation.SetFrustrationScore(v)
	return _u
}

// SetNillableFrustrationScore sets the "frustration_score" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableFrustrationScore(v *float64) *ChatMessageUpdate {
	if v != nil {
		_u.SetFrustrationScore(*v)
	}
	return _u
}

// AddFrustrationScore adds value to the "frustration_score" field.
func (_u *ChatMessageUpdate) AddFrustrationScore(v float64) *ChatMessageUpdate {
	_u.mutation.AddFrustrationScore(v)
	return _u
}

// SetFrustrationLevel sets the "frustration_level" field.
func (_u *ChatMessageUpdate) SetFrustrationLevel(v string) *ChatMessageUpdate {
	_u.mutation.SetFrustrationLevel(v)
	return _u
}

// SetNillableFrustrationLevel sets the "frustration_level" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableFrustrationLevel(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetFrustrationLevel(*v)
	}
	return _u
}

// SetInterrupted sets the "interrupted" field.
func (_u *ChatMessageUpdate) SetInterrupted(v bool) *ChatMessageUpdate {
	_u.mutation.SetInterrupted(v)
	return _u
}

// SetNillableInterrupted sets the "interrupted" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableInterrupted(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetInterrupted(*v)
	}
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatmessage.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := chatmessage.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatmessage.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatmessage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrustrationScore(); ok {
		_spec.SetField(chatmessage.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationScore(); ok {
		_spec.AddField(chatmessage.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FrustrationLevel(); ok {
		_spec.SetField(chatmessage.FieldFrustrationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interrupted(); ok {
		_spec.SetField(chatmessage.FieldInterrupted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatMessageUpdateOne) SetSessionID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSessionID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatMessageUpdateOne) SetUserID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableUserID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdateOne) SetRole(v string) *ChatMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableRole(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdateOne) SetContent(v string) *ChatMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableContent(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFrustrationScore sets the "frustration_score" field.
func (_u *ChatMessageUpdateOne) SetFrustrationScore(v float64) *ChatMessageUpdateOne {
	_u.mutation.ResetFrustrationScore()
	_u.mutation.SetFrustrationScore(v)
	return _u
}

// SetNillableFrustrationScore sets the "frustration_score" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableFrustrationScore(v *float64) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetFrustrationScore(*v)
	}
	return _u
}

// AddFrustrationScore adds value to the "frustration_score" field.
func (_u *ChatMessageUpdateOne) AddFrustrationScore(v float64) *ChatMessageUpdateOne {
	_u.mutation.AddFrustrationScore(v)
	return _u
}

// SetFrustrationLevel sets the "frustration_level" field.
func (_u *ChatMessageUpdateOne) SetFrustrationLevel(v string) *ChatMessageUpdateOne {
	_u.mutation.SetFrustrationLevel(v)
	return _u
}

// SetNillableFrustrationLevel sets the "frustration_level" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableFrustrationLevel(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetFrustrationLevel(*v)
	}
	return _u
}

// SetInterrupted sets the "interrupted" field.
func (_u *ChatMessageUpdateOne) SetInterrupted(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetInterrupted(v)
	return _u
}

// SetNillableInterrupted sets the "interrupted" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableInterrupted(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetInterrupted(*v)
	}
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatmessage.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := chatmessage.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := chatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessage.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
		_spec.SetField(chatmessage.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatmessage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrustrationScore(); ok {
		_spec.SetField(chatmessage.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationScore(); ok {
		_spec.AddField(chatmessage.FieldFrustrationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FrustrationLevel(); ok {
		_spec.SetField(chatmessage.FieldFrustrationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interrupted(); ok {
		_spec.SetField(chatmessage.FieldInterrupted, field.TypeBool, value)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
