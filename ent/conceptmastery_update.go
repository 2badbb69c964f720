// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/conceptmastery"
	"github.com/mkale/tutorloop/ent/predicate"
)

// ConceptMasteryUpdate is the builder for updating ConceptMastery entities.
type ConceptMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptMasteryMutation
}

// Where appends a list predicates to the ConceptMasteryUpdate builder.
func (_u *ConceptMasteryUpdate) Where(ps ...predicate.ConceptMastery) *ConceptMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConceptMasteryUpdate) SetUserID(v string) *ConceptMasteryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableUserID(v *string) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ConceptMasteryUpdate) SetConcept(v string) *ConceptMasteryUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableConcept(v *string) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ConceptMasteryUpdate) SetMasteryLevel(v int) *ConceptMasteryUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableMasteryLevel(v *int) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ConceptMasteryUpdate) AddMasteryLevel(v int) *ConceptMasteryUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *ConceptMasteryUpdate) SetPracticeCount(v int) *ConceptMasteryUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillablePracticeCount(v *int) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *ConceptMasteryUpdate) AddPracticeCount(v int) *ConceptMasteryUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ConceptMasteryUpdate) SetCorrectCount(v int) *ConceptMasteryUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ConceptMasteryUpdate) SetNillableCorrectCount(v *int) *ConceptMasteryUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ConceptMasteryUpdate) AddCorrectCount(v int) *ConceptMasteryUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// Mutation returns the ConceptMasteryMutation object of the builder.
func (_u *ConceptMasteryUpdate) Mutation() *ConceptMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptMasteryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := conceptmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := conceptmastery.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := conceptmastery.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptmastery.Table, conceptmastery.Columns, sqlgraph.NewFieldSpec(conceptmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conceptmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(conceptmastery.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptmastery.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(conceptmastery.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(conceptmastery.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(conceptmastery.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(conceptmastery.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(conceptmastery.FieldCorrectCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptMasteryUpdateOne is the builder for updating a single ConceptMastery entity.
type ConceptMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptMasteryMutation
}

// SetUserID sets the "user_id" field.
func (_u *ConceptMasteryUpdateOne) SetUserID(v string) *ConceptMasteryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableUserID(v *string) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ConceptMasteryUpdateOne) SetConcept(v string) *ConceptMasteryUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableConcept(v *string) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ConceptMasteryUpdateOne) SetMasteryLevel(v int) *ConceptMasteryUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableMasteryLevel(v *int) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ConceptMasteryUpdateOne) AddMasteryLevel(v int) *ConceptMasteryUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *ConceptMasteryUpdateOne) SetPracticeCount(v int) *ConceptMasteryUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillablePracticeCount(v *int) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *ConceptMasteryUpdateOne) AddPracticeCount(v int) *ConceptMasteryUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ConceptMasteryUpdateOne) SetCorrectCount(v int) *ConceptMasteryUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ConceptMasteryUpdateOne) SetNillableCorrectCount(v *int) *ConceptMasteryUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ConceptMasteryUpdateOne) AddCorrectCount(v int) *ConceptMasteryUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// Mutation returns the ConceptMasteryMutation object of the builder.
func (_u *ConceptMasteryUpdateOne) Mutation() *ConceptMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptMasteryUpdate builder.
func (_u *ConceptMasteryUpdateOne) Where(ps ...predicate.ConceptMastery) *ConceptMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptMasteryUpdateOne) Select(field string, fields ...string) *ConceptMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptMastery entity.
func (_u *ConceptMasteryUpdateOne) Save(ctx context.Context) (*ConceptMastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptMasteryUpdateOne) SaveX(ctx context.Context) *ConceptMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := conceptmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := conceptmastery.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := conceptmastery.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "ConceptMastery.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptMasteryUpdateOne) sqlSave(ctx context.Context) (_node *ConceptMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptmastery.Table, conceptmastery.Columns, sqlgraph.NewFieldSpec(conceptmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptmastery.FieldID)
		for _, f := range fields {
			if !conceptmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptmastery.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conceptmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(conceptmastery.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(conceptmastery.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(conceptmastery.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(conceptmastery.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(conceptmastery.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(conceptmastery.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(conceptmastery.FieldCorrectCount, field.TypeInt, value)
	}
	_node = &ConceptMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
