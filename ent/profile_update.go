// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/tutorloop/ent/predicate"
	"github.com/mkale/tutorloop/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProfileUpdate) SetUserID(v string) *ProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableUserID(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *ProfileUpdate) SetSkillLevel(v string) *ProfileUpdate {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSkillLevel(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// SetLearningGoal sets the "learning_goal" field.
func (_u *ProfileUpdate) SetLearningGoal(v string) *ProfileUpdate {
	_u.mutation.SetLearningGoal(v)
	return _u
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLearningGoal(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLearningGoal(*v)
	}
	return _u
}

// ClearLearningGoal clears the value of the "learning_goal" field.
func (_u *ProfileUpdate) ClearLearningGoal() *ProfileUpdate {
	_u.mutation.ClearLearningGoal()
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProfileUpdate) SetStreakDays(v int) *ProfileUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreakDays(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProfileUpdate) AddStreakDays(v int) *ProfileUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *ProfileUpdate) SetTotalXp(v int) *ProfileUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *ProfileUpdate) AddTotalXp(v int) *ProfileUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProfileUpdate) SetLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLessonsCompleted(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProfileUpdate) AddLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetLastChatAt sets the "last_chat_at" field.
func (_u *ProfileUpdate) SetLastChatAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastChatAt(v)
	return _u
}

// SetNillableLastChatAt sets the "last_chat_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastChatAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastChatAt(*v)
	}
	return _u
}

// ClearLastChatAt clears the value of the "last_chat_at" field.
func (_u *ProfileUpdate) ClearLastChatAt() *ProfileUpdate {
	_u.mutation.ClearLastChatAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := profile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Profile.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(profile.FieldSkillLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoal(); ok {
		_spec.SetField(profile.FieldLearningGoal, field.TypeString, value)
	}
	if _u.mutation.LearningGoalCleared() {
		_spec.ClearField(profile.FieldLearningGoal, field.TypeString)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastChatAt(); ok {
		_spec.SetField(profile.FieldLastChatAt, field.TypeTime, value)
	}
	if _u.mutation.LastChatAtCleared() {
		_spec.ClearField(profile.FieldLastChatAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProfileUpdateOne) SetUserID(v string) *ProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableUserID(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *ProfileUpdateOne) SetSkillLevel(v string) *ProfileUpdateOne {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSkillLevel(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// SetLearningGoal sets the "learning_goal" field.
func (_u *ProfileUpdateOne) SetLearningGoal(v string) *ProfileUpdateOne {
	_u.mutation.SetLearningGoal(v)
	return _u
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLearningGoal(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLearningGoal(*v)
	}
	return _u
}

// ClearLearningGoal clears the value of the "learning_goal" field.
func (_u *ProfileUpdateOne) ClearLearningGoal() *ProfileUpdateOne {
	_u.mutation.ClearLearningGoal()
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProfileUpdateOne) SetStreakDays(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreakDays(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProfileUpdateOne) AddStreakDays(v int) *ProfileUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *ProfileUpdateOne) SetTotalXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *ProfileUpdateOne) AddTotalXp(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProfileUpdateOne) SetLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLessonsCompleted(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProfileUpdateOne) AddLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetLastChatAt sets the "last_chat_at" field.
func (_u *ProfileUpdateOne) SetLastChatAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastChatAt(v)
	return _u
}

// SetNillableLastChatAt sets the "last_chat_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastChatAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastChatAt(*v)
	}
	return _u
}

// ClearLastChatAt clears the value of the "last_chat_at" field.
func (_u *ProfileUpdateOne) ClearLastChatAt() *ProfileUpdateOne {
	_u.mutation.ClearLastChatAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := profile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Profile.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(profile.FieldSkillLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoal(); ok {
		_spec.SetField(profile.FieldLearningGoal, field.TypeString, value)
	}
	if _u.mutation.LearningGoalCleared() {
		_spec.ClearField(profile.FieldLearningGoal, field.TypeString)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastChatAt(); ok {
		_spec.SetField(profile.FieldLastChatAt, field.TypeTime, value)
	}
	if _u.mutation.LastChatAtCleared() {
		_spec.ClearField(profile.FieldLastChatAt, field.TypeTime)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
