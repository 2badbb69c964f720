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
	"github.com/mkale/tutorloop/ent/curriculumpath"
	"github.com/mkale/tutorloop/ent/predicate"
	"github.com/mkale/tutorloop/ent/schema"
)

// CurriculumPathUpdate is the builder for updating CurriculumPath entities.
type CurriculumPathUpdate struct {
	config
	hooks    []Hook
	mutation *CurriculumPathMutation
}

// Where appends a list predicates to the CurriculumPathUpdate builder.
func (_u *CurriculumPathUpdate) Where(ps ...predicate.CurriculumPath) *CurriculumPathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *CurriculumPathUpdate) SetPathID(v string) *CurriculumPathUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *CurriculumPathUpdate) SetNillablePathID(v *string) *CurriculumPathUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CurriculumPathUpdate) SetTitle(v string) *CurriculumPathUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CurriculumPathUpdate) SetNillableTitle(v *string) *CurriculumPathUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CurriculumPathUpdate) SetDifficulty(v string) *CurriculumPathUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CurriculumPathUpdate) SetNillableDifficulty(v *string) *CurriculumPathUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CurriculumPathUpdate) SetPosition(v int) *CurriculumPathUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CurriculumPathUpdate) SetNillablePosition(v *int) *CurriculumPathUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CurriculumPathUpdate) AddPosition(v int) *CurriculumPathUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CurriculumPathUpdate) SetPublished(v bool) *CurriculumPathUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CurriculumPathUpdate) SetNillablePublished(v *bool) *CurriculumPathUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *CurriculumPathUpdate) SetModules(v []schema.ModuleDoc) *CurriculumPathUpdate {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *CurriculumPathUpdate) AppendModules(v []schema.ModuleDoc) *CurriculumPathUpdate {
	_u.mutation.AppendModules(v)
	return _u
}

// ClearModules clears the value of the "modules" field.
func (_u *CurriculumPathUpdate) ClearModules() *CurriculumPathUpdate {
	_u.mutation.ClearModules()
	return _u
}

// Mutation returns the CurriculumPathMutation object of the builder.
func (_u *CurriculumPathUpdate) Mutation() *CurriculumPathMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CurriculumPathUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumPathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CurriculumPathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumPathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumPathUpdate) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := curriculumpath.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumPath.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := curriculumpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CurriculumPath.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CurriculumPathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculumpath.Table, curriculumpath.Columns, sqlgraph.NewFieldSpec(curriculumpath.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(curriculumpath.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(curriculumpath.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(curriculumpath.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(curriculumpath.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(curriculumpath.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(curriculumpath.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(curriculumpath.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curriculumpath.FieldModules, value)
		})
	}
	if _u.mutation.ModulesCleared() {
		_spec.ClearField(curriculumpath.FieldModules, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculumpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CurriculumPathUpdateOne is the builder for updating a single CurriculumPath entity.
type CurriculumPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CurriculumPathMutation
}

// SetPathID sets the "path_id" field.
func (_u *CurriculumPathUpdateOne) SetPathID(v string) *CurriculumPathUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *CurriculumPathUpdateOne) SetNillablePathID(v *string) *CurriculumPathUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CurriculumPathUpdateOne) SetTitle(v string) *CurriculumPathUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CurriculumPathUpdateOne) SetNillableTitle(v *string) *CurriculumPathUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CurriculumPathUpdateOne) SetDifficulty(v string) *CurriculumPathUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CurriculumPathUpdateOne) SetNillableDifficulty(v *string) *CurriculumPathUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CurriculumPathUpdateOne) SetPosition(v int) *CurriculumPathUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CurriculumPathUpdateOne) SetNillablePosition(v *int) *CurriculumPathUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CurriculumPathUpdateOne) AddPosition(v int) *CurriculumPathUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CurriculumPathUpdateOne) SetPublished(v bool) *CurriculumPathUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CurriculumPathUpdateOne) SetNillablePublished(v *bool) *CurriculumPathUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *CurriculumPathUpdateOne) SetModules(v []schema.ModuleDoc) *CurriculumPathUpdateOne {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *CurriculumPathUpdateOne) AppendModules(v []schema.ModuleDoc) *CurriculumPathUpdateOne {
	_u.mutation.AppendModules(v)
	return _u
}

// ClearModules clears the value of the "modules" field.
func (_u *CurriculumPathUpdateOne) ClearModules() *CurriculumPathUpdateOne {
	_u.mutation.ClearModules()
	return _u
}

// Mutation returns the CurriculumPathMutation object of the builder.
func (_u *CurriculumPathUpdateOne) Mutation() *CurriculumPathMutation {
	return _u.mutation
}

// Where appends a list predicates to the CurriculumPathUpdate builder.
func (_u *CurriculumPathUpdateOne) Where(ps ...predicate.CurriculumPath) *CurriculumPathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CurriculumPathUpdateOne) Select(field string, fields ...string) *CurriculumPathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CurriculumPath entity.
func (_u *CurriculumPathUpdateOne) Save(ctx context.Context) (*CurriculumPath, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumPathUpdateOne) SaveX(ctx context.Context) *CurriculumPath {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CurriculumPathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumPathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumPathUpdateOne) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := curriculumpath.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "CurriculumPath.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := curriculumpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CurriculumPath.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CurriculumPathUpdateOne) sqlSave(ctx context.Context) (_node *CurriculumPath, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculumpath.Table, curriculumpath.Columns, sqlgraph.NewFieldSpec(curriculumpath.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CurriculumPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curriculumpath.FieldID)
		for _, f := range fields {
			if !curriculumpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != curriculumpath.FieldID {
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
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(curriculumpath.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(curriculumpath.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(curriculumpath.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(curriculumpath.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(curriculumpath.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(curriculumpath.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(curriculumpath.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, curriculumpath.FieldModules, value)
		})
	}
	if _u.mutation.ModulesCleared() {
		_spec.ClearField(curriculumpath.FieldModules, field.TypeJSON)
	}
	_node = &CurriculumPath{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculumpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
