// Code generated by ent, DO NOT EDIT.

package curriculumpath

import (
	"entgo.io/ent/dialect/sql"
	"github.com/mkale/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLTE(FieldID, id))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldPathID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldTitle, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldDifficulty, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldPosition, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldPublished, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldContainsFold(FieldPathID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldContainsFold(FieldTitle, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldContainsFold(FieldDifficulty, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldLTE(FieldPosition, v))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNEQ(FieldPublished, v))
}

// ModulesIsNil applies the IsNil predicate on the "modules" field.
func ModulesIsNil() predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldIsNull(FieldModules))
}

// ModulesNotNil applies the NotNil predicate on the "modules" field.
func ModulesNotNil() predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.FieldNotNull(FieldModules))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CurriculumPath) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CurriculumPath) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CurriculumPath) predicate.CurriculumPath {
	return predicate.CurriculumPath(sql.NotPredicates(p))
}
