// Code generated by ent, DO NOT EDIT.

package sessionsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldUserID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSummary, v))
}

// UserState applies equality check predicate on the "user_state" field. It's identical to UserStateEQ.
func UserState(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldUserState, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldUserID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldSummary, v))
}

// ConceptsIsNil applies the IsNil predicate on the "concepts" field.
func ConceptsIsNil() predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIsNull(FieldConcepts))
}

// ConceptsNotNil applies the NotNil predicate on the "concepts" field.
func ConceptsNotNil() predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotNull(FieldConcepts))
}

// UserStateEQ applies the EQ predicate on the "user_state" field.
func UserStateEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldUserState, v))
}

// UserStateNEQ applies the NEQ predicate on the "user_state" field.
func UserStateNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldUserState, v))
}

// UserStateIn applies the In predicate on the "user_state" field.
func UserStateIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldUserState, vs...))
}

// UserStateNotIn applies the NotIn predicate on the "user_state" field.
func UserStateNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldUserState, vs...))
}

// UserStateGT applies the GT predicate on the "user_state" field.
func UserStateGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldUserState, v))
}

// UserStateGTE applies the GTE predicate on the "user_state" field.
func UserStateGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldUserState, v))
}

// UserStateLT applies the LT predicate on the "user_state" field.
func UserStateLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldUserState, v))
}

// UserStateLTE applies the LTE predicate on the "user_state" field.
func UserStateLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldUserState, v))
}

// UserStateContains applies the Contains predicate on the "user_state" field.
func UserStateContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldUserState, v))
}

// UserStateHasPrefix applies the HasPrefix predicate on the "user_state" field.
func UserStateHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldUserState, v))
}

// UserStateHasSuffix applies the HasSuffix predicate on the "user_state" field.
func UserStateHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldUserState, v))
}

// UserStateEqualFold applies the EqualFold predicate on the "user_state" field.
func UserStateEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldUserState, v))
}

// UserStateContainsFold applies the ContainsFold predicate on the "user_state" field.
func UserStateContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldUserState, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.NotPredicates(p))
}
