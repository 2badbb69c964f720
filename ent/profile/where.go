// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// SkillLevel applies equality check predicate on the "skill_level" field. It's identical to SkillLevelEQ.
func SkillLevel(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSkillLevel, v))
}

// LearningGoal applies equality check predicate on the "learning_goal" field. It's identical to LearningGoalEQ.
func LearningGoal(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLearningGoal, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakDays, v))
}

// TotalXp applies equality check predicate on the "total_xp" field. It's identical to TotalXpEQ.
func TotalXp(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalXp, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LastChatAt applies equality check predicate on the "last_chat_at" field. It's identical to LastChatAtEQ.
func LastChatAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastChatAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// SkillLevelEQ applies the EQ predicate on the "skill_level" field.
func SkillLevelEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSkillLevel, v))
}

// SkillLevelNEQ applies the NEQ predicate on the "skill_level" field.
func SkillLevelNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSkillLevel, v))
}

// SkillLevelIn applies the In predicate on the "skill_level" field.
func SkillLevelIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSkillLevel, vs...))
}

// SkillLevelNotIn applies the NotIn predicate on the "skill_level" field.
func SkillLevelNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSkillLevel, vs...))
}

// SkillLevelGT applies the GT predicate on the "skill_level" field.
func SkillLevelGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSkillLevel, v))
}

// SkillLevelGTE applies the GTE predicate on the "skill_level" field.
func SkillLevelGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSkillLevel, v))
}

// SkillLevelLT applies the LT predicate on the "skill_level" field.
func SkillLevelLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSkillLevel, v))
}

// SkillLevelLTE applies the LTE predicate on the "skill_level" field.
func SkillLevelLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSkillLevel, v))
}

// SkillLevelContains applies the Contains predicate on the "skill_level" field.
func SkillLevelContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldSkillLevel, v))
}

// SkillLevelHasPrefix applies the HasPrefix predicate on the "skill_level" field.
func SkillLevelHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldSkillLevel, v))
}

// SkillLevelHasSuffix applies the HasSuffix predicate on the "skill_level" field.
func SkillLevelHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldSkillLevel, v))
}

// SkillLevelEqualFold applies the EqualFold predicate on the "skill_level" field.
func SkillLevelEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldSkillLevel, v))
}

// SkillLevelContainsFold applies the ContainsFold predicate on the "skill_level" field.
func SkillLevelContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldSkillLevel, v))
}

// LearningGoalEQ applies the EQ predicate on the "learning_goal" field.
func LearningGoalEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLearningGoal, v))
}

// LearningGoalNEQ applies the NEQ predicate on the "learning_goal" field.
func LearningGoalNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLearningGoal, v))
}

// LearningGoalIn applies the In predicate on the "learning_goal" field.
func LearningGoalIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLearningGoal, vs...))
}

// LearningGoalNotIn applies the NotIn predicate on the "learning_goal" field.
func LearningGoalNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLearningGoal, vs...))
}

// LearningGoalGT applies the GT predicate on the "learning_goal" field.
func LearningGoalGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLearningGoal, v))
}

// LearningGoalGTE applies the GTE predicate on the "learning_goal" field.
func LearningGoalGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLearningGoal, v))
}

// LearningGoalLT applies the LT predicate on the "learning_goal" field.
func LearningGoalLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLearningGoal, v))
}

// LearningGoalLTE applies the LTE predicate on the "learning_goal" field.
func LearningGoalLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLearningGoal, v))
}

// LearningGoalContains applies the Contains predicate on the "learning_goal" field.
func LearningGoalContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldLearningGoal, v))
}

// LearningGoalHasPrefix applies the HasPrefix predicate on the "learning_goal" field.
func LearningGoalHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldLearningGoal, v))
}

// LearningGoalHasSuffix applies the HasSuffix predicate on the "learning_goal" field.
func LearningGoalHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldLearningGoal, v))
}

// LearningGoalIsNil applies the IsNil predicate on the "learning_goal" field.
func LearningGoalIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLearningGoal))
}

// LearningGoalNotNil applies the NotNil predicate on the "learning_goal" field.
func LearningGoalNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLearningGoal))
}

// LearningGoalEqualFold applies the EqualFold predicate on the "learning_goal" field.
func LearningGoalEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldLearningGoal, v))
}

// LearningGoalContainsFold applies the ContainsFold predicate on the "learning_goal" field.
func LearningGoalContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldLearningGoal, v))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStreakDays, v))
}

// TotalXpEQ applies the EQ predicate on the "total_xp" field.
func TotalXpEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalXp, v))
}

// TotalXpNEQ applies the NEQ predicate on the "total_xp" field.
func TotalXpNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTotalXp, v))
}

// TotalXpIn applies the In predicate on the "total_xp" field.
func TotalXpIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTotalXp, vs...))
}

// TotalXpNotIn applies the NotIn predicate on the "total_xp" field.
func TotalXpNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTotalXp, vs...))
}

// TotalXpGT applies the GT predicate on the "total_xp" field.
func TotalXpGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTotalXp, v))
}

// TotalXpGTE applies the GTE predicate on the "total_xp" field.
func TotalXpGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTotalXp, v))
}

// TotalXpLT applies the LT predicate on the "total_xp" field.
func TotalXpLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTotalXp, v))
}

// TotalXpLTE applies the LTE predicate on the "total_xp" field.
func TotalXpLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTotalXp, v))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLessonsCompleted, v))
}

// LastChatAtEQ applies the EQ predicate on the "last_chat_at" field.
func LastChatAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastChatAt, v))
}

// LastChatAtNEQ applies the NEQ predicate on the "last_chat_at" field.
func LastChatAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLastChatAt, v))
}

// LastChatAtIn applies the In predicate on the "last_chat_at" field.
func LastChatAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLastChatAt, vs...))
}

// LastChatAtNotIn applies the NotIn predicate on the "last_chat_at" field.
func LastChatAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLastChatAt, vs...))
}

// LastChatAtGT applies the GT predicate on the "last_chat_at" field.
func LastChatAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLastChatAt, v))
}

// LastChatAtGTE applies the GTE predicate on the "last_chat_at" field.
func LastChatAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLastChatAt, v))
}

// LastChatAtLT applies the LT predicate on the "last_chat_at" field.
func LastChatAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLastChatAt, v))
}

// LastChatAtLTE applies the LTE predicate on the "last_chat_at" field.
func LastChatAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLastChatAt, v))
}

// LastChatAtIsNil applies the IsNil predicate on the "last_chat_at" field.
func LastChatAtIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLastChatAt))
}

// LastChatAtNotNil applies the NotNil predicate on the "last_chat_at" field.
func LastChatAtNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLastChatAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
