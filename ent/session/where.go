// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTopic, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// DifficultyMode applies equality check predicate on the "difficulty_mode" field. It's identical to DifficultyModeEQ.
func DifficultyMode(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDifficultyMode, v))
}

// ManualTargetDifficulty applies equality check predicate on the "manual_target_difficulty" field. It's identical to ManualTargetDifficultyEQ.
func ManualTargetDifficulty(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldManualTargetDifficulty, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTopic, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// DifficultyModeEQ applies the EQ predicate on the "difficulty_mode" field.
func DifficultyModeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDifficultyMode, v))
}

// DifficultyModeNEQ applies the NEQ predicate on the "difficulty_mode" field.
func DifficultyModeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDifficultyMode, v))
}

// DifficultyModeIn applies the In predicate on the "difficulty_mode" field.
func DifficultyModeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDifficultyMode, vs...))
}

// DifficultyModeNotIn applies the NotIn predicate on the "difficulty_mode" field.
func DifficultyModeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDifficultyMode, vs...))
}

// DifficultyModeGT applies the GT predicate on the "difficulty_mode" field.
func DifficultyModeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDifficultyMode, v))
}

// DifficultyModeGTE applies the GTE predicate on the "difficulty_mode" field.
func DifficultyModeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDifficultyMode, v))
}

// DifficultyModeLT applies the LT predicate on the "difficulty_mode" field.
func DifficultyModeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDifficultyMode, v))
}

// DifficultyModeLTE applies the LTE predicate on the "difficulty_mode" field.
func DifficultyModeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDifficultyMode, v))
}

// DifficultyModeContains applies the Contains predicate on the "difficulty_mode" field.
func DifficultyModeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldDifficultyMode, v))
}

// DifficultyModeHasPrefix applies the HasPrefix predicate on the "difficulty_mode" field.
func DifficultyModeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldDifficultyMode, v))
}

// DifficultyModeHasSuffix applies the HasSuffix predicate on the "difficulty_mode" field.
func DifficultyModeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldDifficultyMode, v))
}

// DifficultyModeEqualFold applies the EqualFold predicate on the "difficulty_mode" field.
func DifficultyModeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldDifficultyMode, v))
}

// DifficultyModeContainsFold applies the ContainsFold predicate on the "difficulty_mode" field.
func DifficultyModeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldDifficultyMode, v))
}

// ManualTargetDifficultyEQ applies the EQ predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyNEQ applies the NEQ predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyIn applies the In predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldManualTargetDifficulty, vs...))
}

// ManualTargetDifficultyNotIn applies the NotIn predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldManualTargetDifficulty, vs...))
}

// ManualTargetDifficultyGT applies the GT predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyGTE applies the GTE predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyLT applies the LT predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyLTE applies the LTE predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyContains applies the Contains predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyHasPrefix applies the HasPrefix predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyHasSuffix applies the HasSuffix predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyEqualFold applies the EqualFold predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldManualTargetDifficulty, v))
}

// ManualTargetDifficultyContainsFold applies the ContainsFold predicate on the "manual_target_difficulty" field.
func ManualTargetDifficultyContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldManualTargetDifficulty, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
