// Code generated by ent, DO NOT EDIT.

package sessionstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldTopic, v))
}

// Turns applies equality check predicate on the "turns" field. It's identical to TurnsEQ.
func Turns(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldTurns, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldAttempts, v))
}

// SolvedCount applies equality check predicate on the "solved_count" field. It's identical to SolvedCountEQ.
func SolvedCount(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldSolvedCount, v))
}

// StepsToSolve applies equality check predicate on the "steps_to_solve" field. It's identical to StepsToSolveEQ.
func StepsToSolve(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldStepsToSolve, v))
}

// HintCount applies equality check predicate on the "hint_count" field. It's identical to HintCountEQ.
func HintCount(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldHintCount, v))
}

// MasteryDelta applies equality check predicate on the "mastery_delta" field. It's identical to MasteryDeltaEQ.
func MasteryDelta(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldMasteryDelta, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldContainsFold(FieldTopic, v))
}

// TurnsEQ applies the EQ predicate on the "turns" field.
func TurnsEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldTurns, v))
}

// TurnsNEQ applies the NEQ predicate on the "turns" field.
func TurnsNEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldTurns, v))
}

// TurnsIn applies the In predicate on the "turns" field.
func TurnsIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldTurns, vs...))
}

// TurnsNotIn applies the NotIn predicate on the "turns" field.
func TurnsNotIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldTurns, vs...))
}

// TurnsGT applies the GT predicate on the "turns" field.
func TurnsGT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldTurns, v))
}

// TurnsGTE applies the GTE predicate on the "turns" field.
func TurnsGTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldTurns, v))
}

// TurnsLT applies the LT predicate on the "turns" field.
func TurnsLT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldTurns, v))
}

// TurnsLTE applies the LTE predicate on the "turns" field.
func TurnsLTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldTurns, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldAttempts, v))
}

// SolvedCountEQ applies the EQ predicate on the "solved_count" field.
func SolvedCountEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldSolvedCount, v))
}

// SolvedCountNEQ applies the NEQ predicate on the "solved_count" field.
func SolvedCountNEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldSolvedCount, v))
}

// SolvedCountIn applies the In predicate on the "solved_count" field.
func SolvedCountIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldSolvedCount, vs...))
}

// SolvedCountNotIn applies the NotIn predicate on the "solved_count" field.
func SolvedCountNotIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldSolvedCount, vs...))
}

// SolvedCountGT applies the GT predicate on the "solved_count" field.
func SolvedCountGT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldSolvedCount, v))
}

// SolvedCountGTE applies the GTE predicate on the "solved_count" field.
func SolvedCountGTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldSolvedCount, v))
}

// SolvedCountLT applies the LT predicate on the "solved_count" field.
func SolvedCountLT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldSolvedCount, v))
}

// SolvedCountLTE applies the LTE predicate on the "solved_count" field.
func SolvedCountLTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldSolvedCount, v))
}

// StepsToSolveEQ applies the EQ predicate on the "steps_to_solve" field.
func StepsToSolveEQ(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldStepsToSolve, v))
}

// StepsToSolveNEQ applies the NEQ predicate on the "steps_to_solve" field.
func StepsToSolveNEQ(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldStepsToSolve, v))
}

// StepsToSolveIn applies the In predicate on the "steps_to_solve" field.
func StepsToSolveIn(vs ...float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldStepsToSolve, vs...))
}

// StepsToSolveNotIn applies the NotIn predicate on the "steps_to_solve" field.
func StepsToSolveNotIn(vs ...float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldStepsToSolve, vs...))
}

// StepsToSolveGT applies the GT predicate on the "steps_to_solve" field.
func StepsToSolveGT(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldStepsToSolve, v))
}

// StepsToSolveGTE applies the GTE predicate on the "steps_to_solve" field.
func StepsToSolveGTE(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldStepsToSolve, v))
}

// StepsToSolveLT applies the LT predicate on the "steps_to_solve" field.
func StepsToSolveLT(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldStepsToSolve, v))
}

// StepsToSolveLTE applies the LTE predicate on the "steps_to_solve" field.
func StepsToSolveLTE(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldStepsToSolve, v))
}

// StepsToSolveIsNil applies the IsNil predicate on the "steps_to_solve" field.
func StepsToSolveIsNil() predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIsNull(FieldStepsToSolve))
}

// StepsToSolveNotNil applies the NotNil predicate on the "steps_to_solve" field.
func StepsToSolveNotNil() predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotNull(FieldStepsToSolve))
}

// HintCountEQ applies the EQ predicate on the "hint_count" field.
func HintCountEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldHintCount, v))
}

// HintCountNEQ applies the NEQ predicate on the "hint_count" field.
func HintCountNEQ(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldHintCount, v))
}

// HintCountIn applies the In predicate on the "hint_count" field.
func HintCountIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldHintCount, vs...))
}

// HintCountNotIn applies the NotIn predicate on the "hint_count" field.
func HintCountNotIn(vs ...int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldHintCount, vs...))
}

// HintCountGT applies the GT predicate on the "hint_count" field.
func HintCountGT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldHintCount, v))
}

// HintCountGTE applies the GTE predicate on the "hint_count" field.
func HintCountGTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldHintCount, v))
}

// HintCountLT applies the LT predicate on the "hint_count" field.
func HintCountLT(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldHintCount, v))
}

// HintCountLTE applies the LTE predicate on the "hint_count" field.
func HintCountLTE(v int) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldHintCount, v))
}

// MasteryDeltaEQ applies the EQ predicate on the "mastery_delta" field.
func MasteryDeltaEQ(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldMasteryDelta, v))
}

// MasteryDeltaNEQ applies the NEQ predicate on the "mastery_delta" field.
func MasteryDeltaNEQ(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldMasteryDelta, v))
}

// MasteryDeltaIn applies the In predicate on the "mastery_delta" field.
func MasteryDeltaIn(vs ...float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldMasteryDelta, vs...))
}

// MasteryDeltaNotIn applies the NotIn predicate on the "mastery_delta" field.
func MasteryDeltaNotIn(vs ...float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldMasteryDelta, vs...))
}

// MasteryDeltaGT applies the GT predicate on the "mastery_delta" field.
func MasteryDeltaGT(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldMasteryDelta, v))
}

// MasteryDeltaGTE applies the GTE predicate on the "mastery_delta" field.
func MasteryDeltaGTE(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldMasteryDelta, v))
}

// MasteryDeltaLT applies the LT predicate on the "mastery_delta" field.
func MasteryDeltaLT(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldMasteryDelta, v))
}

// MasteryDeltaLTE applies the LTE predicate on the "mastery_delta" field.
func MasteryDeltaLTE(v float64) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldMasteryDelta, v))
}

// MasteryDeltaIsNil applies the IsNil predicate on the "mastery_delta" field.
func MasteryDeltaIsNil() predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIsNull(FieldMasteryDelta))
}

// MasteryDeltaNotNil applies the NotNil predicate on the "mastery_delta" field.
func MasteryDeltaNotNil() predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotNull(FieldMasteryDelta))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionStat {
	return predicate.SessionStat(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionStat) predicate.SessionStat {
	return predicate.SessionStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionStat) predicate.SessionStat {
	return predicate.SessionStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionStat) predicate.SessionStat {
	return predicate.SessionStat(sql.NotPredicates(p))
}
