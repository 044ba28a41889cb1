// Code generated by ent, DO NOT EDIT.

package studentskill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldTopic, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldSkill, v))
}

// Exposures applies equality check predicate on the "exposures" field. It's identical to ExposuresEQ.
func Exposures(v int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldExposures, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldMastery, v))
}

// NeedsReinforcement applies equality check predicate on the "needs_reinforcement" field. It's identical to NeedsReinforcementEQ.
func NeedsReinforcement(v bool) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldNeedsReinforcement, v))
}

// ContextsSeen applies equality check predicate on the "contexts_seen" field. It's identical to ContextsSeenEQ.
func ContextsSeen(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldContextsSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldLastSeen, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContainsFold(FieldTopic, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContainsFold(FieldSkill, v))
}

// ExposuresEQ applies the EQ predicate on the "exposures" field.
func ExposuresEQ(v int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldExposures, v))
}

// ExposuresNEQ applies the NEQ predicate on the "exposures" field.
func ExposuresNEQ(v int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldExposures, v))
}

// ExposuresIn applies the In predicate on the "exposures" field.
func ExposuresIn(vs ...int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldExposures, vs...))
}

// ExposuresNotIn applies the NotIn predicate on the "exposures" field.
func ExposuresNotIn(vs ...int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldExposures, vs...))
}

// ExposuresGT applies the GT predicate on the "exposures" field.
func ExposuresGT(v int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldExposures, v))
}

// ExposuresGTE applies the GTE predicate on the "exposures" field.
func ExposuresGTE(v int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldExposures, v))
}

// ExposuresLT applies the LT predicate on the "exposures" field.
func ExposuresLT(v int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldExposures, v))
}

// ExposuresLTE applies the LTE predicate on the "exposures" field.
func ExposuresLTE(v int) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldExposures, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldMastery, v))
}

// NeedsReinforcementEQ applies the EQ predicate on the "needs_reinforcement" field.
func NeedsReinforcementEQ(v bool) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldNeedsReinforcement, v))
}

// NeedsReinforcementNEQ applies the NEQ predicate on the "needs_reinforcement" field.
func NeedsReinforcementNEQ(v bool) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldNeedsReinforcement, v))
}

// ContextsSeenEQ applies the EQ predicate on the "contexts_seen" field.
func ContextsSeenEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldContextsSeen, v))
}

// ContextsSeenNEQ applies the NEQ predicate on the "contexts_seen" field.
func ContextsSeenNEQ(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldContextsSeen, v))
}

// ContextsSeenIn applies the In predicate on the "contexts_seen" field.
func ContextsSeenIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldContextsSeen, vs...))
}

// ContextsSeenNotIn applies the NotIn predicate on the "contexts_seen" field.
func ContextsSeenNotIn(vs ...string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldContextsSeen, vs...))
}

// ContextsSeenGT applies the GT predicate on the "contexts_seen" field.
func ContextsSeenGT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldContextsSeen, v))
}

// ContextsSeenGTE applies the GTE predicate on the "contexts_seen" field.
func ContextsSeenGTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldContextsSeen, v))
}

// ContextsSeenLT applies the LT predicate on the "contexts_seen" field.
func ContextsSeenLT(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldContextsSeen, v))
}

// ContextsSeenLTE applies the LTE predicate on the "contexts_seen" field.
func ContextsSeenLTE(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldContextsSeen, v))
}

// ContextsSeenContains applies the Contains predicate on the "contexts_seen" field.
func ContextsSeenContains(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContains(FieldContextsSeen, v))
}

// ContextsSeenHasPrefix applies the HasPrefix predicate on the "contexts_seen" field.
func ContextsSeenHasPrefix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasPrefix(FieldContextsSeen, v))
}

// ContextsSeenHasSuffix applies the HasSuffix predicate on the "contexts_seen" field.
func ContextsSeenHasSuffix(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldHasSuffix(FieldContextsSeen, v))
}

// ContextsSeenEqualFold applies the EqualFold predicate on the "contexts_seen" field.
func ContextsSeenEqualFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEqualFold(FieldContextsSeen, v))
}

// ContextsSeenContainsFold applies the ContainsFold predicate on the "contexts_seen" field.
func ContextsSeenContainsFold(v string) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldContainsFold(FieldContextsSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.StudentSkill {
	return predicate.StudentSkill(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentSkill) predicate.StudentSkill {
	return predicate.StudentSkill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentSkill) predicate.StudentSkill {
	return predicate.StudentSkill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentSkill) predicate.StudentSkill {
	return predicate.StudentSkill(sql.NotPredicates(p))
}
