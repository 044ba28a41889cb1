// Code generated by ent, DO NOT EDIT.

package fairnessreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldReportID, v))
}

// GroupBy applies equality check predicate on the "group_by" field. It's identical to GroupByEQ.
func GroupBy(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldGroupBy, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldTopic, v))
}

// WindowFrom applies equality check predicate on the "window_from" field. It's identical to WindowFromEQ.
func WindowFrom(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldWindowFrom, v))
}

// WindowTo applies equality check predicate on the "window_to" field. It's identical to WindowToEQ.
func WindowTo(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldWindowTo, v))
}

// MinSampleSize applies equality check predicate on the "min_sample_size" field. It's identical to MinSampleSizeEQ.
func MinSampleSize(v int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldMinSampleSize, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContainsFold(FieldReportID, v))
}

// GroupByEQ applies the EQ predicate on the "group_by" field.
func GroupByEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldGroupBy, v))
}

// GroupByNEQ applies the NEQ predicate on the "group_by" field.
func GroupByNEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldGroupBy, v))
}

// GroupByIn applies the In predicate on the "group_by" field.
func GroupByIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldGroupBy, vs...))
}

// GroupByNotIn applies the NotIn predicate on the "group_by" field.
func GroupByNotIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldGroupBy, vs...))
}

// GroupByGT applies the GT predicate on the "group_by" field.
func GroupByGT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldGroupBy, v))
}

// GroupByGTE applies the GTE predicate on the "group_by" field.
func GroupByGTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldGroupBy, v))
}

// GroupByLT applies the LT predicate on the "group_by" field.
func GroupByLT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldGroupBy, v))
}

// GroupByLTE applies the LTE predicate on the "group_by" field.
func GroupByLTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldGroupBy, v))
}

// GroupByContains applies the Contains predicate on the "group_by" field.
func GroupByContains(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContains(FieldGroupBy, v))
}

// GroupByHasPrefix applies the HasPrefix predicate on the "group_by" field.
func GroupByHasPrefix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasPrefix(FieldGroupBy, v))
}

// GroupByHasSuffix applies the HasSuffix predicate on the "group_by" field.
func GroupByHasSuffix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasSuffix(FieldGroupBy, v))
}

// GroupByEqualFold applies the EqualFold predicate on the "group_by" field.
func GroupByEqualFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEqualFold(FieldGroupBy, v))
}

// GroupByContainsFold applies the ContainsFold predicate on the "group_by" field.
func GroupByContainsFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContainsFold(FieldGroupBy, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContainsFold(FieldTopic, v))
}

// WindowFromEQ applies the EQ predicate on the "window_from" field.
func WindowFromEQ(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldWindowFrom, v))
}

// WindowFromNEQ applies the NEQ predicate on the "window_from" field.
func WindowFromNEQ(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldWindowFrom, v))
}

// WindowFromIn applies the In predicate on the "window_from" field.
func WindowFromIn(vs ...time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldWindowFrom, vs...))
}

// WindowFromNotIn applies the NotIn predicate on the "window_from" field.
func WindowFromNotIn(vs ...time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldWindowFrom, vs...))
}

// WindowFromGT applies the GT predicate on the "window_from" field.
func WindowFromGT(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldWindowFrom, v))
}

// WindowFromGTE applies the GTE predicate on the "window_from" field.
func WindowFromGTE(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldWindowFrom, v))
}

// WindowFromLT applies the LT predicate on the "window_from" field.
func WindowFromLT(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldWindowFrom, v))
}

// WindowFromLTE applies the LTE predicate on the "window_from" field.
func WindowFromLTE(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldWindowFrom, v))
}

// WindowFromIsNil applies the IsNil predicate on the "window_from" field.
func WindowFromIsNil() predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIsNull(FieldWindowFrom))
}

// WindowFromNotNil applies the NotNil predicate on the "window_from" field.
func WindowFromNotNil() predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotNull(FieldWindowFrom))
}

// WindowToEQ applies the EQ predicate on the "window_to" field.
func WindowToEQ(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldWindowTo, v))
}

// WindowToNEQ applies the NEQ predicate on the "window_to" field.
func WindowToNEQ(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldWindowTo, v))
}

// WindowToIn applies the In predicate on the "window_to" field.
func WindowToIn(vs ...time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldWindowTo, vs...))
}

// WindowToNotIn applies the NotIn predicate on the "window_to" field.
func WindowToNotIn(vs ...time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldWindowTo, vs...))
}

// WindowToGT applies the GT predicate on the "window_to" field.
func WindowToGT(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldWindowTo, v))
}

// WindowToGTE applies the GTE predicate on the "window_to" field.
func WindowToGTE(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldWindowTo, v))
}

// WindowToLT applies the LT predicate on the "window_to" field.
func WindowToLT(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldWindowTo, v))
}

// WindowToLTE applies the LTE predicate on the "window_to" field.
func WindowToLTE(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldWindowTo, v))
}

// WindowToIsNil applies the IsNil predicate on the "window_to" field.
func WindowToIsNil() predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIsNull(FieldWindowTo))
}

// WindowToNotNil applies the NotNil predicate on the "window_to" field.
func WindowToNotNil() predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotNull(FieldWindowTo))
}

// MinSampleSizeEQ applies the EQ predicate on the "min_sample_size" field.
func MinSampleSizeEQ(v int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldMinSampleSize, v))
}

// MinSampleSizeNEQ applies the NEQ predicate on the "min_sample_size" field.
func MinSampleSizeNEQ(v int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldMinSampleSize, v))
}

// MinSampleSizeIn applies the In predicate on the "min_sample_size" field.
func MinSampleSizeIn(vs ...int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldMinSampleSize, vs...))
}

// MinSampleSizeNotIn applies the NotIn predicate on the "min_sample_size" field.
func MinSampleSizeNotIn(vs ...int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldMinSampleSize, vs...))
}

// MinSampleSizeGT applies the GT predicate on the "min_sample_size" field.
func MinSampleSizeGT(v int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldMinSampleSize, v))
}

// MinSampleSizeGTE applies the GTE predicate on the "min_sample_size" field.
func MinSampleSizeGTE(v int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldMinSampleSize, v))
}

// MinSampleSizeLT applies the LT predicate on the "min_sample_size" field.
func MinSampleSizeLT(v int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldMinSampleSize, v))
}

// MinSampleSizeLTE applies the LTE predicate on the "min_sample_size" field.
func MinSampleSizeLTE(v int) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldMinSampleSize, v))
}

// InterpretationIsNil applies the IsNil predicate on the "interpretation" field.
func InterpretationIsNil() predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIsNull(FieldInterpretation))
}

// InterpretationNotNil applies the NotNil predicate on the "interpretation" field.
func InterpretationNotNil() predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotNull(FieldInterpretation))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FairnessReport {
	return predicate.FairnessReport(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FairnessReport) predicate.FairnessReport {
	return predicate.FairnessReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FairnessReport) predicate.FairnessReport {
	return predicate.FairnessReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FairnessReport) predicate.FairnessReport {
	return predicate.FairnessReport(sql.NotPredicates(p))
}
