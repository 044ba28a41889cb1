// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FairnessReport is the predicate function for fairnessreport builders.
type FairnessReport func(*sql.Selector)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProgressSnapshot is the predicate function for progresssnapshot builders.
type ProgressSnapshot func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionPlan is the predicate function for sessionplan builders.
type SessionPlan func(*sql.Selector)

// SessionStat is the predicate function for sessionstat builders.
type SessionStat func(*sql.Selector)

// StudentSkill is the predicate function for studentskill builders.
type StudentSkill func(*sql.Selector)

// StudentTopic is the predicate function for studenttopic builders.
type StudentTopic func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
