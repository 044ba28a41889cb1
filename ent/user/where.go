// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// SelfRatedLevel applies equality check predicate on the "self_rated_level" field. It's identical to SelfRatedLevelEQ.
func SelfRatedLevel(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSelfRatedLevel, v))
}

// PreferredLanguage applies equality check predicate on the "preferred_language" field. It's identical to PreferredLanguageEQ.
func PreferredLanguage(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPreferredLanguage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// SelfRatedLevelEQ applies the EQ predicate on the "self_rated_level" field.
func SelfRatedLevelEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSelfRatedLevel, v))
}

// SelfRatedLevelNEQ applies the NEQ predicate on the "self_rated_level" field.
func SelfRatedLevelNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSelfRatedLevel, v))
}

// SelfRatedLevelIn applies the In predicate on the "self_rated_level" field.
func SelfRatedLevelIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldSelfRatedLevel, vs...))
}

// SelfRatedLevelNotIn applies the NotIn predicate on the "self_rated_level" field.
func SelfRatedLevelNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSelfRatedLevel, vs...))
}

// SelfRatedLevelGT applies the GT predicate on the "self_rated_level" field.
func SelfRatedLevelGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldSelfRatedLevel, v))
}

// SelfRatedLevelGTE applies the GTE predicate on the "self_rated_level" field.
func SelfRatedLevelGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldSelfRatedLevel, v))
}

// SelfRatedLevelLT applies the LT predicate on the "self_rated_level" field.
func SelfRatedLevelLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldSelfRatedLevel, v))
}

// SelfRatedLevelLTE applies the LTE predicate on the "self_rated_level" field.
func SelfRatedLevelLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldSelfRatedLevel, v))
}

// SelfRatedLevelContains applies the Contains predicate on the "self_rated_level" field.
func SelfRatedLevelContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldSelfRatedLevel, v))
}

// SelfRatedLevelHasPrefix applies the HasPrefix predicate on the "self_rated_level" field.
func SelfRatedLevelHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldSelfRatedLevel, v))
}

// SelfRatedLevelHasSuffix applies the HasSuffix predicate on the "self_rated_level" field.
func SelfRatedLevelHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldSelfRatedLevel, v))
}

// SelfRatedLevelEqualFold applies the EqualFold predicate on the "self_rated_level" field.
func SelfRatedLevelEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldSelfRatedLevel, v))
}

// SelfRatedLevelContainsFold applies the ContainsFold predicate on the "self_rated_level" field.
func SelfRatedLevelContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldSelfRatedLevel, v))
}

// PreferredLanguageEQ applies the EQ predicate on the "preferred_language" field.
func PreferredLanguageEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageNEQ applies the NEQ predicate on the "preferred_language" field.
func PreferredLanguageNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageIn applies the In predicate on the "preferred_language" field.
func PreferredLanguageIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageNotIn applies the NotIn predicate on the "preferred_language" field.
func PreferredLanguageNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageGT applies the GT predicate on the "preferred_language" field.
func PreferredLanguageGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPreferredLanguage, v))
}

// PreferredLanguageGTE applies the GTE predicate on the "preferred_language" field.
func PreferredLanguageGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPreferredLanguage, v))
}

// PreferredLanguageLT applies the LT predicate on the "preferred_language" field.
func PreferredLanguageLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPreferredLanguage, v))
}

// PreferredLanguageLTE applies the LTE predicate on the "preferred_language" field.
func PreferredLanguageLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPreferredLanguage, v))
}

// PreferredLanguageContains applies the Contains predicate on the "preferred_language" field.
func PreferredLanguageContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPreferredLanguage, v))
}

// PreferredLanguageHasPrefix applies the HasPrefix predicate on the "preferred_language" field.
func PreferredLanguageHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPreferredLanguage, v))
}

// PreferredLanguageHasSuffix applies the HasSuffix predicate on the "preferred_language" field.
func PreferredLanguageHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPreferredLanguage, v))
}

// PreferredLanguageEqualFold applies the EqualFold predicate on the "preferred_language" field.
func PreferredLanguageEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPreferredLanguage, v))
}

// PreferredLanguageContainsFold applies the ContainsFold predicate on the "preferred_language" field.
func PreferredLanguageContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPreferredLanguage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
