// Code generated by ent, DO NOT EDIT.

package billingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldAccountID, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldReference, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldContainsFold(FieldAccountID, v))
}

// FromTierEQ applies the EQ predicate on the "from_tier" field.
func FromTierEQ(v FromTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldFromTier, v))
}

// FromTierNEQ applies the NEQ predicate on the "from_tier" field.
func FromTierNEQ(v FromTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNEQ(FieldFromTier, v))
}

// FromTierIn applies the In predicate on the "from_tier" field.
func FromTierIn(vs ...FromTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldIn(FieldFromTier, vs...))
}

// FromTierNotIn applies the NotIn predicate on the "from_tier" field.
func FromTierNotIn(vs ...FromTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNotIn(FieldFromTier, vs...))
}

// ToTierEQ applies the EQ predicate on the "to_tier" field.
func ToTierEQ(v ToTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldToTier, v))
}

// ToTierNEQ applies the NEQ predicate on the "to_tier" field.
func ToTierNEQ(v ToTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNEQ(FieldToTier, v))
}

// ToTierIn applies the In predicate on the "to_tier" field.
func ToTierIn(vs ...ToTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldIn(FieldToTier, vs...))
}

// ToTierNotIn applies the NotIn predicate on the "to_tier" field.
func ToTierNotIn(vs ...ToTier) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNotIn(FieldToTier, vs...))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldContainsFold(FieldReference, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.BillingEvent {
	return predicate.BillingEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillingEvent) predicate.BillingEvent {
	return predicate.BillingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillingEvent) predicate.BillingEvent {
	return predicate.BillingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillingEvent) predicate.BillingEvent {
	return predicate.BillingEvent(sql.NotPredicates(p))
}
