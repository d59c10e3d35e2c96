// Code generated by ent, DO NOT EDIT.

package trawljob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dramhound/dramhound/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldID, id))
}

// BarID applies equality check predicate on the "bar_id" field. It's identical to BarIDEQ.
func BarID(v uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldBarID, v))
}

// SourceRef applies equality check predicate on the "source_ref" field. It's identical to SourceRefEQ.
func SourceRef(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldSourceRef, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldSourceType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldStatus, v))
}

// WhiskeyCount applies equality check predicate on the "whiskey_count" field. It's identical to WhiskeyCountEQ.
func WhiskeyCount(v int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldWhiskeyCount, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldErrorMessage, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldSubmittedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// BarIDEQ applies the EQ predicate on the "bar_id" field.
func BarIDEQ(v uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldBarID, v))
}

// BarIDNEQ applies the NEQ predicate on the "bar_id" field.
func BarIDNEQ(v uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldBarID, v))
}

// BarIDIn applies the In predicate on the "bar_id" field.
func BarIDIn(vs ...uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldBarID, vs...))
}

// BarIDNotIn applies the NotIn predicate on the "bar_id" field.
func BarIDNotIn(vs ...uuid.UUID) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldBarID, vs...))
}

// SourceRefEQ applies the EQ predicate on the "source_ref" field.
func SourceRefEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldSourceRef, v))
}

// SourceRefNEQ applies the NEQ predicate on the "source_ref" field.
func SourceRefNEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldSourceRef, v))
}

// SourceRefIn applies the In predicate on the "source_ref" field.
func SourceRefIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldSourceRef, vs...))
}

// SourceRefNotIn applies the NotIn predicate on the "source_ref" field.
func SourceRefNotIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldSourceRef, vs...))
}

// SourceRefGT applies the GT predicate on the "source_ref" field.
func SourceRefGT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldSourceRef, v))
}

// SourceRefGTE applies the GTE predicate on the "source_ref" field.
func SourceRefGTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldSourceRef, v))
}

// SourceRefLT applies the LT predicate on the "source_ref" field.
func SourceRefLT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldSourceRef, v))
}

// SourceRefLTE applies the LTE predicate on the "source_ref" field.
func SourceRefLTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldSourceRef, v))
}

// SourceRefContains applies the Contains predicate on the "source_ref" field.
func SourceRefContains(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContains(FieldSourceRef, v))
}

// SourceRefHasPrefix applies the HasPrefix predicate on the "source_ref" field.
func SourceRefHasPrefix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasPrefix(FieldSourceRef, v))
}

// SourceRefHasSuffix applies the HasSuffix predicate on the "source_ref" field.
func SourceRefHasSuffix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasSuffix(FieldSourceRef, v))
}

// SourceRefEqualFold applies the EqualFold predicate on the "source_ref" field.
func SourceRefEqualFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEqualFold(FieldSourceRef, v))
}

// SourceRefContainsFold applies the ContainsFold predicate on the "source_ref" field.
func SourceRefContainsFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContainsFold(FieldSourceRef, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContainsFold(FieldSourceType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContainsFold(FieldStatus, v))
}

// WhiskeyCountEQ applies the EQ predicate on the "whiskey_count" field.
func WhiskeyCountEQ(v int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldWhiskeyCount, v))
}

// WhiskeyCountNEQ applies the NEQ predicate on the "whiskey_count" field.
func WhiskeyCountNEQ(v int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldWhiskeyCount, v))
}

// WhiskeyCountIn applies the In predicate on the "whiskey_count" field.
func WhiskeyCountIn(vs ...int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldWhiskeyCount, vs...))
}

// WhiskeyCountNotIn applies the NotIn predicate on the "whiskey_count" field.
func WhiskeyCountNotIn(vs ...int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldWhiskeyCount, vs...))
}

// WhiskeyCountGT applies the GT predicate on the "whiskey_count" field.
func WhiskeyCountGT(v int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldWhiskeyCount, v))
}

// WhiskeyCountGTE applies the GTE predicate on the "whiskey_count" field.
func WhiskeyCountGTE(v int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldWhiskeyCount, v))
}

// WhiskeyCountLT applies the LT predicate on the "whiskey_count" field.
func WhiskeyCountLT(v int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldWhiskeyCount, v))
}

// WhiskeyCountLTE applies the LTE predicate on the "whiskey_count" field.
func WhiskeyCountLTE(v int) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldWhiskeyCount, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// SubmittedByGT applies the GT predicate on the "submitted_by" field.
func SubmittedByGT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldSubmittedBy, v))
}

// SubmittedByGTE applies the GTE predicate on the "submitted_by" field.
func SubmittedByGTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldSubmittedBy, v))
}

// SubmittedByLT applies the LT predicate on the "submitted_by" field.
func SubmittedByLT(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldSubmittedBy, v))
}

// SubmittedByLTE applies the LTE predicate on the "submitted_by" field.
func SubmittedByLTE(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldSubmittedBy, v))
}

// SubmittedByContains applies the Contains predicate on the "submitted_by" field.
func SubmittedByContains(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContains(FieldSubmittedBy, v))
}

// SubmittedByHasPrefix applies the HasPrefix predicate on the "submitted_by" field.
func SubmittedByHasPrefix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasPrefix(FieldSubmittedBy, v))
}

// SubmittedByHasSuffix applies the HasSuffix predicate on the "submitted_by" field.
func SubmittedByHasSuffix(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldHasSuffix(FieldSubmittedBy, v))
}

// SubmittedByIsNil applies the IsNil predicate on the "submitted_by" field.
func SubmittedByIsNil() predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIsNull(FieldSubmittedBy))
}

// SubmittedByNotNil applies the NotNil predicate on the "submitted_by" field.
func SubmittedByNotNil() predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotNull(FieldSubmittedBy))
}

// SubmittedByEqualFold applies the EqualFold predicate on the "submitted_by" field.
func SubmittedByEqualFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEqualFold(FieldSubmittedBy, v))
}

// SubmittedByContainsFold applies the ContainsFold predicate on the "submitted_by" field.
func SubmittedByContainsFold(v string) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldContainsFold(FieldSubmittedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TrawlJob {
	return predicate.TrawlJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBar applies the HasEdge predicate on the "bar" edge.
func HasBar() predicate.TrawlJob {
	return predicate.TrawlJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BarTable, BarColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBarWith applies the HasEdge predicate on the "bar" edge with a given conditions (other predicates).
func HasBarWith(preds ...predicate.Bar) predicate.TrawlJob {
	return predicate.TrawlJob(func(s *sql.Selector) {
		step := newBarStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrawlJob) predicate.TrawlJob {
	return predicate.TrawlJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrawlJob) predicate.TrawlJob {
	return predicate.TrawlJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrawlJob) predicate.TrawlJob {
	return predicate.TrawlJob(sql.NotPredicates(p))
}
