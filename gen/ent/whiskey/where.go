// Code generated by ent, DO NOT EDIT.

package whiskey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dramhound/dramhound/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldName, v))
}

// Distillery applies equality check predicate on the "distillery" field. It's identical to DistilleryEQ.
func Distillery(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldDistillery, v))
}

// NameKey applies equality check predicate on the "name_key" field. It's identical to NameKeyEQ.
func NameKey(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldNameKey, v))
}

// DistilleryKey applies equality check predicate on the "distillery_key" field. It's identical to DistilleryKeyEQ.
func DistilleryKey(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldDistilleryKey, v))
}

// SpiritType applies equality check predicate on the "spirit_type" field. It's identical to SpiritTypeEQ.
func SpiritType(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldSpiritType, v))
}

// AgeYears applies equality check predicate on the "age_years" field. It's identical to AgeYearsEQ.
func AgeYears(v int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldAgeYears, v))
}

// Abv applies equality check predicate on the "abv" field. It's identical to AbvEQ.
func Abv(v float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldAbv, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContainsFold(FieldName, v))
}

// DistilleryEQ applies the EQ predicate on the "distillery" field.
func DistilleryEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldDistillery, v))
}

// DistilleryNEQ applies the NEQ predicate on the "distillery" field.
func DistilleryNEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldDistillery, v))
}

// DistilleryIn applies the In predicate on the "distillery" field.
func DistilleryIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldDistillery, vs...))
}

// DistilleryNotIn applies the NotIn predicate on the "distillery" field.
func DistilleryNotIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldDistillery, vs...))
}

// DistilleryGT applies the GT predicate on the "distillery" field.
func DistilleryGT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldDistillery, v))
}

// DistilleryGTE applies the GTE predicate on the "distillery" field.
func DistilleryGTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldDistillery, v))
}

// DistilleryLT applies the LT predicate on the "distillery" field.
func DistilleryLT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldDistillery, v))
}

// DistilleryLTE applies the LTE predicate on the "distillery" field.
func DistilleryLTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldDistillery, v))
}

// DistilleryContains applies the Contains predicate on the "distillery" field.
func DistilleryContains(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContains(FieldDistillery, v))
}

// DistilleryHasPrefix applies the HasPrefix predicate on the "distillery" field.
func DistilleryHasPrefix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasPrefix(FieldDistillery, v))
}

// DistilleryHasSuffix applies the HasSuffix predicate on the "distillery" field.
func DistilleryHasSuffix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasSuffix(FieldDistillery, v))
}

// DistilleryIsNil applies the IsNil predicate on the "distillery" field.
func DistilleryIsNil() predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIsNull(FieldDistillery))
}

// DistilleryNotNil applies the NotNil predicate on the "distillery" field.
func DistilleryNotNil() predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotNull(FieldDistillery))
}

// DistilleryEqualFold applies the EqualFold predicate on the "distillery" field.
func DistilleryEqualFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEqualFold(FieldDistillery, v))
}

// DistilleryContainsFold applies the ContainsFold predicate on the "distillery" field.
func DistilleryContainsFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContainsFold(FieldDistillery, v))
}

// NameKeyEQ applies the EQ predicate on the "name_key" field.
func NameKeyEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldNameKey, v))
}

// NameKeyNEQ applies the NEQ predicate on the "name_key" field.
func NameKeyNEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldNameKey, v))
}

// NameKeyIn applies the In predicate on the "name_key" field.
func NameKeyIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldNameKey, vs...))
}

// NameKeyNotIn applies the NotIn predicate on the "name_key" field.
func NameKeyNotIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldNameKey, vs...))
}

// NameKeyGT applies the GT predicate on the "name_key" field.
func NameKeyGT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldNameKey, v))
}

// NameKeyGTE applies the GTE predicate on the "name_key" field.
func NameKeyGTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldNameKey, v))
}

// NameKeyLT applies the LT predicate on the "name_key" field.
func NameKeyLT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldNameKey, v))
}

// NameKeyLTE applies the LTE predicate on the "name_key" field.
func NameKeyLTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldNameKey, v))
}

// NameKeyContains applies the Contains predicate on the "name_key" field.
func NameKeyContains(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContains(FieldNameKey, v))
}

// NameKeyHasPrefix applies the HasPrefix predicate on the "name_key" field.
func NameKeyHasPrefix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasPrefix(FieldNameKey, v))
}

// NameKeyHasSuffix applies the HasSuffix predicate on the "name_key" field.
func NameKeyHasSuffix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasSuffix(FieldNameKey, v))
}

// NameKeyEqualFold applies the EqualFold predicate on the "name_key" field.
func NameKeyEqualFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEqualFold(FieldNameKey, v))
}

// NameKeyContainsFold applies the ContainsFold predicate on the "name_key" field.
func NameKeyContainsFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContainsFold(FieldNameKey, v))
}

// DistilleryKeyEQ applies the EQ predicate on the "distillery_key" field.
func DistilleryKeyEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldDistilleryKey, v))
}

// DistilleryKeyNEQ applies the NEQ predicate on the "distillery_key" field.
func DistilleryKeyNEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldDistilleryKey, v))
}

// DistilleryKeyIn applies the In predicate on the "distillery_key" field.
func DistilleryKeyIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldDistilleryKey, vs...))
}

// DistilleryKeyNotIn applies the NotIn predicate on the "distillery_key" field.
func DistilleryKeyNotIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldDistilleryKey, vs...))
}

// DistilleryKeyGT applies the GT predicate on the "distillery_key" field.
func DistilleryKeyGT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldDistilleryKey, v))
}

// DistilleryKeyGTE applies the GTE predicate on the "distillery_key" field.
func DistilleryKeyGTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldDistilleryKey, v))
}

// DistilleryKeyLT applies the LT predicate on the "distillery_key" field.
func DistilleryKeyLT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldDistilleryKey, v))
}

// DistilleryKeyLTE applies the LTE predicate on the "distillery_key" field.
func DistilleryKeyLTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldDistilleryKey, v))
}

// DistilleryKeyContains applies the Contains predicate on the "distillery_key" field.
func DistilleryKeyContains(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContains(FieldDistilleryKey, v))
}

// DistilleryKeyHasPrefix applies the HasPrefix predicate on the "distillery_key" field.
func DistilleryKeyHasPrefix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasPrefix(FieldDistilleryKey, v))
}

// DistilleryKeyHasSuffix applies the HasSuffix predicate on the "distillery_key" field.
func DistilleryKeyHasSuffix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasSuffix(FieldDistilleryKey, v))
}

// DistilleryKeyEqualFold applies the EqualFold predicate on the "distillery_key" field.
func DistilleryKeyEqualFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEqualFold(FieldDistilleryKey, v))
}

// DistilleryKeyContainsFold applies the ContainsFold predicate on the "distillery_key" field.
func DistilleryKeyContainsFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContainsFold(FieldDistilleryKey, v))
}

// SpiritTypeEQ applies the EQ predicate on the "spirit_type" field.
func SpiritTypeEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldSpiritType, v))
}

// SpiritTypeNEQ applies the NEQ predicate on the "spirit_type" field.
func SpiritTypeNEQ(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldSpiritType, v))
}

// SpiritTypeIn applies the In predicate on the "spirit_type" field.
func SpiritTypeIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldSpiritType, vs...))
}

// SpiritTypeNotIn applies the NotIn predicate on the "spirit_type" field.
func SpiritTypeNotIn(vs ...string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldSpiritType, vs...))
}

// SpiritTypeGT applies the GT predicate on the "spirit_type" field.
func SpiritTypeGT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldSpiritType, v))
}

// SpiritTypeGTE applies the GTE predicate on the "spirit_type" field.
func SpiritTypeGTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldSpiritType, v))
}

// SpiritTypeLT applies the LT predicate on the "spirit_type" field.
func SpiritTypeLT(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldSpiritType, v))
}

// SpiritTypeLTE applies the LTE predicate on the "spirit_type" field.
func SpiritTypeLTE(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldSpiritType, v))
}

// SpiritTypeContains applies the Contains predicate on the "spirit_type" field.
func SpiritTypeContains(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContains(FieldSpiritType, v))
}

// SpiritTypeHasPrefix applies the HasPrefix predicate on the "spirit_type" field.
func SpiritTypeHasPrefix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasPrefix(FieldSpiritType, v))
}

// SpiritTypeHasSuffix applies the HasSuffix predicate on the "spirit_type" field.
func SpiritTypeHasSuffix(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldHasSuffix(FieldSpiritType, v))
}

// SpiritTypeEqualFold applies the EqualFold predicate on the "spirit_type" field.
func SpiritTypeEqualFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEqualFold(FieldSpiritType, v))
}

// SpiritTypeContainsFold applies the ContainsFold predicate on the "spirit_type" field.
func SpiritTypeContainsFold(v string) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldContainsFold(FieldSpiritType, v))
}

// AgeYearsEQ applies the EQ predicate on the "age_years" field.
func AgeYearsEQ(v int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldAgeYears, v))
}

// AgeYearsNEQ applies the NEQ predicate on the "age_years" field.
func AgeYearsNEQ(v int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldAgeYears, v))
}

// AgeYearsIn applies the In predicate on the "age_years" field.
func AgeYearsIn(vs ...int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldAgeYears, vs...))
}

// AgeYearsNotIn applies the NotIn predicate on the "age_years" field.
func AgeYearsNotIn(vs ...int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldAgeYears, vs...))
}

// AgeYearsGT applies the GT predicate on the "age_years" field.
func AgeYearsGT(v int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldAgeYears, v))
}

// AgeYearsGTE applies the GTE predicate on the "age_years" field.
func AgeYearsGTE(v int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldAgeYears, v))
}

// AgeYearsLT applies the LT predicate on the "age_years" field.
func AgeYearsLT(v int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldAgeYears, v))
}

// AgeYearsLTE applies the LTE predicate on the "age_years" field.
func AgeYearsLTE(v int) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldAgeYears, v))
}

// AgeYearsIsNil applies the IsNil predicate on the "age_years" field.
func AgeYearsIsNil() predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIsNull(FieldAgeYears))
}

// AgeYearsNotNil applies the NotNil predicate on the "age_years" field.
func AgeYearsNotNil() predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotNull(FieldAgeYears))
}

// AbvEQ applies the EQ predicate on the "abv" field.
func AbvEQ(v float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldAbv, v))
}

// AbvNEQ applies the NEQ predicate on the "abv" field.
func AbvNEQ(v float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldAbv, v))
}

// AbvIn applies the In predicate on the "abv" field.
func AbvIn(vs ...float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldAbv, vs...))
}

// AbvNotIn applies the NotIn predicate on the "abv" field.
func AbvNotIn(vs ...float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldAbv, vs...))
}

// AbvGT applies the GT predicate on the "abv" field.
func AbvGT(v float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldAbv, v))
}

// AbvGTE applies the GTE predicate on the "abv" field.
func AbvGTE(v float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldAbv, v))
}

// AbvLT applies the LT predicate on the "abv" field.
func AbvLT(v float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldAbv, v))
}

// AbvLTE applies the LTE predicate on the "abv" field.
func AbvLTE(v float64) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldAbv, v))
}

// AbvIsNil applies the IsNil predicate on the "abv" field.
func AbvIsNil() predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIsNull(FieldAbv))
}

// AbvNotNil applies the NotNil predicate on the "abv" field.
func AbvNotNil() predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotNull(FieldAbv))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Whiskey {
	return predicate.Whiskey(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasListings applies the HasEdge predicate on the "listings" edge.
func HasListings() predicate.Whiskey {
	return predicate.Whiskey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ListingsTable, ListingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasListingsWith applies the HasEdge predicate on the "listings" edge with a given conditions (other predicates).
func HasListingsWith(preds ...predicate.BarWhiskey) predicate.Whiskey {
	return predicate.Whiskey(func(s *sql.Selector) {
		step := newListingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Whiskey) predicate.Whiskey {
	return predicate.Whiskey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Whiskey) predicate.Whiskey {
	return predicate.Whiskey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Whiskey) predicate.Whiskey {
	return predicate.Whiskey(sql.NotPredicates(p))
}
