// Code generated by ent, DO NOT EDIT.

package barwhiskey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dramhound/dramhound/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldID, id))
}

// BarID applies equality check predicate on the "bar_id" field. It's identical to BarIDEQ.
func BarID(v uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldBarID, v))
}

// WhiskeyID applies equality check predicate on the "whiskey_id" field. It's identical to WhiskeyIDEQ.
func WhiskeyID(v uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldWhiskeyID, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldPrice, v))
}

// PourSize applies equality check predicate on the "pour_size" field. It's identical to PourSizeEQ.
func PourSize(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldPourSize, v))
}

// Available applies equality check predicate on the "available" field. It's identical to AvailableEQ.
func Available(v bool) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldAvailable, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldNotes, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldSourceType, v))
}

// LastVerified applies equality check predicate on the "last_verified" field. It's identical to LastVerifiedEQ.
func LastVerified(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldLastVerified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldUpdatedAt, v))
}

// BarIDEQ applies the EQ predicate on the "bar_id" field.
func BarIDEQ(v uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldBarID, v))
}

// BarIDNEQ applies the NEQ predicate on the "bar_id" field.
func BarIDNEQ(v uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldBarID, v))
}

// BarIDIn applies the In predicate on the "bar_id" field.
func BarIDIn(vs ...uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldBarID, vs...))
}

// BarIDNotIn applies the NotIn predicate on the "bar_id" field.
func BarIDNotIn(vs ...uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldBarID, vs...))
}

// WhiskeyIDEQ applies the EQ predicate on the "whiskey_id" field.
func WhiskeyIDEQ(v uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldWhiskeyID, v))
}

// WhiskeyIDNEQ applies the NEQ predicate on the "whiskey_id" field.
func WhiskeyIDNEQ(v uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldWhiskeyID, v))
}

// WhiskeyIDIn applies the In predicate on the "whiskey_id" field.
func WhiskeyIDIn(vs ...uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldWhiskeyID, vs...))
}

// WhiskeyIDNotIn applies the NotIn predicate on the "whiskey_id" field.
func WhiskeyIDNotIn(vs ...uuid.UUID) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldWhiskeyID, vs...))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotNull(FieldPrice))
}

// PourSizeEQ applies the EQ predicate on the "pour_size" field.
func PourSizeEQ(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldPourSize, v))
}

// PourSizeNEQ applies the NEQ predicate on the "pour_size" field.
func PourSizeNEQ(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldPourSize, v))
}

// PourSizeIn applies the In predicate on the "pour_size" field.
func PourSizeIn(vs ...string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldPourSize, vs...))
}

// PourSizeNotIn applies the NotIn predicate on the "pour_size" field.
func PourSizeNotIn(vs ...string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldPourSize, vs...))
}

// PourSizeGT applies the GT predicate on the "pour_size" field.
func PourSizeGT(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldPourSize, v))
}

// PourSizeGTE applies the GTE predicate on the "pour_size" field.
func PourSizeGTE(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldPourSize, v))
}

// PourSizeLT applies the LT predicate on the "pour_size" field.
func PourSizeLT(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldPourSize, v))
}

// PourSizeLTE applies the LTE predicate on the "pour_size" field.
func PourSizeLTE(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldPourSize, v))
}

// PourSizeContains applies the Contains predicate on the "pour_size" field.
func PourSizeContains(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldContains(FieldPourSize, v))
}

// PourSizeHasPrefix applies the HasPrefix predicate on the "pour_size" field.
func PourSizeHasPrefix(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldHasPrefix(FieldPourSize, v))
}

// PourSizeHasSuffix applies the HasSuffix predicate on the "pour_size" field.
func PourSizeHasSuffix(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldHasSuffix(FieldPourSize, v))
}

// PourSizeIsNil applies the IsNil predicate on the "pour_size" field.
func PourSizeIsNil() predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIsNull(FieldPourSize))
}

// PourSizeNotNil applies the NotNil predicate on the "pour_size" field.
func PourSizeNotNil() predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotNull(FieldPourSize))
}

// PourSizeEqualFold applies the EqualFold predicate on the "pour_size" field.
func PourSizeEqualFold(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEqualFold(FieldPourSize, v))
}

// PourSizeContainsFold applies the ContainsFold predicate on the "pour_size" field.
func PourSizeContainsFold(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldContainsFold(FieldPourSize, v))
}

// AvailableEQ applies the EQ predicate on the "available" field.
func AvailableEQ(v bool) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldAvailable, v))
}

// AvailableNEQ applies the NEQ predicate on the "available" field.
func AvailableNEQ(v bool) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldAvailable, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldContainsFold(FieldNotes, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldContainsFold(FieldSourceType, v))
}

// LastVerifiedEQ applies the EQ predicate on the "last_verified" field.
func LastVerifiedEQ(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldLastVerified, v))
}

// LastVerifiedNEQ applies the NEQ predicate on the "last_verified" field.
func LastVerifiedNEQ(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldLastVerified, v))
}

// LastVerifiedIn applies the In predicate on the "last_verified" field.
func LastVerifiedIn(vs ...time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldLastVerified, vs...))
}

// LastVerifiedNotIn applies the NotIn predicate on the "last_verified" field.
func LastVerifiedNotIn(vs ...time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldLastVerified, vs...))
}

// LastVerifiedGT applies the GT predicate on the "last_verified" field.
func LastVerifiedGT(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldLastVerified, v))
}

// LastVerifiedGTE applies the GTE predicate on the "last_verified" field.
func LastVerifiedGTE(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldLastVerified, v))
}

// LastVerifiedLT applies the LT predicate on the "last_verified" field.
func LastVerifiedLT(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldLastVerified, v))
}

// LastVerifiedLTE applies the LTE predicate on the "last_verified" field.
func LastVerifiedLTE(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldLastVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBar applies the HasEdge predicate on the "bar" edge.
func HasBar() predicate.BarWhiskey {
	return predicate.BarWhiskey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BarTable, BarColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBarWith applies the HasEdge predicate on the "bar" edge with a given conditions (other predicates).
func HasBarWith(preds ...predicate.Bar) predicate.BarWhiskey {
	return predicate.BarWhiskey(func(s *sql.Selector) {
		step := newBarStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWhiskey applies the HasEdge predicate on the "whiskey" edge.
func HasWhiskey() predicate.BarWhiskey {
	return predicate.BarWhiskey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WhiskeyTable, WhiskeyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWhiskeyWith applies the HasEdge predicate on the "whiskey" edge with a given conditions (other predicates).
func HasWhiskeyWith(preds ...predicate.Whiskey) predicate.BarWhiskey {
	return predicate.BarWhiskey(func(s *sql.Selector) {
		step := newWhiskeyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BarWhiskey) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BarWhiskey) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BarWhiskey) predicate.BarWhiskey {
	return predicate.BarWhiskey(sql.NotPredicates(p))
}
