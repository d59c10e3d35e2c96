package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/db/ent/schema/utils"
	"github.com/google/uuid"
)

// BarWhiskey is the listing join between a bar and a catalog whiskey.
// The unique (bar_id, whiskey_id) index is what makes re-ingestion an
// update instead of a duplicate row.
type BarWhiskey struct{ ent.Schema }

func (BarWhiskey) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bar_whiskey"},
	}
}

func (BarWhiskey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("bar_id", uuid.UUID{}),
		field.UUID("whiskey_id", uuid.UUID{}),
		field.Float("price").Optional().Nillable(),
		field.String("pour_size").Optional().Nillable(),
		field.Bool("available").Default(true),
		field.String("notes").Optional().Nillable(),
		field.String("source_type").
			Validate(utils.EnumValidator(constants.SourceTypes...)),
		field.Time("last_verified").Default(time.Now),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BarWhiskey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bar", Bar.Type).
			Ref("listings").
			Field("bar_id").
			Unique().
			Required(),
		edge.From("whiskey", Whiskey.Type).
			Ref("listings").
			Field("whiskey_id").
			Unique().
			Required(),
	}
}

func (BarWhiskey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bar_id", "whiskey_id").Unique(),
		index.Fields("whiskey_id"),
	}
}
