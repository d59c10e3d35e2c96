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

type Whiskey struct{ ent.Schema }

func (Whiskey) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "whiskey"},
	}
}

func (Whiskey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("distillery").Optional().Nillable(),
		// normalized keys back the case/punctuation-insensitive catalog match
		field.String("name_key").NotEmpty(),
		field.String("distillery_key").Default(""),
		field.String("spirit_type").Default("other").
			Validate(utils.EnumValidator(constants.SpiritTypes...)),
		field.Int("age_years").Optional().Nillable(),
		field.Float("abv").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Whiskey) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("listings", BarWhiskey.Type),
	}
}

func (Whiskey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name_key", "distillery_key").Unique(),
	}
}
