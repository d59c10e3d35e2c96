package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Bar struct{ ent.Schema }

func (Bar) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bar"},
	}
}

func (Bar) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("address").Optional().Nillable(),
		field.String("city").Optional().Nillable(),
		field.String("website_url").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Bar) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("listings", BarWhiskey.Type),
		edge.To("jobs", TrawlJob.Type),
	}
}
