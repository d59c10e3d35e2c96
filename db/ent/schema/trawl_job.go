package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/db/ent/schema/utils"
	"github.com/google/uuid"
)

type TrawlJob struct{ ent.Schema }

func (TrawlJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "trawl_job"},
	}
}

func (TrawlJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("bar_id", uuid.UUID{}),
		// source URL, or "image:<mime>" for photo submissions
		field.String("source_ref").NotEmpty(),
		field.String("source_type").
			Validate(utils.EnumValidator(constants.SourceTypes...)),
		field.String("status").Default(string(constants.JobStatusProcessing)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("whiskey_count").Default(0),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("submitted_by").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TrawlJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bar", Bar.Type).
			Ref("jobs").
			Field("bar_id").
			Unique().
			Required(),
	}
}

func (TrawlJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bar_id", "status", "created_at"),
	}
}
