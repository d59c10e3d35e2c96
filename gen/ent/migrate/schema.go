// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BarColumns holds the columns for the "bar" table.
	BarColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "website_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BarTable holds the schema information for the "bar" table.
	BarTable = &schema.Table{
		Name:       "bar",
		Columns:    BarColumns,
		PrimaryKey: []*schema.Column{BarColumns[0]},
	}
	// BarWhiskeyColumns holds the columns for the "bar_whiskey" table.
	BarWhiskeyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "price", Type: field.TypeFloat64, Nullable: true},
		{Name: "pour_size", Type: field.TypeString, Nullable: true},
		{Name: "available", Type: field.TypeBool, Default: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "source_type", Type: field.TypeString},
		{Name: "last_verified", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "bar_id", Type: field.TypeUUID},
		{Name: "whiskey_id", Type: field.TypeUUID},
	}
	// BarWhiskeyTable holds the schema information for the "bar_whiskey" table.
	BarWhiskeyTable = &schema.Table{
		Name:       "bar_whiskey",
		Columns:    BarWhiskeyColumns,
		PrimaryKey: []*schema.Column{BarWhiskeyColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bar_whiskey_bar_listings",
				Columns:    []*schema.Column{BarWhiskeyColumns[9]},
				RefColumns: []*schema.Column{BarColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "bar_whiskey_whiskey_listings",
				Columns:    []*schema.Column{BarWhiskeyColumns[10]},
				RefColumns: []*schema.Column{WhiskeyColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "barwhiskey_bar_id_whiskey_id",
				Unique:  true,
				Columns: []*schema.Column{BarWhiskeyColumns[9], BarWhiskeyColumns[10]},
			},
			{
				Name:    "barwhiskey_whiskey_id",
				Unique:  false,
				Columns: []*schema.Column{BarWhiskeyColumns[10]},
			},
		},
	}
	// TrawlJobColumns holds the columns for the "trawl_job" table.
	TrawlJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_ref", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PROCESSING"},
		{Name: "whiskey_count", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "submitted_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "bar_id", Type: field.TypeUUID},
	}
	// TrawlJobTable holds the schema information for the "trawl_job" table.
	TrawlJobTable = &schema.Table{
		Name:       "trawl_job",
		Columns:    TrawlJobColumns,
		PrimaryKey: []*schema.Column{TrawlJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trawl_job_bar_jobs",
				Columns:    []*schema.Column{TrawlJobColumns[10]},
				RefColumns: []*schema.Column{BarColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trawljob_bar_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TrawlJobColumns[10], TrawlJobColumns[3], TrawlJobColumns[8]},
			},
		},
	}
	// WhiskeyColumns holds the columns for the "whiskey" table.
	WhiskeyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "distillery", Type: field.TypeString, Nullable: true},
		{Name: "name_key", Type: field.TypeString},
		{Name: "distillery_key", Type: field.TypeString, Default: ""},
		{Name: "spirit_type", Type: field.TypeString, Default: "other"},
		{Name: "age_years", Type: field.TypeInt, Nullable: true},
		{Name: "abv", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WhiskeyTable holds the schema information for the "whiskey" table.
	WhiskeyTable = &schema.Table{
		Name:       "whiskey",
		Columns:    WhiskeyColumns,
		PrimaryKey: []*schema.Column{WhiskeyColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "whiskey_name_key_distillery_key",
				Unique:  true,
				Columns: []*schema.Column{WhiskeyColumns[3], WhiskeyColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BarTable,
		BarWhiskeyTable,
		TrawlJobTable,
		WhiskeyTable,
	}
)

func init() {
	BarTable.Annotation = &entsql.Annotation{
		Table: "bar",
	}
	BarWhiskeyTable.ForeignKeys[0].RefTable = BarTable
	BarWhiskeyTable.ForeignKeys[1].RefTable = WhiskeyTable
	BarWhiskeyTable.Annotation = &entsql.Annotation{
		Table: "bar_whiskey",
	}
	TrawlJobTable.ForeignKeys[0].RefTable = BarTable
	TrawlJobTable.Annotation = &entsql.Annotation{
		Table: "trawl_job",
	}
	WhiskeyTable.Annotation = &entsql.Annotation{
		Table: "whiskey",
	}
}
