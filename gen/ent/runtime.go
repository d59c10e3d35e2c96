// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dramhound/dramhound/db/ent/schema"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	barFields := schema.Bar{}.Fields()
	_ = barFields
	// barDescName is the schema descriptor for name field.
	barDescName := barFields[1].Descriptor()
	// bar.NameValidator is a validator for the "name" field. It is called by the builders before save.
	bar.NameValidator = barDescName.Validators[0].(func(string) error)
	// barDescCreatedAt is the schema descriptor for created_at field.
	barDescCreatedAt := barFields[5].Descriptor()
	// bar.DefaultCreatedAt holds the default value on creation for the created_at field.
	bar.DefaultCreatedAt = barDescCreatedAt.Default.(func() time.Time)
	// barDescUpdatedAt is the schema descriptor for updated_at field.
	barDescUpdatedAt := barFields[6].Descriptor()
	// bar.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bar.DefaultUpdatedAt = barDescUpdatedAt.Default.(func() time.Time)
	// bar.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bar.UpdateDefaultUpdatedAt = barDescUpdatedAt.UpdateDefault.(func() time.Time)
	// barDescID is the schema descriptor for id field.
	barDescID := barFields[0].Descriptor()
	// bar.DefaultID holds the default value on creation for the id field.
	bar.DefaultID = barDescID.Default.(func() uuid.UUID)
	barwhiskeyFields := schema.BarWhiskey{}.Fields()
	_ = barwhiskeyFields
	// barwhiskeyDescAvailable is the schema descriptor for available field.
	barwhiskeyDescAvailable := barwhiskeyFields[5].Descriptor()
	// barwhiskey.DefaultAvailable holds the default value on creation for the available field.
	barwhiskey.DefaultAvailable = barwhiskeyDescAvailable.Default.(bool)
	// barwhiskeyDescSourceType is the schema descriptor for source_type field.
	barwhiskeyDescSourceType := barwhiskeyFields[7].Descriptor()
	// barwhiskey.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	barwhiskey.SourceTypeValidator = barwhiskeyDescSourceType.Validators[0].(func(string) error)
	// barwhiskeyDescLastVerified is the schema descriptor for last_verified field.
	barwhiskeyDescLastVerified := barwhiskeyFields[8].Descriptor()
	// barwhiskey.DefaultLastVerified holds the default value on creation for the last_verified field.
	barwhiskey.DefaultLastVerified = barwhiskeyDescLastVerified.Default.(func() time.Time)
	// barwhiskeyDescCreatedAt is the schema descriptor for created_at field.
	barwhiskeyDescCreatedAt := barwhiskeyFields[9].Descriptor()
	// barwhiskey.DefaultCreatedAt holds the default value on creation for the created_at field.
	barwhiskey.DefaultCreatedAt = barwhiskeyDescCreatedAt.Default.(func() time.Time)
	// barwhiskeyDescUpdatedAt is the schema descriptor for updated_at field.
	barwhiskeyDescUpdatedAt := barwhiskeyFields[10].Descriptor()
	// barwhiskey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	barwhiskey.DefaultUpdatedAt = barwhiskeyDescUpdatedAt.Default.(func() time.Time)
	// barwhiskey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	barwhiskey.UpdateDefaultUpdatedAt = barwhiskeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// barwhiskeyDescID is the schema descriptor for id field.
	barwhiskeyDescID := barwhiskeyFields[0].Descriptor()
	// barwhiskey.DefaultID holds the default value on creation for the id field.
	barwhiskey.DefaultID = barwhiskeyDescID.Default.(func() uuid.UUID)
	trawljobFields := schema.TrawlJob{}.Fields()
	_ = trawljobFields
	// trawljobDescSourceRef is the schema descriptor for source_ref field.
	trawljobDescSourceRef := trawljobFields[2].Descriptor()
	// trawljob.SourceRefValidator is a validator for the "source_ref" field. It is called by the builders before save.
	trawljob.SourceRefValidator = trawljobDescSourceRef.Validators[0].(func(string) error)
	// trawljobDescSourceType is the schema descriptor for source_type field.
	trawljobDescSourceType := trawljobFields[3].Descriptor()
	// trawljob.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	trawljob.SourceTypeValidator = trawljobDescSourceType.Validators[0].(func(string) error)
	// trawljobDescStatus is the schema descriptor for status field.
	trawljobDescStatus := trawljobFields[4].Descriptor()
	// trawljob.DefaultStatus holds the default value on creation for the status field.
	trawljob.DefaultStatus = trawljobDescStatus.Default.(string)
	// trawljob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	trawljob.StatusValidator = trawljobDescStatus.Validators[0].(func(string) error)
	// trawljobDescWhiskeyCount is the schema descriptor for whiskey_count field.
	trawljobDescWhiskeyCount := trawljobFields[5].Descriptor()
	// trawljob.DefaultWhiskeyCount holds the default value on creation for the whiskey_count field.
	trawljob.DefaultWhiskeyCount = trawljobDescWhiskeyCount.Default.(int)
	// trawljobDescCreatedAt is the schema descriptor for created_at field.
	trawljobDescCreatedAt := trawljobFields[9].Descriptor()
	// trawljob.DefaultCreatedAt holds the default value on creation for the created_at field.
	trawljob.DefaultCreatedAt = trawljobDescCreatedAt.Default.(func() time.Time)
	// trawljobDescUpdatedAt is the schema descriptor for updated_at field.
	trawljobDescUpdatedAt := trawljobFields[10].Descriptor()
	// trawljob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	trawljob.DefaultUpdatedAt = trawljobDescUpdatedAt.Default.(func() time.Time)
	// trawljob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	trawljob.UpdateDefaultUpdatedAt = trawljobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// trawljobDescID is the schema descriptor for id field.
	trawljobDescID := trawljobFields[0].Descriptor()
	// trawljob.DefaultID holds the default value on creation for the id field.
	trawljob.DefaultID = trawljobDescID.Default.(func() uuid.UUID)
	whiskeyFields := schema.Whiskey{}.Fields()
	_ = whiskeyFields
	// whiskeyDescName is the schema descriptor for name field.
	whiskeyDescName := whiskeyFields[1].Descriptor()
	// whiskey.NameValidator is a validator for the "name" field. It is called by the builders before save.
	whiskey.NameValidator = whiskeyDescName.Validators[0].(func(string) error)
	// whiskeyDescNameKey is the schema descriptor for name_key field.
	whiskeyDescNameKey := whiskeyFields[3].Descriptor()
	// whiskey.NameKeyValidator is a validator for the "name_key" field. It is called by the builders before save.
	whiskey.NameKeyValidator = whiskeyDescNameKey.Validators[0].(func(string) error)
	// whiskeyDescDistilleryKey is the schema descriptor for distillery_key field.
	whiskeyDescDistilleryKey := whiskeyFields[4].Descriptor()
	// whiskey.DefaultDistilleryKey holds the default value on creation for the distillery_key field.
	whiskey.DefaultDistilleryKey = whiskeyDescDistilleryKey.Default.(string)
	// whiskeyDescSpiritType is the schema descriptor for spirit_type field.
	whiskeyDescSpiritType := whiskeyFields[5].Descriptor()
	// whiskey.DefaultSpiritType holds the default value on creation for the spirit_type field.
	whiskey.DefaultSpiritType = whiskeyDescSpiritType.Default.(string)
	// whiskey.SpiritTypeValidator is a validator for the "spirit_type" field. It is called by the builders before save.
	whiskey.SpiritTypeValidator = whiskeyDescSpiritType.Validators[0].(func(string) error)
	// whiskeyDescCreatedAt is the schema descriptor for created_at field.
	whiskeyDescCreatedAt := whiskeyFields[8].Descriptor()
	// whiskey.DefaultCreatedAt holds the default value on creation for the created_at field.
	whiskey.DefaultCreatedAt = whiskeyDescCreatedAt.Default.(func() time.Time)
	// whiskeyDescUpdatedAt is the schema descriptor for updated_at field.
	whiskeyDescUpdatedAt := whiskeyFields[9].Descriptor()
	// whiskey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	whiskey.DefaultUpdatedAt = whiskeyDescUpdatedAt.Default.(func() time.Time)
	// whiskey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	whiskey.UpdateDefaultUpdatedAt = whiskeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// whiskeyDescID is the schema descriptor for id field.
	whiskeyDescID := whiskeyFields[0].Descriptor()
	// whiskey.DefaultID holds the default value on creation for the id field.
	whiskey.DefaultID = whiskeyDescID.Default.(func() uuid.UUID)
}
