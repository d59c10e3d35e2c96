// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bar is the predicate function for bar builders.
type Bar func(*sql.Selector)

// BarWhiskey is the predicate function for barwhiskey builders.
type BarWhiskey func(*sql.Selector)

// TrawlJob is the predicate function for trawljob builders.
type TrawlJob func(*sql.Selector)

// Whiskey is the predicate function for whiskey builders.
type Whiskey func(*sql.Selector)
