// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Epic is the predicate function for epic builders.
type Epic func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// QualityCheck is the predicate function for qualitycheck builders.
type QualityCheck func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskTest is the predicate function for tasktest builders.
type TaskTest func(*sql.Selector)
