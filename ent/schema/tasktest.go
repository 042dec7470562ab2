package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskTest holds the schema definition for the TaskTest entity: one
// acceptance criterion of a task. Outcomes bubble up to the parent task
// inside the same transaction.
type TaskTest struct {
	ent.Schema
}

// Fields of the TaskTest.
func (TaskTest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("test_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Text("description"),
		field.Enum("outcome").
			Values("unknown", "pass", "fail").
			Default("unknown"),
		field.String("verification_note").
			Optional().
			Nillable().
			Comment("How the outcome was verified (e.g. browser check)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskTest.
func (TaskTest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("tests").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskTest.
func (TaskTest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("outcome"),
	}
}
