package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("epic_id").
			Immutable(),
		field.Int("ordinal"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "done").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set by start_task; drives pending vs in_progress on reopen"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("epic", Epic.Type).
			Ref("tasks").
			Field("epic_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tests", TaskTest.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("epic_id", "ordinal"),
		index.Fields("status"),
	}
}
