package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Epic holds the schema definition for the Epic entity.
// Status is derived from child tasks and recomputed inside the same
// transaction as any task status change; it is never written directly
// by callers.
type Epic struct {
	ent.Schema
}

// Fields of the Epic.
func (Epic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("epic_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Int("ordinal").
			Comment("Caller-supplied position; siblings are never reordered"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "done").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Epic.
func (Epic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("epics").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Epic.
func (Epic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "ordinal"),
		index.Fields("status"),
	}
}
