package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for persisted stream events. Rows back
// the LISTEN/NOTIFY catch-up path: observers that missed a notification
// re-read the channel from the last id they saw. Rows are pruned once the
// owning session ends.
type Event struct {
	ent.Schema
}

// Fields of the Event. The id column is the default auto-increment integer,
// monotonically increasing per insert, which is what catch-up ordering
// relies on.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id").
			Immutable(),
		field.String("channel").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Event) Edges() []ent.Edge {
	return nil
}

func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("project_id"),
		index.Fields("created_at"),
	}
}
