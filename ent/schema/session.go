package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity: one bounded
// invocation of the external agent against a project.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Int("session_number").
			Immutable().
			Comment("Dense and monotone per project, starting at 0"),
		field.Enum("kind").
			Values("initializer", "coding", "review").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed", "cancelled").
			Default("running"),
		field.String("model").
			Comment("Model id the agent was invoked with"),
		field.String("prompt_version").
			Optional().
			Comment("Version tag of the rendered prompt template"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("tool_use_count").
			Default(0),
		field.Int("error_count").
			Default(0),
		field.Int64("tokens_input").
			Default(0),
		field.Int64("tokens_output").
			Default(0),
		field.Int64("tokens_cache_creation").
			Default(0),
		field.Int64("tokens_cache_read").
			Default(0),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Free-form metrics bag written at finalization"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("last_active_at").
			Optional().
			Nillable().
			Comment("Heartbeat for stale-session detection"),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("quality_checks", QualityCheck.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "last_active_at"),
		index.Fields("project_id", "session_number").
			Unique(),
		// At most one running session per project.
		index.Fields("project_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'running'")),
		// Session 0 is the unique initializer.
		index.Fields("project_id", "kind").
			Unique().
			Annotations(entsql.IndexWhere("kind = 'initializer'")),
	}
}
