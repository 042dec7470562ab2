package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// Project holds the schema definition for the Project entity.
// A project owns its entire roadmap and session history; deleting it
// cascades to everything downstream.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Display name, unique across projects"),
		field.String("workspace").
			Comment("Host directory bind-mounted into the sandbox"),
		field.JSON("sandbox_policy", models.SandboxPolicy{}).
			Comment("Per-project sandbox kind, image and limits"),
		field.JSON("prompt_versions", map[string]string{}).
			Optional().
			Comment("Active prompt version tag per session kind"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("epics", Epic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").
			Unique(),
	}
}
