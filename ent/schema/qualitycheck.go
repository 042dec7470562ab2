package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// QualityCheck holds the schema definition for the QualityCheck entity:
// a derived quality signal attached to a finalized session. Quick checks
// are deterministic; deep checks carry the long-form review text.
type QualityCheck struct {
	ent.Schema
}

// Fields of the QualityCheck.
func (QualityCheck) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("check_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("check_type").
			Values("quick", "deep").
			Immutable(),
		field.Int("rating").
			Min(1).
			Max(10),
		field.Int("tool_uses").
			Default(0),
		field.Int("errors").
			Default(0),
		field.Int("browser_verifications").
			Default(0),
		field.JSON("critical_issues", []models.Issue{}).
			Optional(),
		field.JSON("warnings", []models.Issue{}).
			Optional(),
		field.Text("review_text").
			Optional().
			Nillable().
			Comment("Verbatim deep-review output; never set on quick checks"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the QualityCheck.
func (QualityCheck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("quality_checks").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the QualityCheck.
func (QualityCheck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rating"),
		// Upsert target: one quick and one deep check per session.
		index.Fields("session_id", "check_type").
			Unique(),
	}
}
