// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// QualityCheck is the model entity for the QualityCheck schema.
type QualityCheck struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// CheckType holds the value of the "check_type" field.
	CheckType qualitycheck.CheckType `json:"check_type,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating int `json:"rating,omitempty"`
	// ToolUses holds the value of the "tool_uses" field.
	ToolUses int `json:"tool_uses,omitempty"`
	// Errors holds the value of the "errors" field.
	Errors int `json:"errors,omitempty"`
	// BrowserVerifications holds the value of the "browser_verifications" field.
	BrowserVerifications int `json:"browser_verifications,omitempty"`
	// CriticalIssues holds the value of the "critical_issues" field.
	CriticalIssues []models.Issue `json:"critical_issues,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []models.Issue `json:"warnings,omitempty"`
	// Verbatim deep-review output; never set on quick checks
	ReviewText *string `json:"review_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QualityCheckQuery when eager-loading is set.
	Edges        QualityCheckEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QualityCheckEdges holds the relations/edges for other nodes in the graph.
type QualityCheckEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QualityCheckEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QualityCheck) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case qualitycheck.FieldCriticalIssues, qualitycheck.FieldWarnings:
			values[i] = new([]byte)
		case qualitycheck.FieldRating, qualitycheck.FieldToolUses, qualitycheck.FieldErrors, qualitycheck.FieldBrowserVerifications:
			values[i] = new(sql.NullInt64)
		case qualitycheck.FieldID, qualitycheck.FieldSessionID, qualitycheck.FieldCheckType, qualitycheck.FieldReviewText:
			values[i] = new(sql.NullString)
		case qualitycheck.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QualityCheck fields.
func (_m *QualityCheck) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case qualitycheck.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case qualitycheck.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case qualitycheck.FieldCheckType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field check_type", values[i])
			} else if value.Valid {
				_m.CheckType = qualitycheck.CheckType(value.String)
			}
		case qualitycheck.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = int(value.Int64)
			}
		case qualitycheck.FieldToolUses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tool_uses", values[i])
			} else if value.Valid {
				_m.ToolUses = int(value.Int64)
			}
		case qualitycheck.FieldErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors", values[i])
			} else if value.Valid {
				_m.Errors = int(value.Int64)
			}
		case qualitycheck.FieldBrowserVerifications:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field browser_verifications", values[i])
			} else if value.Valid {
				_m.BrowserVerifications = int(value.Int64)
			}
		case qualitycheck.FieldCriticalIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field critical_issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CriticalIssues); err != nil {
					return fmt.Errorf("unmarshal field critical_issues: %w", err)
				}
			}
		case qualitycheck.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case qualitycheck.FieldReviewText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_text", values[i])
			} else if value.Valid {
				_m.ReviewText = new(string)
				*_m.ReviewText = value.String
			}
		case qualitycheck.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QualityCheck.
// This includes values selected through modifiers, order, etc.
func (_m *QualityCheck) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the QualityCheck entity.
func (_m *QualityCheck) QuerySession() *SessionQuery {
	return NewQualityCheckClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this QualityCheck.
// Note that you need to call QualityCheck.Unwrap() before calling this method if this QualityCheck
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QualityCheck) Update() *QualityCheckUpdateOne {
	return NewQualityCheckClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QualityCheck entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QualityCheck) Unwrap() *QualityCheck {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QualityCheck is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QualityCheck) String() string {
	var builder strings.Builder
	builder.WriteString("QualityCheck(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("check_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CheckType))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("tool_uses=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolUses))
	builder.WriteString(", ")
	builder.WriteString("errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errors))
	builder.WriteString(", ")
	builder.WriteString("browser_verifications=")
	builder.WriteString(fmt.Sprintf("%v", _m.BrowserVerifications))
	builder.WriteString(", ")
	builder.WriteString("critical_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalIssues))
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	if v := _m.ReviewText; v != nil {
		builder.WriteString("review_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QualityChecks is a parsable slice of QualityCheck.
type QualityChecks []*QualityCheck
