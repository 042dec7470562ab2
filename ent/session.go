// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ratchet-works/ratchet/ent/project"
	"github.com/ratchet-works/ratchet/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Dense and monotone per project, starting at 0
	SessionNumber int `json:"session_number,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind session.Kind `json:"kind,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// Model id the agent was invoked with
	Model string `json:"model,omitempty"`
	// Version tag of the rendered prompt template
	PromptVersion string `json:"prompt_version,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// ToolUseCount holds the value of the "tool_use_count" field.
	ToolUseCount int `json:"tool_use_count,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// TokensInput holds the value of the "tokens_input" field.
	TokensInput int64 `json:"tokens_input,omitempty"`
	// TokensOutput holds the value of the "tokens_output" field.
	TokensOutput int64 `json:"tokens_output,omitempty"`
	// TokensCacheCreation holds the value of the "tokens_cache_creation" field.
	TokensCacheCreation int64 `json:"tokens_cache_creation,omitempty"`
	// TokensCacheRead holds the value of the "tokens_cache_read" field.
	TokensCacheRead int64 `json:"tokens_cache_read,omitempty"`
	// Free-form metrics bag written at finalization
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// Heartbeat for stale-session detection
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// QualityChecks holds the value of the quality_checks edge.
	QualityChecks []*QualityCheck `json:"quality_checks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// QualityChecksOrErr returns the QualityChecks value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) QualityChecksOrErr() ([]*QualityCheck, error) {
	if e.loadedTypes[1] {
		return e.QualityChecks, nil
	}
	return nil, &NotLoadedError{edge: "quality_checks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldMetrics:
			values[i] = new([]byte)
		case session.FieldSessionNumber, session.FieldToolUseCount, session.FieldErrorCount, session.FieldTokensInput, session.FieldTokensOutput, session.FieldTokensCacheCreation, session.FieldTokensCacheRead:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldProjectID, session.FieldKind, session.FieldStatus, session.FieldModel, session.FieldPromptVersion, session.FieldFailureReason:
			values[i] = new(sql.NullString)
		case session.FieldStartedAt, session.FieldEndedAt, session.FieldLastActiveAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case session.FieldSessionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_number", values[i])
			} else if value.Valid {
				_m.SessionNumber = int(value.Int64)
			}
		case session.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = session.Kind(value.String)
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case session.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = value.String
			}
		case session.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case session.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case session.FieldToolUseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tool_use_count", values[i])
			} else if value.Valid {
				_m.ToolUseCount = int(value.Int64)
			}
		case session.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case session.FieldTokensInput:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_input", values[i])
			} else if value.Valid {
				_m.TokensInput = value.Int64
			}
		case session.FieldTokensOutput:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_output", values[i])
			} else if value.Valid {
				_m.TokensOutput = value.Int64
			}
		case session.FieldTokensCacheCreation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_cache_creation", values[i])
			} else if value.Valid {
				_m.TokensCacheCreation = value.Int64
			}
		case session.FieldTokensCacheRead:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_cache_read", values[i])
			} else if value.Valid {
				_m.TokensCacheRead = value.Int64
			}
		case session.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case session.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case session.FieldLastActiveAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_at", values[i])
			} else if value.Valid {
				_m.LastActiveAt = new(time.Time)
				*_m.LastActiveAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Session entity.
func (_m *Session) QueryProject() *ProjectQuery {
	return NewSessionClient(_m.config).QueryProject(_m)
}

// QueryQualityChecks queries the "quality_checks" edge of the Session entity.
func (_m *Session) QueryQualityChecks() *QualityCheckQuery {
	return NewSessionClient(_m.config).QueryQualityChecks(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("session_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionNumber))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(_m.PromptVersion)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("tool_use_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolUseCount))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("tokens_input=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensInput))
	builder.WriteString(", ")
	builder.WriteString("tokens_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOutput))
	builder.WriteString(", ")
	builder.WriteString("tokens_cache_creation=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensCacheCreation))
	builder.WriteString(", ")
	builder.WriteString("tokens_cache_read=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensCacheRead))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastActiveAt; v != nil {
		builder.WriteString("last_active_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
