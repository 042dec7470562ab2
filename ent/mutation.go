// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ratchet-works/ratchet/ent/epic"
	"github.com/ratchet-works/ratchet/ent/event"
	"github.com/ratchet-works/ratchet/ent/predicate"
	"github.com/ratchet-works/ratchet/ent/project"
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/ent/task"
	"github.com/ratchet-works/ratchet/ent/tasktest"
	"github.com/ratchet-works/ratchet/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEpic         = "Epic"
	TypeEvent        = "Event"
	TypeProject      = "Project"
	TypeQualityCheck = "QualityCheck"
	TypeSession      = "Session"
	TypeTask         = "Task"
	TypeTaskTest     = "TaskTest"
)

// EpicMutation represents an operation that mutates the Epic nodes in the graph.
type EpicMutation struct {
	config
	op             Op
	typ            string
	id             *string
	ordinal        *int
	addordinal     *int
	title          *string
	description    *string
	status         *epic.Status
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	tasks          map[string]struct{}
	removedtasks   map[string]struct{}
	clearedtasks   bool
	done           bool
	oldValue       func(context.Context) (*Epic, error)
	predicates     []predicate.Epic
}

var _ ent.Mutation = (*EpicMutation)(nil)

// epicOption allows management of the mutation configuration using functional options.
type epicOption func(*EpicMutation)

// newEpicMutation creates new mutation for the Epic entity.
func newEpicMutation(c config, op Op, opts ...epicOption) *EpicMutation {
	m := &EpicMutation{
		config:        c,
		op:            op,
		typ:           TypeEpic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEpicID sets the ID field of the mutation.
func withEpicID(id string) epicOption {
	return func(m *EpicMutation) {
		var (
			err   error
			once  sync.Once
			value *Epic
		)
		m.oldValue = func(ctx context.Context) (*Epic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Epic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEpic sets the old Epic of the mutation.
func withEpic(node *Epic) epicOption {
	return func(m *EpicMutation) {
		m.oldValue = func(context.Context) (*Epic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EpicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EpicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Epic entities.
func (m *EpicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EpicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EpicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Epic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *EpicMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EpicMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EpicMutation) ResetProjectID() {
	m.project = nil
}

// SetOrdinal sets the "ordinal" field.
func (m *EpicMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *EpicMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *EpicMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *EpicMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *EpicMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetTitle sets the "title" field.
func (m *EpicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EpicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EpicMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *EpicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EpicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EpicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[epic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EpicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[epic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EpicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, epic.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *EpicMutation) SetStatus(e epic.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EpicMutation) Status() (r epic.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldStatus(ctx context.Context) (v epic.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EpicMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EpicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EpicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EpicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *EpicMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[epic.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *EpicMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *EpicMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *EpicMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *EpicMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *EpicMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *EpicMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *EpicMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *EpicMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *EpicMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *EpicMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the EpicMutation builder.
func (m *EpicMutation) Where(ps ...predicate.Epic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EpicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EpicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Epic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EpicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EpicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Epic).
func (m *EpicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EpicMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project != nil {
		fields = append(fields, epic.FieldProjectID)
	}
	if m.ordinal != nil {
		fields = append(fields, epic.FieldOrdinal)
	}
	if m.title != nil {
		fields = append(fields, epic.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, epic.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, epic.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, epic.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EpicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case epic.FieldProjectID:
		return m.ProjectID()
	case epic.FieldOrdinal:
		return m.Ordinal()
	case epic.FieldTitle:
		return m.Title()
	case epic.FieldDescription:
		return m.Description()
	case epic.FieldStatus:
		return m.Status()
	case epic.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EpicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case epic.FieldProjectID:
		return m.OldProjectID(ctx)
	case epic.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case epic.FieldTitle:
		return m.OldTitle(ctx)
	case epic.FieldDescription:
		return m.OldDescription(ctx)
	case epic.FieldStatus:
		return m.OldStatus(ctx)
	case epic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Epic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case epic.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case epic.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case epic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case epic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case epic.FieldStatus:
		v, ok := value.(epic.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case epic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Epic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EpicMutation) AddedFields() []string {
	var fields []string
	if m.addordinal != nil {
		fields = append(fields, epic.FieldOrdinal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EpicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case epic.FieldOrdinal:
		return m.AddedOrdinal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case epic.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	}
	return fmt.Errorf("unknown Epic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EpicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(epic.FieldDescription) {
		fields = append(fields, epic.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EpicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EpicMutation) ClearField(name string) error {
	switch name {
	case epic.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Epic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EpicMutation) ResetField(name string) error {
	switch name {
	case epic.FieldProjectID:
		m.ResetProjectID()
		return nil
	case epic.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case epic.FieldTitle:
		m.ResetTitle()
		return nil
	case epic.FieldDescription:
		m.ResetDescription()
		return nil
	case epic.FieldStatus:
		m.ResetStatus()
		return nil
	case epic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Epic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EpicMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, epic.EdgeProject)
	}
	if m.tasks != nil {
		edges = append(edges, epic.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EpicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case epic.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case epic.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EpicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtasks != nil {
		edges = append(edges, epic.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EpicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case epic.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EpicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, epic.EdgeProject)
	}
	if m.clearedtasks {
		edges = append(edges, epic.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EpicMutation) EdgeCleared(name string) bool {
	switch name {
	case epic.EdgeProject:
		return m.clearedproject
	case epic.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EpicMutation) ClearEdge(name string) error {
	switch name {
	case epic.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Epic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EpicMutation) ResetEdge(name string) error {
	switch name {
	case epic.EdgeProject:
		m.ResetProject()
		return nil
	case epic.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Epic edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	project_id    *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *EventMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EventMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EventMutation) ResetProjectID() {
	m.project_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project_id != nil {
		fields = append(fields, event.FieldProjectID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldProjectID:
		return m.ProjectID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldProjectID:
		return m.OldProjectID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldProjectID:
		m.ResetProjectID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	workspace       *string
	sandbox_policy  *models.SandboxPolicy
	prompt_versions *map[string]string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	epics           map[string]struct{}
	removedepics    map[string]struct{}
	clearedepics    bool
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*Project, error)
	predicates      []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetWorkspace sets the "workspace" field.
func (m *ProjectMutation) SetWorkspace(s string) {
	m.workspace = &s
}

// Workspace returns the value of the "workspace" field in the mutation.
func (m *ProjectMutation) Workspace() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspace returns the old "workspace" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWorkspace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspace: %w", err)
	}
	return oldValue.Workspace, nil
}

// ResetWorkspace resets all changes to the "workspace" field.
func (m *ProjectMutation) ResetWorkspace() {
	m.workspace = nil
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (m *ProjectMutation) SetSandboxPolicy(mp models.SandboxPolicy) {
	m.sandbox_policy = &mp
}

// SandboxPolicy returns the value of the "sandbox_policy" field in the mutation.
func (m *ProjectMutation) SandboxPolicy() (r models.SandboxPolicy, exists bool) {
	v := m.sandbox_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxPolicy returns the old "sandbox_policy" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSandboxPolicy(ctx context.Context) (v models.SandboxPolicy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxPolicy: %w", err)
	}
	return oldValue.SandboxPolicy, nil
}

// ResetSandboxPolicy resets all changes to the "sandbox_policy" field.
func (m *ProjectMutation) ResetSandboxPolicy() {
	m.sandbox_policy = nil
}

// SetPromptVersions sets the "prompt_versions" field.
func (m *ProjectMutation) SetPromptVersions(value map[string]string) {
	m.prompt_versions = &value
}

// PromptVersions returns the value of the "prompt_versions" field in the mutation.
func (m *ProjectMutation) PromptVersions() (r map[string]string, exists bool) {
	v := m.prompt_versions
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersions returns the old "prompt_versions" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPromptVersions(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersions: %w", err)
	}
	return oldValue.PromptVersions, nil
}

// ClearPromptVersions clears the value of the "prompt_versions" field.
func (m *ProjectMutation) ClearPromptVersions() {
	m.prompt_versions = nil
	m.clearedFields[project.FieldPromptVersions] = struct{}{}
}

// PromptVersionsCleared returns if the "prompt_versions" field was cleared in this mutation.
func (m *ProjectMutation) PromptVersionsCleared() bool {
	_, ok := m.clearedFields[project.FieldPromptVersions]
	return ok
}

// ResetPromptVersions resets all changes to the "prompt_versions" field.
func (m *ProjectMutation) ResetPromptVersions() {
	m.prompt_versions = nil
	delete(m.clearedFields, project.FieldPromptVersions)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEpicIDs adds the "epics" edge to the Epic entity by ids.
func (m *ProjectMutation) AddEpicIDs(ids ...string) {
	if m.epics == nil {
		m.epics = make(map[string]struct{})
	}
	for i := range ids {
		m.epics[ids[i]] = struct{}{}
	}
}

// ClearEpics clears the "epics" edge to the Epic entity.
func (m *ProjectMutation) ClearEpics() {
	m.clearedepics = true
}

// EpicsCleared reports if the "epics" edge to the Epic entity was cleared.
func (m *ProjectMutation) EpicsCleared() bool {
	return m.clearedepics
}

// RemoveEpicIDs removes the "epics" edge to the Epic entity by IDs.
func (m *ProjectMutation) RemoveEpicIDs(ids ...string) {
	if m.removedepics == nil {
		m.removedepics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.epics, ids[i])
		m.removedepics[ids[i]] = struct{}{}
	}
}

// RemovedEpics returns the removed IDs of the "epics" edge to the Epic entity.
func (m *ProjectMutation) RemovedEpicsIDs() (ids []string) {
	for id := range m.removedepics {
		ids = append(ids, id)
	}
	return
}

// EpicsIDs returns the "epics" edge IDs in the mutation.
func (m *ProjectMutation) EpicsIDs() (ids []string) {
	for id := range m.epics {
		ids = append(ids, id)
	}
	return
}

// ResetEpics resets all changes to the "epics" edge.
func (m *ProjectMutation) ResetEpics() {
	m.epics = nil
	m.clearedepics = false
	m.removedepics = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.workspace != nil {
		fields = append(fields, project.FieldWorkspace)
	}
	if m.sandbox_policy != nil {
		fields = append(fields, project.FieldSandboxPolicy)
	}
	if m.prompt_versions != nil {
		fields = append(fields, project.FieldPromptVersions)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldWorkspace:
		return m.Workspace()
	case project.FieldSandboxPolicy:
		return m.SandboxPolicy()
	case project.FieldPromptVersions:
		return m.PromptVersions()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldWorkspace:
		return m.OldWorkspace(ctx)
	case project.FieldSandboxPolicy:
		return m.OldSandboxPolicy(ctx)
	case project.FieldPromptVersions:
		return m.OldPromptVersions(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldWorkspace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspace(v)
		return nil
	case project.FieldSandboxPolicy:
		v, ok := value.(models.SandboxPolicy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxPolicy(v)
		return nil
	case project.FieldPromptVersions:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersions(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldPromptVersions) {
		fields = append(fields, project.FieldPromptVersions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldPromptVersions:
		m.ClearPromptVersions()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldWorkspace:
		m.ResetWorkspace()
		return nil
	case project.FieldSandboxPolicy:
		m.ResetSandboxPolicy()
		return nil
	case project.FieldPromptVersions:
		m.ResetPromptVersions()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.epics != nil {
		edges = append(edges, project.EdgeEpics)
	}
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeEpics:
		ids := make([]ent.Value, 0, len(m.epics))
		for id := range m.epics {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedepics != nil {
		edges = append(edges, project.EdgeEpics)
	}
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeEpics:
		ids := make([]ent.Value, 0, len(m.removedepics))
		for id := range m.removedepics {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedepics {
		edges = append(edges, project.EdgeEpics)
	}
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeEpics:
		return m.clearedepics
	case project.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeEpics:
		m.ResetEpics()
		return nil
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// QualityCheckMutation represents an operation that mutates the QualityCheck nodes in the graph.
type QualityCheckMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	check_type               *qualitycheck.CheckType
	rating                   *int
	addrating                *int
	tool_uses                *int
	addtool_uses             *int
	errors                   *int
	adderrors                *int
	browser_verifications    *int
	addbrowser_verifications *int
	critical_issues          *[]models.Issue
	appendcritical_issues    []models.Issue
	warnings                 *[]models.Issue
	appendwarnings           []models.Issue
	review_text              *string
	created_at               *time.Time
	clearedFields            map[string]struct{}
	session                  *string
	clearedsession           bool
	done                     bool
	oldValue                 func(context.Context) (*QualityCheck, error)
	predicates               []predicate.QualityCheck
}

var _ ent.Mutation = (*QualityCheckMutation)(nil)

// qualitycheckOption allows management of the mutation configuration using functional options.
type qualitycheckOption func(*QualityCheckMutation)

// newQualityCheckMutation creates new mutation for the QualityCheck entity.
func newQualityCheckMutation(c config, op Op, opts ...qualitycheckOption) *QualityCheckMutation {
	m := &QualityCheckMutation{
		config:        c,
		op:            op,
		typ:           TypeQualityCheck,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQualityCheckID sets the ID field of the mutation.
func withQualityCheckID(id string) qualitycheckOption {
	return func(m *QualityCheckMutation) {
		var (
			err   error
			once  sync.Once
			value *QualityCheck
		)
		m.oldValue = func(ctx context.Context) (*QualityCheck, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QualityCheck.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQualityCheck sets the old QualityCheck of the mutation.
func withQualityCheck(node *QualityCheck) qualitycheckOption {
	return func(m *QualityCheckMutation) {
		m.oldValue = func(context.Context) (*QualityCheck, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QualityCheckMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QualityCheckMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QualityCheck entities.
func (m *QualityCheckMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QualityCheckMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QualityCheckMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QualityCheck.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *QualityCheckMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QualityCheckMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QualityCheckMutation) ResetSessionID() {
	m.session = nil
}

// SetCheckType sets the "check_type" field.
func (m *QualityCheckMutation) SetCheckType(qt qualitycheck.CheckType) {
	m.check_type = &qt
}

// CheckType returns the value of the "check_type" field in the mutation.
func (m *QualityCheckMutation) CheckType() (r qualitycheck.CheckType, exists bool) {
	v := m.check_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckType returns the old "check_type" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldCheckType(ctx context.Context) (v qualitycheck.CheckType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckType: %w", err)
	}
	return oldValue.CheckType, nil
}

// ResetCheckType resets all changes to the "check_type" field.
func (m *QualityCheckMutation) ResetCheckType() {
	m.check_type = nil
}

// SetRating sets the "rating" field.
func (m *QualityCheckMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *QualityCheckMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *QualityCheckMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *QualityCheckMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *QualityCheckMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetToolUses sets the "tool_uses" field.
func (m *QualityCheckMutation) SetToolUses(i int) {
	m.tool_uses = &i
	m.addtool_uses = nil
}

// ToolUses returns the value of the "tool_uses" field in the mutation.
func (m *QualityCheckMutation) ToolUses() (r int, exists bool) {
	v := m.tool_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldToolUses returns the old "tool_uses" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldToolUses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolUses: %w", err)
	}
	return oldValue.ToolUses, nil
}

// AddToolUses adds i to the "tool_uses" field.
func (m *QualityCheckMutation) AddToolUses(i int) {
	if m.addtool_uses != nil {
		*m.addtool_uses += i
	} else {
		m.addtool_uses = &i
	}
}

// AddedToolUses returns the value that was added to the "tool_uses" field in this mutation.
func (m *QualityCheckMutation) AddedToolUses() (r int, exists bool) {
	v := m.addtool_uses
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolUses resets all changes to the "tool_uses" field.
func (m *QualityCheckMutation) ResetToolUses() {
	m.tool_uses = nil
	m.addtool_uses = nil
}

// SetErrors sets the "errors" field.
func (m *QualityCheckMutation) SetErrors(i int) {
	m.errors = &i
	m.adderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *QualityCheckMutation) Errors() (r int, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AddErrors adds i to the "errors" field.
func (m *QualityCheckMutation) AddErrors(i int) {
	if m.adderrors != nil {
		*m.adderrors += i
	} else {
		m.adderrors = &i
	}
}

// AddedErrors returns the value that was added to the "errors" field in this mutation.
func (m *QualityCheckMutation) AddedErrors() (r int, exists bool) {
	v := m.adderrors
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrors resets all changes to the "errors" field.
func (m *QualityCheckMutation) ResetErrors() {
	m.errors = nil
	m.adderrors = nil
}

// SetBrowserVerifications sets the "browser_verifications" field.
func (m *QualityCheckMutation) SetBrowserVerifications(i int) {
	m.browser_verifications = &i
	m.addbrowser_verifications = nil
}

// BrowserVerifications returns the value of the "browser_verifications" field in the mutation.
func (m *QualityCheckMutation) BrowserVerifications() (r int, exists bool) {
	v := m.browser_verifications
	if v == nil {
		return
	}
	return *v, true
}

// OldBrowserVerifications returns the old "browser_verifications" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldBrowserVerifications(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrowserVerifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrowserVerifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrowserVerifications: %w", err)
	}
	return oldValue.BrowserVerifications, nil
}

// AddBrowserVerifications adds i to the "browser_verifications" field.
func (m *QualityCheckMutation) AddBrowserVerifications(i int) {
	if m.addbrowser_verifications != nil {
		*m.addbrowser_verifications += i
	} else {
		m.addbrowser_verifications = &i
	}
}

// AddedBrowserVerifications returns the value that was added to the "browser_verifications" field in this mutation.
func (m *QualityCheckMutation) AddedBrowserVerifications() (r int, exists bool) {
	v := m.addbrowser_verifications
	if v == nil {
		return
	}
	return *v, true
}

// ResetBrowserVerifications resets all changes to the "browser_verifications" field.
func (m *QualityCheckMutation) ResetBrowserVerifications() {
	m.browser_verifications = nil
	m.addbrowser_verifications = nil
}

// SetCriticalIssues sets the "critical_issues" field.
func (m *QualityCheckMutation) SetCriticalIssues(value []models.Issue) {
	m.critical_issues = &value
	m.appendcritical_issues = nil
}

// CriticalIssues returns the value of the "critical_issues" field in the mutation.
func (m *QualityCheckMutation) CriticalIssues() (r []models.Issue, exists bool) {
	v := m.critical_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalIssues returns the old "critical_issues" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldCriticalIssues(ctx context.Context) (v []models.Issue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalIssues: %w", err)
	}
	return oldValue.CriticalIssues, nil
}

// AppendCriticalIssues adds value to the "critical_issues" field.
func (m *QualityCheckMutation) AppendCriticalIssues(value []models.Issue) {
	m.appendcritical_issues = append(m.appendcritical_issues, value...)
}

// AppendedCriticalIssues returns the list of values that were appended to the "critical_issues" field in this mutation.
func (m *QualityCheckMutation) AppendedCriticalIssues() ([]models.Issue, bool) {
	if len(m.appendcritical_issues) == 0 {
		return nil, false
	}
	return m.appendcritical_issues, true
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (m *QualityCheckMutation) ClearCriticalIssues() {
	m.critical_issues = nil
	m.appendcritical_issues = nil
	m.clearedFields[qualitycheck.FieldCriticalIssues] = struct{}{}
}

// CriticalIssuesCleared returns if the "critical_issues" field was cleared in this mutation.
func (m *QualityCheckMutation) CriticalIssuesCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldCriticalIssues]
	return ok
}

// ResetCriticalIssues resets all changes to the "critical_issues" field.
func (m *QualityCheckMutation) ResetCriticalIssues() {
	m.critical_issues = nil
	m.appendcritical_issues = nil
	delete(m.clearedFields, qualitycheck.FieldCriticalIssues)
}

// SetWarnings sets the "warnings" field.
func (m *QualityCheckMutation) SetWarnings(value []models.Issue) {
	m.warnings = &value
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *QualityCheckMutation) Warnings() (r []models.Issue, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldWarnings(ctx context.Context) (v []models.Issue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds value to the "warnings" field.
func (m *QualityCheckMutation) AppendWarnings(value []models.Issue) {
	m.appendwarnings = append(m.appendwarnings, value...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *QualityCheckMutation) AppendedWarnings() ([]models.Issue, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *QualityCheckMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[qualitycheck.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *QualityCheckMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *QualityCheckMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, qualitycheck.FieldWarnings)
}

// SetReviewText sets the "review_text" field.
func (m *QualityCheckMutation) SetReviewText(s string) {
	m.review_text = &s
}

// ReviewText returns the value of the "review_text" field in the mutation.
func (m *QualityCheckMutation) ReviewText() (r string, exists bool) {
	v := m.review_text
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewText returns the old "review_text" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldReviewText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewText: %w", err)
	}
	return oldValue.ReviewText, nil
}

// ClearReviewText clears the value of the "review_text" field.
func (m *QualityCheckMutation) ClearReviewText() {
	m.review_text = nil
	m.clearedFields[qualitycheck.FieldReviewText] = struct{}{}
}

// ReviewTextCleared returns if the "review_text" field was cleared in this mutation.
func (m *QualityCheckMutation) ReviewTextCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldReviewText]
	return ok
}

// ResetReviewText resets all changes to the "review_text" field.
func (m *QualityCheckMutation) ResetReviewText() {
	m.review_text = nil
	delete(m.clearedFields, qualitycheck.FieldReviewText)
}

// SetCreatedAt sets the "created_at" field.
func (m *QualityCheckMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QualityCheckMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QualityCheckMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *QualityCheckMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[qualitycheck.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *QualityCheckMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *QualityCheckMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *QualityCheckMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the QualityCheckMutation builder.
func (m *QualityCheckMutation) Where(ps ...predicate.QualityCheck) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QualityCheckMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QualityCheckMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QualityCheck, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QualityCheckMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QualityCheckMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QualityCheck).
func (m *QualityCheckMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QualityCheckMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, qualitycheck.FieldSessionID)
	}
	if m.check_type != nil {
		fields = append(fields, qualitycheck.FieldCheckType)
	}
	if m.rating != nil {
		fields = append(fields, qualitycheck.FieldRating)
	}
	if m.tool_uses != nil {
		fields = append(fields, qualitycheck.FieldToolUses)
	}
	if m.errors != nil {
		fields = append(fields, qualitycheck.FieldErrors)
	}
	if m.browser_verifications != nil {
		fields = append(fields, qualitycheck.FieldBrowserVerifications)
	}
	if m.critical_issues != nil {
		fields = append(fields, qualitycheck.FieldCriticalIssues)
	}
	if m.warnings != nil {
		fields = append(fields, qualitycheck.FieldWarnings)
	}
	if m.review_text != nil {
		fields = append(fields, qualitycheck.FieldReviewText)
	}
	if m.created_at != nil {
		fields = append(fields, qualitycheck.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QualityCheckMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case qualitycheck.FieldSessionID:
		return m.SessionID()
	case qualitycheck.FieldCheckType:
		return m.CheckType()
	case qualitycheck.FieldRating:
		return m.Rating()
	case qualitycheck.FieldToolUses:
		return m.ToolUses()
	case qualitycheck.FieldErrors:
		return m.Errors()
	case qualitycheck.FieldBrowserVerifications:
		return m.BrowserVerifications()
	case qualitycheck.FieldCriticalIssues:
		return m.CriticalIssues()
	case qualitycheck.FieldWarnings:
		return m.Warnings()
	case qualitycheck.FieldReviewText:
		return m.ReviewText()
	case qualitycheck.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QualityCheckMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case qualitycheck.FieldSessionID:
		return m.OldSessionID(ctx)
	case qualitycheck.FieldCheckType:
		return m.OldCheckType(ctx)
	case qualitycheck.FieldRating:
		return m.OldRating(ctx)
	case qualitycheck.FieldToolUses:
		return m.OldToolUses(ctx)
	case qualitycheck.FieldErrors:
		return m.OldErrors(ctx)
	case qualitycheck.FieldBrowserVerifications:
		return m.OldBrowserVerifications(ctx)
	case qualitycheck.FieldCriticalIssues:
		return m.OldCriticalIssues(ctx)
	case qualitycheck.FieldWarnings:
		return m.OldWarnings(ctx)
	case qualitycheck.FieldReviewText:
		return m.OldReviewText(ctx)
	case qualitycheck.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QualityCheck field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QualityCheckMutation) SetField(name string, value ent.Value) error {
	switch name {
	case qualitycheck.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case qualitycheck.FieldCheckType:
		v, ok := value.(qualitycheck.CheckType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckType(v)
		return nil
	case qualitycheck.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case qualitycheck.FieldToolUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolUses(v)
		return nil
	case qualitycheck.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case qualitycheck.FieldBrowserVerifications:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrowserVerifications(v)
		return nil
	case qualitycheck.FieldCriticalIssues:
		v, ok := value.([]models.Issue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalIssues(v)
		return nil
	case qualitycheck.FieldWarnings:
		v, ok := value.([]models.Issue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case qualitycheck.FieldReviewText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewText(v)
		return nil
	case qualitycheck.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QualityCheck field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QualityCheckMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, qualitycheck.FieldRating)
	}
	if m.addtool_uses != nil {
		fields = append(fields, qualitycheck.FieldToolUses)
	}
	if m.adderrors != nil {
		fields = append(fields, qualitycheck.FieldErrors)
	}
	if m.addbrowser_verifications != nil {
		fields = append(fields, qualitycheck.FieldBrowserVerifications)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QualityCheckMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case qualitycheck.FieldRating:
		return m.AddedRating()
	case qualitycheck.FieldToolUses:
		return m.AddedToolUses()
	case qualitycheck.FieldErrors:
		return m.AddedErrors()
	case qualitycheck.FieldBrowserVerifications:
		return m.AddedBrowserVerifications()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QualityCheckMutation) AddField(name string, value ent.Value) error {
	switch name {
	case qualitycheck.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case qualitycheck.FieldToolUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolUses(v)
		return nil
	case qualitycheck.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrors(v)
		return nil
	case qualitycheck.FieldBrowserVerifications:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBrowserVerifications(v)
		return nil
	}
	return fmt.Errorf("unknown QualityCheck numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QualityCheckMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(qualitycheck.FieldCriticalIssues) {
		fields = append(fields, qualitycheck.FieldCriticalIssues)
	}
	if m.FieldCleared(qualitycheck.FieldWarnings) {
		fields = append(fields, qualitycheck.FieldWarnings)
	}
	if m.FieldCleared(qualitycheck.FieldReviewText) {
		fields = append(fields, qualitycheck.FieldReviewText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QualityCheckMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QualityCheckMutation) ClearField(name string) error {
	switch name {
	case qualitycheck.FieldCriticalIssues:
		m.ClearCriticalIssues()
		return nil
	case qualitycheck.FieldWarnings:
		m.ClearWarnings()
		return nil
	case qualitycheck.FieldReviewText:
		m.ClearReviewText()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QualityCheckMutation) ResetField(name string) error {
	switch name {
	case qualitycheck.FieldSessionID:
		m.ResetSessionID()
		return nil
	case qualitycheck.FieldCheckType:
		m.ResetCheckType()
		return nil
	case qualitycheck.FieldRating:
		m.ResetRating()
		return nil
	case qualitycheck.FieldToolUses:
		m.ResetToolUses()
		return nil
	case qualitycheck.FieldErrors:
		m.ResetErrors()
		return nil
	case qualitycheck.FieldBrowserVerifications:
		m.ResetBrowserVerifications()
		return nil
	case qualitycheck.FieldCriticalIssues:
		m.ResetCriticalIssues()
		return nil
	case qualitycheck.FieldWarnings:
		m.ResetWarnings()
		return nil
	case qualitycheck.FieldReviewText:
		m.ResetReviewText()
		return nil
	case qualitycheck.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QualityCheckMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, qualitycheck.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QualityCheckMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case qualitycheck.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QualityCheckMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QualityCheckMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QualityCheckMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, qualitycheck.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QualityCheckMutation) EdgeCleared(name string) bool {
	switch name {
	case qualitycheck.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QualityCheckMutation) ClearEdge(name string) error {
	switch name {
	case qualitycheck.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QualityCheckMutation) ResetEdge(name string) error {
	switch name {
	case qualitycheck.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	session_number           *int
	addsession_number        *int
	kind                     *session.Kind
	status                   *session.Status
	model                    *string
	prompt_version           *string
	started_at               *time.Time
	ended_at                 *time.Time
	tool_use_count           *int
	addtool_use_count        *int
	error_count              *int
	adderror_count           *int
	tokens_input             *int64
	addtokens_input          *int64
	tokens_output            *int64
	addtokens_output         *int64
	tokens_cache_creation    *int64
	addtokens_cache_creation *int64
	tokens_cache_read        *int64
	addtokens_cache_read     *int64
	metrics                  *map[string]interface{}
	failure_reason           *string
	last_active_at           *time.Time
	clearedFields            map[string]struct{}
	project                  *string
	clearedproject           bool
	quality_checks           map[string]struct{}
	removedquality_checks    map[string]struct{}
	clearedquality_checks    bool
	done                     bool
	oldValue                 func(context.Context) (*Session, error)
	predicates               []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SessionMutation) ResetProjectID() {
	m.project = nil
}

// SetSessionNumber sets the "session_number" field.
func (m *SessionMutation) SetSessionNumber(i int) {
	m.session_number = &i
	m.addsession_number = nil
}

// SessionNumber returns the value of the "session_number" field in the mutation.
func (m *SessionMutation) SessionNumber() (r int, exists bool) {
	v := m.session_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionNumber returns the old "session_number" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionNumber: %w", err)
	}
	return oldValue.SessionNumber, nil
}

// AddSessionNumber adds i to the "session_number" field.
func (m *SessionMutation) AddSessionNumber(i int) {
	if m.addsession_number != nil {
		*m.addsession_number += i
	} else {
		m.addsession_number = &i
	}
}

// AddedSessionNumber returns the value that was added to the "session_number" field in this mutation.
func (m *SessionMutation) AddedSessionNumber() (r int, exists bool) {
	v := m.addsession_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionNumber resets all changes to the "session_number" field.
func (m *SessionMutation) ResetSessionNumber() {
	m.session_number = nil
	m.addsession_number = nil
}

// SetKind sets the "kind" field.
func (m *SessionMutation) SetKind(s session.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SessionMutation) Kind() (r session.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldKind(ctx context.Context) (v session.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SessionMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetModel sets the "model" field.
func (m *SessionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SessionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *SessionMutation) ResetModel() {
	m.model = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *SessionMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *SessionMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *SessionMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[session.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *SessionMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[session.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *SessionMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, session.FieldPromptVersion)
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[session.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, session.FieldEndedAt)
}

// SetToolUseCount sets the "tool_use_count" field.
func (m *SessionMutation) SetToolUseCount(i int) {
	m.tool_use_count = &i
	m.addtool_use_count = nil
}

// ToolUseCount returns the value of the "tool_use_count" field in the mutation.
func (m *SessionMutation) ToolUseCount() (r int, exists bool) {
	v := m.tool_use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldToolUseCount returns the old "tool_use_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldToolUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolUseCount: %w", err)
	}
	return oldValue.ToolUseCount, nil
}

// AddToolUseCount adds i to the "tool_use_count" field.
func (m *SessionMutation) AddToolUseCount(i int) {
	if m.addtool_use_count != nil {
		*m.addtool_use_count += i
	} else {
		m.addtool_use_count = &i
	}
}

// AddedToolUseCount returns the value that was added to the "tool_use_count" field in this mutation.
func (m *SessionMutation) AddedToolUseCount() (r int, exists bool) {
	v := m.addtool_use_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolUseCount resets all changes to the "tool_use_count" field.
func (m *SessionMutation) ResetToolUseCount() {
	m.tool_use_count = nil
	m.addtool_use_count = nil
}

// SetErrorCount sets the "error_count" field.
func (m *SessionMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *SessionMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *SessionMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *SessionMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *SessionMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetTokensInput sets the "tokens_input" field.
func (m *SessionMutation) SetTokensInput(i int64) {
	m.tokens_input = &i
	m.addtokens_input = nil
}

// TokensInput returns the value of the "tokens_input" field in the mutation.
func (m *SessionMutation) TokensInput() (r int64, exists bool) {
	v := m.tokens_input
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensInput returns the old "tokens_input" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTokensInput(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensInput: %w", err)
	}
	return oldValue.TokensInput, nil
}

// AddTokensInput adds i to the "tokens_input" field.
func (m *SessionMutation) AddTokensInput(i int64) {
	if m.addtokens_input != nil {
		*m.addtokens_input += i
	} else {
		m.addtokens_input = &i
	}
}

// AddedTokensInput returns the value that was added to the "tokens_input" field in this mutation.
func (m *SessionMutation) AddedTokensInput() (r int64, exists bool) {
	v := m.addtokens_input
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensInput resets all changes to the "tokens_input" field.
func (m *SessionMutation) ResetTokensInput() {
	m.tokens_input = nil
	m.addtokens_input = nil
}

// SetTokensOutput sets the "tokens_output" field.
func (m *SessionMutation) SetTokensOutput(i int64) {
	m.tokens_output = &i
	m.addtokens_output = nil
}

// TokensOutput returns the value of the "tokens_output" field in the mutation.
func (m *SessionMutation) TokensOutput() (r int64, exists bool) {
	v := m.tokens_output
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOutput returns the old "tokens_output" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTokensOutput(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOutput: %w", err)
	}
	return oldValue.TokensOutput, nil
}

// AddTokensOutput adds i to the "tokens_output" field.
func (m *SessionMutation) AddTokensOutput(i int64) {
	if m.addtokens_output != nil {
		*m.addtokens_output += i
	} else {
		m.addtokens_output = &i
	}
}

// AddedTokensOutput returns the value that was added to the "tokens_output" field in this mutation.
func (m *SessionMutation) AddedTokensOutput() (r int64, exists bool) {
	v := m.addtokens_output
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOutput resets all changes to the "tokens_output" field.
func (m *SessionMutation) ResetTokensOutput() {
	m.tokens_output = nil
	m.addtokens_output = nil
}

// SetTokensCacheCreation sets the "tokens_cache_creation" field.
func (m *SessionMutation) SetTokensCacheCreation(i int64) {
	m.tokens_cache_creation = &i
	m.addtokens_cache_creation = nil
}

// TokensCacheCreation returns the value of the "tokens_cache_creation" field in the mutation.
func (m *SessionMutation) TokensCacheCreation() (r int64, exists bool) {
	v := m.tokens_cache_creation
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensCacheCreation returns the old "tokens_cache_creation" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTokensCacheCreation(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensCacheCreation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensCacheCreation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensCacheCreation: %w", err)
	}
	return oldValue.TokensCacheCreation, nil
}

// AddTokensCacheCreation adds i to the "tokens_cache_creation" field.
func (m *SessionMutation) AddTokensCacheCreation(i int64) {
	if m.addtokens_cache_creation != nil {
		*m.addtokens_cache_creation += i
	} else {
		m.addtokens_cache_creation = &i
	}
}

// AddedTokensCacheCreation returns the value that was added to the "tokens_cache_creation" field in this mutation.
func (m *SessionMutation) AddedTokensCacheCreation() (r int64, exists bool) {
	v := m.addtokens_cache_creation
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensCacheCreation resets all changes to the "tokens_cache_creation" field.
func (m *SessionMutation) ResetTokensCacheCreation() {
	m.tokens_cache_creation = nil
	m.addtokens_cache_creation = nil
}

// SetTokensCacheRead sets the "tokens_cache_read" field.
func (m *SessionMutation) SetTokensCacheRead(i int64) {
	m.tokens_cache_read = &i
	m.addtokens_cache_read = nil
}

// TokensCacheRead returns the value of the "tokens_cache_read" field in the mutation.
func (m *SessionMutation) TokensCacheRead() (r int64, exists bool) {
	v := m.tokens_cache_read
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensCacheRead returns the old "tokens_cache_read" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTokensCacheRead(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensCacheRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensCacheRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensCacheRead: %w", err)
	}
	return oldValue.TokensCacheRead, nil
}

// AddTokensCacheRead adds i to the "tokens_cache_read" field.
func (m *SessionMutation) AddTokensCacheRead(i int64) {
	if m.addtokens_cache_read != nil {
		*m.addtokens_cache_read += i
	} else {
		m.addtokens_cache_read = &i
	}
}

// AddedTokensCacheRead returns the value that was added to the "tokens_cache_read" field in this mutation.
func (m *SessionMutation) AddedTokensCacheRead() (r int64, exists bool) {
	v := m.addtokens_cache_read
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensCacheRead resets all changes to the "tokens_cache_read" field.
func (m *SessionMutation) ResetTokensCacheRead() {
	m.tokens_cache_read = nil
	m.addtokens_cache_read = nil
}

// SetMetrics sets the "metrics" field.
func (m *SessionMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *SessionMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *SessionMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[session.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *SessionMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[session.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *SessionMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, session.FieldMetrics)
}

// SetFailureReason sets the "failure_reason" field.
func (m *SessionMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *SessionMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *SessionMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[session.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *SessionMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[session.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *SessionMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, session.FieldFailureReason)
}

// SetLastActiveAt sets the "last_active_at" field.
func (m *SessionMutation) SetLastActiveAt(t time.Time) {
	m.last_active_at = &t
}

// LastActiveAt returns the value of the "last_active_at" field in the mutation.
func (m *SessionMutation) LastActiveAt() (r time.Time, exists bool) {
	v := m.last_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveAt returns the old "last_active_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastActiveAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveAt: %w", err)
	}
	return oldValue.LastActiveAt, nil
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (m *SessionMutation) ClearLastActiveAt() {
	m.last_active_at = nil
	m.clearedFields[session.FieldLastActiveAt] = struct{}{}
}

// LastActiveAtCleared returns if the "last_active_at" field was cleared in this mutation.
func (m *SessionMutation) LastActiveAtCleared() bool {
	_, ok := m.clearedFields[session.FieldLastActiveAt]
	return ok
}

// ResetLastActiveAt resets all changes to the "last_active_at" field.
func (m *SessionMutation) ResetLastActiveAt() {
	m.last_active_at = nil
	delete(m.clearedFields, session.FieldLastActiveAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[session.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SessionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddQualityCheckIDs adds the "quality_checks" edge to the QualityCheck entity by ids.
func (m *SessionMutation) AddQualityCheckIDs(ids ...string) {
	if m.quality_checks == nil {
		m.quality_checks = make(map[string]struct{})
	}
	for i := range ids {
		m.quality_checks[ids[i]] = struct{}{}
	}
}

// ClearQualityChecks clears the "quality_checks" edge to the QualityCheck entity.
func (m *SessionMutation) ClearQualityChecks() {
	m.clearedquality_checks = true
}

// QualityChecksCleared reports if the "quality_checks" edge to the QualityCheck entity was cleared.
func (m *SessionMutation) QualityChecksCleared() bool {
	return m.clearedquality_checks
}

// RemoveQualityCheckIDs removes the "quality_checks" edge to the QualityCheck entity by IDs.
func (m *SessionMutation) RemoveQualityCheckIDs(ids ...string) {
	if m.removedquality_checks == nil {
		m.removedquality_checks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.quality_checks, ids[i])
		m.removedquality_checks[ids[i]] = struct{}{}
	}
}

// RemovedQualityChecks returns the removed IDs of the "quality_checks" edge to the QualityCheck entity.
func (m *SessionMutation) RemovedQualityChecksIDs() (ids []string) {
	for id := range m.removedquality_checks {
		ids = append(ids, id)
	}
	return
}

// QualityChecksIDs returns the "quality_checks" edge IDs in the mutation.
func (m *SessionMutation) QualityChecksIDs() (ids []string) {
	for id := range m.quality_checks {
		ids = append(ids, id)
	}
	return
}

// ResetQualityChecks resets all changes to the "quality_checks" edge.
func (m *SessionMutation) ResetQualityChecks() {
	m.quality_checks = nil
	m.clearedquality_checks = false
	m.removedquality_checks = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.project != nil {
		fields = append(fields, session.FieldProjectID)
	}
	if m.session_number != nil {
		fields = append(fields, session.FieldSessionNumber)
	}
	if m.kind != nil {
		fields = append(fields, session.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.model != nil {
		fields = append(fields, session.FieldModel)
	}
	if m.prompt_version != nil {
		fields = append(fields, session.FieldPromptVersion)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.tool_use_count != nil {
		fields = append(fields, session.FieldToolUseCount)
	}
	if m.error_count != nil {
		fields = append(fields, session.FieldErrorCount)
	}
	if m.tokens_input != nil {
		fields = append(fields, session.FieldTokensInput)
	}
	if m.tokens_output != nil {
		fields = append(fields, session.FieldTokensOutput)
	}
	if m.tokens_cache_creation != nil {
		fields = append(fields, session.FieldTokensCacheCreation)
	}
	if m.tokens_cache_read != nil {
		fields = append(fields, session.FieldTokensCacheRead)
	}
	if m.metrics != nil {
		fields = append(fields, session.FieldMetrics)
	}
	if m.failure_reason != nil {
		fields = append(fields, session.FieldFailureReason)
	}
	if m.last_active_at != nil {
		fields = append(fields, session.FieldLastActiveAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldProjectID:
		return m.ProjectID()
	case session.FieldSessionNumber:
		return m.SessionNumber()
	case session.FieldKind:
		return m.Kind()
	case session.FieldStatus:
		return m.Status()
	case session.FieldModel:
		return m.Model()
	case session.FieldPromptVersion:
		return m.PromptVersion()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldEndedAt:
		return m.EndedAt()
	case session.FieldToolUseCount:
		return m.ToolUseCount()
	case session.FieldErrorCount:
		return m.ErrorCount()
	case session.FieldTokensInput:
		return m.TokensInput()
	case session.FieldTokensOutput:
		return m.TokensOutput()
	case session.FieldTokensCacheCreation:
		return m.TokensCacheCreation()
	case session.FieldTokensCacheRead:
		return m.TokensCacheRead()
	case session.FieldMetrics:
		return m.Metrics()
	case session.FieldFailureReason:
		return m.FailureReason()
	case session.FieldLastActiveAt:
		return m.LastActiveAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldProjectID:
		return m.OldProjectID(ctx)
	case session.FieldSessionNumber:
		return m.OldSessionNumber(ctx)
	case session.FieldKind:
		return m.OldKind(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldModel:
		return m.OldModel(ctx)
	case session.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case session.FieldToolUseCount:
		return m.OldToolUseCount(ctx)
	case session.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case session.FieldTokensInput:
		return m.OldTokensInput(ctx)
	case session.FieldTokensOutput:
		return m.OldTokensOutput(ctx)
	case session.FieldTokensCacheCreation:
		return m.OldTokensCacheCreation(ctx)
	case session.FieldTokensCacheRead:
		return m.OldTokensCacheRead(ctx)
	case session.FieldMetrics:
		return m.OldMetrics(ctx)
	case session.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case session.FieldLastActiveAt:
		return m.OldLastActiveAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case session.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionNumber(v)
		return nil
	case session.FieldKind:
		v, ok := value.(session.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case session.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case session.FieldToolUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolUseCount(v)
		return nil
	case session.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case session.FieldTokensInput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensInput(v)
		return nil
	case session.FieldTokensOutput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOutput(v)
		return nil
	case session.FieldTokensCacheCreation:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensCacheCreation(v)
		return nil
	case session.FieldTokensCacheRead:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensCacheRead(v)
		return nil
	case session.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case session.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case session.FieldLastActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addsession_number != nil {
		fields = append(fields, session.FieldSessionNumber)
	}
	if m.addtool_use_count != nil {
		fields = append(fields, session.FieldToolUseCount)
	}
	if m.adderror_count != nil {
		fields = append(fields, session.FieldErrorCount)
	}
	if m.addtokens_input != nil {
		fields = append(fields, session.FieldTokensInput)
	}
	if m.addtokens_output != nil {
		fields = append(fields, session.FieldTokensOutput)
	}
	if m.addtokens_cache_creation != nil {
		fields = append(fields, session.FieldTokensCacheCreation)
	}
	if m.addtokens_cache_read != nil {
		fields = append(fields, session.FieldTokensCacheRead)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionNumber:
		return m.AddedSessionNumber()
	case session.FieldToolUseCount:
		return m.AddedToolUseCount()
	case session.FieldErrorCount:
		return m.AddedErrorCount()
	case session.FieldTokensInput:
		return m.AddedTokensInput()
	case session.FieldTokensOutput:
		return m.AddedTokensOutput()
	case session.FieldTokensCacheCreation:
		return m.AddedTokensCacheCreation()
	case session.FieldTokensCacheRead:
		return m.AddedTokensCacheRead()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionNumber(v)
		return nil
	case session.FieldToolUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolUseCount(v)
		return nil
	case session.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case session.FieldTokensInput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensInput(v)
		return nil
	case session.FieldTokensOutput:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOutput(v)
		return nil
	case session.FieldTokensCacheCreation:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensCacheCreation(v)
		return nil
	case session.FieldTokensCacheRead:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensCacheRead(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldPromptVersion) {
		fields = append(fields, session.FieldPromptVersion)
	}
	if m.FieldCleared(session.FieldEndedAt) {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.FieldCleared(session.FieldMetrics) {
		fields = append(fields, session.FieldMetrics)
	}
	if m.FieldCleared(session.FieldFailureReason) {
		fields = append(fields, session.FieldFailureReason)
	}
	if m.FieldCleared(session.FieldLastActiveAt) {
		fields = append(fields, session.FieldLastActiveAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case session.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case session.FieldMetrics:
		m.ClearMetrics()
		return nil
	case session.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case session.FieldLastActiveAt:
		m.ClearLastActiveAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldProjectID:
		m.ResetProjectID()
		return nil
	case session.FieldSessionNumber:
		m.ResetSessionNumber()
		return nil
	case session.FieldKind:
		m.ResetKind()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldModel:
		m.ResetModel()
		return nil
	case session.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case session.FieldToolUseCount:
		m.ResetToolUseCount()
		return nil
	case session.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case session.FieldTokensInput:
		m.ResetTokensInput()
		return nil
	case session.FieldTokensOutput:
		m.ResetTokensOutput()
		return nil
	case session.FieldTokensCacheCreation:
		m.ResetTokensCacheCreation()
		return nil
	case session.FieldTokensCacheRead:
		m.ResetTokensCacheRead()
		return nil
	case session.FieldMetrics:
		m.ResetMetrics()
		return nil
	case session.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case session.FieldLastActiveAt:
		m.ResetLastActiveAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, session.EdgeProject)
	}
	if m.quality_checks != nil {
		edges = append(edges, session.EdgeQualityChecks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeQualityChecks:
		ids := make([]ent.Value, 0, len(m.quality_checks))
		for id := range m.quality_checks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquality_checks != nil {
		edges = append(edges, session.EdgeQualityChecks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeQualityChecks:
		ids := make([]ent.Value, 0, len(m.removedquality_checks))
		for id := range m.removedquality_checks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, session.EdgeProject)
	}
	if m.clearedquality_checks {
		edges = append(edges, session.EdgeQualityChecks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeProject:
		return m.clearedproject
	case session.EdgeQualityChecks:
		return m.clearedquality_checks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeProject:
		m.ResetProject()
		return nil
	case session.EdgeQualityChecks:
		m.ResetQualityChecks()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	ordinal       *int
	addordinal    *int
	title         *string
	description   *string
	status        *task.Status
	started_at    *time.Time
	completed_at  *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	epic          *string
	clearedepic   bool
	tests         map[string]struct{}
	removedtests  map[string]struct{}
	clearedtests  bool
	done          bool
	oldValue      func(context.Context) (*Task, error)
	predicates    []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEpicID sets the "epic_id" field.
func (m *TaskMutation) SetEpicID(s string) {
	m.epic = &s
}

// EpicID returns the value of the "epic_id" field in the mutation.
func (m *TaskMutation) EpicID() (r string, exists bool) {
	v := m.epic
	if v == nil {
		return
	}
	return *v, true
}

// OldEpicID returns the old "epic_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEpicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpicID: %w", err)
	}
	return oldValue.EpicID, nil
}

// ResetEpicID resets all changes to the "epic_id" field.
func (m *TaskMutation) ResetEpicID() {
	m.epic = nil
}

// SetOrdinal sets the "ordinal" field.
func (m *TaskMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *TaskMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *TaskMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *TaskMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *TaskMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEpic clears the "epic" edge to the Epic entity.
func (m *TaskMutation) ClearEpic() {
	m.clearedepic = true
	m.clearedFields[task.FieldEpicID] = struct{}{}
}

// EpicCleared reports if the "epic" edge to the Epic entity was cleared.
func (m *TaskMutation) EpicCleared() bool {
	return m.clearedepic
}

// EpicIDs returns the "epic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EpicID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) EpicIDs() (ids []string) {
	if id := m.epic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEpic resets all changes to the "epic" edge.
func (m *TaskMutation) ResetEpic() {
	m.epic = nil
	m.clearedepic = false
}

// AddTestIDs adds the "tests" edge to the TaskTest entity by ids.
func (m *TaskMutation) AddTestIDs(ids ...string) {
	if m.tests == nil {
		m.tests = make(map[string]struct{})
	}
	for i := range ids {
		m.tests[ids[i]] = struct{}{}
	}
}

// ClearTests clears the "tests" edge to the TaskTest entity.
func (m *TaskMutation) ClearTests() {
	m.clearedtests = true
}

// TestsCleared reports if the "tests" edge to the TaskTest entity was cleared.
func (m *TaskMutation) TestsCleared() bool {
	return m.clearedtests
}

// RemoveTestIDs removes the "tests" edge to the TaskTest entity by IDs.
func (m *TaskMutation) RemoveTestIDs(ids ...string) {
	if m.removedtests == nil {
		m.removedtests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tests, ids[i])
		m.removedtests[ids[i]] = struct{}{}
	}
}

// RemovedTests returns the removed IDs of the "tests" edge to the TaskTest entity.
func (m *TaskMutation) RemovedTestsIDs() (ids []string) {
	for id := range m.removedtests {
		ids = append(ids, id)
	}
	return
}

// TestsIDs returns the "tests" edge IDs in the mutation.
func (m *TaskMutation) TestsIDs() (ids []string) {
	for id := range m.tests {
		ids = append(ids, id)
	}
	return
}

// ResetTests resets all changes to the "tests" edge.
func (m *TaskMutation) ResetTests() {
	m.tests = nil
	m.clearedtests = false
	m.removedtests = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.epic != nil {
		fields = append(fields, task.FieldEpicID)
	}
	if m.ordinal != nil {
		fields = append(fields, task.FieldOrdinal)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldEpicID:
		return m.EpicID()
	case task.FieldOrdinal:
		return m.Ordinal()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldEpicID:
		return m.OldEpicID(ctx)
	case task.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldEpicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpicID(v)
		return nil
	case task.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addordinal != nil {
		fields = append(fields, task.FieldOrdinal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldOrdinal:
		return m.AddedOrdinal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldEpicID:
		m.ResetEpicID()
		return nil
	case task.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.epic != nil {
		edges = append(edges, task.EdgeEpic)
	}
	if m.tests != nil {
		edges = append(edges, task.EdgeTests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEpic:
		if id := m.epic; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeTests:
		ids := make([]ent.Value, 0, len(m.tests))
		for id := range m.tests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtests != nil {
		edges = append(edges, task.EdgeTests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTests:
		ids := make([]ent.Value, 0, len(m.removedtests))
		for id := range m.removedtests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedepic {
		edges = append(edges, task.EdgeEpic)
	}
	if m.clearedtests {
		edges = append(edges, task.EdgeTests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEpic:
		return m.clearedepic
	case task.EdgeTests:
		return m.clearedtests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeEpic:
		m.ClearEpic()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEpic:
		m.ResetEpic()
		return nil
	case task.EdgeTests:
		m.ResetTests()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskTestMutation represents an operation that mutates the TaskTest nodes in the graph.
type TaskTestMutation struct {
	config
	op                Op
	typ               string
	id                *string
	description       *string
	outcome           *tasktest.Outcome
	verification_note *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	task              *string
	clearedtask       bool
	done              bool
	oldValue          func(context.Context) (*TaskTest, error)
	predicates        []predicate.TaskTest
}

var _ ent.Mutation = (*TaskTestMutation)(nil)

// tasktestOption allows management of the mutation configuration using functional options.
type tasktestOption func(*TaskTestMutation)

// newTaskTestMutation creates new mutation for the TaskTest entity.
func newTaskTestMutation(c config, op Op, opts ...tasktestOption) *TaskTestMutation {
	m := &TaskTestMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskTestID sets the ID field of the mutation.
func withTaskTestID(id string) tasktestOption {
	return func(m *TaskTestMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskTest
		)
		m.oldValue = func(ctx context.Context) (*TaskTest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskTest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskTest sets the old TaskTest of the mutation.
func withTaskTest(node *TaskTest) tasktestOption {
	return func(m *TaskTestMutation) {
		m.oldValue = func(context.Context) (*TaskTest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskTestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskTestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskTest entities.
func (m *TaskTestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskTestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskTestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskTest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskTestMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskTestMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskTest entity.
// If the TaskTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTestMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskTestMutation) ResetTaskID() {
	m.task = nil
}

// SetDescription sets the "description" field.
func (m *TaskTestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskTestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TaskTest entity.
// If the TaskTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskTestMutation) ResetDescription() {
	m.description = nil
}

// SetOutcome sets the "outcome" field.
func (m *TaskTestMutation) SetOutcome(t tasktest.Outcome) {
	m.outcome = &t
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *TaskTestMutation) Outcome() (r tasktest.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the TaskTest entity.
// If the TaskTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTestMutation) OldOutcome(ctx context.Context) (v tasktest.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *TaskTestMutation) ResetOutcome() {
	m.outcome = nil
}

// SetVerificationNote sets the "verification_note" field.
func (m *TaskTestMutation) SetVerificationNote(s string) {
	m.verification_note = &s
}

// VerificationNote returns the value of the "verification_note" field in the mutation.
func (m *TaskTestMutation) VerificationNote() (r string, exists bool) {
	v := m.verification_note
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationNote returns the old "verification_note" field's value of the TaskTest entity.
// If the TaskTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTestMutation) OldVerificationNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationNote: %w", err)
	}
	return oldValue.VerificationNote, nil
}

// ClearVerificationNote clears the value of the "verification_note" field.
func (m *TaskTestMutation) ClearVerificationNote() {
	m.verification_note = nil
	m.clearedFields[tasktest.FieldVerificationNote] = struct{}{}
}

// VerificationNoteCleared returns if the "verification_note" field was cleared in this mutation.
func (m *TaskTestMutation) VerificationNoteCleared() bool {
	_, ok := m.clearedFields[tasktest.FieldVerificationNote]
	return ok
}

// ResetVerificationNote resets all changes to the "verification_note" field.
func (m *TaskTestMutation) ResetVerificationNote() {
	m.verification_note = nil
	delete(m.clearedFields, tasktest.FieldVerificationNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskTestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskTestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskTest entity.
// If the TaskTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskTestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskTestMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[tasktest.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskTestMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskTestMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskTestMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskTestMutation builder.
func (m *TaskTestMutation) Where(ps ...predicate.TaskTest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskTestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskTestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskTest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskTestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskTestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskTest).
func (m *TaskTestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskTestMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, tasktest.FieldTaskID)
	}
	if m.description != nil {
		fields = append(fields, tasktest.FieldDescription)
	}
	if m.outcome != nil {
		fields = append(fields, tasktest.FieldOutcome)
	}
	if m.verification_note != nil {
		fields = append(fields, tasktest.FieldVerificationNote)
	}
	if m.created_at != nil {
		fields = append(fields, tasktest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskTestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasktest.FieldTaskID:
		return m.TaskID()
	case tasktest.FieldDescription:
		return m.Description()
	case tasktest.FieldOutcome:
		return m.Outcome()
	case tasktest.FieldVerificationNote:
		return m.VerificationNote()
	case tasktest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskTestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasktest.FieldTaskID:
		return m.OldTaskID(ctx)
	case tasktest.FieldDescription:
		return m.OldDescription(ctx)
	case tasktest.FieldOutcome:
		return m.OldOutcome(ctx)
	case tasktest.FieldVerificationNote:
		return m.OldVerificationNote(ctx)
	case tasktest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskTest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasktest.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case tasktest.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tasktest.FieldOutcome:
		v, ok := value.(tasktest.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case tasktest.FieldVerificationNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationNote(v)
		return nil
	case tasktest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskTestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskTestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskTest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskTestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tasktest.FieldVerificationNote) {
		fields = append(fields, tasktest.FieldVerificationNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskTestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskTestMutation) ClearField(name string) error {
	switch name {
	case tasktest.FieldVerificationNote:
		m.ClearVerificationNote()
		return nil
	}
	return fmt.Errorf("unknown TaskTest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskTestMutation) ResetField(name string) error {
	switch name {
	case tasktest.FieldTaskID:
		m.ResetTaskID()
		return nil
	case tasktest.FieldDescription:
		m.ResetDescription()
		return nil
	case tasktest.FieldOutcome:
		m.ResetOutcome()
		return nil
	case tasktest.FieldVerificationNote:
		m.ResetVerificationNote()
		return nil
	case tasktest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskTest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskTestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, tasktest.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskTestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tasktest.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskTestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskTestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskTestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, tasktest.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskTestMutation) EdgeCleared(name string) bool {
	switch name {
	case tasktest.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskTestMutation) ClearEdge(name string) error {
	switch name {
	case tasktest.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskTest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskTestMutation) ResetEdge(name string) error {
	switch name {
	case tasktest.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskTest edge %s", name)
}
