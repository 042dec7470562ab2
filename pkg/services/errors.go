package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures across tool handlers, the sandbox and the
// session loop. Kinds cross the tool boundary verbatim as the structured
// {kind, message, retriable} error payload.
type ErrorKind string

const (
	// KindPrecondition means the operation would violate an invariant
	// (e.g. marking a task done while child tests fail). The agent is
	// expected to recover.
	KindPrecondition ErrorKind = "precondition"

	// KindNotFound means the referenced entity does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindForbidden means the entity exists but belongs to another project.
	KindForbidden ErrorKind = "forbidden"

	// KindSandboxUnavailable means the container runtime is unreachable or
	// a sandbox start failed.
	KindSandboxUnavailable ErrorKind = "sandbox_unavailable"

	// KindAgentTransport means the external agent stream aborted or a
	// stream line exceeded the buffer cap.
	KindAgentTransport ErrorKind = "agent_transport"

	// KindTimeout means an exec or whole-session timeout fired.
	KindTimeout ErrorKind = "timeout"

	// KindSecurityDenied means the command guard blocked an exec request.
	KindSecurityDenied ErrorKind = "security_denied"

	// KindStorage means the database was unavailable or a write failed.
	KindStorage ErrorKind = "storage"
)

// Error is the typed failure shared across the tool bridge, sandbox,
// agent client and orchestrator.
type Error struct {
	Kind      ErrorKind
	Message   string
	Retriable bool
	Err       error // optional cause
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewPreconditionError creates a precondition failure.
func NewPreconditionError(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError creates a not_found failure for an entity.
func NewNotFoundError(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %q not found", entity, id)}
}

// NewForbiddenError creates a forbidden failure for an entity outside the
// caller's project.
func NewForbiddenError(entity, id string) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf("%s %q belongs to another project", entity, id)}
}

// NewSandboxUnavailableError creates a sandbox_unavailable failure.
func NewSandboxUnavailableError(err error) *Error {
	return &Error{
		Kind:      KindSandboxUnavailable,
		Message:   fmt.Sprintf("sandbox unavailable: %v", err),
		Retriable: true,
		Err:       err,
	}
}

// NewAgentTransportError creates an agent_transport failure.
func NewAgentTransportError(format string, args ...any) *Error {
	return &Error{Kind: KindAgentTransport, Message: fmt.Sprintf(format, args...), Retriable: true}
}

// NewTimeoutError creates a timeout failure.
func NewTimeoutError(format string, args ...any) *Error {
	return &Error{Kind: KindTimeout, Message: fmt.Sprintf(format, args...)}
}

// NewSecurityDeniedError creates a security_denied failure. The message must
// already have secrets redacted; it is shown to the agent verbatim.
func NewSecurityDeniedError(format string, args ...any) *Error {
	return &Error{Kind: KindSecurityDenied, Message: fmt.Sprintf(format, args...)}
}

// NewStorageError wraps a database failure.
func NewStorageError(err error) *Error {
	return &Error{
		Kind:      KindStorage,
		Message:   fmt.Sprintf("storage unavailable: %v", err),
		Retriable: true,
		Err:       err,
	}
}

// AsError extracts a typed *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the taxonomy kind of err, or KindStorage for untyped
// errors escaping a storage-backed call path.
func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindStorage
}
