package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application failure. Handlers translate kinds to HTTP
// status codes; services only ever deal in kinds.
type Kind int

const (
	// KindSystem covers store failures and anything unexpected. Details are
	// logged, never sent to the caller.
	KindSystem Kind = iota
	// KindNotFound covers absent resources, and resources the actor is not
	// allowed to know exist (existence masking).
	KindNotFound
	// KindConflict covers uniqueness violations (email, username, identity).
	KindConflict
	// KindBusinessRule covers domain rule breaches (e.g. negative metrics).
	KindBusinessRule
	// KindPermissionDenied covers write access denied on a resource the actor
	// already knows about. Never used where masking applies.
	KindPermissionDenied
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBusinessRule:
		return "business_rule_violation"
	case KindPermissionDenied:
		return "permission_denied"
	default:
		return "system"
	}
}

// Error is the single error type crossing service boundaries.
type Error struct {
	Kind     Kind
	Resource string
	ID       string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports an absent (or masked) resource.
func NotFound(resource, id string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Resource: resource,
		ID:       id,
		Message:  fmt.Sprintf("%s with id %s not found", resource, id),
	}
}

// Conflict reports a uniqueness violation with a human-readable reason.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// BusinessRule reports a domain rule breach.
func BusinessRule(message string) *Error {
	return &Error{Kind: KindBusinessRule, Message: message}
}

// PermissionDenied reports denied write access, naming the resource and why.
func PermissionDenied(resource, reason string) *Error {
	return &Error{
		Kind:     KindPermissionDenied,
		Resource: resource,
		Message:  reason,
	}
}

// System wraps an infrastructure failure. The cause stays attached for logs.
func System(err error) *Error {
	return &Error{Kind: KindSystem, Message: "internal system error", Err: err}
}

// KindOf extracts the kind from any error. Untagged errors count as system
// failures so nothing leaks by accident.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindSystem
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
