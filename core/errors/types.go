// Package errors implements the pipeline's error taxonomy with
// classification and retry behavior.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Class is the failure classification for errors raised by the pipeline.
// Each class has defined retry behavior.
type Class int

const (
	// ClassPrecondition indicates the caller's input lacks required data.
	// Fatal immediately; no model invocation is attempted.
	ClassPrecondition Class = iota

	// ClassConfiguration indicates no usable model-invocation route exists.
	// Fatal immediately.
	ClassConfiguration

	// ClassUntrustedInput indicates malformed opportunity context. Always
	// recovered locally by sanitization; never surfaced to the caller.
	ClassUntrustedInput

	// ClassProvider indicates the model-invocation collaborator failed
	// (network, auth, quota). Retried up to the attempt ceiling.
	ClassProvider

	// ClassSchemaViolation indicates the returned value failed structural
	// validation. Retried with corrective prompt injection.
	ClassSchemaViolation

	// ClassInternalInvariant indicates an assembler-stage invariant broke
	// despite validation passing. Always fatal; always a bug.
	ClassInternalInvariant
)

var classNames = map[Class]string{
	ClassPrecondition:      "precondition",
	ClassConfiguration:     "configuration",
	ClassUntrustedInput:    "untrusted_input",
	ClassProvider:          "provider",
	ClassSchemaViolation:   "schema_violation",
	ClassInternalInvariant: "internal_invariant",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// Retryable reports whether errors of this class may be retried by the
// generation orchestrator.
func (c Class) Retryable() bool {
	switch c {
	case ClassProvider, ClassSchemaViolation:
		return true
	default:
		return false
	}
}

// ProviderHint refines a provider failure for caller-level messaging.
type ProviderHint string

const (
	HintRateLimited ProviderHint = "rate_limited"
	HintAuthFailure ProviderHint = "auth_failure"
	HintNetwork     ProviderHint = "network"
	HintQuota       ProviderHint = "quota_exceeded"
	HintUnknown     ProviderHint = "unknown"
)

// ClassifiedError wraps an error with its pipeline classification.
type ClassifiedError struct {
	Class      Class
	Message    string
	Underlying error

	// Hint carries the provider-failure refinement for ClassProvider.
	Hint ProviderHint

	// Violations carries the itemized structural violation list for
	// ClassSchemaViolation.
	Violations []string
}

func (e *ClassifiedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Class, e.Message)
	if len(e.Violations) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Violations, "; "))
	}
	if e.Underlying != nil {
		fmt.Fprintf(&b, ": %v", e.Underlying)
	}
	return b.String()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// Is matches another ClassifiedError by class.
func (e *ClassifiedError) Is(target error) bool {
	var ce *ClassifiedError
	if errors.As(target, &ce) {
		return e.Class == ce.Class
	}
	return false
}

func NewPrecondition(message string) *ClassifiedError {
	return &ClassifiedError{Class: ClassPrecondition, Message: message}
}

func NewConfiguration(message string, underlying error) *ClassifiedError {
	return &ClassifiedError{Class: ClassConfiguration, Message: message, Underlying: underlying}
}

func NewProvider(message string, hint ProviderHint, underlying error) *ClassifiedError {
	if hint == "" {
		hint = HintUnknown
	}
	return &ClassifiedError{Class: ClassProvider, Message: message, Hint: hint, Underlying: underlying}
}

func NewSchemaViolation(message string, violations []string) *ClassifiedError {
	return &ClassifiedError{Class: ClassSchemaViolation, Message: message, Violations: violations}
}

func NewInternalInvariant(message string) *ClassifiedError {
	return &ClassifiedError{Class: ClassInternalInvariant, Message: message}
}

// GetClass extracts the Class from an error. Unclassified errors default to
// ClassInternalInvariant so that nothing unexpected is silently retried.
func GetClass(err error) Class {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}
	return ClassInternalInvariant
}

// IsRetryable reports whether the orchestrator may retry after err.
func IsRetryable(err error) bool {
	return GetClass(err).Retryable()
}

// ViolationList extracts the itemized violations from a schema-violation
// error, or nil.
func ViolationList(err error) []string {
	var ce *ClassifiedError
	if errors.As(err, &ce) && ce.Class == ClassSchemaViolation {
		return ce.Violations
	}
	return nil
}
