package service

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind int

const (
	// KindIdentity: the file name does not encode a language tag
	KindIdentity ErrorKind = iota
	// KindPrecondition: same source/target language, or output exists without force
	KindPrecondition
	// KindMergeCompatibility: original and translated cue counts differ
	KindMergeCompatibility
	KindFileRead
	KindFileWrite
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindPrecondition:
		return "Precondition"
	case KindMergeCompatibility:
		return "MergeCompatibility"
	case KindFileRead:
		return "FileRead"
	case KindFileWrite:
		return "FileWrite"
	case KindParse:
		return "Parse"
	default:
		return "Unknown"
	}
}

// Error is the domain error carried out of the service layer. Context
// holds the file and language pair that triggered the failure so logs
// can identify the run.
type Error struct {
	Kind    ErrorKind
	Message string
	Context map[string]any
	Cause   error
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Context: make(map[string]any),
	}
}

func WrapError(err error, kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Context: make(map[string]any),
		Cause:   err,
	}
}

func (e *Error) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s] %s", e.Kind.String(), e.Message))

	if len(e.Context) > 0 {
		var ctxParts []string
		for k, v := range e.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context: %s", strings.Join(ctxParts, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}

	return strings.Join(parts, " | ")
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

func IsKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}
