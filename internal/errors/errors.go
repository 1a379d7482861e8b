// Package errors provides the structured error type shared across the
// quizforge CLI.
//
// Errors carry a category, a stable code, and a Recoverable flag that
// drives batch behavior: recoverable errors are reported per item and never
// abort a multi-item run, while non-recoverable errors (snapshot integrity)
// stop the run before any destructive write.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	// ErrorTypeNotFound covers absent files and quiz folders. Isolated:
	// skip the item and continue.
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeParse covers malformed metadata. Degrades to "no locale
	// entry" at the variation store.
	ErrorTypeParse ErrorType = "parse"
	// ErrorTypeValidation covers quizzes lacking a resolved title or
	// difficulty for the requested locale.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeIO covers per-file write failures. Isolated per file.
	ErrorTypeIO ErrorType = "io"
	// ErrorTypeCache covers persisted-snapshot integrity failures. Fatal:
	// proceeding would risk overwriting hand-edited files.
	ErrorTypeCache ErrorType = "cache"
)

// CorpusError is a structured error with corpus context.
type CorpusError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Quiz        int
	Locale      string
	Path        string
	Context     map[string]interface{}
	Recoverable bool
}

// Error implements the error interface.
func (e *CorpusError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.Quiz > 0 {
		parts = append(parts, fmt.Sprintf("quiz:%d", e.Quiz))
	}
	if e.Locale != "" {
		parts = append(parts, "locale:"+e.Locale)
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *CorpusError) Unwrap() error {
	return e.Cause
}

// Is matches on type and code so callers can compare against sentinel
// constructions.
func (e *CorpusError) Is(target error) bool {
	var t *CorpusError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithQuiz attaches the quiz number.
func (e *CorpusError) WithQuiz(number int) *CorpusError {
	e.Quiz = number
	return e
}

// WithLocale attaches the locale being processed.
func (e *CorpusError) WithLocale(locale string) *CorpusError {
	e.Locale = locale
	return e
}

// WithPath attaches the file path involved.
func (e *CorpusError) WithPath(path string) *CorpusError {
	e.Path = path
	return e
}

// WithContext attaches arbitrary context.
func (e *CorpusError) WithContext(key string, value interface{}) *CorpusError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Common error codes.
const (
	ErrCodeMissingTarget   = "ERR_MISSING_TARGET"
	ErrCodeMetadataParse   = "ERR_METADATA_PARSE"
	ErrCodeSnapshotCorrupt = "ERR_SNAPSHOT_CORRUPT"
	ErrCodeLocaleGap       = "ERR_LOCALE_GAP"
	ErrCodeWriteFailed     = "ERR_WRITE_FAILED"
	ErrCodeBadFolder       = "ERR_BAD_FOLDER"
)

// NewNotFoundError creates a not-found error for a missing target file.
func NewNotFoundError(code, message string) *CorpusError {
	return &CorpusError{
		Type:        ErrorTypeNotFound,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewParseError creates a metadata parse error.
func NewParseError(code, message string, cause error) *CorpusError {
	return &CorpusError{
		Type:        ErrorTypeParse,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewValidationError creates a validation-gap error.
func NewValidationError(code, message string) *CorpusError {
	return &CorpusError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates a per-file I/O error.
func NewIOError(code, message string, cause error) *CorpusError {
	return &CorpusError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewCacheError creates a fatal snapshot-integrity error.
func NewCacheError(code, message string, cause error) *CorpusError {
	return &CorpusError{
		Type:        ErrorTypeCache,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable reports whether err may be absorbed at the item boundary.
// Unknown error types default to recoverable so a stray wrapped error never
// kills a whole batch.
func IsRecoverable(err error) bool {
	var ce *CorpusError
	if errors.As(err, &ce) {
		return ce.Recoverable
	}
	return true
}

// IsFatal reports whether err must abort the run before any destructive
// write.
func IsFatal(err error) bool {
	var ce *CorpusError
	if errors.As(err, &ce) {
		return !ce.Recoverable
	}
	return false
}

// IsNotFound reports whether err is a missing-target error.
func IsNotFound(err error) bool {
	var ce *CorpusError
	if errors.As(err, &ce) {
		return ce.Type == ErrorTypeNotFound
	}
	return false
}

// ErrMissingTarget creates the per-document missing-file error reported by
// region templating.
func ErrMissingTarget(path string) *CorpusError {
	return NewNotFoundError(ErrCodeMissingTarget, "target document does not exist").WithPath(path)
}

// ErrSnapshotCorrupt creates the fatal error for an unparsable persisted
// snapshot.
func ErrSnapshotCorrupt(path string, cause error) *CorpusError {
	return NewCacheError(ErrCodeSnapshotCorrupt, "persisted snapshot is unreadable", cause).WithPath(path)
}

// ErrLocaleGap creates the skip error for a quiz not translated into the
// requested locale.
func ErrLocaleGap(quiz int, locale string) *CorpusError {
	return NewValidationError(ErrCodeLocaleGap, "quiz has no resolved title for locale").
		WithQuiz(quiz).WithLocale(locale)
}
