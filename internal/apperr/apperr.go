// Package apperr standardizes failure semantics across the delta pipelines
// and the listing engine. Handlers translate codes to HTTP statuses; callers
// branch on CodeOf rather than string matching.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeNotFound    Code = "not_found"
	CodeConflict    Code = "conflict"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal"
)

// Error is the canonical error wrapper.
type Error struct {
	Code    Code
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s: %s", op, e.Code, msg)
	case op != "":
		return fmt.Sprintf("%s: %s", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s: %s", e.Code, msg)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, op, message string, cause error) *Error {
	return &Error{Code: code, Op: op, Message: message, Cause: cause}
}

func BadRequest(op, message string) *Error {
	return New(CodeBadRequest, op, message, nil)
}

func NotFound(op, message string) *Error {
	return New(CodeNotFound, op, message, nil)
}

func Conflict(op, message string) *Error {
	return New(CodeConflict, op, message, nil)
}

func Unavailable(op, message string, cause error) *Error {
	return New(CodeUnavailable, op, message, cause)
}

// CodeOf extracts the canonical code, defaulting to internal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Map classifies infrastructure failures into the taxonomy. Storage and
// transport faults are retryable by the caller and map to unavailable.
func Map(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(CodeNotFound, op, "record not found", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return New(CodeUnavailable, op, "request interrupted", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return New(CodeConflict, op, "duplicate key", err) // unique_violation
		case "40001", "40P01", "55P03":
			return New(CodeUnavailable, op, "transient storage failure", err)
		}
		return New(CodeUnavailable, op, "storage failure", err)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "deadlock"),
		strings.Contains(msg, "serialization"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "connection"),
		strings.Contains(msg, "temporar"):
		return New(CodeUnavailable, op, "transient failure", err)
	default:
		return New(CodeInternal, op, "", err)
	}
}
