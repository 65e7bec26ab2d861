package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")
	ErrQueueEmpty      = errors.New("queue is empty")

	ErrInvalidState        = errors.New("invalid state")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrValidation          = errors.New("validation failed")
	ErrInactiveResource    = errors.New("resource user is not active")
	ErrNotAssigned         = errors.New("resource is not assigned to incident")
	ErrAlreadyJoined       = errors.New("resource already joined to incident")
	ErrContainerConflict   = errors.New("container resource cannot have a container")
	ErrContainerCapability = errors.New("container resource must be able to contain resources")
)

// FieldError attaches the offending request field to a sentinel so
// handlers can build field-keyed error bodies.
type FieldError struct {
	Field   string
	Message string
	err     error
}

func Fieldf(field string, sentinel error, format string, a ...any) error {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, a...),
		err:     sentinel,
	}
}

func (f *FieldError) Error() string { return f.Message }
func (f *FieldError) Unwrap() error { return f.err }

// FieldOf returns the field name carried by err, or "non_field_error".
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return "non_field_error"
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
