package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success payload T or a failure payload E.
// Failure payloads are rendered to text when a misuse message is built, so a
// descriptive E (an error, a Stringer, or a small struct) works best.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure:   e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple bridges the conventional (value, error) return shape.
func FromTuple[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// IsSuccess returns true if the result holds the success payload
func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true if the result holds the failure payload
func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// GetRef returns a pointer to the success payload. Calling it on a Failure is
// caller misuse and raises a Violation.
func (r *Result[T, E]) GetRef() *T {
	if !r.isSuccess {
		violate("called GetRef() on a Failure value: %s", Render(r.failure))
	}
	return &r.value
}

// Unwrap returns the success payload. Calling it on a Failure is caller
// misuse and raises a Violation carrying the rendered failure payload.
func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		violate("called Unwrap() on a Failure value: %s", Render(r.failure))
	}
	return r.value
}

// UnwrapFailure returns the failure payload, raising a Violation on Success.
func (r Result[T, E]) UnwrapFailure() E {
	return r.ExpectFailure("called UnwrapFailure() on a Success value")
}

// Expect is Unwrap with a caller-supplied violation message. The failure
// payload is not rendered; reason is used verbatim.
func (r Result[T, E]) Expect(reason string) T {
	if !r.isSuccess {
		violate("%s", reason)
	}
	return r.value
}

// ExpectFailure is the symmetric form of Expect for the failure payload.
func (r Result[T, E]) ExpectFailure(reason string) E {
	if r.isSuccess {
		violate("%s", reason)
	}
	return r.failure
}
