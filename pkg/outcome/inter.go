package outcome

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// GetRef returns a pointer to the success payload
	GetRef() *T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Id identifies this particular result value
	Id() uuid.UUID
}

// WithFailure defines an interface for types that hold either a success or a
// failure payload
type WithFailure[T any] interface {
	ResultProvider[T]
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithFailure[int] = (*Result[int, error])(nil)
