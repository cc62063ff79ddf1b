package outcome

import "github.com/ib-77/outcome/pkg/either"

// ToEither converts to the two-case union collaborator: a success payload
// becomes the right case, a failure payload the left case.
func (r Result[T, E]) ToEither() either.Either[E, T] {
	if r.isSuccess {
		return either.Right[E](r.value)
	}
	return either.Left[E, T](r.failure)
}
