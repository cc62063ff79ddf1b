package outcome

// Map applies op to the success payload and wraps the result; a failure
// passes through untouched. This is the default, value-consuming form.
func Map[T, U, E any](r Result[T, E], op func(T) U) Result[U, E] {
	if r.isSuccess {
		return Success[U, E](op(r.value))
	}
	return Failure[U, E](r.failure)
}

// MapFailure applies op to the failure payload; a success passes through.
func MapFailure[T, E, F any](r Result[T, E], op func(E) F) Result[T, F] {
	if r.isSuccess {
		return Success[T, F](r.value)
	}
	return Failure[T, F](op(r.failure))
}

// MapRef is the reference form of Map for callers that must keep the
// original result around (log it, re-derive from it). op receives a pointer
// into *r; the failure side is copied into the output by assignment.
func MapRef[T, U, E any](r *Result[T, E], op func(*T) U) Result[U, E] {
	if r.isSuccess {
		return Success[U, E](op(&r.value))
	}
	return Failure[U, E](r.failure)
}

// MapFailureRef is the reference form of MapFailure.
func MapFailureRef[T, E, F any](r *Result[T, E], op func(*E) F) Result[T, F] {
	if r.isSuccess {
		return Success[T, F](r.value)
	}
	return Failure[T, F](op(&r.failure))
}
