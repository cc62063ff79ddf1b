package outcome

// Chain composes two fallible steps. On success the payload is handed to op
// and op's result returned as-is; on failure op is never invoked and the
// failure payload moves through. op runs at most once.
func Chain[T, U, E any](r Result[T, E], op func(T) Result[U, E]) Result[U, E] {
	if r.isSuccess {
		return op(r.value)
	}
	return Failure[U, E](r.failure)
}

// ChainFailure is the recovery form: op runs only on failure and may replace
// the failure payload type, while a success passes through untouched.
func ChainFailure[T, E, F any](r Result[T, E], op func(E) Result[T, F]) Result[T, F] {
	if r.isSuccess {
		return Success[T, F](r.value)
	}
	return op(r.failure)
}
