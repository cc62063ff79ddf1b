package outcome

import "iter"

// SuccessIter views the result as a sequence of zero or one success payload
// pointers. Each range over the returned sequence starts fresh, so the view
// is restartable for as long as *r is alive.
func (r *Result[T, E]) SuccessIter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if r.isSuccess {
			yield(&r.value)
		}
	}
}

// FailureIter is the failure-side counterpart of SuccessIter.
func (r *Result[T, E]) FailureIter() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		if !r.isSuccess {
			yield(&r.failure)
		}
	}
}
