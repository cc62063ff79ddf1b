package outcome

import "github.com/ib-77/outcome/pkg/opt"

// Unit is the payload of results that carry no value, only pass/fail.
type Unit struct{}

// MapOpt applies op to the wrapped value, if any. An absent input succeeds
// with an absent output and op is never invoked.
func MapOpt[T, V, E any](o opt.Option[T], op func(T) Result[V, E]) Result[opt.Option[V], E] {
	t, ok := o.Get()
	if !ok {
		return Success[opt.Option[V], E](opt.None[V]())
	}

	r := op(t)
	if r.isSuccess {
		return Success[opt.Option[V], E](opt.Some(r.value))
	}
	return Failure[opt.Option[V], E](r.failure)
}

// MapSlice applies op to each element in order, collecting the outputs. The
// first failure is returned immediately; remaining elements are not visited
// and the partial output is dropped.
func MapSlice[T, V, E any](ts []T, op func(T) Result[V, E]) Result[[]V, E] {
	vs := make([]V, 0, len(ts))
	for _, t := range ts {
		r := op(t)
		if !r.isSuccess {
			return Failure[[]V, E](r.failure)
		}
		vs = append(vs, r.value)
	}
	return Success[[]V, E](vs)
}

// MapSlice2 applies op pairwise over two slices of equal length, fail-fast as
// in MapSlice. Unequal lengths are caller misuse, not a modeled failure:
// paired traversal is used in careful code where the caller already
// guarantees alignment.
func MapSlice2[S, T, V, E any](ss []S, ts []T, op func(S, T) Result[V, E]) Result[[]V, E] {
	if len(ss) != len(ts) {
		violate("called MapSlice2() with mismatched lengths: %d != %d", len(ss), len(ts))
	}

	vs := make([]V, 0, len(ts))
	for i := range ts {
		r := op(ss[i], ts[i])
		if !r.isSuccess {
			return Failure[[]V, E](r.failure)
		}
		vs = append(vs, r.value)
	}
	return Success[[]V, E](vs)
}

// ForEachSlice2 is MapSlice2 without the output slice, for steps where only
// the side effect and the pass/fail outcome matter.
func ForEachSlice2[S, T, E any](ss []S, ts []T, op func(S, T) Result[Unit, E]) Result[Unit, E] {
	if len(ss) != len(ts) {
		violate("called ForEachSlice2() with mismatched lengths: %d != %d", len(ss), len(ts))
	}

	for i := range ts {
		if r := op(ss[i], ts[i]); !r.isSuccess {
			return Failure[Unit, E](r.failure)
		}
	}
	return Success[Unit, E](Unit{})
}
