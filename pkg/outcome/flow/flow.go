package flow

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result to enable fluent chaining
type Chain[T, E any] struct {
	res outcome.Result[T, E]
}

// Start creates a new chain from an outcome.Result
func Start[T, E any](r outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(outcome.Success[T, E](v))
}

// Result returns the underlying outcome.Result
func (c Chain[T, E]) Result() outcome.Result[T, E] {
	return c.res
}

// Then composes functions that already return outcome.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(T) outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: outcome.Chain(c.res, onSuccess)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	return Chain[T, E]{res: outcome.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.UnwrapFailure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(*c.res.GetRef())
	}
	return c
}

// While keeps applying step as long as the carried result is a success and
// cond holds for its payload.
func (c Chain[T, E]) While(step func(T) outcome.Result[T, E], cond func(T) bool) Chain[T, E] {
	for c.res.IsSuccess() && cond(*c.res.GetRef()) {
		c = c.Then(step)
	}
	return c
}

// Then chains a function that switches the payload type
func Then[T, U, E any](c Chain[T, E], onSuccess func(T) outcome.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: outcome.Chain(c.res, onSuccess)}
}

// Map chains a pure transformation function
func Map[T, U, E any](c Chain[T, E], onSuccess func(T) U) Chain[U, E] {
	return Chain[U, E]{res: outcome.Map(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T, error], try func(T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: outcome.Chain(c.res, func(t T) outcome.Result[U, error] {
		return outcome.FromTuple(try(t))
	})}
}

// Finally collapses the chain to a final value via the matching handler
func Finally[T, U, E any](c Chain[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	if c.res.IsSuccess() {
		return onSuccess(*c.res.GetRef())
	}
	return onFailure(c.res.UnwrapFailure())
}
