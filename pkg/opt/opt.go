// Package opt provides a small optional-value container used by the
// traversal helpers in pkg/outcome.
package opt

type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}
