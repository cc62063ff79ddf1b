// Package either defines a minimal two-case disjoint union. By convention the
// left case carries a failure and the right case a success, but the type
// itself attaches no meaning to either side.
package either

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left payload and whether it is the populated case.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right payload and whether it is the populated case.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Fold collapses the union by applying exactly one of the two handlers.
func Fold[L, R, O any](e Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
