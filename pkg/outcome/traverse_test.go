package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/outcome/pkg/opt"
)

func incBelow(limit int) func(int) Result[int, string] {
	return func(n int) Result[int, string] {
		if n >= limit {
			return Failure[int]("overflow")
		}
		return Success[int, string](n + 1)
	}
}

func TestMapOpt_None(t *testing.T) {
	t.Parallel()
	calls := 0
	r := MapOpt(opt.None[int](), func(n int) Result[int, string] {
		calls++
		return Success[int, string](n)
	})

	assert.True(t, r.IsSuccess())
	assert.True(t, r.Unwrap().IsNone())
	assert.Zero(t, calls, "op must not run on an absent input")
}

func TestMapOpt_Some(t *testing.T) {
	t.Parallel()
	r := MapOpt(opt.Some(4), incBelow(10))
	v, ok := r.Unwrap().Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	bad := MapOpt(opt.Some(10), incBelow(10))
	assert.Equal(t, "overflow", bad.UnwrapFailure())
}

func TestMapSlice_Empty(t *testing.T) {
	t.Parallel()
	r := MapSlice(nil, incBelow(0))
	assert.True(t, r.IsSuccess())
	assert.Empty(t, r.Unwrap())
}

func TestMapSlice_CollectsInOrder(t *testing.T) {
	t.Parallel()
	r := MapSlice([]int{1, 2, 3}, incBelow(10))
	assert.Equal(t, []int{2, 3, 4}, r.Unwrap())
}

func TestMapSlice_FailFast(t *testing.T) {
	t.Parallel()
	calls := 0
	r := MapSlice([]int{1, 2, 3}, func(n int) Result[int, string] {
		calls++
		if n == 2 {
			return Failure[int]("bad")
		}
		return Success[int, string](n)
	})

	assert.Equal(t, "bad", r.UnwrapFailure())
	assert.Equal(t, 2, calls, "traversal must stop at the first failure")
}

func TestMapSlice2_Pairwise(t *testing.T) {
	t.Parallel()
	r := MapSlice2([]int{1, 2}, []int{10, 20}, func(a, b int) Result[int, string] {
		return Success[int, string](a + b)
	})
	assert.Equal(t, []int{11, 22}, r.Unwrap())
}

func TestMapSlice2_FailFast(t *testing.T) {
	t.Parallel()
	calls := 0
	r := MapSlice2([]string{"a", "b", "c"}, []int{1, 2, 3}, func(s string, n int) Result[string, string] {
		calls++
		if n == 2 {
			return Failure[string]("stop")
		}
		return Success[string, string](s)
	})
	assert.Equal(t, "stop", r.UnwrapFailure())
	assert.Equal(t, 2, calls)
}

func TestMapSlice2_MismatchedLengths(t *testing.T) {
	t.Parallel()
	msg := violationMsg(t, func() {
		MapSlice2([]int{1}, []int{1, 2}, func(a, b int) Result[int, string] {
			return Success[int, string](a + b)
		})
	})
	assert.Equal(t, "called MapSlice2() with mismatched lengths: 1 != 2", msg)
}

func TestForEachSlice2(t *testing.T) {
	t.Parallel()
	var seen []int
	r := ForEachSlice2([]int{1, 2}, []int{3, 4}, func(a, b int) Result[Unit, string] {
		seen = append(seen, a*b)
		return Success[Unit, string](Unit{})
	})

	assert.True(t, r.IsSuccess())
	assert.Equal(t, []int{3, 8}, seen)
}

func TestForEachSlice2_FailFast(t *testing.T) {
	t.Parallel()
	calls := 0
	r := ForEachSlice2([]int{1, 2, 3}, []int{1, 2, 3}, func(a, b int) Result[Unit, string] {
		calls++
		if a == 2 {
			return Failure[Unit]("halt")
		}
		return Success[Unit, string](Unit{})
	})

	assert.Equal(t, "halt", r.UnwrapFailure())
	assert.Equal(t, 2, calls)
}

func TestForEachSlice2_MismatchedLengths(t *testing.T) {
	t.Parallel()
	msg := violationMsg(t, func() {
		ForEachSlice2([]int{1, 2}, []int{1}, func(a, b int) Result[Unit, string] {
			return Success[Unit, string](Unit{})
		})
	})
	assert.Equal(t, "called ForEachSlice2() with mismatched lengths: 2 != 1", msg)
}
