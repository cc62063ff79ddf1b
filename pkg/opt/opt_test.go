package opt

import "testing"

func TestSome(t *testing.T) {
	t.Parallel()
	o := Some(5)
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("expected some, got: some=%v, none=%v", o.IsSome(), o.IsNone())
	}
	if v, ok := o.Get(); !ok || v != 5 {
		t.Fatalf("expected (5, true), got (%v, %v)", v, ok)
	}
}

func TestNone(t *testing.T) {
	t.Parallel()
	o := None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("expected none, got: some=%v, none=%v", o.IsSome(), o.IsNone())
	}
	if v, ok := o.Get(); ok || v != 0 {
		t.Fatalf("expected (0, false), got (%v, %v)", v, ok)
	}
}
