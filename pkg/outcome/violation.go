package outcome

import "fmt"

// Violation marks caller misuse: extracting the wrong variant or breaking a
// precondition of the paired-slice helpers. It is distinct from the modeled
// failure a Result carries and is raised as a panic so it cannot be mistaken
// for an ordinary return value.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return v.Msg
}

func violate(format string, args ...any) {
	panic(&Violation{Msg: fmt.Sprintf(format, args...)})
}

// Catch runs f, converting a Violation raised inside it into an ordinary
// error. Any other panic is re-raised. It is meant for top-level boundaries
// that embed this library and own their own error handling.
func Catch[T any](f func() T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(*Violation); ok {
				err = v
				return
			}
			panic(r)
		}
	}()
	out = f()
	return out, nil
}
