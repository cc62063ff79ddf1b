package outcome

import (
	"fmt"
	"reflect"
)

// Render produces the text form of a payload for diagnostic messages. It is
// never used for control decisions.
func Render(v any) string {
	if IsNil(v) {
		return "<nil>"
	}

	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	default:
		return fmt.Sprintf("%v", v)
	}
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
