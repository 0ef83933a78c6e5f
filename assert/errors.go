package assert

import (
	"fmt"

	"github.com/qjpcpu/persistent/internal/printer"
)

// Violation is the panic value raised when an ownership rule is broken
type Violation struct {
	Msg string
}

func (v *Violation) Error() string { return v.Msg }

// ShouldBeTrue would panic with a *Violation if condition is false
// msg is either a single value or a format followed by its arguments
func ShouldBeTrue(condition bool, msg ...interface{}) {
	if condition {
		return
	}
	text := formatMsg(msg...)
	if Verbose {
		printer.Trace("%s", text)
	}
	panic(&Violation{Msg: text})
}

// Verbose print the violation before panic
var Verbose bool

// AllowPanic swallow panic
func AllowPanic(fn func()) (isPanicOccur bool) {
	defer func() {
		if r := recover(); r != nil {
			isPanicOccur = true
		}
	}()
	fn()
	return
}

// CatchViolation run fn and return the violation it raised, other panics pass through
func CatchViolation(fn func()) (v *Violation) {
	defer func() {
		if r := recover(); r != nil {
			if vr, ok := r.(*Violation); ok {
				v = vr
				return
			}
			panic(r)
		}
	}()
	fn()
	return
}

func formatMsg(args ...interface{}) string {
	switch len(args) {
	case 0:
		return "should be true"
	case 1:
		return fmt.Sprint(args[0])
	default:
		if format, ok := args[0].(string); ok {
			return fmt.Sprintf(format, args[1:]...)
		}
		return fmt.Sprint(args...)
	}
}
