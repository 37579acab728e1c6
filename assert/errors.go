package assert

import (
	"fmt"
	"reflect"

	fmt2 "github.com/qjpcpu/container.v2/fmt"
)

// Verbose prints every violated precondition before panicking
var Verbose bool

// PreconditionError is the panic value of a broken caller contract
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Reason
}

// Require would panic with *PreconditionError if cond is false
func Require(cond bool, op, reason string) {
	if cond {
		return
	}
	err := &PreconditionError{Op: op, Reason: reason}
	if Verbose {
		fmt2.PrintWithFile("precondition violated %s: %s", op, reason)
	}
	panic(err)
}

// ShouldBeNil would panic if err is not nil
func ShouldBeNil(err error, msgAndArgs ...interface{}) {
	if err == nil {
		return
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Ptr || !v.IsNil() {
		printMsgArgs(msgAndArgs...)
		panic(fmt.Sprintf("[%v]%v", v.Type(), err))
	}
}

// ShouldBeTrue would panic if codition is false
func ShouldBeTrue(condition bool, msg ...interface{}) {
	if !condition {
		printMsgArgs(msg...)
		panic("should be true")
	}
}

// ShouldEqual would panic if not equal
func ShouldEqual(a, b interface{}, msg ...interface{}) {
	if !reflect.DeepEqual(a, b) {
		printMsgArgs(msg...)
		fmt2.PrintJSON("%v != %v", a, b)
		panic(fmt.Sprintf("%v != %v", a, b))
	}
}

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

// Recover run fn and return the precondition it broke, other panics propagate
func Recover(fn func()) (violated *PreconditionError) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(*PreconditionError)
			if !ok {
				panic(r)
			}
			violated = err
		}
	}()
	fn()
	return
}

func printMsgArgs(args ...interface{}) {
	switch len(args) {
	case 0:
	case 1:
		fmt2.PrintWithFile("%+v", args[0])
	default:
		fmt2.PrintWithFile(args[0].(string), args[1:]...)
	}
}
