package assert

import (
	"fmt"
	"reflect"

	"github.com/qjpcpu/benchprobe/printer"
)

// ShouldBeNilf would panic if err is not nil, format is printed before panic
func ShouldBeNilf(err error, format string, args ...interface{}) {
	if err == nil {
		return
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Ptr || !v.IsNil() {
		if format != "" {
			printer.Error(format, args...)
		}
		panic(fmt.Sprintf("[%v]%v", v.Type(), err))
	}
}

// AllowPanic swallow panic and report it as error
func AllowPanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	fn()
	return
}
