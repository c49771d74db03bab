package assert

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/qjpcpu/benchprobe/printer"
	sassert "github.com/stretchr/testify/assert"
)

type myErr struct{}

func (*myErr) Error() string { return "mine" }

func TestShouldBeNilf(t *testing.T) {
	old, oldNoColor := printer.Output, color.NoColor
	buf := new(bytes.Buffer)
	printer.Output, color.NoColor = buf, true
	defer func() { printer.Output, color.NoColor = old, oldNoColor }()

	sassert.NotPanics(t, func() { ShouldBeNilf(nil, "") })
	var typedNil *myErr
	sassert.NotPanics(t, func() { ShouldBeNilf(typedNil, "") })
	sassert.Empty(t, buf.String())

	sassert.PanicsWithValue(t, "[*errors.errorString]x", func() { ShouldBeNilf(errors.New("x"), "open %s", "db") })
	sassert.Contains(t, buf.String(), "[ERROR] open db")

	buf.Reset()
	sassert.Panics(t, func() { ShouldBeNilf(&myErr{}, "") })
	sassert.Empty(t, buf.String())
}

func TestAllowPanic(t *testing.T) {
	sassert.NoError(t, AllowPanic(func() {}))
	sassert.EqualError(t, AllowPanic(func() { panic("boom") }), "boom")
	sassert.EqualError(t, AllowPanic(func() { panic(errors.New("err")) }), "err")
	sassert.EqualError(t, AllowPanic(func() { ShouldBeNilf(errors.New("x"), "") }), "[*errors.errorString]x")
}
