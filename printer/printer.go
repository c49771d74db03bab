package printer

import (
	sysfmt "fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/qjpcpu/qjson"
)

var (
	Green   = color.New(color.FgGreen, color.Bold).SprintFunc()
	Cyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
	Magenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	Yellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	Red     = color.New(color.FgRed, color.Bold).SprintFunc()
	Blue    = color.New(color.FgBlue, color.Bold).SprintFunc()

	argColors = []func(a ...interface{}) string{Cyan, Green, Magenta, Yellow, Blue}
)

// Output of all printers, color.Output handle windows console
var Output io.Writer = color.Output

// Printer print format with args
type Printer func(format string, args ...interface{})

// PrependTime prefix every line with clock time
func (p Printer) PrependTime() Printer {
	return func(format string, args ...interface{}) {
		p(time.Now().Format("15:04:05")+" "+format, args...)
	}
}

// PrependTag prefix every line with tag painted by paint
func (p Printer) PrependTag(tag string, paint func(a ...interface{}) string) Printer {
	return func(format string, args ...interface{}) {
		p(paint(tag)+" "+format, args...)
	}
}

var (
	// Print args colored one by one
	Print = Printer(rawPrint)
	// Plain without color
	Plain = Printer(plainPrint)
	// Info timestamped
	Info = Printer(rawPrint).PrependTime()
	// Warn timestamped yellow tag
	Warn = Printer(rawPrint).PrependTime().PrependTag("[WARN]", Yellow)
	// Error timestamped red tag
	Error = Printer(rawPrint).PrependTime().PrependTag("[ERROR]", Red)
)

func rawPrint(format string, args ...interface{}) {
	colored := make([]interface{}, len(args))
	copy(colored, args)
	format = rewriteFormat(format, func(idx int, token string) {
		if idx >= len(args) {
			return
		}
		s := sysfmt.Sprintf(token, args[idx])
		if _, ok := args[idx].(error); ok {
			colored[idx] = Red(s)
		} else {
			colored[idx] = argColors[idx%len(argColors)](s)
		}
	})
	plainPrint(format, colored...)
}

func plainPrint(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	if len(args) == 0 {
		sysfmt.Fprint(Output, format)
		return
	}
	sysfmt.Fprintf(Output, format, args...)
}

// rewriteFormat replace every verb with %s, cb receive the original verb so the
// argument can be formatted before coloring
func rewriteFormat(format string, cb func(int, string)) string {
	var out strings.Builder
	var idx int
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			out.WriteRune(runes[i])
			continue
		}
		/* keep %% */
		if i+1 < len(runes) && runes[i+1] == '%' {
			out.WriteString("%%")
			i++
			continue
		}
		j := i + 1
		for ; j < len(runes); j++ {
			if (runes[j] >= 'a' && runes[j] <= 'z') || (runes[j] >= 'A' && runes[j] <= 'Z') {
				break
			}
		}
		if j == len(runes) {
			/* dangling verb, keep as is */
			out.WriteString(string(runes[i:]))
			break
		}
		cb(idx, string(runes[i:j+1]))
		idx++
		out.WriteString("%s")
		i = j
	}
	return out.String()
}

// PrintObject pretty json with color
func PrintObject(v interface{}) {
	sysfmt.Fprintln(Output, string(qjson.PrettyMarshalWithIndent(v)))
}
