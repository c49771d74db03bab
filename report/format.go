package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numPrinter = message.NewPrinter(language.English)

// groupInt like 10,000
func groupInt(n int) string {
	return numPrinter.Sprintf("%d", n)
}

// groupFloat like 1,234.57
func groupFloat(f float64, prec int) string {
	return numPrinter.Sprintf(fmt.Sprintf("%%.%df", prec), f)
}
