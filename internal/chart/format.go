package chart

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCount renders n with thousands separators, e.g. 12,345.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatSigned is FormatCount with an explicit "+" for positive values.
func FormatSigned(n int) string {
	if n > 0 {
		return "+" + FormatCount(n)
	}
	return FormatCount(n)
}

const (
	layoutTooltipDay   = "Jan 02, 2006"
	layoutTooltipMonth = "January 2006"
	layoutAxisDay      = "Jan 2"
	layoutAxisMonth    = "Jan 06"
)

func isQuarterStart(t time.Time) bool {
	return (t.Month()-1)%3 == 0
}
