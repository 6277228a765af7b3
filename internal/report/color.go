package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// tagPalette is how many distinct display colors the client cycles through.
const tagPalette = 8

// TagColor assigns a tag a stable palette slot from the sum of its code
// points. The same tag always lands on the same color, on every device.
func TagColor(tag string) int {
	sum := 0
	for _, r := range tag {
		sum += int(r)
	}

	return sum % tagPalette
}

var wonPrinter = message.NewPrinter(language.Korean)

// FormatWon renders an amount as a grouped won string, e.g. "12,000원".
func FormatWon(amount int64) string {
	return wonPrinter.Sprintf("%d원", amount)
}
