package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Palette is the categorical color cycle shared by pies, lines and the page
// legend so HTML and SVG agree.
var Palette = []string{"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd", "8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf"}

func paletteHex(i int) string {
	return Palette[i%len(Palette)]
}

var labelPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatValue renders a number with grouped digits and up to two decimals.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return labelPrinter.Sprintf("%d", int64(v))
	}
	return labelPrinter.Sprintf("%.2f", v)
}

// FormatShare renders a 0..1 share as a one-decimal percentage.
func FormatShare(share float64) string {
	return labelPrinter.Sprintf("%.1f%%", share*100)
}
