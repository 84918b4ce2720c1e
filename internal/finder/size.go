package finder

import (
	"math"

	"github.com/dustin/go-humanize"
)

const (
	kibibyte = 1 << 10
	mebibyte = 1 << 20
	gibibyte = 1 << 30
)

// HumanSize formats a byte count with two decimals and the largest binary
// unit it reaches: "1.50KB", "5.00MB", "1.00GB". Counts below 1KB are printed
// as a grouped integer, e.g. "1,000 bytes".
func HumanSize(size int64) string {
	switch {
	case size >= gibibyte:
		return twoDecimals(float64(size)/gibibyte) + "GB"
	case size >= mebibyte:
		return twoDecimals(float64(size)/mebibyte) + "MB"
	case size >= kibibyte:
		return twoDecimals(float64(size)/kibibyte) + "KB"
	default:
		return humanize.Comma(size) + " bytes"
	}
}

// twoDecimals formats v with grouped thousands and two decimals, rounding
// halves away from zero (1.125 -> "1.13").
func twoDecimals(v float64) string {
	return humanize.FormatFloat("#,###.##", math.Round(v*100)/100)
}
