// Package util holds small formatting helpers shared by the styling
// callbacks and the popup templates.
package util

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var en = message.NewPrinter(language.English)

// AbbreviateCount formats a cluster's member count the way clustering
// indexes abbreviate it for marker labels: 982 stays "982", 1234 becomes
// "1.2k", 12345 becomes "12k".
func AbbreviateCount(n int) string {
	switch {
	case n >= 10000:
		return strconv.Itoa(n/1000) + "k"
	case n >= 1000:
		return strconv.FormatFloat(math.Round(float64(n)/100)/10, 'f', -1, 64) + "k"
	default:
		return strconv.Itoa(n)
	}
}

// Amount formats a number with en-US digit grouping and two decimals,
// e.g. 5000000 -> "5,000,000.00".
func Amount(v float64) string {
	return en.Sprintf("%.2f", v)
}
