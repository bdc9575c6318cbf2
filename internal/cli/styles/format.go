package styles

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "N/A"

// grouped prints numbers with English thousands separators.
var grouped = message.NewPrinter(language.English)

// FormatNumber abbreviates large values with T/B/M/K suffixes and keeps four
// significant digits for small positive values.
func FormatNumber(v *float64) string {
	if v == nil {
		return notAvailable
	}
	n := *v
	abs := math.Abs(n)
	switch {
	case abs >= 1e12:
		return formatFraction(n/1e12) + "T"
	case abs >= 1e9:
		return formatFraction(n/1e9) + "B"
	case abs >= 1e6:
		return formatFraction(n/1e6) + "M"
	case abs >= 1e3:
		return formatFraction(n/1e3) + "K"
	case n > 0 && n < 0.01:
		return formatSignificant(n, 4)
	default:
		return formatFraction(n)
	}
}

// FormatPrice renders a price in dollars: four significant digits below one
// cent, otherwise two decimals with thousands separators.
func FormatPrice(v *float64) string {
	if v == nil {
		return notAvailable
	}
	if *v < 0.01 {
		return "$" + formatSignificant(*v, 4)
	}
	return "$" + grouped.Sprintf("%.2f", *v)
}

// FormatPercentage renders a change as "▲ 1.23%" or "▼ -4.56%".
func FormatPercentage(v *float64) string {
	if v == nil {
		return notAvailable
	}
	arrow := "▲"
	if *v < 0 {
		arrow = "▼"
	}
	return arrow + " " + strconv.FormatFloat(*v, 'f', 2, 64) + "%"
}

// FormatInt renders an optional count with thousands separators.
func FormatInt(v *int) string {
	if v == nil {
		return notAvailable
	}
	return grouped.Sprintf("%d", *v)
}

// formatFraction prints at most two decimals, trailing zeros trimmed.
func formatFraction(n float64) string {
	return trimZeros(grouped.Sprintf("%.2f", n))
}

// formatSignificant prints n with at most sig significant digits, never in
// exponent form.
func formatSignificant(n float64, sig int) string {
	if n == 0 {
		return "0"
	}
	decimals := sig - 1 - int(math.Floor(math.Log10(math.Abs(n))))
	if decimals < 0 {
		decimals = 0
	}
	return trimZeros(strconv.FormatFloat(n, 'f', decimals, 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
