package ui

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// FormatSalary groups thousands and keeps at most two decimals, dropping
// them for whole amounts.
func FormatSalary(salary float64) string {
	if salary == math.Trunc(salary) && math.Abs(salary) < 1e15 {
		return humanize.Comma(int64(salary))
	}
	return humanize.CommafWithDigits(salary, 2)
}

// FormatAmount appends the currency label to a formatted salary.
func FormatAmount(salary float64, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return FormatSalary(salary)
	}
	return FormatSalary(salary) + " " + currency
}

// ColorizeSalary tints the amount by tier. Thresholds are monthly figures
// in the service's default currency.
func ColorizeSalary(text string, salary float64) string {
	switch {
	case salary >= 100000:
		return pterm.Green(text)
	case salary >= 40000:
		return pterm.LightGreen(text)
	case salary >= 15000:
		return pterm.Yellow(text)
	default:
		return pterm.LightRed(text)
	}
}
