// Package chart renders an income/expense series as a horizontal bar chart.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pocket/internal/aggregate"
	"github.com/MrJamesThe3rd/pocket/internal/money"
)

const (
	Title       = "Income vs Expense Chart"
	Placeholder = "No data available to display."

	barCell      = "█"
	defaultWidth = 40
)

type Options struct {
	Palette   Palette
	Width     int
	Formatter money.Formatter
}

// Render draws one income bar and one expense bar per bucket, side by side,
// scaled against the largest value in the series.
func Render(series []aggregate.Bucket, opts Options) string {
	if len(series) == 0 {
		return lipgloss.NewStyle().Faint(true).Render(Placeholder)
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	incomeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Palette.Income))
	expenseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Palette.Expense))
	peak := aggregate.Max(series)

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(Title))
	sb.WriteString("\n\n")

	for _, b := range series {
		date := b.Date.String()
		blank := strings.Repeat(" ", len(date))

		sb.WriteString(row(date, "Income ", bar(b.Income, peak, width, incomeStyle), opts.Formatter.Format(b.Income)))
		sb.WriteString(row(blank, "Expense", bar(b.Expense, peak, width, expenseStyle), opts.Formatter.Format(b.Expense)))
	}

	sb.WriteString("\n")
	sb.WriteString(incomeStyle.Render("■") + " Income  " + expenseStyle.Render("■") + " Expense")

	return sb.String()
}

func row(date, label, bar, amount string) string {
	return fmt.Sprintf("%s  %s %s  %s\n", date, label, bar, amount)
}

// bar returns a styled run of cells padded to width. Non-zero values get at least one cell.
func bar(v, peak decimal.Decimal, width int, style lipgloss.Style) string {
	n := cells(v, peak, width)

	return style.Render(strings.Repeat(barCell, n)) + strings.Repeat(" ", width-n)
}

func cells(v, peak decimal.Decimal, width int) int {
	if !v.IsPositive() || !peak.IsPositive() {
		return 0
	}

	n := int(v.Mul(decimal.NewFromInt(int64(width))).Div(peak).Round(0).IntPart())

	return min(max(n, 1), width)
}
