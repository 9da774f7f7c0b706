// Package aggregate turns entries into a per-day income/expense series for charting.
package aggregate

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pocket/internal/entry"
)

// Bucket holds the summed income and expense of a single calendar day.
type Bucket struct {
	Date    entry.Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Aggregate groups entries by date and sums each type separately.
// Buckets are ordered by ascending date; an empty input yields an empty series.
func Aggregate(entries []entry.Entry) []Bucket {
	buckets := make(map[entry.Date]*Bucket, len(entries))

	for _, e := range entries {
		day := entry.DateOf(e.Date.Time)

		b, ok := buckets[day]
		if !ok {
			b = &Bucket{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[day] = b
		}

		switch e.Type {
		case entry.TypeIncome:
			b.Income = b.Income.Add(e.Amount)
		case entry.TypeExpense:
			b.Expense = b.Expense.Add(e.Amount)
		}
	}

	series := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, *b)
	}

	slices.SortFunc(series, func(a, b Bucket) int {
		return a.Date.Compare(b.Date.Time)
	})

	return series
}

// Between keeps the entries dated within [from, to], both ends inclusive.
func Between(entries []entry.Entry, from, to entry.Date) []entry.Entry {
	var out []entry.Entry

	for _, e := range entries {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}

		out = append(out, e)
	}

	return out
}

// Max returns the largest income or expense value in the series.
func Max(series []Bucket) decimal.Decimal {
	m := decimal.Zero

	for _, b := range series {
		m = decimal.Max(m, b.Income, b.Expense)
	}

	return m
}
