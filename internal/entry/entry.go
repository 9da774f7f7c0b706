package entry

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type represents the type of entry (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Label returns the capitalized name shown to users.
func (t Type) Label() string {
	switch t {
	case TypeIncome:
		return "Income"
	case TypeExpense:
		return "Expense"
	}

	return "Unknown"
}

// Valid reports whether t is one of the known entry types.
func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense:
		return true
	}

	return false
}

// Date is a calendar date without a time component, always held at UTC midnight.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d is a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Entry represents a single income or expense record.
type Entry struct {
	ID          int64
	Type        Type
	Description string
	Amount      decimal.Decimal
	Date        Date
}

// Fields holds the mutable part of an entry.
type Fields struct {
	Type        Type            `validate:"entrytype"`
	Description string          `validate:"nonblank"`
	Amount      decimal.Decimal `validate:"gt=0"`
	Date        Date            `validate:"required"`
}

// Fields returns the mutable part of e.
func (e Entry) Fields() Fields {
	return Fields{
		Type:        e.Type,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
	}
}

// Summary holds the running totals over a collection of entries.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Summarize computes income and expense totals and their difference.
func Summarize(entries []Entry) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, e := range entries {
		switch e.Type {
		case TypeIncome:
			income = income.Add(e.Amount)
		case TypeExpense:
			expense = expense.Add(e.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}
