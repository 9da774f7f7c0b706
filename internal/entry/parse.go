package entry

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawFields is the unparsed form input for an entry.
type RawFields struct {
	Type        string
	Description string
	Amount      string
	Date        string
}

// ParseType accepts "income" or "expense" in any letter case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Reason: "must be income or expense"}
	}

	return t, nil
}

// ParseAmount parses a decimal amount such as "12.50".
// Sign is not checked here; Fields.Validate rejects non-positive amounts.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "is required"}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "is not a number"}
	}

	return d, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, &ValidationError{Field: "date", Reason: "is required"}
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	return DateOf(t), nil
}

// ParseFields parses and validates raw form input.
func ParseFields(raw RawFields) (Fields, error) {
	t, err := ParseType(raw.Type)
	if err != nil {
		return Fields{}, err
	}

	amount, err := ParseAmount(raw.Amount)
	if err != nil {
		return Fields{}, err
	}

	date, err := ParseDate(raw.Date)
	if err != nil {
		return Fields{}, err
	}

	f := Fields{
		Type:        t,
		Description: strings.TrimSpace(raw.Description),
		Amount:      amount,
		Date:        date,
	}

	if err := f.Validate(); err != nil {
		return Fields{}, err
	}

	return f, nil
}

// Raw formats f back into form input, the inverse of ParseFields.
func (f Fields) Raw() RawFields {
	raw := RawFields{
		Type:        string(f.Type),
		Description: f.Description,
		Amount:      f.Amount.String(),
	}

	if !f.Date.IsZero() {
		raw.Date = f.Date.String()
	}

	return raw
}
