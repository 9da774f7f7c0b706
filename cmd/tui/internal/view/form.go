package view

import (
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/pocket/internal/entry"
)

// formValues holds the form bindings. It lives behind a pointer so the
// bindings survive the model being copied between updates.
type formValues struct {
	Description string
	Amount      string
	Type        string
	Date        string
}

func newFormValues() *formValues {
	return &formValues{Type: string(entry.TypeIncome)}
}

func formValuesFrom(e entry.Entry) *formValues {
	raw := e.Fields().Raw()

	return &formValues{
		Description: raw.Description,
		Amount:      raw.Amount,
		Type:        raw.Type,
		Date:        raw.Date,
	}
}

func (v *formValues) raw() entry.RawFields {
	return entry.RawFields{
		Type:        v.Type,
		Description: v.Description,
		Amount:      v.Amount,
		Date:        v.Date,
	}
}

func buildEntryForm(v *formValues, suggestions []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Suggestions(suggestions).
				Value(&v.Description).
				Validate(validateDescription),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&v.Amount).
				Validate(validateAmount),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption(entry.TypeIncome.Label(), string(entry.TypeIncome)),
					huh.NewOption(entry.TypeExpense.Label(), string(entry.TypeExpense)),
				).
				Value(&v.Type),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&v.Date).
				Validate(validateDate),
		),
	).WithWidth(45).WithShowHelp(false)
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("description cannot be empty")
	}

	return nil
}

func validateAmount(s string) error {
	d, err := entry.ParseAmount(s)
	if err != nil {
		return err
	}

	if !d.IsPositive() {
		return errors.New("amount must be positive")
	}

	return nil
}

func validateDate(s string) error {
	_, err := entry.ParseDate(s)
	return err
}

// descriptionSuggestions lists distinct descriptions, most recently added first.
func descriptionSuggestions(entries []entry.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))

	for _, e := range slices.Backward(entries) {
		if _, ok := seen[e.Description]; ok {
			continue
		}

		seen[e.Description] = struct{}{}
		out = append(out, e.Description)
	}

	return out
}
