package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocket/internal/entry"
)

func TestDescriptionSuggestions(t *testing.T) {
	entries := []entry.Entry{
		{ID: 1, Description: "Salary"},
		{ID: 2, Description: "Rent"},
		{ID: 3, Description: "Salary"},
		{ID: 4, Description: "Groceries"},
	}

	assert.Equal(t, []string{"Groceries", "Salary", "Rent"}, descriptionSuggestions(entries))
	assert.Empty(t, descriptionSuggestions(nil))
}

func TestFormValuesFrom(t *testing.T) {
	e := entry.Entry{
		ID:          7,
		Type:        entry.TypeExpense,
		Description: "Rent",
		Amount:      decimal.RequireFromString("400.50"),
		Date:        entry.NewDate(2024, time.March, 5),
	}

	v := formValuesFrom(e)

	assert.Equal(t, "Rent", v.Description)
	assert.Equal(t, "400.5", v.Amount)
	assert.Equal(t, "expense", v.Type)
	assert.Equal(t, "2024-03-05", v.Date)

	fields, err := entry.ParseFields(v.raw())
	require.NoError(t, err)
	assert.Equal(t, e.Fields().Type, fields.Type)
	assert.True(t, e.Amount.Equal(fields.Amount))
	assert.True(t, e.Date.Equal(fields.Date.Time))
}

func TestNewFormValues_DefaultsToIncome(t *testing.T) {
	assert.Equal(t, string(entry.TypeIncome), newFormValues().Type)
}

func TestFormValidators(t *testing.T) {
	type testCase struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}

	tests := []testCase{
		{name: "DescriptionOK", fn: validateDescription, input: "Salary"},
		{name: "DescriptionBlank", fn: validateDescription, input: "   ", wantErr: true},
		{name: "AmountOK", fn: validateAmount, input: "12.50"},
		{name: "AmountZero", fn: validateAmount, input: "0", wantErr: true},
		{name: "AmountNegative", fn: validateAmount, input: "-3", wantErr: true},
		{name: "AmountNotNumber", fn: validateAmount, input: "abc", wantErr: true},
		{name: "AmountEmpty", fn: validateAmount, input: "", wantErr: true},
		{name: "DateOK", fn: validateDate, input: "2024-01-02"},
		{name: "DateBad", fn: validateDate, input: "02/01/2024", wantErr: true},
		{name: "DateEmpty", fn: validateDate, input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
