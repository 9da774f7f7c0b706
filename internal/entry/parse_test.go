package entry_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocket/internal/entry"
)

func TestParseFields(t *testing.T) {
	type args struct {
		raw entry.RawFields
	}

	type testCase struct {
		name      string
		args      args
		want      entry.Fields
		wantField string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Income",
			args: args{raw: entry.RawFields{Type: "Income", Description: " Salary ", Amount: "1500.50", Date: "2024-01-02"}},
			want: entry.Fields{
				Type:        entry.TypeIncome,
				Description: "Salary",
				Amount:      decimal.RequireFromString("1500.50"),
				Date:        entry.NewDate(2024, time.January, 2),
			},
		},
		{
			name: "ExpenseLowercase",
			args: args{raw: entry.RawFields{Type: "expense", Description: "Coffee", Amount: " 3 ", Date: "2024-12-31"}},
			want: entry.Fields{
				Type:        entry.TypeExpense,
				Description: "Coffee",
				Amount:      decimal.RequireFromString("3"),
				Date:        entry.NewDate(2024, time.December, 31),
			},
		},
		{
			name:      "UnknownType",
			args:      args{raw: entry.RawFields{Type: "Transfer", Description: "x", Amount: "1", Date: "2024-01-01"}},
			wantField: "type",
			wantErr:   true,
		},
		{
			name:      "AmountNotNumber",
			args:      args{raw: entry.RawFields{Type: "income", Description: "x", Amount: "ten", Date: "2024-01-01"}},
			wantField: "amount",
			wantErr:   true,
		},
		{
			name:      "AmountMissing",
			args:      args{raw: entry.RawFields{Type: "income", Description: "x", Amount: "", Date: "2024-01-01"}},
			wantField: "amount",
			wantErr:   true,
		},
		{
			name:      "AmountZero",
			args:      args{raw: entry.RawFields{Type: "income", Description: "x", Amount: "0", Date: "2024-01-01"}},
			wantField: "amount",
			wantErr:   true,
		},
		{
			name:      "DateMissing",
			args:      args{raw: entry.RawFields{Type: "income", Description: "x", Amount: "1", Date: ""}},
			wantField: "date",
			wantErr:   true,
		},
		{
			name:      "DateUnparsable",
			args:      args{raw: entry.RawFields{Type: "income", Description: "x", Amount: "1", Date: "02/01/2024"}},
			wantField: "date",
			wantErr:   true,
		},
		{
			name:      "DescriptionMissing",
			args:      args{raw: entry.RawFields{Type: "income", Description: "  ", Amount: "1", Date: "2024-01-01"}},
			wantField: "description",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.ParseFields(tt.args.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entry.ErrValidation)

				var vErr *entry.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Type, got.Type)
			assert.Equal(t, tt.want.Description, got.Description)
			assert.True(t, tt.want.Amount.Equal(got.Amount), "amount %s", got.Amount)
			assert.Equal(t, tt.want.Date, got.Date)
		})
	}
}

func TestFields_Raw(t *testing.T) {
	f := entry.Fields{
		Type:        entry.TypeExpense,
		Description: "Rent",
		Amount:      decimal.RequireFromString("750.25"),
		Date:        entry.NewDate(2024, time.June, 1),
	}

	raw := f.Raw()
	assert.Equal(t, entry.RawFields{Type: "expense", Description: "Rent", Amount: "750.25", Date: "2024-06-01"}, raw)

	back, err := entry.ParseFields(raw)
	require.NoError(t, err)
	assert.Equal(t, f.Date, back.Date)
	assert.True(t, f.Amount.Equal(back.Amount))

	assert.Empty(t, entry.Fields{}.Raw().Date)
}

func TestType_Label(t *testing.T) {
	assert.Equal(t, "Income", entry.TypeIncome.Label())
	assert.Equal(t, "Expense", entry.TypeExpense.Label())
	assert.False(t, entry.Type("other").Valid())
}
