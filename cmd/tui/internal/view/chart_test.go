package view_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pocket/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/pocket/internal/chart"
	"github.com/MrJamesThe3rd/pocket/internal/entry"
	"github.com/MrJamesThe3rd/pocket/internal/money"
)

func newStore(t *testing.T, fields ...entry.Fields) *entry.Store {
	t.Helper()

	store := entry.NewStore(entry.SystemClock{})
	for _, f := range fields {
		_, err := store.Add(f)
		require.NoError(t, err)
	}

	return store
}

func newFields(typ entry.Type, desc string, amount int64, date entry.Date) entry.Fields {
	return entry.Fields{
		Type:        typ,
		Description: desc,
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
	}
}

func chartOptions() chart.Options {
	return chart.Options{
		Palette:   chart.DefaultPalette(),
		Width:     20,
		Formatter: money.NewFormatter("₹"),
	}
}

func TestChartModel(t *testing.T) {
	type testCase struct {
		name        string
		fields      []entry.Fields
		msg         view.TimeframeSelectedMsg
		contains    []string
		notContains []string
	}

	jan1 := entry.NewDate(2024, time.January, 1)
	jan2 := entry.NewDate(2024, time.January, 2)

	tests := []testCase{
		{
			name:        "NoEntries",
			msg:         view.TimeframeSelectedMsg{All: true, Label: "All Time"},
			contains:    []string{chart.Placeholder, "All Time"},
			notContains: []string{chart.Title},
		},
		{
			name: "AllTime",
			fields: []entry.Fields{
				newFields(entry.TypeIncome, "Salary", 100, jan2),
				newFields(entry.TypeExpense, "Rent", 40, jan2),
				newFields(entry.TypeIncome, "Gift", 10, jan1),
			},
			msg:      view.TimeframeSelectedMsg{All: true, Label: "All Time"},
			contains: []string{chart.Title, "2024-01-01", "2024-01-02", "₹100", "₹40"},
		},
		{
			name: "FilteredRange",
			fields: []entry.Fields{
				newFields(entry.TypeIncome, "Salary", 100, jan2),
				newFields(entry.TypeIncome, "Gift", 10, jan1),
			},
			msg:         view.TimeframeSelectedMsg{From: jan2, To: jan2, Label: "2024-01-02 to 2024-01-02"},
			contains:    []string{chart.Title, "₹100"},
			notContains: []string{"2024-01-01  "},
		},
		{
			name: "RangeWithoutEntries",
			fields: []entry.Fields{
				newFields(entry.TypeIncome, "Salary", 100, jan2),
			},
			msg:      view.TimeframeSelectedMsg{From: entry.NewDate(2025, time.May, 1), To: entry.NewDate(2025, time.May, 31), Label: "May"},
			contains: []string{chart.Placeholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := view.NewChartModel(newStore(t, tt.fields...), chartOptions())

			updated, cmd := m.Update(tt.msg)
			assert.Nil(t, cmd)

			got := updated.View()
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}

			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestChartModel_EscNavigation(t *testing.T) {
	m := view.NewChartModel(newStore(t), chartOptions())

	updated, _ := m.Update(view.TimeframeSelectedMsg{All: true, Label: "All Time"})
	assert.Equal(t, "Esc: change timeframe", updated.(view.ChartModel).ShortHelp())

	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "Select Timeframe")

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, view.BackMsg{}, cmd())
}
