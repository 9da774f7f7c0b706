package view

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocket/internal/aggregate"
	"github.com/MrJamesThe3rd/pocket/internal/chart"
	"github.com/MrJamesThe3rd/pocket/internal/entry"
)

type chartState int

const (
	chartStateTimeframe chartState = iota
	chartStateResult
)

// ChartModel lets the user pick a timeframe and shows income vs expense per day.
type ChartModel struct {
	store *entry.Store
	opts  chart.Options

	state           chartState
	timeframePicker TimeframePicker

	label    string
	rendered string
}

func NewChartModel(store *entry.Store, opts chart.Options) ChartModel {
	return ChartModel{
		store:           store,
		opts:            opts,
		state:           chartStateTimeframe,
		timeframePicker: NewTimeframePicker(TimeframeAll),
	}
}

func (m ChartModel) Title() string { return "Income vs Expense" }

func (m ChartModel) ShortHelp() string {
	if m.state == chartStateResult {
		return "Esc: change timeframe"
	}

	return "Esc: back | Enter: select"
}

func (m ChartModel) Init() tea.Cmd {
	return nil
}

func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tfMsg, ok := msg.(TimeframeSelectedMsg); ok {
		entries := m.store.Entries()
		if !tfMsg.All {
			entries = aggregate.Between(entries, tfMsg.From, tfMsg.To)
		}

		series := aggregate.Aggregate(entries)
		slog.Debug("chart aggregated", "timeframe", tfMsg.Label, "entries", len(entries), "buckets", len(series))

		m.label = tfMsg.Label
		m.rendered = chart.Render(series, m.opts)
		m.state = chartStateResult

		return m, nil
	}

	switch m.state {
	case chartStateTimeframe:
		return m.updateTimeframe(msg)
	case chartStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ChartModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ChartModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = chartStateTimeframe
			m.timeframePicker.Reset()
		}
	}

	return m, nil
}

func (m ChartModel) View() string {
	switch m.state {
	case chartStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())

	case chartStateResult:
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("Trends: "+m.label),
				"",
				m.rendered,
				"",
				faintStyle.Render(m.ShortHelp()),
			),
		)
	}

	return ""
}
