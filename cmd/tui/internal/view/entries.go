package view

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocket/internal/entry"
	"github.com/MrJamesThe3rd/pocket/internal/money"
)

type entriesState int

const (
	entriesStateBrowse entriesState = iota
	entriesStateForm
)

// EntriesModel lists entries with their summary and drives the add/edit form.
type EntriesModel struct {
	store     *entry.Store
	formatter money.Formatter

	state   entriesState
	table   table.Model
	entries []entry.Entry
	form    *huh.Form
	values  *formValues

	status    string
	statusErr bool
}

func NewEntriesModel(store *entry.Store, formatter money.Formatter) EntriesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 9},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := EntriesModel{
		store:     store,
		formatter: formatter,
		table:     t,
	}
	m.refreshTable()

	return m
}

func (m EntriesModel) Title() string { return "Entries" }

func (m EntriesModel) ShortHelp() string {
	if m.state == entriesStateForm {
		return "Enter/Tab: navigate form | Esc: cancel"
	}

	return "a: add | e: edit | d: delete | Esc: back"
}

func (m EntriesModel) Init() tea.Cmd {
	return nil
}

func (m EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(max(size.Height-16, 5))
		return m, nil
	}

	switch m.state {
	case entriesStateBrowse:
		return m.updateBrowse(msg)
	case entriesStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m EntriesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.startAdding()
		case "e", "enter":
			return m.startEditing()
		case "d", "delete":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m EntriesModel) startAdding() (tea.Model, tea.Cmd) {
	m.store.CancelEdit()
	m.values = newFormValues()

	return m.openForm()
}

func (m EntriesModel) startEditing() (tea.Model, tea.Cmd) {
	selected, ok := m.selected()
	if !ok {
		return m, nil
	}

	e, err := m.store.BeginEdit(selected.ID)
	if err != nil {
		slog.Warn("begin edit failed", "id", selected.ID, "error", err)
		m.setStatus(fmt.Sprintf("Error: %v", err), true)
		m.refreshTable()

		return m, nil
	}

	m.values = formValuesFrom(e)

	return m.openForm()
}

func (m EntriesModel) openForm() (tea.Model, tea.Cmd) {
	m.form = buildEntryForm(m.values, descriptionSuggestions(m.entries))
	m.state = entriesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m EntriesModel) deleteSelected() (tea.Model, tea.Cmd) {
	selected, ok := m.selected()
	if !ok {
		return m, nil
	}

	m.store.Delete(selected.ID)
	slog.Debug("entry deleted", "id", selected.ID)

	m.setStatus(fmt.Sprintf("Deleted %q.", selected.Description), false)
	m.refreshTable()

	return m, nil
}

func (m EntriesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m.closeForm(), nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		return m.closeForm(), nil
	case huh.StateCompleted:
		return m.submit()
	}

	return m, cmd
}

func (m EntriesModel) submit() (tea.Model, tea.Cmd) {
	_, editing := m.store.Editing()

	fields, err := entry.ParseFields(m.values.raw())
	if err == nil {
		var e entry.Entry

		e, err = m.store.Submit(fields)
		if err == nil {
			verb := "Added"
			if editing {
				verb = "Updated"
			}

			slog.Debug("entry saved", "id", e.ID, "action", verb)
			m.setStatus(fmt.Sprintf("%s %q.", verb, e.Description), false)
			m.refreshTable()

			return m.closeForm(), nil
		}
	}

	// Keep the input so it can be corrected.
	slog.Warn("entry rejected", "error", err)
	m.setStatus(fmt.Sprintf("Error: %v", err), true)

	return m.openForm()
}

// closeForm leaves the form without saving; an edit in progress is cancelled.
func (m EntriesModel) closeForm() EntriesModel {
	m.store.CancelEdit()
	m.state = entriesStateBrowse
	m.form = nil
	m.values = nil
	m.table.Focus()

	return m
}

func (m EntriesModel) selected() (entry.Entry, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return entry.Entry{}, false
	}

	return m.entries[idx], true
}

func (m *EntriesModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *EntriesModel) refreshTable() {
	m.entries = m.store.Entries()

	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		rows = append(rows, table.Row{
			e.Date.String(),
			e.Type.Label(),
			m.formatter.Format(e.Amount),
			e.Description,
		})
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m EntriesModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Entries"),
		"",
		m.summaryView(),
		"",
		m.listView(),
	)

	if m.state == entriesStateForm && m.form != nil {
		title := "Add Entry"
		if _, editing := m.store.Editing(); editing {
			title = "Edit Entry"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(50).
			Render(fmt.Sprintf("%s\n\n%s", titleStyle.Render(title), m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	help := faintStyle.Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(statusLine(m.status, m.statusErr) + content + "\n\n" + help)
}

func (m EntriesModel) summaryView() string {
	s := m.store.Summary()

	balance := m.formatter.Format(s.Balance)
	if s.Balance.IsNegative() {
		balance = errorStyle.Render(balance)
	}

	return boxStyle.Render(fmt.Sprintf(
		"Summary\n\nTotal Income:  %s\nTotal Expense: %s\nBalance:       %s",
		m.formatter.Format(s.TotalIncome),
		m.formatter.Format(s.TotalExpense),
		balance,
	))
}

func (m EntriesModel) listView() string {
	if len(m.entries) == 0 {
		return faintStyle.Render("No entries yet. Press a to add one.")
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())
}
