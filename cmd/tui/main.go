package main

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pocket/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/pocket/internal/chart"
	"github.com/MrJamesThe3rd/pocket/internal/config"
	"github.com/MrJamesThe3rd/pocket/internal/entry"
	"github.com/MrJamesThe3rd/pocket/internal/money"
)

type model struct {
	appName   string
	store     *entry.Store
	formatter money.Formatter
	chartOpts chart.Options

	currentView View

	entriesView view.EntriesModel
	chartView   view.ChartModel
}

type View int

const (
	ViewMenu    View = 0
	ViewEntries View = 1
	ViewChart   View = 2
)

func initialModel(cfg *config.Config) model {
	palette, err := cfg.Palette()
	if err != nil {
		slog.Error("failed to resolve palette", "error", err)
		os.Exit(1)
	}

	store := entry.NewStore(entry.SystemClock{})
	formatter := money.NewFormatter(cfg.Display.CurrencySymbol)
	chartOpts := chart.Options{
		Palette:   palette,
		Width:     cfg.Display.ChartWidth,
		Formatter: formatter,
	}

	return model{
		appName:     cfg.App.Name,
		store:       store,
		formatter:   formatter,
		chartOpts:   chartOpts,
		currentView: ViewMenu,
		entriesView: view.NewEntriesModel(store, formatter),
		chartView:   view.NewChartModel(store, chartOpts),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewEntries
				m.entriesView = view.NewEntriesModel(m.store, m.formatter)

				return m, m.entriesView.Init()
			case "2":
				m.currentView = ViewChart
				m.chartView = view.NewChartModel(m.store, m.chartOpts)

				return m, m.chartView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewEntries:
		var newModel tea.Model
		newModel, cmd = m.entriesView.Update(msg)
		m.entriesView = newModel.(view.EntriesModel)
	case ViewChart:
		var newModel tea.Model
		newModel, cmd = m.chartView.Update(msg)
		m.chartView = newModel.(view.ChartModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. Manage Entries\n" +
				"2. Income vs Expense Chart\n\n" +
				"q. Quit",
		)
	case ViewEntries:
		return m.entriesView.View()
	case ViewChart:
		return m.chartView.View()
	}

	return "Unknown View"
}

// setupLogger routes slog to the configured file. Without one, logs are
// discarded so they never draw over the UI.
func setupLogger(cfg *config.Config) (io.Closer, error) {
	if cfg.Log.File == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return io.NopCloser(nil), nil
	}

	f, err := tea.LogToFile(cfg.Log.File, "")
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Log.Level})))

	return f, nil
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logFile, err := setupLogger(cfg)
	if err != nil {
		slog.Error("failed to open log file", "path", cfg.Log.File, "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.Info("starting", "app", cfg.App.Name)

	p := tea.NewProgram(initialModel(cfg))
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
