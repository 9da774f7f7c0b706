package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/pocket/internal/chart"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Pocket"`
	}

	Display struct {
		CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"₹"`
		IncomeColor    string `envconfig:"INCOME_COLOR" default:"#4CAF50"`
		ExpenseColor   string `envconfig:"EXPENSE_COLOR" default:"#e74c3c"`
		ChartWidth     int    `envconfig:"CHART_WIDTH" default:"40"`
	}

	Log struct {
		Level slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`
		// Empty discards logs; the terminal belongs to the UI.
		File string `envconfig:"LOG_FILE"`
	}
}

// Palette resolves the configured chart colors.
func (c *Config) Palette() (chart.Palette, error) {
	return chart.NewPalette(c.Display.IncomeColor, c.Display.ExpenseColor)
}

func (c *Config) Validate() error {
	if c.Display.ChartWidth <= 0 {
		return fmt.Errorf("chart width must be positive, got %d", c.Display.ChartWidth)
	}

	if _, err := c.Palette(); err != nil {
		return err
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
