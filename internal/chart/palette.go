package chart

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultIncomeColor  = "#4CAF50"
	DefaultExpenseColor = "#e74c3c"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"orange":  "#ffa500",
}

// Palette holds the bar colors as normalized hex strings.
type Palette struct {
	Income  string
	Expense string
}

func DefaultPalette() Palette {
	p, _ := NewPalette(DefaultIncomeColor, DefaultExpenseColor)
	return p
}

// NewPalette resolves both colors, falling back to the defaults for empty values.
func NewPalette(income, expense string) (Palette, error) {
	if income == "" {
		income = DefaultIncomeColor
	}

	if expense == "" {
		expense = DefaultExpenseColor
	}

	in, err := ParseColor(income)
	if err != nil {
		return Palette{}, fmt.Errorf("income color: %w", err)
	}

	out, err := ParseColor(expense)
	if err != nil {
		return Palette{}, fmt.Errorf("expense color: %w", err)
	}

	return Palette{Income: in, Expense: out}, nil
}

// ParseColor accepts "#rgb", "#rrggbb" or a basic CSS color name and returns "#rrggbb".
func ParseColor(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("unknown color %q", s)
	}

	return c.Hex(), nil
}
