package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors a host may override. Empty fields keep the default.
type Palette struct {
	Text             string `toml:"text"`
	Placeholder      string `toml:"placeholder"`
	TagBorder        string `toml:"tag_border"`
	TagText          string `toml:"tag_text"`
	TagRemoveIcon    string `toml:"tag_remove_icon"`
	ItemText         string `toml:"item_text"`
	SelectedItemText string `toml:"selected_item_text"`
	SelectedItemIcon string `toml:"selected_item_icon"`
	Highlight        string `toml:"highlight"`
	NoItems          string `toml:"no_items"`
	Button           string `toml:"button"`
}

// DefaultPalette returns the default colors
func DefaultPalette() Palette {
	return Palette{
		Text:             "252",
		Placeholder:      "245", // grey
		TagBorder:        "241", // dark grey
		TagText:          "250",
		TagRemoveIcon:    "241",
		ItemText:         "245",
		SelectedItemText: "255",
		SelectedItemIcon: "78", // green
		Highlight:        "238",
		NoItems:          "214", // yellow
		Button:           "99",
	}
}

// Merge returns p with empty fields taken from base
func (p Palette) Merge(base Palette) Palette {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Palette{
		Text:             pick(p.Text, base.Text),
		Placeholder:      pick(p.Placeholder, base.Placeholder),
		TagBorder:        pick(p.TagBorder, base.TagBorder),
		TagText:          pick(p.TagText, base.TagText),
		TagRemoveIcon:    pick(p.TagRemoveIcon, base.TagRemoveIcon),
		ItemText:         pick(p.ItemText, base.ItemText),
		SelectedItemText: pick(p.SelectedItemText, base.SelectedItemText),
		SelectedItemIcon: pick(p.SelectedItemIcon, base.SelectedItemIcon),
		Highlight:        pick(p.Highlight, base.Highlight),
		NoItems:          pick(p.NoItems, base.NoItems),
		Button:           pick(p.Button, base.Button),
	}
}

// Styles contains all the style definitions for the widget
type Styles struct {
	Label            lipgloss.Style
	LabelPlaceholder lipgloss.Style
	Indicator        lipgloss.Style
	SearchIcon       lipgloss.Style
	Tag              lipgloss.Style
	TagFocused       lipgloss.Style
	TagRemove        lipgloss.Style
	Item             lipgloss.Style
	ItemSelected     lipgloss.Style
	ItemDisabled     lipgloss.Style
	Check            lipgloss.Style
	CursorBg         lipgloss.Style
	AddRow           lipgloss.Style
	NoItems          lipgloss.Style
	Button           lipgloss.Style
	ButtonFocused    lipgloss.Style
	Container        lipgloss.Style
	Scroll           lipgloss.Style
	Help             lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return NewStylesWithPalette(DefaultPalette())
}

// NewStylesWithPalette builds styles from a palette
func NewStylesWithPalette(p Palette) *Styles {
	p = p.Merge(DefaultPalette())
	return &Styles{
		Label:            lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		LabelPlaceholder: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Placeholder)),
		Indicator:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.TagBorder)).Bold(true),
		SearchIcon:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.TagBorder)).MarginRight(1),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TagText)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.TagBorder)).
			Padding(0, 1),
		TagFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.SelectedItemText)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Button)).
			Padding(0, 1).
			Bold(true),
		TagRemove:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.TagRemoveIcon)),
		Item:          lipgloss.NewStyle().Foreground(lipgloss.Color(p.ItemText)),
		ItemSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.SelectedItemText)).Bold(true),
		ItemDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
		Check:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.SelectedItemIcon)),
		CursorBg:      lipgloss.NewStyle().Background(lipgloss.Color(p.Highlight)),
		AddRow:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.ItemText)).Italic(true),
		NoItems:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.NoItems)),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Placeholder)),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Button)).Bold(true),
		Container: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.TagBorder)).
			Padding(0, 1),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}
