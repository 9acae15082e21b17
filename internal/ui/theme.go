// ============================================================================
// KisueerOS - Interactive Shell
// ============================================================================
//
// Package:     ui
// Description: Lipgloss themes for the prompt and command output
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HostName is shown in the prompt header
const HostName = "KisueerOS"

// Palette holds the colors of one theme
type Palette struct {
	Frame   lipgloss.Color
	User    lipgloss.Color
	Path    lipgloss.Color
	Accent  lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Dir     lipgloss.Color
	Exec    lipgloss.Color
	Warning lipgloss.Color
}

var palettes = map[string]Palette{
	"default": {
		Frame:   lipgloss.Color("10"),
		User:    lipgloss.Color("12"),
		Path:    lipgloss.Color("15"),
		Accent:  lipgloss.Color("14"),
		Error:   lipgloss.Color("9"),
		Muted:   lipgloss.Color("8"),
		Dir:     lipgloss.Color("12"),
		Exec:    lipgloss.Color("10"),
		Warning: lipgloss.Color("11"),
	},
	"dark": {
		Frame:   lipgloss.Color("#6B7280"),
		User:    lipgloss.Color("#7C3AED"),
		Path:    lipgloss.Color("#F9FAFB"),
		Accent:  lipgloss.Color("#06B6D4"),
		Error:   lipgloss.Color("#EF4444"),
		Muted:   lipgloss.Color("#374151"),
		Dir:     lipgloss.Color("#8B5CF6"),
		Exec:    lipgloss.Color("#10B981"),
		Warning: lipgloss.Color("#F59E0B"),
	},
	"light": {
		Frame:   lipgloss.Color("#334155"),
		User:    lipgloss.Color("#2563EB"),
		Path:    lipgloss.Color("#1F2937"),
		Accent:  lipgloss.Color("#0E7490"),
		Error:   lipgloss.Color("#B91C1C"),
		Muted:   lipgloss.Color("#64748B"),
		Dir:     lipgloss.Color("#1D4ED8"),
		Exec:    lipgloss.Color("#047857"),
		Warning: lipgloss.Color("#B45309"),
	},
	"colorful": {
		Frame:   lipgloss.Color("#F59E0B"),
		User:    lipgloss.Color("#EC4899"),
		Path:    lipgloss.Color("#22D3EE"),
		Accent:  lipgloss.Color("#A3E635"),
		Error:   lipgloss.Color("#F43F5E"),
		Muted:   lipgloss.Color("#A78BFA"),
		Dir:     lipgloss.Color("#38BDF8"),
		Exec:    lipgloss.Color("#4ADE80"),
		Warning: lipgloss.Color("#FACC15"),
	},
}

// Theme is a set of ready-to-use styles
type Theme struct {
	Name string

	Frame      lipgloss.Style
	User       lipgloss.Style
	Path       lipgloss.Style
	Title      lipgloss.Style
	Error      lipgloss.Style
	Muted      lipgloss.Style
	Directory  lipgloss.Style
	Executable lipgloss.Style
	Alert      lipgloss.Style
	Box        lipgloss.Style
}

// ForName returns the theme called name, or the default theme
func ForName(name string) Theme {
	name = strings.ToLower(strings.TrimSpace(name))
	p, ok := palettes[name]
	if !ok {
		name = "default"
		p = palettes[name]
	}

	return Theme{
		Name:       name,
		Frame:      lipgloss.NewStyle().Foreground(p.Frame),
		User:       lipgloss.NewStyle().Foreground(p.User).Bold(true),
		Path:       lipgloss.NewStyle().Foreground(p.Path),
		Title:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(p.Error),
		Muted:      lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Directory:  lipgloss.NewStyle().Foreground(p.Dir).Bold(true),
		Executable: lipgloss.NewStyle().Foreground(p.Exec).Bold(true),
		Alert:      lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Padding(0, 2),
	}
}

// PromptHeader renders the first prompt line, e.g. ┌──(user㉿KisueerOS)-[~/src]
func (t Theme) PromptHeader(username, dir string) string {
	var b strings.Builder
	b.WriteString(t.Frame.Render("┌──("))
	b.WriteString(t.User.Render(username + "㉿" + HostName))
	b.WriteString(t.Frame.Render(")-["))
	b.WriteString(t.Path.Render(dir))
	b.WriteString(t.Frame.Render("]"))
	return b.String()
}

// PromptLine renders the input line prefix using the configured prompt text
func (t Theme) PromptLine(prompt string) string {
	return t.Frame.Render("└─") + t.User.Render(strings.TrimRight(prompt, " ")) + " "
}

// Heading renders a "=== title ===" section header
func (t Theme) Heading(title string) string {
	return t.Title.Render("=== " + title + " ===")
}
