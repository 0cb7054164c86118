package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "sabos.dev/pkg/sysport/internal/model"
)

// styles renders the bracketed status tags.
type styles struct {
	render func(style lipgloss.Style, text string) string
	skip   lipgloss.Style
	patch  lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	pass   lipgloss.Style
}

func plainStyles() styles {
	return styles{
		render: func(_ lipgloss.Style, text string) string { return text },
	}
}

func terminalStyles() styles {
	return styles{
		render: func(style lipgloss.Style, text string) string { return style.Render(text) },
		skip:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		patch:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		warn:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		fail:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		pass:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

func (s styles) tag(status m.PatchStatus) string {
	text := "[" + status.String() + "]"

	switch status {
	case m.Skipped:
		return s.render(s.skip, text)
	case m.Patched:
		return s.render(s.patch, text)
	case m.NoEffect:
		return s.render(s.warn, text)
	default:
		return text
	}
}

func (s styles) errorTag() string {
	return s.render(s.fail, "[ERROR]")
}

func (s styles) passed() string {
	return s.render(s.pass, "PASSED:")
}

func (s styles) failed() string {
	return s.render(s.fail, "FAILED:")
}
