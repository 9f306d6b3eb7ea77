package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jlrickert/verlaunch/pkg/launcher"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// RenderOutcome formats the end of a run for the terminal.
func RenderOutcome(o launcher.Outcome) string {
	if o.Launched() {
		return fmt.Sprintf("%s %s %s",
			okStyle.Render("launched"),
			o.Version,
			mutedStyle.Render("("+o.InstallRoot+")"))
	}
	return warnStyle.Render("closed without launching")
}

// RenderVersions formats a sorted version list, one per line, marking the
// remembered one.
func RenderVersions(versions []string, current string) string {
	var b strings.Builder
	for _, v := range versions {
		if v == current {
			b.WriteString(okStyle.Render("* " + v))
		} else {
			b.WriteString("  " + v)
		}
		b.WriteString("\n")
	}
	return b.String()
}
