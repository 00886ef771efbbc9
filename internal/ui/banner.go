package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("51")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("39")).
	Padding(1, 4)

// Banner writes the boxed product banner.
func Banner(w io.Writer, title, subtitle string) {
	text := strings.ToUpper(title)
	if subtitle != "" {
		text += "\n" + lipgloss.NewStyle().Bold(false).Faint(true).Render(subtitle)
	}
	fmt.Fprintln(w, bannerStyle.Render(text))
}

// PreviewMarkdown renders markdown for the terminal with the glamour style
// matching the project theme ("dark" or "light").
func PreviewMarkdown(w io.Writer, md []byte, style string) error {
	if style != "dark" && style != "light" {
		style = "dark"
	}
	out, err := glamour.Render(string(md), style)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
