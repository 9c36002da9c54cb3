package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/wilbur182/salmon/internal/styles"
)

// View renders the status bar, the canvas viewport, and the help footer.
func (m Model) View() string {
	if !m.ready {
		return "Starting renderer..."
	}

	var status string
	chrome := 0
	if m.cfg.UI.ShowStatusBar {
		status = m.statusView()
		chrome += lipgloss.Height(status)
	}

	footer := m.help.View(m.keys)
	chrome += lipgloss.Height(footer)

	viewRows := m.height - chrome
	frame := m.renderer.Render(m.canvas, m.width, viewRows)

	var sections []string
	if status != "" {
		sections = append(sections, status)
	}
	if frame != "" {
		sections = append(sections, frame)
	}
	sections = append(sections, footer)

	return strings.Join(sections, "\n")
}

// statusView renders the top bar: app name, FPS readout, pause marker and
// any active toast. The FPS figure refreshes once per second, like the
// window title in a desktop build would.
func (m Model) statusView() string {
	title := styles.Title.Render("Salmon")

	fpsText := "FPS: --"
	if m.fps > 0 {
		fpsText = fmt.Sprintf("FPS: %.1f", m.fps)
	}
	parts := []string{title, styles.FPSReadout.Render(fpsText)}

	if m.paused {
		parts = append(parts, styles.Paused.Render("PAUSED"))
	}

	if m.statusMsg != "" {
		st := styles.ToastSuccess
		if m.statusIsError {
			st = styles.ToastError
		}
		room := m.width - 24
		if room < 8 {
			room = 8
		}
		parts = append(parts, st.Render(runewidth.Truncate(m.statusMsg, room, "…")))
	}

	line := strings.Join(parts, "  ")
	return styles.StatusBar.Width(m.width).Render(line)
}
