// Package styles holds the shared color palette and lipgloss styles for
// the terminal UI chrome (status bar, help footer, toasts). The canvas
// itself carries its own pixel colors and bypasses the palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette colors.
var (
	Primary   = lipgloss.Color("#7C3AED")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#10B981")
	Error     = lipgloss.Color("#EF4444")
	Info      = lipgloss.Color("#3B82F6")
	TextMuted = lipgloss.Color("#6B7280")
	BgStatus  = lipgloss.Color("#1F2937")
)

// Shared styles.
var (
	// Title renders the application name in the status bar.
	Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// StatusBar is the full-width bar at the top of the screen.
	StatusBar = lipgloss.NewStyle().
			Background(BgStatus).
			Padding(0, 1)

	// FPSReadout renders the frame-rate figure in the status bar.
	FPSReadout = lipgloss.NewStyle().
			Foreground(Accent)

	// Paused marks the render loop as suspended.
	Paused = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	// Muted is used for secondary text such as the help footer.
	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	// ToastSuccess and ToastError render transient status messages.
	ToastSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ToastError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
