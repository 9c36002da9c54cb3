package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameTickMsg:
		if m.paused || msg.Gen != m.tickGen {
			return m, nil
		}
		m.scene.Render(m.canvas)
		m.totalFrames++
		if fps, ok := m.timing.Frame(); ok {
			m.fps = fps
		}
		return m, frameTick(m.timing.Interval(), m.tickGen)

	case ConfigReloadedMsg:
		m.applyConfig(msg.Cfg)
		m.statusMsg = "Config reloaded"
		m.statusIsError = false
		cmds := []tea.Cmd{
			waitForReload(m.reloads),
			toastExpiry(2 * time.Second),
		}
		// Restart the frame loop on the new generation so the cadence
		// picks up the reloaded cap immediately.
		m.tickGen++
		if !m.paused {
			cmds = append(cmds, frameTick(m.timing.Interval(), m.tickGen))
		}
		return m, tea.Batch(cmds...)

	case ToastMsg:
		m.statusMsg = msg.Message
		m.statusIsError = msg.IsError
		d := msg.Duration
		if d <= 0 {
			d = 2 * time.Second
		}
		return m, toastExpiry(d)

	case toastExpiryMsg:
		m.statusMsg = ""
		m.statusIsError = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordSession()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		// Invalidate any tick still in flight; otherwise a quick
		// pause/resume leaves it pending and the resume tick doubles the
		// chain, breaking the FPS cap.
		m.tickGen++
		if !m.paused {
			return m, frameTick(m.timing.Interval(), m.tickGen)
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		return m, m.takeScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}
