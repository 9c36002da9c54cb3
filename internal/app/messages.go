package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/salmon/internal/config"
)

// FrameTickMsg drives one render pass. The next tick is scheduled from the
// handler so the cadence follows the configured FPS cap. Gen identifies
// the tick chain that scheduled the message: pausing, resuming, and config
// reloads bump the model's generation, so a tick already in flight when
// the loop is restarted lands stale and is dropped instead of spawning a
// second chain.
type FrameTickMsg struct {
	At  time.Time
	Gen int
}

func frameTick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameTickMsg{At: t, Gen: gen}
	})
}

// ConfigReloadedMsg carries a freshly loaded config from the file watcher.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// waitForReload blocks on the watcher channel and is re-armed by the
// ConfigReloadedMsg handler after each delivery.
func waitForReload(ch <-chan *config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Cfg: cfg}
	}
}

// ToastMsg displays a transient status message.
type ToastMsg struct {
	Message  string
	IsError  bool
	Duration time.Duration
}

// toastExpiryMsg clears an expired toast.
type toastExpiryMsg struct{}

func toastExpiry(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiryMsg{}
	})
}
