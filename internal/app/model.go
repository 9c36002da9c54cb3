package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/salmon/internal/canvas"
	"github.com/wilbur182/salmon/internal/config"
	"github.com/wilbur182/salmon/internal/scene"
	"github.com/wilbur182/salmon/internal/stats"
	"github.com/wilbur182/salmon/internal/surface"
	"github.com/wilbur182/salmon/internal/timing"
)

// Model is the root Bubble Tea model for the salmon renderer.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	// Render pipeline
	canvas   *canvas.Canvas
	scene    scene.Scene
	renderer *surface.Renderer
	timing   *timing.FrameTiming

	// Config hot reload (nil disables)
	reloads <-chan *config.Config

	// Session stats (nil disables persistence)
	store       *stats.Store
	startedAt   time.Time
	totalFrames int64

	// UI state
	width, height int
	ready         bool
	paused        bool
	tickGen       int // current frame-tick chain; stale ticks are dropped
	fps           float64
	keys          keyMap
	help          help.Model

	// Toast
	statusMsg     string
	statusIsError bool
}

// New creates the application model. store and reloads may be nil.
func New(cfg *config.Config, logger *slog.Logger, sc scene.Scene, store *stats.Store, reloads <-chan *config.Config) Model {
	return Model{
		cfg:       cfg,
		logger:    logger,
		canvas:    canvas.New(cfg.Canvas.Width, cfg.Canvas.Height),
		scene:     sc,
		renderer:  surface.NewRenderer(),
		timing:    timing.New(cfg.Render.MaxFPS, cfg.Render.FPSLimit),
		reloads:   reloads,
		store:     store,
		startedAt: time.Now(),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init starts the frame loop and the config reload listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameTick(m.timing.Interval(), m.tickGen)}
	if m.reloads != nil {
		cmds = append(cmds, waitForReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

// applyConfig applies a reloaded config to the running session.
func (m *Model) applyConfig(cfg *config.Config) {
	m.timing.SetMaxFPS(cfg.Render.MaxFPS, cfg.Render.FPSLimit)
	if cfg.Canvas.Width != m.cfg.Canvas.Width || cfg.Canvas.Height != m.cfg.Canvas.Height {
		m.canvas = canvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
	}
	m.cfg = cfg
}

// sessionSummary builds the stats row for this run.
func (m Model) sessionSummary() stats.Session {
	dur := time.Since(m.startedAt)
	var avg float64
	if dur > 0 {
		avg = float64(m.totalFrames) / dur.Seconds()
	}
	return stats.Session{
		StartedAt: m.startedAt,
		Duration:  dur,
		Frames:    m.totalFrames,
		AvgFPS:    avg,
		CanvasW:   m.canvas.Width(),
		CanvasH:   m.canvas.Height(),
	}
}

// recordSession persists the session summary, if a store is attached.
func (m Model) recordSession() {
	if m.store == nil {
		return
	}
	if err := m.store.Record(m.sessionSummary()); err != nil {
		m.logger.Warn("failed to record session", "err", err)
	}
}

// screenshotPath names PNG exports after the wall clock.
func screenshotPath(now time.Time) string {
	return fmt.Sprintf("salmon-%s.png", now.Format("20060102-150405"))
}

// takeScreenshot writes the current frame to a PNG in the working
// directory. It runs synchronously in Update so the canvas is not touched
// mid-frame.
func (m *Model) takeScreenshot() tea.Cmd {
	path := screenshotPath(time.Now())
	w := m.canvas.Width() * surface.ScreenshotScale
	h := m.canvas.Height() * surface.ScreenshotScale

	if err := surface.WritePNG(m.canvas, w, h, path); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return func() tea.Msg {
			return ToastMsg{Message: "Screenshot failed", IsError: true, Duration: 3 * time.Second}
		}
	}
	return func() tea.Msg {
		return ToastMsg{Message: "Saved " + path, Duration: 3 * time.Second}
	}
}
