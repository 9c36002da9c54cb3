package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wilbur182/salmon/internal/app"
	"github.com/wilbur182/salmon/internal/canvas"
	"github.com/wilbur182/salmon/internal/config"
	"github.com/wilbur182/salmon/internal/scene"
	"github.com/wilbur182/salmon/internal/stats"
	"github.com/wilbur182/salmon/internal/surface"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath     = flag.String("config", "", "path to config file")
	fpsFlag        = flag.Float64("fps", 0, "override the max FPS cap")
	sizeFlag       = flag.String("size", "", "canvas size as WxH (e.g. 64x64)")
	screenshotFlag = flag.String("screenshot", "", "render one frame to FILE as PNG and exit")
	statsFlag      = flag.Bool("stats", false, "print recent render sessions and exit")
	debugFlag      = flag.Bool("debug", false, "enable debug logging")
	versionFlag    = flag.Bool("version", false, "print version and exit")
	shortVersion   = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Println(effectiveVersion(Version))
		return
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlagOverrides(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Headless paths run without a terminal.
	if *statsFlag {
		if err := printStats(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read stats: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if *screenshotFlag != "" {
		if err := renderScreenshot(cfg, *screenshotFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render screenshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *screenshotFlag)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "salmon needs a terminal; use -screenshot for headless rendering")
		os.Exit(1)
	}

	// Session stats are best-effort: a broken database never blocks a run.
	var store *stats.Store
	if s, err := stats.Open(stats.DefaultPath()); err != nil {
		logger.Warn("session stats disabled", "err", err)
	} else {
		store = s
		defer store.Close()
	}

	// Config hot reload is also best-effort.
	var reloads <-chan *config.Config
	watchPath := *configPath
	if watchPath == "" {
		watchPath = config.ConfigPath()
	}
	if w, err := config.Watch(watchPath, logger); err != nil {
		logger.Warn("config watching disabled", "err", err)
	} else {
		reloads = w.Reloads()
		defer w.Close()
	}

	model := app.New(cfg, logger, scene.WireTriangle{}, store, reloads)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// applyFlagOverrides layers command-line overrides onto the loaded config.
func applyFlagOverrides(cfg *config.Config) error {
	if *fpsFlag > 0 {
		cfg.Render.MaxFPS = *fpsFlag
	}
	if *sizeFlag != "" {
		w, h, err := parseSize(*sizeFlag)
		if err != nil {
			return err
		}
		cfg.Canvas.Width = w
		cfg.Canvas.Height = h
	}
	return cfg.Validate()
}

// parseSize parses a WxH dimension string such as "64x64".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %v", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %v", s, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// renderScreenshot draws a single frame and writes it as a PNG.
func renderScreenshot(cfg *config.Config, path string) error {
	c := canvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
	scene.WireTriangle{}.Render(c)
	return surface.WritePNG(c, c.Width()*surface.ScreenshotScale, c.Height()*surface.ScreenshotScale, path)
}

// printStats lists recent render sessions from the stats database.
func printStats() error {
	store, err := stats.Open(stats.DefaultPath())
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.Recent(20)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No recorded sessions.")
		return nil
	}

	fmt.Printf("%-20s %10s %10s %10s %10s\n", "STARTED", "DURATION", "FRAMES", "AVG FPS", "CANVAS")
	for _, s := range sessions {
		fmt.Printf("%-20s %10s %10d %10.1f %6dx%d\n",
			s.StartedAt.Format("2006-01-02 15:04:05"),
			s.Duration.Round(time.Second),
			s.Frames,
			s.AvgFPS,
			s.CanvasW, s.CanvasH,
		)
	}
	return nil
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: salmon [options]\n\n")
		fmt.Fprintf(os.Stderr, "A software-rendered canvas in your terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
