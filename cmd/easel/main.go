package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/easel-works/easel/internal/clock"
	"github.com/easel-works/easel/internal/config"
	"github.com/easel-works/easel/internal/desktop"
	"github.com/easel-works/easel/internal/display"
	"github.com/easel-works/easel/internal/domain"
	"github.com/easel-works/easel/internal/gallery"
	"github.com/easel-works/easel/internal/hotkey"
	"github.com/easel-works/easel/internal/overlay"
	"github.com/easel-works/easel/internal/render"
	"github.com/easel-works/easel/internal/settings"
	"github.com/easel-works/easel/internal/tui"
)

// version is stamped by the build
var version = "dev"

var (
	flagConfig   string
	flagLogLevel string
	flagDataDir  string
	flagVersion  bool
)

// AppOptions is the full dependency graph. Tests validate it as-is.
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Provide(
		loadConfig,
		newLogger,
		func() clock.Clock { return clock.Real() },

		// desktop integration
		desktop.NewScreenSaverInhibitor,
		func(i *desktop.ScreenSaverInhibitor) domain.Inhibitor { return i },
		display.NewScreenResolution,

		// artwork pipeline
		newGalleryClient,
		newSeenStore,
		gallery.NewService,
		func(s *gallery.Service) domain.ArtworkService { return s },
		render.NewDecoder,
		func(d *render.Decoder) domain.ImageDecoder { return d },
		newRenderer,

		// settings and the global hotkey
		hotkey.NewManager,
		newSettingsStore,
		settings.NewService,
		func(s *settings.Service) domain.SettingsService { return s },
		settings.NewWatcher,
		hotkey.NewRecorder,

		// terminal surface
		tui.NewPort,
		func(p *tui.Port) domain.InputPort { return p },
		tui.NewHost,
		func(h *tui.Host) domain.OverlayHost { return h },
		overlay.NewController,
		overlay.NewInputHandler,
		tui.NewModel,
		tui.NewProgram,
	),

	fx.Invoke(registerHooks),
)

func main() {
	parseFlags()

	var program *tea.Program
	app := fx.New(
		AppOptions,
		fx.Populate(&program),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "easel:", err)
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "easel:", err)
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "easel:", err)
		os.Exit(1)
	}
}

func parseFlags() {
	pflag.StringVarP(&flagConfig, "config", "c", "", "path to the config file")
	pflag.StringVar(&flagLogLevel, "log-level", "", "override the log level (debug, info, warn, error)")
	pflag.StringVar(&flagDataDir, "data-dir", "", "override the data directory")
	pflag.BoolVarP(&flagVersion, "version", "v", false, "print the version and exit")
	pflag.Parse()

	if flagVersion {
		fmt.Println("easel", version)
		os.Exit(0)
	}
}

// loadConfig resolves the configuration, with command line flags taking
// precedence over the file and environment
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load(zap.NewNop(), flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates the application logger. The alternate screen owns
// the terminal, so logs go to a file inside the data directory.
func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	path := filepath.Join(cfg.DataDir, "easel.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(f), level)
	logger := zap.New(core)

	logger.Info("Logging started", zap.String("path", path), zap.String("level", level.String()))
	return logger, nil
}

func newGalleryClient(logger *zap.Logger, cfg *config.AppConfig) *gallery.Client {
	return gallery.NewClient(logger, cfg.HTTPTimeout)
}

func newSeenStore(logger *zap.Logger, cfg *config.AppConfig) (*gallery.SeenStore, error) {
	return gallery.OpenSeenStore(logger, cfg.HistoryPath(), cfg.RepeatWindow)
}

func newSettingsStore(logger *zap.Logger, cfg *config.AppConfig) *settings.Store {
	return settings.NewStore(logger, cfg.SettingsPath())
}

func newRenderer(logger *zap.Logger) *render.Renderer {
	return render.NewRenderer(logger, termenv.ColorProfile())
}

type hookParams struct {
	fx.In

	Logger     *zap.Logger
	Gallery    *gallery.Service
	Controller *overlay.Controller
	Watcher    *settings.Watcher
	Settings   *settings.Service
	Recorder   *hotkey.Recorder
	Hotkeys    *hotkey.Manager
	Host       *tui.Host
	Seen       *gallery.SeenStore
	Inhibitor  *desktop.ScreenSaverInhibitor
}

// registerHooks starts the background services on the way up and tears
// them down in reverse on the way out. The OnStart context only covers
// startup itself, so the long-running loops get their own contexts and
// are cancelled through their Stop methods.
func registerHooks(lc fx.Lifecycle, p hookParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Hotkeys.SetHandler(p.Host.Toggle)

			go func() {
				if err := p.Gallery.Start(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
					p.Logger.Error("Artwork service terminated", zap.Error(err))
				}
			}()

			if err := p.Controller.Start(context.Background()); err != nil {
				return err
			}
			if err := p.Watcher.Start(context.Background()); err != nil {
				return err
			}

			if err := p.Settings.ApplyStored(ctx); err != nil {
				p.Logger.Warn("Failed to apply stored settings", zap.Error(err))
			}
			if err := p.Recorder.Load(ctx); err != nil {
				p.Logger.Warn("Failed to load hotkey state", zap.Error(err))
			}

			p.Logger.Info("Easel started", zap.String("version", version))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("Shutting down")

			if err := p.Controller.Stop(ctx); err != nil {
				p.Logger.Warn("Controller stop failed", zap.Error(err))
			}
			if err := p.Gallery.Stop(ctx); err != nil {
				p.Logger.Warn("Artwork service stop failed", zap.Error(err))
			}
			if err := p.Watcher.Stop(ctx); err != nil {
				p.Logger.Warn("Settings watcher stop failed", zap.Error(err))
			}

			p.Recorder.Close()
			p.Hotkeys.Close()

			if err := p.Inhibitor.Close(); err != nil {
				p.Logger.Warn("Inhibitor close failed", zap.Error(err))
			}
			if err := p.Seen.Close(); err != nil {
				p.Logger.Warn("History store close failed", zap.Error(err))
			}
			return nil
		},
	})
}
