// Package launcher owns the application lifecycle: logging, configuration,
// services and the main window.
package launcher

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/philologus/philologus-desktop/internal/browser"
	"github.com/philologus/philologus-desktop/internal/config"
	"github.com/philologus/philologus-desktop/internal/logging"
	"github.com/philologus/philologus-desktop/internal/lookup"
	"github.com/philologus/philologus-desktop/internal/platform"
	"github.com/philologus/philologus-desktop/internal/ui"
)

const (
	AppID       = "us.philolog.desktop"
	WindowTitle = "philolog.us"
)

// Options configures a run of the application
type Options struct {
	// ConfigPath is the TOML config file. Empty uses the per-user default.
	ConfigPath string
	// LogDir overrides the log directory. Empty uses the per-user cache dir.
	LogDir string
	Debug  bool
	// ChromePath overrides Chrome discovery for the page preview
	ChromePath string
	// NoPreview disables headless page rendering in the browser pane
	NoPreview bool
	Version   string
}

// Run starts the application and blocks until the main window is closed
func Run(opts Options) error {
	if opts.LogDir == "" {
		if dir, err := platform.GetLogDir(); err == nil {
			opts.LogDir = dir
		}
	}

	logger, logErr := logging.New(logging.Options{Dir: opts.LogDir, Debug: opts.Debug})
	defer func() { _ = logger.Sync() }()
	if logErr != nil {
		logger.Warn("file logging unavailable, using stderr", zap.Error(logErr))
	}

	logger.Info("philologus starting",
		zap.String("version", opts.Version),
		zap.String("os", runtime.GOOS),
		zap.String("log_dir", opts.LogDir))
	if !platform.IsSupportedOS() {
		logger.Warn("running on an untested platform", zap.String("os", runtime.GOOS))
	}

	defaults := loadDefaults(opts.ConfigPath, logger)

	a := app.NewWithID(AppID)
	window, root := Setup(a, defaults, opts, logger)
	root.Start()
	window.ShowAndRun()

	logger.Info("philologus stopped")
	return nil
}

// Setup builds the settings, services and main window on a without showing it
func Setup(a fyne.App, defaults config.Defaults, opts Options, logger *zap.Logger) (fyne.Window, *ui.RootUI) {
	a.Settings().SetTheme(ui.NewReaderTheme())

	window := a.NewWindow(WindowTitle)
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	window.CenterOnScreen()

	settings := config.NewSettingsWithDefaults(a, defaults)

	client := lookup.NewClient(lookup.Options{
		Endpoint: settings.GetEndpoint(),
		Lexicon:  string(settings.GetLexicon()),
		Timeout:  settings.GetRequestTimeout(),
		Logger:   logger,
	})

	var renderer browser.Renderer
	if !opts.NoPreview {
		renderer = browser.NewChromeRenderer(browser.Options{
			ExecPath: opts.ChromePath,
			Logger:   logger,
		})
	}

	root := ui.NewRootUI(window, a, ui.Services{
		Settings: settings,
		Searcher: client,
		Renderer: renderer,
		Logger:   logger,
		Dispatch: fyne.Do,
		LogDir:   opts.LogDir,
	})
	window.SetOnClosed(root.Close)

	return window, root
}

// loadDefaults resolves the file and environment layers, keeping what loaded on error
func loadDefaults(path string, logger *zap.Logger) config.Defaults {
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			logger.Warn("no config directory, using built-in defaults", zap.Error(err))
		}
		path = defaultPath
	}

	defaults, err := config.LoadDefaults(path)
	if err != nil {
		logger.Warn("failed to load configuration, continuing with partial defaults",
			zap.String("path", path), zap.Error(err))
		return defaults
	}
	logger.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("endpoint", defaults.Endpoint),
		zap.String("lexicon", string(defaults.Lexicon)))
	return defaults
}
