package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/eykd/fentarxiu-go/internal/config"
	"github.com/eykd/fentarxiu-go/internal/fs"
)

// newLogger returns a text logger on w at debug level when verbose is set
// and at warn level otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadSettings loads .env, locates the config file and resolves settings.
// An explicit path from the flag or the environment must exist; the
// discovered default may be absent.
func loadSettings(flagPath string, getenv func(string) string, getwd func() (string, error)) (config.Settings, error) {
	if err := config.LoadEnv(); err != nil {
		return config.Settings{}, &ContextError{Op: "config", Err: err}
	}

	path, required := flagPath, true
	if path == "" {
		path = getenv(config.EnvConfig)
	}
	if path == "" {
		required = false
		wd, err := getwd()
		if err != nil {
			return config.Settings{}, &ContextError{Op: "config", Err: err}
		}
		found, err := fs.FindUpward(wd, config.FileName)
		switch {
		case err == nil:
			path = found
		case !errors.Is(err, os.ErrNotExist):
			return config.Settings{}, &ContextError{Op: "config", Err: err}
		}
	}

	var f config.File
	if path != "" {
		var err error
		f, err = config.Load(path, required)
		if err != nil {
			return config.Settings{}, &ContextError{Op: "config", Err: err}
		}
		logger.Debug("config resolved", "path", path)
	}
	return config.Resolve(f, getenv), nil
}
