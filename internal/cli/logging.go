package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pluqqy/snipmux/pkg/files"
	"github.com/pluqqy/snipmux/pkg/models"
)

// NewLogger opens the log file from the settings. The terminal belongs to the
// TUI, so nothing is logged to stdout or stderr. The returned closer releases
// the file.
func NewLogger(settings *models.Settings, paths files.Paths) (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", settings.Log.Level, err)
	}

	path := paths.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return logger, f.Close, nil
}
