package cli

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pluqqy/snipmux/pkg/files"
	"github.com/pluqqy/snipmux/pkg/models"
	"github.com/pluqqy/snipmux/pkg/tree"
)

// GlobalOptions carries the persistent flags every command shares
type GlobalOptions struct {
	ConfigFile string
	DataDir    string
	Quiet      bool
	NoColor    bool
	Yes        bool
}

// CommandContext bundles what commands need: settings, file locations and the logger
type CommandContext struct {
	Settings *models.Settings
	Paths    files.Paths
	Logger   *logrus.Logger
	closeLog func() error
}

// NewCommandContext loads settings, applies flag overrides, creates the data
// directory and opens the log file
func NewCommandContext(opts GlobalOptions) (*CommandContext, error) {
	settings, err := files.ReadSettings(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.DataDir != "" {
		settings.Storage.DataDir = opts.DataDir
	}

	paths, err := files.NewPaths(settings)
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDataDir(); err != nil {
		return nil, err
	}

	logger, closeLog, err := NewLogger(settings, paths)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Settings: settings,
		Paths:    paths,
		Logger:   logger,
		closeLog: closeLog,
	}, nil
}

// Entry returns a log entry tagged with the component name
func (c *CommandContext) Entry(component string) *logrus.Entry {
	return c.Logger.WithField("component", component)
}

// LoadStore reads the snippet tree
func (c *CommandContext) LoadStore() (*tree.Store, error) {
	return files.LoadStore(c.Paths.StorePath(), logrus.NewEntry(c.Logger))
}

// SaveStore writes the snippet tree
func (c *CommandContext) SaveStore(store *tree.Store) error {
	err := files.SaveStore(c.Paths.StorePath(), store, logrus.NewEntry(c.Logger))
	if err != nil {
		c.Logger.WithError(err).Error("failed to save snippet store")
		return err
	}
	folders, snippets := store.Count()
	c.Logger.WithFields(logrus.Fields{
		"path":     c.Paths.StorePath(),
		"folders":  folders,
		"snippets": snippets,
	}).Debug("snippet store saved")
	return nil
}

// Close releases the log file
func (c *CommandContext) Close() error {
	if c.closeLog == nil {
		return nil
	}
	err := c.closeLog()
	c.closeLog = nil
	if err != nil {
		return errors.Join(errors.New("failed to close log file"), err)
	}
	return nil
}
