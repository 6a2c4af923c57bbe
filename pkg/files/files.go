package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/snipmux/pkg/models"
)

const (
	DataDirName     = "data"
	DefaultStore    = "storage.xml"
	DefaultLogFile  = "snipmux.log"
	ConfigDirName   = "snipmux"
	ConfigFileName  = "config"
	ConfigFileType  = "yaml"
	dirPermissions  = 0755
	filePermissions = 0644
)

// Paths locates everything the tool reads or writes. It is built once at
// startup from the settings and handed to the codec and the content resolver.
type Paths struct {
	DataDir   string
	StoreFile string
	LogFile   string
}

// NewPaths resolves the data directory and file names from settings.
// An empty data dir means the "data" directory next to the executable.
func NewPaths(settings *models.Settings) (Paths, error) {
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return Paths{}, fmt.Errorf("failed to locate executable: %w", err)
		}
		dataDir = filepath.Join(filepath.Dir(exe), DataDirName)
	}

	storeFile := settings.Storage.File
	if storeFile == "" {
		storeFile = DefaultStore
	}
	logFile := settings.Log.File
	if logFile == "" {
		logFile = DefaultLogFile
	}

	return Paths{
		DataDir:   dataDir,
		StoreFile: storeFile,
		LogFile:   logFile,
	}, nil
}

// StorePath returns the location of the snippet tree document
func (p Paths) StorePath() string {
	return p.under(p.StoreFile)
}

// LogPath returns the location of the log file
func (p Paths) LogPath() string {
	return p.under(p.LogFile)
}

// SnippetPath returns the file a from-file snippet refers to. Absolute names
// are used as they are, relative ones live under the data directory.
func (p Paths) SnippetPath(name string) string {
	return p.under(name)
}

func (p Paths) under(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.DataDir, name)
}

// EnsureDataDir creates the data directory if needed
func (p Paths) EnsureDataDir() error {
	if err := os.MkdirAll(p.DataDir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", p.DataDir, err)
	}
	return nil
}

// ResolveContent returns the text a snippet sends. For from-file snippets the
// referenced file is read now rather than when the snippet was stored.
func ResolveContent(p Paths, snippet *models.Snippet) (string, error) {
	if !snippet.FromFile {
		return snippet.Content, nil
	}

	path := p.SnippetPath(snippet.Content)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read snippet file %s: %w", path, err)
	}
	return string(content), nil
}

// WriteFile writes content to a file, creating its directory first
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, filePermissions); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
