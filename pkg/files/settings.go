package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/snipmux/pkg/models"
)

// DefaultConfigPath returns $HOME/.config/snipmux/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", ConfigDirName, ConfigFileName+"."+ConfigFileType), nil
}

// ReadSettings loads settings from configFile, or from the default location
// when configFile is empty. A missing default config is not an error.
// SNIPMUX_* environment variables override file values (e.g. SNIPMUX_DISPATCH_MODE).
func ReadSettings(configFile string) (*models.Settings, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(defaultPath))
		v.SetConfigName(ConfigFileName)
	}
	v.SetConfigType(ConfigFileType)

	v.SetEnvPrefix("SNIPMUX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, models.DefaultSettings())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	settings := &models.Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return settings, nil
}

// WriteSettings saves settings as YAML
func WriteSettings(path string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}
	return WriteFile(path, content)
}

func setDefaults(v *viper.Viper, d *models.Settings) {
	v.SetDefault("storage.data_dir", d.Storage.DataDir)
	v.SetDefault("storage.file", d.Storage.File)
	v.SetDefault("dispatch.mode", d.Dispatch.Mode)
	v.SetDefault("dispatch.tmux_binary", d.Dispatch.TmuxBinary)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.show_uuid", d.UI.ShowUUID)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}
