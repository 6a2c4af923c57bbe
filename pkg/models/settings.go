package models

// Dispatch modes
const (
	DispatchTmux      = "tmux"
	DispatchClipboard = "clipboard"
)

// Settings represents the application configuration
type Settings struct {
	Storage  StorageSettings  `yaml:"storage" mapstructure:"storage"`
	Dispatch DispatchSettings `yaml:"dispatch" mapstructure:"dispatch"`
	UI       UISettings       `yaml:"ui" mapstructure:"ui"`
	Log      LogSettings      `yaml:"log" mapstructure:"log"`
}

// StorageSettings controls where the snippet tree is kept
type StorageSettings struct {
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"` // empty means <executable dir>/data
	File    string `yaml:"file" mapstructure:"file"`
}

// DispatchSettings controls how snippet text leaves the tool
type DispatchSettings struct {
	Mode       string `yaml:"mode" mapstructure:"mode"` // "tmux" or "clipboard"
	TmuxBinary string `yaml:"tmux_binary" mapstructure:"tmux_binary"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowHelp bool `yaml:"show_help" mapstructure:"show_help"`
	ShowUUID bool `yaml:"show_uuid" mapstructure:"show_uuid"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `yaml:"file" mapstructure:"file"` // relative paths live under the data dir
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{
			DataDir: "",
			File:    "storage.xml",
		},
		Dispatch: DispatchSettings{
			Mode:       DispatchTmux,
			TmuxBinary: "tmux",
		},
		UI: UISettings{
			ShowHelp: true,
			ShowUUID: true,
		},
		Log: LogSettings{
			File:  "snipmux.log",
			Level: "warn",
		},
	}
}
