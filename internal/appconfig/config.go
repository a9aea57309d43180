package appconfig

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	SocketPath    string        `mapstructure:"socket_path" yaml:"socket_path"`
	SkipEmpty     bool          `mapstructure:"skip_empty" yaml:"skip_empty"`
	Move          bool          `mapstructure:"move" yaml:"move"`
	NoFocus       bool          `mapstructure:"no_focus" yaml:"no_focus"`
	Stdout        bool          `mapstructure:"stdout" yaml:"stdout"`
	IPC           IPCConfig     `mapstructure:"ipc" yaml:"ipc"`
	Logging       LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// IPCConfig controls the window manager connection.
type IPCConfig struct {
	TimeoutMS int `mapstructure:"timeout_ms" yaml:"timeout_ms"`
}

// Timeout returns the IPC timeout as a duration.
func (c IPCConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults. The socket path is
// left empty so SWAYSOCK/I3SOCK or socket discovery decide.
func DefaultConfig() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		SocketPath:    "",
		SkipEmpty:     false,
		Move:          false,
		NoFocus:       false,
		Stdout:        false,
		IPC: IPCConfig{
			TimeoutMS: 2000,
		},
		Logging: LoggingConfig{
			Verbose: false,
		},
	}
}

// DefaultConfigPath returns the standard config path, honouring XDG_CONFIG_HOME.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wsnav", "config.yaml"), nil
}
