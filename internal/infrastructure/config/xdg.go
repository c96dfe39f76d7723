package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "mosaic"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"

	// devDirEnv points every mosaic directory at one scratch tree, so a
	// checkout can run without touching the user's real config.
	devDirEnv = "MOSAIC_DEV_DIR"
)

// XDGDirs are the per-user mosaic directories.
type XDGDirs struct {
	ConfigHome string // $XDG_CONFIG_HOME/mosaic
	StateHome  string // $XDG_STATE_HOME/mosaic
}

// xdgBase returns $env, or the home-relative fallback when it is unset.
func xdgBase(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

func GetXDGDirs() (*XDGDirs, error) {
	if dev := os.Getenv(devDirEnv); dev != "" {
		return &XDGDirs{ConfigHome: dev, StateHome: dev}, nil
	}

	configBase, err := xdgBase("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return nil, err
	}
	stateBase, err := xdgBase("XDG_STATE_HOME", ".local", "state")
	if err != nil {
		return nil, err
	}
	return &XDGDirs{
		ConfigHome: filepath.Join(configBase, appName),
		StateHome:  filepath.Join(stateBase, appName),
	}, nil
}

func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile is the config path used when no Manager is at hand.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetLogDir is where file logging goes unless logging.log_dir overrides it.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetManDir is the section 1 man directory under $XDG_DATA_HOME.
func GetManDir() (string, error) {
	base, err := xdgBase("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "man", "man1"), nil
}
