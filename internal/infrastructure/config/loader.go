package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// MOSAIC_LAYOUT_SPLIT_PERCENTAGE overrides layout.split_percentage, and so on.
const envPrefix = "MOSAIC"

// Short aliases for the settings people flip most from a shell.
var envAliases = map[string]string{
	"logging.level":  "MOSAIC_LOG_LEVEL",
	"logging.format": "MOSAIC_LOG_FORMAT",
}

// Manager owns the viper instance behind config.toml. The decoded Config is
// replaced as a whole on every successful load, never mutated in place.
type Manager struct {
	dir   string
	viper *viper.Viper

	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
	watching  bool
}

// NewManager reads from the mosaic XDG config directory.
func NewManager() (*Manager, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory (is HOME or XDG_CONFIG_HOME set?): %w", err)
	}
	return NewManagerForDir(dir)
}

func NewManagerForDir(dir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	eachSetting("", reflect.ValueOf(*DefaultConfig()), v.SetDefault)
	return &Manager{dir: dir, viper: v}, nil
}

// eachSetting calls fn with the dotted key of every leaf under a struct.
// Maps are leaves: default_content is one setting, not five.
func eachSetting(prefix string, v reflect.Value, fn func(key string, value any)) {
	t := v.Type()
	for i := range t.NumField() {
		key := t.Field(i).Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		if field := v.Field(i); field.Kind() == reflect.Struct {
			eachSetting(key, field, fn)
		} else {
			fn(key, field.Interface())
		}
	}
}

// Load reads config.toml plus the environment. A missing file is first
// written out with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.read(); err != nil {
		return err
	}
	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

func (m *Manager) read() error {
	err := m.viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		return nil
	case !errors.As(err, &notFound):
		return fmt.Errorf("read %s (must be valid TOML): %w", m.GetConfigFile(), err)
	}

	path := m.defaultConfigPath()
	if err := ensureDir(m.dir); err != nil {
		return fmt.Errorf("create default config at %s: %w", path, err)
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return fmt.Errorf("create default config at %s: %w", path, err)
	}
	m.viper.SetConfigFile(path)
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read freshly written %s: %w", path, err)
	}
	return nil
}

// decode turns what viper last read into a normalized, validated Config.
// Callers hold m.mu.
func (m *Manager) decode() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse %s (check value types): %w", m.GetConfigFile(), err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", m.GetConfigFile(), err)
	}
	return cfg, nil
}

// Get returns a copy of the current config, or the defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// GetConfigFile is the file viper read, or the one Load would create.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.defaultConfigPath()
}

func (m *Manager) defaultConfigPath() string {
	return filepath.Join(m.dir, configFileName)
}

func (c *Config) clone() *Config {
	out := *c
	out.Layout.DefaultContent = maps.Clone(c.Layout.DefaultContent)
	if out.Layout.DefaultContent == nil {
		out.Layout.DefaultContent = map[string]string{}
	}
	return &out
}
