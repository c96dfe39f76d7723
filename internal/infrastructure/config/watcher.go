package config

import (
	"reflect"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/mosaic/internal/logging"
)

// Editors often save in several steps (truncate, write, rename); events
// closer together than this are folded into one reload.
const reloadDebounce = 150 * time.Millisecond

// Watch reloads the file whenever it is written or replaced. An edit that
// fails validation is logged and the previous config stays in effect.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}

	log := logging.NewFromEnv()
	var pending *time.Timer

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

		m.mu.Lock()
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(reloadDebounce, func() {
			if err := m.Reload(); err != nil {
				log.Warn().Err(err).Msg("config reload rejected")
			}
		})
		m.mu.Unlock()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers fn to run after every reload that changed a value.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Reload re-reads the file. Callbacks run outside the lock, each with its
// own copy, and only when the effective config differs from the previous one.
func (m *Manager) Reload() error {
	m.mu.Lock()
	err := m.viper.ReadInConfig()
	var next *Config
	if err == nil {
		next, err = m.decode()
	}
	if err != nil {
		m.mu.Unlock()
		return err
	}
	changed := !reflect.DeepEqual(m.config, next)
	m.config = next
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	if !changed {
		return nil
	}
	for _, fn := range callbacks {
		fn(next.clone())
	}
	return nil
}
