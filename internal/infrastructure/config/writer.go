package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const fileHeader = "# mosaic configuration. Editor completion: " + schemaFileName + "\n\n"

// EncodeTOML renders cfg as TOML. Tables come out in key order, so the file
// reads the same no matter how the struct fields are declared.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	tree, err := asTree(cfg)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBufferString(fileHeader)
	enc := toml.NewEncoder(buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// asTree round-trips cfg through TOML into a plain map. The encoder sorts map
// keys, which struct fields do not get.
func asTree(cfg *Config) (map[string]any, error) {
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	var tree map[string]any
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode config tree: %w", err)
	}
	return tree, nil
}

// WriteConfigOrdered writes cfg to path through a temp file in the same
// directory, so the watcher never sees a half-written config.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("chmod temp config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}
