package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 50, cfg.Layout.SplitPercentage, 0)
	assert.InDelta(t, 80, cfg.Layout.CornerSplitPercentage, 0)
	assert.Equal(t, "AAPL", cfg.Layout.DefaultContent["window1"])
	assert.Equal(t, "AMZN", cfg.Layout.DefaultContent["window5"])
	assert.Equal(t, "TSLA", cfg.Layout.FallbackContent)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, Validate(cfg))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	path := filepath.Join(dir, configFileName)
	assert.FileExists(t, path)
	assert.Equal(t, path, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().Layout, cfg.Layout)
	assert.Equal(t, DefaultPalette(), cfg.Appearance.Palette)
}

func TestManager_LoadNormalizesFileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[layout]
split_percentage = 60
fallback_content = " ibm "

[layout.default_content]
window2 = "tsla"

[logging]
level = "DEBUG"
format = "weird"

[appearance.palette]
accent = "#ff00ff"
`)
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 60, cfg.Layout.SplitPercentage, 0)
	assert.InDelta(t, 80, cfg.Layout.CornerSplitPercentage, 0)
	assert.Equal(t, "IBM", cfg.Layout.FallbackContent)
	assert.Equal(t, "TSLA", cfg.Layout.DefaultContent["window2"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "#ff00ff", cfg.Appearance.Palette.Accent)
	assert.Equal(t, DefaultPalette().Border, cfg.Appearance.Palette.Border)
}

func TestManager_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOSAIC_LAYOUT_CORNER_SPLIT_PERCENTAGE", "70")
	t.Setenv("MOSAIC_LOG_LEVEL", "warn")

	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 70, cfg.Layout.CornerSplitPercentage, 0)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[layout]
split_percentage = 100
min_split_percentage = 60

[layout.default_content]
window9 = "AAPL"

[appearance.palette]
text = "white"
`)
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "layout.split_percentage")
	assert.Contains(t, msg, "layout.min_split_percentage")
	assert.Contains(t, msg, `"window9"`)
	assert.Contains(t, msg, "appearance.palette.text")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr, err := NewManagerForDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.DefaultContent["window1"] = "IBM"
	assert.Equal(t, "AAPL", mgr.Get().Layout.DefaultContent["window1"])
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(cfg *Config) { got = cfg })

	writeConfig(t, dir, "[layout]\nsplit_percentage = 40\n")
	require.NoError(t, mgr.Reload())
	require.NotNil(t, got)
	assert.InDelta(t, 40, got.Layout.SplitPercentage, 0)

	// An invalid edit keeps the previous config.
	got = nil
	writeConfig(t, dir, "[layout]\nsplit_percentage = -5\n")
	require.Error(t, mgr.Reload())
	assert.Nil(t, got)
	assert.InDelta(t, 40, mgr.Get().Layout.SplitPercentage, 0)
}

func TestManager_ReloadSkipsUnchangedConfig(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	writeConfig(t, dir, "[layout]\nsplit_percentage = 45\n")
	require.NoError(t, mgr.Load())

	calls := 0
	mgr.OnConfigChange(func(*Config) { calls++ })

	require.NoError(t, mgr.Reload())
	assert.Equal(t, 0, calls)

	writeConfig(t, dir, "[layout]\nsplit_percentage = 55\n")
	require.NoError(t, mgr.Reload())
	assert.Equal(t, 1, calls)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, `"corner_split_percentage"`)
	assert.Contains(t, schema, `"default_content"`)
	assert.Contains(t, schema, `"surface_variant"`)
	assert.Contains(t, schema, "Mosaic Configuration")
}

func TestGetXDGDirs(t *testing.T) {
	t.Setenv(devDirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg/mosaic", dirs.ConfigHome)
	assert.Equal(t, "/tmp/state/mosaic", dirs.StateHome)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/mosaic/logs", logDir)

	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	manDir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data/man/man1", manDir)
}

func TestGetXDGDirs_DevDir(t *testing.T) {
	dev := t.TempDir()
	t.Setenv(devDirEnv, dev)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, dev, dirs.ConfigHome)
	assert.Equal(t, dev, dirs.StateHome)

	file, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dev, configFileName), file)
}

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestEncodeTOML_SortedSections(t *testing.T) {
	data, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)

	sections := sectionHeaders(string(data))
	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		prev, cur := strings.Trim(sections[i-1], "[]"), strings.Trim(sections[i], "[]")
		assert.LessOrEqual(t, prev, cur)
	}
	assert.Less(t, slices.Index(sections, "[appearance]"), slices.Index(sections, "[appearance.palette]"))
	assert.Contains(t, string(data), "corner_split_percentage = 80")
}

func TestWriteConfigOrdered_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)

	cfg := DefaultConfig()
	cfg.Layout.SplitPercentage = 60
	cfg.Layout.DefaultContent["window3"] = "IBM"
	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# mosaic configuration"))

	var got Config
	require.NoError(t, toml.Unmarshal(data, &got))
	assert.Equal(t, *cfg, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
	assert.Equal(t, configFileName, entries[0].Name())
}
