package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"gen-docs", "--format", "markdown", "--output", dir})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		genDocsOutputDir, genDocsFormat = "", "man"
	})

	require.NoError(t, rootCmd.Execute())

	for _, name := range []string{"mosaic.md", "mosaic_layout.md", "mosaic_config_show.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, out.String(), "mosaic_layout.md")
}

func TestGenDocs_UnknownFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"gen-docs", "--format", "html", "--output", t.TempDir()})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		genDocsOutputDir, genDocsFormat = "", "man"
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
