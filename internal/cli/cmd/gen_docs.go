package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/mosaic/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat knows where a format goes by default and how to write it.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
	hint       string
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir string) error {
			now := time.Now()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "MOSAIC",
				Section: "1",
				Source:  "mosaic " + buildInfo.Version,
				Manual:  "Mosaic Manual",
				Date:    &now,
			}, dir)
		},
		hint: "Run 'mandb' if 'man mosaic' does not find the pages yet.",
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Generate reference documentation from the command tree.

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is set, markdown
goes to ./docs.

Examples:
  mosaic gen-docs
  mosaic gen-docs --format markdown
  mosaic gen-docs --output ./man`,
	Annotations: map[string]string{annotationStandalone: "true"},
	RunE:        runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: "+strings.Join(formatNames(), ", "))
}

func formatNames() []string {
	names := make([]string, 0, len(docFormats))
	for name := range docFormats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use one of: %s)", genDocsFormat, strings.Join(formatNames(), ", "))
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true
	if err := format.generate(root, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s docs to %s\n", genDocsFormat, dir)
	printGenerated(out, dir, format.ext)
	if format.hint != "" {
		fmt.Fprintln(out, format.hint)
	}
	return nil
}

func printGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  %s\n", e.Name())
		}
	}
}
