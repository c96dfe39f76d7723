package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/mosaic/internal/cli"
	"github.com/bnema/mosaic/internal/cli/model"
	"github.com/bnema/mosaic/internal/domain/entity"
)

var (
	layoutActions  []string
	layoutWidth    int
	layoutHeight   int
	layoutNoRender bool
	layoutStrict   bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Apply scripted actions and print the resulting layout",
	Long: `Start from the default three-window dashboard, apply each --action in
order and print the resulting tree, bindings and a rendering.

Actions:
  select:<window>:<ticker>     bind a company to a window
  split:<window>[:row|column]  split a window (row = side by side)
  corner                       add a window beside the whole layout
  close:<window>               close a window
  maximize:<window>            maximize or restore a window
  arrange                      rebuild the layout into equal columns
  resize:<window>:<dir>        move a divider (grow, shrink, left, right, up, down)
  reset                        return to the default dashboard

Windows may be written as "window2" or just "2". Rejected actions are
reported and skipped unless --strict is set.

Examples:
  mosaic layout --action split:2:column --action corner
  mosaic layout -a close:1 -a arrange --width 100 --height 20`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().StringArrayVarP(&layoutActions, "action", "a", nil, "action to apply (repeatable)")
	layoutCmd.Flags().IntVar(&layoutWidth, "width", 96, "render width in cells (defaults to the terminal width)")
	layoutCmd.Flags().IntVar(&layoutHeight, "height", 18, "render height in cells")
	layoutCmd.Flags().BoolVar(&layoutNoRender, "no-render", false, "print the tree only")
	layoutCmd.Flags().BoolVar(&layoutStrict, "strict", false, "stop at the first rejected action")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}

	steps, err := cli.ParseSteps(layoutActions)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, step := range steps {
		if err := step.Run(app.Controller); err != nil {
			fmt.Fprintf(out, "%s %s: %s\n", app.Theme.WarningStyle.Render("rejected"), step, rejectionText(app, err))
			if layoutStrict {
				return fmt.Errorf("%s: %w", step, err)
			}
			continue
		}
		fmt.Fprintf(out, "%s %s\n", app.Theme.SuccessStyle.Render("applied"), step)
	}

	d := app.Controller.Dashboard()
	printDashboard(out, app, d)
	if !layoutNoRender {
		company := func(key string) *entity.Company {
			c, err := app.ContentUC.Describe(app.Ctx(), key)
			if err != nil {
				return nil
			}
			return c
		}
		width := layoutWidth
		if !cmd.Flags().Changed("width") {
			width = terminalWidth(width)
		}
		fmt.Fprintln(out, model.RenderDashboard(app.Theme, d, app.Controller.Focused(), company, width, layoutHeight))
	}
	return nil
}

// terminalWidth returns stdout's width when it is a terminal.
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// rejectionText prefers the notice the controller queued for the user.
func rejectionText(app *cli.App, err error) string {
	toasts := app.Toaster.Active()
	if len(toasts) > 0 {
		return toasts[len(toasts)-1].Message
	}
	return err.Error()
}

func printDashboard(w io.Writer, app *cli.App, d entity.Dashboard) {
	t := app.Theme
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", t.Subtle.Render("layout  "), entity.FormatTree(d.Layout))
	if d.IsMaximized() {
		fmt.Fprintf(w, "%s %s\n", t.Subtle.Render("maximized"), d.Maximized.WindowID)
		fmt.Fprintf(w, "%s %s\n", t.Subtle.Render("saved   "), entity.FormatTree(d.Maximized.SavedLayout))
	}
	fmt.Fprintf(w, "%s %d/%d  revision %d\n", t.Subtle.Render("windows "), d.WindowCount(), entity.MaxWindows, d.Revision)

	ids := make([]string, 0, len(d.Bindings))
	for id := range d.Bindings {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  %s %s\n", t.Highlight.Render(id), d.Bindings[entity.WindowID(id)])
	}
	fmt.Fprintln(w)
}
