package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mkotturi/mdscope/internal/app"
	"github.com/mkotturi/mdscope/internal/storage"
	"github.com/mkotturi/mdscope/internal/theme"
	"github.com/mkotturi/mdscope/internal/viewer"
)

var version = "0.1.0"

func main() {
	var (
		themeName   string
		lightMode   bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:   "mdscope [file|url]",
		Short: "A terminal Markdown viewer",
		Long: `mdscope views Markdown documents in the terminal: local files,
remote URLs, and README files straight off GitHub, GitLab, BitBucket,
or Codeberg via owner/repo shorthand.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("mdscope %s\n", version)
				return nil
			}

			var start string
			if len(args) > 0 {
				start = args[0]
			}

			// Not a terminal: render once to stdout and exit, so mdscope
			// works in pipelines.
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				if start == "" {
					return fmt.Errorf("stdout is not a terminal; pass a file or URL to render")
				}
				return renderToStdout(start)
			}

			m := app.New(start)

			// Flags override whatever the config file applied.
			if themeName != "" && !theme.Set(themeName) {
				return fmt.Errorf("unknown theme: %s", themeName)
			}
			if lightMode {
				m.ForceLightMode()
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)

			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "color theme (default, gruvbox, nord, paper)")
	cmd.Flags().BoolVar(&lightMode, "light", false, "render documents for a light terminal background")
	cmd.Flags().BoolVar(&showVersion, "version", false, "show version")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// renderToStdout loads a document and writes it, plainly styled, to a
// non-terminal stdout.
func renderToStdout(start string) error {
	cfg, err := storage.LoadConfig()
	if err != nil {
		def := storage.DefaultConfig()
		cfg = &def
	}

	loader := viewer.NewLoader(viewer.NewFetcher(), cfg)
	doc, err := loader.Load(context.Background(), app.ParseUserLocation(start))
	if err != nil {
		return err
	}

	fmt.Print(viewer.Render(doc.Markdown, 84, "notty"))
	return nil
}
