// Package cli wires the configuration, store and content client into the
// flick command tree: the interactive browser and a few one-shot commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flick/internal/adapter"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/mmcdole/flick/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Execute runs the command tree
func Execute(version string) error {
	root := newRootCmd(version)
	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "flick",
		Short:         "Browse and search movies from the terminal",
		Long:          "Flick: search, browse and filter movies from TMDB in a terminal UI.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, version)
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to config file (default: ~/.config/flick/config.yaml)")
	root.Flags().String("category", "", "Initial category: popular, top_rated, now_playing or favorites")

	root.AddCommand(
		newSearchCmd(),
		newDiscoverCmd(),
		newHistoryCmd(),
		newFavoritesCmd(),
		newConfigCmd(),
	)
	return root
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}

// configPath reads the persistent --config flag as seen by cmd
func configPath(cmd *cobra.Command) string {
	return mustGetStringFlag(cmd, "config")
}

func runTUI(cmd *cobra.Command, version string) error {
	a, err := loadApp(configPath(cmd), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting flick", "version", version)

	if !a.cfg.IsConfigured() {
		return runSetup(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg, configPath(cmd))
	}

	categoryName := mustGetStringFlag(cmd, "category")
	if categoryName == "" {
		categoryName = a.cfg.UI.DefaultCategory
	}
	category, err := domain.ParseCategory(categoryName)
	if err != nil {
		return err
	}

	model := tui.NewModel(a.session(category), a.kv, tui.Options{
		ImageBaseURL: a.cfg.API.ImageBaseURL,
		Theme:        a.cfg.UI.Theme,
		Logger:       a.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	a.logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}

// runSetup asks for an API key and writes it to the config file
func runSetup(in io.Reader, out io.Writer, cfg *adapter.Config, path string) error {
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("%w: set FLICK_API_KEY or run `flick config init --api-key KEY`", domain.ErrNotConfigured)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Welcome to Flick!")
	fmt.Fprintln(out)

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Enter your TMDB API key (https://www.themoviedb.org/settings/api): ")
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			return fmt.Errorf("failed to read input: %w", err)
		}
		cfg.API.Key = strings.TrimSpace(input)
		if cfg.API.Key != "" {
			break
		}
		fmt.Fprintln(out, "API key cannot be empty. Please try again.")
	}

	if err := adapter.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✓ Configuration saved!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run flick again to start browsing.")
	return nil
}
