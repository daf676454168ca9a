package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/flick/internal/adapter"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := adapter.LoadConfig(configPath(cmd))
				if err != nil {
					return err
				}
				printConfig(cmd.OutOrStdout(), cfg)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				path := configPath(cmd)
				if path == "" {
					path = adapter.DefaultConfigFile()
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			},
		},
		newConfigInitCmd(),
	)
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := adapter.LoadConfig(configPath(cmd))
			if err != nil {
				return err
			}
			if key := mustGetStringFlag(cmd, "api-key"); key != "" {
				cfg.API.Key = key
			}

			path := configPath(cmd)
			if path == "" {
				path = adapter.DefaultConfigFile()
			}
			if err := adapter.SaveConfig(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("api-key", "", "TMDB API key to store")
	return cmd
}

func printConfig(w io.Writer, cfg *adapter.Config) {
	fmt.Fprintf(w, "api.key:              %s\n", maskKey(cfg.API.Key))
	fmt.Fprintf(w, "api.base_url:         %s\n", cfg.API.BaseURL)
	fmt.Fprintf(w, "api.image_base_url:   %s\n", cfg.API.ImageBaseURL)
	fmt.Fprintf(w, "api.timeout:          %s\n", cfg.API.Timeout)
	fmt.Fprintf(w, "search.debounce:      %s\n", cfg.Search.Debounce)
	fmt.Fprintf(w, "search.min_length:    %d\n", cfg.Search.MinLength)
	fmt.Fprintf(w, "search.history_size:  %d\n", cfg.Search.HistorySize)
	fmt.Fprintf(w, "store.path:           %s\n", cfg.Store.Path)
	fmt.Fprintf(w, "ui.theme:             %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "ui.default_category:  %s\n", cfg.UI.DefaultCategory)
	fmt.Fprintf(w, "logging.file:         %s\n", cfg.Logging.File)
	fmt.Fprintf(w, "logging.level:        %s\n", cfg.Logging.Level)
}

// maskKey hides all but the last four characters of an API key
func maskKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case len(key) <= 4:
		return strings.Repeat("*", len(key))
	default:
		return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
	}
}
