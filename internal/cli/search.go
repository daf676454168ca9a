package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mmcdole/flick/internal/domain"
	"github.com/mmcdole/flick/internal/lists"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search movies by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(configPath(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.requireKey(); err != nil {
				return err
			}

			page, _ := cmd.Flags().GetInt("page")
			out := cmd.OutOrStdout()
			return runSearch(cmd.Context(), a.client, a.history, a.logger, strings.Join(args, " "), page, out, isTerminal(out))
		},
	}
	cmd.Flags().IntP("page", "p", 1, "Result page")
	return cmd
}

// runSearch prints one page of results. A non-empty first page is
// recorded in the search history, as in the browser.
func runSearch(ctx context.Context, gw domain.ContentGateway, history *lists.History, logger *slog.Logger,
	query string, page int, out io.Writer, styled bool) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ErrEmptyQuery
	}

	result, err := gw.Search(ctx, query, page)
	if err != nil {
		return fmt.Errorf("failed to fetch movies: %w", err)
	}

	if result.Page <= 1 && !result.Empty() {
		if err := history.Record(query); err != nil {
			logger.Warn("failed to record search history", "error", err)
		}
	}

	printItems(out, result.Items, styled)
	printPageFooter(out, result, styled)
	return nil
}
