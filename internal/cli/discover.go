package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/flick/internal/browse"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/spf13/cobra"
)

type discoverOptions struct {
	genres    []string
	yearFrom  int
	yearTo    int
	minRating float64
	page      int
}

func newDiscoverCmd() *cobra.Command {
	var opts discoverOptions

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List movies by genre, release year and rating",
		Example: `  flick discover --genre action,thriller --from 1990 --to 1999
  flick discover --genre "sci fi" --min-rating 7.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(configPath(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.requireKey(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return runDiscover(cmd.Context(), a.client, opts, out, isTerminal(out))
		},
	}

	cmd.Flags().StringSliceVarP(&opts.genres, "genre", "g", nil, "Genre names, fuzzy matched (repeatable or comma separated)")
	cmd.Flags().IntVar(&opts.yearFrom, "from", 0, "Earliest release year")
	cmd.Flags().IntVar(&opts.yearTo, "to", 0, "Latest release year")
	cmd.Flags().Float64Var(&opts.minRating, "min-rating", 0, "Minimum average rating (0-10, half steps)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Result page")
	return cmd
}

func runDiscover(ctx context.Context, gw domain.ContentGateway, opts discoverOptions, out io.Writer, styled bool) error {
	facets := domain.Facets{
		YearFrom:  max(opts.yearFrom, 0),
		YearTo:    max(opts.yearTo, 0),
		MinRating: browse.SnapRating(opts.minRating),
	}

	if len(opts.genres) > 0 {
		available, err := gw.Genres(ctx)
		if err != nil {
			return fmt.Errorf("failed to load genres: %w", err)
		}
		facets.Genres, err = resolveGenres(opts.genres, available)
		if err != nil {
			return err
		}
	}

	if facets.IsZero() {
		return fmt.Errorf("at least one of --genre, --from, --to or --min-rating is required")
	}

	result, err := gw.Discover(ctx, facets, opts.page)
	if err != nil {
		return fmt.Errorf("failed to load filtered movies: %w", err)
	}

	printItems(out, result.Items, styled)
	printPageFooter(out, result, styled)
	return nil
}

// resolveGenres maps user supplied genre names to ids. Exact names (case
// insensitive) win; otherwise the closest fuzzy match is taken.
func resolveGenres(names []string, available []domain.Genre) ([]int, error) {
	targets := make([]string, len(available))
	for i, g := range available {
		targets[i] = g.Name
	}

	var ids []int
	seen := make(map[int]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		idx := -1
		for i, g := range available {
			if strings.EqualFold(g.Name, name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			matches := fuzzy.RankFindFold(name, targets)
			if len(matches) == 0 {
				return nil, fmt.Errorf("unknown genre %q", name)
			}
			sort.Sort(matches)
			idx = matches[0].OriginalIndex
		}

		if id := available[idx].ID; !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}
