package cli

import (
	"fmt"
	"io"

	"github.com/mmcdole/flick/internal/lists"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(configPath(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			printHistory(cmd.OutOrStdout(), a.history)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(configPath(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.history.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared")
			return nil
		},
	})
	return cmd
}

func printHistory(w io.Writer, h *lists.History) {
	for _, q := range h.Entries() {
		fmt.Fprintln(w, q)
	}
}

func newFavoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"favs"},
		Short:   "List favorite movies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(configPath(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			styled := isTerminal(out)
			if a.favorites.Len() == 0 && styled {
				fmt.Fprintln(out, "No favorites yet")
				return nil
			}
			printItems(out, a.favorites.Items(), styled)
			return nil
		},
	}
}
