package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"warp/internal/adapters/sqlite"
	"warp/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search the store",
	Long: `Search bookmarked directories by path or shortcut. Results are
ranked by relevance, with usage priority breaking ties.

Examples:
  warp-cli search music
  warp-cli search proj`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := sqlite.NewIndex(store.Path())
		if err := index.Open(); err != nil {
			return err
		}
		defer index.Close()

		results, err := commands.NewSearchCommand(store, index, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s  %s\n", r.Path, strings.Join(r.Shortcuts, " "))
		}
		return nil
	},
}

var topN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most-used directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index := sqlite.NewIndex(store.Path())
		if err := index.Open(); err != nil {
			return err
		}
		defer index.Close()

		records, err := commands.NewTopCommand(store, index, topN).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, r := range records {
			fmt.Printf("%s  %s  %d\n", r.Path, strings.Join(r.Shortcuts, " "), r.Priority)
		}
		return nil
	},
}

func init() {
	topCmd.Flags().IntVarP(&topN, "count", "n", 10, "how many directories to list")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(topCmd)
}
