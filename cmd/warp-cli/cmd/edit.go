package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"warp/internal/application/commands"
	"warp/internal/domain"
)

var editCmd = &cobra.Command{
	Use:   "edit [shortcut] [path]",
	Short: "Re-point a shortcut to a different directory",
	Long: `Re-point an existing shortcut to a different directory. A shortcut
that does not exist yet is registered instead. Missing arguments default
to the current directory, like add.

Examples:
  warp-cli edit proj ~/code/new-location
  warp-cli edit proj        (re-points proj to the current directory)`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shortcut, path, err := shortcutAndPath(domain.KindEdit, args)
		if err != nil {
			return err
		}

		result, err := commands.NewEditCommand(store, shortcut, path, increment).Execute(context.Background())
		if err != nil {
			return err
		}

		report(result.Diagnostics)
		if result.Message != "" {
			fmt.Println(result.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
