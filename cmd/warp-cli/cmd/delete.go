package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warp/internal/application/commands"
	"warp/internal/domain"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [path]",
	Short: "Delete a directory's record",
	Long: `Delete the record for a directory, all of its shortcuts included.
Without an argument the current directory's record is deleted.

Examples:
  warp-cli delete ~/code/old-project
  warp-cli delete           (deletes the current directory's record)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		path := cwd
		if len(args) > 0 {
			path = args[0]
		}
		path = domain.Normalize(path, cwd)

		result, err := commands.NewDeleteCommand(store, path).Execute(context.Background())
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
	rootCmd.AddCommand(deleteCmd)
}
