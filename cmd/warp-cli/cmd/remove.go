package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"warp/internal/application/commands"
)

var removeCmd = &cobra.Command{
	Use:   "remove <shortcut>",
	Short: "Remove a shortcut",
	Long: `Remove one shortcut from the store. The directory record stays as
long as other shortcuts still point to it; removing the last shortcut
removes the record too.`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRemoveCommand(store, args[0]).Execute(context.Background())
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
	rootCmd.AddCommand(removeCmd)
}
