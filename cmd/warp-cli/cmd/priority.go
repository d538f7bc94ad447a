package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"warp/internal/application/commands"
)

var decrementCmd = &cobra.Command{
	Use:   "decrement <amount>",
	Short: "Lower every priority by a fixed amount",
	Long: `Lower every record's usage priority by the given amount, stopping
at zero. Useful for aging out directories that are no longer visited.`,
	Aliases: []string{"dec"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("amount must be a non-negative integer, got %q", args[0])
		}

		result, err := commands.NewDecrementCommand(store, uint32(amount)).Execute(context.Background())
		if err != nil {
			return err
		}

		report(result.Diagnostics)
		fmt.Println(result.Message)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every priority to zero",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewResetCommand(store).Execute(context.Background())
		if err != nil {
			return err
		}

		report(result.Diagnostics)
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decrementCmd)
	rootCmd.AddCommand(resetCmd)
}
