package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"warp/internal/application/commands"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the store, aligned in columns",
	Long: `Print every record in the store with paths, shortcuts and priorities
aligned in columns. Reads only; priorities are not bumped.`,
	Aliases: []string{"ls", "list"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := commands.NewStateCommand(store).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var popCmd = &cobra.Command{
	Use:   "pop",
	Short: "Step back to the previously visited directory",
	Long: `Drop the newest jump from the history and print the directory
visited before it. Entries whose directories no longer exist are pruned
along the way.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := commands.NewPopCommand(history).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the entire store",
	Long:  `Erase every record from the store. There is no undo.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := commands.NewClearCommand(store).Execute(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Cleared %s\n", store.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(popCmd)
	rootCmd.AddCommand(clearCmd)
}
