package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"warp/internal/adapters/editor"
	"warp/internal/application/commands"
)

var openCmd = &cobra.Command{
	Use:   "open [shortcut]",
	Short: "Open a bookmarked directory in the editor",
	Long: `Resolve a shortcut and open the directory in $EDITOR. Without a
shortcut the most-used directory is opened.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shortcut := ""
		if len(args) > 0 {
			shortcut = args[0]
		}

		resolve := commands.NewResolveCommand(store, history, shortcut, "", increment)
		result, err := resolve.Execute(context.Background())
		if err != nil {
			return err
		}

		report(result.Diagnostics)
		if result.Path == "" {
			os.Exit(1)
		}

		return editor.NewOpener().Open(result.Path)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
