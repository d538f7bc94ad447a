package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"warp/internal/adapters/filesystem"
	"warp/internal/application"
	"warp/internal/application/commands"
	"warp/internal/config"
	"warp/internal/ports"
)

var (
	storePath   string
	historyPath string
	increment   uint32

	store   ports.BookmarkStore
	history ports.History

	copyPath bool
	strict   bool
	noBump   bool
)

var rootCmd = &cobra.Command{
	Use:   "warp-cli [shortcut] [subpath]",
	Short: "Jump to bookmarked directories by shortcut",
	Long: `warp-cli resolves directory shortcuts and prints the target path.

With a shortcut it prints the bookmarked directory and bumps its usage
priority. With an extra argument it appends a subpath to the result.
Without arguments it prints the most-used directory. Shortcuts that match
nothing fall back to the most-used directory unless --strict is set.

The printed path is meant to feed a shell cd wrapper:

  w() { cd "$(warp-cli "$@")"; }`,
	Args: cobra.MaximumNArgs(2),
	RunE: runResolve,
}

var goCmd = &cobra.Command{
	Use:     "go [shortcut] [subpath]",
	Short:   "Resolve a shortcut to its directory",
	Long:    `Resolve a shortcut and print the target path. Same as running warp-cli with no subcommand.`,
	Args:    cobra.MaximumNArgs(2),
	RunE:    runResolve,
	Aliases: []string{"get"},
}

func runResolve(cmd *cobra.Command, args []string) error {
	shortcut, subpath := "", ""
	if len(args) > 0 {
		shortcut = args[0]
	}
	if len(args) > 1 {
		subpath = args[1]
	}

	incr := increment
	if noBump {
		incr = 0
	}

	resolve := commands.NewResolveCommand(store, history, shortcut, subpath, incr)
	resolve.Strict = strict
	result, err := resolve.Execute(context.Background())
	if err != nil {
		return err
	}

	application.Report(os.Stderr, result.Diagnostics)

	if result.Path == "" {
		os.Exit(1)
	}

	if copyPath {
		if err := clipboard.WriteAll(result.Path); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard: %v\n", err)
		}
	}
	fmt.Println(result.Path)
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", config.StorePath(), "path to the shortcut store")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", config.HistoryPath(), "path to the jump history")
	rootCmd.PersistentFlags().Uint32VarP(&increment, "increment", "i", config.Increment(), "priority bump per resolve")

	for _, c := range []*cobra.Command{rootCmd, goCmd} {
		c.Flags().BoolVarP(&copyPath, "copy", "c", false, "also copy the resolved path to the clipboard")
		c.Flags().BoolVar(&strict, "strict", false, "fail instead of falling back when the shortcut is unknown")
		c.Flags().BoolVar(&noBump, "no-bump", false, "resolve without changing usage priorities")
	}
	rootCmd.AddCommand(goCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = filesystem.NewStore(storePath)
		history = filesystem.NewHistory(historyPath)
		return nil
	}
}

// report prints diagnostics to stderr.
func report(diags []error) {
	application.Report(os.Stderr, diags)
}
