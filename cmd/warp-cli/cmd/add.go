package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warp/internal/application/commands"
	"warp/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add [shortcut] [path]",
	Short: "Register a shortcut for a directory",
	Long: `Register a shortcut for a directory.

Missing arguments default to the current directory: with one argument the
shortcut names the current directory, with none the directory's own name
becomes the shortcut. Relative paths and ~ are expanded before saving.

Examples:
  warp-cli add proj ~/code/project
  warp-cli add proj        (bookmarks the current directory)
  warp-cli add             (current directory, named after itself)`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shortcut, path, err := shortcutAndPath(domain.KindAdd, args)
		if err != nil {
			return err
		}

		result, err := commands.NewAddCommand(store, shortcut, path, increment).Execute(context.Background())
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

// shortcutAndPath fills the command's missing slots from the working
// directory and normalizes the path.
func shortcutAndPath(kind domain.Kind, args []string) (string, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", err
	}

	c := domain.NewCommand(kind)
	for _, arg := range args {
		if err := c.Append(arg); err != nil {
			return "", "", err
		}
	}
	c.ApplyDefaults(cwd)

	return c.Shortcut, domain.Normalize(c.Path, cwd), nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
