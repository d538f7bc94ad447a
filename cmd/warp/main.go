package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"warp/internal/adapters/editor"
	"warp/internal/adapters/filesystem"
	"warp/internal/adapters/tui"
	"warp/internal/application/commands"
	"warp/internal/config"
)

func main() {
	store := filesystem.NewStore(config.StorePath())
	history := filesystem.NewHistory(config.HistoryPath())
	editorOpener := editor.NewOpener()

	app := tui.NewApp(store, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	selected := app.Selected()
	if selected == nil {
		os.Exit(1)
	}

	// Resolving by shortcut bumps the priority and records the jump, the
	// same as going there from the command line. Records without a
	// shortcut get printed as-is.
	if len(selected.Shortcuts) == 0 {
		fmt.Println(selected.Path)
		return
	}

	resolve := commands.NewResolveCommand(store, history, selected.Shortcuts[0], "", config.Increment())
	result, err := resolve.Execute(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result.Path)
}
