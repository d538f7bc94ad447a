package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"warp/internal/adapters/editor"
	"warp/internal/adapters/tui/views"
	"warp/internal/domain"
	"warp/internal/ports"
)

// App is the main TUI application model
type App struct {
	store  ports.BookmarkStore
	editor *editor.Opener

	picker *views.PickerModel

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil when no editor
// integration is wanted.
func NewApp(store ports.BookmarkStore, ed *editor.Opener) *App {
	return &App{
		store:  store,
		editor: ed,
		picker: views.NewPickerModel(store),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Selected returns the record picked by the user, or nil.
func (a *App) Selected() *domain.Record {
	return a.picker.Selected()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)
	}

	_, cmd := a.picker.Update(msg)
	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	return a.picker.View()
}
