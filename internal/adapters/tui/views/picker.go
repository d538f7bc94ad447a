package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"warp/internal/adapters/tui/styles"
	"warp/internal/application"
	"warp/internal/application/commands"
	"warp/internal/domain"
	"warp/internal/ports"
)

// PickerKeyMap defines key bindings for the picker view
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Open   key.Binding
	Quit   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "jump"),
	),
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "open in editor"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// OpenEditorMsg asks the app to open a directory in the editor
type OpenEditorMsg struct {
	Path string
}

// PickerModel is the model for the directory picker: every record in the
// store, filtered live by a fuzzy query, most used first.
type PickerModel struct {
	store   ports.BookmarkStore
	input   textinput.Model
	records []domain.Record
	rows    []commands.SearchResult
	cursor  int
	loadErr error

	width  int
	height int

	selected *domain.Record
}

// NewPickerModel creates a new picker view model
func NewPickerModel(store ports.BookmarkStore) *PickerModel {
	input := textinput.New()
	input.Placeholder = "Filter..."
	input.Focus()

	return &PickerModel{
		store: store,
		input: input,
	}
}

// Init initializes the picker view
func (m *PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

// Selected returns the record chosen with enter, or nil if the picker was
// dismissed.
func (m *PickerModel) Selected() *domain.Record {
	return m.selected
}

type recordsLoadedMsg struct {
	records []domain.Record
	err     error
}

func (m *PickerModel) load() tea.Cmd {
	return func() tea.Msg {
		data, err := m.store.Load()
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		records, _ := application.Records(data)
		return recordsLoadedMsg{records: records}
	}
}

// Update handles messages for the picker view
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case recordsLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.records = msg.records
		m.filter()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Quit):
			m.selected = nil
			return m, tea.Quit

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.rows) {
				rec := m.rows[m.cursor].Record
				m.selected = &rec
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Open):
			if m.cursor >= 0 && m.cursor < len(m.rows) {
				path := m.rows[m.cursor].Path
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()
	return m, cmd
}

// filter recomputes the visible rows from the current query.
func (m *PickerModel) filter() {
	query := m.input.Value()
	if query == "" {
		// No query: everything, most used first.
		rows := make([]commands.SearchResult, 0, len(m.records))
		for _, r := range m.records {
			rows = append(rows, commands.SearchResult{Record: r})
		}
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Priority > rows[j].Priority
		})
		m.rows = rows
	} else {
		m.rows = commands.FuzzySort(m.records, query)
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the picker view
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Warp"))
	b.WriteString("\n")
	b.WriteString(styles.InputField.Render(m.input.View()))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(styles.ErrorMsg.Render(m.loadErr.Error()))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("No directories"))
		b.WriteString("\n")
	}

	visible := m.visibleRows()
	for i, row := range m.rows {
		if i >= visible {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("… %d more", len(m.rows)-visible)))
			b.WriteString("\n")
			break
		}

		line := fmt.Sprintf("%s  %s  %s",
			styles.RowPath.Render(row.Path),
			styles.RowShortcut.Render(strings.Join(row.Shortcuts, " ")),
			styles.RowPriority.Render(fmt.Sprintf("%d", row.Priority)),
		)
		if i == m.cursor {
			line = styles.RowSelected.Render("> " + row.Path + "  " + strings.Join(row.Shortcuts, " "))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())

	return styles.App.Render(b.String())
}

// SetSize updates the picker's dimensions.
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *PickerModel) visibleRows() int {
	// Input, title, help and padding eat about 8 lines.
	if m.height > 8 {
		return m.height - 8
	}
	return 10
}

func (m *PickerModel) helpView() string {
	parts := []string{
		styles.HelpKey.Render("enter") + styles.HelpDesc.Render(" jump"),
		styles.HelpKey.Render("ctrl+o") + styles.HelpDesc.Render(" editor"),
		styles.HelpKey.Render("esc") + styles.HelpDesc.Render(" quit"),
	}
	return strings.Join(parts, styles.MutedText.Render(" • "))
}
