package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"notelink/internal/adapters/tui/styles"
	"notelink/internal/application"
	"notelink/internal/application/commands"
	"notelink/internal/domain"
	"notelink/internal/ports"
)

// LinkerKeyMap defines key bindings for the linker view
type LinkerKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectPage key.Binding
	Clear      key.Binding
	Copy       key.Binding
	Open       key.Binding
	Apply      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var LinkerKeys = LinkerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	SelectPage: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "select page"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open note"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// LinkerModel is the paginated occurrence browser. The user reviews each
// detected occurrence, picks a subset, and applies the rewrite.
type LinkerModel struct {
	content ports.ContentProvider
	opener  ports.NoteOpener // may be nil

	path        string
	cfg         application.ScanConfig
	occurrences []application.Occurrence
	selection   *Selection
	paginator   *Paginator

	width      int
	height     int
	message    string
	messageErr bool
}

// NewLinkerModel creates a new linker view model
func NewLinkerModel(content ports.ContentProvider, opener ports.NoteOpener, path string, cfg application.ScanConfig, pageSize int) *LinkerModel {
	return &LinkerModel{
		content:   content,
		opener:    opener,
		path:      path,
		cfg:       cfg,
		selection: NewSelection(),
		paginator: NewPaginator(pageSize),
	}
}

// Init initializes the linker view
func (m *LinkerModel) Init() tea.Cmd {
	return nil
}

// SetOccurrences loads a fresh scan result and resets paging and selection
func (m *LinkerModel) SetOccurrences(occs []application.Occurrence) {
	m.occurrences = occs
	m.selection.Clear()
	m.paginator.Reset()
	m.paginator.SetTotal(len(occs))
	m.message = ""
	m.messageErr = false
}

// Update handles messages for the linker view
func (m *LinkerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ApplySuccessMsg:
		m.message = fmt.Sprintf("Linked %d occurrence(s)", msg.Count)
		m.messageErr = false
		m.selection.Clear()
		return m, nil

	case ErrMsg:
		m.message = msg.Err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, LinkerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, LinkerKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, LinkerKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, LinkerKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, LinkerKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, LinkerKeys.NextPage):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, LinkerKeys.Toggle):
			if len(m.occurrences) > 0 {
				m.selection.Toggle(m.paginator.Cursor())
			}
			return m, nil

		case key.Matches(msg, LinkerKeys.SelectAll):
			m.selection.SelectAll(len(m.occurrences))
			return m, nil

		case key.Matches(msg, LinkerKeys.SelectPage):
			start, end := m.paginator.VisibleRange()
			m.selection.SelectRange(start, end)
			return m, nil

		case key.Matches(msg, LinkerKeys.Clear):
			m.selection.Clear()
			return m, nil

		case key.Matches(msg, LinkerKeys.Copy):
			if occ, ok := m.occurrenceAtCursor(); ok {
				clipboard.WriteAll(domain.Replacement(occ, m.cfg))
				m.message = "Link copied to clipboard"
				m.messageErr = false
			}
			return m, nil

		case key.Matches(msg, LinkerKeys.Open):
			if occ, ok := m.occurrenceAtCursor(); ok && m.opener != nil {
				if err := m.opener.OpenNote(occ.Path); err != nil {
					m.message = err.Error()
					m.messageErr = true
				}
			}
			return m, nil

		case key.Matches(msg, LinkerKeys.Apply):
			return m, m.apply()
		}
	}

	return m, nil
}

func (m *LinkerModel) occurrenceAtCursor() (application.Occurrence, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.occurrences) {
		return application.Occurrence{}, false
	}
	return m.occurrences[i], true
}

// apply runs the rewrite for the selected occurrences
func (m *LinkerModel) apply() tea.Cmd {
	if m.selection.Count() == 0 {
		m.message = "Nothing selected"
		m.messageErr = true
		return nil
	}

	selected := make([]application.Occurrence, 0, m.selection.Count())
	for _, i := range m.selection.Indices() {
		selected = append(selected, m.occurrences[i])
	}

	return func() tea.Msg {
		link := commands.NewLinkCommand(m.content, m.path, selected, m.cfg)
		if _, err := link.Execute(context.Background()); err != nil {
			return ErrMsg{Err: err}
		}
		return ApplySuccessMsg{Count: len(selected)}
	}
}

// View renders the linker view
func (m *LinkerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("notelink — " + m.path))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf(
		"%d occurrence(s) — page %d/%d — %d selected",
		len(m.occurrences),
		m.paginator.CurrentPage(),
		m.paginator.TotalPages(),
		m.selection.Count(),
	)))
	b.WriteString("\n\n")

	if len(m.occurrences) == 0 {
		b.WriteString(styles.MutedText.Render("No occurrences to review"))
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, i == m.paginator.Cursor()))
	}

	b.WriteString("\n")
	if m.message != "" {
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return styles.App.Render(b.String())
}

func (m *LinkerModel) renderRow(i int, atCursor bool) string {
	occ := m.occurrences[i]

	check := styles.CheckboxOff.Render("[ ]")
	if m.selection.Contains(i) {
		check = styles.CheckboxOn.Render("[x]")
	}

	head := fmt.Sprintf("%s %s → %s",
		check,
		styles.MatchText.Render(occ.MatchedText),
		styles.LinkTarget.Render(occ.Path),
	)
	if atCursor {
		head = styles.RowSelected.Render("▸ ") + head
	} else {
		head = "  " + head
	}

	snippet := "      " + styles.MutedText.Render("…"+occ.Context+"…")
	return head + "\n" + snippet + "\n"
}

func (m *LinkerModel) renderFooter() string {
	parts := []string{
		styles.HelpKey.Render("space") + " " + styles.HelpDesc.Render("toggle"),
		styles.HelpKey.Render("a/p/c") + " " + styles.HelpDesc.Render("all/page/clear"),
		styles.HelpKey.Render("h/l") + " " + styles.HelpDesc.Render("page"),
		styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("apply"),
		styles.HelpKey.Render("?") + " " + styles.HelpDesc.Render("help"),
		styles.HelpKey.Render("q") + " " + styles.HelpDesc.Render("quit"),
	}
	return strings.Join(parts, "  ")
}

// SetSize updates the view dimensions
func (m *LinkerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
