package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"notelink/internal/adapters/tui/styles"
)

// progressBarWidth is the rendered width of the rebuild progress bar.
const progressBarWidth = 40

// ProgressMsg carries one rebuild progress report into the view
type ProgressMsg struct {
	Percent int
	Message string
}

// ProgressModel shows rebuild progress while the index is repopulated
type ProgressModel struct {
	percent int
	message string
	width   int
	height  int
}

// NewProgressModel creates a new progress view model
func NewProgressModel() *ProgressModel {
	return &ProgressModel{message: "Indexing notes…"}
}

// Init initializes the progress view
func (m *ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress view
func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProgressMsg:
		m.percent = msg.Percent
		m.message = msg.Message
		return m, nil

	case tea.KeyMsg:
		// Any quit key cancels the rebuild via the app's context.
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the progress view
func (m *ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Building title index"))
	b.WriteString("\n\n")

	filled := m.percent * progressBarWidth / 100
	b.WriteString(styles.ProgressBar.Render(strings.Repeat("█", filled)))
	b.WriteString(styles.ProgressTrack.Render(strings.Repeat("░", progressBarWidth-filled)))
	b.WriteString(fmt.Sprintf(" %3d%%", m.percent))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render(m.message))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpKey.Render("q"))
	b.WriteString(styles.HelpDesc.Render(" cancel"))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *ProgressModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
