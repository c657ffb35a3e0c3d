package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"notelink/internal/adapters/tui/views"
	"notelink/internal/application"
	"notelink/internal/application/commands"
	"notelink/internal/domain"
	"notelink/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewProgress ViewState = iota
	ViewLinker
	ViewHelp
)

// App is the main TUI application model. It refreshes the title index
// (showing rebuild progress), scans the active document, and hands the
// occurrences to the linker view for review.
type App struct {
	collection ports.DocumentCollection
	content    ports.ContentProvider
	index      *domain.TitleIndex
	cache      ports.IndexCache
	cfg        application.ScanConfig
	path       string

	state    ViewState
	linker   *views.LinkerModel
	progress *views.ProgressModel
	help     *views.HelpModel

	cancel  context.CancelFunc
	updates chan views.ProgressMsg

	width  int
	height int
}

// NewApp creates a new TUI application for the document at path.
func NewApp(collection ports.DocumentCollection, content ports.ContentProvider, index *domain.TitleIndex, cache ports.IndexCache, opener ports.NoteOpener, cfg application.ScanConfig, path string, pageSize int) *App {
	return &App{
		collection: collection,
		content:    content,
		index:      index,
		cache:      cache,
		cfg:        cfg,
		path:       path,
		state:      ViewProgress,
		linker:     views.NewLinkerModel(content, opener, path, cfg, pageSize),
		progress:   views.NewProgressModel(),
		help:       views.NewHelpModel(),
	}
}

type refreshDoneMsg struct{}

type refreshFailedMsg struct{ err error }

type progressDrainedMsg struct{}

type scanDoneMsg struct {
	occurrences []application.Occurrence
}

// Init kicks off the index refresh and starts draining its progress.
func (a *App) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.updates = make(chan views.ProgressMsg, 8)
	return tea.Batch(a.runRefresh(ctx), a.listenProgress())
}

// runRefresh rebuilds or adopts the index in the background.
func (a *App) runRefresh(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		refresh := commands.NewRefreshCommand(a.collection, a.index, a.cache, a.cfg)
		refresh.Progress = domain.ProgressFunc(func(percent int, message string) {
			select {
			case a.updates <- views.ProgressMsg{Percent: percent, Message: message}:
			default: // Never block the rebuild on a slow UI
			}
		})
		err := refresh.Execute(ctx)
		close(a.updates)
		if err != nil {
			return refreshFailedMsg{err: err}
		}
		return refreshDoneMsg{}
	}
}

// listenProgress forwards one progress report per invocation.
func (a *App) listenProgress() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-a.updates
		if !ok {
			return progressDrainedMsg{}
		}
		return update
	}
}

// runScan scans the active document against the refreshed index.
func (a *App) runScan() tea.Cmd {
	return func() tea.Msg {
		scan := commands.NewScanCommand(a.index, a.content, a.path, a.cfg)
		occurrences, err := scan.Execute(context.Background())
		if errors.Is(err, domain.ErrEmptyResult) {
			return scanDoneMsg{}
		}
		if err != nil {
			return views.ErrMsg{Err: err}
		}
		return scanDoneMsg{occurrences: occurrences}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.linker.SetSize(msg.Width, msg.Height)
		a.progress.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.ProgressMsg:
		_, cmd := a.progress.Update(msg)
		return a, tea.Batch(cmd, a.listenProgress())

	case refreshDoneMsg:
		return a, a.runScan()

	case refreshFailedMsg:
		// A cancelled rebuild leaves the index stale; anything else is
		// surfaced in the linker view.
		if errors.Is(msg.err, context.Canceled) {
			return a, tea.Quit
		}
		a.state = ViewLinker
		_, cmd := a.linker.Update(views.ErrMsg{Err: msg.err})
		return a, cmd

	case scanDoneMsg:
		a.linker.SetOccurrences(msg.occurrences)
		a.state = ViewLinker
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToLinkerMsg:
		a.state = ViewLinker
		return a, nil

	case tea.KeyMsg:
		if a.state == ViewProgress && (msg.String() == "q" || msg.String() == "ctrl+c") {
			a.cancel()
			return a, tea.Quit
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewProgress:
		_, cmd = a.progress.Update(msg)
	case ViewLinker:
		_, cmd = a.linker.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewProgress:
		return a.progress.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.linker.View()
	}
}
