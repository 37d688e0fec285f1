package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mrred-labs/redterm/app"
	"github.com/mrred-labs/redterm/tui/terminal"
	"github.com/mrred-labs/redterm/tui/upload"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed      app.FeedService
	Publish   app.PublishService
	Reactions app.ReactionService
	Comments  app.CommentService
	Uploader  app.MediaUploader
	Session   app.Session
	Log       *zap.Logger
}

type activeView int

const (
	terminalView activeView = iota
	uploadView
)

// App is the root Bubble Tea model. It routes between the command terminal
// and the media upload modal.
type App struct {
	deps     Deps
	active   activeView
	terminal terminal.Model
	upload   *upload.Model
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: terminalView,
		terminal: terminal.New(terminal.Deps{
			Feed:      deps.Feed,
			Publish:   deps.Publish,
			Reactions: deps.Reactions,
			Comments:  deps.Comments,
			Session:   deps.Session,
			Log:       deps.Log,
		}),
	}
}

// Init delegates to the terminal model.
func (a App) Init() tea.Cmd {
	return a.terminal.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case terminal.ExitMsg:
		return a, tea.Quit

	case terminal.RequestUploadMsg:
		// create-post --media defers publication until the upload resolves.
		a.active = uploadView
		a.upload = upload.New(a.deps.Uploader, a.deps.Log, msg.Content)
		return a, a.upload.Init()

	case upload.DoneMsg:
		a.active = terminalView
		a.upload = nil
		if msg.Cancelled {
			var cmd tea.Cmd
			a.terminal, cmd = a.terminal.Update(terminal.UploadCancelledMsg{})
			return a, cmd
		}
		var cmd tea.Cmd
		a.terminal, cmd = a.terminal.Update(terminal.UploadFinishedMsg{
			Content: msg.Content,
			Handle:  msg.Handle,
		})
		return a, cmd
	}

	// Delegate to the active sub-model.
	switch a.active {
	case uploadView:
		updated, cmd := a.upload.Update(msg)
		a.upload = updated
		return a, cmd
	default:
		updated, cmd := a.terminal.Update(msg)
		a.terminal = updated
		return a, cmd
	}
}

// View renders the active sub-model.
func (a App) View() string {
	if a.active == uploadView && a.upload != nil {
		return a.upload.View()
	}
	return a.terminal.View()
}
