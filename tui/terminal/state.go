package terminal

import (
	"encoding/json"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mrred-labs/redterm/app"
	"github.com/mrred-labs/redterm/domain"
	"github.com/mrred-labs/redterm/tui/common"
)

// maxCommentDepth caps how deep the rendered comment tree goes. Replies
// below the cap stay in the fetched flat list but are not expanded.
const maxCommentDepth = 5

// Deps holds the collaborators the terminal needs. Plain struct, not a DI
// container.
type Deps struct {
	Feed      app.FeedService
	Publish   app.PublishService
	Reactions app.ReactionService
	Comments  app.CommentService
	Session   app.Session
	Log       *zap.Logger
}

// feedView identifies one independently paginated stream of posts.
type feedView int

const (
	viewFeed feedView = iota // personalized "for you" feed
	viewOwn                  // the user's own posts
)

func (v feedView) String() string {
	if v == viewOwn {
		return "own-posts"
	}
	return "feed"
}

// displayMode selects what the output area renders below the last command.
type displayMode int

const (
	displayNone displayMode = iota
	displayPosts
	displayComments
)

// reactionState tracks the optimistic like state for one rendered post.
type reactionState struct {
	liked bool
	count uint
}

// --- Messages ---

// feedLoadedMsg is sent when a feed page fetch completes.
type feedLoadedMsg struct {
	view  feedView
	gen   int
	first bool // loadFirst vs loadMore
	page  app.RawPage
}

// feedErrorMsg is sent when a feed page fetch fails.
type feedErrorMsg struct {
	view  feedView
	gen   int
	first bool
	err   error
}

// postCreatedMsg is sent after a create-post attempt.
type postCreatedMsg struct {
	raw json.RawMessage
	err error
}

// reactionResultMsg is sent after a reaction toggle resolves.
type reactionResultMsg struct {
	postID   string
	wasLiked bool
	err      error
}

// commentsLoadedMsg is sent after a comment thread fetch.
type commentsLoadedMsg struct {
	postID string
	thread app.Thread
	err    error
}

// RequestUploadMsg asks the root model to open the media upload modal.
// The post text is carried along and the actual post creation is deferred
// until the upload completes.
type RequestUploadMsg struct {
	Content string
}

// UploadFinishedMsg resumes a deferred create-post once the upload modal
// hands back a media handle.
type UploadFinishedMsg struct {
	Content string
	Handle  app.MediaHandle
}

// UploadCancelledMsg aborts a deferred create-post.
type UploadCancelledMsg struct{}

// ExitMsg is emitted by the exit verb; leaving command mode is the UI
// layer's concern.
type ExitMsg struct{}

// --- Model ---

// Model is the command-driven terminal: it parses input lines, dispatches
// them to the feed/reaction/comment/upload collaborators, and renders the
// textual result. Cross-command state is limited to the command history,
// the last output, and the data owned by the pagers.
type Model struct {
	deps Deps
	keys common.KeyMap

	input    textinput.Model
	spinner  spinner.Model
	inflight int // async operations awaiting a result message

	history    []string
	lastOutput string
	outputErr  bool

	display displayMode
	active  feedView
	feed    pager
	own     pager

	reactions    map[string]*reactionState
	reactionBusy map[string]bool

	comments       []domain.CommentNode
	commentSubject *domain.Post

	width  int
	height int
}

// New creates a terminal model with injected dependencies.
func New(deps Deps) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type 'help' for commands"
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF2B2B"))

	return Model{
		deps:         deps,
		keys:         common.DefaultKeyMap(),
		input:        ti,
		spinner:      s,
		reactions:    make(map[string]*reactionState),
		reactionBusy: make(map[string]bool),
	}
}

// History returns the append-only log of raw input lines.
func (m Model) History() []string {
	return m.history
}

// LastOutput returns the most recent command result text.
func (m Model) LastOutput() string {
	return m.lastOutput
}

// activePager returns the pager for the currently displayed feed view.
func (m *Model) activePager() *pager {
	if m.active == viewOwn {
		return &m.own
	}
	return &m.feed
}

// findPost looks a post up in the current view state: the active pager's
// items first, then the loaded comment thread.
func (m Model) findPost(id string) (domain.Post, bool) {
	for _, p := range m.feed.items {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range m.own.items {
		if p.ID == id {
			return p, true
		}
	}
	if m.commentSubject != nil && m.commentSubject.ID == id {
		return *m.commentSubject, true
	}
	var found domain.Post
	var ok bool
	var walk func(nodes []domain.CommentNode)
	walk = func(nodes []domain.CommentNode) {
		for _, n := range nodes {
			if n.Post.ID == id {
				found, ok = n.Post, true
				return
			}
			walk(n.Children)
		}
	}
	walk(m.comments)
	return found, ok
}
