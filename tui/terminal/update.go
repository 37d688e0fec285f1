package terminal

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mrred-labs/redterm/domain"
	"github.com/mrred-labs/redterm/tui/common"
	"github.com/mrred-labs/redterm/wire"
)

const helpText = `AVAILABLE COMMANDS:
  help                      show this list
  fetch-feed                load the personalized feed
  load-more-feed            load the next feed page
  fetch-posts               load your own posts
  create-post <text>        publish a text post
  create-post --media <text> publish a post with attached media
  like <post-id>            toggle your reaction on a post
  comments <post-id>        show the comment thread for a post
  whoami                    show session state
  clear                     clear history and output
  exit                      leave command mode`

// Init starts the spinner tick and the input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

// Update handles messages for the terminal view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 20)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Submit) {
			return m.submitLine()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case feedLoadedMsg:
		return m.handleFeedLoaded(msg)

	case feedErrorMsg:
		return m.handleFeedError(msg)

	case postCreatedMsg:
		m.inflight--
		if msg.err != nil {
			m.deps.Log.Warn("create post failed", zap.Error(msg.err))
			return m.withError(collaboratorMessage(msg.err)), nil
		}
		if p, ok := wire.Normalize(msg.raw); ok {
			return m.withOutput("POST CREATED: " + common.TruncateID(p.ID)), nil
		}
		return m.withOutput("POST CREATED."), nil

	case reactionResultMsg:
		return m.handleReactionResult(msg)

	case commentsLoadedMsg:
		return m.handleCommentsLoaded(msg)

	case UploadFinishedMsg:
		m.inflight++
		m = m.withOutput("MEDIA STORED. PUBLISHING POST...")
		return m, m.createMediaPost(msg.Content, msg.Handle)

	case UploadCancelledMsg:
		return m.withOutput("UPLOAD ABORTED."), nil
	}

	return m, nil
}

// submitLine consumes the current input line: parse, record, dispatch.
func (m Model) submitLine() (Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	cmd, ok := domain.ParseCommand(line)
	if !ok {
		// Blank input: silently ignored, no history entry.
		return m, nil
	}

	m.history = append(m.history, line)
	return m.dispatch(cmd)
}

// dispatch is the verb transition table. Every branch ends with lastOutput
// set, either here or in the result handler of the async work it starts.
func (m Model) dispatch(cmd domain.Command) (Model, tea.Cmd) {
	switch cmd.Verb {
	case "help":
		return m.withOutput(helpText), nil

	case "fetch-feed":
		return m.startFirstPage(viewFeed)

	case "fetch-posts":
		return m.startFirstPage(viewOwn)

	case "load-more-feed":
		return m.startNextPage()

	case "create-post":
		return m.startCreatePost(cmd)

	case "like":
		return m.startReaction(cmd)

	case "comments":
		return m.startComments(cmd)

	case "whoami":
		if !m.deps.Session.IsAuthenticated() {
			return m.withOutput("SESSION: UNAUTHENTICATED. CONNECT A WALLET TO PUBLISH."), nil
		}
		return m.withOutput("SESSION: AUTHENTICATED AS " + domain.TruncateAddress(m.deps.Session.WalletAddress())), nil

	case "clear":
		// History and output only; feed state is untouched.
		m.history = nil
		m.lastOutput = ""
		m.outputErr = false
		m.display = displayNone
		return m, nil

	case "exit":
		m = m.withOutput("LEAVING COMMAND MODE.")
		return m, func() tea.Msg { return ExitMsg{} }

	default:
		m.deps.Log.Info("unknown command", zap.String("verb", cmd.Verb))
		return m.withError(fmt.Sprintf("UNKNOWN COMMAND: %q. TYPE 'help'.", cmd.Verb)), nil
	}
}

func (m Model) startFirstPage(view feedView) (Model, tea.Cmd) {
	m.active = view
	m.display = displayPosts

	p := m.activePager()
	gen, ok := p.beginFirst()
	if !ok {
		return m.withOutput("FETCH ALREADY IN PROGRESS."), nil
	}

	m.inflight++
	m = m.withOutput("FETCHING " + view.String() + "...")
	return m, m.fetchFirstPage(view, gen)
}

func (m Model) startNextPage() (Model, tea.Cmd) {
	m.active = viewFeed
	m.display = displayPosts

	gen, cursor, ok := m.feed.beginMore()
	if !ok {
		if m.feed.loading {
			return m.withOutput("FETCH ALREADY IN PROGRESS."), nil
		}
		if !m.feed.loaded {
			return m.withOutput("NOTHING LOADED YET. RUN fetch-feed FIRST."), nil
		}
		return m.withOutput("END OF FEED. NO MORE DATA."), nil
	}

	m.inflight++
	m = m.withOutput("FETCHING NEXT PAGE...")
	return m, m.fetchNextPage(viewFeed, gen, cursor)
}

func (m Model) startCreatePost(cmd domain.Command) (Model, tea.Cmd) {
	if cmd.Argument == "" {
		return m.withError("MISSING ARGUMENT: create-post requires post text."), nil
	}
	if !m.deps.Session.IsAuthenticated() {
		return m.withError("ACCESS DENIED: " + domain.ErrNotAuthenticated.Error() + "."), nil
	}

	if cmd.HasFlag("--media") {
		// Post creation is deferred until the upload modal yields a handle.
		m = m.withOutput("OPENING MEDIA UPLOAD...")
		content := cmd.Argument
		return m, func() tea.Msg { return RequestUploadMsg{Content: content} }
	}

	m.inflight++
	m = m.withOutput("PUBLISHING POST...")
	return m, m.createTextPost(cmd.Argument)
}

func (m Model) startReaction(cmd domain.Command) (Model, tea.Cmd) {
	if cmd.Argument == "" {
		return m.withError("MISSING ARGUMENT: like requires a post id."), nil
	}
	if !m.deps.Session.IsAuthenticated() {
		return m.withError("ACCESS DENIED: " + domain.ErrNotAuthenticated.Error() + "."), nil
	}
	if _, ok := m.findPost(cmd.Argument); !ok {
		return m.withError("UNKNOWN POST: " + cmd.Argument), nil
	}
	if m.reactionBusy[cmd.Argument] {
		return m.withOutput("REACTION ALREADY IN FLIGHT FOR THIS POST."), nil
	}

	wasLiked := m.applyReactionToggle(cmd.Argument)
	m.reactionBusy[cmd.Argument] = true
	m.inflight++
	m = m.withOutput("TOGGLING REACTION...")
	return m, m.toggleReaction(cmd.Argument, wasLiked)
}

func (m Model) startComments(cmd domain.Command) (Model, tea.Cmd) {
	if cmd.Argument == "" {
		return m.withError("MISSING ARGUMENT: comments requires a post id."), nil
	}

	m.inflight++
	m = m.withOutput("FETCHING COMMENT THREAD...")
	return m, m.fetchComments(cmd.Argument)
}

// --- Result handlers ---

func (m Model) handleFeedLoaded(msg feedLoadedMsg) (Model, tea.Cmd) {
	m.inflight--

	p := &m.feed
	if msg.view == viewOwn {
		p = &m.own
	}
	if p.stale(msg.gen) {
		// Superseded by a newer loadFirst; discard on arrival.
		m.deps.Log.Info("discarding stale feed page", zap.String("view", msg.view.String()))
		return m, nil
	}

	posts, dropped := wire.NormalizeAll(msg.page.Items)
	if dropped > 0 {
		m.deps.Log.Warn("dropped invalid feed items",
			zap.String("view", msg.view.String()),
			zap.Int("dropped", dropped))
	}

	if msg.first {
		p.applyFirst(posts, msg.page.NextCursor)
	} else {
		p.applyMore(posts, msg.page.NextCursor)
	}
	m.seedReactions(posts)

	if len(p.items) == 0 {
		return m.withOutput("NO POSTS FOUND IN DATABASE."), nil
	}

	out := fmt.Sprintf("LOADED %d POSTS.", len(posts))
	if p.hasMore {
		out += " MORE AVAILABLE (load-more-feed)."
	} else if !msg.first {
		out += " END OF FEED."
	}
	return m.withOutput(out), nil
}

func (m Model) handleFeedError(msg feedErrorMsg) (Model, tea.Cmd) {
	m.inflight--

	p := &m.feed
	if msg.view == viewOwn {
		p = &m.own
	}
	if p.stale(msg.gen) {
		return m, nil
	}

	// Existing items stay untouched on failure.
	p.fail()
	m.deps.Log.Warn("feed fetch failed", zap.String("view", msg.view.String()), zap.Error(msg.err))
	return m.withError(collaboratorMessage(msg.err)), nil
}

func (m Model) handleReactionResult(msg reactionResultMsg) (Model, tea.Cmd) {
	m.inflight--
	delete(m.reactionBusy, msg.postID)

	if msg.err != nil {
		// Roll the optimistic flip back; counts return to their pre-call value.
		m.applyReactionToggle(msg.postID)
		m.deps.Log.Warn("reaction toggle failed", zap.String("post", msg.postID), zap.Error(msg.err))
		return m.withError(collaboratorMessage(msg.err)), nil
	}

	if msg.wasLiked {
		return m.withOutput("REACTION REMOVED: " + common.TruncateID(msg.postID)), nil
	}
	return m.withOutput("REACTION ADDED: " + common.TruncateID(msg.postID)), nil
}

func (m Model) handleCommentsLoaded(msg commentsLoadedMsg) (Model, tea.Cmd) {
	m.inflight--

	if msg.err != nil {
		m.deps.Log.Warn("comment fetch failed", zap.String("post", msg.postID), zap.Error(msg.err))
		return m.withError(collaboratorMessage(msg.err)), nil
	}

	if subject, ok := wire.Normalize(msg.thread.Subject); ok {
		m.commentSubject = &subject
		m.seedReactions([]domain.Post{subject})
	} else {
		m.commentSubject = nil
	}

	flat, dropped := wire.NormalizeAll(msg.thread.Items)
	if dropped > 0 {
		m.deps.Log.Warn("dropped invalid comments",
			zap.String("post", msg.postID),
			zap.Int("dropped", dropped))
	}
	m.seedReactions(flat)

	m.comments = domain.BuildCommentTree(flat, maxCommentDepth)
	m.display = displayComments
	return m.withOutput(fmt.Sprintf("total %d items", len(flat))), nil
}

// --- Helpers ---

// applyReactionToggle flips the optimistic like state for a post and
// returns the state before the flip.
func (m *Model) applyReactionToggle(postID string) (wasLiked bool) {
	rs := m.reactions[postID]
	if rs == nil {
		rs = &reactionState{}
		if p, ok := m.findPost(postID); ok {
			rs.count = p.Upvotes
		}
		m.reactions[postID] = rs
	}

	wasLiked = rs.liked
	rs.liked = !rs.liked
	if rs.liked {
		rs.count++
	} else if rs.count > 0 {
		rs.count--
	}
	return wasLiked
}

// seedReactions registers reaction state for newly loaded posts without
// clobbering in-flight optimistic values.
func (m *Model) seedReactions(posts []domain.Post) {
	for _, p := range posts {
		if _, ok := m.reactions[p.ID]; !ok {
			m.reactions[p.ID] = &reactionState{count: p.Upvotes}
		}
	}
}

func (m Model) withOutput(s string) Model {
	m.lastOutput = s
	m.outputErr = false
	return m
}

func (m Model) withError(s string) Model {
	m.lastOutput = s
	m.outputErr = true
	return m
}

// collaboratorMessage surfaces a collaborator error verbatim where
// available, with a generic fallback.
func collaboratorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "OPERATION FAILED. TRY AGAIN."
	}
	return "ERROR: " + err.Error()
}
