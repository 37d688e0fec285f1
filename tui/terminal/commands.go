package terminal

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrred-labs/redterm/app"
)

func (m Model) fetchFirstPage(view feedView, gen int) tea.Cmd {
	feedSvc := m.deps.Feed
	return func() tea.Msg {
		var (
			page app.RawPage
			err  error
		)
		if view == viewOwn {
			page, err = feedSvc.FetchOwnPosts(context.Background())
		} else {
			page, err = feedSvc.FetchFeed(context.Background(), "")
		}
		if err != nil {
			return feedErrorMsg{view: view, gen: gen, first: true, err: err}
		}
		return feedLoadedMsg{view: view, gen: gen, first: true, page: page}
	}
}

func (m Model) fetchNextPage(view feedView, gen int, cursor string) tea.Cmd {
	feedSvc := m.deps.Feed
	return func() tea.Msg {
		page, err := feedSvc.FetchFeed(context.Background(), cursor)
		if err != nil {
			return feedErrorMsg{view: view, gen: gen, err: err}
		}
		return feedLoadedMsg{view: view, gen: gen, page: page}
	}
}

func (m Model) createTextPost(content string) tea.Cmd {
	publish := m.deps.Publish
	return func() tea.Msg {
		raw, err := publish.CreateTextPost(context.Background(), content)
		return postCreatedMsg{raw: raw, err: err}
	}
}

func (m Model) createMediaPost(content string, handle app.MediaHandle) tea.Cmd {
	publish := m.deps.Publish
	return func() tea.Msg {
		raw, err := publish.CreateMediaPost(context.Background(), content, handle)
		return postCreatedMsg{raw: raw, err: err}
	}
}

func (m Model) toggleReaction(postID string, wasLiked bool) tea.Cmd {
	reactions := m.deps.Reactions
	return func() tea.Msg {
		var err error
		if wasLiked {
			err = reactions.RemoveReaction(context.Background(), postID)
		} else {
			err = reactions.AddReaction(context.Background(), postID)
		}
		return reactionResultMsg{postID: postID, wasLiked: wasLiked, err: err}
	}
}

func (m Model) fetchComments(postID string) tea.Cmd {
	comments := m.deps.Comments
	return func() tea.Msg {
		thread, err := comments.FetchComments(context.Background(), postID)
		return commentsLoadedMsg{postID: postID, thread: thread, err: err}
	}
}
