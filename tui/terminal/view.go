package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/mrred-labs/redterm/domain"
	"github.com/mrred-labs/redterm/tui/common"
)

const historyTail = 5

// View renders the terminal: title, the active output area, the last
// command result, recent history, and the prompt.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.TitleStyle.Render("MR.RED TERMINAL v3.0"))
	b.WriteString("\n\n")

	switch m.display {
	case displayPosts:
		b.WriteString(m.renderPosts())
	case displayComments:
		b.WriteString(m.renderComments())
	}

	if m.lastOutput != "" {
		style := common.OutputStyle
		if m.outputErr {
			style = common.ErrorStyle
		}
		b.WriteString(style.Render(m.lastOutput))
		b.WriteString("\n")
	}

	if m.inflight > 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" PROCESSING REQUEST...\n")
	}

	if tail := m.historyTail(); len(tail) > 0 {
		b.WriteString("\n")
		for _, line := range tail {
			b.WriteString(common.HistoryStyle.Render("> " + line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render("enter: run · ctrl+c: quit"))

	return b.String()
}

func (m Model) historyTail() []string {
	if len(m.history) <= historyTail {
		return m.history
	}
	return m.history[len(m.history)-historyTail:]
}

func (m Model) renderPosts() string {
	p := m.feed
	if m.active == viewOwn {
		p = m.own
	}
	if len(p.items) == 0 {
		return ""
	}

	width := m.contentWidth()
	var b strings.Builder
	for _, post := range p.items {
		b.WriteString(m.renderPost(post, width))
		b.WriteString("\n")
	}
	if p.hasMore {
		b.WriteString(common.StatsStyle.Render("-- more available: load-more-feed --"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPost(p domain.Post, width int) string {
	var b strings.Builder

	b.WriteString(common.AuthorStyle.Render("POST_ID: " + common.TruncateID(p.ID)))
	b.WriteString("\n")
	b.WriteString("AUTHOR: " + domain.DisplayAuthor(p.AuthorHandle, p.AuthorAddress))
	b.WriteString("\n")
	b.WriteString(common.TimestampStyle.Render("TIMESTAMP: " + p.Timestamp.Format("Jan 2, 2006")))
	b.WriteString("\n")

	content := p.Content
	if content == "" {
		content = "No content"
	}
	for _, line := range strings.Split(content, "\n") {
		b.WriteString(ansi.Truncate(line, width, "..."))
		b.WriteString("\n")
	}

	if p.HasMedia() {
		marker := "[IMAGE ATTACHMENT: %s]"
		if p.Media.Kind == domain.MediaVideo {
			marker = "[VIDEO ATTACHMENT: %s]"
		}
		b.WriteString(common.MediaStyle.Render(ansi.Truncate(fmt.Sprintf(marker, p.Media.URL), width, "...")))
		b.WriteString("\n")
	}

	count := p.Upvotes
	liked := ""
	if rs := m.reactions[p.ID]; rs != nil {
		count = rs.count
		if rs.liked {
			liked = " [LIKED]"
		}
	}
	b.WriteString(common.StatsStyle.Render(fmt.Sprintf(
		"METRICS: %d upvotes | %d comments | %d reposts%s",
		count, p.CommentCount, p.RepostCount, liked)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderComments() string {
	width := m.contentWidth()
	now := time.Now()
	var b strings.Builder

	if m.commentSubject != nil {
		b.WriteString(m.renderPost(*m.commentSubject, width))
		b.WriteString("\n")
	}
	b.WriteString(common.PromptStyle.Render("$ ls -la comments/"))
	b.WriteString("\n")

	var walk func(nodes []domain.CommentNode, depth int)
	walk = func(nodes []domain.CommentNode, depth int) {
		indent := strings.Repeat("  ", depth)
		for _, n := range nodes {
			author := domain.DisplayAuthor(n.Post.AuthorHandle, n.Post.AuthorAddress)
			head := fmt.Sprintf("%s└─ %s · %s", indent,
				common.AuthorStyle.Render(author),
				common.TimestampStyle.Render(common.RelativeTime(n.Post.Timestamp, now)))
			b.WriteString(head)
			b.WriteString("\n")
			b.WriteString(ansi.Truncate(indent+"   "+n.Post.Content, width, "..."))
			b.WriteString("\n")
			walk(n.Children, depth+1)
		}
	}
	walk(m.comments, 0)

	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-2, 20)
}
