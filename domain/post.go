package domain

import "time"

// MediaKind classifies an attachment for rendering.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaRef points at a post's attached media. Absent (zero URL) means text-only.
type MediaRef struct {
	URL     string
	Kind    MediaKind
	AltText string
}

// Post is the canonical post representation. Every wire shape the protocol
// returns is reduced to this before it enters view state. ID and Timestamp
// are always set; items missing either never survive normalization.
type Post struct {
	ID            string
	AuthorHandle  string
	AuthorAddress string
	Content       string
	Media         *MediaRef
	Timestamp     time.Time
	Upvotes       uint
	CommentCount  uint
	RepostCount   uint
	ReplyTo       string // Parent post ID when this post is a comment.
}

// HasMedia reports whether the post carries an attachment.
func (p Post) HasMedia() bool {
	return p.Media != nil && p.Media.URL != ""
}

// CommentNode is one node of a comment tree built from a flat reply list.
type CommentNode struct {
	Post     Post
	Children []CommentNode
}

// DisplayAuthor resolves the author line the way the protocol UI does:
// username if set, else a truncated wallet address, else "Unknown".
func DisplayAuthor(handle, address string) string {
	if handle != "" {
		return handle
	}
	if address == "" {
		return "Unknown"
	}
	return TruncateAddress(address)
}

// TruncateAddress shortens a wallet address to its first 10 characters.
func TruncateAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:10] + "..."
}
