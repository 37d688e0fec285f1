package app

import (
	"context"
	"encoding/json"
)

// Thread is the raw material for one comment view: the subject post and
// the flat list of comments on it. Tree building from the replyTo relation
// is the terminal's concern, not the protocol's.
type Thread struct {
	Subject json.RawMessage
	Items   []json.RawMessage
}

// CommentService fetches the flat comment list for a post.
type CommentService interface {
	FetchComments(ctx context.Context, postID string) (Thread, error)
}
