package app

import (
	"context"
	"encoding/json"
)

// MediaHandle is the opaque result of a completed media upload, ready to be
// attached to a new post.
type MediaHandle struct {
	URI     string
	Mime    string
	AltText string
}

// PublishService creates posts on the protocol.
type PublishService interface {
	// CreateTextPost publishes a text-only post and returns the raw created
	// post as the protocol reported it.
	CreateTextPost(ctx context.Context, content string) (json.RawMessage, error)

	// CreateMediaPost publishes a post with attached media.
	CreateMediaPost(ctx context.Context, content string, media MediaHandle) (json.RawMessage, error)
}

// ReactionService adds and removes the user's reaction on a single post.
type ReactionService interface {
	AddReaction(ctx context.Context, postID string) error
	RemoveReaction(ctx context.Context, postID string) error
}
