package app

import (
	"context"
	"encoding/json"
)

// RawPage is one page of raw wire objects from the protocol, plus the
// continuation token for the next page. An empty NextCursor means end of
// feed. Items are opaque here; the wire package reduces them to canonical
// posts.
type RawPage struct {
	Items      []json.RawMessage
	NextCursor string
}

// FeedService fetches paginated post streams from the protocol.
type FeedService interface {
	// FetchFeed returns one page of the personalized feed. An empty cursor
	// requests the first page.
	FetchFeed(ctx context.Context, cursor string) (RawPage, error)

	// FetchOwnPosts returns the authenticated user's own posts.
	FetchOwnPosts(ctx context.Context) (RawPage, error)
}
