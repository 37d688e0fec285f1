package lens

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mrred-labs/redterm/app"
)

// feedService implements app.FeedService against the protocol API.
type feedService struct {
	client   *Client
	pageSize int
}

// NewFeedService creates a FeedService backed by the protocol API.
func NewFeedService(client *Client, pageSize int) *feedService {
	return &feedService{client: client, pageSize: pageSize}
}

// feedPage mirrors the API's page envelope. Items stay raw: the shapes
// inside differ per endpoint and schema generation, and reducing them is
// the wire package's job.
type feedPage struct {
	Items      []json.RawMessage `json:"items"`
	NextCursor string            `json:"nextCursor"`
}

func (s *feedService) FetchFeed(_ context.Context, cursor string) (app.RawPage, error) {
	path := fmt.Sprintf("/v1/feed?limit=%d", s.pageSize)
	if cursor != "" {
		path += "&cursor=" + url.QueryEscape(cursor)
	}

	data, err := s.client.Get(path)
	if err != nil {
		return app.RawPage{}, fmt.Errorf("fetching feed: %w", err)
	}

	var page feedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return app.RawPage{}, fmt.Errorf("parsing feed page: %w", err)
	}

	return app.RawPage{Items: page.Items, NextCursor: page.NextCursor}, nil
}

func (s *feedService) FetchOwnPosts(_ context.Context) (app.RawPage, error) {
	path := fmt.Sprintf("/v1/posts/own?limit=%d", s.pageSize)

	data, err := s.client.Get(path)
	if err != nil {
		return app.RawPage{}, fmt.Errorf("fetching own posts: %w", err)
	}

	var page feedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return app.RawPage{}, fmt.Errorf("parsing own posts: %w", err)
	}

	return app.RawPage{Items: page.Items, NextCursor: page.NextCursor}, nil
}
