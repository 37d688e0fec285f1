package lens

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/mrred-labs/redterm/app"
)

// commentService implements app.CommentService against the protocol API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the protocol API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

type commentPage struct {
	Items []json.RawMessage `json:"items"`
}

// FetchComments loads the subject post and its flat comment list in
// parallel; the comment view needs both and neither depends on the other.
func (s *commentService) FetchComments(ctx context.Context, postID string) (app.Thread, error) {
	var (
		subject  json.RawMessage
		comments []json.RawMessage
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := s.client.Get("/v1/posts/" + url.PathEscape(postID))
		if err != nil {
			return fmt.Errorf("fetching post: %w", err)
		}
		subject = data
		return nil
	})

	g.Go(func() error {
		data, err := s.client.Get("/v1/posts/" + url.PathEscape(postID) + "/comments")
		if err != nil {
			return fmt.Errorf("fetching comments: %w", err)
		}
		var page commentPage
		if err := json.Unmarshal(data, &page); err != nil {
			return fmt.Errorf("parsing comments: %w", err)
		}
		comments = page.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return app.Thread{}, err
	}

	return app.Thread{Subject: subject, Items: comments}, nil
}
