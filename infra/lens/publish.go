package lens

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mrred-labs/redterm/app"
)

// publishService implements app.PublishService and app.ReactionService.
type publishService struct {
	client *Client
}

// NewPublishService creates a PublishService backed by the protocol API.
func NewPublishService(client *Client) *publishService {
	return &publishService{client: client}
}

type createPostRequest struct {
	Content string        `json:"content"`
	Media   *mediaPayload `json:"media,omitempty"`
}

type mediaPayload struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	AltTag   string `json:"altTag,omitempty"`
}

func (s *publishService) CreateTextPost(_ context.Context, content string) (json.RawMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("post content cannot be empty")
	}

	body, err := json.Marshal(createPostRequest{Content: content})
	if err != nil {
		return nil, fmt.Errorf("encoding post: %w", err)
	}

	data, err := s.client.Post("/v1/posts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return data, nil
}

func (s *publishService) CreateMediaPost(_ context.Context, content string, media app.MediaHandle) (json.RawMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("post content cannot be empty")
	}

	body, err := json.Marshal(createPostRequest{
		Content: content,
		Media: &mediaPayload{
			URI:      media.URI,
			MimeType: media.Mime,
			AltTag:   media.AltText,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding post: %w", err)
	}

	data, err := s.client.Post("/v1/posts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating media post: %w", err)
	}
	return data, nil
}

func (s *publishService) AddReaction(_ context.Context, postID string) error {
	path := fmt.Sprintf("/v1/posts/%s/reactions", url.PathEscape(postID))
	body := strings.NewReader(`{"reaction":"UPVOTE"}`)
	if _, err := s.client.Post(path, body); err != nil {
		return fmt.Errorf("adding reaction: %w", err)
	}
	return nil
}

func (s *publishService) RemoveReaction(_ context.Context, postID string) error {
	path := fmt.Sprintf("/v1/posts/%s/reactions", url.PathEscape(postID))
	if _, err := s.client.Delete(path); err != nil {
		return fmt.Errorf("removing reaction: %w", err)
	}
	return nil
}
