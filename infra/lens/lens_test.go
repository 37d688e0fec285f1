package lens

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrred-labs/redterm/app"
	"github.com/mrred-labs/redterm/domain"
)

type staticTokens string

func (s staticTokens) AccessToken() (string, error) { return string(s), nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, staticTokens("test-token"))
}

func TestFeedService_FetchFeed(t *testing.T) {
	var gotPath, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"items": [{"id": "p1"}, {"id": "p2"}], "nextCursor": "abc"}`)
	})

	page, err := NewFeedService(client, 25).FetchFeed(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/v1/feed?limit=25", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "abc", page.NextCursor)

	_, err = NewFeedService(client, 25).FetchFeed(context.Background(), "abc def")
	require.NoError(t, err)
	assert.Equal(t, "/v1/feed?limit=25&cursor=abc+def", gotPath)
}

func TestFeedService_FetchOwnPosts(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		io.WriteString(w, `{"items": []}`)
	})

	page, err := NewFeedService(client, 10).FetchOwnPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/v1/posts/own?limit=10", gotPath)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextCursor)
}

func TestFeedService_ErrorSurfacesStatusAndBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	})

	_, err := NewFeedService(client, 10).FetchFeed(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestPublishService_CreateTextPost(t *testing.T) {
	var got createPostRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/posts", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"id": "new-post", "timestamp": "2025-04-01T12:00:00Z"}`)
	})
	svc := NewPublishService(client)

	raw, err := svc.CreateTextPost(context.Background(), "  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Content)
	assert.Nil(t, got.Media)
	assert.Contains(t, string(raw), "new-post")

	_, err = svc.CreateTextPost(context.Background(), "   ")
	assert.Error(t, err, "whitespace-only content must fail before the network")
}

func TestPublishService_CreateMediaPost(t *testing.T) {
	var got createPostRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"id": "new-post"}`)
	})

	handle := app.MediaHandle{URI: "ipfs://abc", Mime: "image/png", AltText: "a cat"}
	_, err := NewPublishService(client).CreateMediaPost(context.Background(), "look", handle)
	require.NoError(t, err)
	require.NotNil(t, got.Media)
	assert.Equal(t, "ipfs://abc", got.Media.URI)
	assert.Equal(t, "image/png", got.Media.MimeType)
	assert.Equal(t, "a cat", got.Media.AltTag)
}

func TestPublishService_Reactions(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		io.WriteString(w, `{}`)
	})
	svc := NewPublishService(client)

	require.NoError(t, svc.AddReaction(context.Background(), "p1"))
	require.NoError(t, svc.RemoveReaction(context.Background(), "p1"))

	require.Len(t, calls, 2)
	assert.Equal(t, call{http.MethodPost, "/v1/posts/p1/reactions"}, calls[0])
	assert.Equal(t, call{http.MethodDelete, "/v1/posts/p1/reactions"}, calls[1])
}

func TestCommentService_FetchComments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/posts/p1":
			io.WriteString(w, `{"id": "p1"}`)
		case "/v1/posts/p1/comments":
			io.WriteString(w, `{"items": [{"id": "c1"}, {"id": "c2"}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	thread, err := NewCommentService(client).FetchComments(context.Background(), "p1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "p1"}`, string(thread.Subject))
	assert.Len(t, thread.Items, 2)
}

func TestCommentService_PartialFailureFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/posts/p1/comments" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		io.WriteString(w, `{"id": "p1"}`)
	})

	_, err := NewCommentService(client).FetchComments(context.Background(), "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching comments")
}

func TestMediaService_Upload(t *testing.T) {
	var gotMime, gotAlt, gotFile string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/media", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotMime = r.FormValue("mimeType")
		gotAlt = r.FormValue("altTag")
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		io.WriteString(w, `{"uri": "ipfs://stored"}`)
	})

	ticket, err := domain.NewUploadTicket("cat.png", []byte("pixels"), "image/png")
	require.NoError(t, err)
	ticket.AltText = "a cat"

	var reports []int
	handle, err := NewMediaService(client).Upload(context.Background(), ticket, func(pct int) {
		reports = append(reports, pct)
	})
	require.NoError(t, err)

	assert.Equal(t, "ipfs://stored", handle.URI)
	assert.Equal(t, "image/png", handle.Mime)
	assert.Equal(t, "a cat", handle.AltText)
	assert.Equal(t, "image/png", gotMime)
	assert.Equal(t, "a cat", gotAlt)
	assert.Equal(t, "cat.png", gotFile)

	require.NotEmpty(t, reports)
	for _, pct := range reports {
		assert.LessOrEqual(t, pct, 99, "reported progress must stay below 100")
	}
	assert.Equal(t, 99, reports[len(reports)-1])
}

func TestMediaService_UploadMissingURI(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	ticket, err := domain.NewUploadTicket("cat.png", []byte("pixels"), "image/png")
	require.NoError(t, err)

	_, err = NewMediaService(client).Upload(context.Background(), ticket, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing uri")
}

func TestProgressReader_CapsAt99(t *testing.T) {
	data := make([]byte, 10_000)
	var last int
	r := newProgressReader(data, func(pct int) { last = pct })

	n, err := io.Copy(io.Discard, r)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, 99, last)
}
