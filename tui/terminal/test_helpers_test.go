package terminal

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrred-labs/redterm/app"
)

// rawPost builds a minimal valid wire object for tests.
func rawPost(id string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"id": %q, "timestamp": "2025-04-01T12:00:00Z", "metadata": {"content": "post %s"}, "stats": {"upvotes": 3}}`,
		id, id))
}

type stubFeed struct {
	calls     int
	ownCalls  int
	page      app.RawPage
	err       error
	gotCursor string
}

func (s *stubFeed) FetchFeed(_ context.Context, cursor string) (app.RawPage, error) {
	s.calls++
	s.gotCursor = cursor
	return s.page, s.err
}

func (s *stubFeed) FetchOwnPosts(context.Context) (app.RawPage, error) {
	s.ownCalls++
	return s.page, s.err
}

type stubPublish struct {
	textCalls  int
	mediaCalls int
	err        error
}

func (s *stubPublish) CreateTextPost(_ context.Context, content string) (json.RawMessage, error) {
	s.textCalls++
	if s.err != nil {
		return nil, s.err
	}
	return rawPost("created"), nil
}

func (s *stubPublish) CreateMediaPost(_ context.Context, content string, _ app.MediaHandle) (json.RawMessage, error) {
	s.mediaCalls++
	if s.err != nil {
		return nil, s.err
	}
	return rawPost("created-media"), nil
}

type stubReactions struct {
	addCalls    int
	removeCalls int
	err         error
}

func (s *stubReactions) AddReaction(context.Context, string) error {
	s.addCalls++
	return s.err
}

func (s *stubReactions) RemoveReaction(context.Context, string) error {
	s.removeCalls++
	return s.err
}

type stubComments struct {
	calls  int
	thread app.Thread
	err    error
}

func (s *stubComments) FetchComments(context.Context, string) (app.Thread, error) {
	s.calls++
	return s.thread, s.err
}

type stubSession struct {
	authed bool
	wallet string
}

func (s stubSession) IsAuthenticated() bool { return s.authed }
func (s stubSession) WalletAddress() string { return s.wallet }

func newTestModel(deps Deps) Model {
	if deps.Feed == nil {
		deps.Feed = &stubFeed{}
	}
	if deps.Publish == nil {
		deps.Publish = &stubPublish{}
	}
	if deps.Reactions == nil {
		deps.Reactions = &stubReactions{}
	}
	if deps.Comments == nil {
		deps.Comments = &stubComments{}
	}
	if deps.Session == nil {
		deps.Session = stubSession{authed: true, wallet: "0x196Fa40f6ffd2a473abf03f6a8D990E6A933A992"}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return New(deps)
}
