package terminal

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mrred-labs/redterm/app"
	"github.com/mrred-labs/redterm/domain"
)

func TestPager_BeginFirstRejectsWhileLoading(t *testing.T) {
	var p pager

	gen1, ok := p.beginFirst()
	if !ok {
		t.Fatalf("first begin must be accepted")
	}
	if _, ok := p.beginFirst(); ok {
		t.Fatalf("second begin must be rejected while loading")
	}

	p.applyFirst([]domain.Post{{ID: "a"}}, "c1")
	if p.stale(gen1) {
		t.Fatalf("the accepted generation must not be stale")
	}
	if !p.loaded || p.loading {
		t.Fatalf("applyFirst should settle flags: %+v", p)
	}
}

func TestPager_StaleGenerationDiscarded(t *testing.T) {
	var p pager
	old, _ := p.beginFirst()
	p.applyFirst(nil, "")

	// A later fetch bumps the generation; the old one is now stale.
	if _, ok := p.beginFirst(); !ok {
		t.Fatalf("new begin should be accepted after the first settled")
	}
	if !p.stale(old) {
		t.Fatalf("old generation should be stale after a newer begin")
	}
}

func TestPager_BeginMoreGuards(t *testing.T) {
	var p pager

	if _, _, ok := p.beginMore(); ok {
		t.Fatalf("beginMore before any first page must be rejected")
	}

	p.beginFirst()
	if _, _, ok := p.beginMore(); ok {
		t.Fatalf("beginMore while loading must be rejected")
	}
	p.applyFirst([]domain.Post{{ID: "a"}}, "")
	if _, _, ok := p.beginMore(); ok {
		t.Fatalf("beginMore with no cursor must be rejected")
	}
}

func TestPager_FailureLeavesItems(t *testing.T) {
	var p pager
	p.beginFirst()
	p.applyFirst([]domain.Post{{ID: "a"}, {ID: "b"}}, "c1")

	p.beginMore()
	p.fail()

	if len(p.items) != 2 || p.cursor != "c1" || !p.hasMore {
		t.Fatalf("failure must leave state untouched: %+v", p)
	}
	if p.loading {
		t.Fatalf("failure must clear the loading flag")
	}
}

func TestPager_AppendKeepsOrderAndDuplicates(t *testing.T) {
	var p pager
	p.beginFirst()
	p.applyFirst([]domain.Post{{ID: "a"}, {ID: "b"}}, "c1")

	p.beginMore()
	p.applyMore([]domain.Post{{ID: "b"}, {ID: "c"}}, "")

	got := make([]string, len(p.items))
	for i, item := range p.items {
		got[i] = item.ID
	}
	want := []string{"a", "b", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order wrong: got %v want %v", got, want)
		}
	}
	if p.hasMore {
		t.Fatalf("empty cursor ends the feed")
	}
}

func TestModel_StaleFeedResponseDiscarded(t *testing.T) {
	feed := &stubFeed{page: app.RawPage{Items: []json.RawMessage{rawPost("new")}}}
	m := newTestModel(Deps{Feed: feed})
	m = run(t, m, "fetch-feed")

	// A response from a generation that was since superseded arrives late.
	m.inflight++
	stale := feedLoadedMsg{view: viewFeed, gen: m.feed.gen - 1, first: true, page: app.RawPage{
		Items: []json.RawMessage{rawPost("old")},
	}}
	m, _ = m.Update(stale)

	if len(m.feed.items) != 1 || m.feed.items[0].ID != "new" {
		t.Fatalf("stale page must not be merged: %+v", m.feed.items)
	}
}

func TestModel_FeedErrorSurfacesAndKeepsItems(t *testing.T) {
	feed := &stubFeed{page: app.RawPage{Items: []json.RawMessage{rawPost("a")}, NextCursor: "c1"}}
	m := newTestModel(Deps{Feed: feed})
	m = run(t, m, "fetch-feed")

	feed.err = errors.New("gateway timeout")
	m = run(t, m, "load-more-feed")

	if len(m.feed.items) != 1 {
		t.Fatalf("items must survive a failed page: %+v", m.feed.items)
	}
	if !strings.Contains(m.LastOutput(), "gateway timeout") {
		t.Fatalf("collaborator message should surface: %q", m.LastOutput())
	}
	if m.feed.loading {
		t.Fatalf("failure must clear loading so a retry can start")
	}

	// The retry is accepted and appends.
	feed.err = nil
	feed.page = app.RawPage{Items: []json.RawMessage{rawPost("b")}}
	m = run(t, m, "load-more-feed")
	if len(m.feed.items) != 2 {
		t.Fatalf("retry should append: %+v", m.feed.items)
	}
}
