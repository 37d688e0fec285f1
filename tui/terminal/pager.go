package terminal

import "github.com/mrred-labs/redterm/domain"

// pager owns the pagination state for one feed view: the merged item
// sequence, the continuation cursor, and the loading flag that is the sole
// serialization mechanism for fetches. Each accepted fetch bumps gen; a
// response carrying a stale gen is discarded on arrival instead of being
// merged into newer state.
type pager struct {
	items   []domain.Post
	cursor  string
	hasMore bool
	loading bool
	loaded  bool // at least one first page has been applied
	gen     int
}

// beginFirst starts a first-page load. Returns false while another load is
// in flight so concurrent loadFirst calls cannot double-reset the view.
func (p *pager) beginFirst() (gen int, ok bool) {
	if p.loading {
		return 0, false
	}
	p.gen++
	p.loading = true
	return p.gen, true
}

// beginMore starts a next-page load. ok is false when a load is already in
// flight or there is nothing more to fetch.
func (p *pager) beginMore() (gen int, cursor string, ok bool) {
	if p.loading || !p.hasMore || p.cursor == "" {
		return 0, "", false
	}
	p.gen++
	p.loading = true
	return p.gen, p.cursor, true
}

// stale reports whether a response generation no longer matches. The
// loading flag belongs to the newest generation, so stale responses do not
// touch it.
func (p *pager) stale(gen int) bool {
	return gen != p.gen
}

// applyFirst replaces the view with a fetched first page.
func (p *pager) applyFirst(items []domain.Post, nextCursor string) {
	p.items = items
	p.cursor = nextCursor
	p.hasMore = nextCursor != ""
	p.loaded = true
	p.loading = false
}

// applyMore appends a fetched page to the end of the view, preserving
// existing order. No de-duplication by post ID happens here: the protocol
// may shift cursor windows while new posts land, so overlapping pages can
// produce duplicates. Preserved as observed; known limitation.
func (p *pager) applyMore(items []domain.Post, nextCursor string) {
	p.items = append(p.items, items...)
	p.cursor = nextCursor
	p.hasMore = nextCursor != ""
	p.loading = false
}

// fail clears the loading flag and leaves the existing items untouched.
func (p *pager) fail() {
	p.loading = false
}
