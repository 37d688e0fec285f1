package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func comment(id, replyTo string) Post {
	return Post{
		ID:        id,
		Content:   "comment " + id,
		Timestamp: time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC),
		ReplyTo:   replyTo,
	}
}

func TestBuildCommentTree_DepthCapOmitsDeeperReplies(t *testing.T) {
	flat := []Post{comment("A", ""), comment("B", "A"), comment("C", "B")}

	tree := BuildCommentTree(flat, 1)

	if len(tree) != 1 || tree[0].Post.ID != "A" {
		t.Fatalf("expected single root A, got %+v", tree)
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].Post.ID != "B" {
		t.Fatalf("expected A's child B, got %+v", tree[0].Children)
	}
	// C exists in the flat list but must not appear below the cap.
	if len(tree[0].Children[0].Children) != 0 {
		t.Fatalf("expected B to have no children, got %+v", tree[0].Children[0].Children)
	}
}

func TestBuildCommentTree_OrphanPromotedToTopLevel(t *testing.T) {
	flat := []Post{
		comment("A", ""),
		comment("B", "missing-parent"),
		comment("C", "A"),
	}

	tree := BuildCommentTree(flat, 5)

	var roots []string
	for _, n := range tree {
		roots = append(roots, n.Post.ID)
	}
	if diff := cmp.Diff([]string{"A", "B"}, roots); diff != "" {
		t.Fatalf("unexpected roots (-want +got):\n%s", diff)
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].Post.ID != "C" {
		t.Fatalf("expected C under A, got %+v", tree[0].Children)
	}
}

func TestBuildCommentTree_SiblingOrderPreserved(t *testing.T) {
	flat := []Post{
		comment("A", ""),
		comment("B1", "A"),
		comment("B2", "A"),
		comment("B3", "A"),
	}

	tree := BuildCommentTree(flat, 5)

	var got []string
	for _, n := range tree[0].Children {
		got = append(got, n.Post.ID)
	}
	if diff := cmp.Diff([]string{"B1", "B2", "B3"}, got); diff != "" {
		t.Fatalf("sibling order broken (-want +got):\n%s", diff)
	}
}

func TestBuildCommentTree_EmptyList(t *testing.T) {
	if tree := BuildCommentTree(nil, 5); len(tree) != 0 {
		t.Fatalf("expected empty tree, got %+v", tree)
	}
}
