package services

import (
	"testing"
	"time"

	"skillpath/internal/models"
)

func comment(id uint, parent *uint, at time.Time) models.Comment {
	return models.Comment{ID: id, ParentID: parent, CreatedAt: at}
}

func pid(id uint) *uint { return &id }

func TestBuildCommentTreeNesting(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	input := []models.Comment{
		comment(1, nil, base),
		comment(2, pid(1), base.Add(1*time.Minute)),
		comment(3, pid(2), base.Add(2*time.Minute)),
		comment(4, nil, base.Add(3*time.Minute)),
		comment(5, pid(1), base.Add(4*time.Minute)),
	}

	tree := BuildCommentTree(input)

	if got := CountNodes(tree); got != len(input) {
		t.Fatalf("expected %d nodes in tree, got %d", len(input), got)
	}

	if len(tree) != 2 {
		t.Fatalf("expected 2 root comments, got %d", len(tree))
	}
	if tree[0].ID != 1 || tree[1].ID != 4 {
		t.Errorf("unexpected root order: %d, %d", tree[0].ID, tree[1].ID)
	}

	root := tree[0]
	if len(root.Replies) != 2 {
		t.Fatalf("expected 2 direct replies on comment 1, got %d", len(root.Replies))
	}
	if root.Replies[0].ID != 2 || root.Replies[1].ID != 5 {
		t.Errorf("unexpected reply order: %d, %d", root.Replies[0].ID, root.Replies[1].ID)
	}
	if len(root.Replies[0].Replies) != 1 || root.Replies[0].Replies[0].ID != 3 {
		t.Errorf("comment 3 should be nested under comment 2")
	}
}

func TestBuildCommentTreeSortsOldestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Input arrives in timestamp order T+3, T+1, T+2.
	input := []models.Comment{
		comment(1, nil, base.Add(3*time.Minute)),
		comment(2, nil, base.Add(1*time.Minute)),
		comment(3, nil, base.Add(2*time.Minute)),
	}

	tree := BuildCommentTree(input)

	want := []uint{2, 3, 1}
	for i, n := range tree {
		if n.ID != want[i] {
			t.Errorf("position %d: expected comment %d, got %d", i, want[i], n.ID)
		}
	}
}

func TestBuildCommentTreeOrphanPromotedToRoot(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	input := []models.Comment{
		comment(1, nil, base),
		comment(2, pid(99), base.Add(time.Minute)), // parent not in the set
	}

	tree := BuildCommentTree(input)

	if got := CountNodes(tree); got != 2 {
		t.Fatalf("orphan must not be dropped, got %d nodes", got)
	}
	if len(tree) != 2 {
		t.Fatalf("orphan should appear at root level, got %d roots", len(tree))
	}
	if tree[1].ID != 2 {
		t.Errorf("expected orphan comment 2 at root, got %d", tree[1].ID)
	}
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	if tree := BuildCommentTree(nil); len(tree) != 0 {
		t.Errorf("expected empty tree, got %d roots", len(tree))
	}
}

func TestBuildCommentTreeDeterministic(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	input := []models.Comment{
		comment(3, nil, base),
		comment(1, nil, base), // same timestamp, lower id wins
		comment(2, pid(3), base.Add(time.Second)),
	}

	first := BuildCommentTree(input)
	second := BuildCommentTree(input)

	if first[0].ID != second[0].ID || first[1].ID != second[1].ID {
		t.Errorf("tree build is not deterministic")
	}
	if first[0].ID != 1 {
		t.Errorf("equal timestamps should order by id, got %d first", first[0].ID)
	}
}
