package services

import (
	"log"
	"sort"

	"skillpath/internal/models"
)

// CommentNode wraps a comment with its direct replies, recursively.
type CommentNode struct {
	models.Comment
	ContentHTML string         `json:"content_html,omitempty"`
	Replies     []*CommentNode `json:"replies"`
}

// BuildCommentTree converts a flat comment list into a forest of root
// comments. A comment whose parent id is not present in the input is
// promoted to a root comment rather than dropped; stale parent references
// must never lose a comment. Root and reply lists are sorted oldest-first.
func BuildCommentTree(comments []models.Comment) []*CommentNode {
	byID := make(map[uint]*CommentNode, len(comments))
	for i := range comments {
		byID[comments[i].ID] = &CommentNode{Comment: comments[i], Replies: []*CommentNode{}}
	}

	roots := make([]*CommentNode, 0, len(comments))
	orphans := 0
	for i := range comments {
		node := byID[comments[i].ID]
		if pid := comments[i].ParentID; pid != nil {
			if parent, ok := byID[*pid]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
			// Parent missing from the set; keep the comment visible at
			// top level but make the condition observable.
			orphans++
		}
		roots = append(roots, node)
	}
	if orphans > 0 {
		log.Printf("comment tree: promoted %d orphaned replies to root", orphans)
	}

	sortThread(roots)
	return roots
}

func sortThread(nodes []*CommentNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].CreatedAt.Equal(nodes[j].CreatedAt) {
			return nodes[i].ID < nodes[j].ID
		}
		return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
	})
	for _, n := range nodes {
		sortThread(n.Replies)
	}
}

// CountNodes returns the total number of comments in a forest.
func CountNodes(nodes []*CommentNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + CountNodes(n.Replies)
	}
	return total
}
