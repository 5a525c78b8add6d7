package handlers

import (
	"net/http"
	"strings"

	"skillpath/internal/db"
	"skillpath/internal/models"
	"skillpath/internal/services"
	"skillpath/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (h *PostHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		Fail(c, http.StatusBadRequest, "title required")
		return
	}

	post := models.Post{
		Pid:     utils.RandString(8),
		UserID:  user.ID,
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "could not create post")
		return
	}

	post.User = *user
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Detail returns one post with its comment thread reconstructed as a tree.
func (h *PostHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Preload("User").Where("pid = ?", pid).First(&post).Error; err != nil {
		Fail(c, http.StatusNotFound, "post not found")
		return
	}

	var comments []models.Comment
	db.DB.Preload("User").Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments)

	thread := services.BuildCommentTree(comments)
	renderThread(thread)

	// The caller's standing vote and saved flag are per-request state.
	voteState := services.NoVote
	saved := false
	if user := CurrentUser(c); user != nil {
		voteState = services.NewVoteService().CurrentState(user.ID, post.ID)
		var row models.SavedPost
		if err := db.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&row).Error; err == nil {
			saved = true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"post":         post,
		"content_html": utils.RenderMarkdown(post.Content),
		"comments":     thread,
		"vote_state":   voteState.String(),
		"saved":        saved,
	})
}

// renderThread fills ContentHTML for every node in a comment forest.
func renderThread(nodes []*services.CommentNode) {
	for _, n := range nodes {
		n.ContentHTML = utils.RenderMarkdown(n.Content)
		renderThread(n.Replies)
	}
}

type createCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	pid := c.Param("pid")
	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		Fail(c, http.StatusNotFound, "post not found")
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		Fail(c, http.StatusBadRequest, "content required")
		return
	}

	// A reply's parent must belong to the same post.
	if req.ParentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, *req.ParentID).Error; err != nil {
			Fail(c, http.StatusBadRequest, "parent comment not found")
			return
		}
		if parent.PostID != post.ID {
			Fail(c, http.StatusBadRequest, "parent comment belongs to another post")
			return
		}
	}

	comment := models.Comment{
		Cid:      utils.RandString(8),
		PostID:   post.ID,
		UserID:   user.ID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "could not create comment")
		return
	}

	db.DB.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1"))
	services.GetCounterService().ScheduleUpdate(post.ID)

	comment.User = *user
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
