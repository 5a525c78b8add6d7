package handlers

import (
	"net/http"

	"skillpath/internal/db"
	"skillpath/internal/models"
	"skillpath/internal/services"
	"skillpath/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	roadmaps *services.RoadmapService
}

func NewQuizHandler() *QuizHandler {
	return &QuizHandler{
		roadmaps: services.NewRoadmapService(),
	}
}

// ForModule returns a module's quiz with its questions. Correct answers
// are never serialized.
func (h *QuizHandler) ForModule(c *gin.Context) {
	moduleID := utils.StringToUint(c.Param("id"))

	var quiz models.Quiz
	if err := db.DB.Preload("Questions").Where("module_id = ?", moduleID).First(&quiz).Error; err != nil {
		Fail(c, http.StatusNotFound, "no quiz for module")
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

type submitQuizRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// Submit scores a quiz attempt and folds the score into the module's
// progress. A perfect score completes the module.
func (h *QuizHandler) Submit(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	quizID := utils.StringToUint(c.Param("id"))
	var quiz models.Quiz
	if err := db.DB.Preload("Questions").First(&quiz, quizID).Error; err != nil {
		Fail(c, http.StatusNotFound, "quiz not found")
		return
	}

	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Answers) != len(quiz.Questions) {
		Fail(c, http.StatusBadRequest, "one answer per question required")
		return
	}

	correct := 0
	for i, q := range quiz.Questions {
		if req.Answers[i] == q.Answer {
			correct++
		}
	}

	percent := 0
	if len(quiz.Questions) > 0 {
		percent = correct * 100 / len(quiz.Questions)
	}

	progress, err := h.roadmaps.UpdateModuleProgress(user.ID, quiz.ModuleID, percent)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "could not record quiz result")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"correct":  correct,
		"total":    len(quiz.Questions),
		"percent":  percent,
		"progress": progress,
	})
}
