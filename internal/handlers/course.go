package handlers

import (
	"net/http"
	"time"

	"skillpath/internal/db"
	"skillpath/internal/models"
	"skillpath/internal/utils"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct{}

func NewCourseHandler() *CourseHandler {
	return &CourseHandler{}
}

// List returns the static course-video catalog, optionally restricted to
// one category. The unfiltered catalog is cached.
func (h *CourseHandler) List(c *gin.Context) {
	category := c.Query("category")

	if category == "" {
		if cached := utils.GetCache().Get("catalog:courses"); cached != nil {
			if courses, ok := cached.([]models.Course); ok {
				c.JSON(http.StatusOK, gin.H{"courses": courses})
				return
			}
		}
	}

	query := db.DB.Order("id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "could not load courses")
		return
	}

	if category == "" {
		utils.GetCache().Set("catalog:courses", courses, 10*time.Minute)
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// Detail returns one course plus an embeddable video id when the video is
// hosted on YouTube.
func (h *CourseHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var course models.Course
	if err := db.DB.First(&course, id).Error; err != nil {
		Fail(c, http.StatusNotFound, "course not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course":   course,
		"video_id": utils.YouTubeVideoID(course.VideoURL),
	})
}
