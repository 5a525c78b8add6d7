package handlers

import (
	"errors"
	"net/http"

	"skillpath/internal/services"

	"github.com/gin-gonic/gin"
)

type RoadmapHandler struct {
	roadmaps *services.RoadmapService
}

func NewRoadmapHandler() *RoadmapHandler {
	return &RoadmapHandler{
		roadmaps: services.NewRoadmapService(),
	}
}

// Catalog returns the full bundled module catalog.
func (h *RoadmapHandler) Catalog(c *gin.Context) {
	catalog, err := h.roadmaps.Catalog()
	if err != nil {
		Fail(c, http.StatusInternalServerError, "could not load catalog")
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": catalog})
}

// Get returns the user's annotated module list. A user who has never
// onboarded gets onboarding_required rather than an empty roadmap, so the
// client can tell "no roadmap yet" apart from "preferences match nothing".
func (h *RoadmapHandler) Get(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	modules, err := h.roadmaps.GetRoadmap(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoRoadmap) {
			c.JSON(http.StatusOK, gin.H{"onboarding_required": true, "modules": []services.RoadmapModule{}})
			return
		}
		Fail(c, http.StatusInternalServerError, "could not load roadmap")
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboarding_required": false, "modules": modules})
}

type createRoadmapRequest struct {
	Difficulty     string   `json:"difficulty"`
	Interests      []string `json:"interests"`
	LearningStyles []string `json:"learning_styles"`
}

// Create records onboarding preferences and builds the roadmap from them.
func (h *RoadmapHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	var req createRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid preferences")
		return
	}

	id, err := h.roadmaps.CreateSimpleRoadmap(user.ID, req.Difficulty, req.Interests, req.LearningStyles)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "could not create roadmap")
		return
	}

	modules, err := h.roadmaps.GetRoadmap(user.ID)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "could not load roadmap")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"roadmap_id": id, "modules": modules})
}

type progressRequest struct {
	ModuleID uint `json:"module_id" binding:"required"`
	Percent  int  `json:"percent"`
}

// UpdateProgress upserts the (user, module) progress overlay.
func (h *RoadmapHandler) UpdateProgress(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "module_id required")
		return
	}

	row, err := h.roadmaps.UpdateModuleProgress(user.ID, req.ModuleID, req.Percent)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "could not update progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": row})
}
