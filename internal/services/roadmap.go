package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"skillpath/internal/db"
	"skillpath/internal/models"
	"skillpath/internal/utils"

	"gorm.io/gorm"
)

// ErrNoRoadmap signals that the user has no preference record at all, so
// onboarding is required. It is distinct from preferences that match zero
// catalog modules, which yield an empty roadmap.
var ErrNoRoadmap = errors.New("roadmap: user has not onboarded")

const catalogCacheKey = "catalog:modules"

// RoadmapModule is a catalog module annotated with the user's progress.
type RoadmapModule struct {
	models.Module
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

func difficultyRank(d string) int {
	switch strings.ToLower(d) {
	case models.DifficultyBeginner:
		return 0
	case models.DifficultyIntermediate:
		return 1
	case models.DifficultyAdvanced:
		return 2
	}
	// Unrecognized tiers sort after the known ones.
	return 3
}

// MatchesPreferences reports whether a catalog module fits a preference
// record. Each omitted preference dimension matches everything.
func MatchesPreferences(m models.Module, prefs models.UserRoadmap) bool {
	if prefs.Difficulty != "" && !strings.EqualFold(m.Difficulty, prefs.Difficulty) {
		return false
	}

	if len(prefs.Interests) > 0 {
		found := false
		for _, cat := range prefs.Interests {
			if strings.EqualFold(cat, m.Category) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(prefs.LearningStyles) > 0 {
		overlap := false
		for _, want := range prefs.LearningStyles {
			for _, have := range m.LearningStyles {
				if strings.EqualFold(want, have) {
					overlap = true
					break
				}
			}
		}
		if !overlap {
			return false
		}
	}

	return true
}

// BuildRoadmap filters the catalog by the preference record, annotates the
// matches with the user's progress overlay and orders them easiest-first.
// Modules without an overlay row render as 0% / locked.
func BuildRoadmap(prefs models.UserRoadmap, catalog []models.Module, progress []models.UserModuleProgress) []RoadmapModule {
	overlay := make(map[uint]models.UserModuleProgress, len(progress))
	for _, p := range progress {
		overlay[p.ModuleID] = p
	}

	out := make([]RoadmapModule, 0, len(catalog))
	for _, m := range catalog {
		if !MatchesPreferences(m, prefs) {
			continue
		}
		rm := RoadmapModule{Module: m, Percent: 0, Status: models.StatusLocked}
		if p, ok := overlay[m.ID]; ok {
			rm.Percent = p.Percent
			rm.Status = p.Status
		}
		out = append(out, rm)
	}

	// Stable sort keeps catalog order within a tier.
	sort.SliceStable(out, func(i, j int) bool {
		return difficultyRank(out[i].Difficulty) < difficultyRank(out[j].Difficulty)
	})
	return out
}

type RoadmapService struct{}

func NewRoadmapService() *RoadmapService {
	return &RoadmapService{}
}

// Catalog returns the bundled module catalog, cached since it is static.
func (s *RoadmapService) Catalog() ([]models.Module, error) {
	if cached := utils.GetCache().Get(catalogCacheKey); cached != nil {
		if catalog, ok := cached.([]models.Module); ok {
			return catalog, nil
		}
	}

	var catalog []models.Module
	if err := db.DB.Order("id ASC").Find(&catalog).Error; err != nil {
		return nil, err
	}
	utils.GetCache().Set(catalogCacheKey, catalog, 10*time.Minute)
	return catalog, nil
}

// GetRoadmap assembles the user's annotated module list. Returns
// ErrNoRoadmap when the user has no preference record.
func (s *RoadmapService) GetRoadmap(userID uint) ([]RoadmapModule, error) {
	var prefs models.UserRoadmap
	if err := db.DB.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRoadmap
		}
		return nil, err
	}

	catalog, err := s.Catalog()
	if err != nil {
		return nil, err
	}

	var progress []models.UserModuleProgress
	if err := db.DB.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}

	return BuildRoadmap(prefs, catalog, progress), nil
}

// CreateSimpleRoadmap records onboarding preferences and returns the
// roadmap record id. Re-onboarding overwrites the existing preferences.
func (s *RoadmapService) CreateSimpleRoadmap(userID uint, difficulty string, interests, styles []string) (uint, error) {
	prefs := models.UserRoadmap{
		UserID:         userID,
		Difficulty:     strings.ToLower(difficulty),
		Interests:      interests,
		LearningStyles: styles,
	}

	var existing models.UserRoadmap
	err := db.DB.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case err == nil:
		prefs.ID = existing.ID
		prefs.CreatedAt = existing.CreatedAt
		if err := db.DB.Save(&prefs).Error; err != nil {
			return 0, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.DB.Create(&prefs).Error; err != nil {
			if db.IsDuplicate(err) {
				// Lost a race with a concurrent onboarding; that row wins.
				if err := db.DB.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
					return 0, err
				}
				return prefs.ID, nil
			}
			return 0, err
		}
	default:
		return 0, err
	}

	return prefs.ID, nil
}

// UpdateModuleProgress upserts the (user, module) overlay row. Percent is
// clamped to 0-100; 100 marks the module completed, anything the user has
// touched below that is in progress.
func (s *RoadmapService) UpdateModuleProgress(userID, moduleID uint, percent int) (models.UserModuleProgress, error) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	status := models.StatusInProgress
	if percent >= 100 {
		status = models.StatusCompleted
	}

	var module models.Module
	if err := db.DB.First(&module, moduleID).Error; err != nil {
		return models.UserModuleProgress{}, fmt.Errorf("module %d: %w", moduleID, err)
	}

	var row models.UserModuleProgress
	err := db.DB.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&row).Error
	switch {
	case err == nil:
		row.Percent = percent
		row.Status = status
		if err := db.DB.Save(&row).Error; err != nil {
			return models.UserModuleProgress{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.UserModuleProgress{UserID: userID, ModuleID: moduleID, Percent: percent, Status: status}
		if err := db.DB.Create(&row).Error; err != nil {
			if db.IsDuplicate(err) {
				// Concurrent first update created the row; apply ours on top.
				if err := db.DB.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&row).Error; err != nil {
					return models.UserModuleProgress{}, err
				}
				row.Percent = percent
				row.Status = status
				if err := db.DB.Save(&row).Error; err != nil {
					return models.UserModuleProgress{}, err
				}
				return row, nil
			}
			return models.UserModuleProgress{}, err
		}
	default:
		return models.UserModuleProgress{}, err
	}

	return row, nil
}
