package services

import (
	"testing"

	"skillpath/internal/models"
)

func catalogFixture() []models.Module {
	return []models.Module{
		{
			ID:             1,
			Title:          "Programming Foundations",
			Difficulty:     models.DifficultyBeginner,
			Category:       "programming",
			LearningStyles: []string{"visual", "hands-on"},
		},
		{
			ID:             2,
			Title:          "Distributed Systems Basics",
			Difficulty:     models.DifficultyAdvanced,
			Category:       "programming",
			LearningStyles: []string{"reading"},
		},
		{
			ID:             3,
			Title:          "Interface Design Essentials",
			Difficulty:     models.DifficultyBeginner,
			Category:       "design",
			LearningStyles: []string{"visual"},
		},
	}
}

func TestMatchesPreferencesAllDimensions(t *testing.T) {
	prefs := models.UserRoadmap{
		Difficulty:     "beginner",
		Interests:      []string{"programming"},
		LearningStyles: []string{"visual"},
	}
	catalog := catalogFixture()

	if !MatchesPreferences(catalog[0], prefs) {
		t.Errorf("beginner programming module with visual style should match")
	}
	if MatchesPreferences(catalog[1], prefs) {
		t.Errorf("advanced module must not match a beginner preference")
	}
	if MatchesPreferences(catalog[2], prefs) {
		t.Errorf("design module must not match programming-only interests")
	}
}

func TestMatchesPreferencesOmittedDimensionsMatchAll(t *testing.T) {
	catalog := catalogFixture()

	// Empty preferences match everything.
	open := models.UserRoadmap{}
	for _, m := range catalog {
		if !MatchesPreferences(m, open) {
			t.Errorf("module %q should match empty preferences", m.Title)
		}
	}

	// Difficulty comparison is case-insensitive.
	prefs := models.UserRoadmap{Difficulty: "Beginner"}
	if !MatchesPreferences(catalog[0], prefs) {
		t.Errorf("difficulty match must be case-insensitive")
	}
}

func TestBuildRoadmapOrdersByDifficulty(t *testing.T) {
	catalog := []models.Module{
		{ID: 1, Difficulty: models.DifficultyAdvanced},
		{ID: 2, Difficulty: "mystery"},
		{ID: 3, Difficulty: models.DifficultyBeginner},
		{ID: 4, Difficulty: models.DifficultyIntermediate},
	}

	out := BuildRoadmap(models.UserRoadmap{}, catalog, nil)

	want := []uint{3, 4, 1, 2} // beginner < intermediate < advanced < unknown
	if len(out) != len(want) {
		t.Fatalf("expected %d modules, got %d", len(want), len(out))
	}
	for i, m := range out {
		if m.ID != want[i] {
			t.Errorf("position %d: expected module %d, got %d", i, want[i], m.ID)
		}
	}
}

func TestBuildRoadmapProgressOverlay(t *testing.T) {
	catalog := catalogFixture()
	progress := []models.UserModuleProgress{
		{UserID: 7, ModuleID: 1, Percent: 40, Status: models.StatusInProgress},
	}

	out := BuildRoadmap(models.UserRoadmap{}, catalog, progress)

	for _, m := range out {
		switch m.ID {
		case 1:
			if m.Percent != 40 || m.Status != models.StatusInProgress {
				t.Errorf("module 1 should carry its overlay, got %d%% %s", m.Percent, m.Status)
			}
		default:
			if m.Percent != 0 || m.Status != models.StatusLocked {
				t.Errorf("module %d without overlay should default to 0%% locked", m.ID)
			}
		}
	}
}

func TestBuildRoadmapZeroMatchesIsEmptyNotError(t *testing.T) {
	prefs := models.UserRoadmap{Interests: []string{"astrobiology"}}

	out := BuildRoadmap(prefs, catalogFixture(), nil)
	if len(out) != 0 {
		t.Errorf("expected empty roadmap for non-matching preferences, got %d", len(out))
	}
}
