package db

import (
	"log"

	"skillpath/internal/models"
)

// seedCatalog loads the bundled module and course catalogs on an empty
// database. The catalogs are static content: users never edit them.
func seedCatalog() {
	var count int64
	DB.Model(&models.Module{}).Count(&count)
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	modules := []models.Module{
		{
			Title:          "Programming Foundations",
			Description:    "Variables, control flow, functions and how to think in programs.",
			Difficulty:     models.DifficultyBeginner,
			Category:       "programming",
			LearningStyles: []string{"visual", "hands-on"},
			EstimatedHours: 12,
			Resources: models.ModuleResources{
				Readings:  []string{"What is a program?", "Thinking in functions"},
				Videos:    []string{"https://youtu.be/zOjov-2OZ0E"},
				Exercises: []string{"FizzBuzz", "Temperature converter"},
				Projects:  []string{"Number guessing game"},
			},
		},
		{
			Title:          "Web Fundamentals",
			Description:    "HTML, CSS and the request/response cycle.",
			Difficulty:     models.DifficultyBeginner,
			Category:       "web-development",
			LearningStyles: []string{"visual", "reading"},
			EstimatedHours: 10,
			Resources: models.ModuleResources{
				Readings:  []string{"How the web works", "HTML semantics"},
				Videos:    []string{"https://youtu.be/UB1O30fR-EE"},
				Exercises: []string{"Build a landing page"},
				Projects:  []string{"Personal portfolio site"},
			},
		},
		{
			Title:          "Data Structures in Practice",
			Description:    "Lists, maps, trees and when to reach for each.",
			Difficulty:     models.DifficultyIntermediate,
			Category:       "programming",
			LearningStyles: []string{"hands-on", "reading"},
			EstimatedHours: 18,
			Resources: models.ModuleResources{
				Readings:  []string{"Big-O by example"},
				Videos:    []string{"https://youtu.be/RBSGKlAvoiM"},
				Exercises: []string{"Implement a linked list", "Balanced brackets"},
				Projects:  []string{"In-memory key-value store"},
			},
		},
		{
			Title:          "APIs and Databases",
			Description:    "REST design, SQL basics and persisting application state.",
			Difficulty:     models.DifficultyIntermediate,
			Category:       "web-development",
			LearningStyles: []string{"hands-on"},
			EstimatedHours: 20,
			Resources: models.ModuleResources{
				Readings:  []string{"REST in plain words", "SQL joins"},
				Videos:    []string{"https://youtu.be/7YcW25PHnAA"},
				Exercises: []string{"Model a library schema"},
				Projects:  []string{"Todo API with persistence"},
			},
		},
		{
			Title:          "Exploratory Data Analysis",
			Description:    "Loading, cleaning and charting real datasets.",
			Difficulty:     models.DifficultyIntermediate,
			Category:       "data-science",
			LearningStyles: []string{"visual", "hands-on"},
			EstimatedHours: 16,
			Resources: models.ModuleResources{
				Readings:  []string{"Tidy data"},
				Videos:    []string{"https://youtu.be/xi0vhXFPegw"},
				Exercises: []string{"Clean a messy CSV"},
				Projects:  []string{"City bike usage report"},
			},
		},
		{
			Title:          "Distributed Systems Basics",
			Description:    "Consistency, replication and failure as a first-class citizen.",
			Difficulty:     models.DifficultyAdvanced,
			Category:       "programming",
			LearningStyles: []string{"reading"},
			EstimatedHours: 24,
			Resources: models.ModuleResources{
				Readings:  []string{"Fallacies of distributed computing", "CAP in practice"},
				Videos:    []string{"https://youtu.be/Y6Ev8GIlbxc"},
				Exercises: []string{"Design a retry policy"},
				Projects:  []string{"Replicated counter"},
			},
		},
		{
			Title:          "Machine Learning Foundations",
			Description:    "Regression, classification and evaluation without the magic.",
			Difficulty:     models.DifficultyAdvanced,
			Category:       "data-science",
			LearningStyles: []string{"visual", "reading"},
			EstimatedHours: 28,
			Resources: models.ModuleResources{
				Readings:  []string{"Bias and variance"},
				Videos:    []string{"https://youtu.be/aircAruvnKk"},
				Exercises: []string{"Train/test split by hand"},
				Projects:  []string{"Spam classifier"},
			},
		},
		{
			Title:          "Interface Design Essentials",
			Description:    "Layout, typography and designing for comprehension.",
			Difficulty:     models.DifficultyBeginner,
			Category:       "design",
			LearningStyles: []string{"visual"},
			EstimatedHours: 8,
			Resources: models.ModuleResources{
				Readings:  []string{"Visual hierarchy"},
				Videos:    []string{"https://youtu.be/_Hp_dI0DzY4"},
				Exercises: []string{"Redesign a settings page"},
				Projects:  []string{"Mobile app mockup"},
			},
		},
	}

	for i := range modules {
		if err := DB.Create(&modules[i]).Error; err != nil {
			log.Printf("Failed to seed module %q: %v", modules[i].Title, err)
		}
	}

	courses := []models.Course{
		{Title: "Intro to Go", Description: "A tour of the Go language for newcomers.", Category: "programming", Level: models.DifficultyBeginner, VideoURL: "https://youtu.be/YS4e4q9oBaU", Minutes: 95},
		{Title: "HTTP From Scratch", Description: "What actually happens when you load a page.", Category: "web-development", Level: models.DifficultyBeginner, VideoURL: "https://youtu.be/iYM2zFP3Zn0", Minutes: 42},
		{Title: "SQL Deep Dive", Description: "Indexes, query plans and transactions.", Category: "web-development", Level: models.DifficultyIntermediate, VideoURL: "https://youtu.be/HXV3zeQKqGY", Minutes: 240},
		{Title: "Pandas in an Afternoon", Description: "Dataframes for working analysts.", Category: "data-science", Level: models.DifficultyIntermediate, VideoURL: "https://youtu.be/vmEHCJofslg", Minutes: 60},
		{Title: "Neural Networks Visually", Description: "Backpropagation explained with pictures.", Category: "data-science", Level: models.DifficultyAdvanced, VideoURL: "https://youtu.be/aircAruvnKk", Minutes: 19},
		{Title: "Design for Developers", Description: "Enough design taste to ship decent UIs.", Category: "design", Level: models.DifficultyBeginner, VideoURL: "https://youtu.be/YNOwO5s4AL8", Minutes: 50},
	}

	for i := range courses {
		if err := DB.Create(&courses[i]).Error; err != nil {
			log.Printf("Failed to seed course %q: %v", courses[i].Title, err)
		}
	}

	// A starter quiz for the first two modules keeps progress updates
	// exercised end to end.
	quizzes := []models.Quiz{
		{
			ModuleID: modules[0].ID,
			Title:    "Programming Foundations check",
			Questions: []models.QuizQuestion{
				{Prompt: "What does a variable hold?", Options: []string{"A value", "A file", "A program"}, Answer: 0},
				{Prompt: "Which construct repeats work?", Options: []string{"A condition", "A loop", "A comment"}, Answer: 1},
			},
		},
		{
			ModuleID: modules[1].ID,
			Title:    "Web Fundamentals check",
			Questions: []models.QuizQuestion{
				{Prompt: "What does HTML describe?", Options: []string{"Structure", "Styling", "Behavior"}, Answer: 0},
				{Prompt: "Which status code means not found?", Options: []string{"200", "301", "404"}, Answer: 2},
			},
		},
	}

	for i := range quizzes {
		if err := DB.Create(&quizzes[i]).Error; err != nil {
			log.Printf("Failed to seed quiz %q: %v", quizzes[i].Title, err)
		}
	}

	log.Println("Catalog seeded successfully")
}
