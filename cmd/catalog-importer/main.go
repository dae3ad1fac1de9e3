package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"ecomission/database"
	"ecomission/models"

	"github.com/joho/godotenv"
)

// Catalog is the import file format. Either section may be empty.
type Catalog struct {
	Missions []models.Mission `json:"missions"`
	Badges   []models.Badge   `json:"badges"`
}

func main() {
	path := flag.String("file", "./catalog.json", "path to catalog JSON file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal("Failed to read catalog file:", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatal("Failed to parse catalog JSON:", err)
	}

	fmt.Printf("Found %d missions and %d badges\n\n", len(catalog.Missions), len(catalog.Badges))

	// Reject the whole file before touching the database. A partial import
	// would leave the catalog in a state startup validation never saw.
	for i, m := range catalog.Missions {
		if m.Title == "" || m.Points <= 0 {
			log.Fatalf("Mission %d (%q): title and positive points are required", i, m.Title)
		}
		switch m.Difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			log.Fatalf("Mission %d (%q): difficulty must be easy, medium or hard", i, m.Title)
		}
	}
	for i, b := range catalog.Badges {
		if b.Name == "" {
			log.Fatalf("Badge %d: name is required", i)
		}
		if !b.WellFormed() {
			log.Fatalf("Badge %d (%q): criteria are not satisfiable", i, b.Name)
		}
	}

	database.InitDB()
	db := database.GetDB()
	defer database.CloseDB()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	batchSize := 100
	for i := 0; i < len(catalog.Missions); i += batchSize {
		end := i + batchSize
		if end > len(catalog.Missions) {
			end = len(catalog.Missions)
		}

		batch := catalog.Missions[i:end]
		if err := db.Create(&batch).Error; err != nil {
			log.Printf("Error inserting missions %d-%d: %v\n", i, end, err)
		} else {
			fmt.Printf("Inserted missions %d-%d\n", i+1, end)
		}
	}

	for _, badge := range catalog.Badges {
		b := badge
		if err := db.Create(&b).Error; err != nil {
			log.Printf("Error inserting badge %q: %v\n", b.Name, err)
		} else {
			fmt.Printf("Inserted badge: %s\n", b.Name)
		}
	}

	fmt.Println("\n✓ Import completed successfully!")

	var missionCount, badgeCount int64
	db.Model(&models.Mission{}).Count(&missionCount)
	db.Model(&models.Badge{}).Count(&badgeCount)
	fmt.Printf("✓ Total missions in database: %d\n", missionCount)
	fmt.Printf("✓ Total badges in database: %d\n", badgeCount)
}
