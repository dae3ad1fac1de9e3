// database/seed.go - reference data seeds
package database

import (
	"log"

	"ecomission/models"

	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

// Seed loads the level table and badge catalog when they are empty. Existing
// rows are left alone so admin edits survive restarts.
func Seed(db *gorm.DB) error {
	if err := seedLevels(db); err != nil {
		return err
	}
	return seedBadges(db)
}

func seedLevels(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.LevelDefinition{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	levels := []models.LevelDefinition{
		{Rank: 1, Name: "Novice", Color: "#9ca3af", MinPoints: 0, MaxPoints: intPtr(1000)},
		{Rank: 2, Name: "Explorer", Color: "#22c55e", MinPoints: 1000, MaxPoints: intPtr(5000)},
		{Rank: 3, Name: "Guardian", Color: "#3b82f6", MinPoints: 5000, MaxPoints: intPtr(15000)},
		{Rank: 4, Name: "Champion", Color: "#a855f7", MinPoints: 15000, MaxPoints: nil},
	}

	if err := models.ValidateLevelTable(levels); err != nil {
		return err
	}

	log.Println("Seeding level table...")
	return db.Create(&levels).Error
}

func seedBadges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Badge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	badges := []models.Badge{
		{Name: "First Steps", Description: "Complete your first mission", Icon: "footprints", MinMissions: 1, BonusPoints: 25},
		{Name: "Getting Serious", Description: "Complete 10 missions", Icon: "flame", MinMissions: 10, BonusPoints: 100},
		{Name: "Recycler", Description: "Complete 3 recycling missions", Icon: "recycle", MinMissions: 3, Category: "Recycling", BonusPoints: 50},
		{Name: "Fixer", Description: "Complete 3 repair missions", Icon: "wrench", MinMissions: 3, Category: "Repair", BonusPoints: 50},
		{Name: "Collector", Description: "Complete 5 collection missions", Icon: "package", MinMissions: 5, Category: "Collection", BonusPoints: 75},
		{Name: "Point Hunter", Description: "Reach 1,000 points", Icon: "target", MinPoints: 1000, BonusPoints: 0},
		{Name: "Eco Hero", Description: "Reach 10,000 points", Icon: "award", MinPoints: 10000, BonusPoints: 500},
	}

	for i := range badges {
		if !badges[i].WellFormed() {
			log.Fatalf("seed badge %q has unsatisfiable criteria", badges[i].Name)
		}
	}

	log.Println("Seeding badge catalog...")
	return db.Create(&badges).Error
}
