// handlers/admin/missions.go
package admin

import (
	"ecomission/database"
	"ecomission/models"

	"github.com/gofiber/fiber/v2"
)

// GetMissions returns all missions, including inactive ones
func GetMissions(c *fiber.Ctx) error {
	var missions []models.Mission
	if err := database.GetDB().Order("id ASC").Find(&missions).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch missions"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"missions": missions,
	})
}

// CreateMission creates a new mission
func CreateMission(c *fiber.Ctx) error {
	var mission models.Mission
	if err := c.BodyParser(&mission); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if mission.Title == "" || mission.Points <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Title and positive points are required"})
	}

	switch mission.Difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Difficulty must be easy, medium or hard"})
	}

	if err := database.GetDB().Create(&mission).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create mission"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"mission": mission,
	})
}

// UpdateMission edits a mission. Already-awarded points are snapshots on
// their submissions and stay untouched.
func UpdateMission(c *fiber.Ctx) error {
	db := database.GetDB()

	var mission models.Mission
	if err := db.First(&mission, c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Mission not found"})
	}

	if err := c.BodyParser(&mission); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if mission.Points <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Points must be positive"})
	}

	if err := db.Save(&mission).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update mission"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"mission": mission,
	})
}

// DeactivateMission retires a mission without deleting its audit trail
func DeactivateMission(c *fiber.Ctx) error {
	db := database.GetDB()

	res := db.Model(&models.Mission{}).
		Where("id = ?", c.Params("id")).
		Update("is_active", false)
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate mission"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Mission not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Mission deactivated",
	})
}
