// handlers/missions.go
package handlers

import (
	"time"

	"ecomission/database"
	"ecomission/models"
	"ecomission/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMissions lists active missions, optionally filtered
// GET /api/missions?category=Recycling&difficulty=easy
func GetMissions(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Where("is_active = ?", true).
		Where("(deadline IS NULL OR deadline > ?)", time.Now().UTC())

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var missions []models.Mission
	if err := query.Order("deadline ASC NULLS LAST, points DESC").Find(&missions).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch missions",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"missions": missions,
		"count":    len(missions),
	})
}

// GetMission returns a single mission
// GET /api/missions/:id
func GetMission(c *fiber.Ctx) error {
	missionID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid mission ID",
		})
	}

	var mission models.Mission
	if err := database.GetDB().First(&mission, missionID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Mission not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"mission": mission,
	})
}
