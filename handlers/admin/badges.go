// handlers/admin/badges.go
package admin

import (
	"ecomission/database"
	"ecomission/models"

	"github.com/gofiber/fiber/v2"
)

// GetBadges returns the full badge catalog
func GetBadges(c *fiber.Ctx) error {
	var badges []models.Badge
	if err := database.GetDB().Order("id ASC").Find(&badges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch badges"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"badges":  badges,
	})
}

// CreateBadge adds a badge to the catalog. Criteria are validated here so a
// badge nobody can earn never reaches the evaluator.
func CreateBadge(c *fiber.Ctx) error {
	var badge models.Badge
	if err := c.BodyParser(&badge); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if badge.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Badge name is required"})
	}
	if !badge.WellFormed() {
		return c.Status(400).JSON(fiber.Map{"error": "Badge criteria are not satisfiable"})
	}

	if err := database.GetDB().Create(&badge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create badge"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"badge":   badge,
	})
}

// UpdateBadge edits a badge definition. Already-earned badges are unaffected;
// new criteria only apply to future evaluations.
func UpdateBadge(c *fiber.Ctx) error {
	db := database.GetDB()

	var badge models.Badge
	if err := db.First(&badge, c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Badge not found"})
	}

	if err := c.BodyParser(&badge); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if !badge.WellFormed() {
		return c.Status(400).JSON(fiber.Map{"error": "Badge criteria are not satisfiable"})
	}

	if err := db.Save(&badge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update badge"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"badge":   badge,
	})
}
