// handlers/badges.go
package handlers

import (
	"ecomission/database"
	"ecomission/middleware"
	"ecomission/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyBadges returns the full catalog with the user's earned state
// GET /api/badges/mine
func GetMyBadges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	var earned []models.UserBadge
	if err := db.Preload("Badge").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&earned).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch badges"})
	}

	var catalog []models.Badge
	if err := db.Order("id ASC").Find(&catalog).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch badge catalog"})
	}

	earnedMap := make(map[uint]models.UserBadge, len(earned))
	for _, ub := range earned {
		earnedMap[ub.BadgeID] = ub
	}

	badges := make([]fiber.Map, 0, len(catalog))
	for _, badge := range catalog {
		entry := fiber.Map{
			"id":           badge.ID,
			"name":         badge.Name,
			"description":  badge.Description,
			"icon":         badge.Icon,
			"bonus_points": badge.BonusPoints,
			"earned":       false,
		}
		if ub, ok := earnedMap[badge.ID]; ok {
			entry["earned"] = true
			entry["earned_at"] = ub.EarnedAt
		}
		badges = append(badges, entry)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"badges":  badges,
		"total":   len(catalog),
		"earned":  len(earned),
	})
}

// GetBadgeCatalog returns all badge definitions
// GET /api/badges
func GetBadgeCatalog(c *fiber.Ctx) error {
	var badges []models.Badge
	if err := database.GetDB().Order("id ASC").Find(&badges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch badges"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"badges":  badges,
	})
}
