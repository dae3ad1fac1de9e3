// handlers/stats.go
package handlers

import (
	"ecomission/middleware"
	"ecomission/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMyStats returns points, level, badge count, mission count, rank and
// streak for the authenticated user
// GET /api/stats/me
func GetMyStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	stats, err := leaderboardService.Stats(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// GetUserStats returns the same profile numbers for any user
// GET /api/stats/users/:id
func GetUserStats(c *fiber.Ctx) error {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user ID",
		})
	}

	stats, err := leaderboardService.Stats(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// GetLevels returns the level table for progress displays
// GET /api/levels
func GetLevels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"levels":  pointService.Levels(),
	})
}
