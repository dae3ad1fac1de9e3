// handlers/leaderboard.go
package handlers

import (
	"ecomission/services"
	"ecomission/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTeamLeaderboard returns teams ranked by live total points
// GET /api/leaderboard/teams?limit=50
func GetTeamLeaderboard(c *fiber.Ctx) error {
	limit := utils.ClampInt(utils.QueryInt(c, "limit", 50), 1, 100)

	rankings, err := leaderboardService.RankTeams(limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"rankings": rankings,
		"count":    len(rankings),
	})
}

// GetUserLeaderboard returns users ranked by points
// GET /api/leaderboard/users?scope=global|team&team_id=3&limit=50
func GetUserLeaderboard(c *fiber.Ctx) error {
	limit := utils.ClampInt(utils.QueryInt(c, "limit", 50), 1, 100)

	scope := services.RankScope(c.Query("scope", string(services.ScopeGlobal)))

	var teamID uint
	if scope == services.ScopeTeam {
		teamID = uint(utils.QueryInt(c, "team_id", 0))
		if teamID == 0 {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "team_id is required for team scope",
			})
		}
	}

	rankings, err := leaderboardService.RankUsers(scope, teamID, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"scope":    scope,
		"rankings": rankings,
		"count":    len(rankings),
	})
}
