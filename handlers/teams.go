// handlers/teams.go
package handlers

import (
	"strings"

	"ecomission/middleware"
	"ecomission/models"
	"ecomission/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTeam creates a new team (teacher/admin only)
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	if role := middleware.GetRole(c); role != models.RoleTeacher && role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   "Only teachers can create teams",
		})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		MaxMembers  int    `json:"max_members"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.MaxMembers == 0 {
		req.MaxMembers = 6
	}

	team, err := teamService.CreateTeam(req.Name, req.Description, req.MaxMembers, userID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// GetTeam retrieves a team with members, live total and rank
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	teamID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	team, err := teamService.GetTeam(teamID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// GetMyTeam resolves the authenticated user's team
// GET /api/teams/mine
func GetMyTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	team, err := teamService.GetTeamForUser(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// JoinTeam adds the authenticated user to a team by join code
// POST /api/teams/join
func JoinTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		TeamCode string `json:"team_code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	code := strings.ToUpper(strings.TrimSpace(req.TeamCode))
	if code == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "team_code is required",
		})
	}

	team, err := teamService.Join(userID, code)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// LeaveTeam removes the authenticated user from their team
// POST /api/teams/leave
func LeaveTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	if err := teamService.Leave(userID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Left team",
	})
}

// RemoveMember kicks a member from a team (captain or admin only)
// DELETE /api/teams/:id/members/:userId
func RemoveMember(c *fiber.Ctx) error {
	actorID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	teamID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	userID, err := utils.ParseUintParam(c, "userId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user ID",
		})
	}

	if err := teamService.RemoveMember(actorID, teamID, userID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member removed",
	})
}

// GetTeamActivity returns the team's feed, newest first
// GET /api/teams/:id/activity?limit=20
func GetTeamActivity(c *fiber.Ctx) error {
	teamID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	limit := utils.ClampInt(utils.QueryInt(c, "limit", 20), 1, 100)

	events, err := teamService.Activity(teamID, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"activity": events,
		"count":    len(events),
	})
}
