// handlers/handlers.go - service wiring for the HTTP layer
package handlers

import (
	"errors"
	"log"

	"ecomission/database"
	"ecomission/services"

	"github.com/gofiber/fiber/v2"
)

var (
	pointService       *services.PointService
	badgeService       *services.BadgeService
	submissionService  *services.SubmissionService
	teamService        *services.TeamService
	leaderboardService *services.LeaderboardService
)

// InitHandlers wires the engine services. Called once after the database is
// up; a broken level table or badge catalog aborts here, before any request
// is served.
func InitHandlers() {
	db := database.GetDB()

	var err error
	pointService, err = services.NewPointService(db)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	badgeService, err = services.NewBadgeService(db, pointService)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	submissionService = services.NewSubmissionService(db, pointService, badgeService)
	teamService = services.NewTeamService(db)
	leaderboardService = services.NewLeaderboardService(db, pointService)
}

// fail translates a service error into the JSON error envelope. Business
// errors keep their code; anything else is reported as a generic fault.
func fail(c *fiber.Ctx, err error) error {
	status := services.StatusOf(err)

	var se *services.ServiceError
	if errors.As(err, &se) {
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   se.Message,
			"code":    se.Code,
		})
	}

	log.Printf("internal error: %v", err)
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}
