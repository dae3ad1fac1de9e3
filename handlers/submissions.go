// handlers/submissions.go
package handlers

import (
	"ecomission/middleware"
	"ecomission/services"
	"ecomission/utils"

	"github.com/gofiber/fiber/v2"
)

type SubmitRequest struct {
	MissionID uint   `json:"mission_id"`
	Notes     string `json:"notes"`
}

type ReviewRequest struct {
	Decision string `json:"decision"` // approve | reject
}

// SubmitMission creates a pending submission for the authenticated student
// POST /api/submissions
func SubmitMission(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.MissionID == 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "mission_id is required",
		})
	}

	submission, err := submissionService.Submit(userID, req.MissionID, req.Notes)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"submission": submission,
	})
}

// ReviewSubmission approves or rejects a pending submission
// POST /api/submissions/:id/review
func ReviewSubmission(c *fiber.Ctx) error {
	reviewerID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	submissionID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid submission ID",
		})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	decision := services.ReviewDecision(req.Decision)
	if decision != services.DecisionApprove && decision != services.DecisionReject {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "decision must be 'approve' or 'reject'",
		})
	}

	submission, err := submissionService.Review(submissionID, decision, reviewerID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"submission": submission,
	})
}

// GetMySubmissions lists the authenticated user's submissions
// GET /api/submissions/mine
func GetMySubmissions(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	submissions, err := submissionService.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"submissions": submissions,
		"count":       len(submissions),
	})
}

// GetPendingSubmissions lists submissions awaiting review, oldest first
// GET /api/submissions/pending?limit=50
func GetPendingSubmissions(c *fiber.Ctx) error {
	limit := utils.ClampInt(utils.QueryInt(c, "limit", 50), 1, 200)

	submissions, err := submissionService.ListPending(limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"submissions": submissions,
		"count":       len(submissions),
	})
}
