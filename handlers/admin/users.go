// handlers/admin/users.go
package admin

import (
	"ecomission/database"
	"ecomission/models"
	"ecomission/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists accounts, optionally filtered by role
// GET /api/admin/users?role=teacher&limit=100
func GetUsers(c *fiber.Ctx) error {
	limit := utils.ClampInt(utils.QueryInt(c, "limit", 100), 1, 500)

	query := database.GetDB().Order("id ASC").Limit(limit)
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
		"count":   len(users),
	})
}

// SetUserRole promotes or demotes an account. This is how teacher and admin
// accounts come to exist; registration only ever creates students.
// PUT /api/admin/users/:id/role
func SetUserRole(c *fiber.Ctx) error {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req struct {
		Role models.Role `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	switch req.Role {
	case models.RoleStudent, models.RoleTeacher, models.RoleAdmin:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Role must be student, teacher or admin"})
	}

	res := database.GetDB().Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", req.Role)
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update role"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role updated",
	})
}
