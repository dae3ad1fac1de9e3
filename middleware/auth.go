// middleware/auth.go
package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"ecomission/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer token and loads user identity into the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return unauthorized(c, err)
	}

	setIdentity(c, claims)
	return c.Next()
}

// ReviewerAuthMiddleware requires a teacher or admin token.
func ReviewerAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return unauthorized(c, err)
	}

	role, _ := claims["role"].(string)
	if role != string(models.RoleTeacher) && role != string(models.RoleAdmin) {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Reviewer privileges required."})
	}

	setIdentity(c, claims)
	return c.Next()
}

// AdminAuthMiddleware requires an admin token.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return unauthorized(c, err)
	}

	role, _ := claims["role"].(string)
	if role != string(models.RoleAdmin) {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Admin privileges required."})
	}

	setIdentity(c, claims)
	return c.Next()
}

func setIdentity(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("role", claims["role"])
}

func unauthorized(c *fiber.Ctx, err error) error {
	return c.Status(401).JSON(fiber.Map{"error": err.Error()})
}

func parseToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("Invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("Token expired")
	}

	return claims, nil
}

func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	// JWT claims decode numbers as float64
	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}
	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

func GetRole(c *fiber.Ctx) models.Role {
	if role, ok := c.Locals("role").(string); ok {
		return models.Role(role)
	}
	return models.RoleStudent
}
