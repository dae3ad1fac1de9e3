// utils/http.go - request parsing helpers for Fiber handlers
package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseUintParam reads a numeric path parameter.
func ParseUintParam(c *fiber.Ctx, key string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(key), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// QueryInt reads an integer query parameter with a default.
func QueryInt(c *fiber.Ctx, key string, def int) int {
	s := c.Query(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// ClampInt bounds v to [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
