// services/point_service.go - point balances and level lookup
package services

import (
	"fmt"
	"sort"

	"ecomission/models"

	"gorm.io/gorm"
)

// PointService owns the point balance and the level table. The table is
// loaded and validated once at startup; LevelOf is then a pure lookup.
type PointService struct {
	db     *gorm.DB
	levels []models.LevelDefinition // sorted by MinPoints
}

func NewPointService(db *gorm.DB) (*PointService, error) {
	var levels []models.LevelDefinition
	if err := db.Order("min_points ASC").Find(&levels).Error; err != nil {
		return nil, fmt.Errorf("load level table: %w", err)
	}

	if err := models.ValidateLevelTable(levels); err != nil {
		return nil, fmt.Errorf("level table invalid: %w", err)
	}

	return &PointService{db: db, levels: levels}, nil
}

// LevelOf returns the level definition covering points. The startup
// validation guarantees every non-negative balance is covered.
func (s *PointService) LevelOf(points int) models.LevelDefinition {
	if points < 0 {
		points = 0
	}

	// Rightmost level with MinPoints <= points.
	i := sort.Search(len(s.levels), func(i int) bool {
		return s.levels[i].MinPoints > points
	})
	return s.levels[i-1]
}

// Levels returns the full table, ordered by MinPoints.
func (s *PointService) Levels() []models.LevelDefinition {
	out := make([]models.LevelDefinition, len(s.levels))
	copy(out, s.levels)
	return out
}

// Credit atomically increases a user's balance by delta and rewrites the
// derived level from the new balance. It must run inside the caller's
// transaction so a timeout or review failure rolls the credit back with
// everything else. Balances never decrease; there is no debit path.
func (s *PointService) Credit(tx *gorm.DB, userID uint, delta int) (int, error) {
	if delta <= 0 {
		return 0, fmt.Errorf("credit delta must be positive, got %d", delta)
	}

	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}

	var user models.User
	if err := tx.Select("points").First(&user, userID).Error; err != nil {
		return 0, err
	}

	level := s.LevelOf(user.Points)
	if err := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("level", level.Rank).Error; err != nil {
		return 0, err
	}

	return user.Points, nil
}
