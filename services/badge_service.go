// services/badge_service.go - badge evaluation and granting
package services

import (
	"fmt"
	"time"

	"ecomission/models"

	"gorm.io/gorm"
)

// BadgeService re-checks unlock criteria after points are credited and grants
// whatever became eligible. Criteria live on the badge rows, so new badges
// need no engine change.
type BadgeService struct {
	db     *gorm.DB
	points *PointService
}

func NewBadgeService(db *gorm.DB, points *PointService) (*BadgeService, error) {
	var badges []models.Badge
	if err := db.Find(&badges).Error; err != nil {
		return nil, fmt.Errorf("load badge catalog: %w", err)
	}

	for i := range badges {
		if !badges[i].WellFormed() {
			return nil, fmt.Errorf("badge catalog invalid: badge %q (id %d) has no satisfiable criteria", badges[i].Name, badges[i].ID)
		}
	}

	return &BadgeService{db: db, points: points}, nil
}

// Evaluate grants every badge the user now qualifies for and credits its
// bonus points. Grants happen in ascending badge id order, and a bonus can
// itself unlock the next point-threshold badge, so passes repeat until
// nothing new is granted. Idempotent: already-earned badges are skipped, and
// the unique (user_id, badge_id) index backs that up at the storage layer.
//
// Must run inside the caller's transaction so grants commit atomically with
// the approval that triggered them.
func (s *BadgeService) Evaluate(tx *gorm.DB, userID uint) ([]models.Badge, error) {
	var granted []models.Badge

	for {
		newly, err := s.evaluateOnce(tx, userID)
		if err != nil {
			return nil, err
		}
		if len(newly) == 0 {
			return granted, nil
		}
		granted = append(granted, newly...)
	}
}

func (s *BadgeService) evaluateOnce(tx *gorm.DB, userID uint) ([]models.Badge, error) {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var earnedIDs []uint
	if err := tx.Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &earnedIDs).Error; err != nil {
		return nil, err
	}

	earned := make(map[uint]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earned[id] = true
	}

	var badges []models.Badge
	if err := tx.Order("id ASC").Find(&badges).Error; err != nil {
		return nil, err
	}

	var newly []models.Badge
	for _, badge := range badges {
		if earned[badge.ID] {
			continue
		}

		ok, err := s.satisfies(tx, &user, &badge)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		grant := models.UserBadge{
			UserID:   userID,
			BadgeID:  badge.ID,
			EarnedAt: time.Now().UTC(),
		}
		if err := tx.Create(&grant).Error; err != nil {
			return nil, err
		}

		if badge.BonusPoints > 0 {
			if _, err := s.points.Credit(tx, userID, badge.BonusPoints); err != nil {
				return nil, err
			}
		}

		newly = append(newly, badge)
	}

	return newly, nil
}

func (s *BadgeService) satisfies(tx *gorm.DB, user *models.User, badge *models.Badge) (bool, error) {
	if badge.MinPoints > 0 && user.Points < badge.MinPoints {
		return false, nil
	}

	if badge.MinMissions > 0 {
		var count int64
		q := tx.Model(&models.Submission{}).
			Where("submissions.user_id = ? AND submissions.status = ?", user.ID, models.SubmissionApproved)
		if badge.Category != "" {
			q = q.Joins("JOIN missions ON missions.id = submissions.mission_id").
				Where("missions.category = ?", badge.Category)
		}
		if err := q.Count(&count).Error; err != nil {
			return false, err
		}
		if count < int64(badge.MinMissions) {
			return false, nil
		}
	}

	return true, nil
}
