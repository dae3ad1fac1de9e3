// services/submission_service.go - submission lifecycle and point awarding
package services

import (
	"errors"
	"fmt"
	"time"

	"ecomission/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

// SubmissionService is the single writer of points_awarded facts. Every
// nonzero balance in the system traces back to an approval here or to a badge
// bonus granted in the same transaction.
type SubmissionService struct {
	db     *gorm.DB
	points *PointService
	badges *BadgeService
}

func NewSubmissionService(db *gorm.DB, points *PointService, badges *BadgeService) *SubmissionService {
	return &SubmissionService{db: db, points: points, badges: badges}
}

// Submit creates a pending submission for the mission. One open submission
// per (user, mission): a pending or approved one blocks a second attempt,
// a rejected one does not. The user's team is snapshotted at this moment.
func (s *SubmissionService) Submit(userID, missionID uint, notes string) (*models.Submission, error) {
	var submission *models.Submission

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var mission models.Mission
		if err := tx.First(&mission, missionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMissionNotFound
			}
			return err
		}

		if !mission.OpenFor(time.Now().UTC()) {
			return ErrMissionInactive
		}

		var open int64
		if err := tx.Model(&models.Submission{}).
			Where("user_id = ? AND mission_id = ? AND status IN ?",
				userID, missionID,
				[]models.SubmissionStatus{models.SubmissionPending, models.SubmissionApproved}).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrAlreadySubmitted
		}

		submission = &models.Submission{
			Reference:   uuid.New().String(),
			UserID:      userID,
			MissionID:   missionID,
			TeamID:      currentTeamID(tx, userID),
			Status:      models.SubmissionPending,
			Notes:       notes,
			SubmittedAt: time.Now().UTC(),
		}

		// The partial unique index on open (user, mission) pairs turns a
		// lost race here into a storage error instead of a double row.
		return tx.Create(submission).Error
	})
	if err != nil {
		return nil, err
	}

	return submission, nil
}

// Review decides a pending submission. The row is locked for the whole
// transaction, so of two racing reviews exactly one commits and the loser
// fails with ErrInvalidState. On approval the mission's points at this moment
// are frozen into the submission, the student is credited, badges are
// re-evaluated, and the team feed is updated - all or nothing.
func (s *SubmissionService) Review(submissionID uint, decision ReviewDecision, reviewerID uint) (*models.Submission, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, fmt.Errorf("unknown review decision %q", decision)
	}

	var submission models.Submission

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var reviewer models.User
		if err := tx.First(&reviewer, reviewerID).Error; err != nil {
			return ErrUnauthorized
		}
		if !reviewer.IsReviewer() {
			return ErrUnauthorized
		}

		if err := lockForUpdate(tx).
			First(&submission, submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		if submission.Status != models.SubmissionPending {
			return ErrInvalidState
		}

		now := time.Now().UTC()
		submission.ReviewedAt = &now
		submission.ReviewerID = &reviewerID

		if decision == DecisionReject {
			submission.Status = models.SubmissionRejected
			return tx.Model(&submission).Updates(map[string]interface{}{
				"status":      models.SubmissionRejected,
				"reviewed_at": now,
				"reviewer_id": reviewerID,
			}).Error
		}

		var mission models.Mission
		if err := tx.First(&mission, submission.MissionID).Error; err != nil {
			return err
		}

		submission.Status = models.SubmissionApproved
		submission.PointsAwarded = mission.Points
		if err := tx.Model(&submission).Updates(map[string]interface{}{
			"status":         models.SubmissionApproved,
			"points_awarded": mission.Points,
			"reviewed_at":    now,
			"reviewer_id":    reviewerID,
		}).Error; err != nil {
			return err
		}

		if _, err := s.points.Credit(tx, submission.UserID, mission.Points); err != nil {
			return err
		}

		granted, err := s.badges.Evaluate(tx, submission.UserID)
		if err != nil {
			return err
		}

		return s.appendApprovalActivity(tx, &submission, &mission, granted)
	})
	if err != nil {
		return nil, err
	}

	return &submission, nil
}

// ListForUser returns a user's submissions, newest first.
func (s *SubmissionService) ListForUser(userID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.Preload("Mission").
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// ListPending returns submissions waiting for review, oldest first.
func (s *SubmissionService) ListPending(limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	q := s.db.Preload("Mission").Preload("User").
		Where("status = ?", models.SubmissionPending).
		Order("submitted_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&submissions).Error
	return submissions, err
}

func (s *SubmissionService) appendApprovalActivity(tx *gorm.DB, submission *models.Submission, mission *models.Mission, granted []models.Badge) error {
	teamID := currentTeamID(tx, submission.UserID)
	if teamID == nil {
		return nil
	}

	events := []models.TeamActivity{{
		EventID: uuid.New().String(),
		TeamID:  *teamID,
		UserID:  submission.UserID,
		Type:    models.ActivitySubmissionApproved,
		Detail:  mission.Title,
		Points:  submission.PointsAwarded,
	}}

	for _, badge := range granted {
		events = append(events, models.TeamActivity{
			EventID: uuid.New().String(),
			TeamID:  *teamID,
			UserID:  submission.UserID,
			Type:    models.ActivityBadgeEarned,
			Detail:  badge.Name,
			Points:  badge.BonusPoints,
		})
	}

	return tx.Create(&events).Error
}

// currentTeamID returns the user's team at this moment, or nil.
func currentTeamID(tx *gorm.DB, userID uint) *uint {
	var member models.TeamMember
	if err := tx.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil
	}
	return &member.TeamID
}
