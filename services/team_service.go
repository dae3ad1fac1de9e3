// services/team_service.go - team membership and aggregation
package services

import (
	"crypto/rand"
	"errors"
	"time"

	"ecomission/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService maintains membership and computes team totals. Totals are
// always the on-read sum of current members' balances; nothing is cached, so
// a member leaving drops the total immediately.
type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// ================== TEAM CRUD OPERATIONS ==================

// CreateTeam creates a team with the creator as captain. Creation is limited
// to teachers and admins at the handler layer.
func (s *TeamService) CreateTeam(name, description string, maxMembers int, creatorID uint) (*models.Team, error) {
	if name == "" {
		return nil, errors.New("team name is required")
	}
	if maxMembers < 1 {
		return nil, errors.New("max_members must be at least 1")
	}

	team := &models.Team{
		Name:        name,
		Description: description,
		TeamCode:    s.generateUniqueTeamCode(),
		MaxMembers:  maxMembers,
		CreatorID:   creatorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(team).Error
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeam retrieves a team with members, live total and current rank.
func (s *TeamService) GetTeam(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Members").
		Preload("Members.User").
		First(&team, teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	total, err := s.TotalPoints(teamID)
	if err != nil {
		return nil, err
	}
	team.TotalPoints = total

	rank, err := s.rankOf(teamID, total)
	if err != nil {
		return nil, err
	}
	team.Rank = rank

	return &team, nil
}

// GetTeamForUser resolves "my team" for a user.
func (s *TeamService) GetTeamForUser(userID uint) (*models.Team, error) {
	var member models.TeamMember
	if err := s.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil, ErrNotOnTeam
	}
	return s.GetTeam(member.TeamID)
}

// ================== MEMBERSHIP OPERATIONS ==================

// Join adds the user to the team with the given code. The team row is locked
// while the capacity check and insert happen, so two racing joins on the last
// seat cannot both succeed and no over-capacity state is ever observable.
func (s *TeamService) Join(userID uint, teamCode string) (*models.Team, error) {
	var teamID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := lockForUpdate(tx).
			Where("team_code = ?", teamCode).
			First(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
		teamID = team.ID

		var existing int64
		if err := tx.Model(&models.TeamMember{}).
			Where("user_id = ?", userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyOnTeam
		}

		var members int64
		if err := tx.Model(&models.TeamMember{}).
			Where("team_id = ?", team.ID).
			Count(&members).Error; err != nil {
			return err
		}
		if members >= int64(team.MaxMembers) {
			return ErrTeamFull
		}

		role := models.TeamRoleMember
		if members == 0 {
			role = models.TeamRoleCaptain
		}

		member := &models.TeamMember{
			TeamID:   team.ID,
			UserID:   userID,
			Role:     role,
			JoinedAt: time.Now().UTC(),
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return s.appendActivity(tx, team.ID, userID, models.ActivityMemberJoined, "")
	})
	if err != nil {
		return nil, err
	}

	return s.GetTeam(teamID)
}

// Leave removes the user's membership. If the captain leaves, the
// longest-tenured remaining member takes over as captain.
func (s *TeamService) Leave(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.Where("user_id = ?", userID).First(&member).Error; err != nil {
			return ErrNotOnTeam
		}

		if err := tx.Delete(&member).Error; err != nil {
			return err
		}

		if member.Role == models.TeamRoleCaptain {
			if err := s.promoteSuccessor(tx, member.TeamID); err != nil {
				return err
			}
		}

		return s.appendActivity(tx, member.TeamID, userID, models.ActivityMemberLeft, "")
	})
}

// RemoveMember kicks a member out. Only the team's captain or an admin may
// do this; the captain cannot remove themselves (they leave instead).
func (s *TeamService) RemoveMember(actorID, teamID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.authorizeTeamAction(tx, actorID, teamID); err != nil {
			return err
		}

		var target models.TeamMember
		if err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).
			First(&target).Error; err != nil {
			return ErrNotOnTeam
		}

		if target.Role == models.TeamRoleCaptain {
			return ErrUnauthorized
		}

		if err := tx.Delete(&target).Error; err != nil {
			return err
		}

		return s.appendActivity(tx, teamID, userID, models.ActivityMemberLeft, "removed")
	})
}

// ================== AGGREGATION ==================

// TotalPoints is the live sum of current members' balances. Departed members
// contribute nothing because their membership rows are gone.
func (s *TeamService) TotalPoints(teamID uint) (int, error) {
	var total int64
	err := s.db.Model(&models.TeamMember{}).
		Joins("JOIN users ON users.id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Select("COALESCE(SUM(users.points), 0)").
		Scan(&total).Error
	return int(total), err
}

// Activity returns the team's feed, newest first.
func (s *TeamService) Activity(teamID uint, limit int) ([]models.TeamActivity, error) {
	var events []models.TeamActivity
	q := s.db.Preload("User").
		Where("team_id = ?", teamID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&events).Error
	return events, err
}

// ================== HELPERS ==================

func (s *TeamService) authorizeTeamAction(tx *gorm.DB, actorID, teamID uint) error {
	var actor models.User
	if err := tx.First(&actor, actorID).Error; err != nil {
		return ErrUnauthorized
	}
	if actor.Role == models.RoleAdmin {
		return nil
	}

	var member models.TeamMember
	err := tx.Where("team_id = ? AND user_id = ? AND role = ?",
		teamID, actorID, models.TeamRoleCaptain).
		First(&member).Error
	if err != nil {
		return ErrUnauthorized
	}
	return nil
}

func (s *TeamService) promoteSuccessor(tx *gorm.DB, teamID uint) error {
	var successor models.TeamMember
	err := tx.Where("team_id = ?", teamID).
		Order("joined_at ASC, id ASC").
		First(&successor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // team is now empty
	}
	if err != nil {
		return err
	}
	return tx.Model(&successor).Update("role", models.TeamRoleCaptain).Error
}

func (s *TeamService) appendActivity(tx *gorm.DB, teamID, userID uint, typ models.ActivityType, detail string) error {
	return tx.Create(&models.TeamActivity{
		EventID: uuid.New().String(),
		TeamID:  teamID,
		UserID:  userID,
		Type:    typ,
		Detail:  detail,
	}).Error
}

func (s *TeamService) rankOf(teamID uint, total int) (int, error) {
	var ahead int64
	err := s.db.Raw(`
		SELECT COUNT(*) FROM (
			SELECT teams.id AS id, COALESCE(SUM(users.points), 0) AS total
			FROM teams
			LEFT JOIN team_members ON team_members.team_id = teams.id
			LEFT JOIN users ON users.id = team_members.user_id
			GROUP BY teams.id
		) totals
		WHERE totals.total > ? OR (totals.total = ? AND totals.id < ?)
	`, total, total, teamID).Scan(&ahead).Error
	if err != nil {
		return 0, err
	}
	return int(ahead) + 1, nil
}

const teamCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateUniqueTeamCode produces a human-typeable 8-character join code.
// Ambiguous characters (0/O, 1/I) are left out of the alphabet.
func (s *TeamService) generateUniqueTeamCode() string {
	for {
		buf := make([]byte, 8)
		rand.Read(buf)
		for i := range buf {
			buf[i] = teamCodeAlphabet[int(buf[i])%len(teamCodeAlphabet)]
		}
		code := string(buf)

		var count int64
		s.db.Model(&models.Team{}).Where("team_code = ?", code).Count(&count)
		if count == 0 {
			return code
		}
	}
}
