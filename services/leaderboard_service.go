// services/leaderboard_service.go - rankings and user stats
package services

import (
	"errors"
	"time"

	"ecomission/models"

	"gorm.io/gorm"
)

type RankScope string

const (
	ScopeGlobal RankScope = "global"
	ScopeTeam   RankScope = "team"
)

type TeamRanking struct {
	TeamID      uint   `json:"team_id"`
	Name        string `json:"name"`
	TeamCode    string `json:"team_code"`
	MemberCount int    `json:"member_count"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

type UserRanking struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Points      int    `json:"points"`
	Level       int    `json:"level"`
	Rank        int    `json:"rank"`
}

type UserStats struct {
	UserID            uint                   `json:"user_id"`
	Points            int                    `json:"points"`
	Level             models.LevelDefinition `json:"level"`
	BadgesEarned      int                    `json:"badges_earned"`
	MissionsCompleted int                    `json:"missions_completed"`
	GlobalRank        int                    `json:"global_rank"`
	Streak            int                    `json:"streak"`
}

// LeaderboardService recomputes rankings on demand from current balances.
// Ranks are never stored, so they cannot drift from the points they order.
// Ties break on ascending id, which keeps repeated reads stable.
type LeaderboardService struct {
	db     *gorm.DB
	points *PointService
}

func NewLeaderboardService(db *gorm.DB, points *PointService) *LeaderboardService {
	return &LeaderboardService{db: db, points: points}
}

// RankTeams orders all teams by live total, descending.
func (s *LeaderboardService) RankTeams(limit int) ([]TeamRanking, error) {
	if limit <= 0 {
		limit = 50
	}

	var rankings []TeamRanking
	err := s.db.Raw(`
		SELECT
			teams.id AS team_id,
			teams.name AS name,
			teams.team_code AS team_code,
			COUNT(team_members.id) AS member_count,
			COALESCE(SUM(users.points), 0) AS total_points,
			ROW_NUMBER() OVER (ORDER BY COALESCE(SUM(users.points), 0) DESC, teams.id ASC) AS rank
		FROM teams
		LEFT JOIN team_members ON team_members.team_id = teams.id
		LEFT JOIN users ON users.id = team_members.user_id
		GROUP BY teams.id, teams.name, teams.team_code
		ORDER BY rank
		LIMIT ?
	`, limit).Scan(&rankings).Error
	return rankings, err
}

// RankUsers orders users by balance, globally or within one team.
func (s *LeaderboardService) RankUsers(scope RankScope, teamID uint, limit int) ([]UserRanking, error) {
	if limit <= 0 {
		limit = 50
	}

	var rankings []UserRanking
	var err error

	switch scope {
	case ScopeTeam:
		err = s.db.Raw(`
			SELECT
				users.id AS user_id,
				users.username AS username,
				users.display_name AS display_name,
				users.avatar AS avatar,
				users.points AS points,
				users.level AS level,
				ROW_NUMBER() OVER (ORDER BY users.points DESC, users.id ASC) AS rank
			FROM users
			JOIN team_members ON team_members.user_id = users.id
			WHERE team_members.team_id = ?
			ORDER BY rank
			LIMIT ?
		`, teamID, limit).Scan(&rankings).Error
	case ScopeGlobal:
		err = s.db.Raw(`
			SELECT
				users.id AS user_id,
				users.username AS username,
				users.display_name AS display_name,
				users.avatar AS avatar,
				users.points AS points,
				users.level AS level,
				ROW_NUMBER() OVER (ORDER BY users.points DESC, users.id ASC) AS rank
			FROM users
			WHERE users.role = ?
			ORDER BY rank
			LIMIT ?
		`, models.RoleStudent, limit).Scan(&rankings).Error
	default:
		err = errors.New("unknown ranking scope")
	}

	return rankings, err
}

// Stats assembles the numbers the profile page needs for one user.
func (s *LeaderboardService) Stats(userID uint) (*UserStats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	stats := &UserStats{
		UserID: user.ID,
		Points: user.Points,
		Level:  s.points.LevelOf(user.Points),
	}

	var badges int64
	if err := s.db.Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Count(&badges).Error; err != nil {
		return nil, err
	}
	stats.BadgesEarned = int(badges)

	var completed int64
	if err := s.db.Model(&models.Submission{}).
		Where("user_id = ? AND status = ?", userID, models.SubmissionApproved).
		Count(&completed).Error; err != nil {
		return nil, err
	}
	stats.MissionsCompleted = int(completed)

	var ahead int64
	if err := s.db.Model(&models.User{}).
		Where("role = ? AND (points > ? OR (points = ? AND id < ?))",
			models.RoleStudent, user.Points, user.Points, user.ID).
		Count(&ahead).Error; err != nil {
		return nil, err
	}
	stats.GlobalRank = int(ahead) + 1

	streak, err := s.streakOf(userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	stats.Streak = streak

	return stats, nil
}

// streakOf counts consecutive UTC days with at least one approved submission,
// ending today or yesterday. A day without activity breaks the run.
func (s *LeaderboardService) streakOf(userID uint, now time.Time) (int, error) {
	var stamps []time.Time
	err := s.db.Model(&models.Submission{}).
		Where("user_id = ? AND status = ?", userID, models.SubmissionApproved).
		Order("submitted_at DESC").
		Pluck("submitted_at", &stamps).Error
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(stamps))
	for _, ts := range stamps {
		seen[ts.UTC().Format("2006-01-02")] = true
	}

	day := now.Truncate(24 * time.Hour)
	if !seen[day.Format("2006-01-02")] {
		// Not active yet today; a streak through yesterday still counts.
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for seen[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
