// services/services_test.go - shared test fixtures
package services

import (
	"testing"
	"time"

	"ecomission/database"
	"ecomission/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the production schema,
// partial indexes included. Connections are capped at one so every query in a
// test sees the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func intPtr(n int) *int { return &n }

// seedLevels installs the standard four-tier table: Novice [0,1000),
// Explorer [1000,5000), Guardian [5000,15000), Champion [15000,∞).
func seedLevels(t *testing.T, db *gorm.DB) {
	t.Helper()

	levels := []models.LevelDefinition{
		{Rank: 1, Name: "Novice", MinPoints: 0, MaxPoints: intPtr(1000)},
		{Rank: 2, Name: "Explorer", MinPoints: 1000, MaxPoints: intPtr(5000)},
		{Rank: 3, Name: "Guardian", MinPoints: 5000, MaxPoints: intPtr(15000)},
		{Rank: 4, Name: "Champion", MinPoints: 15000},
	}
	require.NoError(t, db.Create(&levels).Error)
}

// engine bundles the wired services the way InitHandlers does in production.
type engine struct {
	db          *gorm.DB
	points      *PointService
	badges      *BadgeService
	submissions *SubmissionService
	teams       *TeamService
	leaderboard *LeaderboardService
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	db := newTestDB(t)
	seedLevels(t, db)

	points, err := NewPointService(db)
	require.NoError(t, err)

	badges, err := NewBadgeService(db, points)
	require.NoError(t, err)

	return &engine{
		db:          db,
		points:      points,
		badges:      badges,
		submissions: NewSubmissionService(db, points, badges),
		teams:       NewTeamService(db),
		leaderboard: NewLeaderboardService(db, points),
	}
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Username:    username,
		Password:    "hashed",
		DisplayName: username,
		Role:        role,
		Level:       1,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createStudent(t *testing.T, db *gorm.DB, username string) *models.User {
	return createUser(t, db, username, models.RoleStudent)
}

func createMission(t *testing.T, db *gorm.DB, title, category string, points int) *models.Mission {
	t.Helper()

	mission := &models.Mission{
		Title:      title,
		Category:   category,
		Difficulty: models.DifficultyEasy,
		Points:     points,
		IsActive:   true,
	}
	require.NoError(t, db.Create(mission).Error)
	return mission
}

func userPoints(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	return user.Points
}

// approveMission walks one submission through submit and approve.
func approveMission(t *testing.T, e *engine, userID, missionID, reviewerID uint) *models.Submission {
	t.Helper()

	sub, err := e.submissions.Submit(userID, missionID, "")
	require.NoError(t, err)

	reviewed, err := e.submissions.Review(sub.ID, DecisionApprove, reviewerID)
	require.NoError(t, err)
	return reviewed
}
