// services/badge_service_test.go
package services

import (
	"fmt"
	"testing"

	"ecomission/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBadge(t *testing.T, e *engine, badge models.Badge) *models.Badge {
	t.Helper()
	require.NoError(t, e.db.Create(&badge).Error)
	return &badge
}

func earnedBadgeCount(t *testing.T, e *engine, userID uint) int {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.UserBadge{}).
		Where("user_id = ?", userID).Count(&count).Error)
	return int(count)
}

func TestBadgeGrantedOnPointThreshold(t *testing.T) {
	e := newEngine(t)
	createBadge(t, e, models.Badge{Name: "Point Hunter", Description: "Reach 100 points", MinPoints: 100})
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)
	mission := createMission(t, e.db, "Collect old phones", "Collection", 100)

	approveMission(t, e, student.ID, mission.ID, teacher.ID)

	assert.Equal(t, 1, earnedBadgeCount(t, e, student.ID))
}

func TestBadgeNotGrantedBelowThreshold(t *testing.T) {
	e := newEngine(t)
	createBadge(t, e, models.Badge{Name: "Point Hunter", Description: "Reach 100 points", MinPoints: 100})
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)
	mission := createMission(t, e.db, "Small favour", "Collection", 50)

	approveMission(t, e, student.ID, mission.ID, teacher.ID)

	assert.Equal(t, 0, earnedBadgeCount(t, e, student.ID))
}

func TestBadgeEvaluationIdempotent(t *testing.T) {
	e := newEngine(t)
	createBadge(t, e, models.Badge{Name: "Recycler", Description: "Three recycling missions", MinMissions: 3, Category: "Recycling"})
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)

	for i, title := range []string{"Sort batteries", "Drop off CRTs", "Strip cables"} {
		mission := createMission(t, e.db, title, "Recycling", 30)
		approveMission(t, e, student.ID, mission.ID, teacher.ID)

		if i < 2 {
			require.Equal(t, 0, earnedBadgeCount(t, e, student.ID), "badge granted too early")
		}
	}
	require.Equal(t, 1, earnedBadgeCount(t, e, student.ID))

	// Re-running the evaluator grants nothing new.
	granted, err := e.badges.Evaluate(e.db, student.ID)
	require.NoError(t, err)
	assert.Empty(t, granted)
	assert.Equal(t, 1, earnedBadgeCount(t, e, student.ID))
}

func TestCategoryBadgeIgnoresOtherCategories(t *testing.T) {
	e := newEngine(t)
	createBadge(t, e, models.Badge{Name: "Recycler", Description: "Three recycling missions", MinMissions: 3, Category: "Recycling"})
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)

	for i, category := range []string{"Recycling", "Recycling", "Repair"} {
		mission := createMission(t, e.db, fmt.Sprintf("Mission %d", i), category, 30)
		approveMission(t, e, student.ID, mission.ID, teacher.ID)
	}

	assert.Equal(t, 0, earnedBadgeCount(t, e, student.ID))
}

func TestBadgeBonusPointsCredited(t *testing.T) {
	e := newEngine(t)
	createBadge(t, e, models.Badge{Name: "First Steps", Description: "First approved mission", MinMissions: 1, BonusPoints: 25})
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)
	mission := createMission(t, e.db, "Collect old phones", "Collection", 100)

	approveMission(t, e, student.ID, mission.ID, teacher.ID)

	// 100 from the mission, 25 from the badge, in one transaction.
	assert.Equal(t, 125, userPoints(t, e.db, student.ID))
}

func TestBadgeBonusCascadesToPointBadge(t *testing.T) {
	e := newEngine(t)
	createBadge(t, e, models.Badge{Name: "First Steps", Description: "First approved mission", MinMissions: 1, BonusPoints: 50})
	createBadge(t, e, models.Badge{Name: "Century", Description: "Reach 100 points", MinPoints: 100})
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)
	mission := createMission(t, e.db, "Collect old phones", "Collection", 60)

	// 60 mission points miss the Century threshold; the First Steps bonus
	// pushes the balance to 110 and the next pass grants Century too.
	approveMission(t, e, student.ID, mission.ID, teacher.ID)

	assert.Equal(t, 2, earnedBadgeCount(t, e, student.ID))
	assert.Equal(t, 110, userPoints(t, e.db, student.ID))
}

func TestNewBadgeServiceRejectsUnsatisfiableBadge(t *testing.T) {
	db := newTestDB(t)
	seedLevels(t, db)
	points, err := NewPointService(db)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Badge{
		Name:        "Broken",
		Description: "No criteria at all",
	}).Error)

	_, err = NewBadgeService(db, points)
	assert.Error(t, err)
}
