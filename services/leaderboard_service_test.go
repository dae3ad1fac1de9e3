// services/leaderboard_service_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"ecomission/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankTeamsOrdersByTotalWithStableTieBreak(t *testing.T) {
	e := newEngine(t)

	totals := []int{200, 500, 500, 100}
	for i, points := range totals {
		_, captain := createTeamWithCaptain(t, e, fmt.Sprintf("team-%d", i), 6)
		_, err := e.points.Credit(e.db, captain.ID, points)
		require.NoError(t, err)
	}

	rankings, err := e.leaderboard.RankTeams(10)
	require.NoError(t, err)
	require.Len(t, rankings, 4)

	assert.Equal(t, "team-1", rankings[0].Name)
	assert.Equal(t, "team-2", rankings[1].Name) // tied on 500, higher id
	assert.Equal(t, "team-0", rankings[2].Name)
	assert.Equal(t, "team-3", rankings[3].Name)

	for i, r := range rankings {
		assert.Equal(t, i+1, r.Rank)
	}

	// Same inputs, same order, every time.
	again, err := e.leaderboard.RankTeams(10)
	require.NoError(t, err)
	assert.Equal(t, rankings, again)
}

func TestRankTeamsRespectsLimit(t *testing.T) {
	e := newEngine(t)
	for i := 0; i < 3; i++ {
		createTeamWithCaptain(t, e, fmt.Sprintf("team-%d", i), 6)
	}

	rankings, err := e.leaderboard.RankTeams(2)
	require.NoError(t, err)
	assert.Len(t, rankings, 2)
}

func TestRankUsersGlobalListsStudentsOnly(t *testing.T) {
	e := newEngine(t)

	top := createStudent(t, e.db, "amara")
	_, err := e.points.Credit(e.db, top.ID, 500)
	require.NoError(t, err)

	runnerUp := createStudent(t, e.db, "kofi")
	_, err = e.points.Credit(e.db, runnerUp.ID, 200)
	require.NoError(t, err)

	// Reviewers hold no place on the student leaderboard.
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)
	_, err = e.points.Credit(e.db, teacher.ID, 9000)
	require.NoError(t, err)

	rankings, err := e.leaderboard.RankUsers(ScopeGlobal, 0, 10)
	require.NoError(t, err)
	require.Len(t, rankings, 2)
	assert.Equal(t, "amara", rankings[0].Username)
	assert.Equal(t, 1, rankings[0].Rank)
	assert.Equal(t, "kofi", rankings[1].Username)
	assert.Equal(t, 2, rankings[1].Rank)
}

func TestRankUsersTeamScope(t *testing.T) {
	e := newEngine(t)
	team, captain := createTeamWithCaptain(t, e, "warriors", 6)

	member := createStudent(t, e.db, "kofi")
	_, err := e.teams.Join(member.ID, team.TeamCode)
	require.NoError(t, err)
	_, err = e.points.Credit(e.db, member.ID, 300)
	require.NoError(t, err)

	outsider := createStudent(t, e.db, "zanele")
	_, err = e.points.Credit(e.db, outsider.ID, 9000)
	require.NoError(t, err)

	rankings, err := e.leaderboard.RankUsers(ScopeTeam, team.ID, 10)
	require.NoError(t, err)
	require.Len(t, rankings, 2)
	assert.Equal(t, "kofi", rankings[0].Username)
	assert.Equal(t, captain.Username, rankings[1].Username)
}

func TestRankUsersUnknownScope(t *testing.T) {
	e := newEngine(t)

	_, err := e.leaderboard.RankUsers(RankScope("galaxy"), 0, 10)
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	e := newEngine(t)
	createBadge(t, e, models.Badge{Name: "First Steps", Description: "First approved mission", MinMissions: 1})

	student := createStudent(t, e.db, "amara")
	rival := createStudent(t, e.db, "kofi")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)

	mission := createMission(t, e.db, "Collect old phones", "Collection", 1200)
	approveMission(t, e, student.ID, mission.ID, teacher.ID)

	_, err := e.points.Credit(e.db, rival.ID, 5000)
	require.NoError(t, err)

	stats, err := e.leaderboard.Stats(student.ID)
	require.NoError(t, err)

	assert.Equal(t, 1200, stats.Points)
	assert.Equal(t, "Explorer", stats.Level.Name)
	assert.Equal(t, 1, stats.BadgesEarned)
	assert.Equal(t, 1, stats.MissionsCompleted)
	assert.Equal(t, 2, stats.GlobalRank)
	assert.Equal(t, 1, stats.Streak)
}

func TestStatsUnknownUser(t *testing.T) {
	e := newEngine(t)

	_, err := e.leaderboard.Stats(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStatsGlobalRankTieBreaksOnID(t *testing.T) {
	e := newEngine(t)
	first := createStudent(t, e.db, "amara")
	second := createStudent(t, e.db, "kofi")

	for _, id := range []uint{first.ID, second.ID} {
		_, err := e.points.Credit(e.db, id, 400)
		require.NoError(t, err)
	}

	firstStats, err := e.leaderboard.Stats(first.ID)
	require.NoError(t, err)
	secondStats, err := e.leaderboard.Stats(second.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, firstStats.GlobalRank)
	assert.Equal(t, 2, secondStats.GlobalRank)
}

func TestStreakCountsConsecutiveDays(t *testing.T) {
	e := newEngine(t)
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)

	now := time.Now().UTC()

	// Approved submissions yesterday and the day before, nothing today:
	// the streak through yesterday still counts.
	for i, daysAgo := range []int{1, 2} {
		mission := createMission(t, e.db, fmt.Sprintf("Mission %d", i), "Recycling", 10)
		sub := approveMission(t, e, student.ID, mission.ID, teacher.ID)
		require.NoError(t, e.db.Model(&models.Submission{}).
			Where("id = ?", sub.ID).
			Update("submitted_at", now.AddDate(0, 0, -daysAgo)).Error)
	}

	streak, err := e.leaderboard.Stats(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.Streak)
}

func TestStreakBrokenByGapDay(t *testing.T) {
	e := newEngine(t)
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)

	now := time.Now().UTC()

	// Active today and three days ago; the empty days in between cut the
	// streak down to just today.
	for i, daysAgo := range []int{0, 3} {
		mission := createMission(t, e.db, fmt.Sprintf("Mission %d", i), "Recycling", 10)
		sub := approveMission(t, e, student.ID, mission.ID, teacher.ID)
		require.NoError(t, e.db.Model(&models.Submission{}).
			Where("id = ?", sub.ID).
			Update("submitted_at", now.AddDate(0, 0, -daysAgo)).Error)
	}

	stats, err := e.leaderboard.Stats(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Streak)
}

func TestStreakZeroWithoutRecentActivity(t *testing.T) {
	e := newEngine(t)
	student := createStudent(t, e.db, "amara")
	teacher := createUser(t, e.db, "mr-okoye", models.RoleTeacher)

	mission := createMission(t, e.db, "Old glory", "Recycling", 10)
	sub := approveMission(t, e, student.ID, mission.ID, teacher.ID)
	require.NoError(t, e.db.Model(&models.Submission{}).
		Where("id = ?", sub.ID).
		Update("submitted_at", time.Now().UTC().AddDate(0, 0, -10)).Error)

	stats, err := e.leaderboard.Stats(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Streak)
}
