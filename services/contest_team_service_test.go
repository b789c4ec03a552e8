// file: services/contest_team_service_test.go
package services

import (
	"testing"

	"hguoj/database"
	"hguoj/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID, u2.ID}, contest.ID)
	require.NoError(t, err)
	require.NotZero(t, teamID)

	team, err := GetTeamByID(teamID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", team.TeamName)
	assert.Equal(t, contest.ID, team.ContestID)
	assert.Equal(t, 0, team.TotalScore)
	assert.Len(t, team.Members, 2)
}

func TestCreateTeamEmptyRoster(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")

	_, err := CreateTeam("Alpha", []uint32{}, contest.ID)
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestCreateTeamDuplicateName(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")

	_, err := CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)

	_, err = CreateTeam("Alpha", []uint32{u2.ID}, contest.ID)
	assert.ErrorIs(t, err, ErrTeamNameExists)
}

func TestCreateTeamUnknownContest(t *testing.T) {
	setupTestDB(t)
	u1 := seedUser(t, "alice")

	_, err := CreateTeam("Alpha", []uint32{u1.ID}, 12345)
	assert.ErrorIs(t, err, ErrContestNotFound)
}

func TestCreateTeamPartialMemberResolution(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")

	// 无效成员 id 被忽略，有效的照常入队
	teamID, err := CreateTeam("Alpha", []uint32{u1.ID, 9999}, contest.ID)
	require.NoError(t, err)

	team, err := GetTeamByID(teamID)
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
	assert.Equal(t, u1.ID, team.Members[0].UserID)
}

func TestCreateTeamNoValidMembers(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")

	_, err := CreateTeam("Alpha", []uint32{9998, 9999}, contest.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExistsByTeamName(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")

	exists, err := ExistsByTeamName("Alpha")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)

	exists, err = ExistsByTeamName("Alpha")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAddMembers(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")
	u3 := seedUser(t, "carol")

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)

	require.NoError(t, AddMembers(teamID, []uint32{u2.ID, u3.ID}))

	team, err := GetTeamByID(teamID)
	require.NoError(t, err)
	assert.Len(t, team.Members, 3)
}

func TestAddMembersIdempotent(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)

	// 已在队的 id 重复加入是 no-op
	require.NoError(t, AddMembers(teamID, []uint32{u1.ID, u2.ID}))
	require.NoError(t, AddMembers(teamID, []uint32{u2.ID}))

	team, err := GetTeamByID(teamID)
	require.NoError(t, err)
	assert.Len(t, team.Members, 2)
}

func TestAddMembersUnknownTeam(t *testing.T) {
	setupTestDB(t)
	u1 := seedUser(t, "alice")

	err := AddMembers(12345, []uint32{u1.ID})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestAddMembersNoneResolved(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)

	err = AddMembers(teamID, []uint32{9998, 9999})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveMembers(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID, u2.ID}, contest.ID)
	require.NoError(t, err)

	require.NoError(t, RemoveMembers(teamID, []uint32{u2.ID}))

	team, err := GetTeamByID(teamID)
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
	assert.Equal(t, u1.ID, team.Members[0].UserID)

	// 用户本身不受影响
	var user models.User
	assert.NoError(t, database.DB.First(&user, u2.ID).Error)
}

func TestRemoveMembersNonMemberNoop(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)

	// u2 不在队里，整个调用是 no-op
	require.NoError(t, RemoveMembers(teamID, []uint32{u2.ID}))

	team, err := GetTeamByID(teamID)
	require.NoError(t, err)
	assert.Len(t, team.Members, 1)
}

func TestRemoveMembersWouldEmptyRoster(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID, u2.ID}, contest.ID)
	require.NoError(t, err)

	err = RemoveMembers(teamID, []uint32{u1.ID, u2.ID})
	assert.ErrorIs(t, err, ErrRosterWouldBeEmpty)

	// 整个操作被拒绝，一个都不删
	team, err := GetTeamByID(teamID)
	require.NoError(t, err)
	assert.Len(t, team.Members, 2)
}

func TestDeleteTeamCascade(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	p1 := seedProblem(t, "A+B", 100)

	teamID, err := CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)
	require.NoError(t, RecordSolve(teamID, p1.ID))

	require.NoError(t, DeleteTeam(teamID))

	_, err = GetTeamByID(teamID)
	assert.ErrorIs(t, err, ErrTeamNotFound)

	var memberCount, solveCount int64
	require.NoError(t, database.DB.Model(&models.ContestTeamMember{}).Where("team_id = ?", teamID).Count(&memberCount).Error)
	require.NoError(t, database.DB.Model(&models.ContestTeamSolve{}).Where("team_id = ?", teamID).Count(&solveCount).Error)
	assert.Zero(t, memberCount)
	assert.Zero(t, solveCount)

	// 引用的用户和题目不被级联删除
	var user models.User
	assert.NoError(t, database.DB.First(&user, u1.ID).Error)
	var problem models.Problem
	assert.NoError(t, database.DB.First(&problem, p1.ID).Error)
}

func TestDeleteTeamNotFound(t *testing.T) {
	setupTestDB(t)

	err := DeleteTeam(12345)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
