// file: services/ranking_service_test.go
package services

import (
	"testing"
	"time"

	"hguoj/database"
	"hguoj/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRankingScenario(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")
	u3 := seedUser(t, "carol")
	p5 := seedProblem(t, "A+B", 100)
	p6 := seedProblem(t, "Sorting", 50)

	alphaID, err := CreateTeam("Alpha", []uint32{u1.ID, u2.ID}, contest.ID)
	require.NoError(t, err)
	require.Equal(t, 0, teamTotalScore(t, alphaID))

	require.NoError(t, RecordSolve(alphaID, p5.ID))
	require.Equal(t, 100, teamTotalScore(t, alphaID))
	require.NoError(t, RecordSolve(alphaID, p5.ID)) // 重复，无变化
	require.Equal(t, 100, teamTotalScore(t, alphaID))

	betaID, err := CreateTeam("Beta", []uint32{u3.ID}, contest.ID)
	require.NoError(t, err)
	require.NoError(t, RecordSolve(betaID, p5.ID))
	require.NoError(t, RecordSolve(betaID, p6.ID))
	require.Equal(t, 150, teamTotalScore(t, betaID))

	entries, err := GetRankingByContest(contest.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Beta", entries[0].TeamName)
	assert.Equal(t, 150, entries[0].TotalScore)
	assert.Equal(t, []string{"carol"}, entries[0].Members)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Alpha", entries[1].TeamName)
	assert.Equal(t, 100, entries[1].TotalScore)
}

func TestGetRankingTieBreak(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")
	u3 := seedUser(t, "carol")
	p1 := seedProblem(t, "A+B", 100)

	aID, err := CreateTeam("Alpha", []uint32{u1.ID}, contest.ID)
	require.NoError(t, err)
	bID, err := CreateTeam("Beta", []uint32{u2.ID}, contest.ID)
	require.NoError(t, err)
	cID, err := CreateTeam("Gamma", []uint32{u3.ID}, contest.ID)
	require.NoError(t, err)

	for _, id := range []uint32{aID, bID, cID} {
		require.NoError(t, RecordSolve(id, p1.ID))
	}

	// 同分：建队早者在前。把 Gamma 的建队时间改到最早
	base := time.Now().Add(-24 * time.Hour)
	require.NoError(t, database.DB.Model(&models.ContestTeam{}).Where("id = ?", cID).
		Update("created_at", base).Error)
	require.NoError(t, database.DB.Model(&models.ContestTeam{}).Where("id IN ?", []uint32{aID, bID}).
		Update("created_at", base.Add(time.Hour)).Error)

	entries, err := GetRankingByContest(contest.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Gamma", entries[0].TeamName)
	// Alpha 和 Beta 建队时间相同，按队伍 id 升序
	assert.Equal(t, "Alpha", entries[1].TeamName)
	assert.Equal(t, "Beta", entries[2].TeamName)
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
}

func TestGetRankingFiltersByContest(t *testing.T) {
	setupTestDB(t)
	contestA := seedContest(t, "Spring Contest")
	contestB := seedContest(t, "Autumn Contest")
	u1 := seedUser(t, "alice")
	u2 := seedUser(t, "bob")

	_, err := CreateTeam("Alpha", []uint32{u1.ID}, contestA.ID)
	require.NoError(t, err)
	_, err = CreateTeam("Beta", []uint32{u2.ID}, contestB.ID)
	require.NoError(t, err)

	entries, err := GetRankingByContest(contestA.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alpha", entries[0].TeamName)
}

func TestGetRankingEmptyContest(t *testing.T) {
	setupTestDB(t)
	contest := seedContest(t, "Spring Contest")

	entries, err := GetRankingByContest(contest.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetRankingUnknownContest(t *testing.T) {
	setupTestDB(t)

	_, err := GetRankingByContest(12345)
	assert.ErrorIs(t, err, ErrContestNotFound)
}
