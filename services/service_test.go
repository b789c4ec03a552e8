// file: services/service_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"hguoj/database"
	"hguoj/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB 用内存 sqlite 顶替全局 database.DB。
// 连接数限为 1，避免每个连接各拿一份独立的 :memory: 库
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Contest{},
		&models.Problem{},
		&models.ContestTeam{},
		&models.ContestTeamMember{},
		&models.ContestTeamSolve{},
	))

	database.DB = db
	database.RDB = nil
	t.Cleanup(func() {
		database.DB = nil
	})
}

func seedUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "password123",
		Email:    fmt.Sprintf("%s@example.com", username),
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func seedContest(t *testing.T, name string) models.Contest {
	t.Helper()
	contest := models.Contest{
		ContestName: name,
		StartTime:   time.Now().Add(-time.Hour),
		EndTime:     time.Now().Add(time.Hour),
	}
	require.NoError(t, database.DB.Create(&contest).Error)
	return contest
}

func seedProblem(t *testing.T, title string, totalScore int) models.Problem {
	t.Helper()
	problem := models.Problem{
		Title:      title,
		TotalScore: totalScore,
		Visible:    true,
	}
	require.NoError(t, database.DB.Create(&problem).Error)
	return problem
}

func teamTotalScore(t *testing.T, teamID uint32) int {
	t.Helper()
	var team models.ContestTeam
	require.NoError(t, database.DB.First(&team, teamID).Error)
	return team.TotalScore
}
