// file: services/ranking_service.go
package services

import (
	"encoding/json"
	"errors"
	"time"

	"hguoj/database"
	"hguoj/dto"
	"hguoj/mappers"
	"hguoj/models"
	"hguoj/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	solveFeedKey = "solve_feed"
	solveFeedMax = 100
)

// GetRankingByContest 生成某场比赛的排行榜，每次现算，不做缓存。
// 排序规则固定：总分降序，同分按建队时间早者在前，再按队伍 id 升序
func GetRankingByContest(contestID uint) ([]dto.RankingEntryResp, error) {
	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}

	var teams []models.ContestTeam
	err := database.DB.Preload("Members.User").
		Where("contest_id = ?", contestID).
		Order("total_score desc, created_at asc, id asc").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	entries := make([]dto.RankingEntryResp, 0, len(teams))
	for i, team := range teams {
		entries = append(entries, mappers.MapTeamToRankingEntry(team, i+1))
	}
	return entries, nil
}

// pushSolveFeed 把新解题记录推进 Redis 动态流，只留最近 solveFeedMax 条。
// 纯展示用途，失败只记日志不影响解题落账
func pushSolveFeed(team models.ContestTeam, problem models.Problem, solvedAt time.Time) {
	if database.RDB == nil {
		return
	}
	entry := dto.SolveFeedEntry{
		TeamID:       team.ID,
		TeamName:     team.TeamName,
		ProblemID:    problem.ID,
		ProblemTitle: problem.Title,
		Score:        problem.TotalScore,
		SolvedAt:     solvedAt,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	pipe := database.RDB.Pipeline()
	pipe.LPush(database.Ctx, solveFeedKey, data)
	pipe.LTrim(database.Ctx, solveFeedKey, 0, solveFeedMax-1)
	if _, err := pipe.Exec(database.Ctx); err != nil {
		utils.Log.Warn("push solve feed failed", zap.Error(err))
	}
}

// GetSolveFeed 查询最近解题动态
func GetSolveFeed(limit int) ([]dto.SolveFeedEntry, error) {
	if limit <= 0 || limit > solveFeedMax {
		limit = 20
	}
	entries := make([]dto.SolveFeedEntry, 0, limit)
	if database.RDB == nil {
		return entries, nil
	}

	values, err := database.RDB.LRange(database.Ctx, solveFeedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		var entry dto.SolveFeedEntry
		if json.Unmarshal([]byte(v), &entry) == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
