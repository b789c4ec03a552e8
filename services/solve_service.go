// file: services/solve_service.go
package services

import (
	"errors"
	"time"

	"hguoj/database"
	"hguoj/models"
	"hguoj/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordSolve 记录一条解题事实（判题服务已验证过）。
// 拿队伍锁保证同队并发提交串行：不同题都能落账，同一题只生效一次。
// 台账追加和总分重算在同一事务里，总分不会滞后于解题集合
func RecordSolve(teamID uint32, problemID uint32) error {
	mu := lockTeam(teamID)
	mu.Lock()
	defer mu.Unlock()

	var (
		team     models.ContestTeam
		problem  models.Problem
		recorded bool
		solvedAt time.Time
	)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
		if err := tx.First(&problem, problemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProblemNotFound
			}
			return err
		}

		solvedAt = time.Now()
		solve := models.ContestTeamSolve{
			TeamID:    teamID,
			ProblemID: problemID,
			Score:     problem.TotalScore,
			SolvedAt:  solvedAt,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&solve)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// 已解过，幂等 no-op，不动总分
			return nil
		}
		recorded = true

		return recomputeTotalScore(tx, teamID)
	})
	if err != nil {
		return err
	}

	if recorded {
		utils.Log.Info("solve recorded",
			zap.Uint32("team_id", teamID),
			zap.Uint32("problem_id", problemID),
			zap.Int("score", problem.TotalScore))
		pushSolveFeed(team, problem, solvedAt)
	}
	return nil
}

// recomputeTotalScore 从解题台账全量重算总分：按题目当前分值求和，
// 题目已被删掉的按 0 计（JOIN 自然排除），台账行保留
func recomputeTotalScore(tx *gorm.DB, teamID uint32) error {
	var total int64
	err := tx.Table("hguoj_contest_team_solve s").
		Joins("JOIN hguoj_problem p ON s.problem_id = p.id").
		Where("s.team_id = ?", teamID).
		Select("COALESCE(SUM(p.total_score), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.ContestTeam{}).
		Where("id = ?", teamID).
		Update("total_score", total).Error
}

// GetSolvedProblems 查询队伍已解题目 id 列表，按记录时间升序
func GetSolvedProblems(teamID uint32) ([]uint32, error) {
	var count int64
	if err := database.DB.Model(&models.ContestTeam{}).
		Where("id = ?", teamID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrTeamNotFound
	}

	var solves []models.ContestTeamSolve
	err := database.DB.Where("team_id = ?", teamID).
		Order("solved_at asc, id asc").
		Find(&solves).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint32, 0, len(solves))
	for _, s := range solves {
		ids = append(ids, s.ProblemID)
	}
	return ids, nil
}
