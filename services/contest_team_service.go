// file: services/contest_team_service.go
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

// ExistsByTeamName 队名占用检查，前端建队前调用
func ExistsByTeamName(teamName string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.ContestTeam{}).
		Where("team_name = ?", teamName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateTeam 创建队伍。成员 id 做子集解析：无效的忽略，全无效才报错。
// 队名查重和插入放在同一事务里，并发撞名由唯一索引兜底
func CreateTeam(teamName string, memberIDs []uint32, contestID uint) (uint32, error) {
	if len(memberIDs) == 0 {
		return 0, ErrEmptyRoster
	}

	var team models.ContestTeam
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var contest models.Contest
		if err := tx.First(&contest, contestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContestNotFound
			}
			return err
		}

		var users []models.User
		if err := tx.Where("id IN ?", memberIDs).Find(&users).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return ErrUserNotFound
		}

		var count int64
		if err := tx.Model(&models.ContestTeam{}).
			Where("team_name = ?", teamName).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrTeamNameExists
		}

		team = models.ContestTeam{
			TeamName:  teamName,
			ContestID: contestID,
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, u := range users {
			member := models.ContestTeamMember{
				TeamID:   team.ID,
				UserID:   u.ID,
				JoinedAt: now,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrTeamNameExists
		}
		return 0, err
	}

	utils.Log.Info("contest team created",
		zap.Uint32("team_id", team.ID),
		zap.String("team_name", teamName),
		zap.Uint("contest_id", contestID))
	return team.ID, nil
}

// GetTeamByID 查询队伍详情，成员用户一并预加载
func GetTeamByID(teamID uint32) (models.ContestTeam, error) {
	var team models.ContestTeam
	err := database.DB.Preload("Members.User").First(&team, teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return team, ErrTeamNotFound
		}
		return team, err
	}
	return team, nil
}

func GetAllTeams() ([]models.ContestTeam, error) {
	var teams []models.ContestTeam
	err := database.DB.Preload("Members.User").Order("id asc").Find(&teams).Error
	return teams, err
}

// DeleteTeam 删除队伍，连带成员关系和解题台账。
// 拿队伍锁，确保不跟在途的成员/解题更新交错出半残状态
func DeleteTeam(teamID uint32) error {
	mu := lockTeam(teamID)
	mu.Lock()
	defer mu.Unlock()

	return database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.ContestTeam{}, teamID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}
		if err := tx.Where("team_id = ?", teamID).
			Delete(&models.ContestTeamMember{}).Error; err != nil {
			return err
		}
		return tx.Where("team_id = ?", teamID).
			Delete(&models.ContestTeamSolve{}).Error
	})
}

// AddMembers 批量加人。无效 id 忽略，已在队的靠唯一索引吃掉，
// 一个都解析不到按 ErrUserNotFound 处理
func AddMembers(teamID uint32, memberIDs []uint32) error {
	mu := lockTeam(teamID)
	mu.Lock()
	defer mu.Unlock()

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var team models.ContestTeam
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}

		var users []models.User
		if err := tx.Where("id IN ?", memberIDs).Find(&users).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return ErrUserNotFound
		}

		now := time.Now()
		for _, u := range users {
			member := models.ContestTeamMember{
				TeamID:   teamID,
				UserID:   u.ID,
				JoinedAt: now,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveMembers 批量移人。不在队的 id 当 no-op，
// 会把队伍清空的请求整体拒绝
func RemoveMembers(teamID uint32, memberIDs []uint32) error {
	mu := lockTeam(teamID)
	mu.Lock()
	defer mu.Unlock()

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var team models.ContestTeam
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
		if len(memberIDs) == 0 {
			return nil
		}

		var current int64
		if err := tx.Model(&models.ContestTeamMember{}).
			Where("team_id = ?", teamID).
			Count(&current).Error; err != nil {
			return err
		}
		var matching int64
		if err := tx.Model(&models.ContestTeamMember{}).
			Where("team_id = ? AND user_id IN ?", teamID, memberIDs).
			Count(&matching).Error; err != nil {
			return err
		}
		if matching == 0 {
			return nil
		}
		if current-matching < 1 {
			return ErrRosterWouldBeEmpty
		}

		return tx.Where("team_id = ? AND user_id IN ?", teamID, memberIDs).
			Delete(&models.ContestTeamMember{}).Error
	})
}
