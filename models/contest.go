// file: models/contest.go
package models

import (
	"time"
)

// ContestStatus 比赛状态，由当前时间和起止时间推导，不落库
type ContestStatus string

const (
	ContestStatusPreparing ContestStatus = "preparing"
	ContestStatusRunning   ContestStatus = "running"
	ContestStatusEnded     ContestStatus = "ended"
)

type Contest struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ContestName string    `gorm:"size:100;not null" json:"contest_name"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"start_time" binding:"required"`
	EndTime     time.Time `gorm:"not null" json:"end_time" binding:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Contest) TableName() string {
	return "hguoj_contest"
}

// CurrentStatus 按当前时间计算比赛状态
func (ct *Contest) CurrentStatus(now time.Time) ContestStatus {
	switch {
	case now.Before(ct.StartTime):
		return ContestStatusPreparing
	case now.After(ct.EndTime):
		return ContestStatusEnded
	default:
		return ContestStatusRunning
	}
}
