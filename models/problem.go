// file: models/problem.go
package models

import (
	"time"
)

type ProblemDifficulty string

const (
	DifficultyEasy   ProblemDifficulty = "easy"
	DifficultyMedium ProblemDifficulty = "medium"
	DifficultyHard   ProblemDifficulty = "hard"
)

// Problem 题目元信息。TotalScore 是该题满分，队伍解出后按它计入总分
type Problem struct {
	ID          uint32            `gorm:"primarykey" json:"id"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Difficulty  ProblemDifficulty `gorm:"size:20;not null;default:'medium'" json:"difficulty"`
	TotalScore  int               `gorm:"not null" json:"total_score"`
	Visible     bool              `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (Problem) TableName() string {
	return "hguoj_problem"
}
