// file: models/contest_team.go
package models

import "time"

// ContestTeam 比赛队伍。一支队伍终身属于一个比赛，ContestID 创建后不变。
// TotalScore 与解题台账保持同步：每次记录解题都在同一事务内重算
type ContestTeam struct {
	ID         uint32              `gorm:"primarykey" json:"id"`
	TeamName   string              `gorm:"size:100;unique;not null" json:"team_name"`
	ContestID  uint                `gorm:"not null;index" json:"contest_id"`
	Contest    Contest             `gorm:"foreignKey:ContestID" json:"-"`
	TotalScore int                 `gorm:"not null;default:0" json:"total_score"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Members    []ContestTeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (ContestTeam) TableName() string {
	return "hguoj_contest_team"
}

// ContestTeamMember 队伍成员关系，纯引用：删队伍只删关系行，不动用户。
// (team_id, user_id) 唯一，重复加入天然幂等
type ContestTeamMember struct {
	ID       uint32    `gorm:"primarykey" json:"id"`
	TeamID   uint32    `gorm:"uniqueIndex:unique_team_user;not null" json:"team_id"`
	UserID   uint32    `gorm:"uniqueIndex:unique_team_user;not null" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID" json:"user"`
	JoinedAt time.Time `json:"joined_at"`
}

func (ContestTeamMember) TableName() string {
	return "hguoj_contest_team_member"
}

// ContestTeamSolve 解题台账，只追加。(team_id, problem_id) 唯一，
// 同一题的重复记录落不进来。Score 是记录时刻的题目分值，仅作留痕，
// 总分重算始终以题目当前分值为准
type ContestTeamSolve struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	TeamID    uint32    `gorm:"uniqueIndex:unique_team_problem;not null" json:"team_id"`
	ProblemID uint32    `gorm:"uniqueIndex:unique_team_problem;not null" json:"problem_id"`
	Score     int       `gorm:"not null" json:"score"`
	SolvedAt  time.Time `json:"solved_at"`
}

func (ContestTeamSolve) TableName() string {
	return "hguoj_contest_team_solve"
}
