// file: dto/contest_team.go
package dto

import "time"

// ========== 请求 DTO ==========

type CreateTeamReq struct {
	TeamName  string   `json:"team_name" binding:"required"`
	MemberIDs []uint32 `json:"member_ids"`
	ContestID uint     `json:"contest_id" binding:"required"`
}

type TeamMembersReq struct {
	MemberIDs []uint32 `json:"member_ids" binding:"required"`
}

// ========== 响应 DTO ==========

type TeamDetailResp struct {
	ID         uint32   `json:"id"`
	TeamName   string   `json:"team_name"`
	Members    []string `json:"members"`
	ContestID  uint     `json:"contest_id"`
	TotalScore int      `json:"total_score"`
}

type RankingEntryResp struct {
	Rank       int      `json:"rank"`
	TeamID     uint32   `json:"team_id"`
	TeamName   string   `json:"team_name"`
	Members    []string `json:"members"`
	TotalScore int      `json:"total_score"`
}

// SolveFeedEntry 实时解题动态的一条记录
type SolveFeedEntry struct {
	TeamID       uint32    `json:"team_id"`
	TeamName     string    `json:"team_name"`
	ProblemID    uint32    `json:"problem_id"`
	ProblemTitle string    `json:"problem_title"`
	Score        int       `json:"score"`
	SolvedAt     time.Time `json:"solved_at"`
}
