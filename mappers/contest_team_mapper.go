// file: mappers/contest_team_mapper.go
package mappers

import (
	"hguoj/dto"
	"hguoj/models"
)

// MemberUsernames 取已预加载成员关系里的用户名
func MemberUsernames(team models.ContestTeam) []string {
	names := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		names = append(names, m.User.Username)
	}
	return names
}

func MapTeamToDetailResp(team models.ContestTeam) dto.TeamDetailResp {
	return dto.TeamDetailResp{
		ID:         team.ID,
		TeamName:   team.TeamName,
		Members:    MemberUsernames(team),
		ContestID:  team.ContestID,
		TotalScore: team.TotalScore,
	}
}

func MapTeamToRankingEntry(team models.ContestTeam, rank int) dto.RankingEntryResp {
	return dto.RankingEntryResp{
		Rank:       rank,
		TeamID:     team.ID,
		TeamName:   team.TeamName,
		Members:    MemberUsernames(team),
		TotalScore: team.TotalScore,
	}
}
