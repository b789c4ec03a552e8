// file: controllers/contest_team_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hguoj/dto"
	"hguoj/mappers"
	"hguoj/services"
	"hguoj/utils"

	"github.com/gin-gonic/gin"
)

// teamError 把领域错误翻译成 HTTP 状态码：
// 资源不存在 404，队名冲突 409，状态非法 400，其余 500
func teamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrContestNotFound),
		errors.Is(err, services.ErrProblemNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrTeamNameExists):
		utils.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrEmptyRoster),
		errors.Is(err, services.ErrRosterWouldBeEmpty):
		utils.Error(c, http.StatusBadRequest, err.Error())
	default:
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
	}
}

// ExistsTeamName 队名占用检查，供建队页面实时校验
func ExistsTeamName(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		utils.Error(c, http.StatusBadRequest, "缺少 team_name 参数")
		return
	}
	exists, err := services.ExistsByTeamName(teamName)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}
	utils.Success(c, "success", gin.H{"exists": exists})
}

func CreateTeam(c *gin.Context) {
	var req dto.CreateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	teamID, err := services.CreateTeam(req.TeamName, req.MemberIDs, req.ContestID)
	if err != nil {
		teamError(c, err)
		return
	}
	utils.Created(c, "Team created successfully", gin.H{"id": teamID})
}

func GetTeamDetail(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的队伍ID")
		return
	}

	team, err := services.GetTeamByID(uint32(teamID))
	if err != nil {
		teamError(c, err)
		return
	}
	utils.Success(c, "success", mappers.MapTeamToDetailResp(team))
}

func GetTeamList(c *gin.Context) {
	teams, err := services.GetAllTeams()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	resp := make([]dto.TeamDetailResp, 0, len(teams))
	for _, team := range teams {
		resp = append(resp, mappers.MapTeamToDetailResp(team))
	}
	utils.Success(c, "success", resp)
}

func DeleteTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的队伍ID")
		return
	}

	if err := services.DeleteTeam(uint32(teamID)); err != nil {
		teamError(c, err)
		return
	}
	utils.Success(c, "Team deleted successfully", nil)
}

func AddTeamMembers(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的队伍ID")
		return
	}
	var req dto.TeamMembersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	if err := services.AddMembers(uint32(teamID), req.MemberIDs); err != nil {
		teamError(c, err)
		return
	}
	utils.Success(c, "Members added successfully", nil)
}

func RemoveTeamMembers(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的队伍ID")
		return
	}
	var req dto.TeamMembersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	if err := services.RemoveMembers(uint32(teamID), req.MemberIDs); err != nil {
		teamError(c, err)
		return
	}
	utils.Success(c, "Members removed successfully", nil)
}

// RecordTeamSolve 判题服务回调入口：某队解出某题（已验证的事实）。
// 重复提交已解的题是 no-op，不报错
func RecordTeamSolve(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的队伍ID")
		return
	}
	problemID, err := strconv.Atoi(c.Param("problem_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的题目ID")
		return
	}

	if err := services.RecordSolve(uint32(teamID), uint32(problemID)); err != nil {
		teamError(c, err)
		return
	}
	utils.Success(c, "Solve recorded", nil)
}

func GetTeamSolvedProblems(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的队伍ID")
		return
	}

	ids, err := services.GetSolvedProblems(uint32(teamID))
	if err != nil {
		teamError(c, err)
		return
	}
	utils.Success(c, "success", ids)
}

func GetContestRanking(c *gin.Context) {
	contestID, err := strconv.Atoi(c.Query("contest_id"))
	if err != nil || contestID <= 0 {
		utils.Error(c, http.StatusBadRequest, "无效的比赛ID")
		return
	}

	entries, err := services.GetRankingByContest(uint(contestID))
	if err != nil {
		teamError(c, err)
		return
	}
	utils.Success(c, "success", entries)
}

// GetSolveFeed 查询实时解题动态
func GetSolveFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := services.GetSolveFeed(limit)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "查询解题动态失败")
		return
	}
	utils.Success(c, "success", entries)
}
