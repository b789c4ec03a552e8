// file: controllers/contest_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hguoj/database"
	"hguoj/models"
	"hguoj/utils"

	"github.com/gin-gonic/gin"
)

func CreateContest(c *gin.Context) {
	var req models.Contest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}
	if !req.EndTime.After(req.StartTime) {
		utils.Error(c, http.StatusBadRequest, "结束时间必须晚于开始时间")
		return
	}

	contest := models.Contest{
		ContestName: req.ContestName,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := database.DB.Create(&contest).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "创建比赛失败")
		return
	}
	utils.Created(c, "Contest created successfully", gin.H{"id": contest.ID})
}

func GetContestList(c *gin.Context) {
	var contests []models.Contest
	if err := database.DB.Order("start_time desc").Find(&contests).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	now := time.Now()
	type ContestItem struct {
		models.Contest
		Status models.ContestStatus `json:"status"`
	}
	items := make([]ContestItem, 0, len(contests))
	for _, ct := range contests {
		items = append(items, ContestItem{Contest: ct, Status: ct.CurrentStatus(now)})
	}
	utils.Success(c, "success", items)
}

func GetContestDetail(c *gin.Context) {
	contestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的比赛ID")
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "比赛不存在")
		return
	}

	now := time.Now()
	utils.Success(c, "success", gin.H{
		"id":           contest.ID,
		"contest_name": contest.ContestName,
		"description":  contest.Description,
		"start_time":   contest.StartTime,
		"end_time":     contest.EndTime,
		"status":       contest.CurrentStatus(now),
	})
}

func UpdateContest(c *gin.Context) {
	contestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的比赛ID")
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "比赛不存在")
		return
	}

	var req struct {
		ContestName *string    `json:"contest_name"`
		Description *string    `json:"description"`
		StartTime   *time.Time `json:"start_time"`
		EndTime     *time.Time `json:"end_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.ContestName != nil {
		updates["contest_name"] = *req.ContestName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&contest).Updates(updates).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "更新比赛失败")
			return
		}
	}
	utils.Success(c, "Contest updated successfully", nil)
}

func DeleteContest(c *gin.Context) {
	contestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的比赛ID")
		return
	}

	result := database.DB.Delete(&models.Contest{}, contestID)
	if result.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "比赛不存在")
		return
	}
	utils.Success(c, "Contest deleted successfully", nil)
}
