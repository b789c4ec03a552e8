// file: controllers/problem_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"hguoj/database"
	"hguoj/models"
	"hguoj/utils"

	"github.com/gin-gonic/gin"
)

func CreateProblem(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
		TotalScore  int    `json:"total_score" binding:"required"`
		Visible     *bool  `json:"visible"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}
	if req.TotalScore <= 0 {
		utils.Error(c, http.StatusBadRequest, "total_score 必须为正数")
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = string(models.DifficultyMedium)
	}
	if req.Difficulty != "easy" && req.Difficulty != "medium" && req.Difficulty != "hard" {
		utils.Error(c, http.StatusBadRequest, "difficulty 取值无效（easy/medium/hard）")
		return
	}

	problem := models.Problem{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  models.ProblemDifficulty(req.Difficulty),
		TotalScore:  req.TotalScore,
		Visible:     true,
	}
	if req.Visible != nil {
		problem.Visible = *req.Visible
	}
	if err := database.DB.Create(&problem).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "创建题目失败")
		return
	}
	utils.Created(c, "Problem created successfully", gin.H{"id": problem.ID})
}

// GetProblemList 用户可见的题目列表
func GetProblemList(c *gin.Context) {
	var problems []models.Problem
	db := database.DB.Where("visible = ?", true)
	if difficulty := c.Query("difficulty"); difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}
	if err := db.Order("id asc").Find(&problems).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}
	utils.Success(c, "success", problems)
}

func GetProblemDetail(c *gin.Context) {
	problemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的题目ID")
		return
	}

	var problem models.Problem
	if err := database.DB.First(&problem, problemID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "题目不存在")
		return
	}
	utils.Success(c, "success", problem)
}

func UpdateProblem(c *gin.Context) {
	problemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的题目ID")
		return
	}

	var problem models.Problem
	if err := database.DB.First(&problem, problemID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "题目不存在")
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Difficulty  *string `json:"difficulty"`
		TotalScore  *int    `json:"total_score"`
		Visible     *bool   `json:"visible"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.TotalScore != nil {
		if *req.TotalScore <= 0 {
			utils.Error(c, http.StatusBadRequest, "total_score 必须为正数")
			return
		}
		updates["total_score"] = *req.TotalScore
	}
	if req.Visible != nil {
		updates["visible"] = *req.Visible
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&problem).Updates(updates).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "更新题目失败")
			return
		}
	}
	utils.Success(c, "Problem updated successfully", nil)
}

// DeleteProblem 删除题目。已有的解题台账保留，
// 被删题目在总分重算中按 0 分计
func DeleteProblem(c *gin.Context) {
	problemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的题目ID")
		return
	}

	result := database.DB.Delete(&models.Problem{}, problemID)
	if result.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "题目不存在")
		return
	}
	utils.Success(c, "Problem deleted successfully", nil)
}
