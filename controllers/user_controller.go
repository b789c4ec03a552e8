// file: controllers/user_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"hguoj/database"
	"hguoj/models"
	"hguoj/utils"

	"github.com/gin-gonic/gin"
)

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
		RealName string `json:"real_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&user).Error; err == nil {
		utils.Error(c, http.StatusConflict, "用户名或邮箱已被注册")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		RealName: req.RealName,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	utils.Created(c, "User registered successfully", gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"role":     newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "用户不存在或密码错误")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "用户不存在或密码错误")
		return
	}
	if user.Status == models.StatusBanned {
		utils.Error(c, http.StatusForbidden, "用户已被封禁")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "生成 Token 失败")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// --- 登录用户接口 ---

func GetUserDetail(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的用户ID")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "用户不存在")
		return
	}
	utils.Success(c, "success", user)
}

// --- 管理员接口 ---

func GetUserList(c *gin.Context) {
	var users []models.User
	db := database.DB.Model(&models.User{})
	if username := c.Query("username"); username != "" {
		db = db.Where("username LIKE ?", "%"+username+"%")
	}
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}
	utils.Success(c, "success", users)
}

func DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的用户ID")
		return
	}

	result := database.DB.Delete(&models.User{}, userID)
	if result.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "用户不存在")
		return
	}
	utils.Success(c, "User deleted successfully", nil)
}
