// file: utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: 0, Msg: msg, Data: data})
}

// Error 错误响应，code 同时作为 HTTP 状态码返回
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{Code: code, Msg: msg})
}
