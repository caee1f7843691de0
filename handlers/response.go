package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbooking/services"
)

// APIResponse 定義統一的 API 回應結構
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"` // omitempty 表示如果為空則不顯示
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse 返回成功的回應
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 返回失敗的回應
func ErrorResponse(c *gin.Context, statusCode int, message string, err string) {
	c.JSON(statusCode, APIResponse{
		Status:  false,
		Message: message,
		Error:   err,
	})
}

// ServiceErrorResponse 依錯誤種類決定 HTTP 狀態碼：
// 驗證與日期錯誤回 400、查無資料回 404，其餘一律 500
func ServiceErrorResponse(c *gin.Context, message string, err error) {
	var validationErr *services.ValidationError
	var dateErr *services.InvalidDateError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &dateErr):
		ErrorResponse(c, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, services.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, message, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, message, err.Error())
	}
}
