package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats 查詢儀表板統計
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Svc.GetStats()
	if err != nil {
		log.Printf("Failed to compute stats: %v", err)
		ServiceErrorResponse(c, "統計計算失敗", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", stats)
}
