package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbooking/models"
)

// ListVehicles 查詢車輛清單，可選帶 start_date/end_date 查詢區間可用性
func (h *Handler) ListVehicles(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	vehicles, err := h.Svc.ListVehicles(startDate, endDate)
	if err != nil {
		log.Printf("Failed to list vehicles: %v", err)
		ServiceErrorResponse(c, "查詢車輛失敗", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", vehicles)
}

// GetVehicle 查詢特定車輛
func (h *Handler) GetVehicle(c *gin.Context) {
	id := c.Param("id")

	vehicle, err := h.Svc.GetVehicle(id)
	if err != nil {
		ServiceErrorResponse(c, "車輛不存在", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", vehicle.ToResponse())
}

// CreateVehicle 新增車輛
func (h *Handler) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "輸入格式錯誤", err.Error())
		return
	}

	if err := h.Svc.CreateVehicle(&vehicle); err != nil {
		log.Printf("Failed to create vehicle: %v", err)
		ServiceErrorResponse(c, "新增車輛失敗", err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "車輛新增成功", vehicle.ToResponse())
}

// UpdateVehicle 部分更新車輛
func (h *Handler) UpdateVehicle(c *gin.Context) {
	id := c.Param("id")

	var input models.VehicleUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "輸入格式錯誤", err.Error())
		return
	}

	vehicle, err := h.Svc.UpdateVehicle(id, &input)
	if err != nil {
		log.Printf("Failed to update vehicle %s: %v", id, err)
		ServiceErrorResponse(c, "更新車輛失敗", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "車輛更新成功", vehicle.ToResponse())
}

// DeleteVehicle 刪除車輛（不會連帶刪除訂單）
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.Svc.DeleteVehicle(id)
	if err != nil {
		log.Printf("Failed to delete vehicle %s: %v", id, err)
		ServiceErrorResponse(c, "刪除車輛失敗", err)
		return
	}
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "車輛不存在", "vehicle not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "車輛刪除成功", nil)
}
