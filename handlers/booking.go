package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbooking/models"
)

// ListBookings 查詢全部訂單
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.Svc.ListBookings()
	if err != nil {
		log.Printf("Failed to list bookings: %v", err)
		ServiceErrorResponse(c, "查詢訂單失敗", err)
		return
	}

	resp := make([]models.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = bookings[i].ToResponse()
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", resp)
}

// GetVehicleBookings 查詢某台車的全部訂單
func (h *Handler) GetVehicleBookings(c *gin.Context) {
	vehicleID := c.Param("id")

	bookings, err := h.Svc.GetBookingsForVehicle(vehicleID)
	if err != nil {
		log.Printf("Failed to list bookings for vehicle %s: %v", vehicleID, err)
		ServiceErrorResponse(c, "查詢訂單失敗", err)
		return
	}

	resp := make([]models.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = bookings[i].ToResponse()
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", resp)
}

// CreateBooking 新增訂單
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "輸入格式錯誤", err.Error())
		return
	}

	if err := h.Svc.CreateBooking(&booking); err != nil {
		log.Printf("Failed to create booking: %v", err)
		ServiceErrorResponse(c, "新增訂單失敗", err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "訂單新增成功", booking.ToResponse())
}

// UpdateBooking 部分更新訂單
func (h *Handler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var input models.BookingUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "輸入格式錯誤", err.Error())
		return
	}

	booking, err := h.Svc.UpdateBooking(id, &input)
	if err != nil {
		log.Printf("Failed to update booking %s: %v", id, err)
		ServiceErrorResponse(c, "更新訂單失敗", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "訂單更新成功", booking.ToResponse())
}
