package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbooking/models"
)

// ListCustomers 查詢由訂單彙整出的客戶名錄
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Svc.ListCustomers()
	if err != nil {
		log.Printf("Failed to roll up customers: %v", err)
		ServiceErrorResponse(c, "查詢客戶失敗", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查詢成功", customers)
}

// UpdateCustomerInput 批次更新客戶身分的請求
type UpdateCustomerInput struct {
	OldName    string  `json:"old_name" binding:"required"`
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
	IDImageURL *string `json:"id_image_url"`
}

// UpdateCustomer 以舊名稱批次改寫訂單上的客戶身分
func (h *Handler) UpdateCustomer(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "輸入格式錯誤", err.Error())
		return
	}

	update := models.CustomerUpdate{
		Name:       input.Name,
		Phone:      input.Phone,
		IDImageURL: input.IDImageURL,
	}

	updated, err := h.Svc.UpdateCustomerBookings(input.OldName, &update)
	if err != nil {
		log.Printf("Failed to update customer %s: %v", input.OldName, err)
		ServiceErrorResponse(c, "更新客戶失敗", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "客戶更新成功", gin.H{"updated_bookings": updated})
}
