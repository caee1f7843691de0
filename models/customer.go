package models

// Customer 由訂單歷史彙整出的客戶視圖，不另外落地
type Customer struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	IDImageURL    string `json:"id_image_url,omitempty"`
	TotalBookings int    `json:"total_bookings"`
	LastBooking   string `json:"last_booking"` // 最近一筆訂單的開始日期
}

// CustomerUpdate 批次改寫訂單上的客戶身分：nil 代表該欄位不變
type CustomerUpdate struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
	IDImageURL *string `json:"id_image_url"`
}
