package models

// 訂單狀態
const (
	BookingStatusPending          = "pending"
	BookingStatusPendingIDMissing = "pending_id_missing"
	BookingStatusConfirmed        = "confirmed"
	BookingStatusCompleted        = "completed"
	BookingStatusCancelled        = "cancelled"
	BookingStatusArchived         = "archived"
)

// IsBookingStatus 檢查是否為合法的訂單狀態
func IsBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusPendingIDMissing, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusArchived:
		return true
	}
	return false
}

// IsActiveBookingStatus 取消與封存的訂單不參與任何佔用計算
func IsActiveBookingStatus(s string) bool {
	return s != BookingStatusCancelled && s != BookingStatusArchived
}

type Booking struct {
	BookingID  string `json:"booking_id" gorm:"primaryKey;type:varchar(36);column:booking_id"`
	VehicleID  string `json:"vehicle_id" gorm:"index;type:varchar(36);not null" binding:"required"`
	GuestName  string `json:"guest_name" gorm:"type:varchar(100);not null" binding:"required,max=100"`
	GuestPhone string `json:"guest_phone" gorm:"type:varchar(30)" binding:"omitempty,max=30"`
	StartDate  string `json:"start_date" gorm:"type:varchar(10);not null" binding:"required"` // YYYY-MM-DD，含當日
	EndDate    string `json:"end_date" gorm:"type:varchar(10);not null" binding:"required"`   // YYYY-MM-DD，含當日
	TotalPrice int    `json:"total_price" gorm:"type:INT;default:0"`
	Status     string `json:"status" gorm:"type:enum('pending', 'pending_id_missing', 'confirmed', 'completed', 'cancelled', 'archived');default:'pending'"`
	IDVerified bool   `json:"id_verified" gorm:"type:tinyint(1);default:0"`
	IDImageURL string `json:"id_image_url" gorm:"type:text"`
}

func (Booking) TableName() string {
	return "booking"
}

type BookingResponse struct {
	BookingID  string `json:"booking_id"`
	VehicleID  string `json:"vehicle_id"`
	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TotalPrice int    `json:"total_price"`
	Status     string `json:"status"`
	IDVerified bool   `json:"id_verified"`
	IDImageURL string `json:"id_image_url,omitempty"`
}

func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		BookingID:  b.BookingID,
		VehicleID:  b.VehicleID,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		IDVerified: b.IDVerified,
		IDImageURL: b.IDImageURL,
	}
}

// BookingUpdate 部分更新用：nil 代表該欄位不變
type BookingUpdate struct {
	VehicleID  *string `json:"vehicle_id"`
	GuestName  *string `json:"guest_name" binding:"omitempty,max=100"`
	GuestPhone *string `json:"guest_phone" binding:"omitempty,max=30"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	TotalPrice *int    `json:"total_price"`
	Status     *string `json:"status"`
	IDVerified *bool   `json:"id_verified"`
	IDImageURL *string `json:"id_image_url"`
}
