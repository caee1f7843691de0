package models

// DateLayout 系統統一的日期格式（只有日期，沒有時間）
const DateLayout = "2006-01-02"

// 車輛狀態：booked 不會存進資料庫，只在查詢時計算出來
const (
	VehicleStatusAvailable   = "available"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusBooked      = "booked"
)

type Vehicle struct {
	VehicleID    string `json:"vehicle_id" gorm:"primaryKey;type:varchar(36);column:vehicle_id"`
	Model        string `json:"model" gorm:"type:varchar(50);not null" binding:"required,max=50"`
	Plate        string `json:"plate" gorm:"type:varchar(20);not null;uniqueIndex:idx_plate" binding:"required,max=20"`
	DailyRate    int    `json:"daily_rate" gorm:"type:INT;not null" binding:"gte=0"`
	Transmission string `json:"transmission" gorm:"type:enum('auto', 'manual');not null" binding:"required,oneof=auto manual"`
	ColorHex     string `json:"color_hex" gorm:"type:varchar(7)" binding:"omitempty,hexcolor"`
	Status       string `json:"status" gorm:"type:enum('available', 'maintenance');default:'available'" binding:"omitempty,oneof=available maintenance"`
	ImageURL     string `json:"image_url" gorm:"type:text"`
	RateType     string `json:"rate_type" gorm:"type:varchar(10);default:'24hr'"`
}

func (Vehicle) TableName() string {
	return "vehicle"
}

// VehicleResponse 給前端用的回應結構：status 可能是查詢時算出的 booked
type VehicleResponse struct {
	VehicleID         string `json:"vehicle_id"`
	Model             string `json:"model"`
	Plate             string `json:"plate"`
	DailyRate         int    `json:"daily_rate"`
	Transmission      string `json:"transmission"`
	ColorHex          string `json:"color_hex"`
	Status            string `json:"status"`
	ImageURL          string `json:"image_url,omitempty"`
	RateType          string `json:"rate_type"`
	NextAvailableDate string `json:"next_available_date,omitempty"` // 只在區間查詢且車輛被訂走時出現
}

func (v *Vehicle) ToResponse() VehicleResponse {
	return VehicleResponse{
		VehicleID:    v.VehicleID,
		Model:        v.Model,
		Plate:        v.Plate,
		DailyRate:    v.DailyRate,
		Transmission: v.Transmission,
		ColorHex:     v.ColorHex,
		Status:       v.Status,
		ImageURL:     v.ImageURL,
		RateType:     v.RateType,
	}
}

// VehicleUpdate 部分更新用：nil 代表該欄位不變
type VehicleUpdate struct {
	Model        *string `json:"model" binding:"omitempty,max=50"`
	Plate        *string `json:"plate" binding:"omitempty,max=20"`
	DailyRate    *int    `json:"daily_rate" binding:"omitempty"`
	Transmission *string `json:"transmission" binding:"omitempty,oneof=auto manual"`
	ColorHex     *string `json:"color_hex" binding:"omitempty,hexcolor"`
	Status       *string `json:"status"`
	ImageURL     *string `json:"image_url"`
	RateType     *string `json:"rate_type" binding:"omitempty,max=10"`
}
