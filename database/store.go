package database

import (
	"errors"

	"carbooking/models"
)

// ErrDuplicatePlate 車牌重複（兩種後端都會回報同一個錯誤）
var ErrDuplicatePlate = errors.New("license plate already exists")

// Store 資料存取介面：記憶體與 MySQL 兩種後端共用。
// 業務規則（重疊判定、過期掃描、統計）一律放在 services，
// 後端只負責單純的整筆存取。
//
// Get 系列找不到資料時回傳 (nil, nil)，由呼叫端決定要不要當作錯誤。
type Store interface {
	ListVehicles() ([]models.Vehicle, error)
	GetVehicle(id string) (*models.Vehicle, error)
	CreateVehicle(v *models.Vehicle) error
	SaveVehicle(v *models.Vehicle) error
	DeleteVehicle(id string) (bool, error)

	ListBookings() ([]models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	ListBookingsByVehicle(vehicleID string) ([]models.Booking, error)
	CreateBooking(b *models.Booking) error
	SaveBooking(b *models.Booking) error
}
