package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carbooking/models"
)

// GormStore MySQL 後端：和記憶體後端共用同一個 Store 介面，
// 業務規則不在這裡，這裡只做整筆存取。
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 建立 MySQL 連線並執行遷移
func NewGormStore(dsn string) (*GormStore, error) {
	// 根據環境設置日誌級別
	logLevel := logger.Info
	if os.Getenv("GIN_MODE") == "release" {
		logLevel = logger.Warn // 生產環境減少日誌
	}

	var db *gorm.DB
	var err error

	// 重試機制
	maxRetries := 5
	retryInterval := 5 * time.Second
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(gormmysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database after %d attempts: %w", maxRetries, err)
	}

	// 連線池配置
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.AutoMigrate(&models.Vehicle{}, &models.Booking{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("Database initialized successfully with GORM")
	return &GormStore{db: db}, nil
}

// isDuplicateEntry MySQL 1062：撞到唯一索引
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (s *GormStore) ListVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Order("vehicle_id").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *GormStore) GetVehicle(id string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.First(&v, "vehicle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query vehicle %s: %w", id, err)
	}
	return &v, nil
}

func (s *GormStore) CreateVehicle(v *models.Vehicle) error {
	if err := s.db.Create(v).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicatePlate
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (s *GormStore) SaveVehicle(v *models.Vehicle) error {
	if err := s.db.Save(v).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicatePlate
		}
		return fmt.Errorf("failed to save vehicle %s: %w", v.VehicleID, err)
	}
	return nil
}

func (s *GormStore) DeleteVehicle(id string) (bool, error) {
	result := s.db.Delete(&models.Vehicle{}, "vehicle_id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete vehicle %s: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("booking_id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	return bookings, nil
}

func (s *GormStore) GetBooking(id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.First(&b, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query booking %s: %w", id, err)
	}
	return &b, nil
}

func (s *GormStore) ListBookingsByVehicle(vehicleID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("vehicle_id = ?", vehicleID).Order("booking_id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to query bookings for vehicle %s: %w", vehicleID, err)
	}
	return bookings, nil
}

func (s *GormStore) CreateBooking(b *models.Booking) error {
	if err := s.db.Create(b).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (s *GormStore) SaveBooking(b *models.Booking) error {
	if err := s.db.Save(b).Error; err != nil {
		return fmt.Errorf("failed to save booking %s: %w", b.BookingID, err)
	}
	return nil
}
