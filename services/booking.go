package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"carbooking/models"
)

// SweepExpiredBookings 惰性過期掃描：confirmed 且結束日已過的訂單轉成 completed。
// 重複執行是 no-op；pending 過期不動（未核准的訂單不應該默默變成已完成）。
func (s *Service) SweepExpiredBookings() error {
	bookings, err := s.store.ListBookings()
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	today := s.today()
	swept := 0
	for i := range bookings {
		b := bookings[i]
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		end, err := parseDate(b.EndDate)
		if err != nil {
			return err
		}
		// 嚴格比較日曆日期：結束當天還不算過期
		if end.Before(today) {
			b.Status = models.BookingStatusCompleted
			if err := s.store.SaveBooking(&b); err != nil {
				return fmt.Errorf("failed to complete booking %s: %w", b.BookingID, err)
			}
			swept++
		}
	}

	if swept > 0 {
		log.Printf("Sweep completed %d expired bookings", swept)
	}
	return nil
}

// ListBookings 查詢全部訂單（先跑過期掃描）
func (s *Service) ListBookings() ([]models.Booking, error) {
	if err := s.SweepExpiredBookings(); err != nil {
		return nil, err
	}
	bookings, err := s.store.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetBookingsForVehicle 查詢某台車的全部訂單（先跑過期掃描）
func (s *Service) GetBookingsForVehicle(vehicleID string) ([]models.Booking, error) {
	if err := s.SweepExpiredBookings(); err != nil {
		return nil, err
	}
	bookings, err := s.store.ListBookingsByVehicle(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for vehicle %s: %w", vehicleID, err)
	}
	return bookings, nil
}

// CreateBooking 新增訂單：配發新 ID，預設 pending、未驗證證件
func (s *Service) CreateBooking(b *models.Booking) error {
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	if err := validateBookingFields(b.Status, b.TotalPrice); err != nil {
		return err
	}
	if err := validateBookingDates(b.StartDate, b.EndDate); err != nil {
		return err
	}
	if strings.TrimSpace(b.VehicleID) == "" {
		return &ValidationError{Field: "vehicle_id", Reason: "must not be empty"}
	}

	b.BookingID = uuid.NewString()
	if err := s.store.CreateBooking(b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	log.Printf("Created booking %s for vehicle %s (%s..%s)", b.BookingID, b.VehicleID, b.StartDate, b.EndDate)
	return nil
}

// UpdateBooking 部分更新訂單：整筆覆寫回存，最後寫入者獲勝
func (s *Service) UpdateBooking(id string, in *models.BookingUpdate) (*models.Booking, error) {
	b, err := s.store.GetBooking(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", id, err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if in.VehicleID != nil {
		if strings.TrimSpace(*in.VehicleID) == "" {
			return nil, &ValidationError{Field: "vehicle_id", Reason: "must not be empty"}
		}
		b.VehicleID = *in.VehicleID
	}
	if in.GuestName != nil {
		b.GuestName = *in.GuestName
	}
	if in.GuestPhone != nil {
		b.GuestPhone = *in.GuestPhone
	}
	if in.StartDate != nil {
		b.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		b.EndDate = *in.EndDate
	}
	if in.TotalPrice != nil {
		b.TotalPrice = *in.TotalPrice
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	if in.IDVerified != nil {
		b.IDVerified = *in.IDVerified
	}
	if in.IDImageURL != nil {
		b.IDImageURL = *in.IDImageURL
	}

	if err := validateBookingFields(b.Status, b.TotalPrice); err != nil {
		return nil, err
	}
	if err := validateBookingDates(b.StartDate, b.EndDate); err != nil {
		return nil, err
	}

	if err := s.store.SaveBooking(b); err != nil {
		return nil, fmt.Errorf("failed to save booking %s: %w", id, err)
	}

	log.Printf("Updated booking %s (status=%s)", id, b.Status)
	return b, nil
}

// validateBookingFields 核心自己守住的不變量：狀態列舉與非負金額
func validateBookingFields(status string, totalPrice int) error {
	if !models.IsBookingStatus(status) {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}
	if totalPrice < 0 {
		return &ValidationError{Field: "total_price", Reason: "must not be negative"}
	}
	return nil
}

// validateBookingDates 寫入前就擋掉壞日期，之後的讀取路徑才不會炸
func validateBookingDates(startDate, endDate string) error {
	if _, err := parseDate(startDate); err != nil {
		return &ValidationError{Field: "start_date", Reason: fmt.Sprintf("must be in %s format", models.DateLayout)}
	}
	if _, err := parseDate(endDate); err != nil {
		return &ValidationError{Field: "end_date", Reason: fmt.Sprintf("must be in %s format", models.DateLayout)}
	}
	return nil
}
