package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"carbooking/models"
)

// ListVehicles 查詢車輛清單。
// 不帶區間時只反映維修狀態；帶區間時逐台計算是否被訂走。
func (s *Service) ListVehicles(startDate, endDate string) ([]models.VehicleResponse, error) {
	if err := s.SweepExpiredBookings(); err != nil {
		return nil, err
	}

	vehicles, err := s.store.ListVehicles()
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	// 沒帶查詢區間：維修中回報 maintenance，其餘一律 available
	if startDate == "" && endDate == "" {
		resp := make([]models.VehicleResponse, len(vehicles))
		for i := range vehicles {
			resp[i] = vehicles[i].ToResponse()
		}
		return resp, nil
	}

	if startDate == "" || endDate == "" {
		return nil, &ValidationError{Field: "start_date/end_date", Reason: "both dates are required for a range query"}
	}

	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}

	bookings, err := s.store.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	resp, err := ResolveAvailability(vehicles, bookings, start, end)
	if err != nil {
		return nil, err
	}

	log.Printf("Resolved availability for %d vehicles in range %s..%s", len(resp), startDate, endDate)
	return resp, nil
}

// ResolveAvailability 依查詢區間計算每台車輛的狀態視圖。
// 純計算：回傳新的視圖，不改動任何庫存資料。
func ResolveAvailability(vehicles []models.Vehicle, bookings []models.Booking, start, end time.Time) ([]models.VehicleResponse, error) {
	// 先把有效訂單（非取消、非封存）依車輛分組
	byVehicle := make(map[string][]models.Booking)
	for _, b := range bookings {
		if !models.IsActiveBookingStatus(b.Status) {
			continue
		}
		byVehicle[b.VehicleID] = append(byVehicle[b.VehicleID], b)
	}

	resp := make([]models.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		view := v.ToResponse()

		// 維修中的車不看區間，也不給下次可用日
		if v.Status == models.VehicleStatusMaintenance {
			resp = append(resp, view)
			continue
		}

		overlapped := false
		var latestEnd time.Time
		for _, b := range byVehicle[v.VehicleID] {
			bStart, err := parseDate(b.StartDate)
			if err != nil {
				return nil, err
			}
			bEnd, err := parseDate(b.EndDate)
			if err != nil {
				return nil, err
			}

			// 閉區間重疊：端點相接（還車日撞上取車日）也算衝突
			if !bStart.After(end) && !start.After(bEnd) {
				overlapped = true
			}
			// 下次可用日要看該車全部有效訂單的最晚結束日，不只衝突那筆
			if bEnd.After(latestEnd) {
				latestEnd = bEnd
			}
		}

		if overlapped {
			view.Status = models.VehicleStatusBooked
			view.NextAvailableDate = latestEnd.AddDate(0, 0, 1).Format(models.DateLayout)
		}
		resp = append(resp, view)
	}
	return resp, nil
}

// GetVehicle 查詢單一車輛
func (s *Service) GetVehicle(id string) (*models.Vehicle, error) {
	v, err := s.store.GetVehicle(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// CreateVehicle 新增車輛：配發新 ID 並套用預設值
func (s *Service) CreateVehicle(v *models.Vehicle) error {
	if v.Status == "" {
		v.Status = models.VehicleStatusAvailable
	}
	if v.RateType == "" {
		v.RateType = "24hr"
	}
	if err := validateVehicleFields(v.Status, v.DailyRate); err != nil {
		return err
	}
	if strings.TrimSpace(v.Plate) == "" {
		return &ValidationError{Field: "plate", Reason: "must not be empty"}
	}

	if err := s.checkPlateUnique(v.Plate, ""); err != nil {
		return err
	}

	v.VehicleID = uuid.NewString()
	if err := s.store.CreateVehicle(v); err != nil {
		return wrapDuplicatePlate(err, "failed to create vehicle")
	}

	log.Printf("Created vehicle %s (plate=%s)", v.VehicleID, v.Plate)
	return nil
}

// UpdateVehicle 部分更新車輛：整筆覆寫回存
func (s *Service) UpdateVehicle(id string, in *models.VehicleUpdate) (*models.Vehicle, error) {
	v, err := s.store.GetVehicle(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}
	if v == nil {
		return nil, ErrNotFound
	}

	if in.Model != nil {
		v.Model = *in.Model
	}
	if in.Plate != nil {
		if strings.TrimSpace(*in.Plate) == "" {
			return nil, &ValidationError{Field: "plate", Reason: "must not be empty"}
		}
		if err := s.checkPlateUnique(*in.Plate, id); err != nil {
			return nil, err
		}
		v.Plate = *in.Plate
	}
	if in.DailyRate != nil {
		v.DailyRate = *in.DailyRate
	}
	if in.Transmission != nil {
		v.Transmission = *in.Transmission
	}
	if in.ColorHex != nil {
		v.ColorHex = *in.ColorHex
	}
	if in.Status != nil {
		v.Status = *in.Status
	}
	if in.ImageURL != nil {
		v.ImageURL = *in.ImageURL
	}
	if in.RateType != nil {
		v.RateType = *in.RateType
	}

	// booked 只能算出來，不能存進去
	if err := validateVehicleFields(v.Status, v.DailyRate); err != nil {
		return nil, err
	}

	if err := s.store.SaveVehicle(v); err != nil {
		return nil, wrapDuplicatePlate(err, "failed to save vehicle")
	}

	log.Printf("Updated vehicle %s", id)
	return v, nil
}

// DeleteVehicle 刪除車輛：既有訂單保留不動（不做級聯刪除）
func (s *Service) DeleteVehicle(id string) (bool, error) {
	ok, err := s.store.DeleteVehicle(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete vehicle %s: %w", id, err)
	}
	if ok {
		log.Printf("Deleted vehicle %s", id)
	}
	return ok, nil
}

// validateVehicleFields 核心自己守住的不變量：狀態列舉與非負費率
func validateVehicleFields(status string, dailyRate int) error {
	if status != models.VehicleStatusAvailable && status != models.VehicleStatusMaintenance {
		return &ValidationError{Field: "status", Reason: "must be 'available' or 'maintenance'"}
	}
	if dailyRate < 0 {
		return &ValidationError{Field: "daily_rate", Reason: "must not be negative"}
	}
	return nil
}

// checkPlateUnique 車牌唯一性：不分大小寫，可排除自己
func (s *Service) checkPlateUnique(plate, excludeID string) error {
	vehicles, err := s.store.ListVehicles()
	if err != nil {
		return fmt.Errorf("failed to list vehicles: %w", err)
	}
	for _, existing := range vehicles {
		if existing.VehicleID == excludeID {
			continue
		}
		if strings.EqualFold(existing.Plate, plate) {
			return &ValidationError{Field: "plate", Reason: fmt.Sprintf("plate %s is already in use", plate)}
		}
	}
	return nil
}
