package services

import (
	"fmt"
	"log"
	"time"

	"carbooking/models"
)

// GetStats 計算儀表板統計（先跑過期掃描）
func (s *Service) GetStats() (*models.DashboardStats, error) {
	if err := s.SweepExpiredBookings(); err != nil {
		return nil, err
	}

	vehicles, err := s.store.ListVehicles()
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	bookings, err := s.store.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	stats, err := ComputeStats(vehicles, bookings, s.today())
	if err != nil {
		return nil, err
	}

	log.Printf("Computed stats: cars=%d rented_today=%d revenue_today=%d monthly=%d",
		stats.TotalCars, stats.RentedToday, stats.RevenueToday, stats.MonthlyRevenue)
	return stats, nil
}

// ComputeStats 純計算：同樣的車輛、訂單與日期必定得到同樣的結果。
// monthlyRevenue 看的是訂單的結束日落在哪個月，不是建立日。
func ComputeStats(vehicles []models.Vehicle, bookings []models.Booking, today time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		TotalCars: len(vehicles), // 含維修中
	}

	for _, b := range bookings {
		// 取消與封存的訂單不進任何統計
		if !models.IsActiveBookingStatus(b.Status) {
			continue
		}

		if b.Status == models.BookingStatusCompleted {
			end, err := parseDate(b.EndDate)
			if err != nil {
				return nil, err
			}
			if end.Year() == today.Year() && end.Month() == today.Month() {
				stats.MonthlyRevenue += b.TotalPrice
			}
			continue
		}

		// 其餘狀態（pending 系列與 confirmed）若區間涵蓋今天就算出租中
		start, err := parseDate(b.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(b.EndDate)
		if err != nil {
			return nil, err
		}
		if !start.After(today) && !end.Before(today) {
			stats.RentedToday++
			stats.RevenueToday += b.TotalPrice
		}
	}
	return stats, nil
}
