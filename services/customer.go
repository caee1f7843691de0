package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"carbooking/models"
)

// normalizeGuestName 客戶分組鍵：去頭尾空白、不分大小寫
func normalizeGuestName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ListCustomers 由訂單歷史彙整客戶名錄。
// 只看 confirmed 與 completed；同一組內依開始日期遞增處理，
// 後面的訂單覆寫名稱（保留最新大小寫）、電話與證件圖（有值才覆寫）。
func (s *Service) ListCustomers() ([]models.Customer, error) {
	if err := s.SweepExpiredBookings(); err != nil {
		return nil, err
	}

	bookings, err := s.store.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var seen []models.Booking
	for _, b := range bookings {
		if b.Status == models.BookingStatusConfirmed || b.Status == models.BookingStatusCompleted {
			seen = append(seen, b)
		}
	}

	// 嚴格遞增排序讓「最後一筆」有明確定義
	sort.SliceStable(seen, func(i, j int) bool {
		return seen[i].StartDate < seen[j].StartDate
	})

	byName := make(map[string]*models.Customer)
	var order []string
	for _, b := range seen {
		key := normalizeGuestName(b.GuestName)
		if key == "" {
			continue
		}
		entry, ok := byName[key]
		if !ok {
			entry = &models.Customer{}
			byName[key] = entry
			order = append(order, key)
		}
		entry.Name = strings.TrimSpace(b.GuestName)
		entry.Phone = b.GuestPhone
		if b.IDImageURL != "" {
			entry.IDImageURL = b.IDImageURL
		}
		entry.TotalBookings++
		entry.LastBooking = b.StartDate
	}

	customers := make([]models.Customer, 0, len(byName))
	for _, key := range order {
		customers = append(customers, *byName[key])
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].LastBooking > customers[j].LastBooking
	})

	log.Printf("Rolled up %d customers from %d bookings", len(customers), len(seen))
	return customers, nil
}

// UpdateCustomerBookings 以舊名稱批次改寫訂單上的客戶身分。
// 沒有獨立的客戶表，修正身分就是把歷史訂單整批重寫。
func (s *Service) UpdateCustomerBookings(oldName string, in *models.CustomerUpdate) (int, error) {
	key := normalizeGuestName(oldName)
	if key == "" {
		return 0, &ValidationError{Field: "old_name", Reason: "must not be empty"}
	}

	bookings, err := s.store.ListBookings()
	if err != nil {
		return 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	updated := 0
	for i := range bookings {
		b := bookings[i]
		if normalizeGuestName(b.GuestName) != key {
			continue
		}
		if in.Name != nil {
			b.GuestName = *in.Name
		}
		if in.Phone != nil {
			b.GuestPhone = *in.Phone
		}
		if in.IDImageURL != nil {
			b.IDImageURL = *in.IDImageURL
		}
		if err := s.store.SaveBooking(&b); err != nil {
			return updated, fmt.Errorf("failed to save booking %s: %w", b.BookingID, err)
		}
		updated++
	}

	if updated == 0 {
		return 0, ErrNotFound
	}

	log.Printf("Rewrote guest identity on %d bookings (old_name=%s)", updated, oldName)
	return updated, nil
}
