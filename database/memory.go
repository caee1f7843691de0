package database

import (
	"sort"
	"strings"
	"sync"

	"carbooking/models"
)

// MemoryStore 行程內的記憶體儲存：重啟即遺失，是預設後端。
// 一把粗粒度鎖就足夠，所有讀取都回傳複本，呼叫端拿不到內部參照。
type MemoryStore struct {
	mu       sync.Mutex
	vehicles map[string]models.Vehicle
	bookings map[string]models.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		vehicles: make(map[string]models.Vehicle),
		bookings: make(map[string]models.Booking),
	}
}

func (s *MemoryStore) ListVehicles() ([]models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		vehicles = append(vehicles, v)
	}
	// map 迭代順序不固定，依主鍵排序讓輸出穩定
	sort.Slice(vehicles, func(i, j int) bool {
		return vehicles[i].VehicleID < vehicles[j].VehicleID
	})
	return vehicles, nil
}

func (s *MemoryStore) GetVehicle(id string) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *MemoryStore) CreateVehicle(v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.vehicles {
		if strings.EqualFold(existing.Plate, v.Plate) {
			return ErrDuplicatePlate
		}
	}
	s.vehicles[v.VehicleID] = *v
	return nil
}

func (s *MemoryStore) SaveVehicle(v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.vehicles {
		if existing.VehicleID != v.VehicleID && strings.EqualFold(existing.Plate, v.Plate) {
			return ErrDuplicatePlate
		}
	}
	// 整筆覆寫，不做欄位級更新
	s.vehicles[v.VehicleID] = *v
	return nil
}

func (s *MemoryStore) DeleteVehicle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[id]; !ok {
		return false, nil
	}
	delete(s.vehicles, id)
	return true, nil
}

func (s *MemoryStore) ListBookings() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingID < bookings[j].BookingID
	})
	return bookings, nil
}

func (s *MemoryStore) GetBooking(id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *MemoryStore) ListBookingsByVehicle(vehicleID string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.VehicleID == vehicleID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingID < bookings[j].BookingID
	})
	return bookings, nil
}

func (s *MemoryStore) CreateBooking(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings[b.BookingID] = *b
	return nil
}

func (s *MemoryStore) SaveBooking(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings[b.BookingID] = *b
	return nil
}
