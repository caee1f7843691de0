package services

import (
	"testing"
	"time"

	"carbooking/database"
	"carbooking/models"
)

// newTestService builds a Service over a fresh in-memory store with a pinned clock.
func newTestService(t *testing.T, today string) *Service {
	t.Helper()
	return newTestServiceWithStore(t, database.NewMemoryStore(), today)
}

func newTestServiceWithStore(t *testing.T, store database.Store, today string) *Service {
	t.Helper()
	fixed, err := time.Parse(models.DateLayout, today)
	if err != nil {
		t.Fatalf("bad test date %s: %v", today, err)
	}
	s := New(store)
	s.nowFunc = func() time.Time { return fixed }
	return s
}

func mustCreateVehicle(t *testing.T, s *Service, v models.Vehicle) models.Vehicle {
	t.Helper()
	if err := s.CreateVehicle(&v); err != nil {
		t.Fatalf("CreateVehicle: %v", err)
	}
	return v
}

func mustCreateBooking(t *testing.T, s *Service, b models.Booking) models.Booking {
	t.Helper()
	if err := s.CreateBooking(&b); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return b
}

func findVehicleView(t *testing.T, views []models.VehicleResponse, id string) models.VehicleResponse {
	t.Helper()
	for _, v := range views {
		if v.VehicleID == id {
			return v
		}
	}
	t.Fatalf("vehicle %s not found in response", id)
	return models.VehicleResponse{}
}
