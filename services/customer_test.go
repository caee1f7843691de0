package services

import (
	"errors"
	"testing"

	"carbooking/models"
)

func TestCustomerRollupMergesCaseAndWhitespace(t *testing.T) {
	s := newTestService(t, "2024-06-01")
	v := mustCreateVehicle(t, s, models.Vehicle{Model: "Vios", Plate: "ABC-1234", DailyRate: 1500, Transmission: "auto"})
	mustCreateBooking(t, s, models.Booking{
		VehicleID: v.VehicleID, GuestName: "Juan Dela Cruz", GuestPhone: "0917-000-0001",
		StartDate: "2024-05-01", EndDate: "2024-05-03", Status: models.BookingStatusCompleted, TotalPrice: 3000,
	})
	mustCreateBooking(t, s, models.Booking{
		VehicleID: v.VehicleID, GuestName: "juan dela cruz ", GuestPhone: "0917-000-0002",
		StartDate: "2024-06-10", EndDate: "2024-06-12", Status: models.BookingStatusConfirmed, TotalPrice: 3000,
	})

	customers, err := s.ListCustomers()
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected one merged customer, got %d", len(customers))
	}
	got := customers[0]
	if got.TotalBookings != 2 {
		t.Fatalf("expected total_bookings 2, got %d", got.TotalBookings)
	}
	// the chronologically later booking wins name casing and phone
	if got.Name != "juan dela cruz" {
		t.Fatalf("expected latest casing (trimmed), got %q", got.Name)
	}
	if got.Phone != "0917-000-0002" {
		t.Fatalf("expected latest phone, got %s", got.Phone)
	}
	if got.LastBooking != "2024-06-10" {
		t.Fatalf("expected last_booking 2024-06-10, got %s", got.LastBooking)
	}
}

func TestCustomerRollupOnlyConfirmedAndCompleted(t *testing.T) {
	s := newTestService(t, "2024-06-01")
	v := mustCreateVehicle(t, s, models.Vehicle{Model: "Vios", Plate: "ABC-1234", DailyRate: 1500, Transmission: "auto"})
	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusPendingIDMissing,
		models.BookingStatusCancelled,
		models.BookingStatusArchived,
	} {
		mustCreateBooking(t, s, models.Booking{
			VehicleID: v.VehicleID, GuestName: "Ana", StartDate: "2024-06-10", EndDate: "2024-06-12",
			Status: status, TotalPrice: 3000,
		})
	}

	customers, err := s.ListCustomers()
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected no customers from non-confirmed bookings, got %+v", customers)
	}
}

func TestCustomerRollupIDImageOnlyOverwritesWhenPresent(t *testing.T) {
	s := newTestService(t, "2024-06-01")
	v := mustCreateVehicle(t, s, models.Vehicle{Model: "Vios", Plate: "ABC-1234", DailyRate: 1500, Transmission: "auto"})
	mustCreateBooking(t, s, models.Booking{
		VehicleID: v.VehicleID, GuestName: "Ana", StartDate: "2024-05-01", EndDate: "2024-05-03",
		Status: models.BookingStatusCompleted, TotalPrice: 3000, IDImageURL: "https://img.example/id-1.jpg",
	})
	// the later booking carries no id image, the earlier one must survive
	mustCreateBooking(t, s, models.Booking{
		VehicleID: v.VehicleID, GuestName: "Ana", StartDate: "2024-06-10", EndDate: "2024-06-12",
		Status: models.BookingStatusConfirmed, TotalPrice: 3000,
	})

	customers, err := s.ListCustomers()
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected one customer, got %d", len(customers))
	}
	if customers[0].IDImageURL != "https://img.example/id-1.jpg" {
		t.Fatalf("empty id image must not overwrite, got %q", customers[0].IDImageURL)
	}
}

func TestCustomerRollupSortedByLastBookingDesc(t *testing.T) {
	s := newTestService(t, "2024-06-01")
	v := mustCreateVehicle(t, s, models.Vehicle{Model: "Vios", Plate: "ABC-1234", DailyRate: 1500, Transmission: "auto"})
	mustCreateBooking(t, s, models.Booking{
		VehicleID: v.VehicleID, GuestName: "Ana", StartDate: "2024-05-01", EndDate: "2024-05-03",
		Status: models.BookingStatusCompleted, TotalPrice: 3000,
	})
	mustCreateBooking(t, s, models.Booking{
		VehicleID: v.VehicleID, GuestName: "Ben", StartDate: "2024-06-10", EndDate: "2024-06-12",
		Status: models.BookingStatusConfirmed, TotalPrice: 3000,
	})

	customers, err := s.ListCustomers()
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected two customers, got %d", len(customers))
	}
	if customers[0].Name != "Ben" || customers[1].Name != "Ana" {
		t.Fatalf("expected descending last_booking order, got %+v", customers)
	}
}

func TestUpdateCustomerBookingsRewritesHistory(t *testing.T) {
	s := newTestService(t, "2024-06-01")
	v := mustCreateVehicle(t, s, models.Vehicle{Model: "Vios", Plate: "ABC-1234", DailyRate: 1500, Transmission: "auto"})
	// identity rewrite covers every status, not just the roll-up's set
	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusArchived,
	} {
		mustCreateBooking(t, s, models.Booking{
			VehicleID: v.VehicleID, GuestName: "JUAN DELA CRUZ", GuestPhone: "0917-000-0001",
			StartDate: "2024-06-10", EndDate: "2024-06-12", Status: status, TotalPrice: 3000,
		})
	}
	other := mustCreateBooking(t, s, models.Booking{
		VehicleID: v.VehicleID, GuestName: "Ben", StartDate: "2024-06-10", EndDate: "2024-06-12",
		Status: models.BookingStatusConfirmed, TotalPrice: 3000,
	})

	name := "Juan Dela Cruz Jr."
	phone := "0917-999-9999"
	updated, err := s.UpdateCustomerBookings("juan dela cruz", &models.CustomerUpdate{Name: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateCustomerBookings: %v", err)
	}
	if updated != 3 {
		t.Fatalf("expected 3 rewritten bookings, got %d", updated)
	}

	bookings, err := s.store.ListBookings()
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	for _, b := range bookings {
		if b.BookingID == other.BookingID {
			if b.GuestName != "Ben" {
				t.Fatalf("unrelated booking was rewritten: %+v", b)
			}
			continue
		}
		if b.GuestName != name || b.GuestPhone != phone {
			t.Fatalf("expected rewritten identity, got %+v", b)
		}
	}
}

func TestUpdateCustomerBookingsNoMatch(t *testing.T) {
	s := newTestService(t, "2024-06-01")
	name := "Somebody"
	if _, err := s.UpdateCustomerBookings("nobody", &models.CustomerUpdate{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
