package fleet

import (
	"context"

	"fleetdesk/models"
)

// In-memory repository fakes. The booking and vehicle fakes deliberately return
// more than the production queries would (no window or active filtering) so the
// pipeline's own guards are what the tests exercise.

type fakeUserRepo struct {
	positions map[int64]string
	err       error
}

func (f *fakeUserRepo) GetPosition(_ context.Context, userID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.positions[userID], nil
}

type fakeAccessRepo struct {
	rules map[string]*models.AccessRule
	err   error
}

func (f *fakeAccessRepo) GetByPosition(_ context.Context, position string) (*models.AccessRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rules[position], nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) ListConfirmedOverlapping(_ context.Context, _ models.Period) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var confirmed []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusConfirmed {
			confirmed = append(confirmed, b)
		}
	}
	return confirmed, nil
}

type fakeVehicleRepo struct {
	vehicles []models.Vehicle
	err      error
}

func (f *fakeVehicleRepo) ListActive(_ context.Context, categories []string, _ []int64) ([]models.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}
	var matched []models.Vehicle
	for _, v := range f.vehicles {
		if _, ok := allowed[v.Category]; ok {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

type fakeDriverRepo struct {
	drivers []models.Driver
	err     error
	calls   int
}

func (f *fakeDriverRepo) ListByIDs(_ context.Context, ids []int64) ([]models.Driver, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var matched []models.Driver
	for _, d := range f.drivers {
		if _, ok := want[d.ID]; ok {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func int64ptr(v int64) *int64 { return &v }
