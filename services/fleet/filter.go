package fleet

import (
	"context"

	"fleetdesk/models"
)

// busyVehicleIDs returns the deduplicated set of vehicles held by confirmed
// bookings overlapping the period. The repository pre-filters with the same
// predicate; re-checking here keeps the exclusion rule independent of the backend.
func (s *DefaultFleetService) busyVehicleIDs(ctx context.Context, period models.Period) (map[int64]struct{}, error) {
	bookings, err := s.BookingRepo.ListConfirmedOverlapping(ctx, period)
	if err != nil {
		return nil, err
	}

	busy := make(map[int64]struct{}, len(bookings))
	for _, b := range bookings {
		if !period.Overlaps(b.DateFrom, b.DateTo) {
			continue
		}
		busy[b.CarID] = struct{}{}
	}
	return busy, nil
}
