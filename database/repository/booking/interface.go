// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"fleetdesk/config"
	"fleetdesk/models"
)

// BookingRepository reads existing booking records. Bookings are written by
// external systems; this service only scans them for conflicts.
type BookingRepository interface {
	ListConfirmedOverlapping(ctx context.Context, period models.Period) ([]models.Booking, error)
}

// The bookings table is a registered custom table addressed by id, so the
// collection handle is resolved lazily through the table registry.
type mongoBookingRepo struct {
	tableID int
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{tableID: config.AppConfig.BookingTableID}
}
