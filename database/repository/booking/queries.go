// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fleetdesk/database"
	"fleetdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (repo *mongoBookingRepo) ListConfirmedOverlapping(ctx context.Context, period models.Period) ([]models.Booking, error) {
	coll, err := database.ResolveTable(ctx, repo.tableID)
	if err != nil {
		return nil, err
	}

	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Strict open-interval overlap: a booking conflicts iff it starts before the
	// period ends and ends after the period starts.
	filter := bson.M{
		"status":    models.BookingStatusConfirmed,
		"date_from": bson.M{"$lt": period.To},
		"date_to":   bson.M{"$gt": period.From},
	}

	cursor, err := coll.Find(queryCtx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(queryCtx)

	var bookings []models.Booking
	if err := cursor.All(queryCtx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	return bookings, nil
}
