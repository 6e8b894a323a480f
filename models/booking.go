package models

import "time"

// BookingStatusConfirmed marks bookings that actually block a vehicle.
const BookingStatusConfirmed = "CONFIRMED"

// Booking represents an existing booking record. This service only reads bookings;
// creation and status changes happen in external systems.
type Booking struct {
	CarID    int64     `bson:"car_id" json:"car_id"`
	DateFrom time.Time `bson:"date_from" json:"date_from"`
	DateTo   time.Time `bson:"date_to" json:"date_to"`
	Status   string    `bson:"status" json:"status"`
}
