package models

import "time"

// PeriodLayout is the request/response format for trip boundaries: dd.mm.yyyy HH:MM.
const PeriodLayout = "02.01.2006 15:04"

// Period is a validated trip window. From is strictly before To. It is built once
// per request from the raw query values and never mutated afterwards.
type Period struct {
	From time.Time
	To   time.Time
}

// Overlaps reports whether a booking interval intersects the period. Bookings that
// only touch a boundary (back-to-back trips) do not overlap.
func (p Period) Overlaps(from, to time.Time) bool {
	return from.Before(p.To) && to.After(p.From)
}

// View renders the period back into the wire format for the response payload.
func (p Period) View() PeriodView {
	return PeriodView{
		From: p.From.Format(PeriodLayout),
		To:   p.To.Format(PeriodLayout),
	}
}

// PeriodView is the serialized form of a period.
type PeriodView struct {
	From string `json:"from"`
	To   string `json:"to"`
}
