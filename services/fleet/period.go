package fleet

import (
	"strings"
	"time"

	"fleetdesk/models"
)

// ParsePeriod validates the two raw request dates and builds the trip period.
// Impossible calendar dates (31.04, 29.02 off leap years) are rejected by the
// parser, never silently clamped.
func ParsePeriod(rawFrom, rawTo string) (*models.Period, *Error) {
	rawFrom = strings.TrimSpace(rawFrom)
	rawTo = strings.TrimSpace(rawTo)
	if rawFrom == "" || rawTo == "" {
		return nil, newError(KindMissingPeriod, MsgMissingPeriod)
	}

	from, err := time.Parse(models.PeriodLayout, rawFrom)
	if err != nil {
		return nil, newError(KindInvalidDateFormat, MsgInvalidDate)
	}
	to, err := time.Parse(models.PeriodLayout, rawTo)
	if err != nil {
		return nil, newError(KindInvalidDateFormat, MsgInvalidDate)
	}

	if !from.Before(to) {
		return nil, newError(KindInvalidRange, MsgInvalidRange)
	}

	return &models.Period{From: from, To: to}, nil
}
