// Package fleet implements the vehicle availability pipeline: period validation,
// role-based category access, busy-vehicle exclusion, catalog lookup and driver
// enrichment. Every stage only reads; all writes happen in external systems.
package fleet

import (
	"context"
	"errors"

	accessRepo "fleetdesk/database/repository/access"
	bookingRepo "fleetdesk/database/repository/booking"
	driverRepo "fleetdesk/database/repository/driver"
	userRepo "fleetdesk/database/repository/user"
	vehicleRepo "fleetdesk/database/repository/vehicle"

	"fleetdesk/database"
	"fleetdesk/models"
	"fleetdesk/utils"

	"go.uber.org/zap"
)

// FleetService computes which vehicles a user may book for a requested period.
type FleetService interface {
	AvailableVehicles(ctx context.Context, req AvailabilityRequest) models.Result
}

// AvailabilityRequest carries the raw request inputs. UserID is nil for anonymous
// callers; DateFrom and DateTo are the unparsed query values.
type AvailabilityRequest struct {
	UserID   *int64
	DateFrom string
	DateTo   string
}

// DefaultFleetService is the production pipeline over the platform's data tables.
type DefaultFleetService struct {
	UserRepo    userRepo.UserRepository
	AccessRepo  accessRepo.AccessRuleRepository
	BookingRepo bookingRepo.BookingRepository
	VehicleRepo vehicleRepo.VehicleRepository
	DriverRepo  driverRepo.DriverRepository
}

// AvailableVehicles runs the full pipeline for one request. It never fails: every
// expected condition becomes a message in the outcome, and any internal fault is
// downgraded to the generic system message with an empty vehicle list.
func (s *DefaultFleetService) AvailableVehicles(ctx context.Context, req AvailabilityRequest) (res models.Result) {
	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("fleet: panic during availability computation", zap.Any("panic", r))
			res = assemble(nil, nil, []string{MsgSystemError})
		}
	}()

	period, perr := ParsePeriod(req.DateFrom, req.DateTo)
	if perr != nil {
		return assemble(nil, nil, []string{perr.Message})
	}

	categories, err := s.resolveAllowedCategories(ctx, req.UserID)
	if err != nil {
		return assemble(nil, nil, s.systemFailure(logger, "resolve allowed categories", err))
	}
	if len(categories) == 0 {
		return assemble(nil, nil, []string{MsgNoCategories})
	}

	busy, err := s.busyVehicleIDs(ctx, *period)
	if err != nil {
		return assemble(nil, nil, s.systemFailure(logger, "scan confirmed bookings", err))
	}

	rows, err := s.availableVehicles(ctx, categories, busy)
	if err != nil {
		return assemble(nil, nil, s.systemFailure(logger, "query vehicle catalog", err))
	}

	rows, err = s.enrichDrivers(ctx, rows)
	if err != nil {
		return assemble(nil, nil, s.systemFailure(logger, "resolve drivers", err))
	}

	return assemble(period, rows, nil)
}

// systemFailure logs the stage failure with full detail and returns the single
// generic message exposed to the caller.
func (s *DefaultFleetService) systemFailure(logger *zap.Logger, stage string, err error) []string {
	kind := KindUnexpected
	if errors.Is(err, database.ErrTableNotRegistered) {
		kind = KindConfigurationMissing
	}
	logger.Error("fleet: stage failed",
		zap.String("stage", stage),
		zap.String("kind", string(kind)),
		zap.Error(err))
	return []string{MsgSystemError}
}

// assemble merges the pipeline outputs into the response payload. The period is
// echoed back only on a fully successful run.
func assemble(period *models.Period, rows []models.AvailableVehicle, errs []string) models.Result {
	res := models.Result{Vehicles: rows, Errors: errs}
	if res.Vehicles == nil {
		res.Vehicles = []models.AvailableVehicle{}
	}
	if res.Errors == nil {
		res.Errors = []string{}
	}
	if period != nil {
		view := period.View()
		res.Period = &view
	}
	return res
}
