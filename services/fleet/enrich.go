package fleet

import (
	"context"

	"fleetdesk/models"
)

// enrichDrivers resolves assigned-driver names with one bulk lookup. Vehicles whose
// driver reference does not resolve keep the unassigned label; a dangling reference
// is a data-quality gap, not an error.
func (s *DefaultFleetService) enrichDrivers(ctx context.Context, rows []models.AvailableVehicle) ([]models.AvailableVehicle, error) {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, row := range rows {
		if row.DriverID == nil {
			continue
		}
		if _, ok := seen[*row.DriverID]; ok {
			continue
		}
		seen[*row.DriverID] = struct{}{}
		ids = append(ids, *row.DriverID)
	}
	if len(ids) == 0 {
		return rows, nil
	}

	drivers, err := s.DriverRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(drivers))
	for _, d := range drivers {
		names[d.ID] = d.Name
	}

	for i := range rows {
		if rows[i].DriverID == nil {
			continue
		}
		if name, ok := names[*rows[i].DriverID]; ok && name != "" {
			rows[i].DriverName = name
		}
	}
	return rows, nil
}
