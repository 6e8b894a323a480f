package fleet

import (
	"context"
	"sort"

	"fleetdesk/models"
)

// availableVehicles loads active vehicles in the allowed categories minus the busy
// set and projects them into result rows ordered by model name, ties broken by id.
func (s *DefaultFleetService) availableVehicles(ctx context.Context, categories []string, busy map[int64]struct{}) ([]models.AvailableVehicle, error) {
	exclude := make([]int64, 0, len(busy))
	for id := range busy {
		exclude = append(exclude, id)
	}
	sort.Slice(exclude, func(i, j int) bool { return exclude[i] < exclude[j] })

	vehicles, err := s.VehicleRepo.ListActive(ctx, categories, exclude)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AvailableVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.Active {
			continue
		}
		if _, taken := busy[v.ID]; taken {
			continue
		}
		driverID := v.DriverID
		// Legacy rows use 0 for "no driver assigned".
		if driverID != nil && *driverID == 0 {
			driverID = nil
		}
		rows = append(rows, models.AvailableVehicle{
			ID:         v.ID,
			Model:      v.Model,
			Category:   v.Category,
			DriverID:   driverID,
			DriverName: models.DriverUnassigned,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Model != rows[j].Model {
			return rows[i].Model < rows[j].Model
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}
