package models

// DriverUnassigned is the display name used when a vehicle has no resolvable driver.
const DriverUnassigned = "unassigned"

// AvailableVehicle is a projection of a catalog vehicle built fresh per request.
type AvailableVehicle struct {
	ID         int64  `json:"id"`
	Model      string `json:"model"`
	Category   string `json:"category"`
	DriverID   *int64 `json:"driver_id,omitempty"`
	DriverName string `json:"driver_name"`
}

// Result is the complete response payload for an availability request. Vehicles
// and Errors are always present (possibly empty); Period is echoed back only when
// validation succeeded and the pipeline ran to completion.
type Result struct {
	Vehicles []AvailableVehicle `json:"vehicles"`
	Period   *PeriodView        `json:"period,omitempty"`
	Errors   []string           `json:"errors"`
}
