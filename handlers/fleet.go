package handlers

import (
	"net/http"

	"fleetdesk/services/fleet"

	"github.com/gin-gonic/gin"
)

// FleetHandler translates HTTP requests to the fleet service.
type FleetHandler struct {
	Service fleet.FleetService
}

// NewFleetHandler constructs a FleetHandler.
func NewFleetHandler(svc fleet.FleetService) *FleetHandler {
	return &FleetHandler{Service: svc}
}

// AvailableVehiclesHandler handles GET /api/fleet/available.
// Validation and access failures are part of the outcome payload, so the response
// status is 200 either way; the errors list tells the client what went wrong.
func (h *FleetHandler) AvailableVehiclesHandler(c *gin.Context) {
	req := fleet.AvailabilityRequest{
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	if idVal, exists := c.Get("userID"); exists {
		if id, ok := idVal.(int64); ok {
			req.UserID = &id
		}
	}

	c.JSON(http.StatusOK, h.Service.AvailableVehicles(c.Request.Context(), req))
}
