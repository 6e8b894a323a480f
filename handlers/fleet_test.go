package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetdesk/models"
	"fleetdesk/services/fleet"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFleetService struct {
	lastReq fleet.AvailabilityRequest
	result  models.Result
}

func (s *stubFleetService) AvailableVehicles(_ context.Context, req fleet.AvailabilityRequest) models.Result {
	s.lastReq = req
	return s.result
}

func TestAvailableVehiclesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubFleetService{result: models.Result{
		Vehicles: []models.AvailableVehicle{{ID: 7, Model: "Camry", Category: "Sedan", DriverName: "Ivanov"}},
		Errors:   []string{},
	}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/api/fleet/available?date_from=01.06.2024+09:00&date_to=01.06.2024+12:00", nil)
	c.Set("userID", int64(42))

	NewFleetHandler(stub).AvailableVehiclesHandler(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastReq.UserID)
	assert.Equal(t, int64(42), *stub.lastReq.UserID)
	assert.Equal(t, "01.06.2024 09:00", stub.lastReq.DateFrom)
	assert.Equal(t, "01.06.2024 12:00", stub.lastReq.DateTo)

	var body models.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Vehicles, 1)
	assert.Equal(t, "Ivanov", body.Vehicles[0].DriverName)
}

func TestAvailableVehiclesHandler_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubFleetService{result: models.Result{
		Vehicles: []models.AvailableVehicle{},
		Errors:   []string{fleet.MsgNoCategories},
	}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/fleet/available", nil)

	NewFleetHandler(stub).AvailableVehiclesHandler(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, stub.lastReq.UserID)

	var body models.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Vehicles)
	assert.Equal(t, []string{fleet.MsgNoCategories}, body.Errors)
}
