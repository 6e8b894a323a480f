package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runOptionalAuth(t *testing.T, authHeader string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/fleet/available", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	OptionalAuthMiddleware()(c)
	return c
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	token, err := utils.GenerateToken("42", time.Minute)
	require.NoError(t, err)

	c := runOptionalAuth(t, "Bearer "+token)

	val, exists := c.Get("userID")
	require.True(t, exists)
	assert.Equal(t, int64(42), val)
	assert.False(t, c.IsAborted())
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	c := runOptionalAuth(t, "")

	_, exists := c.Get("userID")
	assert.False(t, exists)
	assert.False(t, c.IsAborted())
}

func TestOptionalAuth_GarbageTokenIsAnonymous(t *testing.T) {
	c := runOptionalAuth(t, "Bearer garbage")

	_, exists := c.Get("userID")
	assert.False(t, exists)
	assert.False(t, c.IsAborted())
}

func TestOptionalAuth_NonNumericSubjectIsAnonymous(t *testing.T) {
	token, err := utils.GenerateToken("alice", time.Minute)
	require.NoError(t, err)

	c := runOptionalAuth(t, "Bearer "+token)

	_, exists := c.Get("userID")
	assert.False(t, exists)
}
