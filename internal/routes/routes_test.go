package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	"github.com/BruksfildServices01/appointment-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-booking/internal/db"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
	"github.com/BruksfildServices01/appointment-booking/internal/security"
)

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	audit  *audit.Dispatcher
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver:           "sqlite",
		DBUrl:              ":memory:",
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		BookingLockTTL:     time.Second,
		RateLimitPerMinute: 20,
	}

	db, err := dbpkg.NewDB(cfg)
	require.NoError(t, err)

	r := gin.New()
	dispatcher, err := RegisterRoutes(r, Deps{DB: db, Config: cfg})
	require.NoError(t, err)

	hash, err := security.NewBcryptHasher(4).Hash("prof3ssional")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		ID:           "pro-1",
		Name:         "Dr. Lima",
		Email:        "lima@example.com",
		PasswordHash: hash,
		Role:         "PROFESSIONAL",
	}).Error)

	return &testAPI{t: t, router: r, db: db, audit: dispatcher}
}

func (a *testAPI) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func (a *testAPI) login(email, password string) string {
	a.t.Helper()
	w, out := a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return out["token"].(string)
}

func (a *testAPI) register(name, email string) string {
	a.t.Helper()
	w, out := a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return out["token"].(string)
}

func (a *testAPI) firstServiceID() string {
	a.t.Helper()
	w, out := a.do(http.MethodGet, "/api/services", "", nil)
	require.Equal(a.t, http.StatusOK, w.Code)
	data := out["data"].([]any)
	require.Len(a.t, data, 3)
	return data[0].(map[string]any)["id"].(string)
}

func TestHealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	w, out := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", out["status"])

	w, _ = api.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingFlow(t *testing.T) {
	api := newTestAPI(t)

	proToken := api.login("lima@example.com", "prof3ssional")
	anaToken := api.register("Ana", "ana@example.com")
	brunoToken := api.register("Bruno", "bruno@example.com")
	serviceID := api.firstServiceID()

	// --------------------------------------------------
	// availability
	// --------------------------------------------------
	w, _ := api.do(http.MethodPost, "/api/availability", anaToken, gin.H{
		"start_time": "2030-01-10T09:00:00Z",
		"end_time":   "2030-01-10T12:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = api.do(http.MethodPost, "/api/availability", proToken, gin.H{
		"start_time": "2030-01-10T09:00:00Z",
		"end_time":   "2030-01-10T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// --------------------------------------------------
	// slots
	// --------------------------------------------------
	w, _ = api.do(http.MethodGet, "/api/availability/slots?date=2030-01-10&service_duration=30", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slots []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Len(t, slots, 6)

	w, _ = api.do(http.MethodGet, "/api/availability/slots?date=2030-01-10&service_duration=10", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// --------------------------------------------------
	// booking
	// --------------------------------------------------
	w, out := api.do(http.MethodPost, "/api/appointments", anaToken, gin.H{
		"service_id": serviceID,
		"start_time": "2030-01-10T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appointmentID := out["id"].(string)
	assert.Equal(t, "confirmed", out["status"])

	w, out = api.do(http.MethodPost, "/api/appointments", brunoToken, gin.H{
		"service_id": serviceID,
		"start_time": "2030-01-10T10:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_not_available", out["error_code"])

	w, out = api.do(http.MethodPost, "/api/appointments", brunoToken, gin.H{
		"service_id": serviceID,
		"start_time": "2030-01-10T18:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_not_available", out["error_code"])

	w, out = api.do(http.MethodPost, "/api/appointments", brunoToken, gin.H{
		"service_id": "missing",
		"start_time": "2030-01-10T11:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", out["error_code"])

	w, _ = api.do(http.MethodGet, "/api/availability/slots?date=2030-01-10&service_duration=30", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Len(t, slots, 5)

	// --------------------------------------------------
	// listings
	// --------------------------------------------------
	w, out = api.do(http.MethodGet, "/api/appointments", anaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, out["total"])

	w, out = api.do(http.MethodGet, "/api/appointments", brunoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, out["total"])

	w, out = api.do(http.MethodGet, "/api/appointments/agenda?date=2030-01-10", proToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := out["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Ana", data[0].(map[string]any)["client_name"])

	w, _ = api.do(http.MethodGet, "/api/appointments/agenda?date=2030-01-10", anaToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// --------------------------------------------------
	// cancellation
	// --------------------------------------------------
	w, out = api.do(http.MethodPatch, "/api/appointments/"+appointmentID+"/cancel", brunoToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "unauthorized_cancellation", out["error_code"])

	w, out = api.do(http.MethodPatch, "/api/appointments/"+appointmentID+"/cancel", proToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", out["status"])

	w, out = api.do(http.MethodPatch, "/api/appointments/"+appointmentID+"/cancel", anaToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "appointment_already_cancelled", out["error_code"])

	w, out = api.do(http.MethodPatch, "/api/appointments/unknown/cancel", anaToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", out["error_code"])

	// the freed slot is bookable again
	w, _ = api.do(http.MethodPost, "/api/appointments", brunoToken, gin.H{
		"service_id": serviceID,
		"start_time": "2030-01-10T10:00:00Z",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// --------------------------------------------------
	// audit trail
	// --------------------------------------------------
	api.audit.Close()

	w, out = api.do(http.MethodGet, "/api/audit-logs?action=appointment_cancelled", proToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, out["total"])
}

func TestAuthErrors(t *testing.T) {
	api := newTestAPI(t)
	api.register("Ana", "ana@example.com")

	w, out := api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ANA@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_already_in_use", out["error_code"])

	w, out = api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Bob", "email": "bob@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "weak_password", out["error_code"])

	w, out = api.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@example.com", "password": "wrong-pass1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", out["error_code"])

	w, _ = api.do(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("Ana", "ana@example.com")

	w, out := api.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	u := out["user"].(map[string]any)
	assert.Equal(t, "ana@example.com", u["email"])
	assert.Equal(t, "CLIENT", u["role"])
	assert.NotContains(t, u, "password_hash")
	assert.NotContains(t, u, "PasswordHash")
}
