package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-floor-dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is a minimal in-memory snapshot store for handler tests
type memStore struct {
	data map[string][]byte
}

func (m *memStore) Load(slot string) ([]byte, error) {
	return m.data[slot], nil
}

func (m *memStore) Save(slot string, data []byte) error {
	m.data[slot] = data
	return nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := &memStore{data: make(map[string][]byte)}
	logger := zap.NewNop()
	observationService := service.NewObservationService(store, logger)
	configService := service.NewRoomConfigService(store, logger)

	floorHandler := NewFloorHandler()
	issueHandler := NewIssueHandler()
	observationHandler := NewObservationHandler(observationService)
	configHandler := NewRoomConfigHandler(configService)

	r := gin.New()
	r.GET("/floors/:floor/rooms", floorHandler.GetRooms)
	r.GET("/issues", issueHandler.GetAll)
	r.GET("/issues/suggestions", issueHandler.GetSuggestions)

	rooms := r.Group("/rooms/:roomId")
	{
		rooms.GET("/observations", observationHandler.List)
		rooms.POST("/observations", observationHandler.Add)
		rooms.DELETE("/observations/:observationId", observationHandler.Delete)
		rooms.GET("/config", configHandler.Get)
		rooms.PUT("/config/bed-position", configHandler.SetBedPosition)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestGetFloorRooms(t *testing.T) {
	r := setupRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/floors/3/rooms", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["topRooms"], 2)
	assert.Len(t, data["leftRooms"], 18)
	assert.Len(t, data["rightRooms"], 18)
}

func TestGetFloorRooms_BadFloor(t *testing.T) {
	r := setupRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/floors/12/rooms", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])

	w, _ = doRequest(t, r, http.MethodGet, "/floors/ground/rooms", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIssues(t *testing.T) {
	r := setupRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/issues", "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["issues"])
}

func TestGetIssueSuggestions(t *testing.T) {
	r := setupRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/issues/suggestions?q=rot", "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["suggestions"], 5)

	// No query means no suggestions, not an error
	w, resp = doRequest(t, r, http.MethodGet, "/issues/suggestions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Empty(t, data["suggestions"])
}

func TestObservationLifecycle(t *testing.T) {
	r := setupRouter()

	w, resp := doRequest(t, r, http.MethodPost, "/rooms/205/observations", `{"text":"leak"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := resp["data"].(map[string]interface{})
	obsID := created["id"].(string)
	assert.Equal(t, "205", created["roomId"])

	doRequest(t, r, http.MethodPost, "/rooms/205/observations", `{"text":"noise"}`)

	w, resp = doRequest(t, r, http.MethodGet, "/rooms/205/observations", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	observations := data["observations"].([]interface{})
	require.Len(t, observations, 2)
	assert.Equal(t, "noise", observations[0].(map[string]interface{})["text"])
	assert.Equal(t, "leak", observations[1].(map[string]interface{})["text"])

	w, _ = doRequest(t, r, http.MethodDelete, "/rooms/205/observations/"+obsID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	_, resp = doRequest(t, r, http.MethodGet, "/rooms/205/observations", "")
	data = resp["data"].(map[string]interface{})
	assert.Len(t, data["observations"], 1)
}

func TestAddObservation_EmptyText(t *testing.T) {
	r := setupRouter()

	w, _ := doRequest(t, r, http.MethodPost, "/rooms/205/observations", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/rooms/205/observations", `{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/rooms/205/observations", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteObservation_UnknownIDStillSucceeds(t *testing.T) {
	r := setupRouter()

	w, resp := doRequest(t, r, http.MethodDelete, "/rooms/205/observations/no-such-id", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
}

func TestBedPositionConfig(t *testing.T) {
	r := setupRouter()

	// Unconfigured room returns an empty record
	w, resp := doRequest(t, r, http.MethodGet, "/rooms/205/config", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.NotContains(t, data, "bedPosition")

	w, resp = doRequest(t, r, http.MethodPut, "/rooms/205/config/bed-position", `{"bedPosition":"left"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "left", data["bedPosition"])

	w, resp = doRequest(t, r, http.MethodGet, "/rooms/205/config", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "left", data["bedPosition"])
}

func TestBedPositionConfig_InvalidValue(t *testing.T) {
	r := setupRouter()

	w, _ := doRequest(t, r, http.MethodPut, "/rooms/205/config/bed-position", `{"bedPosition":"diagonal"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPut, "/rooms/205/config/bed-position", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
