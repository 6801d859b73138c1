package routes_test

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

	"go-farmtrack/config"
	"go-farmtrack/models"
	"go-farmtrack/routes"
	"go-farmtrack/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() (*gin.Engine, *store.MemStore) {
	s := store.New()
	return routes.SetupRouter(s, config.Config{}), s
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

const polygon = `{"type":"Polygon","coordinates":[[[-95.6789,38.1234],[-95.674,38.1234],[-95.674,38.119],[-95.6789,38.119],[-95.6789,38.1234]]]}`

func fieldPayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"size":        15,
		"soilType":    "Loam",
		"coordinates": polygon,
	}
}

func TestCreateFieldReturns201WithFirstID(t *testing.T) {
	r, _ := newRouter()

	w := perform(r, http.MethodPost, "/api/fields", fieldPayload("North"))
	require.Equal(t, http.StatusCreated, w.Code)

	var field models.Field
	decode(t, w, &field)
	assert.Equal(t, models.FieldID(1), field.ID)
	assert.Equal(t, "North", field.Name)
	assert.False(t, field.CreatedAt.IsZero())

	w = perform(r, http.MethodPost, "/api/fields", fieldPayload("East"))
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &field)
	assert.Equal(t, models.FieldID(2), field.ID)
}

func TestCreateFieldValidation(t *testing.T) {
	r, s := newRouter()

	w := perform(r, http.MethodPost, "/api/fields", map[string]interface{}{
		"size":     -3,
		"soilType": "Volcanic",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decode(t, w, &resp)
	assert.Contains(t, resp.Error, "name is required")
	assert.Contains(t, resp.Error, "soilType must be one of")

	// a failed create never touches the store
	assert.Empty(t, s.GetAllFields())
}

func TestGetMissingFieldReturns404(t *testing.T) {
	r, _ := newRouter()
	w := perform(r, http.MethodGet, "/api/fields/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteField(t *testing.T) {
	r, _ := newRouter()
	perform(r, http.MethodPost, "/api/fields", fieldPayload("North"))

	w := perform(r, http.MethodDelete, "/api/fields/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = perform(r, http.MethodDelete, "/api/fields/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMissingFieldLeavesStoreUnchanged(t *testing.T) {
	r, s := newRouter()
	perform(r, http.MethodPost, "/api/fields", fieldPayload("North"))

	w := perform(r, http.MethodDelete, "/api/fields/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, s.GetAllFields(), 1)
}

func TestPatchFieldMergesPartialPayload(t *testing.T) {
	r, _ := newRouter()
	perform(r, http.MethodPost, "/api/fields", fieldPayload("North"))

	w := perform(r, http.MethodPatch, "/api/fields/1", map[string]interface{}{"size": 20})
	require.Equal(t, http.StatusOK, w.Code)

	var field models.Field
	decode(t, w, &field)
	assert.Equal(t, 20.0, field.Size)
	assert.Equal(t, "North", field.Name)
	assert.Equal(t, models.FieldID(1), field.ID)
}

func TestPatchMissingFieldReturns404(t *testing.T) {
	r, _ := newRouter()
	w := perform(r, http.MethodPatch, "/api/fields/42", map[string]interface{}{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFieldCropsListing(t *testing.T) {
	r, _ := newRouter()
	perform(r, http.MethodPost, "/api/fields", fieldPayload("North"))

	w := perform(r, http.MethodPost, "/api/crops", map[string]interface{}{
		"fieldId":     1,
		"name":        "Corn",
		"seedType":    "Pioneer P9998",
		"plantedDate": "2023-05-05T00:00:00Z",
		"harvestDate": "2023-09-30T00:00:00Z",
		"status":      "healthy",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodGet, "/api/fields/1/crops", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var crops []models.Crop
	decode(t, w, &crops)
	require.Len(t, crops, 1)
	assert.Equal(t, "Corn", crops[0].Name)

	// crops growing on a field that was never created still list
	w = perform(r, http.MethodGet, "/api/fields/7/crops", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &crops)
	assert.Empty(t, crops)
}

func TestInputLifecycle(t *testing.T) {
	r, _ := newRouter()

	w := perform(r, http.MethodPost, "/api/inputs", map[string]interface{}{
		"cropId":      3,
		"type":        "fertilizer",
		"name":        "10-10-10 Fertilizer",
		"amount":      200,
		"unit":        "lb",
		"appliedDate": "2023-06-10T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var input models.Input
	decode(t, w, &input)
	assert.Equal(t, models.InputID(1), input.ID)

	w = perform(r, http.MethodGet, "/api/crops/3/inputs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inputs []models.Input
	decode(t, w, &inputs)
	require.Len(t, inputs, 1)

	w = perform(r, http.MethodPost, "/api/inputs", map[string]interface{}{
		"cropId": 3,
		"type":   "magic",
		"name":   "Pixie dust",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchTaskStatus(t *testing.T) {
	r, _ := newRouter()

	w := perform(r, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":     "Irrigation check",
		"startDate": "2024-07-04T13:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var task models.Task
	decode(t, w, &task)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, 1, task.WorkersNeeded)

	w = perform(r, http.MethodPatch, "/api/tasks/1", map[string]interface{}{"status": "in-progress"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Task
	decode(t, w, &updated)
	assert.Equal(t, "in-progress", updated.Status)
	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.ID, updated.ID)
	assert.True(t, task.CreatedAt.Equal(updated.CreatedAt))

	w = perform(r, http.MethodPatch, "/api/tasks/1", map[string]interface{}{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTasksByDate(t *testing.T) {
	r, _ := newRouter()

	perform(r, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":     "Morning scout",
		"startDate": "2024-07-04T06:30:00Z",
	})
	perform(r, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":     "Next day",
		"startDate": "2024-07-05T06:30:00Z",
	})

	w := perform(r, http.MethodGet, "/api/tasks/date/2024-07-04", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	decode(t, w, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Morning scout", tasks[0].Title)

	w = perform(r, http.MethodGet, "/api/tasks/date/not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeatherEmptyThenSaved(t *testing.T) {
	r, _ := newRouter()

	w := perform(r, http.MethodGet, "/api/weather", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodPost, "/api/weather", map[string]interface{}{
		"date":        time.Now().UTC().Format(time.RFC3339),
		"temperature": 72,
		"humidity":    45,
		"wind":        8,
		"condition":   "Sunny",
		"alerts":      `["Drought conditions"]`,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodGet, "/api/weather", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data models.WeatherData
	decode(t, w, &data)
	assert.Equal(t, "Sunny", data.Condition)
	assert.Equal(t, 72.0, data.Temperature)
}

func TestOpenWeatherPassthroughErrors(t *testing.T) {
	r, _ := newRouter()

	w := perform(r, http.MethodGet, "/api/weather/openweather?lat=38.1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// no API key configured for the test router
	w = perform(r, http.MethodGet, "/api/weather/openweather?lat=38.1&lon=-95.6", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
