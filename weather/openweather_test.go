package weather

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-farmtrack/models"
)

const currentBody = `{
	"weather": [{"main": "Clear"}],
	"main": {"temp": 72.5, "humidity": 45},
	"wind": {"speed": 8.2},
	"dt": 1720094400
}`

func forecastBody(t *testing.T) string {
	t.Helper()
	type entry struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	}

	// eight 3-hourly readings per day for seven days; only the first
	// reading of each of the first five days should survive
	var list []entry
	start := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 7; day++ {
		for slot := 0; slot < 8; slot++ {
			var e entry
			e.Dt = start.AddDate(0, 0, day).Add(time.Duration(slot) * 3 * time.Hour).Unix()
			e.Main.Temp = 70 + float64(day)
			e.Weather = []struct {
				Main string `json:"main"`
			}{{Main: "Clouds"}}
			list = append(list, e)
		}
	}

	b, err := json.Marshal(map[string]interface{}{"list": list})
	require.NoError(t, err)
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestCurrentMapsResponse(t *testing.T) {
	fc := forecastBody(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "38.1", r.URL.Query().Get("lat"))

		switch r.URL.Path {
		case "/weather":
			w.Write([]byte(currentBody))
		case "/forecast":
			w.Write([]byte(fc))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	data, err := c.Current("38.1", "-95.6")
	require.NoError(t, err)

	assert.Equal(t, 72.5, data.Temperature)
	assert.Equal(t, 45.0, data.Humidity)
	assert.Equal(t, 8.2, data.Wind)
	assert.Equal(t, "Clear", data.Condition)
	assert.Equal(t, "[]", data.Alerts)
	assert.Equal(t, time.Unix(1720094400, 0).UTC(), data.Date)

	var days []models.ForecastDay
	require.NoError(t, json.Unmarshal([]byte(data.Forecast), &days))
	require.Len(t, days, 5)
	assert.Equal(t, "Thu", days[0].Day)
	assert.Equal(t, "Clouds", days[0].Condition)
	assert.Equal(t, 70.0, days[0].Temperature)
	assert.Equal(t, 74.0, days[4].Temperature)
}

func TestCurrentReportsUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Current("38.1", "-95.6")
	assert.Error(t, err)
}

func TestForecastFailureDegradesToEmptyList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/weather" {
			w.Write([]byte(currentBody))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	data, err := c.Current("38.1", "-95.6")
	require.NoError(t, err)
	assert.Equal(t, "[]", data.Forecast)
}
