// Package weather fetches current conditions from the OpenWeather API
// and maps them into the shape the rest of the service stores.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go-farmtrack/models"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client calls the OpenWeather REST API.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches conditions and a five-day outlook for a coordinate.
// Alerts and forecast come back as serialized JSON text, matching
// saved weather records.
func (c *Client) Current(lat, lon string) (models.WeatherData, error) {
	var cur struct {
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Dt int64 `json:"dt"`
	}
	if err := c.get("/weather", lat, lon, &cur); err != nil {
		return models.WeatherData{}, err
	}

	condition := ""
	if len(cur.Weather) > 0 {
		condition = cur.Weather[0].Main
	}

	return models.WeatherData{
		Date:        time.Unix(cur.Dt, 0).UTC(),
		Temperature: cur.Main.Temp,
		Humidity:    cur.Main.Humidity,
		Wind:        cur.Wind.Speed,
		Condition:   condition,
		Alerts:      "[]",
		Forecast:    c.forecast(lat, lon),
		CreatedAt:   time.Now(),
	}, nil
}

// forecast condenses the 3-hourly forecast feed to one entry per day.
// A failed forecast call degrades to an empty list rather than failing
// the whole lookup.
func (c *Client) forecast(lat, lon string) string {
	var fc struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Main string `json:"main"`
			} `json:"weather"`
		} `json:"list"`
	}
	if err := c.get("/forecast", lat, lon, &fc); err != nil {
		return "[]"
	}

	days := make([]models.ForecastDay, 0, 5)
	seen := make(map[string]bool)
	for _, item := range fc.List {
		t := time.Unix(item.Dt, 0).UTC()
		key := t.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true

		condition := ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Main
		}
		days = append(days, models.ForecastDay{
			Day:         t.Format("Mon"),
			Condition:   condition,
			Temperature: item.Main.Temp,
		})
		if len(days) == 5 {
			break
		}
	}

	b, err := json.Marshal(days)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func (c *Client) get(path, lat, lon string, out interface{}) error {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("appid", c.apiKey)
	q.Set("units", "imperial")

	resp, err := c.httpc.Get(c.baseURL + path + "?" + q.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
