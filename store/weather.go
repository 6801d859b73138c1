package store

import (
	"time"

	"go-farmtrack/models"
)

// GetWeatherData returns the stored snapshot with the greatest date,
// or false when nothing has been saved. The map holds one entry per
// day, so no two snapshots can tie.
func (s *MemStore) GetWeatherData() (models.WeatherData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest models.WeatherData
	found := false
	for _, w := range s.weather {
		if !found || w.Date.After(latest.Date) {
			latest = w
			found = true
		}
	}
	return latest, found
}

// SaveWeatherData stores a snapshot under its UTC calendar day. A
// second save for the same day replaces the first; the replacement
// gets a fresh id and the old one is never reused.
func (s *MemStore) SaveWeatherData(in models.NewWeatherData) models.WeatherData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weatherID++
	w := models.WeatherData{
		ID:          s.weatherID,
		Date:        in.Date,
		Temperature: in.Temperature,
		Humidity:    in.Humidity,
		Wind:        in.Wind,
		Condition:   in.Condition,
		Alerts:      in.Alerts,
		Forecast:    in.Forecast,
		CreatedAt:   time.Now(),
	}
	s.weather[dayKey(in.Date)] = w
	return w
}
