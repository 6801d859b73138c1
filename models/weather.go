package models

import "time"

// WeatherID identifies a WeatherData record. Overwriting a day's entry
// assigns a fresh id; the replaced one is gone for good.
type WeatherID int

// WeatherData is a daily weather snapshot. Alerts and Forecast carry
// JSON text: a list of strings and a list of ForecastDay objects.
type WeatherData struct {
	ID          WeatherID `json:"id"`
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Wind        float64   `json:"wind"`
	Condition   string    `json:"condition"`
	Alerts      string    `json:"alerts"`
	Forecast    string    `json:"forecast"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewWeatherData is the save payload for a weather snapshot. Only the
// date is mandatory.
type NewWeatherData struct {
	Date        time.Time `json:"date" binding:"required"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Wind        float64   `json:"wind"`
	Condition   string    `json:"condition"`
	Alerts      string    `json:"alerts"`
	Forecast    string    `json:"forecast"`
}

// ForecastDay is one entry of the short-range forecast serialized into
// WeatherData.Forecast.
type ForecastDay struct {
	Day         string  `json:"day"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}
