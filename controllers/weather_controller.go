package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-farmtrack/models"
	"go-farmtrack/store"
	"go-farmtrack/utils"
	"go-farmtrack/weather"
)

// WeatherController handles stored weather snapshots and the live
// OpenWeather passthrough.
type WeatherController struct {
	Store  store.Storage
	Client *weather.Client // nil when no API key is configured
}

// NewWeatherController creates a new WeatherController instance.
func NewWeatherController(s store.Storage, client *weather.Client) *WeatherController {
	return &WeatherController{Store: s, Client: client}
}

// GetWeather returns the most recent stored snapshot.
func (c *WeatherController) GetWeather(ctx *gin.Context) {
	data, ok := c.Store.GetWeatherData()
	if !ok {
		utils.NotFound(ctx, "Weather data not found")
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// SaveWeather validates and stores a snapshot. A snapshot for a day
// that already has one replaces it.
func (c *WeatherController) SaveWeather(ctx *gin.Context) {
	var in models.NewWeatherData
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}
	ctx.JSON(http.StatusCreated, c.Store.SaveWeatherData(in))
}

// GetOpenWeather proxies a live conditions lookup for a coordinate.
// The result has the same shape as a saved snapshot but is not stored.
func (c *WeatherController) GetOpenWeather(ctx *gin.Context) {
	lat := ctx.Query("lat")
	lon := ctx.Query("lon")
	if lat == "" || lon == "" {
		utils.BadRequest(ctx, "lat and lon query parameters are required")
		return
	}

	if c.Client == nil {
		utils.InternalServerError(ctx, "OpenWeather API key not configured")
		return
	}

	data, err := c.Client.Current(lat, lon)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, data)
}
