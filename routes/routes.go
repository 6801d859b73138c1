package routes

import (
	"github.com/gin-gonic/gin"

	"go-farmtrack/config"
	"go-farmtrack/controllers"
	"go-farmtrack/middleware"
	"go-farmtrack/store"
	"go-farmtrack/weather"
)

// SetupRouter wires every controller to its routes.
func SetupRouter(s store.Storage, cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	// The passthrough client only exists when a key is configured;
	// without one the controller answers 500.
	var owm *weather.Client
	if cfg.OpenWeatherAPIKey != "" {
		owm = weather.NewClient(cfg.OpenWeatherAPIKey)
	}

	fieldController := controllers.NewFieldController(s)
	cropController := controllers.NewCropController(s)
	inputController := controllers.NewInputController(s)
	taskController := controllers.NewTaskController(s)
	weatherController := controllers.NewWeatherController(s, owm)

	api := r.Group("/api")
	{
		api.GET("/fields", fieldController.GetFields)
		api.GET("/fields/:id", fieldController.GetField)
		api.POST("/fields", fieldController.CreateField)
		api.PATCH("/fields/:id", fieldController.UpdateField)
		api.DELETE("/fields/:id", fieldController.DeleteField)
		api.GET("/fields/:id/crops", cropController.GetCropsByField)
		api.GET("/fields/:id/tasks", taskController.GetTasksByField)

		api.GET("/crops", cropController.GetCrops)
		api.GET("/crops/:id", cropController.GetCrop)
		api.POST("/crops", cropController.CreateCrop)
		api.PATCH("/crops/:id", cropController.UpdateCrop)
		api.DELETE("/crops/:id", cropController.DeleteCrop)
		api.GET("/crops/:id/inputs", inputController.GetInputsByCrop)
		api.GET("/crops/:id/tasks", taskController.GetTasksByCrop)

		api.GET("/inputs", inputController.GetInputs)
		api.GET("/inputs/:id", inputController.GetInput)
		api.POST("/inputs", inputController.CreateInput)
		api.PATCH("/inputs/:id", inputController.UpdateInput)
		api.DELETE("/inputs/:id", inputController.DeleteInput)

		api.GET("/tasks", taskController.GetTasks)
		api.GET("/tasks/date/:date", taskController.GetTasksByDate)
		api.GET("/tasks/:id", taskController.GetTask)
		api.POST("/tasks", taskController.CreateTask)
		api.PATCH("/tasks/:id", taskController.UpdateTask)
		api.DELETE("/tasks/:id", taskController.DeleteTask)

		api.GET("/weather", weatherController.GetWeather)
		api.POST("/weather", weatherController.SaveWeather)
		api.GET("/weather/openweather", weatherController.GetOpenWeather)
	}

	return r
}
