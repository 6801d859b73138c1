package store

import (
	"time"

	"go-farmtrack/models"
)

// Seed loads the development sample data set: three fields with their
// crops, one recorded fertilizer application, three tasks and today's
// weather snapshot.
func (s *MemStore) Seed() {
	now := time.Now()
	today := func(hour int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	}

	north := s.CreateField(models.NewField{
		Name:     "North Field",
		Size:     15,
		SoilType: models.SoilLoam,
		History:  "Corn (2021, 2022), Fallow (2023)",
		Coordinates: `{"type":"Polygon","coordinates":[[[-95.6789,38.1234],[-95.674,38.1234],` +
			`[-95.674,38.119],[-95.6789,38.119],[-95.6789,38.1234]]]}`,
	})
	east := s.CreateField(models.NewField{
		Name:     "East Corn Field",
		Size:     22,
		SoilType: models.SoilClayLoam,
		History:  "Soybeans (2021), Corn (2022, 2023)",
		Coordinates: `{"type":"Polygon","coordinates":[[[-95.67,38.12],[-95.665,38.12],` +
			`[-95.665,38.115],[-95.67,38.115],[-95.67,38.12]]]}`,
	})
	south := s.CreateField(models.NewField{
		Name:     "South Soybean Field",
		Size:     18,
		SoilType: models.SoilSandyLoam,
		History:  "Wheat (2021), Soybeans (2022, 2023)",
		Coordinates: `{"type":"Polygon","coordinates":[[[-95.675,38.11],[-95.67,38.11],` +
			`[-95.67,38.105],[-95.675,38.105],[-95.675,38.11]]]}`,
	})

	corn := s.CreateCrop(models.NewCrop{
		FieldID:     north.ID,
		Name:        "Corn",
		SeedType:    "Pioneer P9998",
		PlantedDate: time.Date(2023, time.May, 5, 0, 0, 0, 0, time.UTC),
		HarvestDate: time.Date(2023, time.September, 30, 0, 0, 0, 0, time.UTC),
		Status:      models.CropHealthy,
		Notes:       "Excellent growth so far",
	})
	eastCorn := s.CreateCrop(models.NewCrop{
		FieldID:     east.ID,
		Name:        "Corn",
		SeedType:    "Asgrow AG3832",
		PlantedDate: time.Date(2023, time.May, 25, 0, 0, 0, 0, time.UTC),
		HarvestDate: time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
		Status:      models.CropNeedsWater,
		Notes:       "Showing signs of drought stress",
	})
	s.CreateCrop(models.NewCrop{
		FieldID:     south.ID,
		Name:        "Wheat",
		SeedType:    "WestBred WB9479",
		PlantedDate: time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC),
		HarvestDate: time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC),
		Status:      models.CropHealthy,
		Notes:       "Good emergence",
	})

	amount := 200.0
	s.CreateInput(models.NewInput{
		CropID:      corn.ID,
		Type:        models.InputFertilizer,
		Name:        "10-10-10 Fertilizer",
		Amount:      &amount,
		Unit:        "lb",
		AppliedDate: time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC),
		Notes:       "Applied pre-rain",
	})

	fungicideEnd := now.Add(3 * time.Hour)
	s.CreateTask(models.NewTask{
		Title:         "Apply fungicide to North Field",
		Description:   "Use XYZ fungicide at recommended rate",
		FieldID:       &north.ID,
		CropID:        &corn.ID,
		StartDate:     now,
		EndDate:       &fungicideEnd,
		WorkersNeeded: 2,
		Status:        models.TaskPending,
	})
	irrigationEnd := today(15)
	s.CreateTask(models.NewTask{
		Title:         "Irrigation check - East Corn Field",
		Description:   "Check irrigation system is working correctly",
		FieldID:       &east.ID,
		CropID:        &eastCorn.ID,
		StartDate:     today(13),
		EndDate:       &irrigationEnd,
		WorkersNeeded: 1,
		Status:        models.TaskInProgress,
	})
	maintenanceEnd := today(8)
	s.CreateTask(models.NewTask{
		Title:         "Equipment maintenance",
		Description:   "Regular check of all equipment",
		StartDate:     today(7),
		EndDate:       &maintenanceEnd,
		WorkersNeeded: 1,
		Status:        models.TaskCompleted,
	})

	s.SaveWeatherData(models.NewWeatherData{
		Date:        now,
		Temperature: 72,
		Humidity:    45,
		Wind:        8,
		Condition:   "Sunny",
		Alerts:      `["Drought conditions"]`,
		Forecast: `[{"day":"Mon","condition":"Sunny","temperature":75},` +
			`{"day":"Tue","condition":"Cloudy","temperature":68},` +
			`{"day":"Wed","condition":"Rain","temperature":65},` +
			`{"day":"Thu","condition":"Sunny","temperature":72},` +
			`{"day":"Fri","condition":"Sunny","temperature":76}]`,
	})
}
