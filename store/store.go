// Package store keeps every domain record in process memory. State is
// volatile: a restart clears everything, after which Seed repopulates
// the development samples.
package store

import (
	"sync"
	"time"

	"go-farmtrack/models"
)

// Storage is the contract the HTTP layer consumes. Not-found is a
// normal outcome reported through the bool return, never an error.
type Storage interface {
	// Users
	GetUser(id models.UserID) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	CreateUser(in models.NewUser) (models.User, error)

	// Fields
	GetAllFields() []models.Field
	GetField(id models.FieldID) (models.Field, bool)
	CreateField(in models.NewField) models.Field
	UpdateField(id models.FieldID, patch models.FieldPatch) (models.Field, bool)
	DeleteField(id models.FieldID) bool

	// Crops
	GetAllCrops() []models.Crop
	GetCropsByField(fieldID models.FieldID) []models.Crop
	GetCrop(id models.CropID) (models.Crop, bool)
	CreateCrop(in models.NewCrop) models.Crop
	UpdateCrop(id models.CropID, patch models.CropPatch) (models.Crop, bool)
	DeleteCrop(id models.CropID) bool

	// Inputs
	GetAllInputs() []models.Input
	GetAllInputsByCrop(cropID models.CropID) []models.Input
	GetInput(id models.InputID) (models.Input, bool)
	CreateInput(in models.NewInput) models.Input
	UpdateInput(id models.InputID, patch models.InputPatch) (models.Input, bool)
	DeleteInput(id models.InputID) bool

	// Tasks
	GetAllTasks() []models.Task
	GetTasksByField(fieldID models.FieldID) []models.Task
	GetTasksByCrop(cropID models.CropID) []models.Task
	GetTasksByDate(date time.Time) []models.Task
	GetTask(id models.TaskID) (models.Task, bool)
	CreateTask(in models.NewTask) models.Task
	UpdateTask(id models.TaskID, patch models.TaskPatch) (models.Task, bool)
	DeleteTask(id models.TaskID) bool

	// Weather
	GetWeatherData() (models.WeatherData, bool)
	SaveWeatherData(in models.NewWeatherData) models.WeatherData
}

// MemStore implements Storage with one map per record type. Ids are
// monotonic per type, start at 1 and are never reused, not even after
// deletes. gin runs handlers on concurrent goroutines, so a RWMutex
// guards the maps.
type MemStore struct {
	mu sync.RWMutex

	users   map[models.UserID]models.User
	fields  map[models.FieldID]models.Field
	crops   map[models.CropID]models.Crop
	inputs  map[models.InputID]models.Input
	tasks   map[models.TaskID]models.Task
	weather map[string]models.WeatherData // one entry per UTC day

	userID    models.UserID
	fieldID   models.FieldID
	cropID    models.CropID
	inputID   models.InputID
	taskID    models.TaskID
	weatherID models.WeatherID
}

var _ Storage = (*MemStore)(nil)

// New creates an empty store. Call Seed for the sample data set.
func New() *MemStore {
	return &MemStore{
		users:   make(map[models.UserID]models.User),
		fields:  make(map[models.FieldID]models.Field),
		crops:   make(map[models.CropID]models.Crop),
		inputs:  make(map[models.InputID]models.Input),
		tasks:   make(map[models.TaskID]models.Task),
		weather: make(map[string]models.WeatherData),
	}
}

// dayKey truncates a timestamp to its UTC calendar day. Both the
// weather map and the by-date task query compare days through it.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
