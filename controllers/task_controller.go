package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-farmtrack/models"
	"go-farmtrack/store"
	"go-farmtrack/utils"
)

// TaskController handles farm work task requests.
type TaskController struct {
	Store store.Storage
}

// NewTaskController creates a new TaskController instance.
func NewTaskController(s store.Storage) *TaskController {
	return &TaskController{Store: s}
}

// GetTasks lists every task.
func (c *TaskController) GetTasks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Store.GetAllTasks())
}

// GetTasksByField lists tasks tied to a field.
func (c *TaskController) GetTasksByField(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid field id")
		return
	}
	ctx.JSON(http.StatusOK, c.Store.GetTasksByField(models.FieldID(id)))
}

// GetTasksByCrop lists tasks tied to a crop.
func (c *TaskController) GetTasksByCrop(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid crop id")
		return
	}
	ctx.JSON(http.StatusOK, c.Store.GetTasksByCrop(models.CropID(id)))
}

// GetTasksByDate lists tasks whose start date falls on the given
// calendar day, regardless of time of day. The path segment accepts
// either RFC 3339 or a plain YYYY-MM-DD date.
func (c *TaskController) GetTasksByDate(ctx *gin.Context) {
	date, err := parseDate(ctx.Param("date"))
	if err != nil {
		utils.BadRequest(ctx, "Invalid date format")
		return
	}
	ctx.JSON(http.StatusOK, c.Store.GetTasksByDate(date))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// GetTask fetches a single task.
func (c *TaskController) GetTask(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid task id")
		return
	}

	task, ok := c.Store.GetTask(models.TaskID(id))
	if !ok {
		utils.NotFound(ctx, "Task not found")
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// CreateTask validates and stores a new task.
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var in models.NewTask
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}
	ctx.JSON(http.StatusCreated, c.Store.CreateTask(in))
}

// UpdateTask applies a partial update to a task.
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid task id")
		return
	}

	var patch models.TaskPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}

	task, ok := c.Store.UpdateTask(models.TaskID(id), patch)
	if !ok {
		utils.NotFound(ctx, "Task not found")
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// DeleteTask removes a task.
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid task id")
		return
	}

	if !c.Store.DeleteTask(models.TaskID(id)) {
		utils.NotFound(ctx, "Task not found")
		return
	}
	utils.NoContent(ctx)
}
