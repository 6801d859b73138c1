package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-farmtrack/models"
	"go-farmtrack/store"
	"go-farmtrack/utils"
)

// InputController handles agronomic application records.
type InputController struct {
	Store store.Storage
}

// NewInputController creates a new InputController instance.
func NewInputController(s store.Storage) *InputController {
	return &InputController{Store: s}
}

// GetInputs lists every input record.
func (c *InputController) GetInputs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Store.GetAllInputs())
}

// GetInputsByCrop lists the inputs applied to a crop. An unknown crop
// id yields an empty list.
func (c *InputController) GetInputsByCrop(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid crop id")
		return
	}
	ctx.JSON(http.StatusOK, c.Store.GetAllInputsByCrop(models.CropID(id)))
}

// GetInput fetches a single input record.
func (c *InputController) GetInput(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid input id")
		return
	}

	input, ok := c.Store.GetInput(models.InputID(id))
	if !ok {
		utils.NotFound(ctx, "Input not found")
		return
	}
	ctx.JSON(http.StatusOK, input)
}

// CreateInput validates and stores a new input record.
func (c *InputController) CreateInput(ctx *gin.Context) {
	var in models.NewInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}
	ctx.JSON(http.StatusCreated, c.Store.CreateInput(in))
}

// UpdateInput applies a partial update to an input record.
func (c *InputController) UpdateInput(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid input id")
		return
	}

	var patch models.InputPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}

	input, ok := c.Store.UpdateInput(models.InputID(id), patch)
	if !ok {
		utils.NotFound(ctx, "Input not found")
		return
	}
	ctx.JSON(http.StatusOK, input)
}

// DeleteInput removes an input record.
func (c *InputController) DeleteInput(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid input id")
		return
	}

	if !c.Store.DeleteInput(models.InputID(id)) {
		utils.NotFound(ctx, "Input not found")
		return
	}
	utils.NoContent(ctx)
}
