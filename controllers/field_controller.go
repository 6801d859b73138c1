package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-farmtrack/models"
	"go-farmtrack/store"
	"go-farmtrack/utils"
)

// FieldController handles field record requests.
type FieldController struct {
	Store store.Storage
}

// NewFieldController creates a new FieldController instance.
func NewFieldController(s store.Storage) *FieldController {
	return &FieldController{Store: s}
}

// GetFields lists every field.
func (c *FieldController) GetFields(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Store.GetAllFields())
}

// GetField fetches a single field.
func (c *FieldController) GetField(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid field id")
		return
	}

	field, ok := c.Store.GetField(models.FieldID(id))
	if !ok {
		utils.NotFound(ctx, "Field not found")
		return
	}
	ctx.JSON(http.StatusOK, field)
}

// CreateField validates and stores a new field.
func (c *FieldController) CreateField(ctx *gin.Context) {
	var in models.NewField
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}
	ctx.JSON(http.StatusCreated, c.Store.CreateField(in))
}

// UpdateField applies a partial update to a field.
func (c *FieldController) UpdateField(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid field id")
		return
	}

	var patch models.FieldPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}

	field, ok := c.Store.UpdateField(models.FieldID(id), patch)
	if !ok {
		utils.NotFound(ctx, "Field not found")
		return
	}
	ctx.JSON(http.StatusOK, field)
}

// DeleteField removes a field. Deleting an unknown id answers 404 and
// changes nothing.
func (c *FieldController) DeleteField(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid field id")
		return
	}

	if !c.Store.DeleteField(models.FieldID(id)) {
		utils.NotFound(ctx, "Field not found")
		return
	}
	utils.NoContent(ctx)
}
