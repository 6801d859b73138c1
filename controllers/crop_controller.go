package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-farmtrack/models"
	"go-farmtrack/store"
	"go-farmtrack/utils"
)

// CropController handles crop record requests.
type CropController struct {
	Store store.Storage
}

// NewCropController creates a new CropController instance.
func NewCropController(s store.Storage) *CropController {
	return &CropController{Store: s}
}

// GetCrops lists every crop.
func (c *CropController) GetCrops(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Store.GetAllCrops())
}

// GetCropsByField lists the crops recorded against a field. The field
// itself is not looked up: an unknown or deleted field id yields an
// empty list, not a 404.
func (c *CropController) GetCropsByField(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid field id")
		return
	}
	ctx.JSON(http.StatusOK, c.Store.GetCropsByField(models.FieldID(id)))
}

// GetCrop fetches a single crop.
func (c *CropController) GetCrop(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid crop id")
		return
	}

	crop, ok := c.Store.GetCrop(models.CropID(id))
	if !ok {
		utils.NotFound(ctx, "Crop not found")
		return
	}
	ctx.JSON(http.StatusOK, crop)
}

// CreateCrop validates and stores a new crop. The field reference is
// accepted as-is, existing or not.
func (c *CropController) CreateCrop(ctx *gin.Context) {
	var in models.NewCrop
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}
	ctx.JSON(http.StatusCreated, c.Store.CreateCrop(in))
}

// UpdateCrop applies a partial update to a crop.
func (c *CropController) UpdateCrop(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid crop id")
		return
	}

	var patch models.CropPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(ctx, utils.ValidationMessage(err))
		return
	}

	crop, ok := c.Store.UpdateCrop(models.CropID(id), patch)
	if !ok {
		utils.NotFound(ctx, "Crop not found")
		return
	}
	ctx.JSON(http.StatusOK, crop)
}

// DeleteCrop removes a crop. Inputs and tasks pointing at it keep
// their dangling reference.
func (c *CropController) DeleteCrop(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequest(ctx, "invalid crop id")
		return
	}

	if !c.Store.DeleteCrop(models.CropID(id)) {
		utils.NotFound(ctx, "Crop not found")
		return
	}
	utils.NoContent(ctx)
}
