package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/croftside/farmbase/internal/middleware"
	"github.com/croftside/farmbase/internal/models"
	"github.com/croftside/farmbase/internal/services"
	"github.com/gin-gonic/gin"
)

type FarmHandler struct {
	farmService *services.FarmService
}

func NewFarmHandler(farmService *services.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

type LocationRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type SoilRequest struct {
	SoilPH   float64 `json:"soilpH"`
	SoilType string  `json:"soilType" binding:"required"`
}

type FarmRequest struct {
	Name     string          `json:"name" binding:"required"`
	Location LocationRequest `json:"location"`
	Size     float64         `json:"size" binding:"required,gt=0"`
	SizeUnit string          `json:"size_unit" binding:"required,oneof=Plots Acres Hectares"`
	Status   string          `json:"status" binding:"required,oneof=Planting Cultivation Harvesting"`
	Soil     SoilRequest     `json:"soil" binding:"required"`
}

type farmIDParam struct {
	ID uint `uri:"id" binding:"required"`
}

func (r FarmRequest) toInput() services.FarmInput {
	return services.FarmInput{
		Name:     r.Name,
		Location: models.Location{Longitude: r.Location.Longitude, Latitude: r.Location.Latitude},
		Size:     r.Size,
		SizeUnit: r.SizeUnit,
		Status:   r.Status,
		Soil:     models.Soil{SoilPH: r.Soil.SoilPH, SoilType: r.Soil.SoilType},
	}
}

// CreateFarm godoc
// @Summary Create a farm
// @Tags farms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FarmRequest true "Farm details"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /farms [post]
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	farm, err := h.farmService.CreateFarm(userID, req.toInput())
	if err != nil {
		log.Printf("create farm failed for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "Unable to create farm")
		return
	}

	respondSuccess(c, http.StatusCreated, "Farm created successfully", farm)
}

// ListFarms godoc
// @Summary List the caller's farms
// @Tags farms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /farms [get]
func (h *FarmHandler) ListFarms(c *gin.Context) {
	userID := middleware.GetUserID(c)

	farms, err := h.farmService.ListFarms(userID)
	if err != nil {
		log.Printf("list farms failed for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "Unable to list farms")
		return
	}

	respondSuccess(c, http.StatusOK, "Farms retrieved", farms)
}

// GetFarm godoc
// @Summary Get one of the caller's farms
// @Tags farms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /farms/{id} [get]
func (h *FarmHandler) GetFarm(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param farmIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid farm ID")
		return
	}

	farm, err := h.farmService.GetFarm(userID, param.ID)
	if err != nil {
		if errors.Is(err, services.ErrFarmNotFound) {
			respondError(c, http.StatusNotFound, "Farm not found")
			return
		}
		log.Printf("get farm %d failed for user %d: %v", param.ID, userID, err)
		respondError(c, http.StatusInternalServerError, "Unable to fetch farm")
		return
	}

	respondSuccess(c, http.StatusOK, "Farm retrieved", farm)
}

// UpdateFarm godoc
// @Summary Update one of the caller's farms
// @Tags farms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Param request body FarmRequest true "Farm details"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /farms/{id} [put]
func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param farmIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid farm ID")
		return
	}

	var req FarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	farm, err := h.farmService.UpdateFarm(userID, param.ID, req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrFarmNotFound) {
			respondError(c, http.StatusNotFound, "Farm not found")
			return
		}
		log.Printf("update farm %d failed for user %d: %v", param.ID, userID, err)
		respondError(c, http.StatusInternalServerError, "Unable to update farm")
		return
	}

	respondSuccess(c, http.StatusOK, "Farm updated successfully", farm)
}

// DeleteFarm godoc
// @Summary Delete one of the caller's farms
// @Tags farms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 500 {object} Response
// @Router /farms/{id} [delete]
func (h *FarmHandler) DeleteFarm(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param farmIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid farm ID")
		return
	}

	if err := h.farmService.DeleteFarm(userID, param.ID); err != nil {
		// Deletion shares the ownership filter, so "not found" and a real
		// failure collapse into one message here.
		log.Printf("delete farm %d failed for user %d: %v", param.ID, userID, err)
		respondError(c, http.StatusInternalServerError, "Unable to delete farm")
		return
	}

	respondSuccess(c, http.StatusOK, "Farm deleted successfully", nil)
}
