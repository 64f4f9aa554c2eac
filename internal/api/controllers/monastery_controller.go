package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gompa/internal/services"
	"gompa/pkg/utils"
)

type MonasteryController struct {
	monasteryService services.MonasteryServiceInterface
}

func NewMonasteryController(monasteryService services.MonasteryServiceInterface) *MonasteryController {
	return &MonasteryController{
		monasteryService: monasteryService,
	}
}

// ListMonasteries godoc
// @Summary List or search monasteries
// @Description Browse the monastery catalog, optionally filtered by free-text query, era or location
// @Tags Monastery
// @Produce json
// @Param q query string false "Free-text query over name and description"
// @Param era query string false "Era tag, e.g. 18th Century"
// @Param location query string false "Location substring"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} response_models.MonasteryResponse
// @Router /monasteries [get]
func (m *MonasteryController) ListMonasteries(c *gin.Context) {
	query := c.Query("q")
	era := c.Query("era")
	location := c.Query("location")

	if query != "" || era != "" || location != "" {
		monasteries, err := m.monasteryService.SearchMonasteries(c.Request.Context(), query, era, location)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, monasteries, "Monasteries fetched successfully")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	monasteries, err := m.monasteryService.ListMonasteries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, monasteries, "Monasteries fetched successfully")
}

// GetMonasteryByID godoc
// @Summary Get monastery by ID
// @Tags Monastery
// @Produce json
// @Param id path string true "Monastery ID"
// @Success 200 {object} response_models.MonasteryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /monasteries/{id} [get]
func (m *MonasteryController) GetMonasteryByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Monastery ID is required")
		return
	}

	monastery, err := m.monasteryService.GetMonasteryByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, monastery, "Monastery fetched successfully")
}
