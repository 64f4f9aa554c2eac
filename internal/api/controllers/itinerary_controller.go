package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dm "gompa/internal/models/domain_models"
	"gompa/internal/models/request_models"
	"gompa/internal/services"
	"gompa/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	routingService   services.RoutingServiceInterface
	exportService    services.ExportServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	routingService services.RoutingServiceInterface,
	exportService services.ExportServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		routingService:   routingService,
		exportService:    exportService,
	}
}

// CreateItinerary godoc
// @Summary Start a trip itinerary
// @Description Create an empty session-scoped itinerary and return its id
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itineraries [post]
func (i *ItineraryController) CreateItinerary(c *gin.Context) {
	id, err := i.itineraryService.CreateItinerary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"itinerary_id": id}, "Itinerary created successfully")
}

// GetItinerary godoc
// @Summary Get the current itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// AddMonastery godoc
// @Summary Add a monastery to the itinerary
// @Description Appends the monastery to the ordered sequence; adding one already present is a no-op
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.AddMonasteryRequest true "Monastery ID"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id}/monasteries [post]
func (i *ItineraryController) AddMonastery(c *gin.Context) {
	var req request_models.AddMonasteryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MonasteryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "monastery_id is required")
		return
	}

	if err := i.itineraryService.AddMonastery(c.Request.Context(), c.Param("id"), req.MonasteryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Monastery added to itinerary")
}

// RemoveMonastery godoc
// @Summary Remove a monastery from the itinerary
// @Description Idempotent; removing an absent id leaves the sequence unchanged
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param monasteryId path string true "Monastery ID"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id}/monasteries/{monasteryId} [delete]
func (i *ItineraryController) RemoveMonastery(c *gin.Context) {
	if err := i.itineraryService.RemoveMonastery(c.Request.Context(), c.Param("id"), c.Param("monasteryId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Monastery removed from itinerary")
}

// AddEvent godoc
// @Summary Add an event to the itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.AddEventRequest true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id}/events [post]
func (i *ItineraryController) AddEvent(c *gin.Context) {
	var req request_models.AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID == "" {
		utils.RespondError(c, http.StatusBadRequest, "event_id is required")
		return
	}

	if err := i.itineraryService.AddEvent(c.Request.Context(), c.Param("id"), req.EventID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Event added to itinerary")
}

// RemoveEvent godoc
// @Summary Remove an event from the itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id}/events/{eventId} [delete]
func (i *ItineraryController) RemoveEvent(c *gin.Context) {
	if err := i.itineraryService.RemoveEvent(c.Request.Context(), c.Param("id"), c.Param("eventId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Event removed from itinerary")
}

// Reorder godoc
// @Summary Reorder the monastery sequence
// @Description Moves source to target's position (drag-and-drop); a stable array move, never a duplicate or drop
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.ReorderRequest true "Source and target monastery IDs"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{id}/reorder [post]
func (i *ItineraryController) Reorder(c *gin.Context) {
	var req request_models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SourceID == "" || req.TargetID == "" {
		utils.RespondError(c, http.StatusBadRequest, "source_id and target_id are required")
		return
	}

	if err := i.itineraryService.Reorder(c.Request.Context(), c.Param("id"), req.SourceID, req.TargetID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary reordered")
}

// GetDayPlan godoc
// @Summary Get the derived day-wise plan
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param perDay query int false "Stops per day" default(3)
// @Success 200 {object} response_models.DayPlanResponse
// @Router /itineraries/{id}/day-plan [get]
func (i *ItineraryController) GetDayPlan(c *gin.Context) {
	perDay := 0
	if raw := c.Query("perDay"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, "perDay must be a positive integer")
			return
		}
		perDay = parsed
	}

	plan, err := i.itineraryService.GetDayPlan(c.Request.Context(), c.Param("id"), perDay)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Day plan computed")
}

// GetSummary godoc
// @Summary Get the aggregate trip estimate
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.SummaryResponse
// @Router /itineraries/{id}/summary [get]
func (i *ItineraryController) GetSummary(c *gin.Context) {
	summary, err := i.itineraryService.GetSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Summary computed")
}

// GetRoute godoc
// @Summary Get the journey route for the current sequence
// @Description Fetches polyline and distance/duration from the external routing service
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param mode query string false "Travel mode" default(driving)
// @Success 200 {object} response_models.RouteResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itineraries/{id}/route [get]
func (i *ItineraryController) GetRoute(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	stops := make([]dm.MonasteryStop, len(itinerary.Stops))
	for idx, s := range itinerary.Stops {
		stops[idx] = dm.MonasteryStop{
			ID:        s.ID,
			Name:      s.Name,
			Location:  s.Location,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		}
	}

	route, err := i.routingService.ComputeRoute(c.Request.Context(), stops, c.DefaultQuery("mode", "driving"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, route, "Route computed")
}

// ExportPDF godoc
// @Summary Export the itinerary as a PDF document
// @Tags Itinerary
// @Produce application/pdf
// @Param id path string true "Itinerary ID"
// @Success 200 {file} binary
// @Router /itineraries/{id}/export/pdf [get]
func (i *ItineraryController) ExportPDF(c *gin.Context) {
	pdfBytes, err := i.exportService.ExportItineraryPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="itinerary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
