package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gompa/internal/services"
	"gompa/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListEvents godoc
// @Summary List cultural events
// @Description Fetch the events calendar, optionally filtered to one month
// @Tags Event
// @Produce json
// @Param month query string false "Calendar month, YYYY-MM"
// @Success 200 {array} response_models.EventResponse
// @Router /events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	var (
		year  int
		month time.Month
	)
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid month (expected YYYY-MM)")
			return
		}
		year, month = parsed.Year(), parsed.Month()
	}

	events, err := e.eventService.ListEvents(c.Request.Context(), year, month)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// GetEventByID godoc
// @Summary Get event by ID
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response_models.EventResponse
// @Failure 404 {object} utils.APIResponse
// @Router /events/{id} [get]
func (e *EventController) GetEventByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Event ID is required")
		return
	}

	event, err := e.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, event, "Event fetched successfully")
}
