package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gompa/internal/models/request_models"
	"gompa/internal/services"
	"gompa/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchange the shared admin password for a bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, "password is required")
		return
	}

	token, err := a.adminService.Login(c.Request.Context(), req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// UpsertMonastery godoc
// @Summary Create or update a catalog monastery
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpsertMonasteryRequest true "Monastery"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/monasteries [post]
func (a *AdminController) UpsertMonastery(c *gin.Context) {
	var req request_models.UpsertMonasteryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "name and location are required")
		return
	}

	id, err := a.adminService.UpsertMonastery(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Monastery saved")
}

// DeleteMonastery godoc
// @Summary Delete a catalog monastery
// @Tags Admin
// @Produce json
// @Param id path string true "Monastery ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/monasteries/{id} [delete]
func (a *AdminController) DeleteMonastery(c *gin.Context) {
	if err := a.adminService.DeleteMonastery(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Monastery deleted")
}

// CreateEvent godoc
// @Summary Add a calendar event
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/events [post]
func (a *AdminController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Date == "" {
		utils.RespondError(c, http.StatusBadRequest, "title and date are required")
		return
	}

	id, err := a.adminService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Event created")
}

// DeleteEvent godoc
// @Summary Delete a calendar event
// @Tags Admin
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/events/{id} [delete]
func (a *AdminController) DeleteEvent(c *gin.Context) {
	if err := a.adminService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Event deleted")
}
