package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type TripsController struct {
	tripService   services.TripServiceInterface
	exportService services.ExportServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface, exportService services.ExportServiceInterface) *TripsController {
	return &TripsController{
		tripService:   tripService,
		exportService: exportService,
	}
}

func (t *TripsController) SaveTripHandler(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary, err := t.tripService.SaveTrip(c.Request.Context(), c.GetString("account_id"), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Trip saved")
}

func (t *TripsController) ListTripsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	trips, err := t.tripService.GetTripsByAccountId(c.Request.Context(), page, pageSize, c.GetString("account_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

func (t *TripsController) GetTripHandler(c *gin.Context) {
	trip, err := t.tripService.GetTripById(c.Request.Context(), c.Param("id"), c.GetString("account_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "")
}

func (t *TripsController) DeleteTripHandler(c *gin.Context) {
	err := t.tripService.DeleteTrip(c.Request.Context(), c.Param("id"), c.GetString("account_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}

func (t *TripsController) ExportTripPDFHandler(c *gin.Context) {
	trip, err := t.tripService.GetTripById(c.Request.Context(), c.Param("id"), c.GetString("account_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := t.exportService.RenderItineraryPDF(trip.Title, trip.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", trip.Title+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
