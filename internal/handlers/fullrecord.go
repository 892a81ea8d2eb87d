package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/services"
	"github.com/registrydata/appointments-backend/internal/types"
)

type FullRecordHandler struct {
	fullRecordService services.FullRecordService
}

func NewFullRecordHandler(fullRecordService services.FullRecordService) *FullRecordHandler {
	return &FullRecordHandler{fullRecordService: fullRecordService}
}

func (h *FullRecordHandler) GetAppointment(c *gin.Context) {
	view, err := h.fullRecordService.GetAppointment(c.Request.Context(),
		c.Param("company_number"), c.Param("appointment_id"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *FullRecordHandler) PutAppointment(c *gin.Context) {
	const op = "handlers.PutAppointment"

	var delta types.FullRecordDelta
	if err := c.ShouldBindJSON(&delta); err != nil {
		RespondAppError(c, apperr.BadRequest(op, "malformed request body"))
		return
	}
	// The path is authoritative for the record identity.
	delta.ExternalData.CompanyNumber = c.Param("company_number")
	delta.ExternalData.AppointmentID = c.Param("appointment_id")

	if _, err := h.fullRecordService.UpsertAppointmentDelta(c.Request.Context(), delta); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *FullRecordHandler) DeleteAppointment(c *gin.Context) {
	params := services.DeleteParameters{
		CompanyNumber: c.Param("company_number"),
		AppointmentID: c.Param("appointment_id"),
		DeltaAt:       c.Query("delta_at"),
		OfficerID:     c.Query("officer_id"),
	}
	if err := h.fullRecordService.DeleteAppointmentDelta(c.Request.Context(), params); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
