package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/services"
)

type OfficerAppointmentsHandler struct {
	officerService services.OfficerAppointmentsService
}

func NewOfficerAppointmentsHandler(officerService services.OfficerAppointmentsService) *OfficerAppointmentsHandler {
	return &OfficerAppointmentsHandler{officerService: officerService}
}

func (h *OfficerAppointmentsHandler) ListAppointments(c *gin.Context) {
	const op = "handlers.ListAppointments"

	startIndex, err := intQuery(c, "start_index")
	if err != nil {
		RespondAppError(c, apperr.BadRequest(op, "start_index must be an integer"))
		return
	}
	itemsPerPage, err := intQuery(c, "items_per_page")
	if err != nil {
		RespondAppError(c, apperr.BadRequest(op, "items_per_page must be an integer"))
		return
	}

	list, err := h.officerService.ListAppointments(c.Request.Context(), c.Param("officer_id"),
		services.OfficerListingParams{
			Filter:       c.Query("filter"),
			StartIndex:   startIndex,
			ItemsPerPage: itemsPerPage,
			ReturnCounts: boolQuery(c, "return_counts"),
		})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, list)
}

// intQuery distinguishes an absent parameter from a present one so the
// service layer can apply defaults only when nothing was supplied.
func intQuery(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func boolQuery(c *gin.Context, name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Query(name)), "true")
}
