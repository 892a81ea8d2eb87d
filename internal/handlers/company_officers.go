package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/services"
)

type CompanyOfficersHandler struct {
	companyService services.CompanyOfficersService
}

func NewCompanyOfficersHandler(companyService services.CompanyOfficersService) *CompanyOfficersHandler {
	return &CompanyOfficersHandler{companyService: companyService}
}

func (h *CompanyOfficersHandler) ListOfficers(c *gin.Context) {
	const op = "handlers.ListOfficers"

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

	list, err := h.companyService.ListOfficers(c.Request.Context(), c.Param("company_number"),
		services.CompanyListingParams{
			StartIndex:   startIndex,
			ItemsPerPage: itemsPerPage,
			RegisterView: boolQuery(c, "register_view"),
			RegisterType: c.Query("register_type"),
		})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, list)
}
