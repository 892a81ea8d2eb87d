package services

import (
	"gorm.io/datatypes"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/types"
)

// transformDelta converts an inbound delta into a storage candidate. The
// candidate carries the complete officer and sensitive payloads; saves are
// full replaces, never partial merges. A payload that cannot be converted
// maps to unavailable so upstream redelivery can succeed once the defect is
// fixed.
func transformDelta(delta types.FullRecordDelta) (*types.AppointmentDocument, error) {
	const op = "services.transformDelta"

	external := delta.ExternalData
	internal := delta.InternalData

	if isBlank(external.CompanyNumber) || isBlank(external.AppointmentID) {
		return nil, apperr.Unavailable(op,
			"failed to transform payload: company number and appointment id required", nil)
	}
	if isBlank(internal.OfficerID) {
		return nil, apperr.Unavailable(op, "failed to transform payload: officer id required", nil)
	}
	if isBlank(internal.DeltaAt) {
		return nil, apperr.BadRequest(op, "deltaAt is null or empty")
	}

	status := external.CompanyStatus
	if !isBlank(status) {
		parsed, err := types.ParseCompanyStatus(status)
		if err != nil {
			return nil, apperr.BadRequest(op, err.Error())
		}
		status = parsed.String()
	}

	sensitive := types.SensitiveData{}
	if delta.SensitiveData != nil {
		sensitive = *delta.SensitiveData
	}

	data := external.Data
	doc := &types.AppointmentDocument{
		CompanyNumber:        external.CompanyNumber,
		AppointmentID:        external.AppointmentID,
		OfficerID:            internal.OfficerID,
		PreviousOfficerID:    internal.PreviousOfficerID,
		OfficerRoleSortOrder: internal.OfficerRoleSortOrder,
		DeltaAt:              internal.DeltaAt,
		CompanyName:          external.CompanyName,
		CompanyStatus:        status,
		AppointedOn:          data.AppointedOn,
		AppointedBefore:      data.AppointedBefore,
		ResignedOn:           data.ResignedOn,
		Data:                 datatypes.NewJSONType(data),
		Sensitive:            datatypes.NewJSONType(sensitive),
	}
	return doc, nil
}
