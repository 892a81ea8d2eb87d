package types

// FullRecordDelta is the inbound wire shape of one appointment delta. The
// routing layer has already resolved company number and appointment id;
// the pipeline still owns business validation (company status, deltaAt).
type FullRecordDelta struct {
	ExternalData  DeltaExternalData `json:"external_data"`
	InternalData  DeltaInternalData `json:"internal_data"`
	SensitiveData *SensitiveData    `json:"sensitive_data,omitempty"`
}

type DeltaExternalData struct {
	CompanyNumber string      `json:"company_number"`
	AppointmentID string      `json:"appointment_id"`
	CompanyName   string      `json:"company_name,omitempty"`
	CompanyStatus string      `json:"company_status,omitempty"`
	Data          OfficerData `json:"data"`
}

type DeltaInternalData struct {
	OfficerID            string  `json:"officer_id"`
	PreviousOfficerID    *string `json:"previous_officer_id,omitempty"`
	OfficerRoleSortOrder int     `json:"officer_role_sort_order"`
	DeltaAt              string  `json:"delta_at"`
	UpdatedBy            string  `json:"updated_by,omitempty"`
}
