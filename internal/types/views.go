package types

import "time"

// FullRecordView is the single-appointment read shape served to internal
// consumers. Sensitive fields are included; the full-record surface is
// restricted upstream.
type FullRecordView struct {
	CompanyNumber    string         `json:"company_number"`
	AppointmentID    string         `json:"appointment_id"`
	OfficerID        string         `json:"officer_id"`
	CompanyName      string         `json:"company_name,omitempty"`
	CompanyStatus    string         `json:"company_status,omitempty"`
	Data             OfficerData    `json:"data"`
	SensitiveData    *SensitiveData `json:"sensitive_data,omitempty"`
	DeltaAt          string         `json:"delta_at,omitempty"`
}

// AppointmentItem is the public item shape in officer appointment listings.
// DateOfBirth and CountryOfResidence are suppressed centrally for
// secretarial and corporate roles.
type AppointmentItem struct {
	AppointedOn        *time.Time      `json:"appointed_on,omitempty"`
	AppointedBefore    *time.Time      `json:"appointed_before,omitempty"`
	ResignedOn         *time.Time      `json:"resigned_on,omitempty"`
	AppointedTo        AppointedTo     `json:"appointed_to"`
	ContactDetails     *ContactDetails `json:"contact_details,omitempty"`
	Name               string          `json:"name,omitempty"`
	NameElements       *NameElements   `json:"name_elements,omitempty"`
	CountryOfResidence string          `json:"country_of_residence,omitempty"`
	DateOfBirth        *DateOfBirth    `json:"date_of_birth,omitempty"`
	FormerNames        []FormerName    `json:"former_names,omitempty"`
	Identification     *Identification `json:"identification,omitempty"`
	IsPre1992Appointment *bool         `json:"is_pre_1992_appointment,omitempty"`
	Links              AppointmentItemLinks `json:"links"`
	Nationality        string          `json:"nationality,omitempty"`
	Occupation         string          `json:"occupation,omitempty"`
	OfficerRole        string          `json:"officer_role,omitempty"`
	Address            *Address        `json:"address,omitempty"`
}

type AppointedTo struct {
	CompanyName   string `json:"company_name,omitempty"`
	CompanyNumber string `json:"company_number"`
	CompanyStatus string `json:"company_status,omitempty"`
}

type NameElements struct {
	Forename       string `json:"forename,omitempty"`
	Title          string `json:"title,omitempty"`
	OtherForenames string `json:"other_forenames,omitempty"`
	Surname        string `json:"surname,omitempty"`
	Honours        string `json:"honours,omitempty"`
}

type AppointmentItemLinks struct {
	Company string `json:"company"`
}

// AppointmentCounts is derived per officer, never stored.
type AppointmentCounts struct {
	Total    int `json:"total_results"`
	Active   int `json:"active_count"`
	Inactive int `json:"inactive_count"`
	Resigned int `json:"resigned_count"`
}

// OfficerAppointmentList is the paginated officer listing shape.
type OfficerAppointmentList struct {
	DateOfBirth   *DateOfBirth      `json:"date_of_birth,omitempty"`
	Etag          string            `json:"etag,omitempty"`
	IsCorporateOfficer bool         `json:"is_corporate_officer"`
	ItemsPerPage  int               `json:"items_per_page"`
	Kind          string            `json:"kind"`
	Links         OfficerListLinks  `json:"links"`
	Items         []AppointmentItem `json:"items"`
	Name          string            `json:"name,omitempty"`
	StartIndex    int               `json:"start_index"`
	TotalResults  int               `json:"total_results"`
	ActiveCount   *int              `json:"active_count,omitempty"`
	InactiveCount *int              `json:"inactive_count,omitempty"`
	ResignedCount *int              `json:"resigned_count,omitempty"`
}

type OfficerListLinks struct {
	Self string `json:"self"`
}

// OfficerSummary is the redacted snapshot attached to delete notifications.
// For tombstones with no stored record only identity and links survive.
type OfficerSummary struct {
	OfficerID   string          `json:"officer_id,omitempty"`
	Name        string          `json:"name,omitempty"`
	OfficerRole string          `json:"officer_role,omitempty"`
	AppointedOn *time.Time      `json:"appointed_on,omitempty"`
	ResignedOn  *time.Time      `json:"resigned_on,omitempty"`
	Links       *SummaryLinks   `json:"links,omitempty"`
}

type SummaryLinks struct {
	Self    string        `json:"self,omitempty"`
	Officer *OfficerLinks `json:"officer,omitempty"`
}

// CompanyOfficerList is the company-level listing shape.
type CompanyOfficerList struct {
	Etag          string            `json:"etag,omitempty"`
	Items         []AppointmentItem `json:"items"`
	ItemsPerPage  int               `json:"items_per_page"`
	Kind          string            `json:"kind"`
	Links         OfficerListLinks  `json:"links"`
	StartIndex    int               `json:"start_index"`
	TotalResults  int               `json:"total_results"`
	ActiveCount   int               `json:"active_count"`
	InactiveCount int               `json:"inactive_count"`
	ResignedCount int               `json:"resigned_count"`
}
