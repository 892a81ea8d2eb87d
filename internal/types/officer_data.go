package types

import "time"

// OfficerData is the public portion of an appointment payload. It is stored
// as a single jsonb document; fields queried by the listing engine are
// additionally denormalized onto AppointmentDocument columns.
type OfficerData struct {
	PersonNumber        string         `json:"person_number,omitempty"`
	Etag                string         `json:"etag,omitempty"`
	ServiceAddress      *Address       `json:"service_address,omitempty"`
	ServiceAddressIsSameAsRegisteredOfficeAddress *bool `json:"service_address_is_same_as_registered_office_address,omitempty"`
	CountryOfResidence  string         `json:"country_of_residence,omitempty"`
	AppointedOn         *time.Time     `json:"appointed_on,omitempty"`
	AppointedBefore     *time.Time     `json:"appointed_before,omitempty"`
	IsPre1992Appointment *bool         `json:"is_pre_1992_appointment,omitempty"`
	Links               *ItemLinks     `json:"links,omitempty"`
	Nationality         string         `json:"nationality,omitempty"`
	Occupation          string         `json:"occupation,omitempty"`
	OfficerRole         string         `json:"officer_role,omitempty"`
	IsSecureOfficer     *bool          `json:"is_secure_officer,omitempty"`
	Identification      *Identification `json:"identification,omitempty"`
	CompanyName         string         `json:"company_name,omitempty"`
	Surname             string         `json:"surname,omitempty"`
	Forename            string         `json:"forename,omitempty"`
	Honours             string         `json:"honours,omitempty"`
	OtherForenames      string         `json:"other_forenames,omitempty"`
	Title               string         `json:"title,omitempty"`
	CompanyNumber       string         `json:"company_number,omitempty"`
	ContactDetails      *ContactDetails `json:"contact_details,omitempty"`
	PrincipalOfficeAddress *Address    `json:"principal_office_address,omitempty"`
	ResignedOn          *time.Time     `json:"resigned_on,omitempty"`
	Responsibilities    string         `json:"responsibilities,omitempty"`
	FormerNames         []FormerName   `json:"former_names,omitempty"`
}

type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	CareOf       string `json:"care_of,omitempty"`
	Country      string `json:"country,omitempty"`
	Locality     string `json:"locality,omitempty"`
	PoBox        string `json:"po_box,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Premises     string `json:"premises,omitempty"`
	Region       string `json:"region,omitempty"`
}

type Identification struct {
	IdentificationType string `json:"identification_type,omitempty"`
	LegalAuthority     string `json:"legal_authority,omitempty"`
	LegalForm          string `json:"legal_form,omitempty"`
	PlaceRegistered    string `json:"place_registered,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}

type ContactDetails struct {
	ContactName string `json:"contact_name,omitempty"`
}

type FormerName struct {
	Forenames string `json:"forenames,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

type ItemLinks struct {
	Self    string        `json:"self,omitempty"`
	Officer *OfficerLinks `json:"officer,omitempty"`
}

type OfficerLinks struct {
	Self         string `json:"self,omitempty"`
	Appointments string `json:"appointments,omitempty"`
}
