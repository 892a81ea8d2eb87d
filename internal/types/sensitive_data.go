package types

import "time"

// SensitiveData holds the access-restricted portion of an appointment
// payload. It is never mapped into listing items for secretarial or
// corporate roles.
type SensitiveData struct {
	UsualResidentialAddress *Address   `json:"usual_residential_address,omitempty"`
	ResidentialAddressIsSameAsServiceAddress *bool `json:"residential_address_is_same_as_service_address,omitempty"`
	DateOfBirth             *time.Time `json:"date_of_birth,omitempty"`
}

// DateOfBirth is the public projection of a stored date of birth. Day is
// only populated in register views.
type DateOfBirth struct {
	Day   *int `json:"day,omitempty"`
	Month int  `json:"month"`
	Year  int  `json:"year"`
}
