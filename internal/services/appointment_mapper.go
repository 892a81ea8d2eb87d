package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/registrydata/appointments-backend/internal/types"
)

// mapAppointmentItem projects a stored document onto the public item shape.
// Date of birth and country of residence are stripped here, and only here,
// for secretarial and corporate roles.
func mapAppointmentItem(doc *types.AppointmentDocument, registerView bool) types.AppointmentItem {
	data := doc.Officer()
	sensitive := doc.SensitivePayload()
	suppress := suppressesPersonalData(data.OfficerRole)

	item := types.AppointmentItem{
		AppointedOn:     data.AppointedOn,
		AppointedBefore: data.AppointedBefore,
		ResignedOn:      data.ResignedOn,
		AppointedTo: types.AppointedTo{
			CompanyName:   doc.CompanyName,
			CompanyNumber: doc.CompanyNumber,
			CompanyStatus: doc.CompanyStatus,
		},
		ContactDetails:       data.ContactDetails,
		Name:                 mapOfficerName(data),
		NameElements:         mapNameElements(data),
		FormerNames:          data.FormerNames,
		Identification:       data.Identification,
		IsPre1992Appointment: data.IsPre1992Appointment,
		Links: types.AppointmentItemLinks{
			Company: fmt.Sprintf("/company/%s", doc.CompanyNumber),
		},
		Nationality: data.Nationality,
		Occupation:  data.Occupation,
		OfficerRole: data.OfficerRole,
		Address:     data.ServiceAddress,
	}
	if !suppress {
		item.CountryOfResidence = data.CountryOfResidence
		item.DateOfBirth = mapDateOfBirth(sensitive.DateOfBirth, registerView)
	}
	return item
}

// mapDateOfBirth projects the stored date of birth; the day component is
// exposed only in register views.
func mapDateOfBirth(dob *time.Time, registerView bool) *types.DateOfBirth {
	if dob == nil {
		return nil
	}
	projected := &types.DateOfBirth{
		Month: int(dob.Month()),
		Year:  dob.Year(),
	}
	if registerView {
		day := dob.Day()
		projected.Day = &day
	}
	return projected
}

func mapFullRecordView(doc *types.AppointmentDocument) types.FullRecordView {
	sensitive := doc.SensitivePayload()
	return types.FullRecordView{
		CompanyNumber: doc.CompanyNumber,
		AppointmentID: doc.AppointmentID,
		OfficerID:     doc.OfficerID,
		CompanyName:   doc.CompanyName,
		CompanyStatus: doc.CompanyStatus,
		Data:          doc.Officer(),
		SensitiveData: &sensitive,
		DeltaAt:       doc.DeltaAt,
	}
}

// mapOfficerSummary builds the redacted snapshot attached to delete
// notifications for a record that existed in storage.
func mapOfficerSummary(doc *types.AppointmentDocument) types.OfficerSummary {
	data := doc.Officer()
	return types.OfficerSummary{
		OfficerID:   doc.OfficerID,
		Name:        mapOfficerName(data),
		OfficerRole: data.OfficerRole,
		AppointedOn: data.AppointedOn,
		ResignedOn:  data.ResignedOn,
		Links:       summaryLinks(doc.CompanyNumber, doc.AppointmentID, doc.OfficerID),
	}
}

// tombstoneSummary is the minimal synthesized payload for a delete of a
// record that was never observed in storage: identity and links only.
func tombstoneSummary(companyNumber, appointmentID, officerID string) types.OfficerSummary {
	return types.OfficerSummary{
		OfficerID: officerID,
		Links:     summaryLinks(companyNumber, appointmentID, officerID),
	}
}

func summaryLinks(companyNumber, appointmentID, officerID string) *types.SummaryLinks {
	links := &types.SummaryLinks{
		Self: fmt.Sprintf("/company/%s/appointments/%s", companyNumber, appointmentID),
	}
	if officerID != "" {
		links.Officer = &types.OfficerLinks{
			Self:         fmt.Sprintf("/officers/%s", officerID),
			Appointments: fmt.Sprintf("/officers/%s/appointments", officerID),
		}
	}
	return links
}

// mapOfficerName prefers the corporate name; individuals render as
// "Surname, Forename Other".
func mapOfficerName(data types.OfficerData) string {
	if !isBlank(data.CompanyName) {
		return data.CompanyName
	}
	forenames := strings.TrimSpace(strings.Join(nonBlank(data.Forename, data.OtherForenames), " "))
	if isBlank(data.Surname) {
		return forenames
	}
	if forenames == "" {
		return data.Surname
	}
	return fmt.Sprintf("%s, %s", data.Surname, forenames)
}

func mapNameElements(data types.OfficerData) *types.NameElements {
	if isBlank(data.Forename) && isBlank(data.Surname) && isBlank(data.OtherForenames) &&
		isBlank(data.Title) && isBlank(data.Honours) {
		return nil
	}
	return &types.NameElements{
		Forename:       data.Forename,
		Title:          data.Title,
		OtherForenames: data.OtherForenames,
		Surname:        data.Surname,
		Honours:        data.Honours,
	}
}

func nonBlank(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !isBlank(v) {
			out = append(out, v)
		}
	}
	return out
}
