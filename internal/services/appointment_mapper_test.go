package services

import (
	"testing"

	"github.com/registrydata/appointments-backend/internal/types"
)

func TestMapOfficerName(t *testing.T) {
	cases := []struct {
		name string
		data types.OfficerData
		want string
	}{
		{
			name: "surname with forenames",
			data: types.OfficerData{Surname: "Noggin", Forename: "John", OtherForenames: "Maurice"},
			want: "Noggin, John Maurice",
		},
		{
			name: "surname only",
			data: types.OfficerData{Surname: "Noggin"},
			want: "Noggin",
		},
		{
			name: "forename only",
			data: types.OfficerData{Forename: "John"},
			want: "John",
		},
		{
			name: "corporate name wins over elements",
			data: types.OfficerData{CompanyName: "Big Corp Ltd", Surname: "Noggin", Forename: "John"},
			want: "Big Corp Ltd",
		},
		{
			name: "blank elements",
			data: types.OfficerData{},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapOfficerName(tc.data); got != tc.want {
				t.Fatalf("mapOfficerName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMapOfficerSummary(t *testing.T) {
	doc := storedDoc("12345678", "appt1", "officer1", "1")
	summary := mapOfficerSummary(doc)

	if summary.OfficerID != "officer1" {
		t.Fatalf("officer_id = %q", summary.OfficerID)
	}
	if summary.Name != "Noggin, John" {
		t.Fatalf("name = %q", summary.Name)
	}
	if summary.OfficerRole != "director" {
		t.Fatalf("officer_role = %q", summary.OfficerRole)
	}
	if summary.Links == nil || summary.Links.Self != "/company/12345678/appointments/appt1" {
		t.Fatalf("links = %+v", summary.Links)
	}
	if summary.Links.Officer == nil || summary.Links.Officer.Appointments != "/officers/officer1/appointments" {
		t.Fatalf("officer links = %+v", summary.Links.Officer)
	}
}

func TestTombstoneSummary(t *testing.T) {
	summary := tombstoneSummary("12345678", "appt1", "officer1")

	if summary.Name != "" || summary.OfficerRole != "" {
		t.Fatalf("tombstone carries officer data: %+v", summary)
	}
	if summary.OfficerID != "officer1" {
		t.Fatalf("officer_id = %q", summary.OfficerID)
	}
	if summary.Links == nil || summary.Links.Officer == nil {
		t.Fatalf("tombstone missing links: %+v", summary)
	}

	anonymous := tombstoneSummary("12345678", "appt1", "")
	if anonymous.Links.Officer != nil {
		t.Fatalf("officer links fabricated without an officer id: %+v", anonymous.Links)
	}
}
