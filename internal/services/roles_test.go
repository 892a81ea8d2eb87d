package services

import (
	"sort"
	"testing"
)

func TestSuppressesPersonalData(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{role: "director", want: false},
		{role: "nominee-director", want: false},
		{role: "llp-member", want: false},
		{role: "secretary", want: true},
		{role: "nominee-secretary", want: true},
		{role: "corporate-secretary", want: true},
		{role: "corporate-nominee-secretary", want: true},
		{role: "corporate-director", want: true},
		{role: "corporate-llp-member", want: true},
		{role: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			if got := suppressesPersonalData(tc.role); got != tc.want {
				t.Fatalf("suppressesPersonalData(%q) = %v, want %v", tc.role, got, tc.want)
			}
		})
	}
}

func TestRolesForRegisterType(t *testing.T) {
	cases := []struct {
		registerType string
		want         []string
	}{
		{
			registerType: "directors",
			want:         []string{"corporate-director", "corporate-nominee-director", "director", "nominee-director"},
		},
		{
			registerType: "secretaries",
			want:         []string{"corporate-nominee-secretary", "corporate-secretary", "nominee-secretary", "secretary"},
		},
		{
			registerType: "llp_members",
			want: []string{
				"corporate-llp-designated-member", "corporate-llp-member",
				"limited-partner-in-a-limited-partnership",
				"llp-designated-member", "llp-member",
			},
		},
		{registerType: "members", want: nil},
		{registerType: "", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.registerType, func(t *testing.T) {
			got := rolesForRegisterType(tc.registerType)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("rolesForRegisterType(%q) = %v, want nil", tc.registerType, got)
				}
				return
			}
			sort.Strings(got)
			if len(got) != len(tc.want) {
				t.Fatalf("rolesForRegisterType(%q) = %v, want %v", tc.registerType, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("rolesForRegisterType(%q) = %v, want %v", tc.registerType, got, tc.want)
				}
			}
		})
	}
}
