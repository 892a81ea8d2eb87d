package services

import (
	"context"
	"testing"
	"time"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/clients/companymetrics"
	"github.com/registrydata/appointments-backend/internal/clients/companyprofile"
	"github.com/registrydata/appointments-backend/internal/pkg/ctxutil"
	"github.com/registrydata/appointments-backend/internal/types"
)

type fakeProfiles struct {
	profile companyprofile.Profile
	err     error
}

func (f *fakeProfiles) GetProfile(_ context.Context, _ string) (*companyprofile.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	profile := f.profile
	return &profile, nil
}

type fakeMetrics struct {
	counts companymetrics.OfficerCounts
	err    error
}

func (f *fakeMetrics) GetOfficerCounts(_ context.Context, _ string) (*companymetrics.OfficerCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	counts := f.counts
	return &counts, nil
}

type fakeRegisters struct {
	held map[string]bool
	err  error
}

func (f *fakeRegisters) IsRegisterHeldAtRegistry(_ context.Context, _, registerType string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.held[registerType], nil
}

func internalCtx() context.Context {
	return ctxutil.WithPrivileges(context.Background(), []string{InternalAppPrivilege})
}

func newTestCompanyService(repo *fakeRepo, profiles *fakeProfiles, metrics *fakeMetrics, registers *fakeRegisters) CompanyOfficersService {
	return NewCompanyOfficersService(repo, profiles, metrics, registers, OfficerListingConfig{
		InternalSortThreshold:   500,
		ExternalSortThreshold:   500,
		MaxItemsPerPageInternal: 500,
	}, testLogger())
}

func TestListOfficers(t *testing.T) {
	dob := time.Date(1975, 3, 9, 0, 0, 0, 0, time.UTC)
	doc := officerDoc("director", &dob)

	cases := []struct {
		name          string
		ctx           context.Context
		params        CompanyListingParams
		companyStatus string
		docs          []*types.AppointmentDocument
		heldRegisters map[string]bool
		wantCode      apperr.Code
		wantActive    int
		wantInactive  int
		wantDOBDay    bool
	}{
		{
			name:          "live company counts stay active",
			ctx:           context.Background(),
			companyStatus: "active",
			docs:          []*types.AppointmentDocument{doc},
			wantActive:    4,
			wantInactive:  0,
		},
		{
			name:          "dissolved company shifts active to inactive",
			ctx:           context.Background(),
			companyStatus: "dissolved",
			docs:          []*types.AppointmentDocument{doc},
			wantActive:    0,
			wantInactive:  4,
		},
		{
			name:          "no officers is not found",
			ctx:           context.Background(),
			companyStatus: "active",
			wantCode:      apperr.CodeNotFound,
		},
		{
			name:          "register view exposes day of birth",
			ctx:           internalCtx(),
			params:        CompanyListingParams{RegisterView: true, RegisterType: "directors"},
			companyStatus: "active",
			docs:          []*types.AppointmentDocument{doc},
			heldRegisters: map[string]bool{"directors": true},
			wantActive:    4,
			wantDOBDay:    true,
		},
		{
			name:          "register view ignored without internal privileges",
			ctx:           context.Background(),
			params:        CompanyListingParams{RegisterView: true, RegisterType: "directors"},
			companyStatus: "active",
			docs:          []*types.AppointmentDocument{doc},
			wantActive:    4,
		},
		{
			name:          "register not held at registry is not found",
			ctx:           internalCtx(),
			params:        CompanyListingParams{RegisterView: true, RegisterType: "directors"},
			companyStatus: "active",
			docs:          []*types.AppointmentDocument{doc},
			heldRegisters: map[string]bool{},
			wantCode:      apperr.CodeNotFound,
		},
		{
			name:          "unknown register type is a client error",
			ctx:           internalCtx(),
			params:        CompanyListingParams{RegisterView: true, RegisterType: "members"},
			companyStatus: "active",
			docs:          []*types.AppointmentDocument{doc},
			wantCode:      apperr.CodeBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{companyDocs: tc.docs}
			svc := newTestCompanyService(repo,
				&fakeProfiles{profile: companyprofile.Profile{CompanyName: "Noggin Works Ltd", CompanyStatus: tc.companyStatus}},
				&fakeMetrics{counts: companymetrics.OfficerCounts{Total: 6, Active: 4, Resigned: 2}},
				&fakeRegisters{held: tc.heldRegisters})

			list, err := svc.ListOfficers(tc.ctx, "12345678", tc.params)

			if tc.wantCode != "" {
				if apperr.CodeOf(err) != tc.wantCode {
					t.Fatalf("error code = %q (%v), want %q", apperr.CodeOf(err), err, tc.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if list.TotalResults != 6 || list.ResignedCount != 2 {
				t.Fatalf("total/resigned = %d/%d, want 6/2", list.TotalResults, list.ResignedCount)
			}
			if list.ActiveCount != tc.wantActive || list.InactiveCount != tc.wantInactive {
				t.Fatalf("active/inactive = %d/%d, want %d/%d",
					list.ActiveCount, list.InactiveCount, tc.wantActive, tc.wantInactive)
			}
			if list.Links.Self != "/company/12345678/officers" {
				t.Fatalf("links.self = %q", list.Links.Self)
			}
			item := list.Items[0]
			if item.DateOfBirth == nil {
				t.Fatalf("date_of_birth missing for director")
			}
			if got := item.DateOfBirth.Day != nil; got != tc.wantDOBDay {
				t.Fatalf("day of birth present = %v, want %v", got, tc.wantDOBDay)
			}
			if tc.wantDOBDay && *item.DateOfBirth.Day != 9 {
				t.Fatalf("day of birth = %d, want 9", *item.DateOfBirth.Day)
			}
		})
	}
}
