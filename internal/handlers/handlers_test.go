package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/services"
	"github.com/registrydata/appointments-backend/internal/types"
)

type fakeFullRecordService struct {
	view      *types.FullRecordView
	getErr    error
	upsertErr error
	deleteErr error

	gotDelta  *types.FullRecordDelta
	gotDelete *services.DeleteParameters
}

func (f *fakeFullRecordService) GetAppointment(_ context.Context, _, _ string) (*types.FullRecordView, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.view, nil
}

func (f *fakeFullRecordService) UpsertAppointmentDelta(_ context.Context, delta types.FullRecordDelta) (services.UpsertOutcome, error) {
	f.gotDelta = &delta
	if f.upsertErr != nil {
		return services.UpsertOutcomeNone, f.upsertErr
	}
	return services.UpsertApplied, nil
}

func (f *fakeFullRecordService) DeleteAppointmentDelta(_ context.Context, params services.DeleteParameters) error {
	f.gotDelete = &params
	return f.deleteErr
}

func newFullRecordRouter(svc services.FullRecordService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewFullRecordHandler(svc)
	router := gin.New()
	group := router.Group("/company/:company_number/appointments/:appointment_id/full_record")
	group.GET("", handler.GetAppointment)
	group.PUT("", handler.PutAppointment)
	group.DELETE("", handler.DeleteAppointment)
	return router
}

func TestFullRecordStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "bad request", err: apperr.BadRequest("op", "bad"), wantStatus: http.StatusBadRequest},
		{name: "not found", err: apperr.NotFound("op", "missing"), wantStatus: http.StatusNotFound},
		{name: "conflict", err: apperr.Conflict("op", "stale"), wantStatus: http.StatusConflict},
		{name: "unavailable", err: apperr.Unavailable("op", "down", nil), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeFullRecordService{view: &types.FullRecordView{OfficerID: "officer1"}, getErr: tc.err}
			router := newFullRecordRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/company/12345678/appointments/appt1/full_record", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.err != nil {
				var envelope ErrorEnvelope
				if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
					t.Fatalf("malformed error envelope: %v", err)
				}
				if envelope.Error.Code == "" {
					t.Fatalf("error envelope missing code: %s", rec.Body.String())
				}
			}
		})
	}
}

func TestPutAppointmentPathOverridesBody(t *testing.T) {
	svc := &fakeFullRecordService{}
	router := newFullRecordRouter(svc)

	body := `{"external_data":{"company_number":"99999999","appointment_id":"other"},"internal_data":{"officer_id":"officer1","delta_at":"1"}}`
	req := httptest.NewRequest(http.MethodPut, "/company/12345678/appointments/appt1/full_record", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if svc.gotDelta == nil {
		t.Fatalf("delta never reached the service")
	}
	if svc.gotDelta.ExternalData.CompanyNumber != "12345678" || svc.gotDelta.ExternalData.AppointmentID != "appt1" {
		t.Fatalf("path identity not authoritative: %+v", svc.gotDelta.ExternalData)
	}
}

func TestPutAppointmentMalformedBody(t *testing.T) {
	router := newFullRecordRouter(&fakeFullRecordService{})

	req := httptest.NewRequest(http.MethodPut, "/company/12345678/appointments/appt1/full_record", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDeleteAppointmentParams(t *testing.T) {
	svc := &fakeFullRecordService{}
	router := newFullRecordRouter(svc)

	req := httptest.NewRequest(http.MethodDelete,
		"/company/12345678/appointments/appt1/full_record?delta_at=20220114000000000000&officer_id=officer1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := services.DeleteParameters{
		CompanyNumber: "12345678",
		AppointmentID: "appt1",
		DeltaAt:       "20220114000000000000",
		OfficerID:     "officer1",
	}
	if svc.gotDelete == nil || *svc.gotDelete != want {
		t.Fatalf("delete params = %+v, want %+v", svc.gotDelete, want)
	}
}

type fakeOfficerService struct {
	list      *types.OfficerAppointmentList
	err       error
	gotParams services.OfficerListingParams
}

func (f *fakeOfficerService) ListAppointments(_ context.Context, _ string, params services.OfficerListingParams) (*types.OfficerAppointmentList, error) {
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func TestListAppointmentsQueryParsing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		query      string
		wantStatus int
		check      func(t *testing.T, params services.OfficerListingParams)
	}{
		{
			name:       "all params parsed",
			query:      "?filter=active&start_index=3&items_per_page=15&return_counts=true",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, params services.OfficerListingParams) {
				if params.Filter != "active" || !params.ReturnCounts {
					t.Fatalf("params = %+v", params)
				}
				if params.StartIndex == nil || *params.StartIndex != 3 {
					t.Fatalf("start_index = %v", params.StartIndex)
				}
				if params.ItemsPerPage == nil || *params.ItemsPerPage != 15 {
					t.Fatalf("items_per_page = %v", params.ItemsPerPage)
				}
			},
		},
		{
			name:       "absent paging params stay nil",
			query:      "",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, params services.OfficerListingParams) {
				if params.StartIndex != nil || params.ItemsPerPage != nil {
					t.Fatalf("params = %+v", params)
				}
			},
		},
		{
			name:       "non-integer paging rejected",
			query:      "?start_index=abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeOfficerService{list: &types.OfficerAppointmentList{}}
			router := gin.New()
			router.GET("/officers/:officer_id/appointments", NewOfficerAppointmentsHandler(svc).ListAppointments)

			req := httptest.NewRequest(http.MethodGet, "/officers/officer1/appointments"+tc.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.check != nil {
				tc.check(t, svc.gotParams)
			}
		})
	}
}
