package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/registrydata/appointments-backend/internal/pkg/ctxutil"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
)

func TestRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name            string
		headers         map[string]string
		wantRequestID   string
		wantPrivileges  []string
		wantGeneratedID bool
	}{
		{
			name:            "generates a request id when absent",
			wantGeneratedID: true,
		},
		{
			name:          "propagates the supplied request id",
			headers:       map[string]string{"X-Request-Id": "req-1"},
			wantRequestID: "req-1",
		},
		{
			name:           "parses comma separated privileges",
			headers:        map[string]string{"X-Auth-Privileges": "internal-app, sensitive-data"},
			wantPrivileges: []string{"internal-app", "sensitive-data"},
		},
		{
			name:    "blank privileges header yields none",
			headers: map[string]string{"X-Auth-Privileges": "  "},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}

			var gotRequestID string
			var gotPrivileges []string
			router := gin.New()
			router.Use(NewRequestContext(log).Handler())
			router.GET("/probe", func(c *gin.Context) {
				gotRequestID = ctxutil.RequestID(c.Request.Context())
				gotPrivileges = ctxutil.Privileges(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if tc.wantGeneratedID {
				if gotRequestID == "" {
					t.Fatalf("request id not generated")
				}
			} else if tc.wantRequestID != "" && gotRequestID != tc.wantRequestID {
				t.Fatalf("request id = %q, want %q", gotRequestID, tc.wantRequestID)
			}
			if rec.Header().Get("X-Request-Id") == "" {
				t.Fatalf("request id not echoed on the response")
			}
			if len(gotPrivileges) != len(tc.wantPrivileges) {
				t.Fatalf("privileges = %v, want %v", gotPrivileges, tc.wantPrivileges)
			}
			for i := range gotPrivileges {
				if gotPrivileges[i] != tc.wantPrivileges[i] {
					t.Fatalf("privileges = %v, want %v", gotPrivileges, tc.wantPrivileges)
				}
			}
		})
	}
}
