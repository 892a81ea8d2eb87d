package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/registrydata/appointments-backend/internal/pkg/ctxutil"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
)

const (
	requestIDHeader  = "X-Request-Id"
	privilegesHeader = "X-Auth-Privileges"
)

// RequestContext seeds every request context with a request id and the
// caller's pre-verified privileges. Authentication itself happens upstream
// of this service; the header is trusted as delivered.
type RequestContext struct {
	log *logger.Logger
}

func NewRequestContext(log *logger.Logger) *RequestContext {
	return &RequestContext{log: log.With("Middleware", "RequestContext")}
}

func (m *RequestContext) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := ctxutil.WithRequestID(c.Request.Context(), requestID)
		if privileges := parsePrivileges(c.GetHeader(privilegesHeader)); len(privileges) > 0 {
			ctx = ctxutil.WithPrivileges(ctx, privileges)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

func parsePrivileges(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	privileges := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			privileges = append(privileges, p)
		}
	}
	return privileges
}
