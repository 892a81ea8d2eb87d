package app

import (
	"github.com/gin-gonic/gin"

	"github.com/registrydata/appointments-backend/internal/handlers"
	"github.com/registrydata/appointments-backend/internal/middleware"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
	"github.com/registrydata/appointments-backend/internal/server"
)

type Handlers struct {
	FullRecord          *handlers.FullRecordHandler
	OfficerAppointments *handlers.OfficerAppointmentsHandler
	CompanyOfficers     *handlers.CompanyOfficersHandler
}

type Middleware struct {
	RequestContext *middleware.RequestContext
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		FullRecord:          handlers.NewFullRecordHandler(serviceset.FullRecord),
		OfficerAppointments: handlers.NewOfficerAppointmentsHandler(serviceset.OfficerAppointments),
		CompanyOfficers:     handlers.NewCompanyOfficersHandler(serviceset.CompanyOfficers),
	}
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestContext: middleware.NewRequestContext(log),
	}
}

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:                cfg.ServiceName,
		AllowOrigins:               cfg.AllowOrigins,
		RequestContext:             mw.RequestContext,
		FullRecordHandler:          handlerset.FullRecord,
		OfficerAppointmentsHandler: handlerset.OfficerAppointments,
		CompanyOfficersHandler:     handlerset.CompanyOfficers,
	})
}
