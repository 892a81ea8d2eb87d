package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/registrydata/appointments-backend/internal/handlers"
	"github.com/registrydata/appointments-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName                string
	AllowOrigins               []string
	RequestContext             *middleware.RequestContext
	FullRecordHandler          *handlers.FullRecordHandler
	OfficerAppointmentsHandler *handlers.OfficerAppointmentsHandler
	CompanyOfficersHandler     *handlers.CompanyOfficersHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-Id", "X-Auth-Privileges"},
	}))
	router.Use(cfg.RequestContext.Handler())

	router.GET("/healthcheck", handlers.HealthCheck)

	fullRecord := router.Group("/company/:company_number/appointments/:appointment_id/full_record")
	{
		fullRecord.GET("", cfg.FullRecordHandler.GetAppointment)
		fullRecord.PUT("", cfg.FullRecordHandler.PutAppointment)
		fullRecord.DELETE("", cfg.FullRecordHandler.DeleteAppointment)
	}

	router.GET("/officers/:officer_id/appointments", cfg.OfficerAppointmentsHandler.ListAppointments)
	router.GET("/company/:company_number/officers", cfg.CompanyOfficersHandler.ListOfficers)

	return router
}
