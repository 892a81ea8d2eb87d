package app

import (
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
	"github.com/registrydata/appointments-backend/internal/services"
)

type Services struct {
	FullRecord          services.FullRecordService
	OfficerAppointments services.OfficerAppointmentsService
	CompanyOfficers     services.CompanyOfficersService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	listingCfg := services.OfficerListingConfig{
		InternalSortThreshold:   cfg.SortThresholdInternal,
		ExternalSortThreshold:   cfg.SortThresholdExternal,
		MaxItemsPerPageInternal: cfg.MaxItemsPerPageInternal,
	}

	return Services{
		FullRecord: services.NewFullRecordService(
			reposet.Appointments,
			clients.ResourceChanged,
			clients.OfficerMerge,
			cfg.DeltaAtEncoding,
			log,
		),
		OfficerAppointments: services.NewOfficerAppointmentsService(
			reposet.Appointments,
			listingCfg,
			log,
		),
		CompanyOfficers: services.NewCompanyOfficersService(
			reposet.Appointments,
			clients.CompanyProfile,
			clients.CompanyMetrics,
			clients.CompanyRegister,
			listingCfg,
			log,
		),
	}
}
