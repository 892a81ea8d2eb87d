package app

import (
	"fmt"

	"github.com/registrydata/appointments-backend/internal/clients/companymetrics"
	"github.com/registrydata/appointments-backend/internal/clients/companyprofile"
	"github.com/registrydata/appointments-backend/internal/clients/companyregister"
	"github.com/registrydata/appointments-backend/internal/clients/officermerge"
	"github.com/registrydata/appointments-backend/internal/clients/resourcechanged"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
)

type Clients struct {
	ResourceChanged resourcechanged.Client
	OfficerMerge    officermerge.Publisher
	CompanyProfile  companyprofile.Client
	CompanyMetrics  companymetrics.Client
	CompanyRegister companyregister.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	changed, err := resourcechanged.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init resource-changed client: %w", err)
	}
	merge, err := officermerge.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init officer-merge publisher: %w", err)
	}
	profiles, err := companyprofile.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init company-profile client: %w", err)
	}
	metrics, err := companymetrics.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init company-metrics client: %w", err)
	}
	registers, err := companyregister.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init company-register client: %w", err)
	}

	return Clients{
		ResourceChanged: changed,
		OfficerMerge:    merge,
		CompanyProfile:  profiles,
		CompanyMetrics:  metrics,
		CompanyRegister: registers,
	}, nil
}
