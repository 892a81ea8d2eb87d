package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/clients/companymetrics"
	"github.com/registrydata/appointments-backend/internal/clients/companyprofile"
	"github.com/registrydata/appointments-backend/internal/clients/companyregister"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
	"github.com/registrydata/appointments-backend/internal/repos"
	"github.com/registrydata/appointments-backend/internal/types"
)

const companyOfficersKind = "officer-list"

// ceasedCompanyStatuses marks company states whose unresigned appointments
// count as inactive rather than active in the company listing counts.
var ceasedCompanyStatuses = map[string]struct{}{
	string(types.CompanyStatusDissolved):       {},
	string(types.CompanyStatusClosed):          {},
	string(types.CompanyStatusConvertedClosed): {},
}

// CompanyListingParams carries the query options for the company officer
// listing. RegisterView restricts the listing to officers on a specific
// statutory register and exposes the day element of dates of birth; it is
// only honoured for internal callers.
type CompanyListingParams struct {
	StartIndex   *int
	ItemsPerPage *int
	RegisterView bool
	RegisterType string
}

type CompanyOfficersService interface {
	ListOfficers(ctx context.Context, companyNumber string, params CompanyListingParams) (*types.CompanyOfficerList, error)
}

type companyOfficersService struct {
	repo     repos.AppointmentRepo
	profiles companyprofile.Client
	metrics  companymetrics.Client
	register companyregister.Client
	cfg      OfficerListingConfig
	log      *logger.Logger
}

func NewCompanyOfficersService(
	repo repos.AppointmentRepo,
	profiles companyprofile.Client,
	metrics companymetrics.Client,
	register companyregister.Client,
	cfg OfficerListingConfig,
	baseLog *logger.Logger,
) CompanyOfficersService {
	return &companyOfficersService{
		repo:     repo,
		profiles: profiles,
		metrics:  metrics,
		register: register,
		cfg:      cfg,
		log:      baseLog.With("service", "CompanyOfficersService"),
	}
}

func (s *companyOfficersService) ListOfficers(ctx context.Context, companyNumber string, params CompanyListingParams) (*types.CompanyOfficerList, error) {
	const op = "services.ListOfficers"

	registerView := params.RegisterView && hasInternalAppPrivileges(ctx)

	var roles []string
	if registerView {
		roles = rolesForRegisterType(params.RegisterType)
		if roles == nil {
			return nil, apperr.BadRequest(op,
				fmt.Sprintf("Invalid register_type parameter supplied: %s", params.RegisterType))
		}
	}

	startIndex := clampStartIndex(params.StartIndex)
	itemsPerPage := clampItemsPerPage(ctx, params.ItemsPerPage, s.cfg.MaxItemsPerPageInternal)

	var (
		profile *companyprofile.Profile
		counts  *companymetrics.OfficerCounts
		docs    []*types.AppointmentDocument
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		profile, err = s.profiles.GetProfile(groupCtx, companyNumber)
		return err
	})
	group.Go(func() error {
		var err error
		counts, err = s.metrics.GetOfficerCounts(groupCtx, companyNumber)
		return err
	})
	if registerView {
		registerType := params.RegisterType
		group.Go(func() error {
			held, err := s.register.IsRegisterHeldAtRegistry(groupCtx, companyNumber, registerType)
			if err != nil {
				return err
			}
			if !held {
				return apperr.NotFound(op,
					fmt.Sprintf("Register [%s] for company [%s] is not held at the registry", registerType, companyNumber))
			}
			return nil
		})
	}
	group.Go(func() error {
		var err error
		docs, err = s.repo.QueryByCompany(groupCtx, nil, companyNumber, roles, startIndex, itemsPerPage)
		if err != nil {
			return apperr.Map(op, err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, apperr.NotFound(op,
			fmt.Sprintf("No officers found for company [%s]", companyNumber))
	}

	items := make([]types.AppointmentItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, mapAppointmentItem(doc, registerView))
	}

	active, inactive := splitActiveCounts(profile.CompanyStatus, counts)

	list := &types.CompanyOfficerList{
		Items:         items,
		ItemsPerPage:  itemsPerPage,
		Kind:          companyOfficersKind,
		Links:         types.OfficerListLinks{Self: fmt.Sprintf("/company/%s/officers", companyNumber)},
		StartIndex:    startIndex,
		TotalResults:  counts.Total,
		ActiveCount:   active,
		InactiveCount: inactive,
		ResignedCount: counts.Resigned,
	}

	s.log.Debug("company officers listed",
		"company_number", companyNumber, "total_results", counts.Total,
		"items", len(items), "register_view", registerView)
	return list, nil
}

// splitActiveCounts reassigns current appointments at a ceased company from
// the active column to the inactive one.
func splitActiveCounts(companyStatus string, counts *companymetrics.OfficerCounts) (active, inactive int) {
	if _, ceased := ceasedCompanyStatuses[companyStatus]; ceased {
		return 0, counts.Active
	}
	return counts.Active, 0
}
