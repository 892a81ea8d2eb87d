package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
	"github.com/registrydata/appointments-backend/internal/repos"
	"github.com/registrydata/appointments-backend/internal/types"
)

const officerAppointmentsKind = "personal-appointment"

// OfficerListingConfig tunes paging and sorting for the officer listing.
// SortThreshold values of -1 disable the threshold, sorting every result set.
type OfficerListingConfig struct {
	InternalSortThreshold   int
	ExternalSortThreshold   int
	MaxItemsPerPageInternal int
}

// OfficerListingParams are the caller-supplied query options. Nil paging
// fields take the defaults; Filter is the raw query token.
type OfficerListingParams struct {
	Filter       string
	StartIndex   *int
	ItemsPerPage *int
	ReturnCounts bool
}

type OfficerAppointmentsService interface {
	ListAppointments(ctx context.Context, officerID string, params OfficerListingParams) (*types.OfficerAppointmentList, error)
}

type officerAppointmentsService struct {
	repo repos.AppointmentRepo
	cfg  OfficerListingConfig
	log  *logger.Logger
}

func NewOfficerAppointmentsService(repo repos.AppointmentRepo, cfg OfficerListingConfig, baseLog *logger.Logger) OfficerAppointmentsService {
	return &officerAppointmentsService{
		repo: repo,
		cfg:  cfg,
		log:  baseLog.With("service", "OfficerAppointmentsService"),
	}
}

func (s *officerAppointmentsService) ListAppointments(ctx context.Context, officerID string, params OfficerListingParams) (*types.OfficerAppointmentList, error) {
	const op = "services.ListAppointments"

	latest, err := s.repo.FindLatestByOfficer(ctx, nil, officerID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apperr.NotFound(op, fmt.Sprintf("No appointments found for officer [%s]", officerID))
		}
		return nil, apperr.Map(op, err)
	}

	policy := FilterPolicyListing
	if params.ReturnCounts {
		policy = FilterPolicyListingWithCounts
	}
	filter, err := resolveFilter(params.Filter, officerID, policy)
	if err != nil {
		return nil, err
	}

	startIndex := clampStartIndex(params.StartIndex)
	itemsPerPage := clampItemsPerPage(ctx, params.ItemsPerPage, s.cfg.MaxItemsPerPageInternal)

	scope := repos.OfficerQuery{
		OfficerID:       officerID,
		ActiveOnly:      filter.Enabled,
		ExcludeStatuses: filter.ExcludeStatuses,
	}

	total, err := s.repo.CountByOfficer(ctx, nil, scope)
	if err != nil {
		return nil, apperr.Map(op, err)
	}

	scope.Skip = startIndex
	scope.Limit = itemsPerPage
	scope.Sorted = shouldSortByActiveThenResigned(ctx, total,
		s.cfg.InternalSortThreshold, s.cfg.ExternalSortThreshold)

	docs, err := s.repo.QueryByOfficer(ctx, nil, scope)
	if err != nil {
		return nil, apperr.Map(op, err)
	}

	items := make([]types.AppointmentItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, mapAppointmentItem(doc, false))
	}

	officer := latest.Officer()
	list := &types.OfficerAppointmentList{
		Etag:               officer.Etag,
		IsCorporateOfficer: isCorporateRole(officer.OfficerRole),
		ItemsPerPage:       itemsPerPage,
		Kind:               officerAppointmentsKind,
		Links:              types.OfficerListLinks{Self: fmt.Sprintf("/officers/%s/appointments", officerID)},
		Items:              items,
		Name:               mapOfficerName(officer),
		StartIndex:         startIndex,
		TotalResults:       total,
	}
	if !suppressesPersonalData(officer.OfficerRole) {
		sensitive := latest.SensitivePayload()
		list.DateOfBirth = mapDateOfBirth(sensitive.DateOfBirth, false)
	}

	if params.ReturnCounts {
		counts, err := s.resolveCounts(ctx, officerID, total, filter)
		if err != nil {
			return nil, apperr.Map(op, err)
		}
		list.ActiveCount = &counts.Active
		list.InactiveCount = &counts.Inactive
		list.ResignedCount = &counts.Resigned
	}

	s.log.Debug("officer appointments listed",
		"officer_id", officerID, "total_results", total, "items", len(items))
	return list, nil
}

// resolveCounts derives the count block. With the active filter on, every
// matched result is active so the stored counts are not consulted. Without
// it the inactive and resigned counts are fetched concurrently and the
// active count is the remainder, floored at zero against inconsistent data.
func (s *officerAppointmentsService) resolveCounts(ctx context.Context, officerID string, total int, filter Filter) (types.AppointmentCounts, error) {
	if filter.Enabled {
		return types.AppointmentCounts{Total: total, Active: total}, nil
	}

	var inactive, resigned int
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		inactive, err = s.repo.CountInactiveByOfficer(groupCtx, nil, officerID)
		return err
	})
	group.Go(func() error {
		var err error
		resigned, err = s.repo.CountResignedByOfficer(groupCtx, nil, officerID)
		return err
	})
	if err := group.Wait(); err != nil {
		return types.AppointmentCounts{}, err
	}

	active := total - inactive - resigned
	if active < 0 {
		active = 0
	}
	return types.AppointmentCounts{
		Total:    total,
		Active:   active,
		Inactive: inactive,
		Resigned: resigned,
	}, nil
}
