package services

import (
	"context"
	"fmt"

	"github.com/registrydata/appointments-backend/internal/apperr"
	"github.com/registrydata/appointments-backend/internal/clients/officermerge"
	"github.com/registrydata/appointments-backend/internal/clients/resourcechanged"
	"github.com/registrydata/appointments-backend/internal/deltaversion"
	"github.com/registrydata/appointments-backend/internal/pkg/logger"
	"github.com/registrydata/appointments-backend/internal/repos"
	"github.com/registrydata/appointments-backend/internal/types"
)

// UpsertOutcome is the observable result of one delta upsert. The write and
// the downstream side effects are two independently-failable steps; a
// committed write whose side effects failed is PartialSuccess, never hidden
// inside a generic error.
type UpsertOutcome int

const (
	UpsertOutcomeNone UpsertOutcome = iota
	// UpsertApplied means the write committed and all side effects ran.
	UpsertApplied
	// UpsertSupersededByStale means the stored record already carries a
	// version at or past the incoming one. Strict no-op: no write, no merge,
	// no notification. Redelivered duplicates land here; a caller that needs
	// the notification re-sent must re-send with a fresh deltaAt.
	UpsertSupersededByStale
	// UpsertPartialSuccess means the write committed but the merge trigger
	// or the notifier failed afterwards. The write is never undone.
	UpsertPartialSuccess
)

// DeleteParameters carries enough officer identity to construct a tombstone
// notification even when no record exists.
type DeleteParameters struct {
	CompanyNumber string
	AppointmentID string
	DeltaAt       string
	OfficerID     string
}

type FullRecordService interface {
	GetAppointment(ctx context.Context, companyNumber, appointmentID string) (*types.FullRecordView, error)
	UpsertAppointmentDelta(ctx context.Context, delta types.FullRecordDelta) (UpsertOutcome, error)
	DeleteAppointmentDelta(ctx context.Context, params DeleteParameters) error
}

type fullRecordService struct {
	repo     repos.AppointmentRepo
	notifier resourcechanged.Client
	merger   officermerge.Publisher
	encoding deltaversion.Encoding
	log      *logger.Logger
}

func NewFullRecordService(
	repo repos.AppointmentRepo,
	notifier resourcechanged.Client,
	merger officermerge.Publisher,
	encoding deltaversion.Encoding,
	baseLog *logger.Logger,
) FullRecordService {
	return &fullRecordService{
		repo:     repo,
		notifier: notifier,
		merger:   merger,
		encoding: encoding,
		log:      baseLog.With("service", "FullRecordService"),
	}
}

func (s *fullRecordService) GetAppointment(ctx context.Context, companyNumber, appointmentID string) (*types.FullRecordView, error) {
	const op = "services.GetAppointment"

	s.log.Debug("fetching appointment", "company_number", companyNumber, "appointment_id", appointmentID)
	doc, err := s.repo.FindByCompanyAndID(ctx, nil, companyNumber, appointmentID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apperr.NotFound(op,
				fmt.Sprintf("Appointment [%s] for company [%s] not found", appointmentID, companyNumber))
		}
		return nil, apperr.Map(op, err)
	}
	view := mapFullRecordView(doc)
	return &view, nil
}

func (s *fullRecordService) UpsertAppointmentDelta(ctx context.Context, delta types.FullRecordDelta) (UpsertOutcome, error) {
	const op = "services.UpsertAppointmentDelta"

	candidate, err := transformDelta(delta)
	if err != nil {
		return UpsertOutcomeNone, err
	}

	existing, err := s.repo.FindByCompanyAndID(ctx, nil, candidate.CompanyNumber, candidate.AppointmentID)
	if err != nil && !repos.IsNotFound(err) {
		return UpsertOutcomeNone, apperr.Unavailable(op, "error reading appointment store", err)
	}

	if existing != nil {
		if deltaversion.IsStale(s.version(existing.DeltaAt), s.version(candidate.DeltaAt)) {
			s.log.Error("received stale delta",
				"appointment_id", candidate.AppointmentID,
				"incoming_delta_at", candidate.DeltaAt,
				"existing_delta_at", existing.DeltaAt)
			return UpsertSupersededByStale, apperr.Conflict(op,
				fmt.Sprintf("stale delta for appointment [%s]", candidate.AppointmentID))
		}
		// Keep the storage identity stable across replaces.
		candidate.ID = existing.ID
		candidate.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, nil, candidate); err != nil {
		return UpsertOutcomeNone, apperr.Unavailable(op, "error writing appointment store", err)
	}

	if oldOfficerID := mergeCandidate(existing, candidate); oldOfficerID != "" {
		if err := s.merger.Merge(ctx, candidate.OfficerID, oldOfficerID); err != nil {
			s.log.Error("officer merge failed after committed write",
				"appointment_id", candidate.AppointmentID, "error", err)
			return UpsertPartialSuccess, apperr.Unavailable(op, "error invoking officer merge", err)
		}
	}

	if err := s.notifier.Notify(ctx, resourcechanged.Request{
		CompanyNumber: candidate.CompanyNumber,
		AppointmentID: candidate.AppointmentID,
		IsDelete:      false,
	}); err != nil {
		s.log.Error("change notification failed after committed write",
			"appointment_id", candidate.AppointmentID, "error", err)
		return UpsertPartialSuccess, apperr.Unavailable(op, "error publishing change notification", err)
	}

	s.log.Debug("appointment delta applied",
		"company_number", candidate.CompanyNumber, "appointment_id", candidate.AppointmentID)
	return UpsertApplied, nil
}

func (s *fullRecordService) DeleteAppointmentDelta(ctx context.Context, params DeleteParameters) error {
	const op = "services.DeleteAppointmentDelta"

	if isBlank(params.DeltaAt) {
		return apperr.BadRequest(op, "deltaAt is null or empty")
	}

	s.log.Info("deleting appointment",
		"company_number", params.CompanyNumber, "appointment_id", params.AppointmentID)

	existing, err := s.repo.FindByCompanyAndID(ctx, nil, params.CompanyNumber, params.AppointmentID)
	if err != nil && !repos.IsNotFound(err) {
		return apperr.Unavailable(op, "error reading appointment store", err)
	}

	if existing == nil {
		// Upstream consistency requires the tombstone either way.
		s.log.Info("appointment not found, notifying delete anyway",
			"company_number", params.CompanyNumber, "appointment_id", params.AppointmentID)
		return s.notifyDelete(ctx, op, params.CompanyNumber, params.AppointmentID,
			tombstoneSummary(params.CompanyNumber, params.AppointmentID, params.OfficerID))
	}

	if deltaversion.IsStale(s.version(existing.DeltaAt), s.version(params.DeltaAt)) {
		s.log.Error("received stale delete delta",
			"appointment_id", params.AppointmentID,
			"incoming_delta_at", params.DeltaAt,
			"existing_delta_at", existing.DeltaAt)
		return apperr.Conflict(op,
			fmt.Sprintf("stale delete delta for appointment [%s]", params.AppointmentID))
	}

	if err := s.repo.DeleteByCompanyAndID(ctx, nil, params.CompanyNumber, params.AppointmentID); err != nil {
		return apperr.Unavailable(op, "error deleting from appointment store", err)
	}

	return s.notifyDelete(ctx, op, params.CompanyNumber, params.AppointmentID, mapOfficerSummary(existing))
}

func (s *fullRecordService) notifyDelete(ctx context.Context, op, companyNumber, appointmentID string, summary types.OfficerSummary) error {
	payload, err := pruneNulls(summary)
	if err != nil {
		return apperr.Unavailable(op, "failed to serialise officer summary", err)
	}
	if err := s.notifier.Notify(ctx, resourcechanged.Request{
		CompanyNumber: companyNumber,
		AppointmentID: appointmentID,
		Data:          payload,
		IsDelete:      true,
	}); err != nil {
		return apperr.Unavailable(op, "error publishing delete notification", err)
	}
	s.log.Debug("delete notification published",
		"company_number", companyNumber, "appointment_id", appointmentID)
	return nil
}

func (s *fullRecordService) version(raw string) deltaversion.Version {
	if s.encoding == deltaversion.EncodingInstant {
		v, err := deltaversion.ParseTimestamp(raw)
		if err != nil {
			// An unparseable stored or incoming marker cannot win a freshness
			// comparison; FromString degrades to the documented lexicographic
			// ordering of the wire form, which agrees with chronological
			// ordering for well-formed fixed-width timestamps.
			return deltaversion.FromString(raw)
		}
		return v
	}
	return deltaversion.FromString(raw)
}

// mergeCandidate decides whether an accepted write revealed an officer
// identity change, returning the superseded officer id. Fires only after
// the write has committed.
func mergeCandidate(existing, candidate *types.AppointmentDocument) string {
	if existing != nil && existing.OfficerID != candidate.OfficerID {
		return existing.OfficerID
	}
	if candidate.PreviousOfficerID == nil {
		return ""
	}
	previous := *candidate.PreviousOfficerID
	if previous == "" || previous == candidate.OfficerID {
		return ""
	}
	if existing == nil || previous != existing.OfficerID {
		return previous
	}
	return ""
}
