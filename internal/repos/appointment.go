package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/registrydata/appointments-backend/internal/pkg/logger"
	"github.com/registrydata/appointments-backend/internal/types"
)

// OfficerQuery narrows the officer listing query. ExcludeStatuses and
// ActiveOnly mirror the two filter dimensions; Sorted selects the
// active-appointments-first ordering, otherwise natural storage order is
// returned untouched.
type OfficerQuery struct {
	OfficerID       string
	ExcludeStatuses []string
	ActiveOnly      bool
	Skip            int
	Limit           int
	Sorted          bool
}

type AppointmentRepo interface {
	FindByCompanyAndID(ctx context.Context, tx *gorm.DB, companyNumber, appointmentID string) (*types.AppointmentDocument, error)
	FindLatestByOfficer(ctx context.Context, tx *gorm.DB, officerID string) (*types.AppointmentDocument, error)
	Save(ctx context.Context, tx *gorm.DB, doc *types.AppointmentDocument) error
	DeleteByCompanyAndID(ctx context.Context, tx *gorm.DB, companyNumber, appointmentID string) error
	QueryByOfficer(ctx context.Context, tx *gorm.DB, q OfficerQuery) ([]*types.AppointmentDocument, error)
	CountByOfficer(ctx context.Context, tx *gorm.DB, q OfficerQuery) (int, error)
	CountInactiveByOfficer(ctx context.Context, tx *gorm.DB, officerID string) (int, error)
	CountResignedByOfficer(ctx context.Context, tx *gorm.DB, officerID string) (int, error)
	QueryByCompany(ctx context.Context, tx *gorm.DB, companyNumber string, roles []string, skip, limit int) ([]*types.AppointmentDocument, error)
}

type appointmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAppointmentRepo(db *gorm.DB, baseLog *logger.Logger) AppointmentRepo {
	repoLog := baseLog.With("repo", "AppointmentRepo")
	return &appointmentRepo{db: db, log: repoLog}
}

func (r *appointmentRepo) FindByCompanyAndID(ctx context.Context, tx *gorm.DB, companyNumber, appointmentID string) (*types.AppointmentDocument, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var doc types.AppointmentDocument
	if err := transaction.WithContext(ctx).
		Where("company_number = ? AND appointment_id = ?", companyNumber, appointmentID).
		First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *appointmentRepo) FindLatestByOfficer(ctx context.Context, tx *gorm.DB, officerID string) (*types.AppointmentDocument, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var doc types.AppointmentDocument
	if err := transaction.WithContext(ctx).
		Where("officer_id = ?", officerID).
		Order("updated_at DESC").
		First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save is a full replace keyed on (company_number, appointment_id). The
// candidate already carries the complete payload from the transform stage.
func (r *appointmentRepo) Save(ctx context.Context, tx *gorm.DB, doc *types.AppointmentDocument) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if doc == nil {
		return nil
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_number"}, {Name: "appointment_id"}},
			UpdateAll: true,
		}).
		Create(doc).Error
}

func (r *appointmentRepo) DeleteByCompanyAndID(ctx context.Context, tx *gorm.DB, companyNumber, appointmentID string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("company_number = ? AND appointment_id = ?", companyNumber, appointmentID).
		Delete(&types.AppointmentDocument{}).Error
}

func (r *appointmentRepo) QueryByOfficer(ctx context.Context, tx *gorm.DB, q OfficerQuery) ([]*types.AppointmentDocument, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AppointmentDocument
	if q.OfficerID == "" {
		return results, nil
	}

	query := r.officerScope(transaction.WithContext(ctx), q)
	if q.Sorted {
		// Active appointments first ordered by appointment date descending
		// (appointed_before stands in when appointed_on is absent), then
		// resigned appointments by resignation date descending.
		query = query.Order("(resigned_on IS NOT NULL) ASC").
			Order("resigned_on DESC").
			Order("COALESCE(appointed_on, appointed_before) DESC")
	}
	if q.Skip > 0 {
		query = query.Offset(q.Skip)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *appointmentRepo) CountByOfficer(ctx context.Context, tx *gorm.DB, q OfficerQuery) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := r.officerScope(transaction.WithContext(ctx).Model(&types.AppointmentDocument{}), q).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountInactiveByOfficer counts unresigned appointments at ceased companies.
// The ceased set here is {dissolved, closed, converted-closed}; the listing
// filter uses a different set on purpose (see services.Filter).
func (r *appointmentRepo) CountInactiveByOfficer(ctx context.Context, tx *gorm.DB, officerID string) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AppointmentDocument{}).
		Where("officer_id = ? AND resigned_on IS NULL AND company_status IN ?",
			officerID, []string{"dissolved", "closed", "converted-closed"}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *appointmentRepo) CountResignedByOfficer(ctx context.Context, tx *gorm.DB, officerID string) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AppointmentDocument{}).
		Where("officer_id = ? AND resigned_on IS NOT NULL", officerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *appointmentRepo) QueryByCompany(ctx context.Context, tx *gorm.DB, companyNumber string, roles []string, skip, limit int) ([]*types.AppointmentDocument, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AppointmentDocument
	if companyNumber == "" {
		return results, nil
	}

	query := transaction.WithContext(ctx).
		Where("company_number = ?", companyNumber).
		Order("officer_role_sort_order ASC").
		Order("COALESCE(appointed_on, appointed_before) DESC")
	if len(roles) > 0 {
		query = query.Where("data->>'officer_role' IN ?", roles)
	}
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *appointmentRepo) officerScope(query *gorm.DB, q OfficerQuery) *gorm.DB {
	query = query.Where("officer_id = ?", q.OfficerID)
	if q.ActiveOnly {
		query = query.Where("resigned_on IS NULL")
	}
	if len(q.ExcludeStatuses) > 0 {
		query = query.Where("company_status NOT IN ?", q.ExcludeStatuses)
	}
	return query
}

// IsNotFound reports whether err is the store's missing-record sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
