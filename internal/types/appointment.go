package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AppointmentDocument is the unit of storage: one logically-consistent
// document per (company_number, appointment_id) key. Deltas replace the
// document wholesale; there is no partial field merge.
type AppointmentDocument struct {
	ID                   uuid.UUID                        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyNumber        string                           `gorm:"column:company_number;not null;index:idx_company_appointment,unique" json:"company_number"`
	AppointmentID        string                           `gorm:"column:appointment_id;not null;index:idx_company_appointment,unique" json:"appointment_id"`
	OfficerID            string                           `gorm:"column:officer_id;not null;index" json:"officer_id"`
	PreviousOfficerID    *string                          `gorm:"column:previous_officer_id" json:"previous_officer_id,omitempty"`
	OfficerRoleSortOrder int                              `gorm:"column:officer_role_sort_order;not null;default:0" json:"officer_role_sort_order"`
	DeltaAt              string                           `gorm:"column:delta_at;not null" json:"delta_at"`
	CompanyName          string                           `gorm:"column:company_name" json:"company_name"`
	CompanyStatus        string                           `gorm:"column:company_status;not null;index" json:"company_status"`
	AppointedOn          *time.Time                       `gorm:"column:appointed_on" json:"appointed_on,omitempty"`
	AppointedBefore      *time.Time                       `gorm:"column:appointed_before" json:"appointed_before,omitempty"`
	ResignedOn           *time.Time                       `gorm:"column:resigned_on;index" json:"resigned_on,omitempty"`
	Data                 datatypes.JSONType[OfficerData]  `gorm:"type:jsonb;column:data" json:"data"`
	Sensitive            datatypes.JSONType[SensitiveData] `gorm:"type:jsonb;column:sensitive_data" json:"sensitive_data"`
	CreatedAt            time.Time                        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time                        `gorm:"not null;default:now()" json:"updated_at"`
}

func (AppointmentDocument) TableName() string { return "company_appointments" }

// Officer returns the decoded public payload.
func (d *AppointmentDocument) Officer() OfficerData { return d.Data.Data() }

// SensitivePayload returns the decoded restricted payload.
func (d *AppointmentDocument) SensitivePayload() SensitiveData { return d.Sensitive.Data() }
