package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// WorkshopRegistration is one attendee's sign-up for a workshop. Confirmed
// registrations count against the workshop's seat capacity.
type WorkshopRegistration struct {
	ID                  uuid.UUID                `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName            string                   `gorm:"column:full_name;not null" json:"fullName"`
	Age                 int                      `gorm:"column:age;not null" json:"age"`
	Institution         string                   `gorm:"column:institution;not null" json:"institution"`
	EducationLevel      enums.EducationLevel     `gorm:"column:education_level;not null" json:"educationLevel"`
	Email               string                   `gorm:"column:email;not null" json:"email"`
	ContactNumber       string                   `gorm:"column:contact_number;not null" json:"contactNumber"`
	WorkshopID          uuid.UUID                `gorm:"column:workshop_id;type:uuid;not null;index:idx_registrations_workshop_status" json:"workshopId"`
	Workshop            *Workshop                `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
	Status              enums.RegistrationStatus `gorm:"column:status;not null;default:'Pending';index:idx_registrations_workshop_status" json:"status"`
	SpecialRequirements string                   `gorm:"column:special_requirements;not null;default:''" json:"specialRequirements"`
	CreatedAt           time.Time                `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time                `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
