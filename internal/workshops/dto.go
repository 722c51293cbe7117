package workshops

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// CreateWorkshopInput is the payload for scheduling a workshop.
type CreateWorkshopInput struct {
	Name            string               `json:"name" validate:"required"`
	Description     string               `json:"description" validate:"required"`
	DateTime        time.Time            `json:"dateTime" validate:"required"`
	Duration        string               `json:"duration" validate:"required"`
	MaxParticipants int                  `json:"maxParticipants" validate:"required,gt=0"`
	Price           decimal.Decimal      `json:"price"`
	Location        string               `json:"location" validate:"required"`
	Requirements    string               `json:"requirements"`
	Status          enums.WorkshopStatus `json:"status"`
}

// UpdateWorkshopInput carries partial workshop updates.
type UpdateWorkshopInput struct {
	Name            *string               `json:"name"`
	Description     *string               `json:"description"`
	DateTime        *time.Time            `json:"dateTime"`
	Duration        *string               `json:"duration"`
	MaxParticipants *int                  `json:"maxParticipants" validate:"omitempty,gt=0"`
	Price           *decimal.Decimal      `json:"price"`
	Location        *string               `json:"location"`
	Requirements    *string               `json:"requirements"`
	Status          *enums.WorkshopStatus `json:"status"`
}

// CreateRegistrationInput is the public sign-up payload.
type CreateRegistrationInput struct {
	FullName            string               `json:"fullName" validate:"required,min=2"`
	Age                 int                  `json:"age" validate:"required,min=10,max=30"`
	Institution         string               `json:"institution" validate:"required"`
	EducationLevel      enums.EducationLevel `json:"educationLevel" validate:"required"`
	Email               string               `json:"email" validate:"required,email"`
	ContactNumber       string               `json:"contactNumber" validate:"required,min=10"`
	WorkshopID          uuid.UUID            `json:"workshopId" validate:"required"`
	SpecialRequirements string               `json:"specialRequirements"`
}

// UpdateRegistrationInput is the admin-side registration update. Only these
// fields can ever be written through an update.
type UpdateRegistrationInput struct {
	Status              *enums.RegistrationStatus `json:"status"`
	SpecialRequirements *string                   `json:"specialRequirements"`
}

// WorkshopFilter narrows workshop listings.
type WorkshopFilter struct {
	Status *enums.WorkshopStatus
}

// RegistrationFilter narrows registration listings.
type RegistrationFilter struct {
	Status     *enums.RegistrationStatus
	WorkshopID *uuid.UUID
}
