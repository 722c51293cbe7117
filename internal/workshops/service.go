package workshops

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes workshop scheduling and registration management.
type Service interface {
	CreateWorkshop(ctx context.Context, input CreateWorkshopInput) (*models.Workshop, error)
	GetWorkshop(ctx context.Context, id uuid.UUID) (*models.Workshop, error)
	ListWorkshops(ctx context.Context, filter WorkshopFilter, page pagination.Params) ([]models.Workshop, int64, error)
	UpdateWorkshop(ctx context.Context, id uuid.UUID, input UpdateWorkshopInput) (*models.Workshop, error)
	DeleteWorkshop(ctx context.Context, id uuid.UUID) error

	CreateRegistration(ctx context.Context, input CreateRegistrationInput) (*models.WorkshopRegistration, error)
	GetRegistration(ctx context.Context, id uuid.UUID) (*models.WorkshopRegistration, error)
	ListRegistrations(ctx context.Context, filter RegistrationFilter, page pagination.Params) ([]models.WorkshopRegistration, int64, error)
	UpdateRegistration(ctx context.Context, id uuid.UUID, input UpdateRegistrationInput) (*models.WorkshopRegistration, error)
	DeleteRegistration(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs a workshop service instance.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("workshop repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) CreateWorkshop(ctx context.Context, input CreateWorkshopInput) (*models.Workshop, error) {
	if input.MaxParticipants <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "maxParticipants must be positive")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	status := input.Status
	if status == "" {
		status = enums.WorkshopStatusUpcoming
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid workshop status")
	}

	workshop := &models.Workshop{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		DateTime:        input.DateTime,
		Duration:        input.Duration,
		MaxParticipants: input.MaxParticipants,
		Price:           input.Price,
		Location:        input.Location,
		Requirements:    input.Requirements,
		Status:          status,
	}
	if _, err := s.repo.CreateWorkshop(ctx, workshop); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create workshop")
	}
	return workshop, nil
}

func (s *service) GetWorkshop(ctx context.Context, id uuid.UUID) (*models.Workshop, error) {
	workshop, err := s.repo.FindWorkshopByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "workshop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load workshop")
	}
	return workshop, nil
}

func (s *service) ListWorkshops(ctx context.Context, filter WorkshopFilter, page pagination.Params) ([]models.Workshop, int64, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
	}
	workshops, total, err := s.repo.ListWorkshops(ctx, filter, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list workshops")
	}
	return workshops, total, nil
}

func (s *service) UpdateWorkshop(ctx context.Context, id uuid.UUID, input UpdateWorkshopInput) (*models.Workshop, error) {
	if _, err := s.GetWorkshop(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DateTime != nil {
		updates["date_time"] = *input.DateTime
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.MaxParticipants != nil {
		if *input.MaxParticipants <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "maxParticipants must be positive")
		}
		updates["max_participants"] = *input.MaxParticipants
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		updates["price"] = *input.Price
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Requirements != nil {
		updates["requirements"] = *input.Requirements
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid workshop status")
		}
		updates["status"] = *input.Status
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateWorkshop(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update workshop")
		}
	}
	return s.GetWorkshop(ctx, id)
}

func (s *service) DeleteWorkshop(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetWorkshop(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteWorkshop(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete workshop")
	}
	return nil
}

func (s *service) CreateRegistration(ctx context.Context, input CreateRegistrationInput) (*models.WorkshopRegistration, error) {
	if input.Age < 10 || input.Age > 30 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "age must be between 10 and 30")
	}
	if !input.EducationLevel.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid education level")
	}

	workshop, err := s.GetWorkshop(ctx, input.WorkshopID)
	if err != nil {
		return nil, err
	}
	if workshop.Status == enums.WorkshopStatusCancelled || workshop.Status == enums.WorkshopStatusCompleted {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "workshop is no longer open for registration")
	}

	registration := &models.WorkshopRegistration{
		ID:                  uuid.New(),
		FullName:            input.FullName,
		Age:                 input.Age,
		Institution:         input.Institution,
		EducationLevel:      input.EducationLevel,
		Email:               input.Email,
		ContactNumber:       input.ContactNumber,
		WorkshopID:          input.WorkshopID,
		Status:              enums.RegistrationStatusPending,
		SpecialRequirements: input.SpecialRequirements,
	}
	if _, err := s.repo.CreateRegistration(ctx, registration); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create registration")
	}
	registration.Workshop = workshop
	return registration, nil
}

func (s *service) GetRegistration(ctx context.Context, id uuid.UUID) (*models.WorkshopRegistration, error) {
	registration, err := s.repo.FindRegistrationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "registration not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load registration")
	}
	return registration, nil
}

func (s *service) ListRegistrations(ctx context.Context, filter RegistrationFilter, page pagination.Params) ([]models.WorkshopRegistration, int64, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
	}
	registrations, total, err := s.repo.ListRegistrations(ctx, filter, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list registrations")
	}
	return registrations, total, nil
}

// UpdateRegistration applies the admin allowlist to a registration. The first
// transition into Confirmed claims one of the workshop's seats; the capacity
// check and the status write commit or abort as one unit.
func (s *service) UpdateRegistration(ctx context.Context, id uuid.UUID, input UpdateRegistrationInput) (*models.WorkshopRegistration, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}
	if input.Status == nil && input.SpecialRequirements == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable fields supplied")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		registration, err := repo.FindRegistrationByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "registration not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load registration")
		}

		confirming := input.Status != nil &&
			*input.Status == enums.RegistrationStatusConfirmed &&
			registration.Status != enums.RegistrationStatusConfirmed

		if confirming {
			workshop, err := repo.FindWorkshopByID(ctx, registration.WorkshopID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "workshop not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load workshop")
			}

			confirmed, err := repo.CountConfirmed(ctx, workshop.ID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count confirmed registrations")
			}
			if confirmed >= int64(workshop.MaxParticipants) {
				return pkgerrors.New(pkgerrors.CodeWorkshopFull, "workshop is full").
					WithDetails(map[string]any{
						"workshopId":      workshop.ID,
						"maxParticipants": workshop.MaxParticipants,
					})
			}
		}

		updates := map[string]any{}
		if input.Status != nil {
			updates["status"] = *input.Status
		}
		if input.SpecialRequirements != nil {
			updates["special_requirements"] = *input.SpecialRequirements
		}
		if err := repo.UpdateRegistration(ctx, registration.ID, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update registration")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetRegistration(ctx, id)
}

func (s *service) DeleteRegistration(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRegistration(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteRegistration(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete registration")
	}
	return nil
}
