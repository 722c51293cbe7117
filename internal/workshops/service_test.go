package workshops

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:workshops_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Workshop{}, &models.WorkshopRegistration{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return conn
}

type testTxRunner struct {
	db *gorm.DB
}

func (r testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func newTestService(t *testing.T) Service {
	t.Helper()
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn), testTxRunner{db: conn})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func createTestWorkshop(t *testing.T, svc Service, maxParticipants int) *models.Workshop {
	t.Helper()
	workshop, err := svc.CreateWorkshop(context.Background(), CreateWorkshopInput{
		Name:            "Block Printing Basics",
		Description:     "Hands-on introduction to block printing.",
		DateTime:        time.Now().Add(14 * 24 * time.Hour),
		Duration:        "3 hours",
		MaxParticipants: maxParticipants,
		Price:           decimal.NewFromInt(500),
		Location:        "Ahmedabad Studio",
	})
	if err != nil {
		t.Fatalf("create workshop: %v", err)
	}
	return workshop
}

func registerTestParticipant(t *testing.T, svc Service, workshopID uuid.UUID, name string) *models.WorkshopRegistration {
	t.Helper()
	registration, err := svc.CreateRegistration(context.Background(), CreateRegistrationInput{
		FullName:       name,
		Age:            21,
		Institution:    "NID",
		EducationLevel: enums.EducationLevelUniversity,
		Email:          "student@example.com",
		ContactNumber:  "9876543210",
		WorkshopID:     workshopID,
	})
	if err != nil {
		t.Fatalf("create registration: %v", err)
	}
	return registration
}

func confirmRegistration(t *testing.T, svc Service, id uuid.UUID) error {
	t.Helper()
	confirmed := enums.RegistrationStatusConfirmed
	_, err := svc.UpdateRegistration(context.Background(), id, UpdateRegistrationInput{Status: &confirmed})
	return err
}

func TestCreateWorkshopDefaultsToUpcoming(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	workshop := createTestWorkshop(t, svc, 10)
	if workshop.Status != enums.WorkshopStatusUpcoming {
		t.Fatalf("expected Upcoming, got %s", workshop.Status)
	}
}

func TestCreateWorkshopRejectsNonPositiveCapacity(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.CreateWorkshop(context.Background(), CreateWorkshopInput{
		Name:            "Broken",
		Description:     "x",
		DateTime:        time.Now(),
		Duration:        "1 hour",
		MaxParticipants: 0,
		Location:        "Studio",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRegistrationStartsPending(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	workshop := createTestWorkshop(t, svc, 10)
	registration := registerTestParticipant(t, svc, workshop.ID, "Asha Patel")
	if registration.Status != enums.RegistrationStatusPending {
		t.Fatalf("expected Pending, got %s", registration.Status)
	}
}

func TestCreateRegistrationRejectsAgeOutOfRange(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 10)

	for _, age := range []int{9, 31} {
		_, err := svc.CreateRegistration(context.Background(), CreateRegistrationInput{
			FullName:       "Out of Range",
			Age:            age,
			Institution:    "NID",
			EducationLevel: enums.EducationLevelCollege,
			Email:          "x@example.com",
			ContactNumber:  "9876543210",
			WorkshopID:     workshop.ID,
		})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("age %d: expected validation error, got %v", age, err)
		}
	}
}

func TestCreateRegistrationRejectsClosedWorkshop(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 10)

	cancelled := enums.WorkshopStatusCancelled
	if _, err := svc.UpdateWorkshop(context.Background(), workshop.ID, UpdateWorkshopInput{Status: &cancelled}); err != nil {
		t.Fatalf("cancel workshop: %v", err)
	}

	_, err := svc.CreateRegistration(context.Background(), CreateRegistrationInput{
		FullName:       "Late Comer",
		Age:            20,
		Institution:    "NID",
		EducationLevel: enums.EducationLevelCollege,
		Email:          "x@example.com",
		ContactNumber:  "9876543210",
		WorkshopID:     workshop.ID,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for cancelled workshop, got %v", err)
	}
}

func TestConfirmRegistrationClaimsSeat(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 2)

	first := registerTestParticipant(t, svc, workshop.ID, "First")
	if err := confirmRegistration(t, svc, first.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	got, err := svc.GetRegistration(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != enums.RegistrationStatusConfirmed {
		t.Fatalf("expected Confirmed, got %s", got.Status)
	}
}

func TestConfirmRegistrationFullWorkshop(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 1)

	first := registerTestParticipant(t, svc, workshop.ID, "First")
	second := registerTestParticipant(t, svc, workshop.ID, "Second")

	if err := confirmRegistration(t, svc, first.ID); err != nil {
		t.Fatalf("confirm first: %v", err)
	}

	err := confirmRegistration(t, svc, second.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeWorkshopFull {
		t.Fatalf("expected workshop full, got %v", err)
	}

	// The failed confirmation must leave the registration untouched.
	got, err := svc.GetRegistration(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != enums.RegistrationStatusPending {
		t.Fatalf("expected Pending after rejected confirm, got %s", got.Status)
	}
}

func TestConfirmRegistrationIdempotent(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 1)

	registration := registerTestParticipant(t, svc, workshop.ID, "Only")
	if err := confirmRegistration(t, svc, registration.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	// Re-confirming an already-Confirmed registration is a plain update and
	// must not trip the capacity guard even at full capacity.
	if err := confirmRegistration(t, svc, registration.ID); err != nil {
		t.Fatalf("re-confirm: %v", err)
	}
}

func TestCancelConfirmedFreesSeat(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 1)

	first := registerTestParticipant(t, svc, workshop.ID, "First")
	second := registerTestParticipant(t, svc, workshop.ID, "Second")

	if err := confirmRegistration(t, svc, first.ID); err != nil {
		t.Fatalf("confirm first: %v", err)
	}

	cancelled := enums.RegistrationStatusCancelled
	if _, err := svc.UpdateRegistration(context.Background(), first.ID, UpdateRegistrationInput{Status: &cancelled}); err != nil {
		t.Fatalf("cancel first: %v", err)
	}

	if err := confirmRegistration(t, svc, second.ID); err != nil {
		t.Fatalf("confirm second after seat freed: %v", err)
	}
}

func TestUpdateRegistrationRequiresFields(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 1)
	registration := registerTestParticipant(t, svc, workshop.ID, "Empty")

	_, err := svc.UpdateRegistration(context.Background(), registration.ID, UpdateRegistrationInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListRegistrationsFilters(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	first := createTestWorkshop(t, svc, 5)
	second := createTestWorkshop(t, svc, 5)

	registerTestParticipant(t, svc, first.ID, "A")
	registerTestParticipant(t, svc, first.ID, "B")
	confirmed := registerTestParticipant(t, svc, second.ID, "C")
	if err := confirmRegistration(t, svc, confirmed.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	pending := enums.RegistrationStatusPending
	registrations, total, err := svc.ListRegistrations(ctx, RegistrationFilter{Status: &pending}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(registrations) != 2 {
		t.Fatalf("expected 2 pending registrations, got total=%d len=%d", total, len(registrations))
	}

	registrations, total, err = svc.ListRegistrations(ctx, RegistrationFilter{WorkshopID: &second.ID}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list by workshop: %v", err)
	}
	if total != 1 || registrations[0].FullName != "C" {
		t.Fatalf("expected only the second workshop's registration, got %+v", registrations)
	}
}

func TestDeleteWorkshop(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	workshop := createTestWorkshop(t, svc, 5)

	if err := svc.DeleteWorkshop(context.Background(), workshop.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err := svc.DeleteWorkshop(context.Background(), workshop.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on double delete, got %v", err)
	}
}
