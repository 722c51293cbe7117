package inquiries

import (
	"github.com/google/uuid"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// CreateInquiryInput holds the validated payload to create an inquiry.
type CreateInquiryInput struct {
	FullName    string
	PhoneNumber string
	BuyOption   enums.BuyOption
	CompanyName *string
	Location    string
	Quantity    int
	ProductID   uuid.UUID
	Variant     string
	Message     string
}

// UpdateInquiryInput is the admin-side mutation set. Only these fields can
// ever be written through an update; anything else in the request body is
// dropped before it reaches here.
type UpdateInquiryInput struct {
	Status     *enums.InquiryStatus
	AdminNotes *string
}

// Filter narrows inquiry listings.
type Filter struct {
	Status    *enums.InquiryStatus
	ProductID *uuid.UUID
}
