package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// Inquiry is a customer purchase inquiry. It references the product it was
// raised against but does not own it; the product's lifecycle is independent.
type Inquiry struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName    string              `gorm:"column:full_name;not null" json:"fullName"`
	PhoneNumber string              `gorm:"column:phone_number;not null" json:"phoneNumber"`
	BuyOption   enums.BuyOption     `gorm:"column:buy_option;not null" json:"buyOption"`
	CompanyName *string             `gorm:"column:company_name" json:"companyName,omitempty"`
	Location    string              `gorm:"column:location;not null" json:"location"`
	Quantity    int                 `gorm:"column:quantity;not null" json:"quantity"`
	ProductID   uuid.UUID           `gorm:"column:product_id;type:uuid;not null;index:idx_inquiries_product_status" json:"productId"`
	Product     *Product            `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant     string              `gorm:"column:variant;not null;default:''" json:"variant"`
	Status      enums.InquiryStatus `gorm:"column:status;not null;default:'Pending';index:idx_inquiries_product_status" json:"status"`
	Message     string              `gorm:"column:message;not null;default:''" json:"message"`
	AdminNotes  string              `gorm:"column:admin_notes;not null;default:''" json:"adminNotes"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
