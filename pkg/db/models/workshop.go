package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// Workshop is a scheduled craft workshop with limited seats.
type Workshop struct {
	ID              uuid.UUID            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name            string               `gorm:"column:name;not null" json:"name"`
	Description     string               `gorm:"column:description;not null" json:"description"`
	DateTime        time.Time            `gorm:"column:date_time;not null;index:idx_workshops_date_status" json:"dateTime"`
	Duration        string               `gorm:"column:duration;not null" json:"duration"`
	MaxParticipants int                  `gorm:"column:max_participants;not null" json:"maxParticipants"`
	Price           decimal.Decimal      `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Location        string               `gorm:"column:location;not null" json:"location"`
	Requirements    string               `gorm:"column:requirements;not null;default:''" json:"requirements"`
	Status          enums.WorkshopStatus `gorm:"column:status;not null;default:'Upcoming';index:idx_workshops_date_status" json:"status"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
