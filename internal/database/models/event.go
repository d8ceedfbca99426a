package models

import (
	"time"

	"github.com/google/uuid"
)

// PositionSuper is the supervisory watch role. It is left out of the
// recent watch count but still listed among recent watches.
const PositionSuper = "Super"

// Event is a scheduled watch occurrence owned by one sailor
type Event struct {
	BaseModel
	SailorID uuid.UUID `json:"sailor_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date     time.Time `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Position string    `json:"position" gorm:"size:50;not null" validate:"required,max=50"`
	Active   bool      `json:"active" gorm:"not null"`

	Sailor *Sailor `json:"-" gorm:"foreignKey:SailorID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
