package models

import (
	"time"

	"github.com/google/uuid"
)

// Sailor is a tracked crew member with qualification and watch attributes
type Sailor struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	Rate         string     `json:"rate" gorm:"size:20" validate:"max=20"`
	Dept         string     `json:"dept" gorm:"size:50;index" validate:"max=50"`
	Div          string     `json:"div" gorm:"size:50" validate:"max=50"`
	Phone        string     `json:"phone" gorm:"size:30" validate:"max=30"`
	Email        string     `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	WorkEmail    string     `json:"work_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	InTeams      bool       `json:"in_teams" gorm:"not null;default:false"`
	Availability string     `json:"availability" gorm:"type:text"`
	Notes        string     `json:"notes" gorm:"type:text"`
	QualID       *uuid.UUID `json:"qual_id,omitempty" gorm:"type:uuid;index"`
	Quald        bool       `json:"quald" gorm:"not null;default:false;index"`
	QualDate     *time.Time `json:"qualdate,omitempty" gorm:"column:qualdate;type:date"`
	Report       string     `json:"report" gorm:"size:500"`
	Active       bool       `json:"active" gorm:"not null;index"`

	// WatchCount is filled by change-list queries that annotate the
	// recent watch aggregate; it is never stored.
	WatchCount int64 `json:"-" gorm:"->;-:migration"`

	Qual   *Qual   `json:"qual,omitempty" gorm:"foreignKey:QualID;constraint:OnDelete:SET NULL"`
	Events []Event `json:"events,omitempty" gorm:"foreignKey:SailorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Sailor
func (Sailor) TableName() string {
	return "sailors"
}

// Quals returns the names of the sailor's qualifications.
func (s *Sailor) Quals() []string {
	if s.Qual == nil || s.Qual.Name == "" {
		return []string{}
	}
	return []string{s.Qual.Name}
}

// HasReport reports whether a coversheet is attached.
func (s *Sailor) HasReport() bool {
	return s.Report != ""
}
