package testutils

import (
	"fmt"
	"time"

	"watchbill-admin/internal/database/models"

	"github.com/google/uuid"
)

// QualFactory provides methods to create test Qual data
type QualFactory struct{}

// NewQualFactory creates a new QualFactory
func NewQualFactory() *QualFactory {
	return &QualFactory{}
}

// Create creates a test Qual with default values
func (f *QualFactory) Create() *models.Qual {
	return &models.Qual{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Helm",
		Description: "Helmsman under instruction of the OOD",
	}
}

// WithName sets a custom name for the qual
func (f *QualFactory) WithName(name string) *models.Qual {
	qual := f.Create()
	qual.Name = name
	qual.Description = name + " watch station"
	return qual
}

// SailorFactory provides methods to create test Sailor data
type SailorFactory struct{}

// NewSailorFactory creates a new SailorFactory
func NewSailorFactory() *SailorFactory {
	return &SailorFactory{}
}

// Create creates an active, unqualified test Sailor
func (f *SailorFactory) Create() *models.Sailor {
	return &models.Sailor{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Doe, J",
		Rate:         "BM3",
		Dept:         "Deck",
		Div:          "1st",
		Phone:        "555-0100",
		Email:        "jdoe@example.com",
		WorkEmail:    "j.doe@navy.example",
		Availability: "weekdays",
		Active:       true,
	}
}

// WithName sets a custom name for the sailor
func (f *SailorFactory) WithName(name string) *models.Sailor {
	sailor := f.Create()
	sailor.Name = name
	return sailor
}

// WithQual qualifies the sailor on the given qual as of qualDate
func (f *SailorFactory) WithQual(name string, qual *models.Qual, qualDate time.Time) *models.Sailor {
	sailor := f.WithName(name)
	sailor.QualID = &qual.ID
	sailor.Qual = qual
	sailor.Quald = true
	sailor.QualDate = &qualDate
	return sailor
}

// Inactive creates a sailor that is no longer on the roster
func (f *SailorFactory) Inactive(name string) *models.Sailor {
	sailor := f.WithName(name)
	sailor.Active = false
	return sailor
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates an active watch for the sailor on the given date
func (f *EventFactory) Create(sailorID uuid.UUID, date time.Time, position string) *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SailorID: sailorID,
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Position: position,
		Active:   true,
	}
}

// DaysAgo creates an active watch n days before now
func (f *EventFactory) DaysAgo(sailorID uuid.UUID, n int, position string) *models.Event {
	return f.Create(sailorID, time.Now().UTC().AddDate(0, 0, -n), position)
}

// FactorySet provides access to all factories
type FactorySet struct {
	Qual   *QualFactory
	Sailor *SailorFactory
	Event  *EventFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Qual:   NewQualFactory(),
		Sailor: NewSailorFactory(),
		Event:  NewEventFactory(),
	}
}

// CreateRoster builds n active sailors named "Sailor 00".."Sailor n-1"
// sharing one qual, each with i recent watches.
func (fs *FactorySet) CreateRoster(n int) (*models.Qual, []*models.Sailor, []*models.Event) {
	qual := fs.Qual.Create()
	sailors := make([]*models.Sailor, 0, n)
	var events []*models.Event
	for i := 0; i < n; i++ {
		sailor := fs.Sailor.WithQual(fmt.Sprintf("Sailor %02d", i), qual, time.Now().AddDate(0, -i, 0))
		sailors = append(sailors, sailor)
		for j := 0; j < i; j++ {
			events = append(events, fs.Event.DaysAgo(sailor.ID, j+1, "Helm"))
		}
	}
	return qual, sailors, events
}
