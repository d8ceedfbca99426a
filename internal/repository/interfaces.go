package repository

import (
	"time"

	"watchbill-admin/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SailorRepositoryInterface defines the interface for sailor repository operations
type SailorRepositoryInterface interface {
	Create(sailor *models.Sailor) error
	GetByID(id uuid.UUID) (*models.Sailor, error)
	GetByIDs(ids []uuid.UUID, since time.Time) ([]models.Sailor, error)
	GetByName(name string) (*models.Sailor, error)
	ListAnnotated(since time.Time, orderColumn string, desc bool) ([]models.Sailor, error)
	ListActive(since time.Time, includeInactive bool) ([]models.Sailor, error)
	Update(sailor *models.Sailor) error
	UpdateNotes(id uuid.UUID, notes string) error
}

// QualRepositoryInterface defines the interface for qual repository operations
type QualRepositoryInterface interface {
	Create(qual *models.Qual) error
	GetByID(id uuid.UUID) (*models.Qual, error)
	GetByName(name string) (*models.Qual, error)
	GetAll() ([]models.Qual, error)
	Update(qual *models.Qual) error
}

// EventRepositoryInterface defines the interface for watch event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	CreateBatch(events []models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
	Exists(sailorID uuid.UUID, date time.Time, position string) (bool, error)
}

// Transactor runs fn inside a database transaction. Repositories handed to
// fn are bound to that transaction.
type Transactor interface {
	Transaction(fn func(sailors SailorRepositoryInterface, events EventRepositoryInterface) error) error
}

var _ Transactor = (*GormTransactor)(nil)

// GormTransactor implements Transactor on a gorm connection
type GormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a transactor for the given connection
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise
func (t *GormTransactor) Transaction(fn func(sailors SailorRepositoryInterface, events EventRepositoryInterface) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewSailorRepository(tx), NewEventRepository(tx))
	})
}
