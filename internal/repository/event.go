package repository

import (
	"time"

	"watchbill-admin/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ EventRepositoryInterface = (*EventRepository)(nil)

// EventRepository handles database operations for watch events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *EventRepository) WithTx(tx *gorm.DB) *EventRepository {
	return &EventRepository{db: tx}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Omit(clause.Associations).Create(event).Error
}

// CreateBatch inserts several events at once
func (r *EventRepository) CreateBatch(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Create(&events).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update updates an event
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Omit(clause.Associations).Save(event).Error
}

// Delete deletes an event
func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}

// Exists reports whether the sailor already has a watch at that position on that date
func (r *EventRepository) Exists(sailorID uuid.UUID, date time.Time, position string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Event{}).
		Where("sailor_id = ? AND date = ? AND position = ?", sailorID, sqlDate(date), position).
		Count(&count).Error
	return count > 0, err
}
