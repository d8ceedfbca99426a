package repository

import (
	"time"

	"watchbill-admin/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recentWatchCountSQL annotates each sailor with the recent watch aggregate
// used for ordering the change list.
const recentWatchCountSQL = `(SELECT COUNT(*) FROM events e
	WHERE e.sailor_id = sailors.id AND e.active = ? AND e.date >= ? AND e.position <> ?) AS watch_count`

var _ SailorRepositoryInterface = (*SailorRepository)(nil)

// sqlDate binds a calendar date so Postgres compares it as a date rather
// than a timestamp in the session time zone.
func sqlDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// SailorRepository handles database operations for sailors
type SailorRepository struct {
	db *gorm.DB
}

// NewSailorRepository creates a new sailor repository
func NewSailorRepository(db *gorm.DB) *SailorRepository {
	return &SailorRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *SailorRepository) WithTx(tx *gorm.DB) *SailorRepository {
	return &SailorRepository{db: tx}
}

// Create creates a new sailor
func (r *SailorRepository) Create(sailor *models.Sailor) error {
	return r.db.Omit(clause.Associations).Create(sailor).Error
}

// GetByID retrieves a sailor with its qualification and full watch history
func (r *SailorRepository) GetByID(id uuid.UUID) (*models.Sailor, error) {
	var sailor models.Sailor
	err := r.db.
		Preload("Qual").
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("events.date ASC") }).
		First(&sailor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sailor, nil
}

// GetByIDs retrieves the given sailors with qualifications and the events
// on or after since, in name order.
func (r *SailorRepository) GetByIDs(ids []uuid.UUID, since time.Time) ([]models.Sailor, error) {
	var sailors []models.Sailor
	err := r.db.
		Preload("Qual").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Where("events.date >= ?", sqlDate(since)).Order("events.date ASC")
		}).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&sailors).Error
	return sailors, err
}

// ListAnnotated returns every sailor annotated with the recent watch count,
// with qualifications and the events on or after since preloaded, ordered
// by the given column.
func (r *SailorRepository) ListAnnotated(since time.Time, orderColumn string, desc bool) ([]models.Sailor, error) {
	var sailors []models.Sailor
	err := r.db.Model(&models.Sailor{}).
		Select("sailors.*, "+recentWatchCountSQL, true, sqlDate(since), models.PositionSuper).
		Preload("Qual").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Where("events.date >= ?", sqlDate(since)).Order("events.date ASC")
		}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: orderColumn}, Desc: desc}).
		Order("sailors.name ASC").
		Order("sailors.id ASC").
		Find(&sailors).Error
	return sailors, err
}

// ListActive returns active sailors, or every sailor when includeInactive
// is set, with events on or after since preloaded
func (r *SailorRepository) ListActive(since time.Time, includeInactive bool) ([]models.Sailor, error) {
	var sailors []models.Sailor
	query := r.db.
		Preload("Qual").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Where("events.date >= ?", sqlDate(since)).Order("events.date ASC")
		})
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&sailors).Error
	return sailors, err
}

// GetByName retrieves a sailor by exact name
func (r *SailorRepository) GetByName(name string) (*models.Sailor, error) {
	var sailor models.Sailor
	err := r.db.Where("name = ?", name).First(&sailor).Error
	if err != nil {
		return nil, err
	}
	return &sailor, nil
}

// Update saves every column of the sailor
func (r *SailorRepository) Update(sailor *models.Sailor) error {
	return r.db.Omit(clause.Associations).Save(sailor).Error
}

// UpdateNotes writes only the notes column
func (r *SailorRepository) UpdateNotes(id uuid.UUID, notes string) error {
	return r.db.Model(&models.Sailor{}).Where("id = ?", id).Update("notes", notes).Error
}

