package repository

import (
	"watchbill-admin/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ QualRepositoryInterface = (*QualRepository)(nil)

// QualRepository handles database operations for qualifications
type QualRepository struct {
	db *gorm.DB
}

// NewQualRepository creates a new qual repository
func NewQualRepository(db *gorm.DB) *QualRepository {
	return &QualRepository{db: db}
}

// Create creates a new qual
func (r *QualRepository) Create(qual *models.Qual) error {
	return r.db.Create(qual).Error
}

// GetByID retrieves a qual by ID
func (r *QualRepository) GetByID(id uuid.UUID) (*models.Qual, error) {
	var qual models.Qual
	err := r.db.First(&qual, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &qual, nil
}

// GetByName retrieves a qual by name
func (r *QualRepository) GetByName(name string) (*models.Qual, error) {
	var qual models.Qual
	err := r.db.Where("name = ?", name).First(&qual).Error
	if err != nil {
		return nil, err
	}
	return &qual, nil
}

// GetAll retrieves the whole catalogue in name order
func (r *QualRepository) GetAll() ([]models.Qual, error) {
	var quals []models.Qual
	err := r.db.Order("name ASC").Find(&quals).Error
	return quals, err
}

// Update updates a qual
func (r *QualRepository) Update(qual *models.Qual) error {
	return r.db.Save(qual).Error
}
