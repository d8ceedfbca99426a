package service

import (
	"errors"
	"fmt"

	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"
	"watchbill-admin/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QualService exposes the read-only qualification catalogue
type QualService struct {
	repo repository.QualRepositoryInterface
}

// Ensure QualService implements QualServiceInterface
var _ QualServiceInterface = (*QualService)(nil)

// NewQualService creates a new QualService
func NewQualService(repo repository.QualRepositoryInterface) *QualService {
	return &QualService{repo: repo}
}

// QualResponse represents a qual in API responses
type QualResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// List returns the catalogue in name order
func (s *QualService) List() ([]QualResponse, error) {
	quals, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get quals: %w", err)
	}

	responses := make([]QualResponse, len(quals))
	for i := range quals {
		responses[i] = toQualResponse(&quals[i])
	}
	return responses, nil
}

// GetByID retrieves a qual by ID
func (s *QualService) GetByID(id uuid.UUID) (*QualResponse, error) {
	qual, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQualNotFound
		}
		return nil, fmt.Errorf("failed to get qual: %w", err)
	}
	resp := toQualResponse(qual)
	return &resp, nil
}

func toQualResponse(qual *models.Qual) QualResponse {
	return QualResponse{
		ID:          qual.ID,
		Name:        qual.Name,
		Description: qual.Description,
	}
}
