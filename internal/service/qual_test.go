package service_test

import (
	"errors"
	"testing"

	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"
	"watchbill-admin/internal/mocks"
	"watchbill-admin/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestQualServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockQualRepositoryInterface(ctrl)
	svc := service.NewQualService(repo)

	helm := models.Qual{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Helm", Description: "Helmsman"}
	ood := models.Qual{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "OOD"}
	repo.EXPECT().GetAll().Return([]models.Qual{helm, ood}, nil)

	quals, err := svc.List()
	require.NoError(t, err)
	require.Len(t, quals, 2)
	assert.Equal(t, helm.ID, quals[0].ID)
	assert.Equal(t, "Helmsman", quals[0].Description)
	assert.Equal(t, "OOD", quals[1].Name)
}

func TestQualServiceListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockQualRepositoryInterface(ctrl)
	repo.EXPECT().GetAll().Return(nil, errors.New("boom"))

	_, err := service.NewQualService(repo).List()
	assert.ErrorContains(t, err, "failed to get quals")
}

func TestQualServiceGetByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockQualRepositoryInterface(ctrl)
	id := uuid.New()
	repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.NewQualService(repo).GetByID(id)
	assert.ErrorIs(t, err, apperrors.ErrQualNotFound)
}
