package service

import (
	"context"

	"watchbill-admin/internal/admin"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SailorServiceInterface defines the interface for the sailor admin service
type SailorServiceInterface interface {
	ChangeList(params admin.ListParams) (*admin.ChangeList, error)
	Layout() admin.Layout
	Get(id uuid.UUID) (*SailorResponse, error)
	Create(req *CreateSailorRequest) (*SailorResponse, error)
	Update(id uuid.UUID, req *UpdateSailorRequest) (*SailorResponse, error)
	AddEvent(sailorID uuid.UUID, req *EventRequest) (*EventResponse, error)
	UpdateEvent(sailorID, eventID uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(sailorID, eventID uuid.UUID) error
	ScheduleSeries(sailorID uuid.UUID, req *ScheduleSeriesRequest) (*SeriesResponse, error)
	RunAction(ctx context.Context, action string, req *ActionRequest) (*ActionResult, error)
	Acknowledge(ctx context.Context, ids []uuid.UUID) (int, error)
	Export(ids []uuid.UUID) ([]byte, error)
	ExportRoster(includeInactive bool) ([]byte, error)
}

// QualServiceInterface defines the interface for the qual catalogue service
type QualServiceInterface interface {
	List() ([]QualResponse, error)
	GetByID(id uuid.UUID) (*QualResponse, error)
}
