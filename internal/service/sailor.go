package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"watchbill-admin/internal/admin"
	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"
	"watchbill-admin/internal/logger"
	"watchbill-admin/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"gorm.io/gorm"
)

// MaxSeriesOccurrences caps how many watches one recurrence rule may create.
const MaxSeriesOccurrences = 366

const dateLayout = "2006-01-02"

// SailorService provides the sailor admin: change list, detail form,
// inline watch events and bulk actions
type SailorService struct {
	sailors   repository.SailorRepositoryInterface
	quals     repository.QualRepositoryInterface
	events    repository.EventRepositoryInterface
	tx        repository.Transactor
	admin     *admin.SailorAdmin
	validator *validator.Validate
}

// Ensure SailorService implements SailorServiceInterface
var _ SailorServiceInterface = (*SailorService)(nil)

// NewSailorService creates a new SailorService
func NewSailorService(
	sailors repository.SailorRepositoryInterface,
	quals repository.QualRepositoryInterface,
	events repository.EventRepositoryInterface,
	tx repository.Transactor,
	sailorAdmin *admin.SailorAdmin,
	validator *validator.Validate,
) *SailorService {
	return &SailorService{
		sailors:   sailors,
		quals:     quals,
		events:    events,
		tx:        tx,
		admin:     sailorAdmin,
		validator: validator,
	}
}

// CreateSailorRequest represents the data needed to create a sailor
type CreateSailorRequest struct {
	Name         string     `json:"name" validate:"required,max=100" example:"Jones, A"`
	Rate         string     `json:"rate" validate:"max=20" example:"QM2"`
	Dept         string     `json:"dept" validate:"max=50" example:"Nav"`
	Div          string     `json:"div" validate:"max=50" example:"NA"`
	Phone        string     `json:"phone" validate:"max=30"`
	Email        string     `json:"email" validate:"omitempty,email,max=255"`
	WorkEmail    string     `json:"work_email" validate:"omitempty,email,max=255"`
	InTeams      bool       `json:"in_teams"`
	Availability string     `json:"availability"`
	Notes        string     `json:"notes"`
	QualID       *uuid.UUID `json:"qual_id"`
	Quald        bool       `json:"quald"`
	QualDate     string     `json:"qualdate" validate:"omitempty,datetime=2006-01-02" example:"2024-08-02"`
	Report       string     `json:"report" validate:"max=500"`
	Active       *bool      `json:"active" example:"true" default:"true"` // Optional: defaults to true
}

// UpdateSailorRequest represents a partial update of a sailor. An empty
// qualdate clears the date; ClearQual removes the qualification.
type UpdateSailorRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Rate         *string    `json:"rate" validate:"omitempty,max=20"`
	Dept         *string    `json:"dept" validate:"omitempty,max=50"`
	Div          *string    `json:"div" validate:"omitempty,max=50"`
	Phone        *string    `json:"phone" validate:"omitempty,max=30"`
	Email        *string    `json:"email" validate:"omitempty,email,max=255"`
	WorkEmail    *string    `json:"work_email" validate:"omitempty,email,max=255"`
	InTeams      *bool      `json:"in_teams"`
	Availability *string    `json:"availability"`
	Notes        *string    `json:"notes"`
	QualID       *uuid.UUID `json:"qual_id"`
	ClearQual    bool       `json:"clear_qual"`
	Quald        *bool      `json:"quald"`
	QualDate     *string    `json:"qualdate" validate:"omitempty,datetime=2006-01-02"`
	Report       *string    `json:"report" validate:"omitempty,max=500"`
	Active       *bool      `json:"active"`
}

// EventRequest represents one inline watch event
type EventRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-06-05"`
	Position string `json:"position" validate:"required,max=50" example:"Helm"`
	Active   *bool  `json:"active" example:"true" default:"true"`
}

// UpdateEventRequest represents a partial update of an inline watch event
type UpdateEventRequest struct {
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Position *string `json:"position" validate:"omitempty,min=1,max=50"`
	Active   *bool   `json:"active"`
}

// ScheduleSeriesRequest schedules a recurring watch from an RFC 5545 rule
type ScheduleSeriesRequest struct {
	Start    string `json:"start" validate:"required,datetime=2006-01-02" example:"2024-06-03"`
	RRule    string `json:"rrule" validate:"required" example:"FREQ=WEEKLY;BYDAY=MO;COUNT=8"`
	Position string `json:"position" validate:"required,max=50" example:"Helm"`
}

// ActionRequest selects the sailors a bulk action runs on
type ActionRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// EventResponse represents an inline watch event in API responses
type EventResponse struct {
	ID       uuid.UUID `json:"id"`
	SailorID uuid.UUID `json:"sailor_id"`
	Date     string    `json:"date"`
	Position string    `json:"position"`
	Active   bool      `json:"active"`
}

// SailorResponse represents the sailor detail form with its inline events
// and computed columns
type SailorResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Rate          string          `json:"rate"`
	Dept          string          `json:"dept"`
	Div           string          `json:"div"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	WorkEmail     string          `json:"work_email"`
	InTeams       bool            `json:"in_teams"`
	Availability  string          `json:"availability"`
	Notes         string          `json:"notes"`
	QualID        *uuid.UUID      `json:"qual_id,omitempty"`
	Quals         []string        `json:"quals"`
	Quald         bool            `json:"quald"`
	QualDate      string          `json:"qualdate"`
	Dinq          string          `json:"dinq_date"`
	Report        string          `json:"report"`
	Active        bool            `json:"active"`
	RecentWatches []string        `json:"get_watches"`
	WatchCount    int             `json:"watch_count"`
	Events        []EventResponse `json:"events"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// SeriesResponse reports the watches created from a recurrence rule
type SeriesResponse struct {
	Created []EventResponse `json:"created"`
	Skipped int             `json:"skipped"`
}

// ActionResult is the outcome of a bulk action. CSV is set for export.
type ActionResult struct {
	Action   string `json:"action"`
	Selected int    `json:"selected"`
	Updated  int    `json:"updated"`
	Message  string `json:"message"`
	Filename string `json:"-"`
	CSV      []byte `json:"-"`
}

// ChangeList renders one page of the sailor list
func (s *SailorService) ChangeList(params admin.ListParams) (*admin.ChangeList, error) {
	ordering, err := admin.ParseOrdering(params.Order)
	if err != nil {
		return nil, err
	}

	w := s.admin.Window()
	sailors, err := s.sailors.ListAnnotated(w.Since, ordering.Column, ordering.Desc)
	if err != nil {
		return nil, fmt.Errorf("failed to list sailors: %w", err)
	}

	catalogue, err := s.quals.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get quals: %w", err)
	}

	return s.admin.ChangeList(params, catalogue, sailors)
}

// Layout returns the admin registration served to the UI
func (s *SailorService) Layout() admin.Layout {
	return s.admin.Layout()
}

// Get retrieves a sailor with its qualification and watch history
func (s *SailorService) Get(id uuid.UUID) (*SailorResponse, error) {
	sailor, err := s.getSailor(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sailor), nil
}

// Create creates a new sailor
func (s *SailorService) Create(req *CreateSailorRequest) (*SailorResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	qualDate, err := parseOptionalDate("qualdate", req.QualDate)
	if err != nil {
		return nil, err
	}
	if err := s.checkQual(req.QualID); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	sailor := &models.Sailor{
		Name:         req.Name,
		Rate:         req.Rate,
		Dept:         req.Dept,
		Div:          req.Div,
		Phone:        req.Phone,
		Email:        req.Email,
		WorkEmail:    req.WorkEmail,
		InTeams:      req.InTeams,
		Availability: req.Availability,
		Notes:        req.Notes,
		QualID:       req.QualID,
		Quald:        req.Quald,
		QualDate:     qualDate,
		Report:       req.Report,
		Active:       active,
	}

	if err := s.sailors.Create(sailor); err != nil {
		return nil, fmt.Errorf("failed to create sailor: %w", err)
	}

	return s.Get(sailor.ID)
}

// Update applies a partial update to a sailor
func (s *SailorService) Update(id uuid.UUID, req *UpdateSailorRequest) (*SailorResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	sailor, err := s.getSailor(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sailor.Name = *req.Name
	}
	if req.Rate != nil {
		sailor.Rate = *req.Rate
	}
	if req.Dept != nil {
		sailor.Dept = *req.Dept
	}
	if req.Div != nil {
		sailor.Div = *req.Div
	}
	if req.Phone != nil {
		sailor.Phone = *req.Phone
	}
	if req.Email != nil {
		sailor.Email = *req.Email
	}
	if req.WorkEmail != nil {
		sailor.WorkEmail = *req.WorkEmail
	}
	if req.InTeams != nil {
		sailor.InTeams = *req.InTeams
	}
	if req.Availability != nil {
		sailor.Availability = *req.Availability
	}
	if req.Notes != nil {
		sailor.Notes = *req.Notes
	}
	if req.ClearQual {
		sailor.QualID = nil
		sailor.Qual = nil
	} else if req.QualID != nil {
		if err := s.checkQual(req.QualID); err != nil {
			return nil, err
		}
		sailor.QualID = req.QualID
		sailor.Qual = nil
	}
	if req.Quald != nil {
		sailor.Quald = *req.Quald
	}
	if req.QualDate != nil {
		qualDate, err := parseOptionalDate("qualdate", *req.QualDate)
		if err != nil {
			return nil, err
		}
		sailor.QualDate = qualDate
	}
	if req.Report != nil {
		sailor.Report = *req.Report
	}
	if req.Active != nil {
		sailor.Active = *req.Active
	}

	if err := s.sailors.Update(sailor); err != nil {
		return nil, fmt.Errorf("failed to update sailor: %w", err)
	}

	return s.Get(id)
}

// AddEvent adds an inline watch event to a sailor
func (s *SailorService) AddEvent(sailorID uuid.UUID, req *EventRequest) (*EventResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.getSailor(sailorID); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	event := &models.Event{
		SailorID: sailorID,
		Date:     date,
		Position: req.Position,
		Active:   active,
	}
	if err := s.events.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	resp := toEventResponse(event)
	return &resp, nil
}

// UpdateEvent edits an inline watch event of a sailor
func (s *SailorService) UpdateEvent(sailorID, eventID uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	event, err := s.getEvent(sailorID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Position != nil {
		event.Position = *req.Position
	}
	if req.Active != nil {
		event.Active = *req.Active
	}

	if err := s.events.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	resp := toEventResponse(event)
	return &resp, nil
}

// DeleteEvent removes an inline watch event from a sailor
func (s *SailorService) DeleteEvent(sailorID, eventID uuid.UUID) error {
	if _, err := s.getEvent(sailorID, eventID); err != nil {
		return err
	}
	if err := s.events.Delete(eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ScheduleSeries expands a recurrence rule from the start date into
// watches for one sailor. Dates that already carry a watch at the same
// position are skipped. Rules yielding more than MaxSeriesOccurrences
// dates, including unbounded ones, are rejected.
func (s *SailorService) ScheduleSeries(sailorID uuid.UUID, req *ScheduleSeriesRequest) (*SeriesResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	start, err := parseDate("start", req.Start)
	if err != nil {
		return nil, err
	}
	dates, err := expandRule(req.RRule, start)
	if err != nil {
		return nil, err
	}
	if _, err := s.getSailor(sailorID); err != nil {
		return nil, err
	}

	result := &SeriesResponse{Created: []EventResponse{}}
	err = s.tx.Transaction(func(_ repository.SailorRepositoryInterface, events repository.EventRepositoryInterface) error {
		batch := make([]models.Event, 0, len(dates))
		for _, date := range dates {
			exists, err := events.Exists(sailorID, date, req.Position)
			if err != nil {
				return fmt.Errorf("failed to check event: %w", err)
			}
			if exists {
				result.Skipped++
				continue
			}
			batch = append(batch, models.Event{
				BaseModel: models.BaseModel{ID: uuid.New()},
				SailorID:  sailorID,
				Date:      date,
				Position:  req.Position,
				Active:    true,
			})
		}
		if err := events.CreateBatch(batch); err != nil {
			return fmt.Errorf("failed to create events: %w", err)
		}
		for i := range batch {
			result.Created = append(result.Created, toEventResponse(&batch[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// expandRule returns the distinct calendar dates of rule starting at start.
// Sub-daily rules collapse to one date per day.
func expandRule(rule string, start time.Time) ([]time.Time, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidRRule, err)
	}
	r.DTStart(start)

	next := r.Iterator()
	var dates []time.Time
	for {
		occurrence, ok := next()
		if !ok {
			break
		}
		date := dateOnly(occurrence)
		// occurrences arrive in order, so a repeat can only follow its twin
		if n := len(dates); n > 0 && dates[n-1].Equal(date) {
			continue
		}
		if len(dates) == MaxSeriesOccurrences {
			return nil, fmt.Errorf("%w: limit is %d", apperrors.ErrSeriesTooLong, MaxSeriesOccurrences)
		}
		dates = append(dates, date)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: no occurrences", apperrors.ErrInvalidRRule)
	}
	return dates, nil
}

// RunAction dispatches a bulk action on the selected sailors
func (s *SailorService) RunAction(ctx context.Context, action string, req *ActionRequest) (*ActionResult, error) {
	if !s.admin.HasAction(action) {
		return nil, apperrors.ErrUnknownAction
	}
	if req == nil || len(req.IDs) == 0 {
		return nil, apperrors.ErrEmptySelection
	}

	switch action {
	case admin.ActionExport:
		csv, err := s.Export(req.IDs)
		if err != nil {
			return nil, err
		}
		return &ActionResult{
			Action:   action,
			Selected: len(req.IDs),
			Filename: admin.ExportFilename,
			CSV:      csv,
		}, nil
	case admin.ActionAckJun:
		updated, err := s.Acknowledge(ctx, req.IDs)
		if err != nil {
			return nil, err
		}
		return &ActionResult{
			Action:   action,
			Selected: len(req.IDs),
			Updated:  updated,
			Message:  fmt.Sprintf("%d of %d sailors marked %s", updated, len(req.IDs), admin.AckMarker),
		}, nil
	}
	return nil, apperrors.ErrUnknownAction
}

// Acknowledge marks the selected sailors' notes in one transaction and
// returns how many notes changed. A selection naming an unknown sailor
// changes nothing.
func (s *SailorService) Acknowledge(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrEmptySelection
	}

	since := s.admin.Window().Since
	updated := 0
	err := s.tx.Transaction(func(sailors repository.SailorRepositoryInterface, _ repository.EventRepositoryInterface) error {
		selected, err := sailors.GetByIDs(ids, since)
		if err != nil {
			return fmt.Errorf("failed to get sailors: %w", err)
		}
		if err := checkSelection(ids, selected); err != nil {
			return err
		}
		for i := range selected {
			notes, changed := admin.Acknowledge(selected[i].Notes)
			if !changed {
				continue
			}
			if err := sailors.UpdateNotes(selected[i].ID, notes); err != nil {
				return fmt.Errorf("failed to update notes of %s: %w", selected[i].Name, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"action":   admin.ActionAckJun,
		"selected": len(ids),
		"updated":  updated,
	}).Info("Acknowledgment recorded")
	return updated, nil
}

// Export renders the selected sailors as the roster CSV, in name order
func (s *SailorService) Export(ids []uuid.UUID) ([]byte, error) {
	if len(ids) == 0 {
		return nil, apperrors.ErrEmptySelection
	}
	w := s.admin.Window()
	sailors, err := s.sailors.GetByIDs(ids, w.Since)
	if err != nil {
		return nil, fmt.Errorf("failed to get sailors: %w", err)
	}
	if err := checkSelection(ids, sailors); err != nil {
		return nil, err
	}
	return s.writeCSV(sailors, w)
}

// ExportRoster renders every active sailor, or every sailor when
// includeInactive is set, as the roster CSV
func (s *SailorService) ExportRoster(includeInactive bool) ([]byte, error) {
	w := s.admin.Window()
	sailors, err := s.sailors.ListActive(w.Since, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list sailors: %w", err)
	}
	return s.writeCSV(sailors, w)
}

func (s *SailorService) writeCSV(sailors []models.Sailor, w admin.Window) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.admin.Exporter().Write(&buf, sailors, w); err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}
	return buf.Bytes(), nil
}

// checkSelection fails with the first selected id that matched no sailor
func checkSelection(ids []uuid.UUID, found []models.Sailor) error {
	present := make(map[uuid.UUID]bool, len(found))
	for i := range found {
		present[found[i].ID] = true
	}
	for _, id := range ids {
		if !present[id] {
			return fmt.Errorf("%w: %s", apperrors.ErrSailorNotFound, id)
		}
	}
	return nil
}

func (s *SailorService) getSailor(id uuid.UUID) (*models.Sailor, error) {
	sailor, err := s.sailors.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSailorNotFound
		}
		return nil, fmt.Errorf("failed to get sailor: %w", err)
	}
	return sailor, nil
}

// getEvent loads an event and checks it belongs to the sailor.
func (s *SailorService) getEvent(sailorID, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.SailorID != sailorID {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (s *SailorService) checkQual(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.quals.GetByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrQualNotFound
		}
		return fmt.Errorf("failed to get qual: %w", err)
	}
	return nil
}

func (s *SailorService) validate(req interface{}) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
	}
	return nil
}

func (s *SailorService) toResponse(sailor *models.Sailor) *SailorResponse {
	w := s.admin.Window()
	events := make([]EventResponse, len(sailor.Events))
	for i := range sailor.Events {
		events[i] = toEventResponse(&sailor.Events[i])
	}
	qualDate := ""
	if sailor.QualDate != nil {
		qualDate = sailor.QualDate.Format(dateLayout)
	}
	return &SailorResponse{
		ID:            sailor.ID,
		Name:          sailor.Name,
		Rate:          sailor.Rate,
		Dept:          sailor.Dept,
		Div:           sailor.Div,
		Phone:         sailor.Phone,
		Email:         sailor.Email,
		WorkEmail:     sailor.WorkEmail,
		InTeams:       sailor.InTeams,
		Availability:  sailor.Availability,
		Notes:         sailor.Notes,
		QualID:        sailor.QualID,
		Quals:         sailor.Quals(),
		Quald:         sailor.Quald,
		QualDate:      qualDate,
		Dinq:          admin.DaysInQual(sailor, w),
		Report:        sailor.Report,
		Active:        sailor.Active,
		RecentWatches: admin.RecentWatches(sailor, w),
		WatchCount:    admin.RecentWatchCount(sailor, w),
		Events:        events,
		CreatedAt:     sailor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     sailor.UpdatedAt.Format(time.RFC3339),
	}
}

func toEventResponse(event *models.Event) EventResponse {
	return EventResponse{
		ID:       event.ID,
		SailorID: event.SailorID,
		Date:     event.Date.Format(dateLayout),
		Position: event.Position,
		Active:   event.Active,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD form")
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
