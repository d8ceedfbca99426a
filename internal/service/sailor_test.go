package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"watchbill-admin/internal/admin"
	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"
	"watchbill-admin/internal/mocks"
	"watchbill-admin/internal/repository"
	"watchbill-admin/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, time.September, 1, 15, 30, 0, 0, time.UTC)

// SailorServiceTestSuite defines the test suite for SailorService
type SailorServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	sailors *mocks.MockSailorRepositoryInterface
	quals   *mocks.MockQualRepositoryInterface
	events  *mocks.MockEventRepositoryInterface
	tx      *mocks.MockTransactor
	since   time.Time
	service *service.SailorService
}

// SetupTest sets up the test suite
func (suite *SailorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.sailors = mocks.NewMockSailorRepositoryInterface(suite.ctrl)
	suite.quals = mocks.NewMockQualRepositoryInterface(suite.ctrl)
	suite.events = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.tx = mocks.NewMockTransactor(suite.ctrl)

	sailorAdmin, err := admin.NewSailorAdmin(100, func() time.Time { return fixedNow })
	suite.Require().NoError(err)
	suite.since = sailorAdmin.Window().Since

	suite.service = service.NewSailorService(suite.sailors, suite.quals, suite.events, suite.tx, sailorAdmin, validator.New())
}

// TearDownTest cleans up after each test
func (suite *SailorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectTransaction runs the transaction body against the mock repositories
func (suite *SailorServiceTestSuite) expectTransaction() {
	suite.tx.EXPECT().
		Transaction(gomock.Any()).
		DoAndReturn(func(fn func(repository.SailorRepositoryInterface, repository.EventRepositoryInterface) error) error {
			return fn(suite.sailors, suite.events)
		}).
		Times(1)
}

func newSailor(name, notes string) models.Sailor {
	return models.Sailor{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		Notes:     notes,
		Active:    true,
	}
}

func (suite *SailorServiceTestSuite) TestChangeListOrdersInQuery() {
	helm := models.Qual{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Helm"}
	busy := newSailor("Busy", "")
	busy.QualID, busy.Qual = &helm.ID, &helm
	busy.Events = []models.Event{
		{SailorID: busy.ID, Date: fixedNow.AddDate(0, 0, -3), Position: "Helm", Active: true},
		{SailorID: busy.ID, Date: fixedNow.AddDate(0, 0, -2), Position: "Helm", Active: true},
	}
	idle := newSailor("Idle", "")

	suite.sailors.EXPECT().
		ListAnnotated(suite.since, "watch_count", true).
		Return([]models.Sailor{busy, idle}, nil).
		Times(1)
	suite.quals.EXPECT().GetAll().Return([]models.Qual{helm}, nil).Times(1)

	cl, err := suite.service.ChangeList(admin.ListParams{Order: "-watch_count", Page: 1, PageSize: 100})

	suite.Require().NoError(err)
	suite.Equal("-watch_count", cl.Ordering)
	suite.Require().Len(cl.Rows, 2)
	suite.Equal("Busy", cl.Rows[0].Name)
	suite.Equal(2, cl.Rows[0].WatchCount)
	suite.Equal("Helm", cl.Rows[0].Quals)
	suite.Equal("Idle", cl.Rows[1].Name)
	suite.Equal("Watch Qualification", cl.Filters[0].Title)
	suite.Equal("Helm (1)", cl.Filters[0].Choices[1].Display)
}

func (suite *SailorServiceTestSuite) TestChangeListRejectsUnknownOrdering() {
	_, err := suite.service.ChangeList(admin.ListParams{Order: "notes"})

	suite.ErrorIs(err, apperrors.ErrInvalidOrder)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SailorServiceTestSuite) TestChangeListRepositoryError() {
	suite.sailors.EXPECT().
		ListAnnotated(suite.since, "name", false).
		Return(nil, errors.New("connection reset")).
		Times(1)

	_, err := suite.service.ChangeList(admin.ListParams{})

	suite.Error(err)
	suite.Contains(err.Error(), "failed to list sailors")
}

func (suite *SailorServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.sailors.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.Get(id)

	suite.ErrorIs(err, apperrors.ErrSailorNotFound)
}

func (suite *SailorServiceTestSuite) TestGetComputesColumns() {
	qualDate := time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC)
	sailor := newSailor("Jones, A", "")
	sailor.QualDate = &qualDate
	sailor.Events = []models.Event{
		{SailorID: sailor.ID, Date: fixedNow.AddDate(0, 0, -150), Position: "Lookout", Active: true},
		{SailorID: sailor.ID, Date: fixedNow.AddDate(0, 0, -50), Position: "Helm", Active: true},
	}
	suite.sailors.EXPECT().GetByID(sailor.ID).Return(&sailor, nil).Times(1)

	resp, err := suite.service.Get(sailor.ID)

	suite.Require().NoError(err)
	suite.Equal("2024-08-02", resp.QualDate)
	suite.Equal("30", resp.Dinq)
	suite.Equal([]string{fixedNow.AddDate(0, 0, -50).Format("02-Jan") + " Helm"}, resp.RecentWatches)
	suite.Len(resp.Events, 2)
	suite.Empty(resp.Quals)
}

func (suite *SailorServiceTestSuite) TestCreate() {
	qualID := uuid.New()
	req := &service.CreateSailorRequest{
		Name:     "Evans, P",
		Rate:     "OS3",
		Email:    "evans@example.com",
		QualID:   &qualID,
		QualDate: "2024-07-01",
	}

	suite.quals.EXPECT().GetByID(qualID).Return(&models.Qual{Name: "Lookout"}, nil).Times(1)
	var created *models.Sailor
	suite.sailors.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(s *models.Sailor) error {
			s.ID = uuid.New()
			created = s
			return nil
		}).
		Times(1)
	suite.sailors.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Sailor, error) {
			suite.Equal(created.ID, id)
			return created, nil
		}).
		Times(1)

	resp, err := suite.service.Create(req)

	suite.Require().NoError(err)
	suite.Equal("Evans, P", resp.Name)
	suite.True(resp.Active)
	suite.Equal("2024-07-01", resp.QualDate)
	suite.Equal(&qualID, resp.QualID)
}

func (suite *SailorServiceTestSuite) TestCreateValidation() {
	_, err := suite.service.Create(&service.CreateSailorRequest{Name: "Bad", Email: "not-an-email"})

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SailorServiceTestSuite) TestCreateUnknownQual() {
	qualID := uuid.New()
	suite.quals.EXPECT().GetByID(qualID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.Create(&service.CreateSailorRequest{Name: "Evans", QualID: &qualID})

	suite.ErrorIs(err, apperrors.ErrQualNotFound)
}

func (suite *SailorServiceTestSuite) TestUpdateClearsQual() {
	qualID := uuid.New()
	sailor := newSailor("Baker", "")
	sailor.QualID = &qualID
	sailor.Qual = &models.Qual{Name: "Helm"}
	inactive := false

	suite.sailors.EXPECT().GetByID(sailor.ID).Return(&sailor, nil).Times(2)
	suite.sailors.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(s *models.Sailor) error {
			suite.Nil(s.QualID)
			suite.False(s.Active)
			return nil
		}).
		Times(1)

	resp, err := suite.service.Update(sailor.ID, &service.UpdateSailorRequest{ClearQual: true, Active: &inactive})

	suite.Require().NoError(err)
	suite.Empty(resp.Quals)
	suite.False(resp.Active)
}

func (suite *SailorServiceTestSuite) TestAddEvent() {
	sailor := newSailor("Clark", "")
	suite.sailors.EXPECT().GetByID(sailor.ID).Return(&sailor, nil).Times(1)
	suite.events.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(e *models.Event) error {
			suite.Equal(sailor.ID, e.SailorID)
			suite.True(e.Active)
			e.ID = uuid.New()
			return nil
		}).
		Times(1)

	resp, err := suite.service.AddEvent(sailor.ID, &service.EventRequest{Date: "2024-06-05", Position: "Helm"})

	suite.Require().NoError(err)
	suite.Equal("2024-06-05", resp.Date)
	suite.Equal("Helm", resp.Position)
}

func (suite *SailorServiceTestSuite) TestAddEventBadDate() {
	_, err := suite.service.AddEvent(uuid.New(), &service.EventRequest{Date: "06/05/2024", Position: "Helm"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *SailorServiceTestSuite) TestUpdateEventOfAnotherSailor() {
	event := &models.Event{BaseModel: models.BaseModel{ID: uuid.New()}, SailorID: uuid.New()}
	suite.events.EXPECT().GetByID(event.ID).Return(event, nil).Times(1)

	position := "OOD"
	_, err := suite.service.UpdateEvent(uuid.New(), event.ID, &service.UpdateEventRequest{Position: &position})

	suite.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (suite *SailorServiceTestSuite) TestDeleteEvent() {
	sailorID := uuid.New()
	event := &models.Event{BaseModel: models.BaseModel{ID: uuid.New()}, SailorID: sailorID}
	suite.events.EXPECT().GetByID(event.ID).Return(event, nil).Times(1)
	suite.events.EXPECT().Delete(event.ID).Return(nil).Times(1)

	suite.NoError(suite.service.DeleteEvent(sailorID, event.ID))
}

func (suite *SailorServiceTestSuite) TestScheduleSeries() {
	sailor := newSailor("Adams", "")
	suite.sailors.EXPECT().GetByID(sailor.ID).Return(&sailor, nil).Times(1)
	suite.expectTransaction()

	second := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	suite.events.EXPECT().
		Exists(sailor.ID, gomock.Any(), "Helm").
		DoAndReturn(func(_ uuid.UUID, date time.Time, _ string) (bool, error) {
			return date.Equal(second), nil
		}).
		Times(4)
	suite.events.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(events []models.Event) error {
			suite.Len(events, 3)
			return nil
		}).
		Times(1)

	resp, err := suite.service.ScheduleSeries(sailor.ID, &service.ScheduleSeriesRequest{
		Start:    "2024-06-03",
		RRule:    "FREQ=WEEKLY;COUNT=4",
		Position: "Helm",
	})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Skipped)
	suite.Require().Len(resp.Created, 3)
	suite.Equal("2024-06-03", resp.Created[0].Date)
	suite.Equal("2024-06-17", resp.Created[1].Date)
	suite.Equal("2024-06-24", resp.Created[2].Date)
}

func (suite *SailorServiceTestSuite) TestScheduleSeriesCollapsesSameDay() {
	sailor := newSailor("Adams", "")
	suite.sailors.EXPECT().GetByID(sailor.ID).Return(&sailor, nil).Times(1)
	suite.expectTransaction()

	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	suite.events.EXPECT().Exists(sailor.ID, day, "Helm").Return(false, nil).Times(1)
	suite.events.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(events []models.Event) error {
			suite.Require().Len(events, 1)
			suite.True(events[0].Date.Equal(day))
			return nil
		}).
		Times(1)

	resp, err := suite.service.ScheduleSeries(sailor.ID, &service.ScheduleSeriesRequest{
		Start:    "2024-06-03",
		RRule:    "FREQ=HOURLY;COUNT=3",
		Position: "Helm",
	})

	suite.Require().NoError(err)
	suite.Zero(resp.Skipped)
	suite.Require().Len(resp.Created, 1)
	suite.Equal("2024-06-03", resp.Created[0].Date)
}

func (suite *SailorServiceTestSuite) TestScheduleSeriesUnbounded() {
	_, err := suite.service.ScheduleSeries(uuid.New(), &service.ScheduleSeriesRequest{
		Start:    "2024-06-03",
		RRule:    "FREQ=DAILY",
		Position: "Helm",
	})

	suite.ErrorIs(err, apperrors.ErrSeriesTooLong)
}

func (suite *SailorServiceTestSuite) TestScheduleSeriesInvalidRule() {
	_, err := suite.service.ScheduleSeries(uuid.New(), &service.ScheduleSeriesRequest{
		Start:    "2024-06-03",
		RRule:    "FREQ=SOMETIMES",
		Position: "Helm",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidRRule)
}

func (suite *SailorServiceTestSuite) TestRunActionUnknown() {
	_, err := suite.service.RunAction(context.Background(), "delete_selected", &service.ActionRequest{IDs: []uuid.UUID{uuid.New()}})

	suite.ErrorIs(err, apperrors.ErrUnknownAction)
}

func (suite *SailorServiceTestSuite) TestRunActionEmptySelection() {
	_, err := suite.service.RunAction(context.Background(), admin.ActionAckJun, &service.ActionRequest{})

	suite.ErrorIs(err, apperrors.ErrEmptySelection)
}

func (suite *SailorServiceTestSuite) TestRunActionAcknowledge() {
	fresh := newSailor("Adams", "")
	noted := newSailor("Baker", "prefers mid watches")
	done := newSailor("Clark", "JUN ack'd")
	ids := []uuid.UUID{fresh.ID, noted.ID, done.ID}

	suite.expectTransaction()
	suite.sailors.EXPECT().GetByIDs(ids, suite.since).Return([]models.Sailor{fresh, noted, done}, nil).Times(1)
	suite.sailors.EXPECT().UpdateNotes(fresh.ID, "JUN ack'd").Return(nil).Times(1)
	suite.sailors.EXPECT().UpdateNotes(noted.ID, "JUN ack'd // prefers mid watches").Return(nil).Times(1)

	result, err := suite.service.RunAction(context.Background(), admin.ActionAckJun, &service.ActionRequest{IDs: ids})

	suite.Require().NoError(err)
	suite.Equal(3, result.Selected)
	suite.Equal(2, result.Updated)
	suite.Nil(result.CSV)
}

func (suite *SailorServiceTestSuite) TestAcknowledgeStopsOnWriteError() {
	first := newSailor("Adams", "")
	second := newSailor("Baker", "")
	ids := []uuid.UUID{first.ID, second.ID}

	suite.expectTransaction()
	suite.sailors.EXPECT().GetByIDs(ids, suite.since).Return([]models.Sailor{first, second}, nil).Times(1)
	suite.sailors.EXPECT().UpdateNotes(first.ID, gomock.Any()).Return(errors.New("deadlock detected")).Times(1)

	updated, err := suite.service.Acknowledge(context.Background(), ids)

	suite.Error(err)
	suite.Zero(updated)
	suite.Contains(err.Error(), "Adams")
}

func (suite *SailorServiceTestSuite) TestAcknowledgeUnknownSailorChangesNothing() {
	known := newSailor("Adams", "")
	missing := uuid.New()
	ids := []uuid.UUID{known.ID, missing}

	suite.expectTransaction()
	suite.sailors.EXPECT().GetByIDs(ids, suite.since).Return([]models.Sailor{known}, nil).Times(1)
	suite.sailors.EXPECT().UpdateNotes(gomock.Any(), gomock.Any()).Times(0)

	updated, err := suite.service.Acknowledge(context.Background(), ids)

	suite.ErrorIs(err, apperrors.ErrSailorNotFound)
	suite.Contains(err.Error(), missing.String())
	suite.Zero(updated)
}

func (suite *SailorServiceTestSuite) TestExportUnknownSailor() {
	missing := uuid.New()
	suite.sailors.EXPECT().GetByIDs([]uuid.UUID{missing}, suite.since).Return(nil, nil).Times(1)

	_, err := suite.service.Export([]uuid.UUID{missing})

	suite.ErrorIs(err, apperrors.ErrSailorNotFound)
}

func (suite *SailorServiceTestSuite) TestRunActionExport() {
	sailor := newSailor("Jones, A", "")
	sailor.InTeams = true
	suite.sailors.EXPECT().GetByIDs([]uuid.UUID{sailor.ID}, suite.since).Return([]models.Sailor{sailor}, nil).Times(1)

	result, err := suite.service.RunAction(context.Background(), admin.ActionExport, &service.ActionRequest{IDs: []uuid.UUID{sailor.ID}})

	suite.Require().NoError(err)
	suite.Equal(admin.ExportFilename, result.Filename)

	records, err := csv.NewReader(bytes.NewReader(result.CSV)).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("Name", records[0][0])
	suite.Equal("Watches", records[0][len(records[0])-1])
	suite.Equal("Jones, A", records[1][0])
	suite.Equal("True", records[1][7])
}

func (suite *SailorServiceTestSuite) TestExportRoster() {
	suite.sailors.EXPECT().ListActive(suite.since, false).Return([]models.Sailor{newSailor("Adams", "")}, nil).Times(1)

	out, err := suite.service.ExportRoster(false)

	suite.Require().NoError(err)
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	suite.Require().NoError(err)
	suite.Len(records, 2)
}

func TestSailorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SailorServiceTestSuite))
}
