package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"watchbill-admin/internal/admin"
	"watchbill-admin/internal/api/handlers"
	apperrors "watchbill-admin/internal/errors"
	"watchbill-admin/internal/mocks"
	"watchbill-admin/internal/service"
	"watchbill-admin/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SailorHandlerTestSuite defines the test suite for SailorHandler
type SailorHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSailorSvc *mocks.MockSailorServiceInterface
	handler       *handlers.SailorHandler
	http          *testutils.HTTPTestSuite
}

func (suite *SailorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSailorSvc = mocks.NewMockSailorServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSailorHandler(suite.mockSailorSvc)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/admin/sailors", suite.handler.ListSailors)
	r.GET("/admin/sailors/layout", suite.handler.GetLayout)
	r.POST("/admin/sailors", suite.handler.CreateSailor)
	r.GET("/admin/sailors/:id", suite.handler.GetSailor)
	r.PUT("/admin/sailors/:id", suite.handler.UpdateSailor)
	r.POST("/admin/sailors/actions/:action", suite.handler.RunAction)
	r.POST("/admin/sailors/:id/events", suite.handler.AddEvent)
	r.POST("/admin/sailors/:id/events/series", suite.handler.ScheduleSeries)
	r.PUT("/admin/sailors/:id/events/:eventId", suite.handler.UpdateEvent)
	r.DELETE("/admin/sailors/:id/events/:eventId", suite.handler.DeleteEvent)
}

func (suite *SailorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SailorHandlerTestSuite) TestListSailorsPassesQuery() {
	suite.mockSailorSvc.EXPECT().
		ChangeList(gomock.Any()).
		DoAndReturn(func(p admin.ListParams) (*admin.ChangeList, error) {
			suite.Equal("-watch_count", p.Order)
			suite.Equal(2, p.Page)
			suite.Equal(map[string]string{"dept": "Nav", "active__exact": "_all"}, p.Filters)
			return &admin.ChangeList{
				Rows:     []admin.Row{{Name: "Adams", WatchCount: 3}},
				Total:    1,
				Page:     2,
				PageSize: 100,
				Ordering: "-watch_count",
			}, nil
		})

	w := suite.http.MakeRequest(http.MethodGet, "/admin/sailors?o=-watch_count&page=2&dept=Nav&active__exact=_all", nil)

	var got admin.ChangeList
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(1, got.Total)
	suite.Require().Len(got.Rows, 1)
	suite.Equal("Adams", got.Rows[0].Name)
	suite.Equal(3, got.Rows[0].WatchCount)
}

func (suite *SailorHandlerTestSuite) TestListSailorsInvalidFilter() {
	suite.mockSailorSvc.EXPECT().ChangeList(gomock.Any()).Return(nil, apperrors.ErrInvalidFilter)

	w := suite.http.MakeRequest(http.MethodGet, "/admin/sailors?quald=maybe", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid filter value")
}

func (suite *SailorHandlerTestSuite) TestGetLayout() {
	sailorAdmin, err := admin.NewSailorAdmin(100, nil)
	suite.Require().NoError(err)
	suite.mockSailorSvc.EXPECT().Layout().Return(sailorAdmin.Layout())

	w := suite.http.MakeRequest(http.MethodGet, "/admin/sailors/layout", nil)

	var got admin.Layout
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("qual", got.ListFilter[0])
	suite.Len(got.Actions, 2)
}

func (suite *SailorHandlerTestSuite) TestGetSailorInvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/admin/sailors/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid sailor ID")
}

func (suite *SailorHandlerTestSuite) TestGetSailorNotFound() {
	id := uuid.New()
	suite.mockSailorSvc.EXPECT().Get(id).Return(nil, apperrors.ErrSailorNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/admin/sailors/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "sailor not found")
}

func (suite *SailorHandlerTestSuite) TestCreateSailor() {
	suite.mockSailorSvc.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateSailorRequest) (*service.SailorResponse, error) {
			suite.Equal("Evans, P", req.Name)
			return &service.SailorResponse{ID: uuid.New(), Name: req.Name, Active: true}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors", map[string]interface{}{"name": "Evans, P"})

	var got service.SailorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal("Evans, P", got.Name)
}

func (suite *SailorHandlerTestSuite) TestCreateSailorValidationError() {
	suite.mockSailorSvc.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("email", "must be an email"))

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors", map[string]interface{}{"name": "X", "email": "x"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "email")
}

func (suite *SailorHandlerTestSuite) TestUpdateSailorInternalError() {
	id := uuid.New()
	suite.mockSailorSvc.EXPECT().Update(id, gomock.Any()).Return(nil, errors.New("connection refused"))

	w := suite.http.MakeRequest(http.MethodPut, "/admin/sailors/"+id.String(), map[string]interface{}{"notes": "x"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to update sailor")
}

func (suite *SailorHandlerTestSuite) TestRunActionExportReturnsCSV() {
	id := uuid.New()
	suite.mockSailorSvc.EXPECT().
		RunAction(gomock.Any(), "export", &service.ActionRequest{IDs: []uuid.UUID{id}}).
		Return(&service.ActionResult{
			Action:   "export",
			Selected: 1,
			Filename: "WB_Roster.csv",
			CSV:      []byte("Name,Watches\nAdams,\n"),
		}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors/actions/export", map[string]interface{}{"ids": []string{id.String()}})

	records := testutils.AssertCSVResponse(suite.T(), w, "WB_Roster.csv")
	suite.Equal([][]string{{"Name", "Watches"}, {"Adams", ""}}, records)
}

func (suite *SailorHandlerTestSuite) TestRunActionAcknowledge() {
	suite.mockSailorSvc.EXPECT().
		RunAction(gomock.Any(), "ack_jun", gomock.Any()).
		Return(&service.ActionResult{Action: "ack_jun", Selected: 2, Updated: 1}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors/actions/ack_jun",
		map[string]interface{}{"ids": []string{uuid.NewString(), uuid.NewString()}})

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(float64(1), got["updated"])
}

func (suite *SailorHandlerTestSuite) TestRunActionEmptySelection() {
	suite.mockSailorSvc.EXPECT().
		RunAction(gomock.Any(), "ack_jun", gomock.Any()).
		Return(nil, apperrors.ErrEmptySelection)

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors/actions/ack_jun", map[string]interface{}{"ids": []string{}})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "no sailors selected")
}

func (suite *SailorHandlerTestSuite) TestRunActionSchemaError() {
	suite.mockSailorSvc.EXPECT().
		RunAction(gomock.Any(), "export", gomock.Any()).
		Return(nil, &apperrors.SchemaError{Missing: []string{"Watches"}})

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors/actions/export", map[string]interface{}{"ids": []string{uuid.NewString()}})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "missing columns Watches")
}

func (suite *SailorHandlerTestSuite) TestAddEvent() {
	id := uuid.New()
	suite.mockSailorSvc.EXPECT().
		AddEvent(id, &service.EventRequest{Date: "2024-06-05", Position: "Helm"}).
		Return(&service.EventResponse{ID: uuid.New(), SailorID: id, Date: "2024-06-05", Position: "Helm", Active: true}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors/"+id.String()+"/events",
		map[string]interface{}{"date": "2024-06-05", "position": "Helm"})

	var got service.EventResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal("Helm", got.Position)
}

func (suite *SailorHandlerTestSuite) TestScheduleSeriesTooLong() {
	id := uuid.New()
	suite.mockSailorSvc.EXPECT().ScheduleSeries(id, gomock.Any()).Return(nil, apperrors.ErrSeriesTooLong)

	w := suite.http.MakeRequest(http.MethodPost, "/admin/sailors/"+id.String()+"/events/series",
		map[string]interface{}{"start": "2024-06-03", "rrule": "FREQ=DAILY", "position": "Helm"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SailorHandlerTestSuite) TestUpdateEventInvalidEventID() {
	w := suite.http.MakeRequest(http.MethodPut, "/admin/sailors/"+uuid.NewString()+"/events/nope", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid event ID")
}

func (suite *SailorHandlerTestSuite) TestDeleteEvent() {
	sailorID, eventID := uuid.New(), uuid.New()
	suite.mockSailorSvc.EXPECT().DeleteEvent(sailorID, eventID).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/admin/sailors/"+sailorID.String()+"/events/"+eventID.String(), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *SailorHandlerTestSuite) TestDeleteEventNotFound() {
	sailorID, eventID := uuid.New(), uuid.New()
	suite.mockSailorSvc.EXPECT().DeleteEvent(sailorID, eventID).Return(apperrors.ErrEventNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/admin/sailors/"+sailorID.String()+"/events/"+eventID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "event not found")
}

func TestSailorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SailorHandlerTestSuite))
}
