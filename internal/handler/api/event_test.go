//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookmyslot/internal/handler/api"
	resdto "bookmyslot/internal/handler/dto/response"
	"bookmyslot/internal/pkg/errs"
	"bookmyslot/internal/usecase/queries"
	"bookmyslot/tests/common/builder"
	"bookmyslot/tests/common/httptest"
	commandsmock "bookmyslot/tests/mock/commands"
	queriesmock "bookmyslot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEventCommands
	mockQueries  *queriesmock.MockEventQueries
	handler      *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEventCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/events", s.handler.CreateEvent)
	s.router.GET("/api/events", s.handler.ListEvents)
	s.router.GET("/api/events/:id", s.handler.GetEvent)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) eventView() *queries.EventView {
	b := builder.NewEventBuilder()
	e := b.BuildReconstructed()
	return queries.ToEventView(e, b.Now)
}

func (s *EventHandlerTestSuite) TestCreateEvent() {
	s.Run("created", func() {
		view := s.eventView()
		reqBody := builder.NewEventBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/events", reqBody)

		var resp resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.Title, resp.Title)
		s.Len(resp.Slots, len(view.Slots))
	})

	s.Run("domain validation maps to 400", func() {
		reqBody := builder.NewEventBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/events", reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid event")
	})

	s.Run("binding failures never reach the command", func() {
		tests := []struct {
			name string
			body string
		}{
			{name: "malformed JSON", body: `{"title": `},
			{name: "title too short", body: `{"title":"ab","slots":[{"start_time":"2026-03-02T09:00:00Z","max_bookings":5}]}`},
			{name: "no slots", body: `{"title":"Go Conference","slots":[]}`},
			{name: "zero capacity", body: `{"title":"Go Conference","slots":[{"start_time":"2026-03-02T09:00:00Z","max_bookings":0}]}`},
			{name: "unparseable start time", body: `{"title":"Go Conference","slots":[{"start_time":"tomorrow","max_bookings":5}]}`},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/events", tt.body)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("unexpected error maps to 500", func() {
		reqBody := builder.NewEventBuilder().BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/events", reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *EventHandlerTestSuite) TestGetEvent() {
	s.Run("found", func() {
		view := s.eventView()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events/"+view.ID.String(), nil)

		var resp resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.TotalSlots, resp.TotalSlots)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrEventNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Event not found")
	})

	s.Run("invalid ID format", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid event ID format")
	})
}

func (s *EventHandlerTestSuite) TestListEvents() {
	s.Run("lists views", func() {
		views := []*queries.EventView{s.eventView(), s.eventView()}

		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events", nil)

		var resp []*resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("empty list stays a JSON array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.EventView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events", nil)
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})
}
