//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeBookingUseCase struct {
	checkAvailability func(roomID uuid.UUID, stay booking.StayPeriod) (bool, error)
	createBooking     func(params usecase.CreateBookingParams) (*readmodel.BookingRM, error)
	updateStatus      func(id uuid.UUID, status string) (*readmodel.BookingRM, error)
	getBooking        func(id uuid.UUID) (*readmodel.BookingRM, error)
	listBookings      func() ([]*readmodel.BookingRM, error)
}

func (f *fakeBookingUseCase) CheckAvailability(_ context.Context, roomID uuid.UUID, stay booking.StayPeriod) (bool, error) {
	return f.checkAvailability(roomID, stay)
}

func (f *fakeBookingUseCase) CreateBooking(_ context.Context, params usecase.CreateBookingParams) (*readmodel.BookingRM, error) {
	return f.createBooking(params)
}

func (f *fakeBookingUseCase) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*readmodel.BookingRM, error) {
	return f.updateStatus(id, status)
}

func (f *fakeBookingUseCase) GetBooking(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	return f.getBooking(id)
}

func (f *fakeBookingUseCase) ListBookings(context.Context) ([]*readmodel.BookingRM, error) {
	return f.listBookings()
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	uc     *fakeBookingUseCase
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.uc = &fakeBookingUseCase{}
	handler := api.NewBookingHandler(s.uc)

	s.router.POST("/bookings/check", handler.CheckAvailability)
	s.router.POST("/bookings", handler.CreateBooking)
	s.router.GET("/bookings", handler.ListBookings)
	s.router.GET("/bookings/:id", handler.GetBooking)
	s.router.PUT("/bookings/:id/status", handler.UpdateStatus)
	s.router.GET("/bookings/export/excel", handler.ExportBookings)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) performJSON(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleRM(status string) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:            uuid.New(),
		RoomID:        uuid.New(),
		RoomNumber:    "101",
		RoomType:      "Deluxe",
		Tariff:        4000,
		CustomerName:  "Asha Patel",
		CustomerEmail: "asha@example.com",
		CheckIn:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:        status,
	}
}

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	body := map[string]any{
		"roomId":    uuid.New().String(),
		"check_in":  "2026-03-10",
		"check_out": "2026-03-12",
	}

	s.Run("available room returns 200", func() {
		s.uc.checkAvailability = func(uuid.UUID, booking.StayPeriod) (bool, error) { return true, nil }

		rec := s.performJSON(http.MethodPost, "/bookings/check", body)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"available":true`)
	})

	s.Run("inverted dates return 400", func() {
		bad := map[string]any{
			"roomId":    uuid.New().String(),
			"check_in":  "2026-03-12",
			"check_out": "2026-03-10",
		}
		rec := s.performJSON(http.MethodPost, "/bookings/check", bad)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown room returns 404", func() {
		s.uc.checkAvailability = func(uuid.UUID, booking.StayPeriod) (bool, error) {
			return false, usecase.ErrRoomNotFound
		}
		rec := s.performJSON(http.MethodPost, "/bookings/check", body)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	body := map[string]any{
		"roomId":         uuid.New().String(),
		"customer_name":  "Asha Patel",
		"customer_email": "asha@example.com",
		"check_in":       "2026-03-10",
		"check_out":      "2026-03-12",
	}

	s.Run("success returns 201 with derived fields", func() {
		s.uc.createBooking = func(usecase.CreateBookingParams) (*readmodel.BookingRM, error) {
			return sampleRM("booked"), nil
		}

		rec := s.performJSON(http.MethodPost, "/bookings", body)
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"nights":2`)
		s.Contains(rec.Body.String(), `"amount":8000`)
		s.Contains(rec.Body.String(), `"checkIn":"2026-03-10"`)
	})

	s.Run("occupied dates return 400", func() {
		s.uc.createBooking = func(usecase.CreateBookingParams) (*readmodel.BookingRM, error) {
			return nil, usecase.ErrRoomUnavailable
		}
		rec := s.performJSON(http.MethodPost, "/bookings", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing fields return 400", func() {
		rec := s.performJSON(http.MethodPost, "/bookings", map[string]any{"roomId": uuid.New().String()})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()

	s.Run("legal transition returns 200", func() {
		s.uc.updateStatus = func(_ uuid.UUID, status string) (*readmodel.BookingRM, error) {
			return sampleRM(status), nil
		}
		rec := s.performJSON(http.MethodPut, "/bookings/"+id.String()+"/status", map[string]any{"status": "checked-in"})
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"status":"checked-in"`)
	})

	s.Run("illegal transition returns 409", func() {
		s.uc.updateStatus = func(uuid.UUID, string) (*readmodel.BookingRM, error) {
			return nil, usecase.ErrInvalidTransition
		}
		rec := s.performJSON(http.MethodPut, "/bookings/"+id.String()+"/status", map[string]any{"status": "checked-out"})
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown status returns 400", func() {
		s.uc.updateStatus = func(uuid.UUID, string) (*readmodel.BookingRM, error) {
			return nil, usecase.ErrInvalidStatus
		}
		rec := s.performJSON(http.MethodPut, "/bookings/"+id.String()+"/status", map[string]any{"status": "confirmed"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed id returns 400", func() {
		rec := s.performJSON(http.MethodPut, "/bookings/not-a-uuid/status", map[string]any{"status": "cancelled"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown booking returns 404", func() {
		s.uc.updateStatus = func(uuid.UUID, string) (*readmodel.BookingRM, error) {
			return nil, usecase.ErrBookingNotFound
		}
		rec := s.performJSON(http.MethodPut, "/bookings/"+id.String()+"/status", map[string]any{"status": "cancelled"})
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestExportBookings() {
	s.uc.listBookings = func() ([]*readmodel.BookingRM, error) {
		return []*readmodel.BookingRM{sampleRM("booked")}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/bookings/export/excel", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "spreadsheetml")
	s.Contains(rec.Header().Get("Content-Disposition"), "attachment")
	s.NotEmpty(rec.Body.Bytes())
}
