package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"hotelhub/internal/export"
	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Check availability
// @Description Check whether a room is free for a half-open [check-in, check-out) stay
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/check [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	stay, err := req.ToStay()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	available, err := h.bookingUseCase.CheckAvailability(c.Request.Context(), req.RoomID, stay)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	res := resdto.AvailabilityResponse{
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: available,
	}
	if !available {
		res.Message = "Room already booked for these dates"
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create booking
// @Description Book a room for a guest; fails if the dates overlap an active booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	bookingRM, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrRoomUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Room already booked for these dates",
			})
		case errors.Is(err, usecase.ErrBookingValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(bookingRM))
}

// @Summary List bookings
// @Description List all bookings with their room details
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(bookings))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Update booking status
// @Description Move a booking through its lifecycle (check-in, check-out, cancel)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.UpdateStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status value",
			})
		case errors.Is(err, usecase.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Status transition not allowed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Export bookings as Excel
// @Description Download all bookings as an .xlsx workbook
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings/export/excel [get]
func (h *BookingHandler) ExportBookings(c *gin.Context) {
	bookings, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	data, err := export.BookingsExcel(bookings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Export failed",
		})
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, excelContentType, data)
}
