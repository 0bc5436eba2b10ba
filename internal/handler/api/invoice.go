package api

import (
	"errors"
	"fmt"
	"net/http"

	"hotelhub/internal/export"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	bookingUseCase usecase.BookingUseCase
	hotel          config.HotelConfig
	clock          clock.Clock
}

func NewInvoiceHandler(bookingUseCase usecase.BookingUseCase, hotel config.HotelConfig, clk clock.Clock) *InvoiceHandler {
	return &InvoiceHandler{
		bookingUseCase: bookingUseCase,
		hotel:          hotel,
		clock:          clk,
	}
}

// @Summary Download booking invoice
// @Description Generate a PDF invoice for a booking
// @Tags bookings
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{id}/invoice [get]
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
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

	data, err := export.InvoicePDF(h.hotel, bookingRM, h.clock.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invoice generation failed",
		})
		return
	}

	filename := fmt.Sprintf("invoice_%s.pdf", bookingRM.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
