package api

import (
	"errors"
	"net/http"

	reqdto "bookmyslot/internal/handler/dto/request"
	resdto "bookmyslot/internal/handler/dto/response"
	"bookmyslot/internal/pkg/errs"
	"bookmyslot/internal/usecase/commands"
	"bookmyslot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	reservationCommands commands.ReservationCommands
	bookingQueries      queries.BookingQueries
}

func NewBookingHandler(reservationCommands commands.ReservationCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		reservationCommands: reservationCommands,
		bookingQueries:      bookingQueries,
	}
}

// @Summary Create booking
// @Description Reserve one unit of capacity on a slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingView, err := h.reservationCommands.Reserve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Time slot not found",
			})
		case errors.Is(err, errs.ErrSlotClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Time slot is no longer open for booking",
			})
		case errors.Is(err, errs.ErrCapacityExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot just filled up",
			})
		case errors.Is(err, errs.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "User already booked this slot",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking: " + err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingView))
}

// @Summary List bookings by email
// @Description List a user's bookings enriched with event and slot display data
// @Tags bookings
// @Produce json
// @Param email path string true "User email"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings/users/{email} [get]
func (h *BookingHandler) ListBookingsByEmail(c *gin.Context) {
	email := c.Param("email")

	bookingViews, err := h.bookingQueries.ListByUserEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(bookingViews))
	for i, view := range bookingViews {
		response[i] = resdto.FromBookingViewEnriched(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List all bookings
// @Description Diagnostic listing of the whole ledger
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	bookingViews, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(bookingViews))
	for i, view := range bookingViews {
		response[i] = resdto.FromBookingViewEnriched(view)
	}

	c.JSON(http.StatusOK, response)
}
