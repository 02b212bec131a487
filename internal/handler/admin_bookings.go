package handler // handler package contains admin booking management handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/queue"
	"github.com/arefins/consultation-booking/internal/repository"
)

// ListBookings handles GET /v1/admin/bookings.  Bookings come back
// newest first with their slot joined in; an optional ?status= query
// narrows the list to one lifecycle state.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	var status model.BookingStatus
	if raw := strings.ToLower(strings.TrimSpace(c.QueryParam("status"))); raw != "" {
		status = model.BookingStatus(raw)
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status filter"})
		}
	}
	bookings, err := h.Bookings.ListWithSlots(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"bookings": bookings})
}

// GetBooking handles GET /v1/admin/bookings/:id.
func (h *AdminHandler) GetBooking(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}
	b, err := h.Bookings.GetWithSlot(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	return c.JSON(http.StatusOK, b)
}

// UpdateBooking handles PATCH /v1/admin/bookings/:id.  Status moves are
// checked against the lifecycle graph (pending to confirmed or
// cancelled, confirmed to completed or cancelled) and an illegal move is
// a 409.  A status_update event fires only when the stored status
// actually changed; saving notes alone stays silent.
func (h *AdminHandler) UpdateBooking(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}
	var body struct {
		Status     *string `json:"status"`
		AdminNotes *string `json:"admin_notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Status == nil && body.AdminNotes == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "nothing to update"})
	}

	ctx := c.Request().Context()
	current, err := h.Bookings.GetWithSlot(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}

	var next *model.BookingStatus
	statusChanged := false
	if body.Status != nil {
		s := model.BookingStatus(strings.ToLower(strings.TrimSpace(*body.Status)))
		if !s.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
		}
		if !current.Status.CanTransition(s) {
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "cannot move booking from " + string(current.Status) + " to " + string(s),
			})
		}
		statusChanged = s != current.Status
		next = &s
	}

	if err := h.Bookings.UpdateFields(ctx, id, next, body.AdminNotes); err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update booking"})
	}

	fresh, err := h.Bookings.GetWithSlot(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	if statusChanged {
		publishAsync(h.Publish, queue.BookingEvent{Type: queue.TypeStatusUpdate, Booking: fresh})
	}
	return c.JSON(http.StatusOK, fresh)
}
