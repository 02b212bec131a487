package handler // handler package contains admin slot management handlers

import (
	"net/http" // http defines status codes
	"strings"  // strings helps with trimming whitespace

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/repository"
	"github.com/arefins/consultation-booking/internal/slotgen"
)

// ListSlots handles GET /v1/admin/slots.  Unlike the public listing this
// returns every slot regardless of availability or date, so the operator
// can see past and taken slots too.
func (h *AdminHandler) ListSlots(c echo.Context) error {
	slots, err := h.Slots.List(c.Request().Context(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"slots": slots})
}

// CreateSlot handles POST /v1/admin/slots and records a single manual
// slot.  Times accept HH:MM or HH:MM:SS and are stored with seconds.
func (h *AdminHandler) CreateSlot(c echo.Context) error {
	var body struct {
		Date        string `json:"date"`         // calendar day the slot is on
		StartTime   string `json:"start_time"`   // window start
		EndTime     string `json:"end_time"`     // window end
		IsAvailable *bool  `json:"is_available"` // optional, defaults to open
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	body.Date = strings.TrimSpace(body.Date)
	if !validDate(body.Date) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	start, ok := normalizeClock(body.StartTime)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_time"})
	}
	end, ok := normalizeClock(body.EndTime)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_time"})
	}
	// Canonical HH:MM:SS strings are fixed width, so lexicographic order
	// is chronological order.
	if start >= end {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end_time must be after start_time"})
	}
	available := true
	if body.IsAvailable != nil {
		available = *body.IsAvailable
	}
	slot := &model.Slot{Date: body.Date, StartTime: start, EndTime: end, IsAvailable: available}
	if err := h.Slots.Create(c.Request().Context(), slot); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create slot"})
	}
	return c.JSON(http.StatusCreated, slot)
}

// QuickGenerateSlots handles POST /v1/admin/slots/quick-generate.  It
// fills the target date with the standard catalog of windows for the
// requested session length, skipping any start time that already has a
// slot, and reports how many were created versus skipped.  The whole
// batch inserts in one transaction so a partial day never persists.
func (h *AdminHandler) QuickGenerateSlots(c echo.Context) error {
	var body struct {
		Date           string `json:"date"`            // target calendar day
		SessionMinutes int    `json:"session_minutes"` // 30 or 60
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	body.Date = strings.TrimSpace(body.Date)
	if !validDate(body.Date) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	catalog := slotgen.Windows(body.SessionMinutes)
	if catalog == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_minutes must be 30 or 60"})
	}

	ctx := c.Request().Context()
	existing, err := h.Slots.StartTimesByDate(ctx, body.Date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	missing := slotgen.Missing(catalog, existing)
	if len(missing) == 0 {
		return c.JSON(http.StatusOK, map[string]int{"created": 0, "skipped": len(catalog)})
	}

	slots := make([]model.Slot, 0, len(missing))
	for _, w := range missing {
		slots = append(slots, model.Slot{
			Date:        body.Date,
			StartTime:   w.Start,
			EndTime:     w.End,
			IsAvailable: true,
		})
	}
	tx, err := h.Slots.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := h.Slots.CreateBulkTx(ctx, tx, slots); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create slots"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "commit failed"})
	}
	committed = true

	return c.JSON(http.StatusCreated, map[string]int{
		"created": len(missing),
		"skipped": len(catalog) - len(missing),
	})
}

// UpdateSlot handles PATCH /v1/admin/slots/:id.  Only provided fields
// change.  When either time changes, the stored slot is loaded so the
// merged start/end pair can still be ordered.
func (h *AdminHandler) UpdateSlot(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot id"})
	}
	var body struct {
		Date        *string `json:"date"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		IsAvailable *bool   `json:"is_available"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Date == nil && body.StartTime == nil && body.EndTime == nil && body.IsAvailable == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "nothing to update"})
	}
	if body.Date != nil {
		d := strings.TrimSpace(*body.Date)
		if !validDate(d) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		}
		body.Date = &d
	}
	var start, end *string
	if body.StartTime != nil {
		s, ok := normalizeClock(*body.StartTime)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_time"})
		}
		start = &s
	}
	if body.EndTime != nil {
		e, ok := normalizeClock(*body.EndTime)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end_time"})
		}
		end = &e
	}

	ctx := c.Request().Context()
	if start != nil || end != nil {
		current, err := h.Slots.GetByID(ctx, id)
		if err != nil {
			if err == repository.ErrSlotNotFound {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "slot not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
		}
		s, e := current.StartTime, current.EndTime
		if start != nil {
			s = *start
		}
		if end != nil {
			e = *end
		}
		if s >= e {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "end_time must be after start_time"})
		}
	}

	if err := h.Slots.Update(ctx, id, body.Date, start, end, body.IsAvailable); err != nil {
		if err == repository.ErrSlotNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update slot"})
	}
	fresh, err := h.Slots.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteSlot handles DELETE /v1/admin/slots/:id.  The delete is
// unconditional: bookings that reference the slot keep their row and the
// joined reads simply return a nil slot for them.
func (h *AdminHandler) DeleteSlot(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot id"})
	}
	if err := h.Slots.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrSlotNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete slot"})
	}
	return c.NoContent(http.StatusNoContent)
}
