package handler // handler defines http handlers

import (
	"context" // context bounds the async publish goroutine
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types
	"strings" // strings provides trimming helpers
	"time"    // time validates date and clock strings

	"github.com/arefins/consultation-booking/internal/model"      // model holds the wire formats
	"github.com/arefins/consultation-booking/internal/queue"      // queue defines booking event payloads
	"github.com/arefins/consultation-booking/internal/repository" // repository holds data access layer
	queue_publisher "github.com/arefins/consultation-booking/internal/service"
	"github.com/labstack/echo/v4" // echo defines request context types
)

// AdminHandler bundles repositories for the site owner to manage slots,
// bookings and portfolio content.
type AdminHandler struct {
	Slots    *repository.SlotRepo    // SlotRepo provides consultation slot persistence
	Bookings *repository.BookingRepo // BookingRepo provides booking persistence
	Content  *repository.ContentRepo // ContentRepo provides content section persistence
	Reviews  *repository.ReviewRepo  // ReviewRepo provides review persistence
	Projects *repository.ProjectRepo // ProjectRepo provides project persistence

	// Publish dispatches booking events after status changes; defaults to
	// the RabbitMQ publisher, replaceable in tests.
	Publish func(ctx context.Context, event queue.BookingEvent) error
}

// NewAdminHandler constructs a new AdminHandler and panics if any dependency is nil
func NewAdminHandler(slots *repository.SlotRepo, bookings *repository.BookingRepo, content *repository.ContentRepo, reviews *repository.ReviewRepo, projects *repository.ProjectRepo) *AdminHandler {
	if slots == nil || bookings == nil || content == nil || reviews == nil || projects == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		Slots:    slots,
		Bookings: bookings,
		Content:  content,
		Reviews:  reviews,
		Projects: projects,
		Publish:  queue_publisher.PublishBookingEvent,
	}
}

// publishAsync dispatches an event on a detached context so the HTTP
// response never waits on the broker.  The write already committed;
// publish failures are logged inside the publisher and otherwise
// ignored.
func publishAsync(publish func(ctx context.Context, event queue.BookingEvent) error, event queue.BookingEvent) {
	if publish == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = publish(ctx, event)
	}()
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) { // begin getUserID helper
	v := c.Get("user_id") // fetch user_id from context
	switch t := v.(type) { // perform type switch on the value
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context") // return error if value is missing or invalid
}

// parseIDParam reads a numeric :id path parameter.
func parseIDParam(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// validDate reports whether s is a calendar date in YYYY-MM-DD form.
func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

// normalizeClock accepts HH:MM or HH:MM:SS and returns the canonical
// HH:MM:SS form the slot table stores.  The second return value is false
// when the input is not a valid time of day.
func normalizeClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format(model.TimeLayout), true
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format(model.TimeLayout), true
	}
	return "", false
}
