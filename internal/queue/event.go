// Package queue defines message payloads exchanged over the message broker.
package queue

import "github.com/arefins/consultation-booking/internal/model"

// QueueName is the durable queue carrying all booking events.
const QueueName = "booking.events"

// Event types; they select which mails the consumer sends.
const (
	TypeNewBooking   = "new_booking"
	TypeStatusUpdate = "status_update"
)

// BookingEvent is published after a booking is created or after an
// administrator changes its status.  The booking carries its joined slot
// so the consumer can render mail without querying the primary database.
// Publishing is fire-and-forget: a failed publish is logged by the
// publisher and ignored by the caller, so the booking operation never
// fails because of notification trouble.
type BookingEvent struct {
	Type    string        `json:"type"`
	Booking model.Booking `json:"booking"`
}
