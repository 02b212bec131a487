// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrSlotUnavailable signals that a conditional claim matched
// no rows because another booking already consumed the slot, while the
// various not-found errors map to HTTP 404 responses.
package repository

import "errors"

// ErrSlotNotFound is returned when a slot id does not exist.
var ErrSlotNotFound = errors.New("slot not found")

// ErrSlotUnavailable is returned by the conditional claim when the slot
// exists but is_available is already false. Handlers should translate
// this into an HTTP 409 response.
var ErrSlotUnavailable = errors.New("slot unavailable")

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSectionNotFound is returned when no content document has been saved
// for a section yet. Callers decide whether that means a 404 or an
// application default (the payment section falls back to defaults).
var ErrSectionNotFound = errors.New("content section not found")

// ErrReviewNotFound is returned when a review id does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ErrProjectNotFound is returned when a project id does not exist.
var ErrProjectNotFound = errors.New("project not found")
