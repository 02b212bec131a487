package model

import "time"

// DateLayout and TimeLayout are the storage formats for slot calendar
// dates and times of day.  Dates are date-only strings and times carry
// seconds, matching the DATE and TIME column types.  Clients are expected
// to render only HH:MM.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Slot represents a bookable consultation time window on a single
// calendar day.  A slot is created by an administrator and consumed by
// at most one booking; the IsAvailable flag is flipped off when a
// booking claims it.
//
// Fields:
//  ID          – primary key identifier.
//  Date        – calendar date of the window (date-only).
//  StartTime   – time of day the window opens (must precede EndTime).
//  EndTime     – time of day the window closes.
//  IsAvailable – whether the window can still be booked.
//  CreatedAt   – creation timestamp.
type Slot struct {
	ID          uint64    `json:"id"`           // consultation_slots.id
	Date        string    `json:"date"`         // consultation_slots.date
	StartTime   string    `json:"start_time"`   // consultation_slots.start_time
	EndTime     string    `json:"end_time"`     // consultation_slots.end_time
	IsAvailable bool      `json:"is_available"` // consultation_slots.is_available
	CreatedAt   time.Time `json:"created_at"`   // consultation_slots.created_at
}
