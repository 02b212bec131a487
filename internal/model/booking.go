package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking.  A booking
// starts out pending while the operator verifies the payment reference,
// then moves to confirmed and eventually completed, or to cancelled.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from s to next.  The
// graph is monotonic: pending bookings can be confirmed or cancelled,
// confirmed bookings can be completed or cancelled, and completed or
// cancelled bookings are terminal.  Re-asserting the current status is
// allowed so a partial update that repeats the stored value is a no-op
// rather than an error.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Payment methods accepted on a booking.  Payment happens out of band
// (the client sends money over bKash or a bank transfer and submits the
// transaction reference); no gateway is involved.
const (
	PaymentBkash        = "bkash"
	PaymentBankTransfer = "bank_transfer"
)

// ValidPaymentMethod reports whether m names a supported payment rail.
func ValidPaymentMethod(m string) bool {
	return m == PaymentBkash || m == PaymentBankTransfer
}

// Booking records a visitor's request for a consultation slot together
// with the payment reference they supplied.  Exactly one booking is
// intended per slot; the claim that flips the slot unavailable and the
// booking insert happen in one transaction.
//
// Fields:
//  ID            – primary key identifier.
//  Reference     – opaque public reference code handed to the client.
//  SlotID        – the claimed consultation slot.
//  ClientName    – visitor's name.
//  ClientEmail   – visitor's email, used for confirmation mail.
//  ClientPhone   – visitor's phone number.
//  PaymentMethod – bkash or bank_transfer.
//  TransactionID – free-text payment reference, verified manually.
//  Amount        – fee charged, snapshotted at submission time.
//  Status        – lifecycle state, starts at pending.
//  AdminNotes    – optional operator notes.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Booking struct {
	ID            uint64        `json:"id"`             // consultation_bookings.id
	Reference     string        `json:"reference"`      // consultation_bookings.reference
	SlotID        uint64        `json:"slot_id"`        // consultation_bookings.slot_id
	ClientName    string        `json:"client_name"`    // consultation_bookings.client_name
	ClientEmail   string        `json:"client_email"`   // consultation_bookings.client_email
	ClientPhone   string        `json:"client_phone"`   // consultation_bookings.client_phone
	PaymentMethod string        `json:"payment_method"` // consultation_bookings.payment_method
	TransactionID string        `json:"transaction_id"` // consultation_bookings.transaction_id
	Amount        uint32        `json:"amount"`         // consultation_bookings.amount
	Status        BookingStatus `json:"status"`         // consultation_bookings.status
	AdminNotes    *string       `json:"admin_notes"`    // consultation_bookings.admin_notes (nullable)
	CreatedAt     time.Time     `json:"created_at"`     // consultation_bookings.created_at
	UpdatedAt     time.Time     `json:"updated_at"`     // consultation_bookings.updated_at

	// Slot is populated on joined reads and used for notification
	// context; it is nil on bare rows.
	Slot *Slot `json:"slot,omitempty"`
}
