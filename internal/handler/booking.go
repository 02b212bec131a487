package handler

import (
	"context"  // publish hook signature
	"log"      // fallback logging when the joined re-read fails
	"net/http" // HTTP status codes
	"strings"  // trimming request fields

	"github.com/google/uuid"      // reference codes handed back to clients
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/queue"
	"github.com/arefins/consultation-booking/internal/repository"
	queue_publisher "github.com/arefins/consultation-booking/internal/service"
)

// BookingHandler creates bookings on behalf of anonymous visitors.  The
// claim of the slot and the booking insert run inside one transaction so
// two concurrent submissions for the same slot cannot both succeed.
// Publish is the event dispatch hook; it defaults to the RabbitMQ
// publisher and is a field so tests can substitute a recorder.
type BookingHandler struct {
	SlotRepo    *repository.SlotRepo
	BookingRepo *repository.BookingRepo
	Publish     func(ctx context.Context, event queue.BookingEvent) error
}

// NewBookingHandler constructs a BookingHandler wired to the RabbitMQ
// publisher. Both repositories must be non-nil.
func NewBookingHandler(slots *repository.SlotRepo, bookings *repository.BookingRepo) *BookingHandler {
	if slots == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		SlotRepo:    slots,
		BookingRepo: bookings,
		Publish:     queue_publisher.PublishBookingEvent,
	}
}

type createBookingReq struct {
	SlotID        uint64 `json:"slot_id"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
	Amount        uint32 `json:"amount"`
}

// normalize trims whitespace from the free-text fields and lower-cases
// the email and payment method before validation.
func (r *createBookingReq) normalize() {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientEmail = strings.ToLower(strings.TrimSpace(r.ClientEmail))
	r.ClientPhone = strings.TrimSpace(r.ClientPhone)
	r.PaymentMethod = strings.ToLower(strings.TrimSpace(r.PaymentMethod))
	r.TransactionID = strings.TrimSpace(r.TransactionID)
}

// validate returns a client-facing message for the first missing or
// invalid field, or "" when the request is acceptable.
func (r createBookingReq) validate() string {
	switch {
	case r.SlotID == 0:
		return "slot_id is required"
	case r.ClientName == "":
		return "client_name is required"
	case r.ClientEmail == "":
		return "client_email is required"
	case r.ClientPhone == "":
		return "client_phone is required"
	case r.TransactionID == "":
		return "transaction_id is required"
	case !model.ValidPaymentMethod(r.PaymentMethod):
		return "payment_method must be bkash or bank_transfer"
	}
	// Amount is not validated: it is snapshotted as supplied, and a zero
	// fee is legitimate when the payment section is configured that way.
	return ""
}

// CreateBooking handles POST /v1/consultation/bookings.  On success the
// slot is flipped unavailable, the booking row exists with status
// pending, and a new_booking event is published after commit without
// blocking the response.  Returns 201 with the booking, 400 on invalid
// input, 404 when the slot does not exist and 409 when it is already
// taken.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.normalize()
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx := c.Request().Context()
	tx, err := h.SlotRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Claim the slot first: a conditional update that only succeeds while
	// the slot is still available.  Losing the race surfaces as 409 here
	// and the transaction rolls back without inserting anything.
	if err := h.SlotRepo.ClaimTx(ctx, tx, req.SlotID); err != nil {
		switch err {
		case repository.ErrSlotNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "slot not found"})
		case repository.ErrSlotUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot is no longer available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	booking := &model.Booking{
		Reference:     uuid.New().String(),
		SlotID:        req.SlotID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	}
	if err := h.BookingRepo.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	// Re-read the joined row so both the response and the event carry the
	// slot details.  Fall back to the bare booking if the read fails.
	full, err := h.BookingRepo.GetWithSlot(ctx, booking.ID)
	if err != nil {
		log.Printf("[booking] joined re-read failed for id=%d: %v", booking.ID, err)
		full = *booking
	}

	publishAsync(h.Publish, queue.BookingEvent{Type: queue.TypeNewBooking, Booking: full})

	return c.JSON(http.StatusCreated, full)
}
