package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arefins/consultation-booking/internal/model"
)

func sampleBooking() model.Booking {
	return model.Booking{
		ID:            1,
		Reference:     "b7f9c2d0",
		SlotID:        7,
		ClientName:    "Jane Doe",
		ClientEmail:   "jane@x.com",
		ClientPhone:   "+8801700000000",
		PaymentMethod: model.PaymentBkash,
		TransactionID: "TX123",
		Amount:        5000,
		Status:        model.StatusPending,
		Slot: &model.Slot{
			ID:        7,
			Date:      "2025-06-01",
			StartTime: "10:00:00",
			EndTime:   "10:30:00",
		},
	}
}

func TestBookingMailsNewBooking(t *testing.T) {
	msgs := BookingMails(EventNewBooking, sampleBooking(), "operator@x.com")
	require.Len(t, msgs, 2, "a new booking notifies the operator and the client")

	operator, client := msgs[0], msgs[1]
	assert.Equal(t, "operator@x.com", operator.To)
	assert.Equal(t, "New Booking: Jane Doe", operator.Subject)
	assert.Contains(t, operator.Body, "TX123")
	assert.Contains(t, operator.Body, "BDT 5000")
	assert.Contains(t, operator.Body, "10:00 - 10:30") // HH:MM only, seconds dropped

	assert.Equal(t, "jane@x.com", client.To)
	assert.Equal(t, "Booking Received - Pending Confirmation", client.Subject)
	assert.Contains(t, client.Body, "b7f9c2d0")
	assert.Contains(t, client.Body, "2025-06-01")
}

func TestBookingMailsStatusUpdate(t *testing.T) {
	b := sampleBooking()
	b.Status = model.StatusConfirmed
	msgs := BookingMails(EventStatusUpdate, b, "operator@x.com")
	require.Len(t, msgs, 1, "a status change notifies only the client")
	assert.Equal(t, "jane@x.com", msgs[0].To)
	assert.Equal(t, "Booking Confirmed", msgs[0].Subject)
	assert.Contains(t, msgs[0].Body, "confirmed")
	assert.Contains(t, msgs[0].Body, "We look forward to meeting you")
}

func TestBookingMailsCancelled(t *testing.T) {
	b := sampleBooking()
	b.Status = model.StatusCancelled
	msgs := BookingMails(EventStatusUpdate, b, "operator@x.com")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Body, "If you believe this is an error")
}

func TestBookingMailsDeletedSlot(t *testing.T) {
	b := sampleBooking()
	b.Slot = nil
	msgs := BookingMails(EventNewBooking, b, "operator@x.com")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Body, "Date: TBD")
	assert.Contains(t, msgs[0].Body, "Time: TBD")
}

func TestBookingMailsUnknownEvent(t *testing.T) {
	assert.Nil(t, BookingMails("payment_failed", sampleBooking(), "operator@x.com"))
}
