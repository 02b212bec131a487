package queue

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arefins/consultation-booking/internal/mailer"
	"github.com/arefins/consultation-booking/internal/model"
)

// recordingSender captures every attempted send and can be told to fail.
type recordingSender struct {
	sent []mailer.Message
	err  error
}

func (r *recordingSender) Send(msg mailer.Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func eventBody(t *testing.T, ev BookingEvent) []byte {
	t.Helper()
	body, err := json.Marshal(ev)
	require.NoError(t, err)
	return body
}

func testBooking() model.Booking {
	return model.Booking{
		ID:          42,
		ClientName:  "Jane Doe",
		ClientEmail: "jane@x.com",
		Amount:      5000,
		Status:      model.StatusPending,
		Slot:        &model.Slot{Date: "2025-06-01", StartTime: "10:00:00", EndTime: "10:30:00"},
	}
}

func TestHandleMessageNewBookingAttemptsTwoSends(t *testing.T) {
	sender := &recordingSender{}
	body := eventBody(t, BookingEvent{Type: TypeNewBooking, Booking: testBooking()})

	require.NoError(t, handleMessage(body, sender, "operator@x.com"))
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "operator@x.com", sender.sent[0].To)
	assert.Equal(t, "jane@x.com", sender.sent[1].To)
}

func TestHandleMessageStatusUpdateAttemptsOneSend(t *testing.T) {
	sender := &recordingSender{}
	b := testBooking()
	b.Status = model.StatusConfirmed
	body := eventBody(t, BookingEvent{Type: TypeStatusUpdate, Booking: b})

	require.NoError(t, handleMessage(body, sender, "operator@x.com"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "jane@x.com", sender.sent[0].To)
}

func TestHandleMessageSendFailureIsSwallowed(t *testing.T) {
	// A dead relay must not fail the message: both sends are still
	// attempted and the handler reports success so the delivery is acked.
	sender := &recordingSender{err: errors.New("relay down")}
	body := eventBody(t, BookingEvent{Type: TypeNewBooking, Booking: testBooking()})

	assert.NoError(t, handleMessage(body, sender, "operator@x.com"))
	assert.Len(t, sender.sent, 2)
}

func TestHandleMessageMalformedPayload(t *testing.T) {
	sender := &recordingSender{}
	err := handleMessage([]byte("{not json"), sender, "operator@x.com")
	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}
