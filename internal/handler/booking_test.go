package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/queue"
	"github.com/arefins/consultation-booking/internal/repository"
)

func validCreateReq() createBookingReq {
	return createBookingReq{
		SlotID:        7,
		ClientName:    "Rahim Uddin",
		ClientEmail:   "rahim@example.com",
		ClientPhone:   "+8801711111111",
		PaymentMethod: "bkash",
		TransactionID: "TXN-12345",
		Amount:        5000,
	}
}

func TestCreateBookingReqValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*createBookingReq)
		wantMsg string
	}{
		{"complete request", func(r *createBookingReq) {}, ""},
		{"bank transfer accepted", func(r *createBookingReq) { r.PaymentMethod = "bank_transfer" }, ""},
		{"missing slot", func(r *createBookingReq) { r.SlotID = 0 }, "slot_id is required"},
		{"missing name", func(r *createBookingReq) { r.ClientName = "" }, "client_name is required"},
		{"missing email", func(r *createBookingReq) { r.ClientEmail = "" }, "client_email is required"},
		{"missing phone", func(r *createBookingReq) { r.ClientPhone = "" }, "client_phone is required"},
		{"missing transaction", func(r *createBookingReq) { r.TransactionID = "" }, "transaction_id is required"},
		{"unknown payment method", func(r *createBookingReq) { r.PaymentMethod = "paypal" }, "payment_method must be bkash or bank_transfer"},
		{"zero fee accepted", func(r *createBookingReq) { r.Amount = 0 }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateReq()
			tc.mutate(&req)
			assert.Equal(t, tc.wantMsg, req.validate())
		})
	}
}

func TestCreateBookingReqNormalize(t *testing.T) {
	req := createBookingReq{
		SlotID:        1,
		ClientName:    "  Karim  ",
		ClientEmail:   " Karim@Example.COM ",
		ClientPhone:   " 017... ",
		PaymentMethod: " BKASH ",
		TransactionID: " txn ",
		Amount:        5000,
	}
	req.normalize()
	assert.Equal(t, "Karim", req.ClientName)
	assert.Equal(t, "karim@example.com", req.ClientEmail)
	assert.Equal(t, "bkash", req.PaymentMethod)
	assert.Equal(t, "txn", req.TransactionID)
	assert.Empty(t, req.validate())
}

func TestNormalizeClock(t *testing.T) {
	got, ok := normalizeClock("10:30")
	assert.True(t, ok)
	assert.Equal(t, "10:30:00", got)

	got, ok = normalizeClock("09:05:30")
	assert.True(t, ok)
	assert.Equal(t, "09:05:30", got)

	_, ok = normalizeClock("25:00")
	assert.False(t, ok)
	_, ok = normalizeClock("half past ten")
	assert.False(t, ok)
}

func TestValidDate(t *testing.T) {
	assert.True(t, validDate("2025-03-01"))
	assert.False(t, validDate("2025-13-01"))
	assert.False(t, validDate("01/03/2025"))
	assert.False(t, validDate(""))
}

// newBookingFixture wires a BookingHandler onto a mocked DB with a
// buffered event recorder in place of the RabbitMQ publisher.
func newBookingFixture(t *testing.T) (*BookingHandler, sqlmock.Sqlmock, chan queue.BookingEvent) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(anyQuery))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := NewBookingHandler(repository.NewSlotRepo(db), repository.NewBookingRepo(db))
	published := make(chan queue.BookingEvent, 4)
	h.Publish = func(ctx context.Context, event queue.BookingEvent) error {
		published <- event
		return nil
	}
	return h, mock, published
}

func postBookingContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/consultation/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBookingClaimsSlotAndPublishes(t *testing.T) {
	h, mock, published := newBookingFixture(t)
	mock.ExpectBegin()
	mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 1)) // claim flips the slot
	mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(5, 1)) // booking insert
	mock.ExpectCommit()
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusPending, nil))

	c, rec := postBookingContext(`{
		"slot_id": 7, "client_name": "Jane Doe", "client_email": "jane@x.com",
		"client_phone": "+8801711111111", "payment_method": "bkash",
		"transaction_id": "TX123", "amount": 5000
	}`)
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	require.NoError(t, mock.ExpectationsWereMet())

	ev := awaitEvent(t, published)
	assert.Equal(t, queue.TypeNewBooking, ev.Type)
	assert.Equal(t, model.StatusPending, ev.Booking.Status)
	assertNoEvent(t, published)
}

func TestCreateBookingTakenSlotConflicts(t *testing.T) {
	h, mock, published := newBookingFixture(t)
	mock.ExpectBegin()
	mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 0)) // claim finds nothing to flip
	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectRollback()

	c, rec := postBookingContext(`{
		"slot_id": 7, "client_name": "Jane Doe", "client_email": "jane@x.com",
		"client_phone": "+8801711111111", "payment_method": "bkash",
		"transaction_id": "TX123", "amount": 5000
	}`)
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet(), "no booking insert after a lost claim")
	assertNoEvent(t, published)
}

func TestReviewBodyValidate(t *testing.T) {
	body := reviewBody{ClientName: "Ayesha", ReviewText: "Great consultation.", Rating: 5}
	assert.Empty(t, body.validate())

	body = reviewBody{ClientName: "Ayesha", ReviewText: "ok", Rating: 0}
	assert.Equal(t, "rating must be between 1 and 5", body.validate())

	body = reviewBody{ClientName: "  ", ReviewText: "ok", Rating: 3}
	assert.Equal(t, "client_name is required", body.validate())
}
