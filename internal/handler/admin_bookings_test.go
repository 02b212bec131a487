package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/queue"
	"github.com/arefins/consultation-booking/internal/repository"
)

// anyQuery disables SQL string matching; these tests drive the handlers
// through mocked rows and assert on responses and published events.
var anyQuery = sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error { return nil })

var joinedCols = []string{
	"id", "reference", "slot_id", "client_name", "client_email", "client_phone",
	"payment_method", "transaction_id", "amount", "status", "admin_notes",
	"created_at", "updated_at",
	"s_id", "s_date", "s_start_time", "s_end_time", "s_is_available", "s_created_at",
}

// joinedBookingRows builds one booking row with its slot joined in, as
// GetWithSlot selects it.
func joinedBookingRows(id uint64, status model.BookingStatus, notes any) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(joinedCols).AddRow(
		id, "5f0c2c1e-ref", 7, "Jane Doe", "jane@x.com", "+8801711111111",
		"bkash", "TX123", 5000, string(status), notes,
		now, now,
		7, now, []byte("10:00:00"), []byte("10:30:00"), false, now,
	)
}

// newAdminFixture wires an AdminHandler onto a mocked DB with a buffered
// event recorder in place of the RabbitMQ publisher.
func newAdminFixture(t *testing.T) (*AdminHandler, sqlmock.Sqlmock, chan queue.BookingEvent) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(anyQuery))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := NewAdminHandler(
		repository.NewSlotRepo(db),
		repository.NewBookingRepo(db),
		repository.NewContentRepo(db),
		repository.NewReviewRepo(db),
		repository.NewProjectRepo(db),
	)
	published := make(chan queue.BookingEvent, 4)
	h.Publish = func(ctx context.Context, event queue.BookingEvent) error {
		published <- event
		return nil
	}
	return h, mock, published
}

func patchBookingContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/bookings/5", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/admin/bookings/:id")
	c.SetParamNames("id")
	c.SetParamValues("5")
	return c, rec
}

func assertNoEvent(t *testing.T, published chan queue.BookingEvent) {
	t.Helper()
	select {
	case ev := <-published:
		t.Fatalf("unexpected %s event published", ev.Type)
	case <-time.After(100 * time.Millisecond):
	}
}

func awaitEvent(t *testing.T, published chan queue.BookingEvent) queue.BookingEvent {
	t.Helper()
	select {
	case ev := <-published:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("expected an event to be published")
		return queue.BookingEvent{}
	}
}

func TestUpdateBookingNotesOnlyPublishesNothing(t *testing.T) {
	h, mock, published := newAdminFixture(t)
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusPending, nil))
	mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusPending, "payment verified"))

	c, rec := patchBookingContext(`{"admin_notes":"payment verified"}`)
	require.NoError(t, h.UpdateBooking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "payment verified")
	require.NoError(t, mock.ExpectationsWereMet(), "notes must still persist")
	assertNoEvent(t, published)
}

func TestUpdateBookingStatusChangePublishesOneEvent(t *testing.T) {
	h, mock, published := newAdminFixture(t)
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusPending, nil))
	mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusConfirmed, nil))

	c, rec := patchBookingContext(`{"status":"confirmed"}`)
	require.NoError(t, h.UpdateBooking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	ev := awaitEvent(t, published)
	assert.Equal(t, queue.TypeStatusUpdate, ev.Type)
	assert.Equal(t, model.StatusConfirmed, ev.Booking.Status)
	require.NotNil(t, ev.Booking.Slot)
	assert.Equal(t, "10:00:00", ev.Booking.Slot.StartTime)
	assertNoEvent(t, published)
}

func TestUpdateBookingSameStatusIsSilentNoOp(t *testing.T) {
	h, mock, published := newAdminFixture(t)
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusPending, nil))
	mock.ExpectExec("").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusPending, nil))

	c, rec := patchBookingContext(`{"status":"pending"}`)
	require.NoError(t, h.UpdateBooking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assertNoEvent(t, published)
}

func TestUpdateBookingIllegalTransitionConflicts(t *testing.T) {
	h, mock, published := newAdminFixture(t)
	// Only the initial read: the write must never be issued.
	mock.ExpectQuery("").WillReturnRows(joinedBookingRows(5, model.StatusCompleted, nil))

	c, rec := patchBookingContext(`{"status":"pending"}`)
	require.NoError(t, h.UpdateBooking(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "completed")
	require.NoError(t, mock.ExpectationsWereMet())
	assertNoEvent(t, published)
}
