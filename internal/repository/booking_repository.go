package repository // repository for consultation booking persistence

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/arefins/consultation-booking/internal/model"
)

// BookingRepo encapsulates database operations for consultation_bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo given a DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// DB exposes the underlying handle for transaction management.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// joinedColumns selects a booking row together with its slot.  The join
// is LEFT because slot deletion is unguarded; a booking may outlive its
// slot and must still render in the admin list.
const joinedColumns = `
	b.id, b.reference, b.slot_id, b.client_name, b.client_email, b.client_phone,
	b.payment_method, b.transaction_id, b.amount, b.status, b.admin_notes,
	b.created_at, b.updated_at,
	s.id, s.date, s.start_time, s.end_time, s.is_available, s.created_at`

func scanJoined(scan func(dest ...any) error) (model.Booking, error) {
	var (
		b         model.Booking
		status    string
		notes     sql.NullString
		slotID    sql.NullInt64
		slotDate  sql.NullTime
		slotStart []byte
		slotEnd   []byte
		slotAvail sql.NullBool
		slotMade  sql.NullTime
	)
	err := scan(
		&b.ID, &b.Reference, &b.SlotID, &b.ClientName, &b.ClientEmail, &b.ClientPhone,
		&b.PaymentMethod, &b.TransactionID, &b.Amount, &status, &notes,
		&b.CreatedAt, &b.UpdatedAt,
		&slotID, &slotDate, &slotStart, &slotEnd, &slotAvail, &slotMade,
	)
	if err != nil {
		return model.Booking{}, err
	}
	b.Status = model.BookingStatus(status)
	if notes.Valid {
		b.AdminNotes = &notes.String
	}
	if slotID.Valid {
		b.Slot = &model.Slot{
			ID:          uint64(slotID.Int64),
			Date:        slotDate.Time.Format(model.DateLayout),
			StartTime:   string(slotStart),
			EndTime:     string(slotEnd),
			IsAvailable: slotAvail.Bool,
			CreatedAt:   slotMade.Time,
		}
	}
	return b, nil
}

// CreateTx inserts a new booking inside tx and populates ID, Status and
// the timestamps.  Status is always pending on creation; callers never
// choose it.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO consultation_bookings
			(reference, slot_id, client_name, client_email, client_phone,
			 payment_method, transaction_id, amount, status, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		b.Reference, b.SlotID, b.ClientName, b.ClientEmail, b.ClientPhone,
		b.PaymentMethod, b.TransactionID, b.Amount, string(model.StatusPending), now, now)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	b.Status = model.StatusPending
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

// GetWithSlot loads one booking joined with its slot.  Used after a
// status update to assemble the notification payload, and after creation
// to return the full record.
func (r *BookingRepo) GetWithSlot(ctx context.Context, id uint64) (model.Booking, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+joinedColumns+`
		FROM consultation_bookings b
		LEFT JOIN consultation_slots s ON s.id = b.slot_id
		WHERE b.id = ?`, id)
	b, err := scanJoined(row.Scan)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// ListWithSlots returns all bookings joined with their slots, newest
// first.  An empty status lists everything; otherwise rows are filtered
// server-side.
func (r *BookingRepo) ListWithSlots(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM consultation_bookings b
		LEFT JOIN consultation_slots s ON s.id = b.slot_id`
	args := []any{}
	if status != "" {
		query += ` WHERE b.status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY b.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanJoined(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateFields persists the supplied status and/or notes onto an
// existing booking.  Nil pointers leave the stored value untouched.
// Returns ErrBookingNotFound when the id does not exist.
func (r *BookingRepo) UpdateFields(ctx context.Context, id uint64, status *model.BookingStatus, notes *string) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*status))
	}
	if notes != nil {
		sets = append(sets, "admin_notes = ?")
		args = append(args, *notes)
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE consultation_bookings SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx,
			`SELECT 1 FROM consultation_bookings WHERE id = ?`, id).Scan(&one); err == sql.ErrNoRows {
			return ErrBookingNotFound
		}
	}
	return nil
}
