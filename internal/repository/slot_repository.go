package repository // repository for consultation slot persistence

import (
	"context"      // context for managing deadlines
	"database/sql" // sql provides DB interfaces
	"strings"      // strings builds bulk insert placeholders
	"time"         // time scans DATE columns

	"github.com/arefins/consultation-booking/internal/model"
)

// SlotRepo encapsulates database operations for consultation_slots.
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo constructs a SlotRepo given a DB handle.
func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// DB exposes the underlying handle so handlers can begin transactions
// that span the slot and booking repositories.
func (r *SlotRepo) DB() *sql.DB { return r.db }

const slotColumns = `id, date, start_time, end_time, is_available, created_at`

// scanSlot reads one row of slotColumns into a model.Slot.  DATE columns
// arrive as time.Time because the DSN sets parseTime=true; TIME columns
// arrive as raw bytes.
func scanSlot(scan func(dest ...any) error) (model.Slot, error) {
	var (
		s     model.Slot
		date  time.Time
		start []byte
		end   []byte
	)
	if err := scan(&s.ID, &date, &start, &end, &s.IsAvailable, &s.CreatedAt); err != nil {
		return model.Slot{}, err
	}
	s.Date = date.Format(model.DateLayout)
	s.StartTime = string(start)
	s.EndTime = string(end)
	return s, nil
}

// List returns slots ordered by date then start time ascending.  When
// availableOnly is true, only open slots on today or a later date are
// returned; this is the visitor-facing view.  No pagination: the slot
// inventory for a single consultant stays small.
func (r *SlotRepo) List(ctx context.Context, availableOnly bool) ([]model.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM consultation_slots`
	if availableOnly {
		query += ` WHERE is_available = 1 AND date >= CURDATE()`
	}
	query += ` ORDER BY date ASC, start_time ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]model.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows.Scan)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// GetByID loads a single slot.  Returns ErrSlotNotFound when no row exists.
func (r *SlotRepo) GetByID(ctx context.Context, id uint64) (model.Slot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+slotColumns+` FROM consultation_slots WHERE id = ?`, id)
	s, err := scanSlot(row.Scan)
	if err == sql.ErrNoRows {
		return model.Slot{}, ErrSlotNotFound
	}
	return s, err
}

// Create inserts a new slot and populates its ID.  Validation that the
// start time precedes the end time happens at the handler level.
func (r *SlotRepo) Create(ctx context.Context, s *model.Slot) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO consultation_slots (date, start_time, end_time, is_available) VALUES (?,?,?,?)`,
		s.Date, s.StartTime, s.EndTime, s.IsAvailable)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// CreateBulkTx inserts multiple slots in one statement inside tx.  Used
// by the quick-generate operation after the set difference against the
// existing windows has been computed.
func (r *SlotRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, slots []model.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	query := `INSERT INTO consultation_slots (date, start_time, end_time, is_available) VALUES `
	args := make([]any, 0, len(slots)*4)
	places := make([]string, 0, len(slots))
	for _, s := range slots {
		places = append(places, "(?,?,?,?)")
		args = append(args, s.Date, s.StartTime, s.EndTime, s.IsAvailable)
	}
	query += strings.Join(places, ",")
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// StartTimesByDate returns the set of start times that already have a
// slot on the given date, regardless of availability.  Quick-generate
// uses this to skip windows instead of duplicating them.
func (r *SlotRepo) StartTimesByDate(ctx context.Context, date string) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT start_time FROM consultation_slots WHERE date = ?`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]struct{})
	for rows.Next() {
		var t []byte
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		existing[string(t)] = struct{}{}
	}
	return existing, rows.Err()
}

// Update persists whichever fields are non-nil.  The admin UI mostly
// toggles availability, but date and times can be changed too.
func (r *SlotRepo) Update(ctx context.Context, id uint64, date, start, end *string, available *bool) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *date)
	}
	if start != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, *start)
	}
	if end != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, *end)
	}
	if available != nil {
		sets = append(sets, "is_available = ?")
		args = append(args, *available)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE consultation_slots SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL also reports zero when the values did not change; confirm
		// the row exists before reporting not found.
		var one int
		if err := r.db.QueryRowContext(ctx,
			`SELECT 1 FROM consultation_slots WHERE id = ?`, id).Scan(&one); err == sql.ErrNoRows {
			return ErrSlotNotFound
		}
	}
	return nil
}

// Delete removes a slot unconditionally.  There is no referential check
// against existing bookings; booking rows keep the slot id and joined
// reads tolerate the missing slot.
func (r *SlotRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultation_slots WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// ClaimTx flips a slot to unavailable only if it is currently available.
// Zero affected rows means another booking got there first (or the slot
// never existed); the caller's transaction must abort so the booking
// insert rolls back with it.  This conditional update is what makes a
// double booking structurally impossible.
func (r *SlotRepo) ClaimTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE consultation_slots SET is_available = 0 WHERE id = ? AND is_available = 1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	// Distinguish a consumed slot from a missing one for the response code.
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM consultation_slots WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrSlotNotFound
	}
	if err != nil {
		return err
	}
	return ErrSlotUnavailable
}
