package payment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// eventRow is the events projection the payment module needs.
type eventRow struct {
	ID       uint
	CircleID uint
	Title    string
	Fee      int
}

func (r *Repository) getEvent(ctx context.Context, eventID uint) (*eventRow, error) {
	var row eventRow
	err := r.DB.WithContext(ctx).
		Table("events").
		Select("id, circle_id, title, fee").
		Where("id = ?", eventID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ===========================
// ✍️ Ensure an unpaid record exists
// Insert-or-ignore on (event_id, user_id): a paid record is never touched,
// and repeated "yes" submissions are idempotent.
func (r *Repository) EnsureUnpaid(ctx context.Context, eventID uint, userID string, amount int) error {
	rec := &Payment{
		EventID: eventID,
		UserID:  userID,
		Amount:  amount,
		Status:  StatusUnpaid,
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(rec).Error
}

// ===========================
// ❌ Delete only while still unpaid
func (r *Repository) DeleteIfUnpaid(ctx context.Context, eventID uint, userID string) error {
	return r.DB.WithContext(ctx).
		Where("event_id = ? AND user_id = ? AND status = ?", eventID, userID, StatusUnpaid).
		Delete(&Payment{}).Error
}

// ===========================
// 🔍 Lookups
func (r *Repository) GetByEventAndUser(ctx context.Context, eventID uint, userID string) (*Payment, error) {
	var rec Payment
	err := r.DB.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*Payment, error) {
	var rec Payment
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) ListByEvent(ctx context.Context, eventID uint, status string) ([]Payment, error) {
	query := r.DB.WithContext(ctx).Where("event_id = ?", eventID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []Payment
	err := query.Order("created_at ASC").Find(&rows).Error
	return rows, err
}

// ===========================
// ✍️ Manager status toggle
func (r *Repository) SetStatus(ctx context.Context, eventID uint, userID string, status string) error {
	updates := map[string]any{"status": status}
	if status == StatusPaid {
		updates["paid_at"] = time.Now()
	} else {
		updates["paid_at"] = nil
		updates["payment_id"] = nil
		updates["method"] = nil
	}

	result := r.DB.WithContext(ctx).
		Model(&Payment{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// ===========================
// ✍️ Attach a gateway order to an unpaid record
func (r *Repository) AttachOrder(ctx context.Context, eventID uint, userID string, orderID string) error {
	result := r.DB.WithContext(ctx).
		Model(&Payment{}).
		Where("event_id = ? AND user_id = ? AND status = ?", eventID, userID, StatusUnpaid).
		Update("order_id", orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// ===========================
// ✍️ Mark paid after gateway verification (no-op when already paid)
func (r *Repository) MarkPaidByOrder(ctx context.Context, orderID string, paymentID string, method string) error {
	return r.DB.WithContext(ctx).
		Model(&Payment{}).
		Where("order_id = ? AND status = ?", orderID, StatusUnpaid).
		Updates(map[string]any{
			"status":     StatusPaid,
			"payment_id": paymentID,
			"method":     method,
			"paid_at":    time.Now(),
		}).Error
}

// ===========================
// 📊 Paid/unpaid counts for one event
func (r *Repository) StatusCounts(ctx context.Context, eventID uint) (paid int, unpaid int, err error) {
	type statusCount struct {
		Status string
		Count  int
	}

	var counts []statusCount
	err = r.DB.WithContext(ctx).
		Model(&Payment{}).
		Select("status, COUNT(*) as count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return 0, 0, err
	}

	for _, sc := range counts {
		switch sc.Status {
		case StatusPaid:
			paid = sc.Count
		case StatusUnpaid:
			unpaid = sc.Count
		}
	}
	return paid, unpaid, nil
}

// ===========================
// 🔄 Repair sweep
// Re-derives payment records from the rsvps table: every "yes" RSVP gets an
// unpaid record, every unpaid record without a "yes" RSVP is removed. Paid
// records are never touched.
func (r *Repository) Reconcile(ctx context.Context, eventID uint, fee int) (created int64, deleted int64, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ins := tx.Exec(`
			INSERT INTO payments (event_id, user_id, amount, status, created_at, updated_at)
			SELECT r.event_id, r.user_id, ?, 'unpaid', NOW(), NOW()
			FROM rsvps r
			WHERE r.event_id = ? AND r.status = 'yes'
			  AND NOT EXISTS (
			    SELECT 1 FROM payments p
			    WHERE p.event_id = r.event_id AND p.user_id = r.user_id
			  )`, fee, eventID)
		if ins.Error != nil {
			return ins.Error
		}
		created = ins.RowsAffected

		del := tx.Exec(`
			DELETE FROM payments
			WHERE event_id = ? AND status = 'unpaid'
			  AND NOT EXISTS (
			    SELECT 1 FROM rsvps r
			    WHERE r.event_id = payments.event_id
			      AND r.user_id = payments.user_id
			      AND r.status = 'yes'
			  )`, eventID)
		if del.Error != nil {
			return del.Error
		}
		deleted = del.RowsAffected

		return nil
	})
	return created, deleted, err
}
