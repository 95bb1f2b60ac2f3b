package rsvp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

var rsvpConflictKey = clause.OnConflict{
	Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
}

// ===========================
// 🔍 Event projection for the reconciliation engine
func (r *Repository) GetEventInfo(ctx context.Context, eventID uint) (*EventInfo, error) {
	var info EventInfo
	err := r.DB.WithContext(ctx).
		Table("events").
		Select("id, circle_id, fee, rsvp_deadline, capacity, cancel_policy, cancel_fee").
		Where("id = ?", eventID).
		Take(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &info, nil
}

// ===========================
// 📄 List RSVPs for an event
func (r *Repository) ListByEvent(ctx context.Context, eventID uint) ([]RSVP, error) {
	var rsvps []RSVP
	err := r.DB.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("updated_at ASC").
		Find(&rsvps).Error
	return rsvps, err
}

// ===========================
// 🔍 Get one member's RSVP (nil when no response yet)
func (r *Repository) Get(ctx context.Context, eventID uint, userID string) (*RSVP, error) {
	var rec RSVP
	err := r.DB.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ===========================
// ✍️ Upsert on (event_id, user_id)
func (r *Repository) Upsert(ctx context.Context, rec *RSVP) error {
	return r.DB.WithContext(ctx).Clauses(rsvpConflictKey).Create(rec).Error
}

// ===========================
// 🎯 Upsert with transactional capacity check
// Locks the event row so concurrent "yes" upserts serialize, then re-counts
// confirmed attendance excluding the target member before writing.
func (r *Repository) UpsertWithCapacityCheck(ctx context.Context, rec *RSVP, capacity int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT id FROM events WHERE id = ? FOR UPDATE", rec.EventID).Error; err != nil {
			return err
		}

		var yes int64
		err := tx.Model(&RSVP{}).
			Where("event_id = ? AND status = ? AND user_id <> ?", rec.EventID, string(StatusYes), rec.UserID).
			Count(&yes).Error
		if err != nil {
			return err
		}

		if int(yes) >= capacity {
			return ErrCapacityExceeded
		}

		return tx.Clauses(rsvpConflictKey).Create(rec).Error
	})
}
