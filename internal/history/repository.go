package history

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// ✍️ Append a transition row
func (r *Repository) Create(ctx context.Context, rec *RsvpHistory) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

// ===========================
// 📄 List transitions, newest first
func (r *Repository) List(ctx context.Context, circleID uint, f Filter) ([]RsvpHistory, int64, error) {
	query := r.DB.WithContext(ctx).
		Model(&RsvpHistory{}).
		Joins("JOIN events ON events.id = rsvp_histories.event_id").
		Where("events.circle_id = ?", circleID)

	if f.EventID != 0 {
		query = query.Where("rsvp_histories.event_id = ?", f.EventID)
	}
	if f.UserID != "" {
		query = query.Where("rsvp_histories.user_id = ?", f.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []RsvpHistory
	err := query.
		Select("rsvp_histories.*").
		Order("rsvp_histories.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
