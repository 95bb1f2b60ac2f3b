package notification

import (
	"context"
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

// ===========================
// ✍️ In-app notifications
func (r *Repository) CreateInAppBatch(ctx context.Context, recs []InAppNotification) error {
	if len(recs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&recs).Error
}

func (r *Repository) ListInAppByUser(ctx context.Context, userID string, limit, offset int) ([]InAppNotification, int64, error) {
	var rows []InAppNotification
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var unread int64
	err = r.DB.WithContext(ctx).
		Model(&InAppNotification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&unread).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, unread, nil
}

func (r *Repository) MarkRead(ctx context.Context, id uint, userID string) error {
	result := r.DB.WithContext(ctx).
		Model(&InAppNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).
		Model(&InAppNotification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

// ===========================
// 📱 Device tokens
func (r *Repository) UpsertDeviceToken(ctx context.Context, rec *FCMDeviceToken) error {
	rec.IsActive = true
	rec.LastUsedAt = time.Now()
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"device_type", "device_name", "is_active", "last_used_at", "updated_at"}),
		}).
		Create(rec).Error
}

func (r *Repository) ActiveTokensByCircle(ctx context.Context, circleID uint) ([]string, error) {
	var tokens []string
	err := r.DB.WithContext(ctx).
		Model(&FCMDeviceToken{}).
		Where("circle_id = ? AND is_active = true", circleID).
		Pluck("device_token", &tokens).Error
	return tokens, err
}

func (r *Repository) DeactivateToken(ctx context.Context, userID string, token string) error {
	return r.DB.WithContext(ctx).
		Model(&FCMDeviceToken{}).
		Where("user_id = ? AND device_token = ?", userID, token).
		Update("is_active", false).Error
}
