package reports

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
// 📊 Attendance rows, one per event
func (r *Repository) GetAttendanceRows(ctx context.Context, circleID uint, f Filters) ([]AttendanceReportRow, error) {
	query := r.DB.WithContext(ctx).
		Table("events e").
		Select(`e.id AS event_id, e.title, e.datetime, e.capacity,
			COUNT(r.id) FILTER (WHERE r.status = 'yes') AS yes,
			COUNT(r.id) FILTER (WHERE r.status = 'no') AS no,
			COUNT(r.id) FILTER (WHERE r.status = 'maybe') AS maybe`).
		Joins("LEFT JOIN rsvps r ON r.event_id = e.id").
		Where("e.circle_id = ?", circleID)

	if f.From != nil {
		query = query.Where("e.datetime >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("e.datetime <= ?", *f.To)
	}

	var rows []AttendanceReportRow
	err := query.
		Group("e.id, e.title, e.datetime, e.capacity").
		Order("e.datetime ASC").
		Scan(&rows).Error
	return rows, err
}

// ===========================
// 💰 Collection rows, one per event
func (r *Repository) GetCollectionRows(ctx context.Context, circleID uint, f Filters) ([]CollectionReportRow, error) {
	query := r.DB.WithContext(ctx).
		Table("events e").
		Select(`e.id AS event_id, e.title, e.datetime, e.fee,
			COUNT(p.id) FILTER (WHERE p.status = 'paid') AS paid_count,
			COUNT(p.id) FILTER (WHERE p.status = 'unpaid') AS unpaid_count`).
		Joins("LEFT JOIN payments p ON p.event_id = e.id").
		Where("e.circle_id = ?", circleID)

	if f.From != nil {
		query = query.Where("e.datetime >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("e.datetime <= ?", *f.To)
	}

	var rows []CollectionReportRow
	err := query.
		Group("e.id, e.title, e.datetime, e.fee").
		Order("e.datetime ASC").
		Scan(&rows).Error
	return rows, err
}

// ===========================
// 📄 Per-member roster for one event
func (r *Repository) GetEventDetailRows(ctx context.Context, circleID uint, eventID uint) ([]EventDetailReportRow, error) {
	var rows []EventDetailReportRow
	err := r.DB.WithContext(ctx).
		Table("members m").
		Select(`m.display_name, m.user_id,
			COALESCE(r.status, '') AS rsvp_status,
			COALESCE(p.status, '') AS payment_status,
			p.paid_at`).
		Joins("LEFT JOIN rsvps r ON r.user_id = m.user_id AND r.event_id = ?", eventID).
		Joins("LEFT JOIN payments p ON p.user_id = m.user_id AND p.event_id = ?", eventID).
		Where("m.circle_id = ?", circleID).
		Order("m.display_name ASC").
		Scan(&rows).Error
	return rows, err
}

// ===========================
// 🔢 Circle member count (for the no-response column)
func (r *Repository) MemberCount(ctx context.Context, circleID uint) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Table("members").
		Where("circle_id = ?", circleID).
		Count(&count).Error
	return int(count), err
}

// ===========================
// 🔍 Event existence within the circle
func (r *Repository) EventInCircle(ctx context.Context, eventID uint, circleID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Table("events").
		Where("id = ? AND circle_id = ?", eventID, circleID).
		Count(&count).Error
	return count > 0, err
}
