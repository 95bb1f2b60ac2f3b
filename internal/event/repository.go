package event

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Event
func (r *Repository) CreateEvent(e *Event) error {
	return r.DB.Create(e).Error
}

// ===========================
// 🔍 Get Event By ID with attendance summary
func (r *Repository) GetEventByID(id uint) (*Event, error) {
	var e Event
	err := r.DB.First(&e, id).Error
	if err != nil {
		return nil, err
	}

	summary, err := r.attendanceFor(e.ID, e.Capacity)
	if err != nil {
		return nil, err
	}
	e.Attendance = summary

	return &e, nil
}

// ===========================
// 📆 Get Upcoming Events for a circle
func (r *Repository) GetUpcomingEvents(circleID uint) ([]Event, error) {
	var events []Event

	err := r.DB.
		Where("circle_id = ? AND datetime >= ?", circleID, time.Now().Add(-24*time.Hour)).
		Order("datetime ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	for i := range events {
		summary, err := r.attendanceFor(events[i].ID, events[i].Capacity)
		if err != nil {
			return nil, err
		}
		events[i].Attendance = summary
	}

	return events, nil
}

// ===========================
// 📄 List Events With Pagination & Search
func (r *Repository) ListEventsByCircle(circleID uint, limit, offset int, search string) ([]Event, error) {
	var events []Event

	query := r.DB.Where("circle_id = ?", circleID)

	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("title ILIKE ? OR note ILIKE ?", ilike, ilike)
	}

	err := query.
		Order("datetime DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	for i := range events {
		summary, err := r.attendanceFor(events[i].ID, events[i].Capacity)
		if err != nil {
			return nil, err
		}
		events[i].Attendance = summary
	}

	return events, nil
}

// ===========================
// ❌ Delete Event (RSVPs/payments cascade at DB level)
func (r *Repository) DeleteEvent(id uint, circleID uint) error {
	return r.DB.
		Where("id = ? AND circle_id = ?", id, circleID).
		Delete(&Event{}).Error
}

// ===========================
// 📊 Event Dashboard Stats
func (r *Repository) GetEventStats(circleID uint) (*EventStatsResponse, error) {
	var stats EventStatsResponse
	var total, thisMonth, upcoming, totalRSVPs int64

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	r.DB.Model(&Event{}).
		Where("circle_id = ?", circleID).
		Count(&total)

	r.DB.Model(&Event{}).
		Where("circle_id = ? AND datetime >= ?", circleID, startOfMonth).
		Count(&thisMonth)

	r.DB.Model(&Event{}).
		Where("circle_id = ? AND datetime >= ?", circleID, now).
		Count(&upcoming)

	r.DB.Table("rsvps").
		Joins("JOIN events ON events.id = rsvps.event_id").
		Where("events.circle_id = ?", circleID).
		Count(&totalRSVPs)

	stats.TotalEvents = int(total)
	stats.ThisMonthEvents = int(thisMonth)
	stats.UpcomingEvents = int(upcoming)
	stats.TotalRSVPs = int(totalRSVPs)

	return &stats, nil
}

// ===========================
// 🔢 Attendance summary from the rsvps table
func (r *Repository) attendanceFor(eventID uint, capacity *int) (*AttendanceSummary, error) {
	type statusCount struct {
		Status string
		Count  int
	}

	var counts []statusCount
	err := r.DB.Table("rsvps").
		Select("status, COUNT(*) as count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	var yes, no, maybe int
	for _, sc := range counts {
		switch sc.Status {
		case "yes":
			yes = sc.Count
		case "no":
			no = sc.Count
		case "maybe":
			maybe = sc.Count
		}
	}

	summary := Summarize(yes, no, maybe, capacity)
	return &summary, nil
}
