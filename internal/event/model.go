package event

import (
	"time"
)

// Cancellation policies governing post-deadline changes
const (
	CancelPolicyFree         = "free"
	CancelPolicyDeadlineOnly = "deadline_only"
	CancelPolicyPenalty      = "penalty"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CircleID     uint      `gorm:"not null;index" json:"circle_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Datetime     time.Time `gorm:"not null;index" json:"datetime"`
	Place        string    `gorm:"type:varchar(255)" json:"place"`
	Fee          int       `gorm:"not null;default:0" json:"fee"`
	Note         string    `gorm:"type:text" json:"note"`
	RsvpDeadline time.Time `gorm:"not null" json:"rsvp_deadline"`
	Capacity     *int      `json:"capacity,omitempty"` // nil = unbounded
	CancelPolicy string    `gorm:"type:varchar(20);not null;default:'free'" json:"cancel_policy"`
	CancelFee    int       `gorm:"not null;default:0" json:"cancel_fee"` // only meaningful under penalty
	CreatedBy    string    `gorm:"type:varchar(64);not null" json:"created_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Attendance *AttendanceSummary `gorm:"-" json:"attendance,omitempty"`
}

// AttendanceSummary is derived from the RSVP set of an event.
type AttendanceSummary struct {
	Yes       int  `json:"yes"`
	No        int  `json:"no"`
	Maybe     int  `json:"maybe"`
	Remaining *int `json:"remaining,omitempty"` // only when capacity is set, floored at 0
	Full      bool `json:"full"`
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Datetime     string `json:"datetime" binding:"required"`      // RFC3339
	RsvpDeadline string `json:"rsvp_deadline" binding:"required"` // RFC3339
	Place        string `json:"place"`
	Fee          int    `json:"fee" binding:"min=0"`
	Note         string `json:"note"`
	Capacity     *int   `json:"capacity,omitempty" binding:"omitempty,min=1"`
	CancelPolicy string `json:"cancel_policy" binding:"omitempty,oneof=free deadline_only penalty"`
	CancelFee    int    `json:"cancel_fee" binding:"min=0"`
}

// ============================
// 📊 Event Stats Response
type EventStatsResponse struct {
	TotalEvents     int `json:"total_events"`
	ThisMonthEvents int `json:"this_month_events"`
	UpcomingEvents  int `json:"upcoming_events"`
	TotalRSVPs      int `json:"total_rsvps"`
}
