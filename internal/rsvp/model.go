package rsvp

import (
	"time"

	"github.com/knotapp/circle-management-backend/internal/event"
)

// RSVP statuses. Absence of a row means "no response yet".
type Status string

const (
	StatusYes   Status = "yes"
	StatusNo    Status = "no"
	StatusMaybe Status = "maybe"
)

func (s Status) Valid() bool {
	return s == StatusYes || s == StatusNo || s == StatusMaybe
}

// ============================
// 🔷 GORM RSVP Model
// At most one row per (event, user); every change is an upsert on that key.
type RSVP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index:idx_event_user,unique" json:"event_id"`
	UserID    string    `gorm:"type:varchar(64);not null;index:idx_event_user,unique" json:"user_id"`
	Status    string    `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EventInfo is the slice of the events row the reconciliation engine needs.
type EventInfo struct {
	ID           uint      `json:"id"`
	CircleID     uint      `json:"circle_id"`
	Fee          int       `json:"fee"`
	RsvpDeadline time.Time `json:"rsvp_deadline"`
	Capacity     *int      `json:"capacity"`
	CancelPolicy string    `json:"cancel_policy"`
	CancelFee    int       `json:"cancel_fee"`
}

// RSVPWithName decorates an RSVP row with the member's display name.
type RSVPWithName struct {
	RSVP
	DisplayName string `json:"display_name"`
}

// ============================
// 🟡 Submit RSVP Request
type SubmitRequest struct {
	EventID          uint   `json:"-"`
	TargetUserID     string `json:"user_id,omitempty"` // empty = acting user; managers may target others
	Status           Status `json:"status" binding:"required,oneof=yes no maybe"`
	ConfirmCancelFee bool   `json:"confirm_cancel_fee"`
}

// SubmitResult reports the applied transition.
type SubmitResult struct {
	RSVP             *RSVP   `json:"rsvp"`
	OldStatus        *Status `json:"old_status,omitempty"`
	CancelFeeCharged int     `json:"cancel_fee_charged,omitempty"`
}

// Aggregate derives the attendance summary from an RSVP set.
// Pure function of the list; see event.Summarize for the capacity math.
func Aggregate(rsvps []RSVP, capacity *int) event.AttendanceSummary {
	var yes, no, maybe int
	for _, r := range rsvps {
		switch Status(r.Status) {
		case StatusYes:
			yes++
		case StatusNo:
			no++
		case StatusMaybe:
			maybe++
		}
	}
	return event.Summarize(yes, no, maybe, capacity)
}
