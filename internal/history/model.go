package history

import (
	"time"

	"gorm.io/datatypes"
)

// ============================
// 🔷 GORM RSVP History Model
// Append-only log of RSVP transitions. Rows are never updated or deleted.
type RsvpHistory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	EventID     uint           `gorm:"not null;index" json:"event_id"`
	UserID      string         `gorm:"type:varchar(64);not null;index" json:"user_id"`
	OldStatus   *string        `gorm:"type:varchar(10)" json:"old_status"` // nil = first response
	NewStatus   string         `gorm:"type:varchar(10);not null" json:"new_status"`
	ActorUserID string         `gorm:"type:varchar(64);not null" json:"actor_user_id"`
	ActorRole   string         `gorm:"type:varchar(20);not null" json:"actor_role"`
	Override    bool           `gorm:"default:false" json:"override"` // manager acted past a gate or for another member
	Details     datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// Filter narrows history queries.
type Filter struct {
	EventID uint
	UserID  string
	Limit   int
	Offset  int
}
