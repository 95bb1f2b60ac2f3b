package member

import (
	"time"
)

// ============================
// 🔷 GORM Circle Model
type Circle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ============================
// 🔷 GORM Member Model
// One row per user per circle; UserID is the auth provider's subject.
type Member struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CircleID    uint      `gorm:"not null;index:idx_circle_user,unique" json:"circle_id"`
	UserID      string    `gorm:"type:varchar(64);not null;index:idx_circle_user,unique" json:"user_id"`
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	Role        string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"` // owner, admin, member
	Position    string    `gorm:"type:varchar(100)" json:"position,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
