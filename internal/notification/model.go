package notification

import "time"

// InAppNotification - per-member bell notifications
type InAppNotification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	CircleID  uint      `gorm:"not null;index" json:"circle_id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Category  string    `gorm:"size:30;not null" json:"category"` // event, payment, system
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FCMDeviceToken - device tokens for push notifications
type FCMDeviceToken struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(64);not null;index:idx_user_token" json:"user_id"`
	CircleID    uint      `gorm:"not null;index" json:"circle_id"`
	DeviceToken string    `gorm:"size:255;not null;index:idx_user_token,unique" json:"device_token"`
	DeviceType  string    `gorm:"size:20" json:"device_type"` // android, ios, web
	DeviceName  string    `gorm:"size:100" json:"device_name"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	LastUsedAt  time.Time `json:"last_used_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventCreatedMessage is the fan-out payload for a newly created event.
// Published to Kafka when a broker is configured, delivered in-process
// otherwise.
type EventCreatedMessage struct {
	EventID  uint      `json:"event_id"`
	CircleID uint      `json:"circle_id"`
	Title    string    `json:"title"`
	Datetime time.Time `json:"datetime"`
	Place    string    `json:"place"`
}

type RegisterTokenRequest struct {
	DeviceToken string `json:"device_token" binding:"required"`
	DeviceType  string `json:"device_type" binding:"omitempty,oneof=android ios web"`
	DeviceName  string `json:"device_name"`
}

type RemoveTokenRequest struct {
	DeviceToken string `json:"device_token" binding:"required"`
}
