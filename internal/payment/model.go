package payment

import "time"

const (
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
)

// ============================
// 🔷 GORM Payment Model
// One record per (event, user), mirroring a "yes" RSVP. Created unpaid when
// a member confirms attendance; removed only while still unpaid.
type Payment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	EventID   uint       `gorm:"not null;index:idx_payment_event_user,unique" json:"event_id"`
	UserID    string     `gorm:"type:varchar(64);not null;index:idx_payment_event_user,unique" json:"user_id"`
	Amount    int        `gorm:"not null" json:"amount"`
	Status    string     `gorm:"type:varchar(10);not null;default:'unpaid'" json:"status"`
	OrderID   *string    `gorm:"type:varchar(64);index" json:"order_id,omitempty"`
	PaymentID *string    `gorm:"type:varchar(64)" json:"payment_id,omitempty"`
	Method    *string    `gorm:"type:varchar(30)" json:"method,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentWithName decorates a payment row with the member's display name.
type PaymentWithName struct {
	Payment
	DisplayName string `json:"display_name"`
}

// CollectionSummary is the fee collection snapshot for one event.
type CollectionSummary struct {
	EventID           uint `json:"event_id"`
	Fee               int  `json:"fee"`
	PaidCount         int  `json:"paid_count"`
	UnpaidCount       int  `json:"unpaid_count"`
	CollectedAmount   int  `json:"collected_amount"`
	OutstandingAmount int  `json:"outstanding_amount"`
	ExpectedAmount    int  `json:"expected_amount"`
}

// ReconcileResult reports the manager-triggered repair sweep.
type ReconcileResult struct {
	EventID uint  `json:"event_id"`
	Created int64 `json:"created"`
	Deleted int64 `json:"deleted"`
}

// ============================
// 🟡 Requests / Responses

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid unpaid"`
}

type StartFeePaymentResponse struct {
	OrderID     string `json:"order_id"`
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
	RazorpayKey string `json:"razorpay_key"`
}

type VerifyFeePaymentRequest struct {
	OrderID     string `json:"razorpay_order_id" binding:"required"`
	PaymentID   string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySig string `json:"razorpay_signature" binding:"required"`
}
