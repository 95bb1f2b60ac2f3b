package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/knotapp/circle-management-backend/config"
	"github.com/knotapp/circle-management-backend/middleware"
)

var (
	ErrManagerOnly     = errors.New("only owners and admins can manage payments")
	ErrEventNotFound   = errors.New("event not found")
	ErrPaymentNotFound = errors.New("payment record not found")
	ErrGatewayDisabled = errors.New("online payment is not configured")
	ErrNothingToPay    = errors.New("no outstanding fee for this event")
)

type NameDirectory interface {
	DisplayNames(circleID uint) (map[string]string, error)
}

// Service owns fee collection: the manager paid/unpaid toggle, collection
// summaries, the repair sweep, and the optional online payment flow.
type Service struct {
	Repo   *Repository
	Names  NameDirectory
	client *razorpay.Client
	cfg    *config.Config
}

func NewService(repo *Repository, names NameDirectory, cfg *config.Config) *Service {
	var client *razorpay.Client
	if cfg.RazorpayKey != "" && cfg.RazorpaySecret != "" {
		client = razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	}
	return &Service{
		Repo:   repo,
		Names:  names,
		client: client,
		cfg:    cfg,
	}
}

func (s *Service) eventInCircle(ctx context.Context, eventID uint, circleID uint) (*eventRow, error) {
	ev, err := s.Repo.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.CircleID != circleID {
		return nil, ErrEventNotFound
	}
	return ev, nil
}

// ===========================
// ✍️ Manager paid/unpaid toggle
// Non-managers are rejected before any lookup or write.
func (s *Service) SetPaymentStatus(ctx context.Context, accessContext middleware.AccessContext, eventID uint, userID string, status string) (*Payment, error) {
	if !accessContext.IsManager() {
		return nil, ErrManagerOnly
	}
	if status != StatusPaid && status != StatusUnpaid {
		return nil, fmt.Errorf("invalid payment status %q", status)
	}

	if _, err := s.eventInCircle(ctx, eventID, accessContext.CircleID); err != nil {
		return nil, err
	}

	if err := s.Repo.SetStatus(ctx, eventID, userID, status); err != nil {
		return nil, err
	}

	return s.Repo.GetByEventAndUser(ctx, eventID, userID)
}

// ===========================
// 📄 List event payments with member names, optionally one status only
func (s *Service) ListEventPayments(ctx context.Context, accessContext middleware.AccessContext, eventID uint, status string) ([]PaymentWithName, error) {
	if status != "" && status != StatusPaid && status != StatusUnpaid {
		return nil, fmt.Errorf("invalid payment status %q", status)
	}

	if _, err := s.eventInCircle(ctx, eventID, accessContext.CircleID); err != nil {
		return nil, err
	}

	rows, err := s.Repo.ListByEvent(ctx, eventID, status)
	if err != nil {
		return nil, err
	}

	names, err := s.Names.DisplayNames(accessContext.CircleID)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentWithName, 0, len(rows))
	for _, p := range rows {
		out = append(out, PaymentWithName{Payment: p, DisplayName: names[p.UserID]})
	}
	return out, nil
}

// ===========================
// 📊 Collection summary: event fee times paid/unpaid record counts
func (s *Service) GetCollectionSummary(ctx context.Context, accessContext middleware.AccessContext, eventID uint) (*CollectionSummary, error) {
	ev, err := s.eventInCircle(ctx, eventID, accessContext.CircleID)
	if err != nil {
		return nil, err
	}

	paid, unpaid, err := s.Repo.StatusCounts(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &CollectionSummary{
		EventID:           eventID,
		Fee:               ev.Fee,
		PaidCount:         paid,
		UnpaidCount:       unpaid,
		CollectedAmount:   ev.Fee * paid,
		OutstandingAmount: ev.Fee * unpaid,
		ExpectedAmount:    ev.Fee * (paid + unpaid),
	}, nil
}

// ===========================
// 🔄 Repair sweep (owner/admin only)
// Brings payment records back in line with the rsvps table after a partial
// reconciliation failure.
func (s *Service) ReconcileEvent(ctx context.Context, accessContext middleware.AccessContext, eventID uint) (*ReconcileResult, error) {
	if !accessContext.IsManager() {
		return nil, ErrManagerOnly
	}

	ev, err := s.eventInCircle(ctx, eventID, accessContext.CircleID)
	if err != nil {
		return nil, err
	}

	created, deleted, err := s.Repo.Reconcile(ctx, eventID, ev.Fee)
	if err != nil {
		return nil, err
	}

	return &ReconcileResult{EventID: eventID, Created: created, Deleted: deleted}, nil
}

// ===========================
// 💳 Start online fee payment
// Creates a Razorpay order for the member's own outstanding fee and attaches
// it to the unpaid record.
func (s *Service) StartFeePayment(ctx context.Context, accessContext middleware.AccessContext, eventID uint) (*StartFeePaymentResponse, error) {
	if s.client == nil {
		return nil, ErrGatewayDisabled
	}

	if _, err := s.eventInCircle(ctx, eventID, accessContext.CircleID); err != nil {
		return nil, err
	}

	rec, err := s.Repo.GetByEventAndUser(ctx, eventID, accessContext.UserID)
	if err != nil {
		return nil, err
	}
	if rec.Status == StatusPaid || rec.Amount <= 0 {
		return nil, ErrNothingToPay
	}

	data := map[string]interface{}{
		"amount":          rec.Amount * 100,
		"currency":        "INR",
		"payment_capture": 1,
		"notes": map[string]interface{}{
			"event_id": eventID,
			"user_id":  accessContext.UserID,
		},
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return nil, errors.New("unable to extract order_id from Razorpay response")
	}

	if err := s.Repo.AttachOrder(ctx, eventID, accessContext.UserID, orderID); err != nil {
		return nil, err
	}

	return &StartFeePaymentResponse{
		OrderID:     orderID,
		Amount:      rec.Amount,
		Currency:    "INR",
		RazorpayKey: s.cfg.RazorpayKey,
	}, nil
}

// ===========================
// 💳 Verify online fee payment
// Checks the gateway signature, fetches the payment, and marks the record
// paid when captured. Idempotent for already-paid records.
func (s *Service) VerifyFeePayment(ctx context.Context, req VerifyFeePaymentRequest) error {
	if s.client == nil {
		return ErrGatewayDisabled
	}

	expected := hmac.New(sha256.New, []byte(s.cfg.RazorpaySecret))
	expected.Write([]byte(req.OrderID + "|" + req.PaymentID))
	computedSignature := hex.EncodeToString(expected.Sum(nil))

	if !hmac.Equal([]byte(computedSignature), []byte(req.RazorpaySig)) {
		return errors.New("invalid payment signature")
	}

	rec, err := s.Repo.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if rec.Status == StatusPaid {
		return nil
	}

	gwPayment, err := s.client.Payment.Fetch(req.PaymentID, nil, nil)
	if err != nil {
		return fmt.Errorf("razorpay payment fetch failed: %w", err)
	}

	status, ok := gwPayment["status"].(string)
	if !ok {
		return errors.New("invalid payment status format")
	}
	if status != "captured" {
		return fmt.Errorf("payment not captured, gateway status %q", status)
	}

	method := "UNKNOWN"
	if m, ok := gwPayment["method"].(string); ok {
		method = m
	}

	return s.Repo.MarkPaidByOrder(ctx, req.OrderID, req.PaymentID, method)
}
