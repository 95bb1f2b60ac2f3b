package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knotapp/circle-management-backend/config"
	"github.com/knotapp/circle-management-backend/middleware"
)

func memberAccess() middleware.AccessContext {
	return middleware.AccessContext{UserID: "u-alice", CircleID: 1, RoleName: middleware.RoleMember}
}

func adminAccess() middleware.AccessContext {
	return middleware.AccessContext{UserID: "u-admin", CircleID: 1, RoleName: middleware.RoleAdmin}
}

func TestSetPaymentStatus_ManagerOnly(t *testing.T) {
	svc := NewService(nil, nil, &config.Config{})

	_, err := svc.SetPaymentStatus(context.Background(), memberAccess(), 1, "u-bob", StatusPaid)
	assert.ErrorIs(t, err, ErrManagerOnly)
}

func TestSetPaymentStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(nil, nil, &config.Config{})

	_, err := svc.SetPaymentStatus(context.Background(), adminAccess(), 1, "u-bob", "refunded")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment status")
}

func TestListEventPayments_RejectsUnknownStatusFilter(t *testing.T) {
	svc := NewService(nil, nil, &config.Config{})

	_, err := svc.ListEventPayments(context.Background(), memberAccess(), 1, "pending")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment status")
}

func TestReconcileEvent_ManagerOnly(t *testing.T) {
	svc := NewService(nil, nil, &config.Config{})

	_, err := svc.ReconcileEvent(context.Background(), memberAccess(), 1)
	assert.ErrorIs(t, err, ErrManagerOnly)
}

func TestStartFeePayment_GatewayDisabledWithoutKeys(t *testing.T) {
	svc := NewService(nil, nil, &config.Config{})

	_, err := svc.StartFeePayment(context.Background(), memberAccess(), 1)
	assert.ErrorIs(t, err, ErrGatewayDisabled)
}

func TestVerifyFeePayment_RejectsBadSignature(t *testing.T) {
	svc := NewService(nil, nil, &config.Config{
		RazorpayKey:    "rzp_test_key",
		RazorpaySecret: "secret",
	})

	err := svc.VerifyFeePayment(context.Background(), VerifyFeePaymentRequest{
		OrderID:     "order_123",
		PaymentID:   "pay_456",
		RazorpaySig: "not-a-valid-signature",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment signature")
}
