package rsvp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knotapp/circle-management-backend/internal/event"
	"github.com/knotapp/circle-management-backend/internal/history"
	"github.com/knotapp/circle-management-backend/middleware"
)

// ===========================
// Fakes

type fakeEventStore struct {
	info *EventInfo
}

func (f *fakeEventStore) GetEventInfo(_ context.Context, eventID uint) (*EventInfo, error) {
	if f.info == nil || f.info.ID != eventID {
		return nil, ErrEventNotFound
	}
	return f.info, nil
}

type fakeStore struct {
	rsvps   map[string]*RSVP
	applied []RSVP
}

func newFakeStore(existing ...*RSVP) *fakeStore {
	s := &fakeStore{rsvps: map[string]*RSVP{}}
	for _, r := range existing {
		s.rsvps[r.UserID] = r
	}
	return s
}

func (f *fakeStore) ListByEvent(_ context.Context, _ uint) ([]RSVP, error) {
	out := make([]RSVP, 0, len(f.rsvps))
	for _, r := range f.rsvps {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, _ uint, userID string) (*RSVP, error) {
	if r, ok := f.rsvps[userID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) Upsert(_ context.Context, rec *RSVP) error {
	f.applied = append(f.applied, *rec)
	f.rsvps[rec.UserID] = rec
	return nil
}

func (f *fakeStore) UpsertWithCapacityCheck(ctx context.Context, rec *RSVP, capacity int) error {
	yes := 0
	for _, r := range f.rsvps {
		if Status(r.Status) == StatusYes && r.UserID != rec.UserID {
			yes++
		}
	}
	if yes >= capacity {
		return ErrCapacityExceeded
	}
	return f.Upsert(ctx, rec)
}

type fakePayments struct {
	ensured   []string
	deleted   []string
	ensureErr error
}

func (f *fakePayments) EnsureUnpaid(_ context.Context, _ uint, userID string, _ int) error {
	if f.ensureErr != nil {
		return f.ensureErr
	}
	f.ensured = append(f.ensured, userID)
	return nil
}

func (f *fakePayments) DeleteIfUnpaid(_ context.Context, _ uint, userID string) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeHistory struct {
	entries []*history.RsvpHistory
	err     error
}

func (f *fakeHistory) LogTransition(_ context.Context, rec *history.RsvpHistory) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, rec)
	return nil
}

type fakeNames struct{}

func (fakeNames) DisplayNames(uint) (map[string]string, error) {
	return map[string]string{"u-alice": "Alice", "u-bob": "Bob"}, nil
}

// ===========================
// Helpers

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func testEvent(mutate ...func(*EventInfo)) *EventInfo {
	ev := &EventInfo{
		ID:           1,
		CircleID:     10,
		Fee:          500,
		RsvpDeadline: testNow.Add(24 * time.Hour),
		CancelPolicy: event.CancelPolicyFree,
	}
	for _, m := range mutate {
		m(ev)
	}
	return ev
}

func newTestService(ev *EventInfo, store *fakeStore) (*Service, *fakePayments, *fakeHistory) {
	payments := &fakePayments{}
	hist := &fakeHistory{}
	svc := NewService(&fakeEventStore{info: ev}, store, payments, hist, fakeNames{})
	svc.now = func() time.Time { return testNow }
	return svc, payments, hist
}

func memberAccess(userID string) middleware.AccessContext {
	return middleware.AccessContext{UserID: userID, CircleID: 10, RoleName: middleware.RoleMember}
}

func adminAccess(userID string) middleware.AccessContext {
	return middleware.AccessContext{UserID: userID, CircleID: 10, RoleName: middleware.RoleAdmin}
}

func yesRSVP(userID string) *RSVP {
	return &RSVP{EventID: 1, UserID: userID, Status: string(StatusYes)}
}

// ===========================
// Submit pipeline

func TestSubmitRSVP_FirstYesCreatesUnpaidPayment(t *testing.T) {
	store := newFakeStore()
	svc, payments, hist := newTestService(testEvent(), store)

	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusYes})
	require.NoError(t, err)

	assert.Equal(t, string(StatusYes), result.RSVP.Status)
	assert.Nil(t, result.OldStatus)
	assert.Equal(t, []string{"u-alice"}, payments.ensured)
	assert.Empty(t, payments.deleted)

	require.Len(t, hist.entries, 1)
	assert.Nil(t, hist.entries[0].OldStatus)
	assert.Equal(t, "yes", hist.entries[0].NewStatus)
	assert.False(t, hist.entries[0].Override)
}

func TestSubmitRSVP_YesToNoRemovesUnpaidPayment(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"))
	svc, payments, hist := newTestService(testEvent(), store)

	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusNo})
	require.NoError(t, err)

	require.NotNil(t, result.OldStatus)
	assert.Equal(t, StatusYes, *result.OldStatus)
	assert.Equal(t, []string{"u-alice"}, payments.deleted)
	assert.Empty(t, payments.ensured)

	require.Len(t, hist.entries, 1)
	require.NotNil(t, hist.entries[0].OldStatus)
	assert.Equal(t, "yes", *hist.entries[0].OldStatus)
	assert.Equal(t, "no", hist.entries[0].NewStatus)
}

func TestSubmitRSVP_RepeatedYesIsIdempotent(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"))
	svc, payments, _ := newTestService(testEvent(func(ev *EventInfo) {
		ev.Capacity = intPtr(1)
	}), store)

	// Re-submitting yes must not count the member against their own slot.
	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusYes})
	require.NoError(t, err)

	assert.Equal(t, string(StatusYes), result.RSVP.Status)
	assert.Equal(t, []string{"u-alice"}, payments.ensured)
}

func TestSubmitRSVP_InvalidStatusRejected(t *testing.T) {
	store := newFakeStore()
	svc, payments, hist := newTestService(testEvent(), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: "attending"})
	require.Error(t, err)

	assert.Empty(t, store.applied)
	assert.Empty(t, payments.ensured)
	assert.Empty(t, hist.entries)
}

func TestSubmitRSVP_EventInOtherCircleNotFound(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(testEvent(func(ev *EventInfo) {
		ev.CircleID = 99
	}), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusYes})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

// ===========================
// Acting for another member

func TestSubmitRSVP_MemberCannotActForOther(t *testing.T) {
	store := newFakeStore()
	svc, payments, hist := newTestService(testEvent(), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, TargetUserID: "u-bob", Status: StatusYes})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.Empty(t, store.applied)
	assert.Empty(t, payments.ensured)
	assert.Empty(t, hist.entries)
}

func TestSubmitRSVP_ManagerActsForOtherAndIsRecorded(t *testing.T) {
	store := newFakeStore()
	svc, payments, hist := newTestService(testEvent(), store)

	result, err := svc.SubmitRSVP(context.Background(), adminAccess("u-admin"), SubmitRequest{EventID: 1, TargetUserID: "u-bob", Status: StatusYes})
	require.NoError(t, err)

	assert.Equal(t, "u-bob", result.RSVP.UserID)
	assert.Equal(t, []string{"u-bob"}, payments.ensured)

	require.Len(t, hist.entries, 1)
	assert.Equal(t, "u-bob", hist.entries[0].UserID)
	assert.Equal(t, "u-admin", hist.entries[0].ActorUserID)
	assert.Equal(t, middleware.RoleAdmin, hist.entries[0].ActorRole)
	assert.True(t, hist.entries[0].Override)
}

// ===========================
// Capacity

func TestSubmitRSVP_CapacityExceeded(t *testing.T) {
	store := newFakeStore(yesRSVP("u-bob"), yesRSVP("u-carol"))
	svc, payments, hist := newTestService(testEvent(func(ev *EventInfo) {
		ev.Capacity = intPtr(2)
	}), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusYes})
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	assert.Empty(t, store.applied)
	assert.Empty(t, payments.ensured)
	assert.Empty(t, hist.entries)
}

func TestSubmitRSVP_CapacityIgnoresNonYesStatuses(t *testing.T) {
	full := newFakeStore(yesRSVP("u-bob"), yesRSVP("u-carol"))
	svc, payments, _ := newTestService(testEvent(func(ev *EventInfo) {
		ev.Capacity = intPtr(2)
	}), full)

	// "maybe" never consumes a slot
	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusMaybe})
	require.NoError(t, err)

	assert.Equal(t, string(StatusMaybe), result.RSVP.Status)
	assert.Equal(t, []string{"u-alice"}, payments.deleted)
}

// ===========================
// Deadline and cancellation policy

func pastDeadline(policy string, fee int) func(*EventInfo) {
	return func(ev *EventInfo) {
		ev.RsvpDeadline = testNow.Add(-time.Hour)
		ev.CancelPolicy = policy
		ev.CancelFee = fee
	}
}

func TestSubmitRSVP_DeadlineOnlyLocksNewResponses(t *testing.T) {
	store := newFakeStore()
	svc, payments, hist := newTestService(testEvent(pastDeadline(event.CancelPolicyDeadlineOnly, 0)), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusYes})
	assert.ErrorIs(t, err, ErrRsvpLocked)

	assert.Empty(t, store.applied)
	assert.Empty(t, payments.ensured)
	assert.Empty(t, hist.entries)
}

func TestSubmitRSVP_DeadlineOnlyBlocksCancellation(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"))
	svc, payments, _ := newTestService(testEvent(pastDeadline(event.CancelPolicyDeadlineOnly, 0)), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusNo})
	assert.ErrorIs(t, err, ErrCancellationNotAllowed)

	assert.Empty(t, store.applied)
	assert.Empty(t, payments.deleted)
}

func TestSubmitRSVP_PenaltyCancellationNeedsConfirmation(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"))
	svc, _, _ := newTestService(testEvent(pastDeadline(event.CancelPolicyPenalty, 300)), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusNo})
	assert.ErrorIs(t, err, ErrCancelFeeConfirmationRequired)
	assert.Empty(t, store.applied)
}

func TestSubmitRSVP_PenaltyCancellationWithConfirmation(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"))
	svc, payments, _ := newTestService(testEvent(pastDeadline(event.CancelPolicyPenalty, 300)), store)

	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusNo, ConfirmCancelFee: true})
	require.NoError(t, err)

	assert.Equal(t, 300, result.CancelFeeCharged)
	assert.Equal(t, []string{"u-alice"}, payments.deleted)
}

func TestSubmitRSVP_FreePolicyAllowsLateCancellation(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"))
	svc, payments, _ := newTestService(testEvent(pastDeadline(event.CancelPolicyFree, 0)), store)

	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusNo})
	require.NoError(t, err)

	assert.Zero(t, result.CancelFeeCharged)
	assert.Equal(t, []string{"u-alice"}, payments.deleted)
}

func TestSubmitRSVP_BeforeDeadlineAnyChangeAllowed(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"))
	svc, _, _ := newTestService(testEvent(func(ev *EventInfo) {
		ev.CancelPolicy = event.CancelPolicyDeadlineOnly
	}), store)

	_, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusNo})
	assert.NoError(t, err)
}

func TestSubmitRSVP_ManagerBypassesGatesAndChargesNoFee(t *testing.T) {
	store := newFakeStore(yesRSVP("u-admin"))
	svc, payments, hist := newTestService(testEvent(pastDeadline(event.CancelPolicyPenalty, 300)), store)

	result, err := svc.SubmitRSVP(context.Background(), adminAccess("u-admin"), SubmitRequest{EventID: 1, Status: StatusNo})
	require.NoError(t, err)

	assert.Zero(t, result.CancelFeeCharged)
	assert.Equal(t, []string{"u-admin"}, payments.deleted)

	require.Len(t, hist.entries, 1)
	assert.True(t, hist.entries[0].Override)
}

// ===========================
// Failure isolation

func TestSubmitRSVP_HistoryFailureDoesNotFailSubmit(t *testing.T) {
	store := newFakeStore()
	svc, payments, hist := newTestService(testEvent(), store)
	hist.err = errors.New("history table unavailable")

	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusYes})
	require.NoError(t, err)

	assert.Equal(t, string(StatusYes), result.RSVP.Status)
	assert.Equal(t, []string{"u-alice"}, payments.ensured)
}

func TestSubmitRSVP_PaymentFailureSurfacedAfterApply(t *testing.T) {
	store := newFakeStore()
	svc, payments, hist := newTestService(testEvent(), store)
	payments.ensureErr = errors.New("payments table unavailable")

	result, err := svc.SubmitRSVP(context.Background(), memberAccess("u-alice"), SubmitRequest{EventID: 1, Status: StatusYes})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment reconciliation failed")

	// The RSVP write already happened and the transition is still logged.
	require.NotNil(t, result)
	require.Len(t, store.applied, 1)
	require.Len(t, hist.entries, 1)
}

// ===========================
// Reads

func TestListForEvent_DecoratesNamesAndAggregates(t *testing.T) {
	store := newFakeStore(yesRSVP("u-alice"), &RSVP{EventID: 1, UserID: "u-bob", Status: string(StatusMaybe)})
	svc, _, _ := newTestService(testEvent(func(ev *EventInfo) {
		ev.Capacity = intPtr(5)
	}), store)

	rows, summary, err := svc.ListForEvent(context.Background(), memberAccess("u-alice"), 1)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	names := map[string]string{}
	for _, r := range rows {
		names[r.UserID] = r.DisplayName
	}
	assert.Equal(t, "Alice", names["u-alice"])
	assert.Equal(t, "Bob", names["u-bob"])

	assert.Equal(t, 1, summary.Yes)
	assert.Equal(t, 1, summary.Maybe)
	require.NotNil(t, summary.Remaining)
	assert.Equal(t, 4, *summary.Remaining)
	assert.False(t, summary.Full)
}

func TestGetOwn_NilWhenNoResponse(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(testEvent(), store)

	rec, err := svc.GetOwn(context.Background(), memberAccess("u-alice"), 1)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestAggregate_CountsAndCapacity(t *testing.T) {
	rsvps := []RSVP{
		{Status: "yes"}, {Status: "yes"}, {Status: "no"}, {Status: "maybe"},
	}

	summary := Aggregate(rsvps, intPtr(2))
	assert.Equal(t, 2, summary.Yes)
	assert.Equal(t, 1, summary.No)
	assert.Equal(t, 1, summary.Maybe)
	require.NotNil(t, summary.Remaining)
	assert.Equal(t, 0, *summary.Remaining)
	assert.True(t, summary.Full)

	unlimited := Aggregate(rsvps, nil)
	assert.Nil(t, unlimited.Remaining)
	assert.False(t, unlimited.Full)
}
