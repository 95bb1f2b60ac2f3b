package rsvp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/knotapp/circle-management-backend/internal/event"
	"github.com/knotapp/circle-management-backend/internal/history"
	"github.com/knotapp/circle-management-backend/middleware"
)

// ===========================
// 🔌 Ports
// Narrow interfaces so the engine can be exercised without a database.

type EventStore interface {
	GetEventInfo(ctx context.Context, eventID uint) (*EventInfo, error)
}

type Store interface {
	ListByEvent(ctx context.Context, eventID uint) ([]RSVP, error)
	Get(ctx context.Context, eventID uint, userID string) (*RSVP, error)
	Upsert(ctx context.Context, rec *RSVP) error
	UpsertWithCapacityCheck(ctx context.Context, rec *RSVP, capacity int) error
}

type PaymentStore interface {
	EnsureUnpaid(ctx context.Context, eventID uint, userID string, amount int) error
	DeleteIfUnpaid(ctx context.Context, eventID uint, userID string) error
}

type HistoryStore interface {
	LogTransition(ctx context.Context, rec *history.RsvpHistory) error
}

type NameDirectory interface {
	DisplayNames(circleID uint) (map[string]string, error)
}

// Service is the RSVP reconciliation engine: it gates a requested status
// change against the event's deadline, cancellation policy and capacity,
// then applies the RSVP upsert, payment reconciliation and history append.
type Service struct {
	Events   EventStore
	Store    Store
	Payments PaymentStore
	History  HistoryStore
	Names    NameDirectory

	now func() time.Time
}

func NewService(events EventStore, store Store, payments PaymentStore, hist HistoryStore, names NameDirectory) *Service {
	return &Service{
		Events:   events,
		Store:    store,
		Payments: payments,
		History:  hist,
		Names:    names,
		now:      time.Now,
	}
}

// ===========================
// 🎯 Submit RSVP
// The single write path for RSVPs. Gates run before any write; a rejected
// request leaves the RSVP, payment and history untouched.
func (s *Service) SubmitRSVP(ctx context.Context, accessContext middleware.AccessContext, req SubmitRequest) (*SubmitResult, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("invalid rsvp status %q", req.Status)
	}

	target := req.TargetUserID
	if target == "" {
		target = accessContext.UserID
	}
	if !accessContext.CanActFor(target) {
		return nil, ErrForbidden
	}

	ev, err := s.Events.GetEventInfo(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if ev.CircleID != accessContext.CircleID {
		return nil, ErrEventNotFound
	}

	existing, err := s.Store.Get(ctx, req.EventID, target)
	if err != nil {
		return nil, err
	}

	var oldStatus *Status
	if existing != nil {
		old := Status(existing.Status)
		oldStatus = &old
	}

	now := s.now()
	locked := now.After(ev.RsvpDeadline)

	if err := evaluateGate(ev, accessContext.IsManager(), oldStatus, req.Status, req.ConfirmCancelFee, locked); err != nil {
		return nil, err
	}

	// Advisory capacity check before the write; the repository re-counts
	// inside a transaction so a concurrent submit cannot slip past it.
	if req.Status == StatusYes && ev.Capacity != nil {
		rsvps, err := s.Store.ListByEvent(ctx, req.EventID)
		if err != nil {
			return nil, err
		}
		if yesCountExcluding(rsvps, target) >= *ev.Capacity {
			return nil, ErrCapacityExceeded
		}
	}

	rec := &RSVP{
		EventID: req.EventID,
		UserID:  target,
		Status:  string(req.Status),
	}

	if req.Status == StatusYes && ev.Capacity != nil {
		err = s.Store.UpsertWithCapacityCheck(ctx, rec, *ev.Capacity)
	} else {
		err = s.Store.Upsert(ctx, rec)
	}
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{RSVP: rec, OldStatus: oldStatus}
	if charged := cancelFeeCharged(ev, accessContext.IsManager(), oldStatus, req.Status, locked); charged > 0 {
		result.CancelFeeCharged = charged
	}

	// Payment record mirrors attendance: attending members carry an unpaid
	// record until a manager marks it paid; paid records are never removed.
	reconcileErr := s.reconcilePayment(ctx, ev, target, req.Status)

	s.appendHistory(ctx, accessContext, ev, target, oldStatus, req.Status, locked)

	if reconcileErr != nil {
		return result, fmt.Errorf("rsvp recorded but payment reconciliation failed, resubmit to repair: %w", reconcileErr)
	}

	return result, nil
}

// evaluateGate decides whether the requested transition may proceed.
// Managers bypass deadline and policy gates entirely.
func evaluateGate(ev *EventInfo, isManager bool, old *Status, requested Status, confirmed bool, locked bool) error {
	if isManager || !locked {
		return nil
	}

	cancelling := old != nil && *old == StatusYes && requested != StatusYes
	if cancelling {
		switch ev.CancelPolicy {
		case event.CancelPolicyDeadlineOnly:
			return ErrCancellationNotAllowed
		case event.CancelPolicyPenalty:
			if !confirmed {
				return ErrCancelFeeConfirmationRequired
			}
			return nil
		default:
			return nil
		}
	}

	// Non-cancelling changes past the deadline: free and penalty events
	// stay open, deadline_only events are frozen.
	if ev.CancelPolicy == event.CancelPolicyDeadlineOnly {
		return ErrRsvpLocked
	}
	return nil
}

// cancelFeeCharged reports the fee the member accepted for a late
// cancellation under the penalty policy.
func cancelFeeCharged(ev *EventInfo, isManager bool, old *Status, requested Status, locked bool) int {
	if isManager || !locked {
		return 0
	}
	if ev.CancelPolicy != event.CancelPolicyPenalty {
		return 0
	}
	if old == nil || *old != StatusYes || requested == StatusYes {
		return 0
	}
	return ev.CancelFee
}

func yesCountExcluding(rsvps []RSVP, userID string) int {
	count := 0
	for _, r := range rsvps {
		if Status(r.Status) == StatusYes && r.UserID != userID {
			count++
		}
	}
	return count
}

func (s *Service) reconcilePayment(ctx context.Context, ev *EventInfo, userID string, status Status) error {
	if status == StatusYes {
		return s.Payments.EnsureUnpaid(ctx, ev.ID, userID, ev.Fee)
	}
	return s.Payments.DeleteIfUnpaid(ctx, ev.ID, userID)
}

// appendHistory records the transition. Best effort: a failed append is
// logged, never surfaced.
func (s *Service) appendHistory(ctx context.Context, accessContext middleware.AccessContext, ev *EventInfo, target string, old *Status, newStatus Status, locked bool) {
	var oldStr *string
	if old != nil {
		v := string(*old)
		oldStr = &v
	}

	details, _ := json.Marshal(map[string]any{
		"locked": locked,
		"policy": ev.CancelPolicy,
	})

	rec := &history.RsvpHistory{
		EventID:     ev.ID,
		UserID:      target,
		OldStatus:   oldStr,
		NewStatus:   string(newStatus),
		ActorUserID: accessContext.UserID,
		ActorRole:   accessContext.RoleName,
		Override:    accessContext.IsManager() && (target != accessContext.UserID || locked),
		Details:     details,
	}

	if err := s.History.LogTransition(ctx, rec); err != nil {
		log.Printf("⚠️ Failed to append rsvp history for event %d user %s: %v", ev.ID, target, err)
	}
}

// ===========================
// 📄 List RSVPs for an event with member names and the attendance summary
func (s *Service) ListForEvent(ctx context.Context, accessContext middleware.AccessContext, eventID uint) ([]RSVPWithName, event.AttendanceSummary, error) {
	ev, err := s.Events.GetEventInfo(ctx, eventID)
	if err != nil {
		return nil, event.AttendanceSummary{}, err
	}
	if ev.CircleID != accessContext.CircleID {
		return nil, event.AttendanceSummary{}, ErrEventNotFound
	}

	rsvps, err := s.Store.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, event.AttendanceSummary{}, err
	}

	names, err := s.Names.DisplayNames(accessContext.CircleID)
	if err != nil {
		return nil, event.AttendanceSummary{}, err
	}

	out := make([]RSVPWithName, 0, len(rsvps))
	for _, r := range rsvps {
		out = append(out, RSVPWithName{RSVP: r, DisplayName: names[r.UserID]})
	}

	return out, Aggregate(rsvps, ev.Capacity), nil
}

// ===========================
// 🔍 Get the acting member's own RSVP (nil body when no response yet)
func (s *Service) GetOwn(ctx context.Context, accessContext middleware.AccessContext, eventID uint) (*RSVP, error) {
	ev, err := s.Events.GetEventInfo(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.CircleID != accessContext.CircleID {
		return nil, ErrEventNotFound
	}
	return s.Store.Get(ctx, eventID, accessContext.UserID)
}
