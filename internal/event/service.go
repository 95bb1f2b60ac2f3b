package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/knotapp/circle-management-backend/internal/notification"
	"github.com/knotapp/circle-management-backend/middleware"
	"github.com/knotapp/circle-management-backend/utils"
)

var (
	ErrManagerOnly   = errors.New("only owners and admins can manage events")
	ErrEventNotFound = errors.New("event not found")
)

// Service wraps business logic for circle events
type Service struct {
	Repo     *Repository
	NotifSvc notification.Service
}

func NewService(r *Repository, notifSvc notification.Service) *Service {
	return &Service{
		Repo:     r,
		NotifSvc: notifSvc,
	}
}

// ===========================
// 🎯 Create Event
// Events are immutable after creation; there is no update flow.
func (s *Service) CreateEvent(req *CreateEventRequest, accessContext middleware.AccessContext) (*Event, error) {
	if !accessContext.IsManager() {
		return nil, ErrManagerOnly
	}

	datetime, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime format, use RFC3339: %w", err)
	}

	deadline, err := time.Parse(time.RFC3339, req.RsvpDeadline)
	if err != nil {
		return nil, fmt.Errorf("invalid rsvp_deadline format, use RFC3339: %w", err)
	}

	policy := req.CancelPolicy
	if policy == "" {
		policy = CancelPolicyFree
	}

	// cancel_fee only carries meaning under the penalty policy
	cancelFee := 0
	if policy == CancelPolicyPenalty {
		cancelFee = req.CancelFee
	}

	e := &Event{
		CircleID:     accessContext.CircleID,
		Title:        req.Title,
		Datetime:     datetime,
		Place:        req.Place,
		Fee:          req.Fee,
		Note:         req.Note,
		RsvpDeadline: deadline,
		Capacity:     req.Capacity,
		CancelPolicy: policy,
		CancelFee:    cancelFee,
		CreatedBy:    accessContext.UserID,
	}

	if err := s.Repo.CreateEvent(e); err != nil {
		return nil, err
	}

	s.announceCreated(e)

	return e, nil
}

// announceCreated fans the new event out to circle members, through Kafka
// when configured, directly otherwise. Never fails event creation.
func (s *Service) announceCreated(e *Event) {
	msg := notification.EventCreatedMessage{
		EventID:  e.ID,
		CircleID: e.CircleID,
		Title:    e.Title,
		Datetime: e.Datetime,
		Place:    e.Place,
	}

	if utils.IsKafkaEnabled() {
		payload, err := json.Marshal(msg)
		if err == nil {
			err = utils.PublishMessage(context.Background(), uuid.NewString(), payload)
		}
		if err != nil {
			log.Printf("⚠️ Failed to publish event.created for event %d: %v", e.ID, err)
		}
		return
	}

	if s.NotifSvc != nil {
		if err := s.NotifSvc.NotifyEventCreated(context.Background(), msg); err != nil {
			log.Printf("⚠️ Event notification fan-out failed for event %d: %v", e.ID, err)
		}
	}
}

// ===========================
// 🔍 Get Event by ID (circle scoped)
func (s *Service) GetEventByID(id uint, accessContext middleware.AccessContext) (*Event, error) {
	e, err := s.Repo.GetEventByID(id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if e.CircleID != accessContext.CircleID {
		return nil, ErrEventNotFound
	}

	return e, nil
}

// ===========================
// 📆 Get Upcoming Events
func (s *Service) GetUpcomingEvents(accessContext middleware.AccessContext) ([]Event, error) {
	return s.Repo.GetUpcomingEvents(accessContext.CircleID)
}

// ===========================
// 📄 List Events with Pagination
func (s *Service) ListEvents(accessContext middleware.AccessContext, limit, offset int, search string) ([]Event, error) {
	return s.Repo.ListEventsByCircle(accessContext.CircleID, limit, offset, search)
}

// ===========================
// 📊 Dashboard Stats
func (s *Service) GetEventStats(accessContext middleware.AccessContext) (*EventStatsResponse, error) {
	return s.Repo.GetEventStats(accessContext.CircleID)
}

// ===========================
// ❌ Delete Event
func (s *Service) DeleteEvent(id uint, accessContext middleware.AccessContext) error {
	if !accessContext.IsManager() {
		return ErrManagerOnly
	}

	e, err := s.Repo.GetEventByID(id)
	if err != nil {
		return ErrEventNotFound
	}
	if e.CircleID != accessContext.CircleID {
		return ErrEventNotFound
	}

	return s.Repo.DeleteEvent(id, accessContext.CircleID)
}
