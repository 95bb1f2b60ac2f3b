package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/knotapp/circle-management-backend/internal/member"
	"github.com/knotapp/circle-management-backend/middleware"
)

// Service fans events out to circle members (in-app rows plus push) and
// manages the member-facing notification surface.
type Service interface {
	NotifyEventCreated(ctx context.Context, msg EventCreatedMessage) error
	RegisterDeviceToken(ctx context.Context, accessContext middleware.AccessContext, req RegisterTokenRequest) error
	RemoveDeviceToken(ctx context.Context, accessContext middleware.AccessContext, token string) error
	ListInApp(ctx context.Context, userID string, limit, offset int) ([]InAppNotification, int64, error)
	MarkAsRead(ctx context.Context, userID string, id uint) error
	MarkAllAsRead(ctx context.Context, userID string) error
}

type service struct {
	repo    *Repository
	members *member.Repository
	channel Channel
}

func NewService(repo *Repository, members *member.Repository, channel Channel) Service {
	return &service{
		repo:    repo,
		members: members,
		channel: channel,
	}
}

// ===========================
// 📣 Event fan-out
// Writes one in-app row per circle member, then pushes to registered
// devices. Push delivery is best effort.
func (s *service) NotifyEventCreated(ctx context.Context, msg EventCreatedMessage) error {
	roster, err := s.members.ListByCircle(msg.CircleID)
	if err != nil {
		return fmt.Errorf("failed to load circle roster: %w", err)
	}

	title := "New event: " + msg.Title
	body := fmt.Sprintf("%s at %s. Open the app to RSVP.", msg.Datetime.Format("Jan 2 15:04"), msg.Place)

	recs := make([]InAppNotification, 0, len(roster))
	for _, m := range roster {
		recs = append(recs, InAppNotification{
			UserID:   m.UserID,
			CircleID: msg.CircleID,
			Title:    title,
			Message:  body,
			Category: "event",
		})
	}

	if err := s.repo.CreateInAppBatch(ctx, recs); err != nil {
		return fmt.Errorf("failed to create in-app notifications: %w", err)
	}

	tokens, err := s.repo.ActiveTokensByCircle(ctx, msg.CircleID)
	if err != nil {
		log.Printf("⚠️ Failed to load device tokens for circle %d: %v", msg.CircleID, err)
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}

	if err := s.channel.Send(ctx, tokens, title, body); err != nil {
		log.Printf("⚠️ Push delivery incomplete for event %d: %v", msg.EventID, err)
	}

	return nil
}

// ===========================
// 📱 Device token registration
func (s *service) RegisterDeviceToken(ctx context.Context, accessContext middleware.AccessContext, req RegisterTokenRequest) error {
	rec := &FCMDeviceToken{
		UserID:      accessContext.UserID,
		CircleID:    accessContext.CircleID,
		DeviceToken: req.DeviceToken,
		DeviceType:  req.DeviceType,
		DeviceName:  req.DeviceName,
	}
	return s.repo.UpsertDeviceToken(ctx, rec)
}

func (s *service) RemoveDeviceToken(ctx context.Context, accessContext middleware.AccessContext, token string) error {
	return s.repo.DeactivateToken(ctx, accessContext.UserID, token)
}

// ===========================
// 🔔 In-app surface
func (s *service) ListInApp(ctx context.Context, userID string, limit, offset int) ([]InAppNotification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListInAppByUser(ctx, userID, limit, offset)
}

func (s *service) MarkAsRead(ctx context.Context, userID string, id uint) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}
