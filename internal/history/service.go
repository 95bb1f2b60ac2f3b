package history

import "context"

// Service records and reads the RSVP transition log. Writes are expected to
// be best-effort at the call site; a failed append never fails the RSVP.
type Service interface {
	LogTransition(ctx context.Context, rec *RsvpHistory) error
	List(ctx context.Context, circleID uint, f Filter) ([]RsvpHistory, int64, error)
}

type service struct {
	repo *Repository
}

func NewService(r *Repository) Service {
	return &service{repo: r}
}

func (s *service) LogTransition(ctx context.Context, rec *RsvpHistory) error {
	return s.repo.Create(ctx, rec)
}

func (s *service) List(ctx context.Context, circleID uint, f Filter) ([]RsvpHistory, int64, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.repo.List(ctx, circleID, f)
}
