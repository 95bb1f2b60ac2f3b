package member

import (
	"errors"

	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

// Service wraps roster lookups shared across the application
type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// ResolveAccess implements middleware.MemberResolver: maps an authenticated
// user onto their circle membership for the access context.
func (s *Service) ResolveAccess(userID string) (uint, uint, string, error) {
	m, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, "", ErrMemberNotFound
		}
		return 0, 0, "", err
	}
	return m.ID, m.CircleID, m.Role, nil
}

// ===========================
// 📄 Roster
func (s *Service) ListMembers(circleID uint) ([]Member, error) {
	return s.Repo.ListByCircle(circleID)
}

// DisplayNames returns user_id -> display_name for a circle.
func (s *Service) DisplayNames(circleID uint) (map[string]string, error) {
	return s.Repo.DisplayNamesByCircle(circleID)
}

// GetMember returns the member row for a user within a circle.
func (s *Service) GetMember(userID string, circleID uint) (*Member, error) {
	m, err := s.Repo.GetByUserAndCircle(userID, circleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}
