package member

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🔍 Get Member by User ID
func (r *Repository) GetByUserID(userID string) (*Member, error) {
	var m Member
	err := r.DB.Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ===========================
// 🔍 Get Member by User ID within a Circle
func (r *Repository) GetByUserAndCircle(userID string, circleID uint) (*Member, error) {
	var m Member
	err := r.DB.Where("user_id = ? AND circle_id = ?", userID, circleID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ===========================
// 📄 List Members of a Circle
func (r *Repository) ListByCircle(circleID uint) ([]Member, error) {
	var members []Member
	err := r.DB.
		Where("circle_id = ?", circleID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// ===========================
// 🔢 Count Members of a Circle
func (r *Repository) CountByCircle(circleID uint) (int, error) {
	var count int64
	err := r.DB.Model(&Member{}).
		Where("circle_id = ?", circleID).
		Count(&count).Error
	return int(count), err
}

// ===========================
// 🗺 Display Names keyed by user ID (for RSVP/payment listings)
func (r *Repository) DisplayNamesByCircle(circleID uint) (map[string]string, error) {
	var members []Member
	err := r.DB.
		Select("user_id", "display_name").
		Where("circle_id = ?", circleID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.UserID] = m.DisplayName
	}
	return names, nil
}
