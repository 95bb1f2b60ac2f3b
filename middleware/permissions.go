package middleware

// Role constants to avoid string typos
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// AccessContext stores the acting user's identity and circle membership.
// It is resolved once by AuthMiddleware and passed explicitly into
// services — no service reads ambient session state.
type AccessContext struct {
	UserID   string // auth provider user id (subject claim)
	MemberID uint   // member row id
	CircleID uint
	RoleName string
}

// IsManager returns true for roles with override privileges
// (deadline bypass, payment toggle, reports, event management).
func (ac *AccessContext) IsManager() bool {
	return ac.RoleName == RoleOwner || ac.RoleName == RoleAdmin
}

// CanActFor returns true if the actor may change userID's RSVP.
// Members act only for themselves; managers may act for anyone in the circle.
func (ac *AccessContext) CanActFor(userID string) bool {
	if ac.UserID == userID {
		return true
	}
	return ac.IsManager()
}
