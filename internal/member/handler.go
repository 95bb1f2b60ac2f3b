package member

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knotapp/circle-management-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List Members - GET /members
// @Summary List circle members
// @Tags Member
// @Produce json
// @Success 200 {array} Member
// @Router /api/v1/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return
	}

	members, err := h.Service.ListMembers(accessContext.CircleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}

// ===========================
// 🔍 My Membership - GET /members/me
// @Summary Get the acting user's membership
// @Tags Member
// @Produce json
// @Success 200 {object} Member
// @Router /api/v1/members/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return
	}

	m, err := h.Service.GetMember(accessContext.UserID, accessContext.CircleID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}
