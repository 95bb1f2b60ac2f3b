package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/knotapp/circle-management-backend/middleware"
)

type Handler struct {
	Service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 RSVP History - GET /history/rsvps
// @Summary List RSVP transitions for the circle (owner/admin only)
// @Tags History
// @Produce json
// @Param event_id query int false "Filter by event"
// @Param user_id query string false "Filter by member"
// @Param limit query int false "Limit (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {object} gin.H
// @Failure 401 {object} gin.H
// @Router /api/v1/history/rsvps [get]
func (h *Handler) ListRsvpHistory(c *gin.Context) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return
	}

	var f Filter
	if v, err := strconv.ParseUint(c.Query("event_id"), 10, 32); err == nil {
		f.EventID = uint(v)
	}
	f.UserID = c.Query("user_id")
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, total, err := h.Service.List(c.Request.Context(), accessContext.CircleID, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": rows, "total": total})
}
