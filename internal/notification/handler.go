package notification

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

func getAccessContextFromContext(c *gin.Context) (middleware.AccessContext, bool) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return middleware.AccessContext{}, false
	}
	return accessContext, true
}

// ===========================
// 📱 Register Device Token - POST /notifications/device-token
// @Summary Register an FCM device token for push notifications
// @Tags Notification
// @Accept json
// @Produce json
// @Param body body RegisterTokenRequest true "Device token"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/v1/notifications/device-token [post]
func (h *Handler) RegisterDeviceToken(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.RegisterDeviceToken(c.Request.Context(), accessContext, req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device token registered"})
}

// ===========================
// 📱 Remove Device Token - DELETE /notifications/device-token
// @Summary Deactivate one of the acting member's FCM device tokens
// @Tags Notification
// @Accept json
// @Produce json
// @Param body body RemoveTokenRequest true "Device token"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/v1/notifications/device-token [delete]
func (h *Handler) RemoveDeviceToken(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	var req RemoveTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.RemoveDeviceToken(c.Request.Context(), accessContext, req.DeviceToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device token removed"})
}

// ===========================
// 🔔 List Notifications - GET /notifications
// @Summary List the acting member's in-app notifications
// @Tags Notification
// @Produce json
// @Param limit query int false "Limit (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {object} gin.H
// @Router /api/v1/notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, unread, err := h.Service.ListInApp(c.Request.Context(), accessContext.UserID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": rows, "unread_count": unread})
}

// ===========================
// ✅ Mark Read - PATCH /notifications/:id/read
// @Summary Mark one notification as read
// @Tags Notification
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/notifications/{id}/read [patch]
func (h *Handler) MarkAsRead(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.Service.MarkAsRead(c.Request.Context(), accessContext.UserID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

// ===========================
// ✅ Mark All Read - PATCH /notifications/read-all
// @Summary Mark all of the acting member's notifications as read
// @Tags Notification
// @Produce json
// @Success 200 {object} gin.H
// @Router /api/v1/notifications/read-all [patch]
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	if err := h.Service.MarkAllAsRead(c.Request.Context(), accessContext.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all marked as read"})
}
