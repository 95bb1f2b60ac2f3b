package event

import (
	"errors"
	"net/http"
	"strconv"

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
// 📌 Extract Access Context
func getAccessContextFromContext(c *gin.Context) (middleware.AccessContext, bool) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return middleware.AccessContext{}, false
	}
	return accessContext, true
}

// ===========================
// 🎯 Create Event - POST /events
// @Summary Create an event
// @Description Create a circle event (owner/admin only). Events are immutable once created.
// @Tags Event
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 201 {object} Event
// @Failure 400 {object} gin.H
// @Failure 403 {object} gin.H
// @Router /api/v1/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.Service.CreateEvent(&req, accessContext)
	if err != nil {
		if errors.Is(err, ErrManagerOnly) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// ===========================
// 🔍 Get Event - GET /events/:id
// @Summary Get event by ID with attendance summary
// @Tags Event
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} Event
// @Failure 404 {object} gin.H
// @Router /api/v1/events/{id} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	e, err := h.Service.GetEventByID(uint(id), accessContext)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ===========================
// 📆 Upcoming Events - GET /events/upcoming
// @Summary List upcoming events for the circle
// @Tags Event
// @Produce json
// @Success 200 {array} Event
// @Router /api/v1/events/upcoming [get]
func (h *Handler) GetUpcomingEvents(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	events, err := h.Service.GetUpcomingEvents(accessContext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// ===========================
// 📄 List Events - GET /events
// @Summary List events with pagination and search
// @Tags Event
// @Produce json
// @Param limit query int false "Limit (default 20)"
// @Param offset query int false "Offset"
// @Param search query string false "Search in title/note"
// @Success 200 {array} Event
// @Router /api/v1/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	search := c.Query("search")

	events, err := h.Service.ListEvents(accessContext, limit, offset, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// ===========================
// 📊 Event Stats - GET /events/stats
// @Summary Dashboard stats for the circle's events
// @Tags Event
// @Produce json
// @Success 200 {object} EventStatsResponse
// @Router /api/v1/events/stats [get]
func (h *Handler) GetEventStats(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	stats, err := h.Service.GetEventStats(accessContext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ===========================
// ❌ Delete Event - DELETE /events/:id
// @Summary Delete an event (owner/admin only)
// @Tags Event
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} gin.H
// @Failure 403 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.Service.DeleteEvent(uint(id), accessContext); err != nil {
		if errors.Is(err, ErrManagerOnly) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
