package rsvp

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

func getAccessContextFromContext(c *gin.Context) (middleware.AccessContext, bool) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return middleware.AccessContext{}, false
	}
	return accessContext, true
}

func eventIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return 0, false
	}
	return uint(id), true
}

// ===========================
// 🎯 Submit RSVP - POST /events/:id/rsvp
// @Summary Submit or change an RSVP
// @Description Upserts the member's RSVP for the event. Managers may submit on behalf of another member via user_id and bypass deadline/policy gates.
// @Tags RSVP
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param rsvp body SubmitRequest true "RSVP"
// @Success 200 {object} SubmitResult
// @Failure 400 {object} gin.H
// @Failure 403 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/events/{id}/rsvp [post]
func (h *Handler) SubmitRSVP(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.EventID = eventID

	result, err := h.Service.SubmitRSVP(c.Request.Context(), accessContext, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": ReasonCode(err)})
		case errors.Is(err, ErrRsvpLocked),
			errors.Is(err, ErrCancellationNotAllowed),
			errors.Is(err, ErrCancelFeeConfirmationRequired),
			errors.Is(err, ErrCapacityExceeded):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": ReasonCode(err)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ===========================
// 📄 List RSVPs - GET /events/:id/rsvps
// @Summary List RSVPs for an event with attendance summary
// @Tags RSVP
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/events/{id}/rsvps [get]
func (h *Handler) ListRSVPs(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	rsvps, summary, err := h.Service.ListForEvent(c.Request.Context(), accessContext, eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rsvps": rsvps, "attendance": summary})
}

// ===========================
// 🔍 My RSVP - GET /events/:id/rsvps/me
// @Summary Get the acting member's RSVP for an event
// @Tags RSVP
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/events/{id}/rsvps/me [get]
func (h *Handler) GetMyRSVP(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	rec, err := h.Service.GetOwn(c.Request.Context(), accessContext, eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rsvp": rec})
}
