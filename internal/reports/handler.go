package reports

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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

func parseFilters(c *gin.Context) Filters {
	var f Filters
	if v, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		f.From = &v
	}
	if v, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		f.To = &v
	}
	return f
}

func writeExport(c *gin.Context, data []byte, filename, mime string, err error) {
	if err != nil {
		switch {
		case errors.Is(err, ErrManagerOnly):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mime, data)
}

// ===========================
// 📊 Attendance Report - GET /reports/attendance
// @Summary Export the attendance report (owner/admin only)
// @Tags Reports
// @Produce octet-stream
// @Param format query string false "csv, excel or pdf (default csv)"
// @Param from query string false "RFC3339 lower bound on event date"
// @Param to query string false "RFC3339 upper bound on event date"
// @Success 200 {file} binary
// @Failure 403 {object} gin.H
// @Router /api/v1/reports/attendance [get]
func (h *Handler) ExportAttendance(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", FormatCSV)
	data, filename, mime, err := h.Service.ExportAttendance(c.Request.Context(), accessContext, format, parseFilters(c))
	writeExport(c, data, filename, mime, err)
}

// ===========================
// 💰 Collection Report - GET /reports/collection
// @Summary Export the fee collection report (owner/admin only)
// @Tags Reports
// @Produce octet-stream
// @Param format query string false "csv, excel or pdf (default csv)"
// @Param from query string false "RFC3339 lower bound on event date"
// @Param to query string false "RFC3339 upper bound on event date"
// @Success 200 {file} binary
// @Failure 403 {object} gin.H
// @Router /api/v1/reports/collection [get]
func (h *Handler) ExportCollection(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", FormatCSV)
	data, filename, mime, err := h.Service.ExportCollection(c.Request.Context(), accessContext, format, parseFilters(c))
	writeExport(c, data, filename, mime, err)
}

// ===========================
// 📄 Event Roster Report - GET /reports/events/:id
// @Summary Export the per-member roster for one event (owner/admin only)
// @Tags Reports
// @Produce octet-stream
// @Param id path int true "Event ID"
// @Param format query string false "csv, excel or pdf (default csv)"
// @Success 200 {file} binary
// @Failure 403 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/reports/events/{id} [get]
func (h *Handler) ExportEventDetail(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	format := c.DefaultQuery("format", FormatCSV)
	data, filename, mime, err := h.Service.ExportEventDetail(c.Request.Context(), accessContext, uint(id), format)
	writeExport(c, data, filename, mime, err)
}
