package handlers

import (
	"net/http"

	"watchbill-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// AddEvent handles POST /admin/sailors/:id/events
// @Summary Add watch event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Sailor ID (UUID)"
// @Param event body service.EventRequest true "Watch event"
// @Success 201 {object} service.EventResponse "Created event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Sailor not found"
// @Security BearerAuth
// @Router /admin/sailors/{id}/events [post]
func (h *SailorHandler) AddEvent(c *gin.Context) {
	sailorID, ok := parseID(c, "id", "sailor")
	if !ok {
		return
	}

	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.sailorService.AddEvent(sailorID, &req)
	if err != nil {
		respondError(c, err, "Failed to add event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ScheduleSeries handles POST /admin/sailors/:id/events/series
// @Summary Schedule recurring watches
// @Description Expands an RFC 5545 RRULE from the start date, at most 366 occurrences
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Sailor ID (UUID)"
// @Param series body service.ScheduleSeriesRequest true "Recurrence"
// @Success 201 {object} service.SeriesResponse "Created events"
// @Failure 400 {object} ErrorResponse "Invalid or unbounded rule"
// @Failure 404 {object} ErrorResponse "Sailor not found"
// @Security BearerAuth
// @Router /admin/sailors/{id}/events/series [post]
func (h *SailorHandler) ScheduleSeries(c *gin.Context) {
	sailorID, ok := parseID(c, "id", "sailor")
	if !ok {
		return
	}

	var req service.ScheduleSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.sailorService.ScheduleSeries(sailorID, &req)
	if err != nil {
		respondError(c, err, "Failed to schedule series")
		return
	}

	c.JSON(http.StatusCreated, series)
}

// UpdateEvent handles PUT /admin/sailors/:id/events/:eventId
// @Summary Edit watch event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Sailor ID (UUID)"
// @Param eventId path string true "Event ID (UUID)"
// @Param event body service.UpdateEventRequest true "Fields to change"
// @Success 200 {object} service.EventResponse "Updated event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /admin/sailors/{id}/events/{eventId} [put]
func (h *SailorHandler) UpdateEvent(c *gin.Context) {
	sailorID, ok := parseID(c, "id", "sailor")
	if !ok {
		return
	}
	eventID, ok := parseID(c, "eventId", "event")
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.sailorService.UpdateEvent(sailorID, eventID, &req)
	if err != nil {
		respondError(c, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /admin/sailors/:id/events/:eventId
// @Summary Remove watch event
// @Tags events
// @Param id path string true "Sailor ID (UUID)"
// @Param eventId path string true "Event ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /admin/sailors/{id}/events/{eventId} [delete]
func (h *SailorHandler) DeleteEvent(c *gin.Context) {
	sailorID, ok := parseID(c, "id", "sailor")
	if !ok {
		return
	}
	eventID, ok := parseID(c, "eventId", "event")
	if !ok {
		return
	}

	if err := h.sailorService.DeleteEvent(sailorID, eventID); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}

	c.Status(http.StatusNoContent)
}
