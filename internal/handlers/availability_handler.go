package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/httpresp"
	"github.com/BruksfildServices01/appointment-booking/internal/middleware"
	"github.com/BruksfildServices01/appointment-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointment-booking/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	slots  *ucAppointment.ViewAvailableSlots
	create *ucAppointment.CreateAvailability
}

func NewAvailabilityHandler(
	slots *ucAppointment.ViewAvailableSlots,
	create *ucAppointment.CreateAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{slots: slots, create: create}
}

type SlotsQuery struct {
	Date            string `form:"date" binding:"required"`
	ServiceDuration int    `form:"service_duration" binding:"required,service_duration"`
}

type CreateAvailabilityRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	var q SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_query", "date and service_duration (30-90) are required.")
		return
	}

	date, err := timezone.ParseDate(q.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), domain.SlotsInput{
		Date:            date,
		ServiceDuration: q.ServiceDuration,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_compute_slots")
		return
	}

	httpresp.OK(c, slots)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	av, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAvailabilityInput{
		ProfessionalID: middleware.UserID(c),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_availability")
		return
	}

	httpresp.Created(c, av)
}
