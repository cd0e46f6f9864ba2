package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-booking/internal/domain/user"
	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/httpresp"
	"github.com/BruksfildServices01/appointment-booking/internal/middleware"
	"github.com/BruksfildServices01/appointment-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointment-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book        *ucAppointment.BookAppointment
	cancel      *ucAppointment.CancelAppointment
	listClient  *ucAppointment.ListClientAppointments
	listByDate  *ucAppointment.ListAppointmentsByDate
	listByMonth *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	listClient *ucAppointment.ListClientAppointments,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:        book,
		cancel:      cancel,
		listClient:  listClient,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID string    `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID:  middleware.UserID(c),
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
	})
	if err != nil {
		// the database constraint caught a race the use case could not see
		if httperr.IsExclusionConflict(err) {
			httperr.Conflict(c, "slot_not_available", "Time slot is not available.")
			return
		}
		httperr.Respond(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

// List returns the caller's appointments. Professionals may pass client_id.
func (h *AppointmentHandler) List(c *gin.Context) {
	actorID := middleware.UserID(c)
	clientID := c.DefaultQuery("client_id", actorID)

	aps, err := h.listClient.Execute(c.Request.Context(), actorID, clientID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	aps, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	// professionals cancel on anyone's behalf
	var actor *string
	if middleware.UserRole(c) != string(user.RoleProfessional) {
		id := middleware.UserID(c)
		actor = &id
	}

	ap, err := h.cancel.Execute(c.Request.Context(), ucAppointment.CancelAppointmentInput{
		AppointmentID:    c.Param("id"),
		CancellingUserID: actor,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_cancel_appointment")
		return
	}

	httpresp.OK(c, ap)
}
