package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharpcut-app/sharpcut-api/internal/dto"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/httpresp"
	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	ucAppointment "github.com/sharpcut-app/sharpcut-api/internal/usecase/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/whatsapp"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book        *ucAppointment.Book
	cancel      *ucAppointment.Cancel
	complete    *ucAppointment.Complete
	noShow      *ucAppointment.MarkNoShow
	delete      *ucAppointment.Delete
	get         *ucAppointment.GetForShop
	listByDate  *ucAppointment.ListByDate
	listByMonth *ucAppointment.ListByMonth
}

func NewAppointmentHandler(
	book *ucAppointment.Book,
	cancel *ucAppointment.Cancel,
	complete *ucAppointment.Complete,
	noShow *ucAppointment.MarkNoShow,
	del *ucAppointment.Delete,
	get *ucAppointment.GetForShop,
	listByDate *ucAppointment.ListByDate,
	listByMonth *ucAppointment.ListByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:        book,
		cancel:      cancel,
		complete:    complete,
		noShow:      noShow,
		delete:      del,
		get:         get,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE (walk-in / phone booking from the dashboard)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		ShopID:     shopID,
		Date:       req.Date,
		Time:       req.Time,
		ServiceID:  req.ServiceID,
		GuestName:  req.ClientName,
		GuestPhone: req.ClientPhone,
		GuestEmail: req.ClientEmail,
		Notes:      req.Notes,
		ActorID:    &barberID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "That time was just booked. Pick another slot.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Outside working hours.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Time must sit on the 30-minute grid.")
	case httperr.IsBusiness(err, "slot_in_the_past"):
		httperr.BadRequest(c, "slot_in_the_past", "That time already passed.")
	case httperr.IsBusiness(err, "identity_required"):
		httperr.BadRequest(c, "identity_required", "Provide a customer or guest name and phone.")
	case httperr.IsBusiness(err, "identity_conflict"):
		httperr.BadRequest(c, "identity_conflict", "Provide either a customer or guest data, not both.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), shopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	aps, err := h.listByMonth.Execute(c.Request.Context(), shopID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := h.idParam(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), shopID, barberID, id)
	if err != nil {
		writeStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := h.idParam(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), shopID, barberID, id)
	if err != nil {
		writeStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := h.idParam(c)
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), shopID, barberID, id)
	if err != nil {
		writeStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), shopID, barberID, id); err != nil {
		writeStateChangeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeStateChangeError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Appointment is not in a state that allows this.")
	default:
		httperr.Internal(c, "failed_to_update_appointment", "Could not update appointment.")
	}
}

// ======================================================
// WHATSAPP LINK
// ======================================================

// WhatsApp builds the "notify next client" deep link for one
// appointment.
func (h *AppointmentHandler) WhatsApp(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := h.idParam(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), shopID, id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	name := ap.GuestName
	phone := ap.GuestPhone
	if ap.Customer != nil {
		name = ap.Customer.Name
		phone = ap.Customer.Phone
	}
	if phone == "" {
		httperr.BadRequest(c, "no_phone", "No phone number on this appointment.")
		return
	}

	message := whatsapp.ReminderMessage(name, ap.ServiceName, ap.Date, ap.StartTime)

	c.JSON(http.StatusOK, gin.H{"link": whatsapp.Link(phone, message)})
}
