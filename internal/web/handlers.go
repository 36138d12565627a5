package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gf3w/barber-booking/internal/barberapi"
	"github.com/gf3w/barber-booking/internal/booking"
	"github.com/gf3w/barber-booking/internal/schedule"
	"github.com/gf3w/barber-booking/pkg/logging"
)

// BookingAPI is the slice of the booking API client the pages depend on.
type BookingAPI interface {
	ListServices(ctx context.Context) ([]barberapi.Service, error)
	GetService(ctx context.Context, id string) (*barberapi.Service, error)
	CreateService(ctx context.Context, payload barberapi.ServicePayload) (*barberapi.Service, error)
	UpdateService(ctx context.Context, id string, payload barberapi.ServicePayload) (*barberapi.Service, error)
	DeleteService(ctx context.Context, id string) error
	CreateAppointment(ctx context.Context, payload barberapi.AppointmentPayload) (*barberapi.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, update barberapi.AppointmentUpdate) (*barberapi.Appointment, error)
	AppointmentsByDate(ctx context.Context, date string) ([]barberapi.Appointment, error)
	DaysWithAppointments(ctx context.Context, start, end string) ([]string, error)
	GetFinancialStats(ctx context.Context, year, month int) (*barberapi.FinancialStats, error)
}

// Handler serves the booking pages and the admin dashboard.
type Handler struct {
	api      BookingAPI
	logger   *logging.Logger
	shopName string
	now      func() time.Time
}

// NewHandler creates the page handler set.
func NewHandler(api BookingAPI, shopName string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		api:      api,
		logger:   logger,
		shopName: shopName,
		now:      time.Now,
	}
}

// Health answers liveness probes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// userMessage prefers the upstream message of an APIError over the page's
// generic fallback.
func userMessage(err error, fallback string) string {
	var apiErr *barberapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

type homePage struct {
	ShopName string
	Services []barberapi.Service
	Error    string
	Success  bool
}

// Home lists the service catalog.
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := homePage{
		ShopName: h.shopName,
		Success:  r.URL.Query().Get("success") == "true",
	}

	services, err := h.api.ListServices(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		data.Error = "Falha ao carregar os serviços. Por favor, tente novamente mais tarde."
	}
	data.Services = services

	h.render(w, "home", data)
}

type calendarPage struct {
	ServiceID    string
	Dates        []calendarDate
	Slots        []string
	SelectedDate string
	SelectedTime string
}

type calendarDate struct {
	Date  string
	Label string
}

// Calendar offers the next seven days plus the fixed half-hour time slots.
// Selection round-trips through query params; the confirm link appears once
// both a date and a time are picked.
// GET /calendar?service=&date=&time=
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := calendarPage{
		ServiceID:    q.Get("service"),
		Slots:        schedule.TimeSlots(),
		SelectedDate: q.Get("date"),
		SelectedTime: q.Get("time"),
	}
	for _, d := range schedule.NextDays(h.now(), 7) {
		data.Dates = append(data.Dates, calendarDate{Date: d, Label: shortDateLabel(d)})
	}
	h.render(w, "calendar", data)
}

// shortDateLabel renders "5 jun" style labels for the date picker.
func shortDateLabel(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	months := [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}
	return strconv.Itoa(t.Day()) + " " + months[t.Month()-1]
}

type confirmationPage struct {
	Service    *barberapi.Service
	ServiceID  string
	Date       string
	DateLong   string
	Time       string
	ClientName string
	Error      string
}

// Confirmation shows the booking summary and the client-name form.
// GET /confirmation?service=&date=&time=
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := confirmationPage{
		ServiceID: q.Get("service"),
		Date:      q.Get("date"),
		Time:      q.Get("time"),
	}
	data.DateLong = schedule.FormatDateLongPT(data.Date)

	if data.ServiceID == "" || data.Date == "" || data.Time == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	service, err := h.api.GetService(r.Context(), data.ServiceID)
	if err != nil {
		h.logger.Error("failed to fetch service for confirmation", "service_id", data.ServiceID, "error", err)
		data.Error = "Falha ao carregar o serviço. Tente novamente mais tarde."
	}
	data.Service = service

	h.render(w, "confirmation", data)
}

// SubmitConfirmation validates and books the appointment; nothing is sent to
// the API when validation fails.
// POST /confirmation
func (h *Handler) SubmitConfirmation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := booking.AppointmentForm{
		ClientName: r.PostFormValue("client_name"),
		ServiceID:  r.PostFormValue("service"),
		Date:       r.PostFormValue("date"),
		Time:       r.PostFormValue("time"),
	}

	if err := form.Validate(); err != nil {
		h.renderConfirmationError(w, r, form, err.Error())
		return
	}

	_, err := h.api.CreateAppointment(r.Context(), barberapi.AppointmentPayload{
		ClientName:      form.ClientName,
		ServiceID:       form.ServiceID,
		AppointmentDate: schedule.JoinDateTimeISO(form.Date, form.Time),
		Status:          string(booking.StatusScheduled),
	})
	if err != nil {
		h.logger.Error("failed to create appointment", "service_id", form.ServiceID, "error", err)
		h.renderConfirmationError(w, r, form, userMessage(err, "Falha ao criar o agendamento. Tente novamente."))
		return
	}

	http.Redirect(w, r, "/?success=true", http.StatusSeeOther)
}

func (h *Handler) renderConfirmationError(w http.ResponseWriter, r *http.Request, form booking.AppointmentForm, msg string) {
	data := confirmationPage{
		ServiceID:  form.ServiceID,
		Date:       form.Date,
		DateLong:   schedule.FormatDateLongPT(form.Date),
		Time:       form.Time,
		ClientName: form.ClientName,
		Error:      msg,
	}
	if form.ServiceID != "" {
		if service, err := h.api.GetService(r.Context(), form.ServiceID); err == nil {
			data.Service = service
		}
	}
	h.render(w, "confirmation", data)
}
