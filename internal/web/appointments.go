package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gf3w/barber-booking/internal/barberapi"
	"github.com/gf3w/barber-booking/internal/booking"
	"github.com/gf3w/barber-booking/internal/schedule"
)

type appointmentsPage struct {
	SelectedDate string
	Year         int
	Month        int
	MonthLabel   string
	PrevYear     int
	PrevMonth    int
	NextYear     int
	NextMonth    int
	Weekdays     []string
	Cells        []schedule.Cell
	Rows         []appointmentRow
	Error        string
}

type appointmentRow struct {
	barberapi.Appointment
	TimeLabel string
	Value     string
}

var weekdaysPT = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// Appointments shows the month calendar with appointment markers and the
// selected day's bookings. The markers and the day list are independent
// fetches; a failed marker fetch only loses the dots.
// GET /dashboard/agendamentos?date=&year=&month=
func (h *Handler) Appointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	selectedDate := q.Get("date")
	if selectedDate == "" {
		selectedDate = h.now().Format("2006-01-02")
	}

	year, monthNum := h.yearMonth(q.Get("year"), q.Get("month"))
	month := time.Month(monthNum)

	data := appointmentsPage{
		SelectedDate: selectedDate,
		Year:         year,
		Month:        monthNum,
		MonthLabel:   schedule.MonthLabel(year, month),
		Weekdays:     weekdaysPT,
	}
	py, pm := schedule.PrevMonth(year, month)
	ny, nm := schedule.NextMonth(year, month)
	data.PrevYear, data.PrevMonth = py, int(pm)
	data.NextYear, data.NextMonth = ny, int(nm)

	start, end := schedule.MonthRange(year, month)
	marked := make(map[string]bool)
	days, err := h.api.DaysWithAppointments(r.Context(), start, end)
	if err != nil {
		h.logger.Error("failed to fetch days with appointments", "start", start, "end", end, "error", err)
	}
	for _, d := range days {
		marked[d] = true
	}
	data.Cells = schedule.MonthGrid(year, month, selectedDate, marked)

	appts, err := h.api.AppointmentsByDate(r.Context(), selectedDate)
	if err != nil {
		h.logger.Error("failed to fetch appointments", "date", selectedDate, "error", err)
		data.Error = "Falha ao carregar os agendamentos. Tente novamente mais tarde."
	}
	data.Rows = appointmentRows(appts)

	h.render(w, "appointments", data)
}

func appointmentRows(appts []barberapi.Appointment) []appointmentRow {
	rows := make([]appointmentRow, 0, len(appts))
	for _, a := range appts {
		_, clock := schedule.SplitDateTime(a.AppointmentDate)
		row := appointmentRow{Appointment: a, TimeLabel: clock}
		// a completed appointment's total_value wins over the nominal price
		if a.TotalValue != "" {
			row.Value = a.TotalValue
		} else if a.Service != nil {
			row.Value = a.Service.Price
		}
		rows = append(rows, row)
	}
	return rows
}

type editAppointmentPage struct {
	Appointment   barberapi.Appointment
	Date          string
	Time          string
	ReturnDate    string
	CurrentStatus string
	TotalValue    string
	Services      []barberapi.Service
	Error         string
}

// EditAppointment opens an appointment for editing, decomposing the stored
// appointment_date into separate date and time inputs.
// GET /dashboard/agendamentos/{id}/editar?date=
func (h *Handler) EditAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	returnDate := r.URL.Query().Get("date")
	if returnDate == "" {
		returnDate = h.now().Format("2006-01-02")
	}

	appts, err := h.api.AppointmentsByDate(r.Context(), returnDate)
	if err != nil {
		h.logger.Error("failed to fetch appointments for edit", "date", returnDate, "error", err)
		http.Redirect(w, r, "/dashboard/agendamentos?date="+returnDate, http.StatusSeeOther)
		return
	}

	var appt *barberapi.Appointment
	for i := range appts {
		if appts[i].ID == id {
			appt = &appts[i]
			break
		}
	}
	if appt == nil {
		http.Redirect(w, r, "/dashboard/agendamentos?date="+returnDate, http.StatusSeeOther)
		return
	}

	date, clock := schedule.SplitDateTime(appt.AppointmentDate)
	data := editAppointmentPage{
		Appointment:   *appt,
		Date:          date,
		Time:          clock,
		ReturnDate:    returnDate,
		CurrentStatus: appt.Status,
		TotalValue:    appt.TotalValue,
	}
	// completed appointments default the charged value to the nominal price
	if data.TotalValue == "" && appt.Service != nil {
		data.TotalValue = appt.Service.Price
	}

	services, err := h.api.ListServices(r.Context())
	if err != nil {
		h.logger.Error("failed to list services for edit form", "error", err)
	}
	data.Services = services

	h.render(w, "edit_appointment", data)
}

// SaveAppointment validates the status transition and submits the partial
// update, recomposing the date as "YYYY-MM-DD HH:mm:00".
// POST /dashboard/agendamentos/{id}
func (h *Handler) SaveAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := editForm{
		ClientName:    r.PostFormValue("client_name"),
		ServiceID:     r.PostFormValue("service_id"),
		Date:          r.PostFormValue("date"),
		Time:          r.PostFormValue("time"),
		Status:        booking.Status(r.PostFormValue("status")),
		CurrentStatus: booking.Status(r.PostFormValue("current_status")),
		TotalValue:    r.PostFormValue("total_value"),
		ReturnDate:    r.PostFormValue("return_date"),
	}
	if form.ReturnDate == "" {
		form.ReturnDate = form.Date
	}

	if form.Date == "" || form.Time == "" {
		h.renderEditError(w, r, id, form, "Por favor, preencha a data e o horário.")
		return
	}
	if !form.CurrentStatus.CanTransitionTo(form.Status) {
		h.renderEditError(w, r, id, form, "Mudança de status não permitida.")
		return
	}

	update := barberapi.AppointmentUpdate{
		ClientName:      form.ClientName,
		ServiceID:       form.ServiceID,
		AppointmentDate: schedule.JoinDateTime(form.Date, form.Time),
		Status:          string(form.Status),
	}
	if form.Status == booking.StatusCompleted {
		update.TotalValue = booking.SanitizeMoney(form.TotalValue)
	}

	if _, err := h.api.UpdateAppointment(r.Context(), id, update); err != nil {
		h.logger.Error("failed to update appointment", "appointment_id", id, "error", err)
		h.renderEditError(w, r, id, form, userMessage(err, "Falha ao atualizar agendamento."))
		return
	}

	// the day view refetches the appointment together with its service
	// details, so the updated row is rendered from fresh API state
	http.Redirect(w, r, "/dashboard/agendamentos?date="+form.ReturnDate, http.StatusSeeOther)
}

type editForm struct {
	ClientName    string
	ServiceID     string
	Date          string
	Time          string
	Status        booking.Status
	CurrentStatus booking.Status
	TotalValue    string
	ReturnDate    string
}

func (h *Handler) renderEditError(w http.ResponseWriter, r *http.Request, id string, form editForm, msg string) {
	data := editAppointmentPage{
		Appointment: barberapi.Appointment{
			ID:         id,
			ClientName: form.ClientName,
			ServiceID:  form.ServiceID,
			Status:     string(form.Status),
		},
		Date:          form.Date,
		Time:          form.Time,
		ReturnDate:    form.ReturnDate,
		CurrentStatus: string(form.CurrentStatus),
		TotalValue:    form.TotalValue,
		Error:         msg,
	}
	if services, err := h.api.ListServices(r.Context()); err == nil {
		data.Services = services
	}
	h.render(w, "edit_appointment", data)
}
