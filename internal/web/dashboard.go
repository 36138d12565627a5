package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gf3w/barber-booking/internal/barberapi"
	"github.com/gf3w/barber-booking/internal/booking"
)

type dashboardPage struct {
	Services  []barberapi.Service
	Stats     *barberapi.FinancialStats
	Year      int
	Month     int
	Error     string
	Adding    bool
	EditingID string
	Form      booking.ServiceForm
}

// Dashboard shows the service catalog with create/edit/delete controls plus
// the financial panel for the selected month.
// GET /dashboard?year=&month=&add=&edit=
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := dashboardPage{
		Adding:    q.Get("add") == "true",
		EditingID: q.Get("edit"),
	}
	data.Year, data.Month = h.yearMonth(q.Get("year"), q.Get("month"))

	h.fillDashboard(w, r, &data, "")
	if data.EditingID != "" {
		for _, s := range data.Services {
			if s.ID == data.EditingID {
				data.Form = booking.ServiceForm{Name: s.Name, Description: s.Description, Price: s.Price, Duration: s.Duration}
			}
		}
	}
	h.render(w, "dashboard", data)
}

// fillDashboard loads the two dashboard feeds. A failed stats fetch renders a
// zeroed panel instead of a blank page.
func (h *Handler) fillDashboard(w http.ResponseWriter, r *http.Request, data *dashboardPage, errMsg string) {
	data.Error = errMsg

	services, err := h.api.ListServices(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		if data.Error == "" {
			data.Error = "Falha ao carregar os serviços. Tente novamente mais tarde."
		}
	}
	data.Services = services

	stats, err := h.api.GetFinancialStats(r.Context(), data.Year, data.Month)
	if err != nil {
		h.logger.Error("failed to load financial stats", "year", data.Year, "month", data.Month, "error", err)
		stats = &barberapi.FinancialStats{}
	}
	data.Stats = stats
}

func (h *Handler) yearMonth(yearStr, monthStr string) (int, int) {
	now := h.now()
	year, month := now.Year(), int(now.Month())
	if y, err := strconv.Atoi(yearStr); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(monthStr); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	return year, month
}

func serviceFormFromRequest(r *http.Request) booking.ServiceForm {
	return booking.ServiceForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       booking.SanitizePrice(r.PostFormValue("price")),
		Duration:    r.PostFormValue("duration"),
	}
}

// CreateService adds a catalog entry and refetches the list via redirect.
// POST /dashboard/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := serviceFormFromRequest(r)
	yearStr, monthStr := r.PostFormValue("year"), r.PostFormValue("month")
	if err := form.Validate(); err != nil {
		h.renderDashboardError(w, r, form, "", true, yearStr, monthStr, err.Error())
		return
	}

	_, err := h.api.CreateService(r.Context(), barberapi.ServicePayload{
		Name:        form.Name,
		Description: form.Description,
		Price:       booking.SanitizePrice(form.Price),
		Duration:    form.Duration,
	})
	if err != nil {
		h.logger.Error("failed to create service", "name", form.Name, "error", err)
		h.renderDashboardError(w, r, form, "", true, yearStr, monthStr, userMessage(err, "Falha ao adicionar o serviço. Tente novamente."))
		return
	}

	http.Redirect(w, r, dashboardPath(yearStr, monthStr), http.StatusSeeOther)
}

// UpdateService saves the four editable fields of a service.
// POST /dashboard/services/{id}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := serviceFormFromRequest(r)
	yearStr, monthStr := r.PostFormValue("year"), r.PostFormValue("month")
	if err := form.Validate(); err != nil {
		h.renderDashboardError(w, r, form, id, false, yearStr, monthStr, err.Error())
		return
	}

	_, err := h.api.UpdateService(r.Context(), id, barberapi.ServicePayload{
		Name:        form.Name,
		Description: form.Description,
		Price:       booking.SanitizePrice(form.Price),
		Duration:    form.Duration,
	})
	if err != nil {
		h.logger.Error("failed to update service", "service_id", id, "error", err)
		h.renderDashboardError(w, r, form, id, false, yearStr, monthStr, userMessage(err, "Falha ao atualizar o serviço. Tente novamente."))
		return
	}

	http.Redirect(w, r, dashboardPath(yearStr, monthStr), http.StatusSeeOther)
}

// DeleteService removes a service from the catalog.
// POST /dashboard/services/{id}/delete
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	yearStr, monthStr := r.PostFormValue("year"), r.PostFormValue("month")

	if err := h.api.DeleteService(r.Context(), id); err != nil {
		h.logger.Error("failed to delete service", "service_id", id, "error", err)
		h.renderDashboardError(w, r, booking.ServiceForm{}, "", false, yearStr, monthStr, "Falha ao excluir o serviço. Tente novamente.")
		return
	}

	http.Redirect(w, r, dashboardPath(yearStr, monthStr), http.StatusSeeOther)
}

// dashboardPath keeps the financial panel's month selection across the
// POST-redirect-GET cycle.
func dashboardPath(yearStr, monthStr string) string {
	if yearStr == "" || monthStr == "" {
		return "/dashboard"
	}
	return "/dashboard?year=" + url.QueryEscape(yearStr) + "&month=" + url.QueryEscape(monthStr)
}

func (h *Handler) renderDashboardError(w http.ResponseWriter, r *http.Request, form booking.ServiceForm, editingID string, adding bool, yearStr, monthStr, msg string) {
	data := dashboardPage{
		Adding:    adding,
		EditingID: editingID,
		Form:      form,
	}
	data.Year, data.Month = h.yearMonth(yearStr, monthStr)
	h.fillDashboard(w, r, &data, msg)
	h.render(w, "dashboard", data)
}
