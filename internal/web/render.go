package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gf3w/barber-booking/internal/booking"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"statusLabel": func(s string) string { return booking.Status(s).LabelPT() },
	"statusClass": func(s string) string {
		switch booking.Status(s) {
		case booking.StatusScheduled:
			return "badge badge-scheduled"
		case booking.StatusCompleted:
			return "badge badge-completed"
		case booking.StatusCanceled:
			return "badge badge-canceled"
		}
		return "badge"
	},
}).ParseFS(templateFS, "templates/*.gohtml"))

// render executes the named page into a buffer first so a template failure
// yields a 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("template render failed", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
