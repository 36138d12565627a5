package barberapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gf3w/barber-booking/internal/observability/metrics"
	"github.com/gf3w/barber-booking/pkg/logging"
)

const defaultTimeout = 20 * time.Second

// genericErrorMessage is the fallback shown when the API answers non-2xx
// without a parseable message body.
const genericErrorMessage = "Não foi possível completar a requisição."

// APIError is a non-2xx answer from the booking API. Message carries the
// upstream "message" field when the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("barberapi: status %d: %s", e.Status, e.Message)
}

// Client is a typed HTTP client for the external booking API. All state
// (services, appointments, revenue) lives behind it; this process keeps no
// cache of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	metrics    *metrics.APIMetrics
}

// NewClient creates a booking API client rooted at baseURL (e.g.
// "http://localhost:8080/api"). A zero timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration, logger *logging.Logger, m *metrics.APIMetrics) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    m,
	}
}

// ListServices returns the service catalog.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var out []Service
	if err := c.do(ctx, "list_services", http.MethodGet, "/services", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetService fetches one service by id.
func (c *Client) GetService(ctx context.Context, id string) (*Service, error) {
	var out Service
	if err := c.do(ctx, "get_service", http.MethodGet, "/services/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateService adds a service to the catalog.
func (c *Client) CreateService(ctx context.Context, payload ServicePayload) (*Service, error) {
	var out Service
	if err := c.do(ctx, "create_service", http.MethodPost, "/services", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateService replaces the four editable fields of a service.
func (c *Client) UpdateService(ctx context.Context, id string, payload ServicePayload) (*Service, error) {
	var out Service
	if err := c.do(ctx, "update_service", http.MethodPut, "/services/"+url.PathEscape(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteService removes a service. Appointments referencing it are the
// server's problem; nothing is enforced on this side.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, "delete_service", http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil, nil)
}

// CreateAppointment books a new appointment.
func (c *Client) CreateAppointment(ctx context.Context, payload AppointmentPayload) (*Appointment, error) {
	var out Appointment
	if err := c.do(ctx, "create_appointment", http.MethodPost, "/appointments", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment sends a partial update for an appointment.
func (c *Client) UpdateAppointment(ctx context.Context, id string, update AppointmentUpdate) (*Appointment, error) {
	var out Appointment
	if err := c.do(ctx, "update_appointment", http.MethodPut, "/appointments/"+url.PathEscape(id), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AppointmentsByDate lists the appointments of one exact day (YYYY-MM-DD).
func (c *Client) AppointmentsByDate(ctx context.Context, date string) ([]Appointment, error) {
	var out []Appointment
	if err := c.do(ctx, "appointments_by_date", http.MethodGet, "/appointments/by-date/"+url.PathEscape(date), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Appointments lists appointments through the legacy query-param path.
func (c *Client) Appointments(ctx context.Context, date string) ([]Appointment, error) {
	q := url.Values{"date": {date}}
	var out []Appointment
	if err := c.do(ctx, "appointments", http.MethodGet, "/appointments", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DaysWithAppointments returns the dates within [start, end] that have at
// least one appointment, for the calendar markers.
func (c *Client) DaysWithAppointments(ctx context.Context, start, end string) ([]string, error) {
	q := url.Values{"start": {start}, "end": {end}}
	var out []string
	if err := c.do(ctx, "days_with_appointments", http.MethodGet, "/appointments/days-with-appointments", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyRevenue returns the recent-months revenue feed for a year/month.
func (c *Client) MonthlyRevenue(ctx context.Context, year, month int) ([]MonthlyRevenue, error) {
	var out []MonthlyRevenue
	if err := c.do(ctx, "monthly_revenue", http.MethodGet, "/appointments/revenue/monthly", yearMonth(year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ServiceRevenue returns the per-service revenue breakdown for a year/month.
func (c *Client) ServiceRevenue(ctx context.Context, year, month int) ([]ServiceRevenue, error) {
	var out []ServiceRevenue
	if err := c.do(ctx, "service_revenue", http.MethodGet, "/appointments/revenue/services", yearMonth(year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns the aggregate appointment stats for a year/month.
func (c *Client) Stats(ctx context.Context, year, month int) (*StatsResponse, error) {
	var out StatsResponse
	if err := c.do(ctx, "stats", http.MethodGet, "/appointments/stats", yearMonth(year, month), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFinancialStats composes the three revenue feeds into the dashboard
// aggregate. The stats call must succeed; a malformed monthly or per-service
// body degrades to an empty slice instead of failing the whole panel.
// TotalRevenue is recomputed from the per-service feed regardless of any
// server-side total.
func (c *Client) GetFinancialStats(ctx context.Context, year, month int) (*FinancialStats, error) {
	stats, err := c.Stats(ctx, year, month)
	if err != nil {
		return nil, err
	}

	monthly, err := c.MonthlyRevenue(ctx, year, month)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		c.logger.Error("malformed monthly revenue feed", "error", err)
		monthly = nil
	}

	services, err := c.ServiceRevenue(ctx, year, month)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		c.logger.Error("malformed service revenue feed", "error", err)
		services = nil
	}

	var total float64
	for _, s := range services {
		total += s.TotalRevenue
	}

	return &FinancialStats{
		TotalRevenue:      total,
		TotalAppointments: stats.TotalAppointments,
		AverageTicket:     stats.AverageValue,
		MonthlyRevenue:    monthly,
		ServiceRevenues:   services,
	}, nil
}

func yearMonth(year, month int) url.Values {
	return url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(month)},
	}
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("barberapi: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("barberapi: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveLatency(operation, time.Since(started).Seconds())
	if err != nil {
		c.metrics.ObserveRequest(operation, "error")
		return fmt.Errorf("barberapi: %s: http request: %w", operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveRequest(operation, "error")
		return fmt.Errorf("barberapi: %s: read response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.ObserveRequest(operation, "error")
		message := genericErrorMessage
		var eb errorBody
		if jsonErr := json.Unmarshal(respBody, &eb); jsonErr == nil && eb.Message != "" {
			message = eb.Message
		}
		c.logger.Error("booking API request failed",
			"operation", operation,
			"status", resp.StatusCode,
			"message", message,
		)
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	c.metrics.ObserveRequest(operation, "ok")
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("barberapi: %s: unmarshal response: %w", operation, err)
	}
	return nil
}
