package barberapi

// Service is a bookable offering. Price and duration travel as numeric text,
// matching the upstream wire format.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
}

// ServicePayload is the create/update body for a service.
type ServicePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
}

// ServiceSummary is the embedded service detail returned with appointments.
type ServiceSummary struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

// Appointment links a client name, a service and a date/time. total_value is
// only set once the appointment is completed and then overrides the service's
// nominal price for display.
type Appointment struct {
	ID              string          `json:"id"`
	ClientName      string          `json:"client_name"`
	ServiceID       string          `json:"service_id"`
	AppointmentDate string          `json:"appointment_date"`
	Status          string          `json:"status"`
	TotalValue      string          `json:"total_value,omitempty"`
	Service         *ServiceSummary `json:"service,omitempty"`
}

// AppointmentPayload is the create body for an appointment. The date is the
// T-joined "YYYY-MM-DDTHH:mm" form.
type AppointmentPayload struct {
	ClientName      string `json:"client_name"`
	ServiceID       string `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
}

// AppointmentUpdate is the partial update body; zero-valued fields are left
// out of the request. The date here is the space-joined
// "YYYY-MM-DD HH:mm:ss" form the edit path uses.
type AppointmentUpdate struct {
	ClientName      string `json:"client_name,omitempty"`
	ServiceID       string `json:"service_id,omitempty"`
	AppointmentDate string `json:"appointment_date,omitempty"`
	Status          string `json:"status,omitempty"`
	TotalValue      string `json:"total_value,omitempty"`
}

// MonthlyRevenue is one bar of the recent-months revenue feed.
type MonthlyRevenue struct {
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// ServiceRevenue is the per-service revenue breakdown for a month.
type ServiceRevenue struct {
	ServiceID        string  `json:"service_id"`
	ServiceName      string  `json:"service_name"`
	TotalRevenue     float64 `json:"total_revenue"`
	AppointmentCount int     `json:"appointment_count"`
	Percentage       float64 `json:"percentage"`
}

// StatsResponse is the aggregate stats endpoint payload.
type StatsResponse struct {
	TotalAppointments int     `json:"total_appointments"`
	AverageValue      float64 `json:"average_value"`
}

// FinancialStats is the composed dashboard aggregate. TotalRevenue is always
// recomputed client-side from ServiceRevenues, never taken from the server.
type FinancialStats struct {
	TotalRevenue      float64          `json:"totalRevenue"`
	TotalAppointments int              `json:"totalAppointments"`
	AverageTicket     float64          `json:"averageTicket"`
	MonthlyRevenue    []MonthlyRevenue `json:"monthlyRevenue"`
	ServiceRevenues   []ServiceRevenue `json:"serviceRevenues"`
}

type errorBody struct {
	Message string `json:"message"`
}
