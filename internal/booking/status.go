package booking

// Status is the appointment lifecycle state as transported by the API. The
// wire format is an open string; only the three values below are recognized
// for labels and transition checks, anything else renders literally.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Known reports whether s is one of the recognized lifecycle states.
func (s Status) Known() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// LabelPT returns the pt-BR display label. Unrecognized statuses are shown
// as-is rather than being masked.
func (s Status) LabelPT() string {
	switch s {
	case StatusScheduled:
		return "Agendado"
	case StatusCompleted:
		return "Concluído"
	case StatusCanceled:
		return "Cancelado"
	}
	return string(s)
}

// allowedTransitions validates a status change before it is submitted to the
// API. A canceled appointment cannot jump straight to completed; it has to be
// rescheduled first. Everything else, including reopening a completed
// appointment, is allowed.
var allowedTransitions = map[Status][]Status{
	StatusScheduled: {StatusCompleted, StatusCanceled},
	StatusCompleted: {StatusScheduled, StatusCanceled},
	StatusCanceled:  {StatusScheduled},
}

// CanTransitionTo reports whether moving from s to next is permitted.
// Same-state submissions are no-ops and always allowed. An unrecognized
// current status may move to any known state so stale records stay editable.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	if !next.Known() {
		return false
	}
	if !s.Known() {
		return true
	}
	for _, allowed := range allowedTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}
