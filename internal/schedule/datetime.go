package schedule

import "strings"

// SplitDateTime decomposes a stored appointment_date into independent date and
// time fields for separate form controls. The API transports the value either
// as "YYYY-MM-DD HH:mm:ss" (edit flow) or as an ISO "YYYY-MM-DDTHH:mm" string;
// both split at the first space or 'T'. Seconds are discarded.
func SplitDateTime(s string) (date, clock string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " T")
	if i < 0 {
		return s, ""
	}
	date = s[:i]
	clock = s[i+1:]
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return date, clock
}

// JoinDateTime recomposes the space-delimited form used when saving edits,
// with seconds zero-padded: "YYYY-MM-DD HH:mm:00".
func JoinDateTime(date, clock string) string {
	return date + " " + clock + ":00"
}

// JoinDateTimeISO recomposes the T-joined form used when first creating an
// appointment: "YYYY-MM-DDTHH:mm". The asymmetry with JoinDateTime mirrors
// what the API currently accepts on each path; do not unify without the API
// contract owner confirming the storage format.
func JoinDateTimeISO(date, clock string) string {
	return date + "T" + clock
}
