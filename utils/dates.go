package utils

import "time"

const dateLayout = "2006-01-02"

// FormatDate renders a calendar day as YYYY-MM-DD; log records and the streak
// walk key on this form.
func FormatDate(t time.Time) string { return t.Format(dateLayout) }

// ParseDate parses a YYYY-MM-DD day string.
func ParseDate(s string) (time.Time, error) { return time.Parse(dateLayout, s) }

// Today returns the current calendar day as YYYY-MM-DD.
func Today() string { return FormatDate(time.Now()) }

// CurrentTime returns the wall clock as HH:MM.
func CurrentTime() string { return time.Now().Format("15:04") }
