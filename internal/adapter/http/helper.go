package http

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// parseDay turns a validated YYYY-MM-DD string into a UTC midnight; "" stays zero.
func parseDay(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// queryInt reads a positive integer query param, falling back to def.
func queryInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
