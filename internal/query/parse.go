package query

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses an exact YYYY-MM-DD calendar date. After parsing, the
// date is formatted back and compared against the input so that overflowed
// dates (2024-02-30, 2023-02-29) are rejected rather than rolled forward.
func ParseDate(s string) (time.Time, bool) {
	if !datePattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(dateLayout) != s {
		return time.Time{}, false
	}
	return t, true
}

// ParseUUID validates a single UUID v4 value. Invalid input yields "",
// never an error; callers decide whether an absent id is acceptable.
func ParseUUID(s string) string {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || u.Version() != 4 {
		return ""
	}
	return u.String()
}

// ParseUUIDList splits a comma-separated id list and keeps only valid
// UUID v4 members. An all-invalid (or empty) list returns nil, which is
// treated as "parameter absent" rather than an empty-match filter.
func ParseUUIDList(s string) []string {
	if s == "" {
		return nil
	}
	var ids []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		id := ParseUUID(part)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
