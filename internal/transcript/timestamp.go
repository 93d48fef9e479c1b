package transcript

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time parses the record's timestamp. It accepts ISO-8601 strings and epoch
// numbers in seconds or milliseconds (values above 1e12 are milliseconds).
// Epoch values are reported in UTC; strings keep their own offset.
// ok is false for absent, empty, zero or unparseable timestamps.
func (r Record) Time() (t time.Time, ok bool) {
	raw := bytes.TrimSpace(r.Timestamp)
	if len(raw) == 0 {
		return time.Time{}, false
	}

	switch {
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return time.Time{}, false
		}
		return parseISO(s)
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil || n == 0 {
			return time.Time{}, false
		}
		if n > 1e12 {
			n /= 1000
		}
		sec := int64(n)
		nsec := int64((n - float64(sec)) * 1e9)
		return time.Unix(sec, nsec).UTC(), true
	}
	return time.Time{}, false
}

func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
