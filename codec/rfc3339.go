package codec

import (
	"net/http"
	"time"
)

const (
	dateLayout = "2006-01-02"
	// localLayout is an ISO 8601 timestamp without offset, read as UTC.
	localLayout = "2006-01-02T15:04:05.999999999"
)

// DateTime returns a Codec between RFC3339 strings and time.Time. Timestamps
// without an offset decode as UTC. Encoding
// normalizes to UTC with trailing zeros trimmed.
func DateTime() Codec[string, time.Time] {
	return funcCodec[string, time.Time]{dec: parseRFC3339, enc: func(t time.Time) (string, error) {
		return t.UTC().Format(time.RFC3339Nano), nil
	}}
}

// DateTimeRFC1123 returns a Codec between RFC1123 ("Mon, 02 Jan 2006 15:04:05 GMT")
// strings and time.Time.
func DateTimeRFC1123() Codec[string, time.Time] {
	return funcCodec[string, time.Time]{
		dec: func(s string) (time.Time, error) {
			t, err := time.Parse(time.RFC1123, s)
			if err != nil {
				if t2, err2 := time.Parse(time.RFC1123Z, s); err2 == nil {
					return t2.UTC(), nil
				}
				return time.Time{}, &FormatError{Format: "date-time-rfc1123", Input: s, Cause: err}
			}
			return t.UTC(), nil
		},
		enc: func(t time.Time) (string, error) { return t.UTC().Format(http.TimeFormat), nil },
	}
}

// Date returns a Codec between full-date strings (2006-01-02) and time.Time at
// UTC midnight. A full RFC3339 timestamp is accepted and truncated.
func Date() Codec[string, time.Time] {
	return funcCodec[string, time.Time]{
		dec: func(s string) (time.Time, error) {
			if t, err := time.Parse(dateLayout, s); err == nil {
				return t, nil
			}
			t, err := parseRFC3339(s)
			if err != nil {
				return time.Time{}, &FormatError{Format: "date", Input: s}
			}
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		},
		enc: func(t time.Time) (string, error) { return t.UTC().Format(dateLayout), nil },
	}
}

// UnixTime returns a Codec between seconds since the epoch and time.Time.
func UnixTime() Codec[int64, time.Time] {
	return funcCodec[int64, time.Time]{
		dec: func(n int64) (time.Time, error) { return time.Unix(n, 0).UTC(), nil },
		enc: func(t time.Time) (int64, error) { return t.Unix(), nil },
	}
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		if t2, err2 := time.ParseInLocation(localLayout, s, time.UTC); err2 == nil {
			return t2, nil
		}
		return time.Time{}, &FormatError{Format: "date-time", Input: s, Cause: err}
	}
	return t, nil
}
