package codec

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Calendar units are approximated the same way duration libraries commonly do.
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// Duration returns a Codec between ISO 8601 durations (P1DT2H30M, PT0.5S,
// P2W) and time.Duration. Years and months are approximated as 365 and 30
// days.
func Duration() Codec[string, time.Duration] {
	return funcCodec[string, time.Duration]{dec: parseISODuration, enc: formatISODuration}
}

func parseISODuration(s string) (time.Duration, error) {
	in := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") || len(s) < 2 {
		return 0, &FormatError{Format: "duration", Input: in}
	}
	s = s[1:]
	var (
		total  float64
		inTime bool
		seen   bool
	)
	for len(s) > 0 {
		if s[0] == 'T' {
			if inTime {
				return 0, &FormatError{Format: "duration", Input: in}
			}
			inTime = true
			s = s[1:]
			continue
		}
		i := 0
		for i < len(s) && (s[i] == '.' || s[i] == ',' || (s[i] >= '0' && s[i] <= '9')) {
			i++
		}
		if i == 0 || i == len(s) {
			return 0, &FormatError{Format: "duration", Input: in}
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(s[:i], ",", "."), 64)
		if err != nil {
			return 0, &FormatError{Format: "duration", Input: in, Cause: err}
		}
		var unit time.Duration
		switch u := s[i]; {
		case !inTime && u == 'Y':
			unit = year
		case !inTime && u == 'M':
			unit = month
		case !inTime && u == 'W':
			unit = week
		case !inTime && u == 'D':
			unit = day
		case inTime && u == 'H':
			unit = time.Hour
		case inTime && u == 'M':
			unit = time.Minute
		case inTime && u == 'S':
			unit = time.Second
		default:
			return 0, &FormatError{Format: "duration", Input: in}
		}
		total += n * float64(unit)
		seen = true
		s = s[i+1:]
	}
	if !seen || total > math.MaxInt64 {
		return 0, &FormatError{Format: "duration", Input: in}
	}
	d := time.Duration(math.Round(total))
	if neg {
		d = -d
	}
	return d, nil
}

func formatISODuration(d time.Duration) (string, error) {
	if d == 0 {
		return "PT0S", nil
	}
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteByte('P')
	if days := d / day; days > 0 {
		b.WriteString(strconv.FormatInt(int64(days), 10))
		b.WriteByte('D')
		d -= days * day
	}
	if d == 0 {
		return b.String(), nil
	}
	b.WriteByte('T')
	if h := d / time.Hour; h > 0 {
		b.WriteString(strconv.FormatInt(int64(h), 10))
		b.WriteByte('H')
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		b.WriteString(strconv.FormatInt(int64(m), 10))
		b.WriteByte('M')
		d -= m * time.Minute
	}
	if d > 0 {
		b.WriteString(strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
		b.WriteByte('S')
	}
	return b.String(), nil
}
