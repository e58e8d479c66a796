package codec

import (
	"testing"
	"time"
)

func TestDuration_Decode(t *testing.T) {
	cases := map[string]time.Duration{
		"PT1M":       time.Minute,
		"P1M":        30 * 24 * time.Hour,
		"PT0.5S":     500 * time.Millisecond,
		"P1DT2H30M":  26*time.Hour + 30*time.Minute,
		"P2W":        14 * 24 * time.Hour,
		"-PT10S":     -10 * time.Second,
		"PT1H0M0,5S": time.Hour + 500*time.Millisecond,
	}
	c := Duration()
	for in, want := range cases {
		got, err := c.Decode(in)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("decode %q: got %v want %v", in, got, want)
		}
	}
}

func TestDuration_DecodeInvalid(t *testing.T) {
	for _, in := range []string{"", "P", "1H", "PT", "PTT1H", "P1H", "PT1D", "PT1.2.3S"} {
		if _, err := Duration().Decode(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestDuration_EncodeRoundtrip(t *testing.T) {
	c := Duration()
	for _, d := range []time.Duration{0, time.Second, 90 * time.Minute, 49*time.Hour + 1500*time.Millisecond, -time.Minute} {
		s, err := c.Encode(d)
		if err != nil {
			t.Fatalf("encode %v: %v", d, err)
		}
		back, err := c.Decode(s)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if back != d {
			t.Fatalf("roundtrip %v -> %q -> %v", d, s, back)
		}
	}
	if s, _ := c.Encode(90 * time.Minute); s != "PT1H30M" {
		t.Fatalf("unexpected encoding: %s", s)
	}
}
