package instant

import (
	"testing"
	"time"
)

func TestTT0_Basic(t *testing.T) {
	tt, err := TT0("2027-08-02", 10.0)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2027, 8, 2, 10, 0, 0, 0, time.UTC)
	if !tt.Equal(want) {
		t.Errorf("TT0 = %v, want %v", tt, want)
	}
}

// S5 — day-boundary time carry.
func TestTT0_DayBoundaryCarry(t *testing.T) {
	t0Hours := 23.0 + 59.0/60.0 + 59.9996/3600.0
	tt, err := TT0("2031-12-31", t0Hours)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatUTC(tt); got != "2032-01-01T00:00:00.000Z" {
		t.Errorf("TT0 carry = %s, want 2032-01-01T00:00:00.000Z", got)
	}
}

// S5 (continued) — UTC = TT - deltaT, delta=-2.2s.
func TestToUTC_S5(t *testing.T) {
	t0Hours := 23.0 + 59.0/60.0 + 59.9996/3600.0
	tt, err := TT0("2031-12-31", t0Hours)
	if err != nil {
		t.Fatal(err)
	}
	utc := ToUTC(tt, -2.2)
	if got := FormatUTC(utc); got != "2032-01-01T00:00:02.200Z" {
		t.Errorf("ToUTC = %s, want 2032-01-01T00:00:02.200Z", got)
	}
}

func TestTT0_MalformedDate(t *testing.T) {
	cases := []string{"not-a-date", "2027-13-40", "2027/08/02", ""}
	for _, d := range cases {
		if _, err := TT0(d, 0); err == nil {
			t.Errorf("TT0(%q) returned nil error, want malformed-date error", d)
		}
	}
}

func TestAtOffset(t *testing.T) {
	tt0, _ := TT0("2027-08-02", 10.0)
	got := AtOffset(tt0, -2.25)
	want := time.Date(2027, 8, 2, 7, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AtOffset = %v, want %v", got, want)
	}
}

func TestFormatUTC_ThreeFractionalDigitsAndZ(t *testing.T) {
	tt := time.Date(2027, 8, 2, 7, 41, 16, 356_000_000, time.UTC)
	got := FormatUTC(tt)
	want := "2027-08-02T07:41:16.356Z"
	if got != want {
		t.Errorf("FormatUTC = %s, want %s", got, want)
	}
}

func TestFormatUTC_NonUTCInputNormalizes(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	tt := time.Date(2027, 8, 2, 2, 41, 16, 0, loc)
	got := FormatUTC(tt)
	want := "2027-08-02T07:41:16.000Z"
	if got != want {
		t.Errorf("FormatUTC = %s, want %s", got, want)
	}
}
