package date

import (
	"slices"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-01", want: New(2025, time.January, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "01/02/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2025, time.February, 30).String(), "2025-03-02"; got != want {
		t.Errorf("New(2025, 2, 30) = %s, want %s", got, want)
	}
	if got, want := New(2025, time.January, 1).Add(-1).String(), "2024-12-31"; got != want {
		t.Errorf("Add(-1) = %s, want %s", got, want)
	}
}

func TestStartEndOf(t *testing.T) {
	d := MustParse("2025-08-14") // a Thursday
	testCases := []struct {
		period     Period
		start, end string
	}{
		{Daily, "2025-08-14", "2025-08-14"},
		{Weekly, "2025-08-11", "2025-08-17"},
		{Monthly, "2025-08-01", "2025-08-31"},
		{Quarterly, "2025-07-01", "2025-09-30"},
		{Yearly, "2025-01-01", "2025-12-31"},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := d.StartOf(tc.period).String(); got != tc.start {
				t.Errorf("StartOf = %s, want %s", got, tc.start)
			}
			if got := d.EndOf(tc.period).String(); got != tc.end {
				t.Errorf("EndOf = %s, want %s", got, tc.end)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"day": Daily, "Week": Weekly, "monthly": Monthly, "quarter": Quarterly, "YEAR": Yearly} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Errorf("ParsePeriod(fortnight) expected an error")
	}
}

func TestRangeDays(t *testing.T) {
	r := LastDays(MustParse("2025-03-02"), 3)
	var got []string
	for d := range r.Days() {
		got = append(got, d.String())
	}
	want := []string{"2025-02-28", "2025-03-01", "2025-03-02"}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
	if !r.Contains(MustParse("2025-03-01")) || r.Contains(MustParse("2025-03-03")) {
		t.Errorf("Contains() gives wrong answer for %v", r)
	}
}
