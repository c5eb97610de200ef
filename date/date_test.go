package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_normalizes(t *testing.T) {
	testCases := []struct {
		name       string
		y          int
		m          time.Month
		d          int
		wantString string
	}{
		{"plain day", 2024, time.January, 15, "2024-01-15"},
		{"day overflow", 2024, time.January, 32, "2024-02-01"},
		{"month boundary backward", 2024, time.March, 0, "2024-02-29"},
		{"year boundary", 2023, time.December, 32, "2024-01-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.y, tc.m, tc.d).String(); got != tc.wantString {
				t.Errorf("New(%d, %v, %d) = %q, want %q", tc.y, tc.m, tc.d, got, tc.wantString)
			}
		})
	}
}

func TestAdd_crossesBoundaries(t *testing.T) {
	testCases := []struct {
		name string
		from string
		days int
		want string
	}{
		{"next day", "2024-01-01", 1, "2024-01-02"},
		{"previous day", "2024-01-01", -1, "2023-12-31"},
		{"leap february", "2024-02-28", 1, "2024-02-29"},
		{"back 29 days", "2024-03-10", -29, "2024-02-10"},
		{"dst month", "2024-03-31", 1, "2024-04-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustParse(tc.from).Add(tc.days).String(); got != tc.want {
				t.Errorf("%s.Add(%d) = %q, want %q", tc.from, tc.days, got, tc.want)
			}
		})
	}
}

func TestParse_lenient(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("Parse(2025-7-1) = %q, want 2025-07-01", d)
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Errorf("Parse accepted garbage")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2024-01-01")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-01-01"` {
		t.Errorf("Marshal = %s, want %q", b, "2024-01-01")
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip changed the date: %v != %v", back, d)
	}
}

func TestTrailing(t *testing.T) {
	today := MustParse("2024-03-15")
	var days []Date
	for d := range today.Trailing(30) {
		days = append(days, d)
	}
	if len(days) != 30 {
		t.Fatalf("Trailing(30) yielded %d days", len(days))
	}
	if days[0] != today.Add(-29) {
		t.Errorf("first day = %v, want %v", days[0], today.Add(-29))
	}
	if days[len(days)-1] != today {
		t.Errorf("last day = %v, want today %v", days[len(days)-1], today)
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Errorf("days not strictly increasing at %d: %v then %v", i, days[i-1], days[i])
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{From: MustParse("2024-01-10"), To: MustParse("2024-01-20")}
	for in, want := range map[string]bool{
		"2024-01-09": false,
		"2024-01-10": true,
		"2024-01-15": true,
		"2024-01-20": true,
		"2024-01-21": false,
	} {
		if got := r.Contains(MustParse(in)); got != want {
			t.Errorf("Contains(%s) = %v, want %v", in, got, want)
		}
	}
}
