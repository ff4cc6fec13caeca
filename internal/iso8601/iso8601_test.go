package iso8601

import (
	"errors"
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return v
}

func offset(t *testing.T, v time.Time) int {
	t.Helper()
	_, off := v.Zone()
	return off
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"naive micro", Naive(time.Date(2019, 8, 19, 18, 18, 25, 609815000, time.UTC)), "2019-08-19T18:18:25.609815"},
		{"naive no fraction", Naive(time.Date(2019, 8, 19, 18, 18, 25, 0, time.UTC)), "2019-08-19T18:18:25"},
		{"utc", time.Date(2019, 8, 19, 17, 25, 3, 547000000, time.UTC), "2019-08-19T17:25:03.547000Z"},
		{"utc no fraction", time.Date(2019, 8, 19, 17, 25, 3, 0, time.UTC), "2019-08-19T17:25:03Z"},
		{"positive offset", time.Date(2019, 8, 19, 21, 32, 59, 169730000, time.FixedZone("", 2*3600)), "2019-08-19T21:32:59.169730+02:00"},
		{"negative offset with minutes", time.Date(2019, 8, 19, 21, 32, 59, 0, time.FixedZone("", -(5*3600+30*60))), "2019-08-19T21:32:59-05:30"},
		{"fraction zero padded", Naive(time.Date(2020, 1, 2, 3, 4, 5, 500000000, time.UTC)), "2020-01-02T03:04:05.500000"},
		{"sub-microsecond truncated", time.Date(2020, 1, 2, 3, 4, 5, 123456789, time.UTC), "2020-01-02T03:04:05.123456Z"},
	}
	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("%s: Format = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseVariants(t *testing.T) {
	cases := []struct {
		in        string
		wantNaive bool
		wantOff   int
		wantMicro int
	}{
		{"2018-05-01T07:03:44.560600", true, 0, 560600},
		{"2019-08-19T18:18:25", true, 0, 0},
		{"2019-08-19T17:25:03.547Z", false, 0, 547000}, // millis scale to micros
		{"2019-08-19T17:25:03.547000Z", false, 0, 547000},
		{"2019-08-19T17:25:03Z", false, 0, 0},
		{"2019-08-19T21:32:59.169730+02:00", false, 2 * 3600, 169730},
		{"2019-08-19T21:32:59-05:30", false, -(5*3600 + 30*60), 0},
	}
	for _, tc := range cases {
		got := mustParse(t, tc.in)
		if IsNaive(got) != tc.wantNaive {
			t.Errorf("%q: IsNaive = %v, want %v", tc.in, IsNaive(got), tc.wantNaive)
		}
		if !tc.wantNaive && offset(t, got) != tc.wantOff {
			t.Errorf("%q: offset = %d, want %d", tc.in, offset(t, got), tc.wantOff)
		}
		if us := got.Nanosecond() / 1000; us != tc.wantMicro {
			t.Errorf("%q: microseconds = %d, want %d", tc.in, us, tc.wantMicro)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"2018-05-01T07:03:44.560600",
		"2019-08-19T18:18:25",
		"2019-08-19T17:25:03.547000Z",
		"2019-08-19T17:25:03Z",
		"2019-08-19T21:32:59.169730+02:00",
		"2019-08-19T21:32:59-05:30",
	} {
		if got := Format(mustParse(t, s)); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestRecognizeRejectsNonDates(t *testing.T) {
	for _, s := range []string{
		"",
		"hello",
		"2018-05-01",                     // date only
		"2018-05-01 07:03:44",            // space separator
		"2018-05-01T07:03",               // no seconds
		"2018-05-01T07:03:44.5",          // unsupported fraction width
		"2018-05-01T07:03:44.56060",      // five digits
		"2018-05-01T07:03:44.560600123",  // nine digits
		"2018-05-01T07:03:44Zjunk",       // trailing junk
		"x2018-05-01T07:03:44",           // leading junk
		`\D2018-05-01T07:03:44`,          // marker is not part of the grammar
		"2018-05-01T07:03:44+0200",       // offset without colon
	} {
		if _, ok, err := Recognize(s); ok || err != nil {
			t.Errorf("Recognize(%q) = ok %v err %v, want pass-through", s, ok, err)
		}
	}
}

func TestRecognizeRangeErrors(t *testing.T) {
	for _, s := range []string{
		"2018-13-01T00:00:00", // month 13
		"2018-02-30T00:00:00", // day 30 in February
		"2018-05-01T25:03:44", // hour 25
		"2018-05-01T07:61:44", // minute 61
	} {
		_, ok, err := Recognize(s)
		if !ok {
			t.Errorf("Recognize(%q): expected a date-shaped match", s)
			continue
		}
		if err == nil {
			t.Errorf("Recognize(%q): expected range error, got none", s)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("not a date")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("Parse error = %v, want ErrSyntax", err)
	}
}

func TestNaiveKeepsWallClock(t *testing.T) {
	in := time.Date(2021, 6, 7, 8, 9, 10, 111213000, time.FixedZone("X", 3*3600))
	n := Naive(in)
	if !IsNaive(n) {
		t.Fatalf("Naive value not reported naive")
	}
	if n.Hour() != 8 || n.Minute() != 9 || n.Nanosecond() != 111213000 {
		t.Fatalf("Naive changed the wall clock: %v", n)
	}
}
