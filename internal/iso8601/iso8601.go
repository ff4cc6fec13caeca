// Package iso8601 implements the textual date-time grammar jsondt puts on
// the wire:
//
//	YYYY-MM-DDTHH:MM:SS[.ffffff][Z|±HH:MM]
//
// Precision is microseconds. Fractions are three digits (milliseconds, the
// JavaScript Date default) or six digits (microseconds). The offset suffix is
// omitted for naive values, "Z" for a zero offset, "±HH:MM" otherwise.
package iso8601

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrSyntax reports input that matches none of the accepted layouts.
var ErrSyntax = errors.New("jsondt: not an ISO 8601 date-time")

// naiveZone marks wall-clock values that carry no UTC offset. The marker is
// the pointer itself; the zero offset behind it is never rendered.
var naiveZone = time.FixedZone("", 0)

// Naive reinterprets t's wall clock as a date-time with no offset attached.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), naiveZone)
}

// IsNaive reports whether t carries no offset information.
func IsNaive(t time.Time) bool {
	return t.Location() == naiveZone
}

// Format renders t to second precision plus a six digit fraction when the
// microsecond component is nonzero. Sub-microsecond precision is dropped.
// Offset rendering is lossless: a parsed string re-encodes to the same offset.
func Format(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	if IsNaive(t) {
		return s
	}
	if _, off := t.Zone(); off == 0 {
		return s + "Z"
	}
	return s + t.Format("-07:00")
}

const (
	layoutNaive = "2006-01-02T15:04:05"
	layoutZoned = "2006-01-02T15:04:05Z07:00"
)

// Accepted layouts, tried in order; the first whole-string match decides how
// the input is parsed. More qualified forms come before the shorter ones
// they share a prefix with. time.Parse consumes a fraction after the seconds
// field on its own, so each layout covers its fractional variant too.
var patterns = []struct {
	re     *regexp.Regexp
	layout string
	naive  bool
}{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}(?:\d{3})?$`), layoutNaive, true},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`), layoutNaive, true},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}(?:\d{3})?Z$`), layoutZoned, false},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`), layoutZoned, false},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d{3}(?:\d{3})?)?[+-]\d{2}:\d{2}$`), layoutZoned, false},
}

// Recognize reports whether s is shaped like an accepted layout and, if so,
// parses it. ok is false when s is not date-shaped at all. A date-shaped
// string with out-of-range components (month 13 and friends) returns ok true
// together with a non-nil error: it must never become a silently-wrong date.
func Recognize(s string) (t time.Time, ok bool, err error) {
	for _, p := range patterns {
		if !p.re.MatchString(s) {
			continue
		}
		if p.naive {
			t, err = time.ParseInLocation(p.layout, s, naiveZone)
		} else {
			t, err = time.Parse(p.layout, s)
		}
		return t, true, err
	}
	return time.Time{}, false, nil
}

// Parse is the strict form of Recognize: input matching no layout is an
// ErrSyntax error instead of a pass-through.
func Parse(s string) (time.Time, error) {
	t, ok, err := Recognize(s)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return t, err
}
