package jsondt

import "fmt"

// DecodeError reports a string that was flagged as a timestamp but could not
// be parsed: a control-marker remainder that fails the grammar, or an
// automatic-mode match with out-of-range components (month 13 and friends).
// The offending string is never substituted with a default value.
type DecodeError struct {
	Value string // offending string, marker already stripped
	Err   error  // underlying parse error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsondt: decode timestamp %q: %v", e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
