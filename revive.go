package jsondt

import (
	"strings"

	"github.com/unkn0wn-root/jsondt/internal/iso8601"
)

// reviveTarget applies string revival when v is an untyped decode target.
// Typed targets are already covered by the time.Time extension.
func (a *api) reviveTarget(v any) error {
	r := reviver{control: a.control}
	var err error
	switch p := v.(type) {
	case *any:
		*p, err = r.value(*p)
	case *map[string]any:
		_, err = r.value(*p)
	case *[]any:
		_, err = r.value(*p)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	if r.revived > 0 {
		a.log.Debug("jsondt: revived timestamps", Fields{"count": r.revived})
	}
	return nil
}

// reviver walks a decoded tree and replaces string leaves per the mode rules.
// Maps and slices are rewritten in place; only string leaves allocate.
type reviver struct {
	control bool
	revived int
}

func (r *reviver) value(v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		for k, mv := range x {
			nv, err := r.value(mv)
			if err != nil {
				return nil, err
			}
			x[k] = nv
		}
		return x, nil
	case []any:
		for i, sv := range x {
			nv, err := r.value(sv)
			if err != nil {
				return nil, err
			}
			x[i] = nv
		}
		return x, nil
	case string:
		return r.leaf(x)
	default:
		return v, nil
	}
}

// leaf decides what a string becomes. Control mode converts only marked
// strings and treats a malformed remainder as an error. Automatic mode
// converts anything shaped like a date-time; a marked string never matches a
// layout, so without control the marker is just a literal leading character
// and the string passes through unchanged.
func (r *reviver) leaf(s string) (any, error) {
	if r.control {
		rest, ok := strings.CutPrefix(s, Marker)
		if !ok {
			return s, nil
		}
		t, err := iso8601.Parse(rest)
		if err != nil {
			return nil, &DecodeError{Value: rest, Err: err}
		}
		r.revived++
		return t, nil
	}
	t, ok, err := iso8601.Recognize(s)
	if !ok {
		return s, nil
	}
	if err != nil {
		return nil, &DecodeError{Value: s, Err: err}
	}
	r.revived++
	return t, nil
}
