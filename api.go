package jsondt

import (
	"io"
	"time"

	"github.com/unkn0wn-root/jsondt/internal/iso8601"
)

// API is a frozen jsondt instance: a JSON engine plus the date-time rules
// selected by Options. Instances are immutable after New and safe for
// concurrent use; every call is independent.
type API interface {
	// ContentType returns "application/json".
	ContentType() string

	// Marshal encodes v like encoding/json, rendering time.Time values as
	// ISO 8601 strings (marker-prefixed in control mode). Values the engine
	// cannot serialize fail with the engine's own error.
	Marshal(v any) ([]byte, error)
	MarshalToString(v any) (string, error)

	// Unmarshal decodes data into v like encoding/json. Untyped targets
	// (*any, *map[string]any, *[]any) get matching string leaves revived
	// into time.Time per the mode rules; time.Time struct fields accept the
	// wire grammar directly.
	Unmarshal(data []byte, v any) error
	UnmarshalFromString(data string, v any) error

	// Decode parses data into an untyped tree with date-times revived.
	Decode(data []byte) (any, error)

	NewEncoder(w io.Writer) *Encoder
	NewDecoder(r io.Reader) *Decoder
}

// Options tune a jsondt instance. The zero value is fully automatic mode
// with encoding/json-compatible output (HTML escaped, map keys sorted).
type Options struct {
	// Control requires the \D marker for decode-side conversion and prepends
	// it to every encoded date-time. Plain strings that merely look like
	// dates then survive a round trip unchanged, at the cost of the marker
	// on the wire.
	Control bool

	Indent               int  // spaces per nesting level; 0 => compact output
	DisableMapKeySorting bool // default false => deterministic key order
	DisableHTMLEscape    bool // default false => stdlib-style escaping
	UseNumber            bool // json.Number instead of float64 in untyped trees

	Logger Logger // if nil, NopLogger is used
}

// New builds a frozen instance from opts.
func New(opts Options) API {
	return newAPI(opts)
}

// Default is the automatic-mode instance behind the package-level functions.
var Default = New(Options{})

// Marshal encodes v with Default.
func Marshal(v any) ([]byte, error) { return Default.Marshal(v) }

// Unmarshal decodes data into v with Default.
func Unmarshal(data []byte, v any) error { return Default.Unmarshal(data, v) }

// Decode parses data into an untyped tree with Default.
func Decode(data []byte) (any, error) { return Default.Decode(data) }

// Naive reinterprets t's wall clock as a date-time with no offset attached.
// Naive values encode without an offset suffix, and zone-less input decodes
// naive. Everything else about t is unchanged.
func Naive(t time.Time) time.Time { return iso8601.Naive(t) }

// IsNaive reports whether t was produced by Naive or parsed from zone-less
// input.
func IsNaive(t time.Time) bool { return iso8601.IsNaive(t) }
