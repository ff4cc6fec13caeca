package jsondt

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Encoder writes jsondt-encoded values to a stream.
type Encoder struct {
	enc *jsoniter.Encoder
}

func (a *api) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: a.j.NewEncoder(w)}
}

// Encode writes the JSON encoding of v followed by a newline.
func (e *Encoder) Encode(v any) error { return e.enc.Encode(v) }

// Decoder reads jsondt-encoded values from a stream.
type Decoder struct {
	a   *api
	dec *jsoniter.Decoder
}

func (a *api) NewDecoder(r io.Reader) *Decoder {
	return &Decoder{a: a, dec: a.j.NewDecoder(r)}
}

// Decode reads the next value into v, reviving date-times the same way
// Unmarshal does.
func (d *Decoder) Decode(v any) error {
	if err := d.dec.Decode(v); err != nil {
		return err
	}
	return d.a.reviveTarget(v)
}

// More reports whether the stream holds another element.
func (d *Decoder) More() bool { return d.dec.More() }
