package jsondt

import (
	"reflect"
	"strings"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/unkn0wn-root/jsondt/internal/iso8601"
)

var timeType = reflect.TypeOf(time.Time{})

// timeExtension routes time.Time through the ISO 8601 wire grammar instead
// of the type's own MarshalJSON/UnmarshalJSON. Registered on a per-instance
// frozen engine, never globally.
type timeExtension struct {
	jsoniter.DummyExtension
	control bool
}

func (e *timeExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == timeType {
		return &timeCodec{control: e.control}
	}
	return nil
}

func (e *timeExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == timeType {
		return &timeCodec{control: e.control}
	}
	return nil
}

// timeCodec reads and writes a time.Time at a raw pointer, per the jsoniter
// ValEncoder/ValDecoder contract.
type timeCodec struct {
	control bool
}

// IsEmpty always reports false so omitempty keeps encoding/json semantics
// for time.Time fields.
func (*timeCodec) IsEmpty(unsafe.Pointer) bool { return false }

func (c *timeCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	s := iso8601.Format(*(*time.Time)(ptr))
	if c.control {
		s = Marker + s
	}
	stream.WriteString(s)
}

// Decode accepts the full wire grammar on typed fields. A leading marker is
// stripped whatever the mode: the field type already states the intent, so
// there is nothing left to disambiguate.
func (c *timeCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		return
	}
	s := strings.TrimPrefix(iter.ReadString(), Marker)
	t, err := iso8601.Parse(s)
	if err != nil {
		iter.ReportError("jsondt", err.Error())
		return
	}
	*(*time.Time)(ptr) = t
}
