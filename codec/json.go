package codec

import "github.com/unkn0wn-root/jsondt"

// JSON is a Codec backed by jsondt: time.Time fields travel as ISO 8601
// strings and round-trip with offset fidelity. The zero value uses the
// fully automatic jsondt.Default; use NewJSON to select options such as
// control mode.
type JSON[V any] struct {
	api jsondt.API
}

var _ Codec[struct{}] = JSON[struct{}]{}

func NewJSON[V any](opts jsondt.Options) JSON[V] {
	return JSON[V]{api: jsondt.New(opts)}
}

func (c JSON[V]) Encode(v V) ([]byte, error) {
	return c.instance().Marshal(v)
}

func (c JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.instance().Unmarshal(b, &v)
	return v, err
}

func (c JSON[V]) instance() jsondt.API {
	if c.api != nil {
		return c.api
	}
	return jsondt.Default
}
