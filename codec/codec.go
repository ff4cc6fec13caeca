// Package codec provides pluggable value serialization for embedding jsondt
// in caches, queues and pipelines that move values as []byte.
package codec

// Codec encodes/decodes values V to []byte for transport or storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
