// Package jsondt is a drop-in JSON layer with transparent date-time support.
// Encoding turns time.Time values into ISO 8601 strings; decoding recognizes
// ISO 8601-looking strings and turns them back into time.Time values.
//
// Components:
//   - API: a frozen engine instance built by New(Options). The package-level
//     Marshal/Unmarshal/Decode use Default, a fully automatic instance.
//   - Wire grammar: YYYY-MM-DDTHH:MM:SS[.ffffff][Z|±HH:MM], microsecond
//     precision, naive / UTC / fixed-offset (see Naive and IsNaive).
//   - codec: generic Codec[V] implementations (JSON, Msgpack, CBOR, ...) for
//     embedding in caches, queues and pipelines.
//   - log: adapters plugging zap, logrus or slog into the Logger interface.
//
// Automatic mode converts any matching string on decode. That is convenient
// and ambiguous at once: a plain string that merely looks like a date
// converts too. Control mode removes the ambiguity by prefixing encoded
// date-times with the \D marker and converting only marked strings:
//
//	api := jsondt.New(jsondt.Options{Control: true})
//	b, _ := api.Marshal(map[string]any{"at": time.Now()})
//	// {"at":"\\D2019-08-19T18:18:25.609815+02:00"}
//
// Mode is not negotiated on the wire: use matching Control settings on both
// sides of a round trip.
package jsondt
