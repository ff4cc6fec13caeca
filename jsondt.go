package jsondt

import (
	jsoniter "github.com/json-iterator/go"
)

// Marker is the control-mode sentinel. A backslash can never start a valid
// ISO 8601 date-time, so a \D prefix unambiguously flags machine-generated
// timestamps. Inside a JSON document it shows up escaped, as "\\D...".
const Marker = `\D`

type api struct {
	j       jsoniter.API
	control bool
	log     Logger
}

func newAPI(opts Options) *api {
	a := &api{
		control: opts.Control,
		log:     opts.Logger,
	}
	if a.log == nil {
		a.log = NopLogger{}
	}
	// Frozen per instance so the extension never leaks into other users of
	// the engine. ValidateJsonRawMessage matches encoding/json behavior.
	a.j = jsoniter.Config{
		IndentionStep:          opts.Indent,
		EscapeHTML:             !opts.DisableHTMLEscape,
		SortMapKeys:            !opts.DisableMapKeySorting,
		UseNumber:              opts.UseNumber,
		ValidateJsonRawMessage: true,
	}.Froze()
	a.j.RegisterExtension(&timeExtension{control: opts.Control})
	return a
}

func (a *api) ContentType() string { return "application/json" }

func (a *api) Marshal(v any) ([]byte, error) {
	b, err := a.j.Marshal(v)
	if err != nil {
		return nil, err
	}
	a.log.Debug("jsondt: marshal", Fields{"bytes": len(b), "control": a.control})
	return b, nil
}

func (a *api) MarshalToString(v any) (string, error) {
	b, err := a.Marshal(v)
	return string(b), err
}

func (a *api) Unmarshal(data []byte, v any) error {
	if err := a.j.Unmarshal(data, v); err != nil {
		return err
	}
	return a.reviveTarget(v)
}

func (a *api) UnmarshalFromString(data string, v any) error {
	return a.Unmarshal([]byte(data), v)
}

func (a *api) Decode(data []byte) (any, error) {
	var v any
	if err := a.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
