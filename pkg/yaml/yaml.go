// Package yaml wraps [github.com/goccy/go-yaml] with the encoder settings,
// schema validation and source-annotated errors used across aspect.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

// Decoder reads YAML documents. Syntax and type errors are returned as
// [*Error] so they can be annotated with the source.
type Decoder struct {
	d *yaml.Decoder
}

// DecoderOpt configures a [Decoder].
type DecoderOpt func(*[]yaml.DecodeOption)

// Strict rejects fields that do not exist in the target struct.
func Strict() DecoderOpt {
	return func(opts *[]yaml.DecodeOption) {
		*opts = append(*opts, yaml.DisallowUnknownField())
	}
}

func NewDecoder(r io.Reader, opts ...DecoderOpt) *Decoder {
	decodeOpts := []yaml.DecodeOption{yaml.AllowDuplicateMapKey()}
	for _, opt := range opts {
		opt(&decodeOpts)
	}

	return &Decoder{
		d: yaml.NewDecoder(r, decodeOpts...),
	}
}

func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	return err //nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
}

// Encoder writes YAML with two space indentation and indented sequences.
type Encoder struct {
	e *yaml.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		e: yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true)),
	}
}

func (e *Encoder) Encode(v any) error {
	return e.e.Encode(v) //nolint:wrapcheck // Return the original error.
}

func (e *Encoder) Close() error {
	return e.e.Close() //nolint:wrapcheck // Return the original error.
}

// Marshal encodes v with an [Encoder].
func Marshal(v any) ([]byte, error) {
	b := &bytes.Buffer{}

	enc := NewEncoder(b)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	err = enc.Close()
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unmarshal decodes data into v with a [Decoder].
func Unmarshal(data []byte, v any, opts ...DecoderOpt) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}

// NewPathBuilder starts a new YAML path.
func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}
