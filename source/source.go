// Package source reads validation items and schema documents from JSON,
// NDJSON and YAML inputs.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies an input encoding.
type Format int

const (
	FormatJSON   Format = iota // JSON documents; a top-level array is a list of items
	FormatNDJSON               // one value per line (or concatenated values)
	FormatYAML                 // multi-document stream; a sequence document is a list of items
)

func (f Format) String() string {
	switch f {
	case FormatNDJSON:
		return "ndjson"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// ParseFormat maps a format name ("json", "ndjson", "jsonl", "yaml", "yml").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "ndjson", "jsonl":
		return FormatNDJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("source: unknown format %q", name)
}

// FormatFromPath picks a Format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatJSON
	}
	return f
}

// Reader yields decoded items from r. Decoding stops at the first error,
// which is then reported by Err, in the manner of bufio.Scanner.
type Reader struct {
	r      io.Reader
	format Format
	err    error
}

// NewReader wraps r.
func NewReader(r io.Reader, f Format) *Reader {
	return &Reader{r: r, format: f}
}

// Items returns a single-pass sequence of items.
func (r *Reader) Items() iter.Seq[any] {
	return func(yield func(any) bool) {
		switch r.format {
		case FormatNDJSON:
			r.err = eachJSON(r.r, false, yield)
		case FormatYAML:
			r.err = eachYAML(r.r, yield)
		default:
			r.err = eachJSON(r.r, true, yield)
		}
	}
}

// Err returns the first decoding error, if any.
func (r *Reader) Err() error { return r.err }

// errStop marks an early stop requested by the consumer.
var errStop = errors.New("stop")

func eachJSON(r io.Reader, expand bool, yield func(any) bool) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	for n := 0; ; n++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("source: json value %d: %w", n, err)
		}
		if err := emit(v, expand, yield); err != nil {
			if err == errStop {
				return nil
			}
			return err
		}
	}
}

func eachYAML(r io.Reader, yield func(any) bool) error {
	dec := yaml.NewDecoder(r)
	for n := 0; ; n++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("source: yaml document %d: %w", n, err)
		}
		if err := emit(v, true, yield); err != nil {
			if err == errStop {
				return nil
			}
			return err
		}
	}
}

func emit(v any, expand bool, yield func(any) bool) error {
	if list, ok := v.([]any); ok && expand {
		for _, it := range list {
			if !yield(it) {
				return errStop
			}
		}
		return nil
	}
	if !yield(v) {
		return errStop
	}
	return nil
}

// OpenFile opens path and returns a Reader for it, choosing the format from
// the extension. "-" reads standard input as JSON.
func OpenFile(path string) (*Reader, io.Closer, error) {
	if path == "-" {
		return NewReader(os.Stdin, FormatJSON), io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(f, FormatFromPath(path)), f, nil
}

// ReadSchema loads a schema document from a JSON or YAML file.
func ReadSchema(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeSchema(b, FormatFromPath(path))
}

// DecodeSchema decodes a schema document. NDJSON is treated as JSON.
func DecodeSchema(b []byte, f Format) (any, error) {
	var v any
	if f == FormatYAML {
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("source: schema: %w", err)
		}
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: schema: %w", err)
	}
	return v, nil
}
