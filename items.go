package jtval

import (
	"iter"
	"reflect"
	"slices"

	"github.com/goccy/go-json"

	"github.com/reoring/jtval/internal/jsonvalue"
)

// Items adapts the data argument of the top-level functions into a sequence:
//
//   - nil is empty
//   - iter.Seq[any], iter.Seq[map[string]any] and plain func(func(any) bool)
//     iterators are consumed lazily, once
//   - []byte and json.RawMessage are JSON text: a top-level array yields its
//     elements, any other value is one item, and text that does not decode
//     is one item that fails with CodeEncoding
//   - slices and arrays of any element type yield their elements
//   - anything else, including a single map[string]any, is one item
func Items(data any) iter.Seq[Document] {
	switch d := data.(type) {
	case nil:
		return func(func(Document) bool) {}
	case iter.Seq[Document]:
		return d
	case func(func(Document) bool):
		return d
	case iter.Seq[map[string]any]:
		return func(yield func(Document) bool) {
			for m := range d {
				if !yield(m) {
					return
				}
			}
		}
	case []Document:
		return slices.Values(d)
	case []byte:
		return rawItems(d)
	case json.RawMessage:
		return rawItems(d)
	}
	rv := reflect.ValueOf(data)
	if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
		return func(yield func(Document) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}
	}
	return single(data)
}

func rawItems(b []byte) iter.Seq[Document] {
	return func(yield func(Document) bool) {
		v, err := jsonvalue.Decode(b)
		if err != nil {
			// Apply reports it as an encoding failure
			yield(b)
			return
		}
		if list, ok := v.([]any); ok {
			for _, it := range list {
				if !yield(it) {
					return
				}
			}
			return
		}
		yield(v)
	}
}

func single(v Document) iter.Seq[Document] {
	return func(yield func(Document) bool) { yield(v) }
}
