package jtval

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeInto copies a normalized item into out, which must be a pointer.
// Struct fields are matched by their json tag; json.Number values fill
// numeric fields.
func DecodeInto(doc Document, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("jtval: decode: %w", err)
	}
	return nil
}

// DecodeAll decodes every item of docs into a T.
func DecodeAll[T any](docs []Document) ([]T, error) {
	out := make([]T, len(docs))
	for i, d := range docs {
		if err := DecodeInto(d, &out[i]); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return out, nil
}
