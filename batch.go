package jtval

import "context"

// Validate compiles schema once and partitions data into normalized valid
// items and failure records.
//
//	correct, failures, err := jtval.Validate(ctx, schema, items)
//
// len(correct)+len(failures) equals the number of items. With
// WithRaiseOnError the first invalid item aborts the run and only the
// *ValidationError is returned.
func Validate(ctx context.Context, schema any, data any, opts ...Option) ([]Document, []Failure, error) {
	v, err := Compile(schema, opts...)
	if err != nil {
		return nil, nil, err
	}
	return v.Validate(ctx, data)
}

// ValidateLegacy compiles schema once and runs Validator.ValidateLegacy.
func ValidateLegacy(ctx context.Context, schema any, data any, opts ...Option) ([]Document, []LegacyFailure, error) {
	v, err := Compile(schema, opts...)
	if err != nil {
		return nil, nil, err
	}
	return v.ValidateLegacy(ctx, data)
}
