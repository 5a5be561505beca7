package jtval

import (
	"context"
	"iter"
)

// Stream compiles schema and returns the lazy result sequence for data. Schema
// errors are returned immediately, before any item is pulled.
func Stream(ctx context.Context, schema any, data any, opts ...Option) (iter.Seq2[Result, error], error) {
	v, err := Compile(schema, opts...)
	if err != nil {
		return nil, err
	}
	return v.Stream(ctx, data), nil
}

// Check validates a single item and returns its Result directly.
func Check(ctx context.Context, schema any, item Document, opts ...Option) (Result, error) {
	v, err := Compile(schema, opts...)
	if err != nil {
		return Result{}, err
	}
	return v.Apply(ctx, item)
}

// Process compiles schema and pushes every result to onOK or onError, in
// input order, as it is produced.
func Process(ctx context.Context, schema any, data any, onOK func(Document), onError func(Failure), opts ...Option) error {
	v, err := Compile(schema, opts...)
	if err != nil {
		return err
	}
	return v.Process(ctx, data, onOK, onError)
}
