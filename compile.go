package jtval

import (
	"errors"
	"fmt"
	"time"

	"github.com/reoring/jtval/internal/jsonvalue"
)

var errNilSchema = errors.New("nil schema")

// Validator is a compiled schema together with the options it was built with.
// It is read-only after Compile and may be reused across calls.
type Validator struct {
	compiled CompiledSchema
	schema   Document // canonical copy, used for normalization
	opts     options
}

// Compile compiles schema with the selected engine. The schema may be a
// decoded document (map[string]any, bool), JSON text ([]byte,
// json.RawMessage, string) or any JSON-marshalable value; it is copied and
// never modified. Every failure is a *SchemaDefinitionError.
func Compile(schema any, opts ...Option) (*Validator, error) {
	return compile(schema, buildOptions(opts))
}

func compile(schema any, o options) (*Validator, error) {
	name := o.engine.Name()
	start := time.Now()
	fail := func(cause error) (*Validator, error) {
		err := newSchemaDefinitionError(cause)
		o.observer.SchemaCompiled(name, time.Since(start), err)
		o.logger.Debug("schema compile failed", "engine", name, "error", cause)
		return nil, err
	}

	if schema == nil {
		return fail(errNilSchema)
	}
	doc, err := jsonvalue.Canonical(schema)
	if err != nil {
		return fail(fmt.Errorf("decode schema: %w", err))
	}
	cs, err := o.engine.Compile(doc, o.compile)
	if err != nil {
		return fail(err)
	}

	elapsed := time.Since(start)
	o.observer.SchemaCompiled(name, elapsed, nil)
	o.logger.Debug("schema compiled", "engine", name, "elapsed", elapsed)
	return &Validator{compiled: cs, schema: doc, opts: o}, nil
}

// Engine returns the name of the engine the validator was compiled with.
func (v *Validator) Engine() string { return v.opts.engine.Name() }
