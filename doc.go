// Package jtval validates collections of JSON-like items against a JSON
// Schema and partitions them into valid and invalid buckets.
//
// Schema compilation and constraint checking are delegated to an Engine
// (santhosh-tekuri/jsonschema by default, xeipuuv/gojsonschema via
// engine/gojsonschema). This package compiles the schema once per call,
// applies it to each item and delivers the results in one of three ways:
//
//   - Batch: Validate returns the normalized valid items and the failures.
//   - Streaming: Stream returns a lazy iter.Seq2 of Results; Process pushes
//     them to callbacks; Check handles a single item.
//   - Legacy: ValidateLegacy keeps the correct list aligned with the input by
//     inserting {"_JSON_VALIDATOR_ERROR_ID": n} placeholders.
//
// Valid items are returned as normalized copies: numbers become json.Number
// and missing properties receive their schema defaults. Failures keep the
// caller's original item.
//
// Errors:
//   - *SchemaDefinitionError: the schema cannot be compiled. Always returned;
//     no item is processed.
//   - *ValidationError: an item failed and WithRaiseOnError was set. Later
//     items are never pulled.
//
// Typical usage:
//
//	correct, failures, err := jtval.Validate(ctx, schema, items)
//
//	seq, err := jtval.Stream(ctx, schema, items, jtval.WithRaiseOnError())
//	for res, err := range seq {
//		...
//	}
//
// Subpackages: source reads items from JSON, NDJSON and YAML; metrics exports
// Prometheus counters through the Observer hook; middleware validates HTTP
// request bodies; cmd/jtval is the command line front end.
package jtval
