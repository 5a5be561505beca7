package jtval

// Document is a decoded JSON value: map[string]any, []any, string,
// json.Number, float64, bool or nil. Items and schemas are both documents.
type Document = any

// LegacyPlaceholderKey is the key of the marker object ValidateLegacy puts in
// the correct list where an invalid item used to be.
const LegacyPlaceholderKey = "_JSON_VALIDATOR_ERROR_ID"

// Failure records an item that did not pass validation.
type Failure struct {
	Failing Document `json:"failing"` // the caller's original item, unmodified
	Message string   `json:"message"`
	Issues  Issues   `json:"issues,omitempty"`
}

// Result is the outcome for one item: exactly one of Value (valid, after
// normalization) or Failure is meaningful.
type Result struct {
	Value   Document
	Failure *Failure
}

// Valid wraps a normalized item.
func Valid(v Document) Result { return Result{Value: v} }

// Invalid wraps a failing item.
func Invalid(item Document, msg string, issues Issues) Result {
	return Result{Failure: &Failure{Failing: item, Message: msg, Issues: issues}}
}

// OK reports whether the item passed.
func (r Result) OK() bool { return r.Failure == nil }

// Pair returns (normalized item, nil) or (nil, failure).
func (r Result) Pair() (Document, *Failure) {
	if r.Failure != nil {
		return nil, r.Failure
	}
	return r.Value, nil
}

// LegacyFailure is the failure shape of ValidateLegacy.
type LegacyFailure struct {
	ErrorID int      `json:"error_id"`
	Error   string   `json:"error"`
	Object  Document `json:"object"`
}

// legacyPlaceholder builds the marker stored in place of a failed item.
func legacyPlaceholder(id int) map[string]any {
	return map[string]any{LegacyPlaceholderKey: id}
}
