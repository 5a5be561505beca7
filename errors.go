package jtval

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes produced by the bundled engines. Engines may report other
// keyword names; these cover the common cases callers branch on.
const (
	CodeType     = "type"
	CodeRequired = "required"
	CodeEnum     = "enum"
	CodeFormat   = "format"
	CodePattern  = "pattern"
	// CodeEncoding marks an item that could not be turned into a JSON value
	// at all (channels, funcs, NaN floats, ...).
	CodeEncoding = "encoding"
)

// rootPath names the item itself in messages.
const rootPath = "(root)"

// Issue is a single leaf violation reported by an engine.
type Issue struct {
	Path    string `json:"path"`    // JSON Pointer into the item ("" is the item itself).
	Code    string `json:"code"`    // Keyword that failed, e.g. "type" or "required".
	Message string `json:"message"` // Engine-rendered, human readable.
}

func (it Issue) String() string {
	p := it.Path
	if p == "" {
		p = rootPath
	}
	return fmt.Sprintf("%s: %s", p, it.Message)
}

// Issues is a collection of violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally. A
// *ValidationError yields its Issues.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Issues, len(ve.Issues) > 0
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaDefinitionError reports a schema document that cannot be compiled.
// It is always returned to the caller; no item is processed after it.
type SchemaDefinitionError struct {
	Message string
	Cause   error
}

func (e *SchemaDefinitionError) Error() string {
	return "jtval: invalid schema: " + e.Message
}

func (e *SchemaDefinitionError) Unwrap() error { return e.Cause }

func newSchemaDefinitionError(cause error) *SchemaDefinitionError {
	return &SchemaDefinitionError{Message: cause.Error(), Cause: cause}
}

// ValidationError reports an item that failed its schema check. It is only
// returned in raise-on-error mode; otherwise the failure is collected.
type ValidationError struct {
	Message string
	Item    Document // the caller's original item
	Issues  Issues
}

func (e *ValidationError) Error() string {
	return "jtval: item failed validation: " + e.Message
}

// IsSchemaDefinition reports whether err is or wraps a *SchemaDefinitionError.
func IsSchemaDefinition(err error) bool {
	var se *SchemaDefinitionError
	return errors.As(err, &se)
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
