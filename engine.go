package jtval

import (
	"fmt"
	"strings"
	"sync"
)

// Draft selects the JSON Schema dialect used when a schema has no $schema.
type Draft string

const (
	Draft4    Draft = "draft-04"
	Draft6    Draft = "draft-06"
	Draft7    Draft = "draft-07"
	Draft2019 Draft = "2019-09"
	Draft2020 Draft = "2020-12"
)

// ParseDraft accepts "4", "draft-04", "draft4" and the like, "2019-09" and
// "2020-12". An empty string is Draft2020.
func ParseDraft(s string) (Draft, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "draft4", "draft-04":
		return Draft4, nil
	case "6", "draft6", "draft-06":
		return Draft6, nil
	case "7", "draft7", "draft-07":
		return Draft7, nil
	case "2019", "2019-09", "draft2019-09":
		return Draft2019, nil
	case "", "2020", "2020-12", "draft2020-12":
		return Draft2020, nil
	}
	return "", fmt.Errorf("jtval: unknown draft %q", s)
}

// CompileOptions carries the engine-facing subset of Options.
type CompileOptions struct {
	Draft        Draft // empty means Draft2020
	AssertFormat bool  // treat "format" as an assertion, not an annotation
}

// Engine compiles schema documents into reusable checks. Implementations live
// behind this SPI so the validation backend can be swapped per call (WithEngine)
// or globally (SetDefaultEngine).
type Engine interface {
	// Compile turns a canonical schema document into a CompiledSchema. Any
	// returned error is reported to callers as a *SchemaDefinitionError.
	Compile(schema Document, opt CompileOptions) (CompiledSchema, error)
	Name() string
}

// CompiledSchema checks canonical items. It must not mutate the item.
type CompiledSchema interface {
	// Check returns nil when item conforms, otherwise at least one Issue.
	Check(item Document) Issues
}

var (
	engineMu      sync.RWMutex
	currentEngine Engine = santhoshEngine{}
)

// SetDefaultEngine replaces the process-wide engine; nil values are ignored.
func SetDefaultEngine(e Engine) {
	if e == nil {
		return
	}
	engineMu.Lock()
	currentEngine = e
	engineMu.Unlock()
}

// UseDefaultEngine restores the santhosh-tekuri/jsonschema backed engine.
func UseDefaultEngine() {
	engineMu.Lock()
	currentEngine = santhoshEngine{}
	engineMu.Unlock()
}

// DefaultEngine returns the process-wide engine.
func DefaultEngine() Engine {
	engineMu.RLock()
	e := currentEngine
	engineMu.RUnlock()
	return e
}
