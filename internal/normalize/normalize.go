// Package normalize applies schema-declared defaults to decoded JSON values.
//
// It walks the raw (canonical) schema document rather than an engine's
// compiled form so every engine gets the same normalization. Only local
// references ("#", "#/...") are followed.
package normalize

import (
	"net/url"
	"sort"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/mohae/deepcopy"
)

// maxRefHops bounds $ref/allOf chains that do not descend into the value,
// e.g. {"$ref": "#"} at the root.
const maxRefHops = 32

// Apply inserts defaults for missing properties into v and returns it. v is
// modified in place; callers pass a private copy.
func Apply(schema, v any) any {
	w := walker{root: schema}
	return w.apply(schema, v, 0)
}

type walker struct{ root any }

func (w walker) apply(s, v any, hops int) any {
	sm, ok := s.(map[string]any)
	if !ok || hops > maxRefHops {
		return v
	}
	if ref, ok := sm["$ref"].(string); ok {
		if target, ok := w.resolve(ref); ok {
			v = w.apply(target, v, hops+1)
		}
	}
	if all, ok := sm["allOf"].([]any); ok {
		for _, sub := range all {
			v = w.apply(sub, v, hops+1)
		}
	}

	switch val := v.(type) {
	case map[string]any:
		props, _ := sm["properties"].(map[string]any)
		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ps := props[name]
			if cur, ok := val[name]; ok {
				val[name] = w.apply(ps, cur, 0)
				continue
			}
			if d, ok := w.defaultOf(ps, 0); ok {
				val[name] = deepcopy.Copy(d)
			}
		}
		return val
	case []any:
		start := 0
		if prefix, ok := sm["prefixItems"].([]any); ok {
			for i := 0; i < len(prefix) && i < len(val); i++ {
				val[i] = w.apply(prefix[i], val[i], 0)
			}
			start = len(prefix)
		}
		switch items := sm["items"].(type) {
		case map[string]any:
			for i := start; i < len(val); i++ {
				val[i] = w.apply(items, val[i], 0)
			}
		case []any:
			// draft-04..07 tuple form
			for i := 0; i < len(items) && i < len(val); i++ {
				val[i] = w.apply(items[i], val[i], 0)
			}
		}
		return val
	default:
		return v
	}
}

// defaultOf returns the "default" keyword of s, following $ref.
func (w walker) defaultOf(s any, hops int) (any, bool) {
	sm, ok := s.(map[string]any)
	if !ok || hops > maxRefHops {
		return nil, false
	}
	if d, ok := sm["default"]; ok {
		return d, true
	}
	if ref, ok := sm["$ref"].(string); ok {
		if target, ok := w.resolve(ref); ok {
			return w.defaultOf(target, hops+1)
		}
	}
	return nil, false
}

// resolve follows a same-document JSON Pointer fragment.
func (w walker) resolve(ref string) (any, bool) {
	frag, ok := strings.CutPrefix(ref, "#")
	if !ok {
		return nil, false
	}
	if u, err := url.PathUnescape(frag); err == nil {
		frag = u
	}
	// plain-name anchors are engine territory and fail to parse here
	p, err := jsonpointer.New(frag)
	if err != nil {
		return nil, false
	}
	target, _, err := p.Get(w.root)
	if err != nil {
		return nil, false
	}
	return target, true
}
