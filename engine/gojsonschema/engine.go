// Package gojsonschema provides a jtval.Engine backed by
// github.com/xeipuuv/gojsonschema.
//
//	correct, failures, err := jtval.Validate(ctx, schema, items,
//		jtval.WithEngine(gojsonschema.Engine()))
//
// gojsonschema detects the draft from $schema and supports draft-04 to
// draft-07; CompileOptions.Draft only acts as a hint for schemas without
// $schema, and AssertFormat is always on (gojsonschema checks formats).
package gojsonschema

import (
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/xeipuuv/gojsonschema"

	"github.com/reoring/jtval"
)

// Engine returns the gojsonschema-backed engine.
func Engine() jtval.Engine { return engine{} }

type engine struct{}

func (engine) Name() string { return "xeipuuv/gojsonschema" }

func (engine) Compile(schema jtval.Document, opt jtval.CompileOptions) (jtval.CompiledSchema, error) {
	sl := gojsonschema.NewSchemaLoader()
	sl.Draft = draft(opt.Draft)
	sl.AutoDetect = true
	sl.Validate = true
	s, err := sl.Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, err
	}
	return compiled{s: s}, nil
}

func draft(d jtval.Draft) gojsonschema.Draft {
	switch d {
	case jtval.Draft4:
		return gojsonschema.Draft4
	case jtval.Draft6:
		return gojsonschema.Draft6
	default:
		return gojsonschema.Draft7
	}
}

type compiled struct{ s *gojsonschema.Schema }

func (c compiled) Check(item jtval.Document) jtval.Issues {
	res, err := c.s.Validate(gojsonschema.NewGoLoader(item))
	if err != nil {
		return jtval.Issues{{Message: err.Error()}}
	}
	if res.Valid() {
		return nil
	}
	errs := res.Errors()
	out := make(jtval.Issues, 0, len(errs))
	for _, re := range errs {
		out = append(out, jtval.Issue{
			Path:    fieldPointer(re.Field()),
			Code:    re.Type(),
			Message: re.Description(),
		})
	}
	if len(out) == 0 {
		out = append(out, jtval.Issue{Message: "validation failed"})
	}
	return out
}

// rootField is how gojsonschema names the instance root.
const rootField = "(root)"

// fieldPointer turns gojsonschema's dotted field ("(root)", "a.b.0") into a
// JSON Pointer. Keys that themselves contain dots cannot be told apart.
func fieldPointer(field string) string {
	if field == "" || field == rootField {
		return ""
	}
	field = strings.TrimPrefix(field, rootField+".")
	parts := strings.Split(field, ".")
	b := &strings.Builder{}
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(jsonpointer.Escape(p))
	}
	return b.String()
}
