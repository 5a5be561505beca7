package jtval

import (
	"errors"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// schemaURL is the in-memory location the schema document is registered at.
const schemaURL = "file:///jtval/schema.json"

var englishPrinter = message.NewPrinter(language.English)

// SanthoshEngine returns the built-in engine backed by
// santhosh-tekuri/jsonschema. It is the default unless SetDefaultEngine is
// called.
func SanthoshEngine() Engine { return santhoshEngine{} }

type santhoshEngine struct{}

func (santhoshEngine) Name() string { return "santhosh-tekuri/jsonschema" }

func (santhoshEngine) Compile(schema Document, opt CompileOptions) (CompiledSchema, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(santhoshDraft(opt.Draft))
	if opt.AssertFormat {
		c.AssertFormat()
	}
	if err := c.AddResource(schemaURL, schema); err != nil {
		return nil, err
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, err
	}
	return santhoshSchema{sch: sch}, nil
}

func santhoshDraft(d Draft) *jsonschema.Draft {
	switch d {
	case Draft4:
		return jsonschema.Draft4
	case Draft6:
		return jsonschema.Draft6
	case Draft7:
		return jsonschema.Draft7
	case Draft2019:
		return jsonschema.Draft2019
	default:
		return jsonschema.Draft2020
	}
}

type santhoshSchema struct{ sch *jsonschema.Schema }

func (s santhoshSchema) Check(item Document) Issues {
	err := s.sch.Validate(item)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return Issues{{Message: err.Error()}}
	}
	var out Issues
	collectLeaves(ve, &out)
	if len(out) == 0 {
		out = Issues{{Message: ve.Error()}}
	}
	return out
}

// collectLeaves flattens the cause tree; group nodes ("allOf failed", "schema
// failed") carry no information beyond their children.
func collectLeaves(ve *jsonschema.ValidationError, out *Issues) {
	if len(ve.Causes) == 0 {
		var code string
		if kp := ve.ErrorKind.KeywordPath(); len(kp) > 0 {
			code = kp[len(kp)-1]
		}
		*out = append(*out, Issue{
			Path:    pointer(ve.InstanceLocation),
			Code:    code,
			Message: ve.ErrorKind.LocalizedString(englishPrinter),
		})
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}

// pointer renders reference tokens as an RFC 6901 JSON Pointer.
func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(jsonpointer.Escape(t))
	}
	return b.String()
}
