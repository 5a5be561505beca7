package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jtval/internal/jsonvalue"
	"github.com/reoring/jtval/internal/normalize"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(s))
	require.NoError(t, err)
	return v
}

func TestApply(t *testing.T) {
	cases := []struct {
		name   string
		schema string
		in     string
		want   string
	}{
		{
			name:   "missing property gets default",
			schema: `{"properties":{"a":{"default":1},"b":{"type":"string"}}}`,
			in:     `{}`,
			want:   `{"a":1}`,
		},
		{
			name:   "present property is kept",
			schema: `{"properties":{"a":{"default":1}}}`,
			in:     `{"a":7}`,
			want:   `{"a":7}`,
		},
		{
			name:   "nested objects",
			schema: `{"properties":{"o":{"properties":{"x":{"default":"d"}}}}}`,
			in:     `{"o":{}}`,
			want:   `{"o":{"x":"d"}}`,
		},
		{
			name:   "array items",
			schema: `{"items":{"properties":{"k":{"default":true}}}}`,
			in:     `[{},{"k":false}]`,
			want:   `[{"k":true},{"k":false}]`,
		},
		{
			name:   "prefixItems then items",
			schema: `{"prefixItems":[{"properties":{"p":{"default":0}}}],"items":{"properties":{"q":{"default":1}}}}`,
			in:     `[{},{},{}]`,
			want:   `[{"p":0},{"q":1},{"q":1}]`,
		},
		{
			name:   "tuple items",
			schema: `{"items":[{"properties":{"a":{"default":"x"}}},{"properties":{"b":{"default":"y"}}}]}`,
			in:     `[{},{},{}]`,
			want:   `[{"a":"x"},{"b":"y"},{}]`,
		},
		{
			name:   "local ref",
			schema: `{"$defs":{"pt":{"properties":{"z":{"default":0}}}},"properties":{"p":{"$ref":"#/$defs/pt"}}}`,
			in:     `{"p":{}}`,
			want:   `{"p":{"z":0}}`,
		},
		{
			name:   "default behind ref",
			schema: `{"definitions":{"d":{"default":"v"}},"properties":{"a":{"$ref":"#/definitions/d"}}}`,
			in:     `{}`,
			want:   `{"a":"v"}`,
		},
		{
			name:   "allOf",
			schema: `{"allOf":[{"properties":{"a":{"default":1}}},{"properties":{"b":{"default":2}}}]}`,
			in:     `{}`,
			want:   `{"a":1,"b":2}`,
		},
		{
			name:   "escaped pointer",
			schema: `{"$defs":{"a/b":{"default":"s"}},"properties":{"x":{"$ref":"#/$defs/a~1b"}}}`,
			in:     `{}`,
			want:   `{"x":"s"}`,
		},
		{
			name:   "percent-encoded fragment",
			schema: `{"$defs":{"a b":{"default":"p"}},"properties":{"x":{"$ref":"#/$defs/a%20b"}}}`,
			in:     `{}`,
			want:   `{"x":"p"}`,
		},
		{
			name:   "array index in pointer",
			schema: `{"$defs":{"list":[{"default":"first"}]},"properties":{"x":{"$ref":"#/$defs/list/0"}}}`,
			in:     `{}`,
			want:   `{"x":"first"}`,
		},
		{
			name:   "unresolvable and anchor refs are ignored",
			schema: `{"properties":{"x":{"$ref":"#/$defs/none"},"y":{"$ref":"#anchor"}}}`,
			in:     `{}`,
			want:   `{}`,
		},
		{
			name:   "remote ref is ignored",
			schema: `{"properties":{"x":{"$ref":"https://example.com/s.json"}}}`,
			in:     `{}`,
			want:   `{}`,
		},
		{
			name:   "boolean schema",
			schema: `true`,
			in:     `{"a":1}`,
			want:   `{"a":1}`,
		},
		{
			name:   "scalar value",
			schema: `{"properties":{"a":{"default":1}}}`,
			in:     `"text"`,
			want:   `"text"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalize.Apply(decode(t, tc.schema), decode(t, tc.in))
			assert.Equal(t, decode(t, tc.want), got)
		})
	}
}

func TestApply_SelfReferenceTerminates(t *testing.T) {
	schema := decode(t, `{"$ref":"#","properties":{"a":{"default":1}}}`)
	got := normalize.Apply(schema, decode(t, `{}`))
	assert.Equal(t, decode(t, `{"a":1}`), got)
}

func TestApply_RecursiveSchema(t *testing.T) {
	schema := decode(t, `{"properties":{"v":{"default":0},"next":{"$ref":"#"}}}`)
	got := normalize.Apply(schema, decode(t, `{"next":{"next":{}}}`))
	assert.Equal(t, decode(t, `{"v":0,"next":{"v":0,"next":{"v":0}}}`), got)
}

func TestApply_DefaultsAreCopied(t *testing.T) {
	schema := decode(t, `{"properties":{"tags":{"default":["a"]}}}`)
	first := normalize.Apply(schema, map[string]any{}).(map[string]any)
	second := normalize.Apply(schema, map[string]any{}).(map[string]any)

	first["tags"].([]any)[0] = "mutated"
	assert.Equal(t, []any{"a"}, second["tags"])
	assert.Equal(t, decode(t, `{"properties":{"tags":{"default":["a"]}}}`), schema)
}
