package source_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jtval/source"
)

func TestReader_JSON(t *testing.T) {
	r := source.NewReader(strings.NewReader(`[{"a":1},{"a":2}] {"a":3}`), source.FormatJSON)
	got := slices.Collect(r.Items())
	require.NoError(t, r.Err())
	assert.Equal(t, []any{
		map[string]any{"a": json.Number("1")},
		map[string]any{"a": json.Number("2")},
		map[string]any{"a": json.Number("3")},
	}, got)
}

func TestReader_NDJSONKeepsArrays(t *testing.T) {
	r := source.NewReader(strings.NewReader("{\"a\":1}\n[1,2]\n\"s\"\n"), source.FormatNDJSON)
	got := slices.Collect(r.Items())
	require.NoError(t, r.Err())
	assert.Equal(t, []any{
		map[string]any{"a": json.Number("1")},
		[]any{json.Number("1"), json.Number("2")},
		"s",
	}, got)
}

func TestReader_YAML(t *testing.T) {
	in := "- name: a\n- name: b\n---\nname: c\n"
	r := source.NewReader(strings.NewReader(in), source.FormatYAML)
	got := slices.Collect(r.Items())
	require.NoError(t, r.Err())
	assert.Equal(t, []any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
		map[string]any{"name": "c"},
	}, got)
}

func TestReader_StopsEarly(t *testing.T) {
	r := source.NewReader(strings.NewReader(`[1,2,3]`), source.FormatJSON)
	var got []any
	for it := range r.Items() {
		got = append(got, it)
		break
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []any{json.Number("1")}, got)
}

func TestReader_DecodeError(t *testing.T) {
	r := source.NewReader(strings.NewReader(`{"a":1} {"a":`), source.FormatNDJSON)
	got := slices.Collect(r.Items())
	assert.Len(t, got, 1)
	require.Error(t, r.Err())
	assert.Contains(t, r.Err().Error(), "json value 1")
}

func TestFormats(t *testing.T) {
	for path, want := range map[string]source.Format{
		"items.json":  source.FormatJSON,
		"items.jsonl": source.FormatNDJSON,
		"x.NDJSON":    source.FormatNDJSON,
		"s.yaml":      source.FormatYAML,
		"s.yml":       source.FormatYAML,
		"noext":       source.FormatJSON,
	} {
		assert.Equal(t, want, source.FormatFromPath(path), path)
	}
	_, err := source.ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, "ndjson", source.FormatNDJSON.String())
}

func TestReadSchema(t *testing.T) {
	dir := t.TempDir()
	js := filepath.Join(dir, "s.json")
	ym := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(js, []byte(`{"type":"object","maxProperties":2}`), 0o600))
	require.NoError(t, os.WriteFile(ym, []byte("type: object\nmaxProperties: 2\n"), 0o600))

	got, err := source.ReadSchema(js)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "object", "maxProperties": json.Number("2")}, got)

	got, err = source.ReadSchema(ym)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "object", "maxProperties": 2}, got)

	_, err = source.ReadSchema(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = source.DecodeSchema([]byte(`{`), source.FormatJSON)
	assert.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0o600))

	r, c, err := source.OpenFile(path)
	require.NoError(t, err)
	defer c.Close()
	assert.Len(t, slices.Collect(r.Items()), 2)

	_, _, err = source.OpenFile(path + ".missing")
	assert.Error(t, err)
}
