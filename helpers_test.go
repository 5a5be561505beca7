package jtval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/jtval/internal/jsonvalue"
)

// exampleSchema requires an integer "n".
const exampleSchema = `{"type":"object","properties":{"n":{"type":"integer"}},"required":["n"]}`

// doc decodes JSON text the same way jtval canonicalizes values.
func doc(t testing.TB, s string) any {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(s))
	require.NoError(t, err)
	return v
}

// docs decodes a JSON array into its elements.
func docs(t testing.TB, s string) []any {
	t.Helper()
	v, ok := doc(t, s).([]any)
	require.True(t, ok, "expected a JSON array: %s", s)
	return v
}

// countingSeq yields items and records which indexes were pulled.
func countingSeq(items []any, pulled *[]int) func(func(any) bool) {
	return func(yield func(any) bool) {
		for i, it := range items {
			*pulled = append(*pulled, i)
			if !yield(it) {
				return
			}
		}
	}
}
