package gojsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldPointer(t *testing.T) {
	for in, want := range map[string]string{
		"":            "",
		"(root)":      "",
		"n":           "/n",
		"a.b.0":       "/a/b/0",
		"(root).x":    "/x",
		"slash/key":   "/slash~1key",
		"tilde~key.k": "/tilde~0key/k",
	} {
		assert.Equal(t, want, fieldPointer(in), in)
	}
}
