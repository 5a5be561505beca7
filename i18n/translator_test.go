package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	data := map[string]string{"valid": "2", "invalid": "1"}
	assert.Equal(t, "2 valid, 1 invalid", T(CodeSummary, data))

	SetLanguage("ja")
	assert.Equal(t, "有効 2 件、無効 1 件", T(CodeSummary, data))

	// unsupported languages fall back to en
	SetLanguage("fr")
	assert.Equal(t, "listening on :8080", T(CodeListening, map[string]string{"addr": ":8080"}))
}

func TestTranslator_UnknownCodeEchoesCode(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })
	SetTranslator(upper{})
	assert.Equal(t, "X:summary", T(CodeSummary, nil))
	SetTranslator(nil)
	assert.Equal(t, "schema is invalid: bad", T(CodeSchemaError, map[string]string{"reason": "bad"}))
}
