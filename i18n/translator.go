package i18n

import "strings"

// Message codes used by the command line front end.
const (
	CodeSummary     = "summary"      // data: valid, invalid
	CodeSchemaError = "schema_error" // data: reason
	CodeAborted     = "aborted"      // data: reason
	CodeReadError   = "read_error"   // data: path, reason
	CodeListening   = "listening"    // data: addr
)

// Translator retrieves localized messages for message codes.
// data provides values substituted for {key} placeholders.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tmpl string
	switch t.lang {
	case "ja":
		switch code {
		case CodeSummary:
			tmpl = "有効 {valid} 件、無効 {invalid} 件"
		case CodeSchemaError:
			tmpl = "スキーマが不正です: {reason}"
		case CodeAborted:
			tmpl = "不正な項目で中断しました: {reason}"
		case CodeReadError:
			tmpl = "{path} を読み込めません: {reason}"
		case CodeListening:
			tmpl = "{addr} で待ち受けています"
		}
	default: // "en"
		switch code {
		case CodeSummary:
			tmpl = "{valid} valid, {invalid} invalid"
		case CodeSchemaError:
			tmpl = "schema is invalid: {reason}"
		case CodeAborted:
			tmpl = "aborted on invalid item: {reason}"
		case CodeReadError:
			tmpl = "cannot read {path}: {reason}"
		case CodeListening:
			tmpl = "listening on {addr}"
		}
	}
	if tmpl == "" {
		return code
	}
	return expand(tmpl, data)
}

func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
