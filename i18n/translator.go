package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected"). Placeholders are written as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":           "expected {expected}",
		"invalid_literal":        "expected one of {expected}",
		"required":               "required property missing",
		"parse_error":            "parse error",
		"truncated":              "truncated",
		"business_rule":          "business rule violated",
		"dependency_unavailable": "decode context unavailable",
	},
	"ja": {
		"invalid_type":           "型が不正です（期待値: {expected}）",
		"invalid_literal":        "値が不正です（候補: {expected}）",
		"required":               "必須プロパティが不足しています",
		"parse_error":            "解析エラー",
		"truncated":              "打ち切られました",
		"business_rule":          "業務ルール違反です",
		"dependency_unavailable": "デコードコンテキストが利用できません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(msg, data)
}

// expand replaces {key} placeholders with data values.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
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
