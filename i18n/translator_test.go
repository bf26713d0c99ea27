package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", map[string]string{"expected": "number"}); msg != "expected number" {
		t.Fatalf("expected english message with placeholder, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", map[string]string{"expected": "number"}); msg == "expected number" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code fallback, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("expected custom translator, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("expected default translator after reset, got %q", msg)
	}
}
