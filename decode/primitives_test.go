package decode_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/reoring/ctxskema/decode"
)

func TestString_AcceptsOnlyStrings(t *testing.T) {
	ctx := context.Background()
	if v, err := decode.String().Decode(ctx, "abc"); err != nil || v != "abc" {
		t.Fatalf("expected abc, got %q err=%v", v, err)
	}
	_, err := decode.String().Decode(ctx, 1.0)
	iss, ok := decode.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != decode.CodeInvalidType || iss[0].Path != "/" {
		t.Fatalf("expected one invalid_type issue at root, got %v", err)
	}
	if iss[0].InputFragment != "1" {
		t.Fatalf("expected rendered input fragment, got %q", iss[0].InputFragment)
	}
}

func TestBool(t *testing.T) {
	ctx := context.Background()
	if v, err := decode.Bool().Decode(ctx, true); err != nil || !v {
		t.Fatalf("expected true, got %v err=%v", v, err)
	}
	if _, err := decode.Bool().Decode(ctx, "true"); err == nil {
		t.Fatalf("expected string input to be rejected")
	}
}

func TestNumber_AcceptsNumericKinds(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		in   any
		want float64
	}{
		{in: 5.0, want: 5},
		{in: float32(1.5), want: 1.5},
		{in: 7, want: 7},
		{in: int64(-3), want: -3},
		{in: uint8(9), want: 9},
		{in: json.Number("2.25"), want: 2.25},
		{in: math.Inf(1), want: math.Inf(1)},
	}
	for _, c := range cases {
		got, err := decode.Number().Decode(ctx, c.in)
		if err != nil {
			t.Fatalf("%T(%v): unexpected error %v", c.in, c.in, err)
		}
		if got != c.want {
			t.Fatalf("%T(%v): expected %v, got %v", c.in, c.in, c.want, got)
		}
	}
}

func TestNumber_RejectsNaNAndNonNumbers(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{math.NaN(), "5", json.Number("abc"), nil, true} {
		if _, err := decode.Number().Decode(ctx, in); err == nil {
			t.Fatalf("expected %#v to be rejected", in)
		}
	}
}

func TestLiteral_SetMembership(t *testing.T) {
	ctx := context.Background()
	lit := decode.Literal("A", "B", "C")
	if v, err := lit.Decode(ctx, "A"); err != nil || v != "A" {
		t.Fatalf("expected A, got %q err=%v", v, err)
	}
	_, err := lit.Decode(ctx, "D")
	iss, ok := decode.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != decode.CodeInvalidLiteral {
		t.Fatalf("expected invalid_literal, got %v", err)
	}
	if iss[0].Message != `expected one of "A" | "B" | "C"` {
		t.Fatalf("unexpected message %q", iss[0].Message)
	}
	if iss[0].InputFragment != `"D"` {
		t.Fatalf("unexpected fragment %q", iss[0].InputFragment)
	}
}

func TestLiteral_NumbersMatchAcrossKinds(t *testing.T) {
	ctx := context.Background()
	lit := decode.Literal(1, 2)
	for _, in := range []any{1.0, 1, int64(1), uint8(1), float32(1), json.Number("1")} {
		v, err := lit.Decode(ctx, in)
		if err != nil || v != 1 {
			t.Fatalf("expected literal 1 for %T(%v), got %v err=%v", in, in, v, err)
		}
	}
	for _, in := range []any{1.5, 3, math.NaN(), "1", true} {
		if _, err := lit.Decode(ctx, in); err == nil {
			t.Fatalf("expected %T(%v) to be rejected", in, in)
		}
	}
}

func TestLiteral_StrictDynamicTypeForNonNumbers(t *testing.T) {
	ctx := context.Background()
	if _, err := decode.Literal("1").Decode(ctx, 1.0); err == nil {
		t.Fatalf("expected number not to match string literal")
	}
	if _, err := decode.Literal(true).Decode(ctx, 1.0); err == nil {
		t.Fatalf("expected number not to match bool literal")
	}
	if v, err := decode.Literal(true).Decode(ctx, true); err != nil || !v {
		t.Fatalf("expected true, got %v err=%v", v, err)
	}
}

func TestUnknown_Identity(t *testing.T) {
	in := map[string]any{"a": 1}
	out, err := decode.Unknown().Decode(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m, ok := out.(map[string]any); !ok || m["a"] != 1 {
		t.Fatalf("expected input back, got %#v", out)
	}
}
