package decode_test

import (
	"context"
	"testing"

	"github.com/reoring/ctxskema/decode"
)

type point struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
}

func TestInto_BindsDecodedObject(t *testing.T) {
	obj := decode.Type(decode.Fields{
		"x":     decode.Field(decode.Number()),
		"y":     decode.Field(decode.Number()),
		"label": decode.Field(decode.String()),
	})
	d := decode.Compose(obj, decode.Into[point]())
	p, err := d.Decode(context.Background(), map[string]any{"x": 1.0, "y": 2.0, "label": "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != (point{X: 1, Y: 2, Label: "p"}) {
		t.Fatalf("unexpected binding %+v", p)
	}
}

func TestInto_TypeMismatchIsAnIssue(t *testing.T) {
	_, err := decode.Into[point]().Decode(context.Background(), map[string]any{"label": true})
	iss, ok := decode.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != decode.CodeInvalidType {
		t.Fatalf("expected invalid_type issue, got %v", err)
	}
}
