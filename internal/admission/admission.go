// Package admission decodes deployment requests against operator limits that
// are only known at decode time.
package admission

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/reoring/ctxskema"
	"github.com/reoring/ctxskema/decode"
)

// Limits is the decode context: what the operator currently allows.
type Limits struct {
	MaxReplicas   float64  `mapstructure:"max_replicas"`
	Regions       []string `mapstructure:"regions"`
	ReservedNames []string `mapstructure:"reserved_names"`
}

// Request is an admitted deployment request.
type Request struct {
	Name     string `json:"name"`
	Region   string `json:"region"`
	Replicas int    `json:"replicas"`
	Tier     string `json:"tier"`
}

// Tiers accepted in Request.Tier.
var Tiers = []string{"free", "standard", "premium"}

// Schema returns the contextual decoder for Request.
func Schema() ctxskema.Decoder[any, Request, Limits] {
	fields := ctxskema.Fields[Limits]{
		"name":     ctxskema.Field(name()),
		"region":   ctxskema.Field(region()),
		"replicas": ctxskema.Field(replicas()),
		"tier":     ctxskema.Field(ctxskema.Literal[Limits](Tiers[0], Tiers[1:]...)),
	}
	return ctxskema.Compose(ctxskema.Type(fields), ctxskema.Into[Request, Limits]())
}

func name() ctxskema.Decoder[any, string, Limits] {
	return ctxskema.Parse(ctxskema.String[Limits](), func(s string, l Limits) (string, error) {
		if strings.TrimSpace(s) == "" {
			return "", decode.Failure(s, "non-empty name")
		}
		if slices.Contains(l.ReservedNames, s) {
			return "", decode.Failure(s, "name not reserved by the operator")
		}
		return s, nil
	})
}

func region() ctxskema.Decoder[any, string, Limits] {
	return ctxskema.Parse(ctxskema.String[Limits](), func(s string, l Limits) (string, error) {
		if !slices.Contains(l.Regions, s) {
			return "", decode.Failure(s, "one of regions "+strings.Join(l.Regions, ", "))
		}
		return s, nil
	})
}

func replicas() ctxskema.Decoder[any, int, Limits] {
	return ctxskema.Parse(ctxskema.Number[Limits](), func(n float64, l Limits) (int, error) {
		if n != math.Trunc(n) {
			return 0, decode.Failure(n, "a whole number")
		}
		if n < 1 || n > l.MaxReplicas {
			return 0, decode.Failure(n, fmt.Sprintf("between 1 and %v", l.MaxReplicas))
		}
		return int(n), nil
	})
}
