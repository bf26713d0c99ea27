package decode

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeInvalidLiteral = "invalid_literal"
	CodeRequired       = "required"
	CodeParseError     = "parse_error"
	CodeTruncated      = "truncated"
	// Refinement passes (business semantics, usually context dependent)
	CodeBusinessRule = "business_rule"
	// The decode context could not be resolved at decode time.
	CodeDependencyUnavailable = "dependency_unavailable"
)

// Issue represents a single decode failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string // What the value should have been (for example: "number").
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// InputFragment is the rendered value that was rejected. It is empty when
	// there was no value to reject (missing keys).
	InputFragment string
	// Params carries structured parameters (e.g., {"value": -5}) for i18n and
	// observability.
	Params map[string]any

	segs []segment // structured Path, set when built through a PathRef
}

// Issues is a collection of decode errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is/As can reach them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssuesFrom converts any error into Issues. Errors that are not Issues are
// wrapped in a single issue at the root with the given code.
func IssuesFrom(err error, code string) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: "/", Code: code, Message: err.Error(), Cause: err}}
}
