package decode

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
	// Rebase moves issues reported relative to a child value under this path.
	Rebase(child Issues) Issues
}

// segment is one unescaped pointer step; index marks array positions so an
// object key such as "0" is not mistaken for one.
type segment struct {
	name  string
	index bool
}

// Root returns the PathRef of the decoded value itself ("/").
func Root() PathRef { return &pathRef{} }

type pathRef struct {
	segs []segment
}

func (p *pathRef) with(s segment) *pathRef {
	return &pathRef{segs: append(append([]segment{}, p.segs...), s)}
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return p.with(segment{name: name})
}

func (p *pathRef) Index(i int) PathRef {
	return p.with(segment{name: strconv.Itoa(i), index: true})
}

func (p *pathRef) Pointer() string { return pointer(p.segs) }

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m, segs: p.segs}
}

func (p *pathRef) Rebase(child Issues) Issues {
	out := make(Issues, 0, len(child))
	for _, it := range child {
		segs := append(append([]segment{}, p.segs...), segmentsOf(it)...)
		it.segs = segs
		it.Path = pointer(segs)
		out = append(out, it)
	}
	return out
}

func pointer(segs []segment) string {
	if len(segs) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(escapeSegment(s.name))
	}
	return b.String()
}

// segmentsOf returns the structured path of an issue. Issues built by hand
// only carry Path; numeric segments of those are taken as array indexes.
func segmentsOf(it Issue) []segment {
	if it.segs != nil {
		return it.segs
	}
	var out []segment
	for _, s := range strings.Split(it.Path, "/") {
		if s == "" {
			continue
		}
		_, err := strconv.Atoi(s)
		out = append(out, segment{name: unescapeSegment(s), index: err == nil})
	}
	return out
}

// escape '~' -> '~0', '/' -> '~1' per RFC6901
func escapeSegment(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func unescapeSegment(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}
