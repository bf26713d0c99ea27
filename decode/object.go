package decode

import (
	"context"
	"reflect"
	"sort"

	"github.com/reoring/ctxskema/i18n"
)

// Fields maps object keys to the decoder of their value.
type Fields map[string]Decoder[any, any]

// Type returns a decoder for objects carrying every key in fields. Each
// present value is decoded by its field decoder; the result holds exactly the
// declared keys. Failures of all fields are collected (keys in ascending order)
// unless the context is marked fail-fast.
func Type(fields Fields) Decoder[any, map[string]any] {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cp := make(Fields, len(fields))
	for k, d := range fields {
		cp[k] = d
	}
	return &objectDecoder{fields: cp, sortedKeys: keys}
}

type objectDecoder struct {
	fields     Fields
	sortedKeys []string
}

func (o *objectDecoder) Decode(ctx context.Context, v any) (map[string]any, error) {
	src, ok := asObject(v)
	if !ok {
		return nil, invalidType("object", v)
	}
	out := make(map[string]any, len(o.sortedKeys))
	var iss Issues
	for _, k := range o.sortedKeys {
		val, exists := src[k]
		if !exists {
			iss = AppendIssues(iss, Root().Field(k).Issue(CodeRequired, i18n.T(CodeRequired, nil), "key", k))
			if IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		parsed, err := o.fields[k].Decode(ctx, val)
		if err != nil {
			iss = AppendIssues(iss, Root().Field(k).Rebase(IssuesFrom(err, CodeParseError))...)
			if IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[k] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// asObject accepts map[string]any directly and any other map whose key kind is
// string through reflection.
func asObject(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if rv.IsNil() {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// Field widens a decoder's output to any so it can be placed in Fields.
func Field[O any](d Decoder[any, O]) Decoder[any, any] {
	return Func[any, any](func(ctx context.Context, v any) (any, error) {
		out, err := d.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		return out, nil
	})
}
