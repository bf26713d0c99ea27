// Package source turns serialized documents into the untyped values decoders
// consume: map[string]any for objects, []any for arrays, string, bool, nil and
// numbers according to NumberMode.
package source

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/reoring/ctxskema/decode"
	"github.com/reoring/ctxskema/i18n"
)

// NumberMode dictates how numbers are represented after reading.
type NumberMode int

const (
	NumberFloat64 NumberMode = iota // Every number becomes float64 (with potential precision loss).
	NumberJSON                      // Every number becomes json.Number.
)

// Options bundles reading options.
type Options struct {
	NumberMode NumberMode
	MaxBytes   int64 // Reject larger input when > 0.
}

// Format names a supported serialization.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatMsgPack
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMsgPack:
		return "msgpack"
	default:
		return "json"
	}
}

// ParseFormat resolves a format name ("json", "yaml"/"yml", "msgpack"/"mpk").
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "msgpack", "mpk":
		return FormatMsgPack, true
	default:
		return FormatJSON, false
	}
}

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	f, _ := ParseFormat(filepath.Ext(path))
	return f
}

// Read parses data in the given format.
func Read(format Format, data []byte, opts ...Options) (any, error) {
	switch format {
	case FormatYAML:
		return YAML(data, opts...)
	case FormatMsgPack:
		return MsgPack(data, opts...)
	default:
		return JSON(data, opts...)
	}
}

func lastOpt(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

func checkSize(data []byte, opt Options) error {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return decode.Issues{{Path: "/", Code: decode.CodeTruncated, Message: i18n.T(decode.CodeTruncated, nil), Hint: "max bytes exceeded"}}
	}
	return nil
}

func parseError(err error) decode.Issues {
	return decode.Issues{{Path: "/", Code: decode.CodeParseError, Message: i18n.T(decode.CodeParseError, nil) + ": " + err.Error(), Cause: err}}
}

// normalize converts maps with non-string keys and numbers of every kind into
// the shapes decoders expect.
func normalize(v any, mode NumberMode) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv, mode)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = stringKey(k)
			}
			out[ks] = normalize(vv, mode)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalize(t[i], mode)
		}
		return arr
	case json.Number:
		if mode == NumberJSON {
			return t
		}
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return t
		}
		return f
	case float64:
		return number(t, mode)
	case float32:
		return number(float64(t), mode)
	case int:
		return integer(int64(t), mode)
	case int8:
		return integer(int64(t), mode)
	case int16:
		return integer(int64(t), mode)
	case int32:
		return integer(int64(t), mode)
	case int64:
		return integer(t, mode)
	case uint:
		return unsigned(uint64(t), mode)
	case uint8:
		return unsigned(uint64(t), mode)
	case uint16:
		return unsigned(uint64(t), mode)
	case uint32:
		return unsigned(uint64(t), mode)
	case uint64:
		return unsigned(t, mode)
	default:
		return v
	}
}

func number(f float64, mode NumberMode) any {
	if mode == NumberJSON && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return f
}

func integer(i int64, mode NumberMode) any {
	if mode == NumberJSON {
		return json.Number(strconv.FormatInt(i, 10))
	}
	return float64(i)
}

func unsigned(u uint64, mode NumberMode) any {
	if mode == NumberJSON {
		return json.Number(strconv.FormatUint(u, 10))
	}
	return float64(u)
}

// stringKey renders YAML keys such as 1 or true the way they were written.
func stringKey(k any) string {
	switch t := k.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
