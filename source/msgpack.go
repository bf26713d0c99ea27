package source

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack parses a single MessagePack value.
func MsgPack(data []byte, opts ...Options) (any, error) {
	opt := lastOpt(opts)
	if err := checkSize(data, opt); err != nil {
		return nil, err
	}
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, parseError(err)
	}
	return normalize(v, opt.NumberMode), nil
}
