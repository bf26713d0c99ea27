package source

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"
)

// JSON parses a single JSON value. Trailing data after the value is an error.
func JSON(data []byte, opts ...Options) (any, error) {
	opt := lastOpt(opts)
	if err := checkSize(data, opt); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, parseError(err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, parseError(err)
	}
	return normalize(v, opt.NumberMode), nil
}
