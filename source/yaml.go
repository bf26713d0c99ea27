package source

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML parses the first document of a YAML stream. An empty stream yields nil.
func YAML(data []byte, opts ...Options) (any, error) {
	opt := lastOpt(opts)
	if err := checkSize(data, opt); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, parseError(err)
	}
	return normalize(node, opt.NumberMode), nil
}
