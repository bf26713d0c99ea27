package decode

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// renderValue formats a rejected value for messages. JSON is used where the
// value can be marshalled so strings are quoted and objects stay readable.
func renderValue(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
