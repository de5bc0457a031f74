// Package output serializes engine snapshots.
package output

import "encoding/json"

// ToJSON serializes a value to JSON, optionally pretty-printed.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
