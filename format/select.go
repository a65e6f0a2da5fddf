package format

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("invalid JSON")

// SelectJSON evaluates a gjson path against an encoded tree and returns the
// raw JSON of the match.
func SelectJSON(data []byte, path string) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", ErrInvalidJSON
	}
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", fmt.Errorf("select %q: no match", path)
	}
	return result.Raw, nil
}
