package backend

import (
	"errors"
	"fmt"
	"github.com/r3labs/diff"
)

var ErrNestedChange = errors.New("cannot send changes of nested fields")

// UpdatePayload turns a changelog of a flat struct into the partial body of
// an update call. Paths are taken from the diff tags.
func UpdatePayload(changes diff.Changelog) (map[string]any, error) {
	payload := make(map[string]any, len(changes))
	for _, ch := range changes {
		if ch.Type != diff.UPDATE {
			return nil, fmt.Errorf("unsupported %s change of %v", ch.Type, ch.Path)
		}
		if len(ch.Path) != 1 {
			return nil, ErrNestedChange
		}
		payload[ch.Path[0]] = ch.To
	}
	return payload, nil
}
