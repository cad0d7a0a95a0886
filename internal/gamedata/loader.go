package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes one of the embedded JSON files into T. Unknown fields are an
// error so that typos in the data files surface at startup.
func Load[T any](filename string) (T, error) {
	var out T

	raw, err := dataFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", filename, err)
	}
	return out, nil
}
