package pkg

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// objectEntry is one key/value pair of a JSON object, in document order. The standard decoding of
// a JSON object into a Go map discards key order, but match reporting follows the encounter order
// of the manifest and lock files, so objects are walked token by token instead.
type objectEntry struct {
	key string
	raw json.RawMessage
}

func decodeOrderedObject(raw []byte) ([]objectEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, found %v", tok)
	}

	var entries []objectEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, found %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		entries = append(entries, objectEntry{key: key, raw: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return entries, nil
}
