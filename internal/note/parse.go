package note

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmpty is returned when a document holds no notes.
var ErrEmpty = errors.New("no notes in document")

type envelope struct {
	Notes []Note `json:"notes"`
}

// Parse decodes either a single note object or a {"notes": [...]} envelope.
func Parse(data []byte) ([]Note, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding note document: %w", err)
	}

	if _, ok := probe["notes"]; ok {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("decoding notes envelope: %w", err)
		}
		if len(env.Notes) == 0 {
			return nil, ErrEmpty
		}
		for i, n := range env.Notes {
			if n.ID == 0 {
				return nil, fmt.Errorf("note %d: missing id", i)
			}
		}
		return env.Notes, nil
	}

	var n Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decoding note: %w", err)
	}
	if n.ID == 0 {
		return nil, errors.New("note: missing id")
	}
	return []Note{n}, nil
}
