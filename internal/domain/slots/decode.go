package slots

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
)

// Decode accepts either a bare array of strings or an object carrying
// the array under "slots". A missing or null list decodes as empty.
// Null or empty entries are rejected: "" is the placeholder value.
func Decode(body []byte) ([]Slot, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body: %w", httperr.ErrBusiness(httperr.CodeInvalidResponse))
	}

	switch trimmed[0] {
	case '[':
		var raw []*string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("decode slot array: %v: %w", err, httperr.ErrBusiness(httperr.CodeInvalidResponse))
		}
		return toSlots(raw)

	case '{':
		var wrapped struct {
			Slots *[]*string `json:"slots"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decode slot object: %v: %w", err, httperr.ErrBusiness(httperr.CodeInvalidResponse))
		}
		if wrapped.Slots == nil {
			return []Slot{}, nil
		}
		return toSlots(*wrapped.Slots)

	case 'n':
		if bytes.Equal(trimmed, []byte("null")) {
			return []Slot{}, nil
		}
	}

	return nil, fmt.Errorf("unexpected response %.32q: %w", trimmed, httperr.ErrBusiness(httperr.CodeInvalidResponse))
}

func toSlots(raw []*string) ([]Slot, error) {
	out := make([]Slot, 0, len(raw))
	for i, s := range raw {
		if s == nil {
			return nil, fmt.Errorf("slot %d is null: %w", i, httperr.ErrBusiness(httperr.CodeInvalidResponse))
		}
		if *s == "" {
			return nil, fmt.Errorf("slot %d is empty: %w", i, httperr.ErrBusiness(httperr.CodeInvalidResponse))
		}
		out = append(out, Slot(*s))
	}
	return out, nil
}
