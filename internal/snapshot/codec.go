package snapshot

import (
	"encoding/json"
	"fmt"
)

// Key is the single well-known key the whole snapshot is stored under.
const Key = "warrior_habits_v4"

// Partial is a decoded snapshot that may come from an older version. Missing
// lists and maps are nil, missing instants are zero. Fields whose zero value
// is meaningful carry an explicit presence flag.
type Partial struct {
	Snapshot

	// HasInteractionBaseline is false when stats.last_interaction_total was
	// absent from the payload.
	HasInteractionBaseline bool
}

type baselineProbe struct {
	Stats *struct {
		LastInteractionTotal *int `json:"last_interaction_total"`
	} `json:"stats"`
}

// Decode parses a persisted payload. Unknown (obsolete) fields are ignored.
func Decode(data []byte) (Partial, error) {
	var p Partial
	if err := json.Unmarshal(data, &p.Snapshot); err != nil {
		return Partial{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	var probe baselineProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return Partial{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	p.HasInteractionBaseline = probe.Stats != nil && probe.Stats.LastInteractionTotal != nil
	return p, nil
}

// Encode serializes s in the persisted format.
func Encode(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// AsPartial wraps a complete snapshot so it can be fed back to the normalizer.
func AsPartial(s Snapshot) Partial {
	return Partial{Snapshot: s, HasInteractionBaseline: true}
}
