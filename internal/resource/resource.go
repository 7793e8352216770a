// Package resource tracks progress toward numeric goals such as savings or
// effort targets.
package resource

import (
	"errors"
	"fmt"

	"github.com/agusx1211/warrior/internal/snapshot"
)

var ErrUnknownResource = errors.New("unknown resource")

// Progress returns completion as a percentage in [0, 100]. A goal without a
// positive target reports 0.
func Progress(r snapshot.Resource) float64 {
	if r.Target <= 0 {
		return 0
	}
	return max(0, min(100, r.Current/r.Target*100))
}

// Adjust moves Current by delta, clamped to [0, Target].
func Adjust(r snapshot.Resource, delta float64) snapshot.Resource {
	r.Current = max(0, min(max(r.Target, 0), r.Current+delta))
	return r
}

// AdjustIn applies Adjust to the resource with id inside list and returns a
// new list.
func AdjustIn(list []snapshot.Resource, id string, delta float64) ([]snapshot.Resource, error) {
	for i := range list {
		if list[i].ID != id {
			continue
		}
		out := append([]snapshot.Resource{}, list...)
		out[i] = Adjust(out[i], delta)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownResource, id)
}
