// Package snapshot defines the persisted state of the habit tracker and the
// small helpers every other package shares: deep copies, bounded histories
// and item lookups.
package snapshot

import "maps"

// Push appends v and evicts from the head until the history holds at most
// limit entries. The receiver is never modified.
func (h History) Push(v, limit int) History {
	out := make(History, 0, len(h)+1)
	out = append(out, h...)
	out = append(out, v)
	if limit >= 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// IndexOf returns the position of id in items, or -1.
func IndexOf(items []CycleItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// CompletedIDs returns the ids of completed items in list order.
func CompletedIDs(items []CycleItem) []string {
	ids := []string{}
	for _, it := range items {
		if it.Completed {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// CountCompleted counts completed items.
func CountCompleted(items []CycleItem) int {
	n := 0
	for _, it := range items {
		if it.Completed {
			n++
		}
	}
	return n
}

// AllCompleted reports whether a non-empty list is fully completed.
// Spacers are ignored.
func AllCompleted(items []CycleItem) bool {
	seen := false
	for _, it := range items {
		if it.Spacer {
			continue
		}
		if !it.Completed {
			return false
		}
		seen = true
	}
	return seen
}

// ClosesPerfect reports whether a bounded cycle closing with these items is
// credited at the boundary: every item is completed, so an empty list is
// perfect too.
func ClosesPerfect(items []CycleItem) bool {
	return CountCompleted(items) == len(items)
}

// CloneItems deep-copies an item list, keeping nil as nil.
func CloneItems(items []CycleItem) []CycleItem {
	if items == nil {
		return nil
	}
	out := make([]CycleItem, len(items))
	for i, it := range items {
		out[i] = it
		if it.SubItems != nil {
			out[i].SubItems = append([]SubItem(nil), it.SubItems...)
		}
	}
	return out
}

func cloneHistory(h History) History {
	if h == nil {
		return nil
	}
	return append(History{}, h...)
}

// Clone returns a deep copy that shares no mutable memory with s.
func (s Snapshot) Clone() Snapshot {
	out := s

	out.Daily.Items = CloneItems(s.Daily.Items)
	if s.Daily.History != nil {
		out.Daily.History = make(map[string][]string, len(s.Daily.History))
		for k, ids := range s.Daily.History {
			if ids == nil {
				out.Daily.History[k] = nil
				continue
			}
			out.Daily.History[k] = append([]string{}, ids...)
		}
	}
	out.Weekly.Items = CloneItems(s.Weekly.Items)
	out.Weekly.History = cloneHistory(s.Weekly.History)
	out.Monthly.Items = CloneItems(s.Monthly.Items)
	out.Monthly.History = cloneHistory(s.Monthly.History)
	out.Annual.Items = CloneItems(s.Annual.Items)
	out.Projects = CloneItems(s.Projects)
	out.Billetes = CloneItems(s.Billetes)
	out.Stats.InteractionHistory = cloneHistory(s.Stats.InteractionHistory)

	if s.People != nil {
		out.People = make([]Person, len(s.People))
		for i, p := range s.People {
			out.People[i] = p
			out.People[i].Interactions = maps.Clone(p.Interactions)
			if p.Tasks != nil {
				out.People[i].Tasks = append([]PersonTask{}, p.Tasks...)
			}
		}
	}

	out.Food = s.Food.Clone()
	if s.Forjas != nil {
		out.Forjas = append([]Resource{}, s.Forjas...)
	}
	if s.Leones != nil {
		out.Leones = append([]Resource{}, s.Leones...)
	}
	return out
}

// Clone returns a deep copy of the nutrition state.
func (f Food) Clone() Food {
	out := f
	out.Wheel = CloneItems(f.Wheel)
	out.Bonuses = maps.Clone(f.Bonuses)
	if f.Log != nil {
		out.Log = append([]FoodEntry{}, f.Log...)
	}
	return out
}
