package export

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/agusx1211/warrior/internal/snapshot"
)

func status(completed bool) string {
	if completed {
		return "COMPLETED"
	}
	return "PENDING"
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// compact renders v as single-line JSON for the details column.
func compact(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func sortedDays(h map[string][]string) []string {
	days := make([]string, 0, len(h))
	for day := range h {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

func wheelState(items []snapshot.CycleItem) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it.ID] = it.Completed
	}
	return m
}
