package session

import "strings"

// Views a completed daily item can lead to.
const (
	ViewExercise = "exercise"
	ViewPeople   = "people"
	ViewForjas   = "forjas"
	ViewLeones   = "leones"
	ViewFood     = "food"
)

var followUps = []struct {
	marker string
	view   string
}{
	{"Gim", ViewExercise},
	{"❤️❤️", ViewPeople},
	{"🔥", ViewForjas},
	{"🦁", ViewLeones},
	{"Ayuno", ViewFood},
	{"Menú", ViewFood},
}

// FollowUp names the view to open after a daily item with label is
// completed, or "" when there is none.
func FollowUp(label string) string {
	for _, f := range followUps {
		if strings.Contains(label, f.marker) {
			return f.view
		}
	}
	return ""
}
