package event

import (
	"strings"
	"time"
)

const (
	TypeMatch      = "match"
	TypeFixture    = "fixture"
	TypeFriendly   = "friendly"
	TypeTraining   = "training"
	TypeTournament = "tournament"
	TypeFestival   = "festival"
	TypeSocial     = "social"
)

// Event is one dated team activity: a fixture, training session, or
// other club gathering. Scores is the raw score payload as recorded by
// the club backend; nil means the event has not been played or no
// result was entered, and such events contribute nothing to any
// aggregate.
type Event struct {
	ID        string
	TeamID    string
	Date      time.Time
	Opponent  string
	IsHome    *bool
	Scores    map[string]any
	EventType string
	Location  string
	Notes     string
}

// HasResult reports whether a score payload was recorded. A past event
// without one is skipped, not counted as a loss.
func (e Event) HasResult() bool {
	return e.Scores != nil
}

// HomeVenue resolves the optional IsHome flag. Events recorded without
// a venue are treated as away, matching how the legacy home/away score
// encoding was written by the mobile clients.
func (e Event) HomeVenue() bool {
	return e.IsHome != nil && *e.IsHome
}

func NormalizeType(value string) string {
	t := strings.ToLower(strings.TrimSpace(value))
	if t == "" {
		return TypeMatch
	}
	return t
}

func IsKnownType(value string) bool {
	switch NormalizeType(value) {
	case TypeMatch, TypeFixture, TypeFriendly, TypeTraining, TypeTournament, TypeFestival, TypeSocial:
		return true
	default:
		return false
	}
}
