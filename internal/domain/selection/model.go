package selection

// EventSelection links one team slot of an event to a performance
// category. TeamNumber starts at 1 and identifies an independent side
// fielded under the same event.
type EventSelection struct {
	EventID               string
	TeamNumber            int
	PerformanceCategoryID string
}
