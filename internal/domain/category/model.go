package category

// PerformanceCategory is a named squad tier ("A Team", "B Team") that
// can field an independent side within one event.
type PerformanceCategory struct {
	ID          string
	TeamID      string
	Name        string
	Description string
}
