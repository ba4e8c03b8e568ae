package stats

import (
	"github.com/clubdeck/clubstats/internal/domain/category"
	"github.com/clubdeck/clubstats/internal/domain/event"
	"github.com/clubdeck/clubstats/internal/domain/selection"
)

// Snapshot is everything the engine reads: a team's played events, the
// event-to-category selections, the category records, and the team's
// own name for the synthetic default slot. The engine never mutates
// any of it.
type Snapshot struct {
	TeamName   string
	Events     []event.Event
	Selections []selection.EventSelection
	Categories []category.PerformanceCategory
}

// SlotResult is one classified team slot of one event, kept so event
// listings can show a W/D/L badge per fielded side.
type SlotResult struct {
	EventID       string
	TeamNumber    int
	CategoryID    string
	CategoryName  string
	OurScore      int
	OpponentScore int
	Result        Outcome
}

// TeamAnalytics is the full derived view for one team.
type TeamAnalytics struct {
	Overall     ResultSummary
	Categories  []CategorySummary
	SlotResults []SlotResult
}

// Compute turns a snapshot into aggregates. Pure and idempotent:
// calling it twice on the same snapshot yields identical output, and
// it cannot fail — events with no recorded scores contribute nothing
// and unresolvable slots are dropped.
func Compute(snap Snapshot) TeamAnalytics {
	categoryIndex := make(map[string]category.PerformanceCategory, len(snap.Categories))
	for _, cat := range snap.Categories {
		categoryIndex[cat.ID] = cat
	}

	selectionsByEvent := make(map[string][]selection.EventSelection, len(snap.Events))
	for _, row := range snap.Selections {
		selectionsByEvent[row.EventID] = append(selectionsByEvent[row.EventID], row)
	}

	outcomes := make([]ClassifiedOutcome, 0, len(snap.Events))
	slots := make([]SlotResult, 0, len(snap.Events))
	for _, e := range snap.Events {
		if !e.HasResult() {
			continue
		}

		attributions := ResolveAttributions(selectionsByEvent[e.ID], categoryIndex, snap.TeamName)
		teamNumbers := make([]int, 0, len(attributions))
		byNumber := make(map[int]Attribution, len(attributions))
		for _, attr := range attributions {
			teamNumbers = append(teamNumbers, attr.TeamNumber)
			byNumber[attr.TeamNumber] = attr
		}

		for _, rec := range NormalizeScores(e.Scores, e.HomeVenue(), teamNumbers) {
			attr := byNumber[rec.TeamNumber]
			result := Classify(rec)

			outcomes = append(outcomes, ClassifiedOutcome{
				EventID:      e.ID,
				Attribution:  attr,
				Result:       result,
				GoalsFor:     rec.OurScore,
				GoalsAgainst: rec.OpponentScore,
			})
			slots = append(slots, SlotResult{
				EventID:       e.ID,
				TeamNumber:    rec.TeamNumber,
				CategoryID:    attr.CategoryID,
				CategoryName:  attr.CategoryName,
				OurScore:      rec.OurScore,
				OpponentScore: rec.OpponentScore,
				Result:        result,
			})
		}
	}

	return TeamAnalytics{
		Overall:     Aggregate(outcomes),
		Categories:  AggregateByCategory(outcomes),
		SlotResults: slots,
	}
}
