package stats

// Outcome is the verdict for one team slot of a played event.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLoss Outcome = "loss"
)

// Classify compares a normalized score record. Total function: integers
// always compare, so there is no error case.
func Classify(rec ScoreRecord) Outcome {
	switch {
	case rec.OurScore > rec.OpponentScore:
		return OutcomeWin
	case rec.OurScore < rec.OpponentScore:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// ClassifiedOutcome is one classified slot result carrying enough
// context for both the global and the per-category partitions.
type ClassifiedOutcome struct {
	EventID      string
	Attribution  Attribution
	Result       Outcome
	GoalsFor     int
	GoalsAgainst int
}
