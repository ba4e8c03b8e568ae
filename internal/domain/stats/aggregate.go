package stats

import "math"

// ResultSummary is a season total for one partition: the whole team or
// a single performance category.
type ResultSummary struct {
	Wins            int
	Draws           int
	Losses          int
	TotalGames      int
	GoalsFor        int
	GoalsAgainst    int
	GoalDifference  int
	WinRatePct      int
	AvgGoalsPerGame float64
	Points          int
}

// CategorySummary pairs a partition key with its totals.
type CategorySummary struct {
	CategoryID   string
	CategoryName string
	Summary      ResultSummary
}

// Aggregate folds classified outcomes into a summary. The fold builds
// a fresh value each call; nothing shared is mutated, so concurrent
// callers can aggregate the same slice safely.
func Aggregate(outcomes []ClassifiedOutcome) ResultSummary {
	var s ResultSummary
	for _, o := range outcomes {
		switch o.Result {
		case OutcomeWin:
			s.Wins++
		case OutcomeDraw:
			s.Draws++
		case OutcomeLoss:
			s.Losses++
		}
		s.GoalsFor += o.GoalsFor
		s.GoalsAgainst += o.GoalsAgainst
	}

	return finalizeSummary(s)
}

// AggregateByCategory partitions outcomes by attributed category and
// aggregates each partition. Partitions appear in first-seen order so
// recomputation over an unchanged snapshot is bit-identical.
func AggregateByCategory(outcomes []ClassifiedOutcome) []CategorySummary {
	type bucket struct {
		id       string
		name     string
		outcomes []ClassifiedOutcome
	}

	order := make([]string, 0, 4)
	buckets := make(map[string]*bucket, 4)
	for _, o := range outcomes {
		key := o.Attribution.CategoryID + "\x00" + o.Attribution.CategoryName
		b, ok := buckets[key]
		if !ok {
			b = &bucket{id: o.Attribution.CategoryID, name: o.Attribution.CategoryName}
			buckets[key] = b
			order = append(order, key)
		}
		b.outcomes = append(b.outcomes, o)
	}

	out := make([]CategorySummary, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		out = append(out, CategorySummary{
			CategoryID:   b.id,
			CategoryName: b.name,
			Summary:      Aggregate(b.outcomes),
		})
	}

	return out
}

func finalizeSummary(s ResultSummary) ResultSummary {
	s.TotalGames = s.Wins + s.Draws + s.Losses
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	s.Points = s.Wins*3 + s.Draws
	if s.TotalGames > 0 {
		s.WinRatePct = int(math.Round(float64(s.Wins) / float64(s.TotalGames) * 100))
		s.AvgGoalsPerGame = math.Round(float64(s.GoalsFor)/float64(s.TotalGames)*10) / 10
	}

	return s
}
