package stats

import (
	"fmt"

	"github.com/clubdeck/clubstats/internal/domain/category"
	"github.com/clubdeck/clubstats/internal/domain/selection"
)

// Attribution names the performance category competing under one team
// slot of an event. CategoryID is empty for the synthetic default slot.
type Attribution struct {
	TeamNumber   int
	CategoryID   string
	CategoryName string
}

// ResolveAttributions maps one event's selection rows to an ordered,
// team-number-deduplicated attribution list. The first row naming a
// team number wins; later duplicates are ignored. An event with no
// rows gets a single synthetic slot 1 labelled with fallbackLabel so
// the normalizer and classifier always have something to process.
func ResolveAttributions(rows []selection.EventSelection, categories map[string]category.PerformanceCategory, fallbackLabel string) []Attribution {
	if len(rows) == 0 {
		if fallbackLabel == "" {
			fallbackLabel = defaultCategoryLabel(1)
		}
		return []Attribution{{TeamNumber: 1, CategoryName: fallbackLabel}}
	}

	seen := make(map[int]struct{}, len(rows))
	out := make([]Attribution, 0, len(rows))
	for _, row := range rows {
		n := row.TeamNumber
		if n < 1 {
			n = 1
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		name := ""
		if cat, ok := categories[row.PerformanceCategoryID]; ok {
			name = cat.Name
		}
		if name == "" {
			name = defaultCategoryLabel(n)
		}

		out = append(out, Attribution{
			TeamNumber:   n,
			CategoryID:   row.PerformanceCategoryID,
			CategoryName: name,
		})
	}

	return out
}

func defaultCategoryLabel(teamNumber int) string {
	return fmt.Sprintf("Team %d", teamNumber)
}
