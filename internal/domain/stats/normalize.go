package stats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ScoreRecord is one normalized result tuple for a single team slot of
// an event. Downstream components only ever see this shape; the two
// raw encodings are resolved here and nowhere else.
type ScoreRecord struct {
	TeamNumber    int
	OurScore      int
	OpponentScore int
}

// CategoryScore is the preferred, category-aware raw encoding: the
// score map carries team_{n}/opponent_{n} pairs, one per fielded side.
type CategoryScore struct {
	TeamNumber int
	Team       int
	Opponent   int
}

// LegacyHomeAway is the older venue-keyed encoding written by early
// mobile clients. It can only describe the first team slot.
type LegacyHomeAway struct {
	Home int
	Away int
}

// NormalizeScores resolves an event's raw score map into zero or more
// score records, one per attributed team number that has a usable
// encoding. Resolution per slot n:
//
//  1. team_{n} + opponent_{n} both present: category-aware record.
//  2. n == 1 and home + away both present: legacy record, with
//     our/opponent assignment following isHome.
//  3. otherwise the slot is omitted.
//
// Score values are always coerced to integers; a missing or garbled
// value reads as 0.
func NormalizeScores(scores map[string]any, isHome bool, teamNumbers []int) []ScoreRecord {
	if scores == nil || len(teamNumbers) == 0 {
		return nil
	}

	records := make([]ScoreRecord, 0, len(teamNumbers))
	for _, n := range teamNumbers {
		if n < 1 {
			n = 1
		}

		if cs, ok := decodeCategoryScore(scores, n); ok {
			records = append(records, ScoreRecord{
				TeamNumber:    cs.TeamNumber,
				OurScore:      cs.Team,
				OpponentScore: cs.Opponent,
			})
			continue
		}

		if n != 1 {
			continue
		}
		if legacy, ok := decodeLegacyHomeAway(scores); ok {
			records = append(records, legacy.toRecord(isHome))
		}
	}

	return records
}

func decodeCategoryScore(scores map[string]any, teamNumber int) (CategoryScore, bool) {
	teamRaw, teamOK := scores[fmt.Sprintf("team_%d", teamNumber)]
	oppRaw, oppOK := scores[fmt.Sprintf("opponent_%d", teamNumber)]
	if !teamOK || !oppOK {
		return CategoryScore{}, false
	}

	return CategoryScore{
		TeamNumber: teamNumber,
		Team:       coerceScore(teamRaw),
		Opponent:   coerceScore(oppRaw),
	}, true
}

func decodeLegacyHomeAway(scores map[string]any) (LegacyHomeAway, bool) {
	homeRaw, homeOK := scores["home"]
	awayRaw, awayOK := scores["away"]
	if !homeOK || !awayOK {
		return LegacyHomeAway{}, false
	}

	return LegacyHomeAway{
		Home: coerceScore(homeRaw),
		Away: coerceScore(awayRaw),
	}, true
}

func (l LegacyHomeAway) toRecord(isHome bool) ScoreRecord {
	if isHome {
		return ScoreRecord{TeamNumber: 1, OurScore: l.Home, OpponentScore: l.Away}
	}
	return ScoreRecord{TeamNumber: 1, OurScore: l.Away, OpponentScore: l.Home}
}

// coerceScore converts a raw score value to an integer. Values arrive
// as whatever the JSON decoder produced for the stored payload, so
// strings, float64 and json.Number are all expected. Anything that
// does not parse as a base-10 integer reads as 0; concatenation of
// digit strings must never happen.
func coerceScore(raw any) int {
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			return int(parsed)
		}
		return 0
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
