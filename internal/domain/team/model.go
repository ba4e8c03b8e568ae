package team

import "fmt"

// Team is one club squad whose events and roster feed the analytics engine.
type Team struct {
	ID       string
	ClubID   string
	Name     string
	AgeGroup string
	Season   string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.ClubID == "" {
		return fmt.Errorf("team club id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
