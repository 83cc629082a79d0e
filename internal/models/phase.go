package models

import "strings"

// LifePhase is a named period of life other entries can be grouped under
// via their LifePhaseName.
type LifePhase struct {
	ID          string `json:"id"`
	UserID      string `json:"userId,omitempty"`
	Name        string `json:"name"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
	Description string `json:"description,omitempty"`
}

func (p *LifePhase) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "is required")
	}
	if p.StartDate.IsZero() {
		return invalid("startDate", "is required")
	}
	if !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate.Time) {
		return invalid("endDate", "must not be before startDate")
	}
	return nil
}
