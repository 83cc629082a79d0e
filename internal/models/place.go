package models

import "strings"

type Place struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId,omitempty"`
	Name           string      `json:"name"`
	Type           PlaceType   `json:"type,omitempty"`
	Status         PlaceStatus `json:"status"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	DateVisited    Date        `json:"dateVisited"`
	ExperienceNote string      `json:"experienceNote,omitempty"`
	Mood           Mood        `json:"mood,omitempty"`
	Tags           Tags        `json:"tags"`
	LifePhaseName  string      `json:"lifePhaseName,omitempty"`
}

func (p *Place) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "is required")
	}
	if !p.Status.Valid() {
		return invalid("status", "must be one of the known place statuses")
	}
	if p.Type != "" && !p.Type.Valid() {
		return invalid("type", "must be one of the known place types")
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return invalid("latitude", "must be between -90 and 90")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return invalid("longitude", "must be between -180 and 180")
	}
	if p.Mood != "" && !p.Mood.Valid() {
		return invalid("mood", "must be one of the known moods")
	}
	if p.Tags == nil {
		p.Tags = Tags{}
	}
	return nil
}
