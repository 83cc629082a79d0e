package models

import (
	"fmt"
	"strings"
)

// Mood is the emotional valence attached to most entries.
type Mood string

const (
	MoodVeryHappy Mood = "VERY_HAPPY"
	MoodHappy     Mood = "HAPPY"
	MoodNeutral   Mood = "NEUTRAL"
	MoodSad       Mood = "SAD"
	MoodVerySad   Mood = "VERY_SAD"
	MoodStressed  Mood = "STRESSED"
	MoodCalm      Mood = "CALM"
)

// AllMoods lists every mood in display order.
var AllMoods = []Mood{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad, MoodStressed, MoodCalm}

// ParseMood accepts the wire form case-insensitively.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

func (m Mood) Valid() bool {
	_, _, ok := m.describe()
	return ok
}

func (m Mood) Label() string {
	label, _, _ := m.describe()
	return label
}

func (m Mood) Icon() string {
	_, icon, _ := m.describe()
	return icon
}

// describe is the single mapping for moods. Adding a constant without a
// case here makes Valid report false and fails the mapping test.
func (m Mood) describe() (label, icon string, ok bool) {
	switch m {
	case MoodVeryHappy:
		return "Very happy", "😄", true
	case MoodHappy:
		return "Happy", "🙂", true
	case MoodNeutral:
		return "Neutral", "😐", true
	case MoodSad:
		return "Sad", "😢", true
	case MoodVerySad:
		return "Very sad", "😭", true
	case MoodStressed:
		return "Stressed", "😰", true
	case MoodCalm:
		return "Calm", "😌", true
	}
	return "", "", false
}
