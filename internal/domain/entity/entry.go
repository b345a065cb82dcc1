package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the self-reported mood attached to a journal entry.
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
	MoodAwful   Mood = "awful"
)

// Moods lists every accepted mood value, in scoring order.
var Moods = []Mood{MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodAwful}

// Valid reports whether the mood is one of the accepted values.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}

	return false
}

// Entry is a single journal entry owned by a user.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
