package models

import (
	"time"

	"gorm.io/gorm"
)

// Workout is one exercise-log entry. Weight and Reps stay text columns to
// match the recorded external contract.
type Workout struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Name     string    `gorm:"not null"`
	Type     string    `gorm:"not null"`
	Weight   string    `gorm:"not null"`
	Reps     string    `gorm:"not null"`
	Date     time.Time `gorm:"not null"`
	Comments *string
}

// SerializedWorkout is the external JSON shape of a workout entry.
// Comments is omitted entirely when not recorded, never null or "".
type SerializedWorkout struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Weight   string    `json:"weight"`
	Reps     string    `json:"reps"`
	Date     time.Time `json:"date"`
	Comments *string   `json:"comments,omitempty"`
}

func (w *Workout) Serialize() SerializedWorkout {
	return SerializedWorkout{
		ID:       w.ID,
		Name:     w.Name,
		Type:     w.Type,
		Weight:   w.Weight,
		Reps:     w.Reps,
		Date:     w.Date,
		Comments: w.Comments,
	}
}
