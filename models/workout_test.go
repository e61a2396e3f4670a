package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSerializeOmitsUnrecordedComments(t *testing.T) {
	w := Workout{
		Model:  gorm.Model{ID: 7},
		UserID: 1,
		Name:   "Squats",
		Type:   "Legs",
		Weight: "135",
		Reps:   "5",
		Date:   time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(w.Serialize())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &raw))

	_, present := raw["comments"]
	assert.False(t, present, "comments must be absent when not recorded")
	assert.JSONEq(t, `7`, string(raw["id"]))
	assert.JSONEq(t, `"Squats"`, string(raw["name"]))
	assert.JSONEq(t, `"Legs"`, string(raw["type"]))
	assert.JSONEq(t, `"135"`, string(raw["weight"]))
	assert.JSONEq(t, `"5"`, string(raw["reps"]))
}

func TestSerializeKeepsRecordedComments(t *testing.T) {
	comment := "new PR"
	w := Workout{
		Model:    gorm.Model{ID: 7},
		UserID:   1,
		Name:     "Squats",
		Type:     "Legs",
		Weight:   "135",
		Reps:     "5",
		Date:     time.Now(),
		Comments: &comment,
	}

	serialized := w.Serialize()
	require.NotNil(t, serialized.Comments)
	assert.Equal(t, "new PR", *serialized.Comments)
}
