package models

import (
	"time"
)

// QuizResult is the single latest quiz outcome for a user.
// At most one row exists per user; every save replaces the previous one.
// The three list fields are stored as JSON-encoded text columns.
type QuizResult struct {
	UserID          int       `json:"userId" db:"user_id"`
	SkinType        string    `json:"skinType" db:"skin_type"`
	RoutineLevel    string    `json:"routineLevel" db:"routine_level"`
	Concerns        []string  `json:"concerns" db:"concerns"`
	Allergies       []string  `json:"allergies" db:"allergies"`
	Notes           string    `json:"notes" db:"notes"`
	Recommendations []string  `json:"recommendations" db:"recommendations"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
