package model

import "github.com/google/uuid"

// Exercise is a catalog entry, e.g. "Bench Press".
// OwnerID nil means a global system exercise everyone sees and nobody edits.
type Exercise struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Category *string    `json:"category,omitempty"` // e.g. "Push", "Pull", "Legs"
	OwnerID  *uuid.UUID `json:"ownerId,omitempty"`
}

// IsGlobal reports whether the entry belongs to the shared catalog.
func (e Exercise) IsGlobal() bool {
	return e.OwnerID == nil
}

type ExerciseInput struct {
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
}

// ExercisePatch updates only the fields explicitly set.
type ExercisePatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
}
