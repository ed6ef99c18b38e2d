package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is owned data's anchor: workouts and private exercises hang off it.
// Identity itself lives with the external provider; AuthID is the join key.
type User struct {
	ID          uuid.UUID  `json:"id"`
	AuthID      string     `json:"authId"`
	Email       string     `json:"email"`
	Username    *string    `json:"username,omitempty"`
	Role        Role       `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// UserPatch applies only the fields that are set. ID, auth id, role and email
// are never patchable through the lifecycle path.
type UserPatch struct {
	Username *string `json:"username,omitempty"`
}
