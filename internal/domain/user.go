package domain

import "time"

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleStudent    Role = "student"
	RoleCenter     Role = "center"
	RoleAmbassador Role = "ambassador"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleStudent, RoleCenter, RoleAmbassador:
		return true
	}
	return false
}

// SelfAssignable reports whether a user may pick r at signup.
func (r Role) SelfAssignable() bool {
	return r.IsValid() && r != RoleAdmin
}

type User struct {
	ID           uint       `json:"id"`
	Email        string     `json:"email"`
	Password     string     `json:"-"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	LastSignedIn *time.Time `json:"last_signed_in,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
