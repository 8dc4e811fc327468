package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is the role-specific half of a user. Each variant reports the role it
// belongs to so callers can dispatch without comparing role strings.
type Profile interface {
	ProfileRole() Role
	OwnerID() uint
}

type StudentProfile struct {
	ID                  uint      `json:"id"`
	UserID              uint      `json:"user_id"`
	Specialization      string    `json:"specialization"`
	Bio                 string    `json:"bio"`
	Skills              string    `json:"skills"`
	CompletedFormations int       `json:"completed_formations"`
	TotalHoursLearned   int       `json:"total_hours_learned"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (p StudentProfile) ProfileRole() Role { return RoleStudent }
func (p StudentProfile) OwnerID() uint     { return p.UserID }

type CenterProfile struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user_id"`
	CenterName      string          `json:"center_name"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	Phone           string          `json:"phone"`
	Website         string          `json:"website"`
	Logo            string          `json:"logo"`
	TotalStudents   int             `json:"total_students"`
	TotalFormations int             `json:"total_formations"`
	Rating          decimal.Decimal `json:"rating"`
	IsVerified      bool            `json:"is_verified"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (p CenterProfile) ProfileRole() Role { return RoleCenter }
func (p CenterProfile) OwnerID() uint     { return p.UserID }

type AmbassadorStatus string

const (
	AmbassadorActive   AmbassadorStatus = "active"
	AmbassadorInactive AmbassadorStatus = "inactive"
)

type AmbassadorProfile struct {
	ID               uint             `json:"id"`
	UserID           uint             `json:"user_id"`
	NetworkSize      int              `json:"network_size"`
	TotalCommissions decimal.Decimal  `json:"total_commissions"`
	Referrals        int              `json:"referrals"`
	Status           AmbassadorStatus `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (p AmbassadorProfile) ProfileRole() Role { return RoleAmbassador }
func (p AmbassadorProfile) OwnerID() uint     { return p.UserID }

// NewProfile returns the empty profile variant for role, or nil for roles that
// carry no profile.
func NewProfile(role Role, userID uint) Profile {
	switch role {
	case RoleStudent:
		return StudentProfile{UserID: userID}
	case RoleCenter:
		return CenterProfile{UserID: userID, Rating: decimal.Zero}
	case RoleAmbassador:
		return AmbassadorProfile{UserID: userID, TotalCommissions: decimal.Zero, Status: AmbassadorActive}
	}
	return nil
}
