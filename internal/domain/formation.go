package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type Formation struct {
	ID              uint            `json:"id"`
	CenterID        uint            `json:"center_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Level           Level           `json:"level"`
	Duration        int             `json:"duration"` // hours
	Price           decimal.Decimal `json:"price"`
	MaxStudents     int             `json:"max_students"` // 0 means no limit
	CurrentStudents int             `json:"current_students"`
	Image           string          `json:"image"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (f Formation) IsFull() bool {
	return f.MaxStudents > 0 && f.CurrentStudents >= f.MaxStudents
}
