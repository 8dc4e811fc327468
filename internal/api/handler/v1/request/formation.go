package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"
)

type ListFormationsRequest struct {
	CenterID *uint `form:"center_id"`
}

// IDRequest carries the id of a single record in the query string.
type IDRequest struct {
	ID uint `form:"id"`
}

func (req *IDRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
	)
}

type CreateFormationRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Level       string          `json:"level,omitempty"`
	Duration    int             `json:"duration"`
	Price       decimal.Decimal `json:"price"`
	MaxStudents int             `json:"max_students"`
	Image       string          `json:"image,omitempty"`
}

func (req *CreateFormationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Category, validation.Length(0, 100)),
		validation.Field(&req.Level, validation.In("beginner", "intermediate", "advanced")),
		validation.Field(&req.Duration, validation.Min(0)),
		validation.Field(&req.MaxStudents, validation.Min(0)),
		validation.Field(&req.Image, is.URL),
	)
}
