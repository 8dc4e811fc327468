package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EnrollRequest struct {
	FormationID uint `json:"formation_id"`
}

func (req *EnrollRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FormationID, validation.Required),
	)
}

type UpdateProgressRequest struct {
	EnrollmentID uint `json:"enrollment_id"`
	Progress     *int `json:"progress"`
}

func (req *UpdateProgressRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EnrollmentID, validation.Required),
		validation.Field(&req.Progress, validation.NotNil, validation.Min(0), validation.Max(100)),
	)
}

// EnrollmentIDRequest is the body of the operations that only name an
// enrollment.
type EnrollmentIDRequest struct {
	EnrollmentID uint `json:"enrollment_id"`
}

func (req *EnrollmentIDRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EnrollmentID, validation.Required),
	)
}
