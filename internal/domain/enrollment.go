package domain

import (
	"fmt"
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

const MaxProgress = 100

func (s EnrollmentStatus) IsTerminal() bool {
	return s == EnrollmentCompleted || s == EnrollmentDropped
}

type Enrollment struct {
	ID                uint             `json:"id"`
	StudentID         uint             `json:"student_id"`
	FormationID       uint             `json:"formation_id"`
	Status            EnrollmentStatus `json:"status"`
	Progress          int              `json:"progress"`
	EnrolledAt        time.Time        `json:"enrolled_at"`
	CompletedAt       *time.Time       `json:"completed_at,omitempty"`
	CertificateIssued bool             `json:"certificate_issued"`
	PaymentReference  string           `json:"payment_reference,omitempty"`
	Formation         *Formation       `json:"formation,omitempty"`
}

func NewEnrollment(studentID, formationID uint, now time.Time) Enrollment {
	return Enrollment{
		StudentID:   studentID,
		FormationID: formationID,
		Status:      EnrollmentActive,
		EnrolledAt:  now,
	}
}

func ValidateProgress(progress int) error {
	if progress < 0 || progress > MaxProgress {
		return fmt.Errorf("%w: progress %d is outside [0,%d]", ErrInvalidInput, progress, MaxProgress)
	}
	return nil
}

// SetProgress records progress on an active enrollment. Reaching 100 completes
// it. A completed enrollment stays completed at 100 and keeps its first
// completion time.
func (e *Enrollment) SetProgress(progress int, now time.Time) error {
	if err := ValidateProgress(progress); err != nil {
		return err
	}

	switch e.Status {
	case EnrollmentCompleted:
		e.Progress = MaxProgress
		return nil
	case EnrollmentActive:
	default:
		return fmt.Errorf("%w: cannot record progress on a %s enrollment", ErrInvalidTransition, e.Status)
	}

	e.Progress = progress
	if progress == MaxProgress {
		e.markCompleted(now)
	}

	return nil
}

// Activate moves a pending enrollment to active. A dropped enrollment is
// reopened with its progress kept, as the student paid for it again. It
// reports false when the enrollment is already active or completed.
func (e *Enrollment) Activate() (bool, error) {
	switch e.Status {
	case EnrollmentPending, EnrollmentDropped:
		e.Status = EnrollmentActive
		return true, nil
	case EnrollmentActive, EnrollmentCompleted:
		return false, nil
	}
	return false, fmt.Errorf("%w: cannot activate a %s enrollment", ErrInvalidTransition, e.Status)
}

// Complete forces the enrollment to completed with full progress.
func (e *Enrollment) Complete(now time.Time) (bool, error) {
	switch e.Status {
	case EnrollmentCompleted:
		return false, nil
	case EnrollmentPending, EnrollmentActive:
		e.Progress = MaxProgress
		e.markCompleted(now)
		return true, nil
	}
	return false, fmt.Errorf("%w: cannot complete a %s enrollment", ErrInvalidTransition, e.Status)
}

func (e *Enrollment) Drop() error {
	if e.Status != EnrollmentActive {
		return fmt.Errorf("%w: cannot drop a %s enrollment", ErrInvalidTransition, e.Status)
	}
	e.Status = EnrollmentDropped
	return nil
}

func (e *Enrollment) IsFinished() bool {
	return e.Progress == MaxProgress
}

func (e *Enrollment) markCompleted(now time.Time) {
	e.Status = EnrollmentCompleted
	if e.CompletedAt == nil {
		t := now
		e.CompletedAt = &t
	}
}
