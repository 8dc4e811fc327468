package service

import (
	"errors"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/repository"
)

var (
	ErrValidation      = domain.ErrInvalidInput
	ErrInvalidProvider = domain.ErrUnknownProvider
	ErrConflict        = domain.ErrInvalidTransition
	ErrUnauthorized    = errors.New("caller does not own the resource")
	ErrNotCompleted    = errors.New("formation not completed")
	ErrAlreadyEnrolled = repository.ErrEnrollmentExists
	ErrFormationFull   = repository.ErrFormationFull

	ErrUserNotFound        = repository.ErrUserNotFound
	ErrProfileNotFound     = repository.ErrProfileNotFound
	ErrFormationNotFound   = repository.ErrFormationNotFound
	ErrEnrollmentNotFound  = repository.ErrEnrollmentNotFound
	ErrTransactionNotFound = repository.ErrTransactionNotFound
	ErrCertificateNotFound = repository.ErrCertificateNotFound

	ErrLedgerUnavailable      = ledger.ErrLedgerUnavailable
	ErrLedgerTransaction      = ledger.ErrLedgerTransaction
	ErrPersistenceUnavailable = repository.ErrPersistenceUnavailable

	// errContention is returned when a compare-and-set loop keeps losing.
	errContention = errors.New("too many concurrent updates")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrUserNotFound,
		ErrProfileNotFound,
		ErrFormationNotFound,
		ErrEnrollmentNotFound,
		ErrTransactionNotFound,
		ErrCertificateNotFound,
		repository.ErrDonationNotFound,
		repository.ErrRecordNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
