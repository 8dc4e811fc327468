package repository

import "github.com/profutur/profutur-api/internal/repository/dao"

var (
	ErrUserEmailExists        = dao.ErrUserEmailExists
	ErrUserNotFound           = dao.ErrUserNotFound
	ErrProfileNotFound        = dao.ErrProfileNotFound
	ErrFormationNotFound      = dao.ErrFormationNotFound
	ErrFormationFull          = dao.ErrFormationFull
	ErrEnrollmentExists       = dao.ErrEnrollmentExists
	ErrEnrollmentNotFound     = dao.ErrEnrollmentNotFound
	ErrEnrollmentChanged      = dao.ErrEnrollmentChanged
	ErrTransactionIDExists    = dao.ErrTransactionIDExists
	ErrTransactionNotFound    = dao.ErrTransactionNotFound
	ErrDonationNotFound       = dao.ErrDonationNotFound
	ErrRecordExists           = dao.ErrRecordExists
	ErrRecordNotFound         = dao.ErrRecordNotFound
	ErrCertificateExists      = dao.ErrCertificateExists
	ErrCertificateNotFound    = dao.ErrCertificateNotFound
	ErrCertificateMinted      = dao.ErrCertificateMinted
	ErrPersistenceUnavailable = dao.ErrPersistenceUnavailable
)
