package dao

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/profutur/profutur-api/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLiteInMemory()
	require.NoError(t, err)
	require.NoError(t, InitTables(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

func TestEnrollmentDAO_InsertDuplicatePair(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	d := NewEnrollmentDAO(gdb)

	_, err := d.Insert(ctx, Enrollment{StudentID: 1, FormationID: 2, Status: "active", EnrolledAt: time.Now()})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Enrollment{StudentID: 1, FormationID: 2, Status: "active", EnrolledAt: time.Now()})
	assert.ErrorIs(t, err, ErrEnrollmentExists)
}

func TestEnrollmentDAO_UpdateStateCompareAndSet(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	d := NewEnrollmentDAO(gdb)

	e, err := d.Insert(ctx, Enrollment{StudentID: 1, FormationID: 2, Status: "active", EnrolledAt: time.Now()})
	require.NoError(t, err)

	e.Progress = 50
	require.NoError(t, d.UpdateState(ctx, e, "active"))

	e.Progress = 60
	assert.ErrorIs(t, d.UpdateState(ctx, e, "pending"), ErrEnrollmentChanged)

	found, err := d.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, found.Progress)
}

func TestFormationDAO_IncrementStudents(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	d := NewFormationDAO(gdb)

	f, err := d.Insert(ctx, Formation{CenterID: 1, Title: "Go", MaxStudents: 1, IsActive: true, Price: decimal.NewFromInt(50)})
	require.NoError(t, err)

	require.NoError(t, d.IncrementStudents(ctx, f.ID, true))
	assert.ErrorIs(t, d.IncrementStudents(ctx, f.ID, true), ErrFormationFull)
	require.NoError(t, d.IncrementStudents(ctx, f.ID, false))

	found, err := d.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.CurrentStudents)

	assert.ErrorIs(t, d.IncrementStudents(ctx, 999, true), ErrFormationNotFound)
}

func TestPaymentDAO_CompareAndSetStatus(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	d := NewPaymentDAO(gdb)

	_, err := d.Insert(ctx, MobileMoneyTransaction{
		TransactionID: "TXN-1-1", Provider: "orange", PhoneNumber: "+243810000000",
		Amount: decimal.NewFromInt(10), Currency: "USD", Status: "pending", Purpose: "formation",
	})
	require.NoError(t, err)

	_, err = d.Insert(ctx, MobileMoneyTransaction{
		TransactionID: "TXN-1-1", Provider: "orange", PhoneNumber: "+243810000000",
		Amount: decimal.NewFromInt(10), Currency: "USD", Status: "pending", Purpose: "formation",
	})
	assert.ErrorIs(t, err, ErrTransactionIDExists)

	changed, err := d.CompareAndSetStatus(ctx, "TXN-1-1", "pending", "completed")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = d.CompareAndSetStatus(ctx, "TXN-1-1", "pending", "failed")
	require.NoError(t, err)
	assert.False(t, changed)

	total, err := d.SumAmountByPurpose(ctx, "formation")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(10)))
}

func TestTransactor_RollsBackAndSurvivesDuplicate(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	transactor := NewTransactor(gdb)
	certs := NewCertificateDAO(gdb)
	txs := NewTransactionDAO(gdb)

	_, err := certs.Insert(ctx, Certificate{EnrollmentID: 1, CertificateNumber: "CERT-1", IssueDate: time.Now()})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// The duplicate sits behind a savepoint, so the transaction stays usable.
		_, err := certs.Insert(ctx, Certificate{EnrollmentID: 2, CertificateNumber: "CERT-1", IssueDate: time.Now()})
		require.ErrorIs(t, err, ErrCertificateExists)

		_, err = txs.Insert(ctx, Transaction{Amount: decimal.NewFromInt(5), Type: "payment", Status: "pending", Reference: "TXN-9"})
		require.NoError(t, err)

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	rows, err := txs.ListByReference(ctx, "TXN-9")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCertificateDAO_SetTokenOnce(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	d := NewCertificateDAO(gdb)

	cert, err := d.Insert(ctx, Certificate{EnrollmentID: 1, CertificateNumber: "CERT-1", IssueDate: time.Now()})
	require.NoError(t, err)

	require.NoError(t, d.SetToken(ctx, cert.ID, "0.0.100", "hash-1"))
	assert.ErrorIs(t, d.SetToken(ctx, cert.ID, "0.0.200", "hash-2"), ErrCertificateMinted)

	found, err := d.FindByNumber(ctx, "CERT-1")
	require.NoError(t, err)
	assert.Equal(t, "0.0.100", found.TokenID)
}

func TestProfileDAO_AddCompletedFormationCreatesProfile(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	d := NewProfileDAO(gdb)

	require.NoError(t, d.AddCompletedFormation(ctx, 7, 12))
	require.NoError(t, d.AddCompletedFormation(ctx, 7, 8))

	p, err := d.FindStudentByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, p.CompletedFormations)
	assert.Equal(t, 20, p.TotalHoursLearned)
}

func TestTranslateErr(t *testing.T) {
	assert.Nil(t, translateErr(nil))
	assert.ErrorIs(t, translateErr(gorm.ErrDuplicatedKey), ErrDuplicateKey)
	assert.ErrorIs(t, translateErr(context.DeadlineExceeded), ErrPersistenceUnavailable)
	assert.ErrorIs(t, translateErr(gorm.ErrRecordNotFound), gorm.ErrRecordNotFound)
}
