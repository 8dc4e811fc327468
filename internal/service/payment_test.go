package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/repository"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

func initiate(t *testing.T, env *testEnv, userID, formationID uint, amount int64) domain.MobileMoneyTransaction {
	t.Helper()

	tx, err := env.payments.InitiatePayment(context.Background(), userID, PaymentRequest{
		Amount:      decimal.NewFromInt(amount),
		PhoneNumber: "+243810000000",
		Provider:    "orange",
		FormationID: formationID,
	})
	require.NoError(t, err)

	return tx
}

func TestPaymentService_InitiatePayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			req  PaymentRequest
			err  error
		}{
			{"zero amount", PaymentRequest{Amount: decimal.Zero, PhoneNumber: "1", Provider: "orange", FormationID: f.ID}, ErrValidation},
			{"negative amount", PaymentRequest{Amount: decimal.NewFromInt(-5), PhoneNumber: "1", Provider: "orange", FormationID: f.ID}, ErrValidation},
			{"no phone", PaymentRequest{Amount: decimal.NewFromInt(5), PhoneNumber: " ", Provider: "orange", FormationID: f.ID}, ErrValidation},
			{"unknown provider", PaymentRequest{Amount: decimal.NewFromInt(5), PhoneNumber: "1", Provider: "mpesa", FormationID: f.ID}, ErrInvalidProvider},
			{"unknown formation", PaymentRequest{Amount: decimal.NewFromInt(5), PhoneNumber: "1", Provider: "orange", FormationID: 999}, ErrFormationNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := env.payments.InitiatePayment(ctx, student.ID, tc.req)
				assert.ErrorIs(t, err, tc.err)
			})
		}
		assert.Zero(t, env.countRows(t, &dao.MobileMoneyTransaction{}))
	})

	t.Run("unique pending ids within the same millisecond", func(t *testing.T) {
		frozen := time.UnixMilli(1700000000000)
		env.payments.now = func() time.Time { return frozen }
		defer func() { env.payments.now = time.Now }()

		seen := map[string]bool{}
		for i := 0; i < 4; i++ {
			tx := initiate(t, env, student.ID, f.ID, 50)
			assert.Equal(t, domain.PaymentPending, tx.Status)
			assert.Contains(t, tx.TransactionID, "TXN-1700000000000-")
			assert.False(t, seen[tx.TransactionID], "duplicate id %s", tx.TransactionID)
			seen[tx.TransactionID] = true

			entries, err := env.paymentRepo.ListTransactions(ctx, tx.TransactionID)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, domain.TransactionPayment, entries[0].Type)
			assert.Equal(t, domain.PaymentPending, entries[0].Status)
		}
	})
}

func TestPaymentService_ConfirmPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)

	t.Run("unknown transaction", func(t *testing.T) {
		_, err := env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: "TXN-0-0", Status: domain.PaymentCompleted})
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("idempotent and activates the enrollment", func(t *testing.T) {
		tx := initiate(t, env, student.ID, f.ID, 50)

		for i := 0; i < 2; i++ {
			result, err := env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentCompleted})
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, domain.PaymentCompleted, result.Status)
			assert.Equal(t, i == 0, result.Changed)
		}

		entries, err := env.paymentRepo.ListTransactions(ctx, tx.TransactionID)
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		enrollment, err := env.enrollRepo.FindByStudentAndFormation(ctx, student.ID, f.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentActive, enrollment.Status)
		assert.Equal(t, tx.TransactionID, enrollment.PaymentReference)

		stored, err := env.formations.FindByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.CurrentStudents)
	})

	t.Run("conflicting status", func(t *testing.T) {
		tx := initiate(t, env, student.ID, f.ID, 50)

		_, err := env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentFailed})
		require.NoError(t, err)

		_, err = env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentCompleted})
		assert.ErrorIs(t, err, ErrConflict)

		stored, err := env.paymentRepo.FindMobileMoney(ctx, tx.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentFailed, stored.Status)

		entries, err := env.paymentRepo.ListTransactions(ctx, tx.TransactionID)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("amount mismatch", func(t *testing.T) {
		tx := initiate(t, env, student.ID, f.ID, 50)
		wrong := decimal.NewFromInt(49)

		_, err := env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentCompleted, Amount: &wrong})
		assert.ErrorIs(t, err, ErrValidation)

		stored, err := env.paymentRepo.FindMobileMoney(ctx, tx.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPending, stored.Status)
	})

	t.Run("non terminal status", func(t *testing.T) {
		_, err := env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: "TXN-0-0", Status: domain.PaymentPending})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestPaymentService_ConfirmPaymentReopensDroppedEnrollment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)

	enrollment, err := env.enrollments.Enroll(ctx, student.ID, f.ID)
	require.NoError(t, err)
	_, err = env.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, 30)
	require.NoError(t, err)
	_, err = env.enrollments.DropEnrollment(ctx, student.ID, enrollment.ID)
	require.NoError(t, err)

	tx := initiate(t, env, student.ID, f.ID, 50)
	result, err := env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentCompleted})
	require.NoError(t, err)
	assert.True(t, result.Changed)

	stored, err := env.paymentRepo.FindMobileMoney(ctx, tx.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, stored.Status)

	reopened, err := env.enrollRepo.FindByID(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentActive, reopened.Status)
	assert.Equal(t, 30, reopened.Progress)
	assert.Equal(t, tx.TransactionID, reopened.PaymentReference)

	formation, err := env.formations.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, formation.CurrentStudents)
}

func TestPaymentService_ConfirmPaymentForFullFormation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.enrollments.SetEnforceCapacity(true)

	f := env.newFormation(t, 1)
	first := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	_, err := env.enrollments.Enroll(ctx, first.ID, f.ID)
	require.NoError(t, err)

	late := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	tx := initiate(t, env, late.ID, f.ID, 50)

	result, err := env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentCompleted})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, result.Status)

	entries, err := env.paymentRepo.ListTransactions(ctx, tx.TransactionID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.TransactionRefund, entries[2].Type)
	assert.Equal(t, domain.PaymentPending, entries[2].Status)

	_, err = env.enrollRepo.FindByStudentAndFormation(ctx, late.ID, f.ID)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestPaymentService_ConfirmFormationEnrollment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)
	tx := initiate(t, env, student.ID, f.ID, 50)

	confirmation := EnrollmentConfirmation{TransactionID: tx.TransactionID, FormationID: f.ID, StudentID: student.ID, Status: domain.EnrollmentActive}

	_, err := env.payments.ConfirmFormationEnrollment(ctx, confirmation)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.payments.ConfirmPayment(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentCompleted})
	require.NoError(t, err)

	confirmation.Status = domain.EnrollmentCompleted
	enrollment, err := env.payments.ConfirmFormationEnrollment(ctx, confirmation)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentCompleted, enrollment.Status)

	confirmation.FormationID = f.ID + 1
	_, err = env.payments.ConfirmFormationEnrollment(ctx, confirmation)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPaymentService_CheckPaymentStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)
	tx := initiate(t, env, student.ID, f.ID, 50)

	view, err := env.payments.CheckPaymentStatus(ctx, "TXN-0-0", "orange")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentNotFound, view.Status)

	view, err = env.payments.CheckPaymentStatus(ctx, tx.TransactionID, "orange")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, view.Status)
	require.NotNil(t, view.Amount)
	assert.True(t, view.Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "USD", view.Currency)

	view, err = env.payments.CheckPaymentStatus(ctx, tx.TransactionID, "airtel")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentNotFound, view.Status)

	_, err = env.payments.CheckPaymentStatus(ctx, tx.TransactionID, "mpesa")
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestPaymentService_RecordDonation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.payments.RecordDonation(ctx, nil, DonationRequest{
		Amount:      decimal.NewFromInt(100),
		PhoneNumber: "+243810000000",
		Provider:    "orange",
		Message:     "Keep going",
	})
	require.NoError(t, err)

	assert.True(t, result.Payment.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, domain.PaymentPending, result.Payment.Status)
	assert.Equal(t, domain.PurposeDonation, result.Payment.Purpose)
	assert.Contains(t, result.Payment.TransactionID, "-DONATION")
	assert.True(t, result.Donation.Amount.Equal(decimal.NewFromInt(100)))
	assert.NotEmpty(t, result.Donation.TransactionHash)
	assert.Nil(t, result.Donation.DonorID)

	record, err := env.certRepo.FindRecordByHash(ctx, result.Donation.TransactionHash)
	require.NoError(t, err)
	assert.Equal(t, domain.RecordDonation, record.RecordType)
	assert.True(t, record.Verified)

	t.Run("confirm", func(t *testing.T) {
		_, err := env.payments.ConfirmDonation(ctx, Confirmation{TransactionID: result.Payment.TransactionID, Status: domain.PaymentCompleted})
		require.NoError(t, err)

		donation, err := env.paymentRepo.FindDonation(ctx, result.Payment.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentCompleted, donation.Status)
		assert.Equal(t, result.Donation.TransactionHash, donation.TransactionHash)

		entries, err := env.paymentRepo.ListTransactions(ctx, result.Payment.TransactionID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, domain.TransactionDonation, entries[1].Type)
		assert.Equal(t, domain.PaymentCompleted, entries[1].Status)
	})

	t.Run("confirm a formation payment as donation", func(t *testing.T) {
		student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
		f := env.newFormation(t, 0)
		tx := initiate(t, env, student.ID, f.ID, 50)

		_, err := env.payments.ConfirmDonation(ctx, Confirmation{TransactionID: tx.TransactionID, Status: domain.PaymentCompleted})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

// sameHashGateway anchors every donation under one transaction hash.
type sameHashGateway struct {
	*ledger.MemoryGateway
}

func (g sameHashGateway) RecordDonation(ctx context.Context, donorID uint, amount decimal.Decimal, message string) (ledger.DonationReceipt, error) {
	receipt, err := g.MemoryGateway.RecordDonation(ctx, donorID, amount, message)
	receipt.TransactionHash = "0xfeedface"
	return receipt, err
}

func TestPaymentService_RecordDonationRollsBackOnPersistenceFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.withGateway(sameHashGateway{ledger.NewMemoryGateway()})

	req := DonationRequest{Amount: decimal.NewFromInt(20), PhoneNumber: "+243810000000", Provider: "airtel"}
	_, err := env.payments.RecordDonation(ctx, nil, req)
	require.NoError(t, err)

	models := []any{&dao.MobileMoneyTransaction{}, &dao.Donation{}, &dao.BlockchainRecord{}, &dao.Transaction{}}
	before := make([]int64, len(models))
	for i, m := range models {
		before[i] = env.countRows(t, m)
		assert.EqualValues(t, 1, before[i])
	}

	// The ledger accepts the call, the blockchain record insert then collides.
	_, err = env.payments.RecordDonation(ctx, nil, req)
	assert.ErrorIs(t, err, repository.ErrRecordExists)

	for i, m := range models {
		assert.Equal(t, before[i], env.countRows(t, m), "%T", m)
	}
}

func TestPaymentService_LedgerUnavailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.withGateway(ledger.NewUnavailable(ledger.NetworkTestnet, errors.New("missing operator credentials")))

	_, err := env.payments.RecordDonation(ctx, nil, DonationRequest{
		Amount: decimal.NewFromInt(10), PhoneNumber: "1", Provider: "vodacom",
	})
	assert.ErrorIs(t, err, ErrLedgerUnavailable)

	student, enrollment := env.finishedEnrollment(t)
	_, err = env.payments.CreateCertificateNFT(ctx, student.ID, MintRequest{EnrollmentID: enrollment.ID, FormationTitle: "Go"})
	assert.ErrorIs(t, err, ErrLedgerUnavailable)

	assert.Zero(t, env.countRows(t, &dao.BlockchainRecord{}))
	assert.Zero(t, env.countRows(t, &dao.MobileMoneyTransaction{}))
	assert.Zero(t, env.countRows(t, &dao.Donation{}))

	// Issuance does not depend on the ledger.
	cert, err := env.certRepo.FindByEnrollmentID(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.False(t, cert.IsMinted())
}

func TestPaymentService_CertificateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student, enrollment := env.finishedEnrollment(t)

	cert, err := env.enrollments.IssueCertificate(ctx, student.ID, enrollment.ID)
	require.NoError(t, err)

	minted, err := env.payments.CreateCertificateNFT(ctx, student.ID, MintRequest{
		EnrollmentID:   enrollment.ID,
		FormationTitle: "Go for backend developers",
		CompletionDate: time.Now(),
		Grade:          "A",
	})
	require.NoError(t, err)
	assert.Equal(t, cert.CertificateNumber, minted.Certificate.CertificateNumber)
	assert.NotEmpty(t, minted.TokenID)
	assert.NotEmpty(t, minted.TransactionHash)
	assert.Equal(t, ledger.NetworkLocal, minted.Network)
	assert.False(t, minted.AlreadyMinted)

	verification, err := env.payments.VerifyCertificate(ctx, minted.TokenID, cert.CertificateNumber)
	require.NoError(t, err)
	assert.True(t, verification.IsValid)
	assert.Equal(t, cert.CertificateNumber, verification.Details["certificateNumber"])

	t.Run("minting again returns the same token", func(t *testing.T) {
		again, err := env.payments.CreateCertificateNFT(ctx, student.ID, MintRequest{EnrollmentID: enrollment.ID, FormationTitle: "Go"})
		require.NoError(t, err)
		assert.True(t, again.AlreadyMinted)
		assert.Equal(t, minted.TokenID, again.TokenID)
		assert.Equal(t, int64(1), env.countRows(t, &dao.BlockchainRecord{}))
	})

	t.Run("someone else's enrollment", func(t *testing.T) {
		_, err := env.payments.CreateCertificateNFT(ctx, student.ID+1000, MintRequest{EnrollmentID: enrollment.ID, FormationTitle: "Go"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("wrong token or number", func(t *testing.T) {
		v, err := env.payments.VerifyCertificate(ctx, "0.0.1", cert.CertificateNumber)
		require.NoError(t, err)
		assert.False(t, v.IsValid)

		v, err = env.payments.VerifyCertificate(ctx, minted.TokenID, "CERT-0-0")
		require.NoError(t, err)
		assert.False(t, v.IsValid)
	})

	t.Run("unverified record is checked against the ledger", func(t *testing.T) {
		require.NoError(t, env.db.Model(&dao.BlockchainRecord{}).
			Where("token_id = ?", minted.TokenID).
			Update("verified", false).Error)

		env.gateway.SetOffline(true)
		v, err := env.payments.VerifyCertificate(ctx, minted.TokenID, cert.CertificateNumber)
		require.NoError(t, err)
		assert.False(t, v.IsValid)

		env.gateway.SetOffline(false)
		v, err = env.payments.VerifyCertificate(ctx, minted.TokenID, cert.CertificateNumber)
		require.NoError(t, err)
		assert.True(t, v.IsValid)

		record, err := env.certRepo.FindRecordByTokenID(ctx, minted.TokenID)
		require.NoError(t, err)
		assert.True(t, record.Verified)
	})
}

func TestPaymentService_CreateCertificateNFTNotCompleted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)
	enrollment, err := env.enrollments.Enroll(ctx, student.ID, f.ID)
	require.NoError(t, err)

	_, err = env.payments.CreateCertificateNFT(ctx, student.ID, MintRequest{EnrollmentID: enrollment.ID, FormationTitle: "Go"})
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestPaymentService_PartialMint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student, enrollment := env.finishedEnrollment(t)
	env.gateway.SetFailMint(true)

	_, err := env.payments.CreateCertificateNFT(ctx, student.ID, MintRequest{EnrollmentID: enrollment.ID, FormationTitle: "Go"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLedgerTransaction)

	var partial *ledger.PartialMintError
	require.ErrorAs(t, err, &partial)
	assert.NotEmpty(t, partial.TokenID)
	assert.Zero(t, env.countRows(t, &dao.BlockchainRecord{}))
}

func TestPaymentService_GetDonationHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		_, err := env.payments.RecordDonation(ctx, nil, DonationRequest{
			Amount: decimal.NewFromInt(int64(i)), PhoneNumber: "1", Provider: "airtel",
		})
		require.NoError(t, err)
	}

	for _, limit := range []int{1, 5, 7, 50} {
		history := env.payments.GetDonationHistory(ctx, limit)
		assert.LessOrEqual(t, len(history), limit)
	}
	assert.Len(t, env.payments.GetDonationHistory(ctx, 5), 5)
	assert.Len(t, env.payments.GetDonationHistory(ctx, 0), 7)
}

func TestPaymentService_GetPaymentStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student, enrollment := env.finishedEnrollment(t)
	f, err := env.formations.FindByID(ctx, enrollment.FormationID)
	require.NoError(t, err)
	initiate(t, env, student.ID, f.ID, 50)

	_, err = env.payments.RecordDonation(ctx, nil, DonationRequest{Amount: decimal.NewFromInt(25), PhoneNumber: "1", Provider: "orange"})
	require.NoError(t, err)
	_, err = env.payments.CreateCertificateNFT(ctx, student.ID, MintRequest{EnrollmentID: enrollment.ID, FormationTitle: "Go"})
	require.NoError(t, err)

	stats := env.payments.GetPaymentStats(ctx)
	assert.True(t, stats.TotalDonations.Equal(decimal.NewFromInt(25)), stats.TotalDonations.String())
	assert.True(t, stats.TotalPayments.Equal(decimal.NewFromInt(50)), stats.TotalPayments.String())
	assert.True(t, stats.TotalTransactions.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, int64(1), stats.CertificateCount)
	assert.Equal(t, int64(2), stats.BlockchainRecordCount)
	assert.Equal(t, "USD", stats.Currency)

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	degraded := env.payments.GetPaymentStats(ctx)
	assert.True(t, degraded.TotalTransactions.IsZero())
	assert.Zero(t, degraded.CertificateCount)
	assert.Empty(t, env.payments.GetDonationHistory(ctx, 5))
}
