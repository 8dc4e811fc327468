package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

func TestEnrollmentService_EnrollTwice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)

	enrollment, err := env.enrollments.Enroll(ctx, student.ID, f.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentActive, enrollment.Status)
	assert.Zero(t, enrollment.Progress)

	_, err = env.enrollments.Enroll(ctx, student.ID, f.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	stored, err := env.formations.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentStudents)
}

func TestEnrollmentService_EnrollUnknownFormation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.enrollments.Enroll(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrFormationNotFound)
}

func TestEnrollmentService_CapacityPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("off by default", func(t *testing.T) {
		env := newTestEnv(t)
		f := env.newFormation(t, 1)

		for i := 0; i < 2; i++ {
			s := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
			_, err := env.enrollments.Enroll(ctx, s.ID, f.ID)
			require.NoError(t, err)
		}

		stored, err := env.formations.FindByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.CurrentStudents)
	})

	t.Run("enforced", func(t *testing.T) {
		env := newTestEnv(t)
		env.enrollments.SetEnforceCapacity(true)
		f := env.newFormation(t, 1)

		first := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
		_, err := env.enrollments.Enroll(ctx, first.ID, f.ID)
		require.NoError(t, err)

		second := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
		_, err = env.enrollments.Enroll(ctx, second.ID, f.ID)
		assert.ErrorIs(t, err, ErrFormationFull)

		// The rejected enrollment is rolled back with the counter.
		_, err = env.enrollRepo.FindByStudentAndFormation(ctx, second.ID, f.ID)
		assert.ErrorIs(t, err, ErrEnrollmentNotFound)

		// A duplicate is reported as such even when the formation is full.
		_, err = env.enrollments.Enroll(ctx, first.ID, f.ID)
		assert.ErrorIs(t, err, ErrAlreadyEnrolled)

		stored, err := env.formations.FindByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.CurrentStudents)
	})
}

func TestEnrollmentService_UpdateProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)
	enrollment, err := env.enrollments.Enroll(ctx, student.ID, f.ID)
	require.NoError(t, err)

	t.Run("out of range", func(t *testing.T) {
		for _, p := range []int{-1, 101} {
			_, err := env.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, p)
			assert.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := env.enrollments.UpdateProgress(ctx, student.ID+1000, enrollment.ID, 10)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("below 100 stays active", func(t *testing.T) {
		for _, p := range []int{0, 42, 99} {
			updated, err := env.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, p)
			require.NoError(t, err)
			assert.Equal(t, domain.EnrollmentActive, updated.Status)
			assert.Equal(t, p, updated.Progress)
			assert.Nil(t, updated.CompletedAt)
		}
	})

	t.Run("100 completes", func(t *testing.T) {
		updated, err := env.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentCompleted, updated.Status)
		require.NotNil(t, updated.CompletedAt)

		stored, err := env.enrollRepo.FindByID(ctx, enrollment.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentCompleted, stored.Status)
		require.NotNil(t, stored.CompletedAt)
		completedAt := *stored.CompletedAt

		again, err := env.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, 30)
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentCompleted, again.Status)
		assert.Equal(t, domain.MaxProgress, again.Progress)

		stored, err = env.enrollRepo.FindByID(ctx, enrollment.ID)
		require.NoError(t, err)
		assert.True(t, completedAt.Equal(*stored.CompletedAt))
	})
}

func TestEnrollmentService_UpdateProgressOnDropped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)
	enrollment, err := env.enrollments.Enroll(ctx, student.ID, f.ID)
	require.NoError(t, err)

	dropped, err := env.enrollments.DropEnrollment(ctx, student.ID, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentDropped, dropped.Status)

	stored, err := env.formations.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.CurrentStudents)

	_, err = env.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, 50)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.enrollments.DropEnrollment(ctx, student.ID, enrollment.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEnrollmentService_IssueCertificate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("not completed", func(t *testing.T) {
		student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
		f := env.newFormation(t, 0)
		enrollment, err := env.enrollments.Enroll(ctx, student.ID, f.ID)
		require.NoError(t, err)

		for _, p := range []int{0, 50, 99} {
			_, err = env.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, p)
			require.NoError(t, err)

			_, err = env.enrollments.IssueCertificate(ctx, student.ID, enrollment.ID)
			assert.ErrorIs(t, err, ErrNotCompleted)
		}
		assert.Zero(t, env.countRows(t, &dao.Certificate{}))
	})

	t.Run("issued once", func(t *testing.T) {
		student, enrollment := env.finishedEnrollment(t)

		_, err := env.enrollments.IssueCertificate(ctx, student.ID+1000, enrollment.ID)
		assert.ErrorIs(t, err, ErrUnauthorized)

		cert, err := env.enrollments.IssueCertificate(ctx, student.ID, enrollment.ID)
		require.NoError(t, err)
		assert.Regexp(t, `^CERT-\d+-\d+$`, cert.CertificateNumber)
		assert.Equal(t, cert.IssueDate.AddDate(1, 0, 0), cert.ExpiryDate)
		assert.Equal(t, "https://profutur.example.com/verify/"+cert.CertificateNumber, cert.VerificationURL)
		assert.False(t, cert.IsMinted())

		again, err := env.enrollments.IssueCertificate(ctx, student.ID, enrollment.ID)
		require.NoError(t, err)
		assert.Equal(t, cert.CertificateNumber, again.CertificateNumber)

		stored, err := env.enrollRepo.FindByID(ctx, enrollment.ID)
		require.NoError(t, err)
		assert.True(t, stored.CertificateIssued)

		profile, err := env.userSvc.GetStudentProfile(ctx, student.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, profile.CompletedFormations)
		assert.Equal(t, 40, profile.TotalHoursLearned)

		sent := env.mailer.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, student.Email, sent[0].To.Address)
	})
}

func TestEnrollmentService_ActivateFromPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)

	created, err := env.enrollments.ActivateFromPayment(ctx, student.ID, f.ID, "TXN-1-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentActive, created.Status)
	assert.Equal(t, "TXN-1-1", created.PaymentReference)

	same, err := env.enrollments.ActivateFromPayment(ctx, student.ID, f.ID, "TXN-2-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, same.ID)

	stored, err := env.formations.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentStudents)

	completed, err := env.enrollments.ConfirmFromPayment(ctx, student.ID, f.ID, "TXN-1-1", domain.EnrollmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentCompleted, completed.Status)
	assert.Equal(t, domain.MaxProgress, completed.Progress)

	// Never back to active.
	again, err := env.enrollments.ConfirmFromPayment(ctx, student.ID, f.ID, "TXN-1-1", domain.EnrollmentActive)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentCompleted, again.Status)

	_, err = env.enrollments.ConfirmFromPayment(ctx, student.ID, f.ID, "TXN-1-1", domain.EnrollmentDropped)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnrollmentService_GetMyEnrollments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := env.newFormation(t, 0)
	_, err := env.enrollments.Enroll(ctx, student.ID, f.ID)
	require.NoError(t, err)

	enrollments, err := env.enrollments.GetMyEnrollments(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.NotNil(t, enrollments[0].Formation)
	assert.Equal(t, f.Title, enrollments[0].Formation.Title)

	none, err := env.enrollments.GetMyEnrollments(ctx, student.ID+1000)
	require.NoError(t, err)
	assert.Empty(t, none)
}
