package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/profutur/profutur-api/internal/db"
	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/notify"
	"github.com/profutur/profutur-api/internal/repository"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

var emailSeq atomic.Int64

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, emailSeq.Add(1))
}

// testEnv wires every service against an in-memory SQLite database and the
// in-process ledger.
type testEnv struct {
	db          *gorm.DB
	users       *repository.UserRepository
	formations  *repository.FormationRepository
	enrollRepo  *repository.EnrollmentRepository
	paymentRepo *repository.PaymentRepository
	certRepo    *repository.CertificateRepository
	tx          *dao.Transactor
	gateway     *ledger.MemoryGateway
	mailer      *notify.LogMailer

	auth        *AuthService
	userSvc     *UserService
	formation   *FormationService
	enrollments *EnrollmentService
	payments    *PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.OpenSQLiteInMemory()
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	env := &testEnv{
		db:          gdb,
		users:       repository.NewUserRepository(dao.NewUserDAO(gdb), dao.NewProfileDAO(gdb)),
		formations:  repository.NewFormationRepository(dao.NewFormationDAO(gdb)),
		enrollRepo:  repository.NewEnrollmentRepository(dao.NewEnrollmentDAO(gdb)),
		paymentRepo: repository.NewPaymentRepository(dao.NewPaymentDAO(gdb), dao.NewTransactionDAO(gdb), dao.NewDonationDAO(gdb)),
		certRepo:    repository.NewCertificateRepository(dao.NewCertificateDAO(gdb), dao.NewBlockchainRecordDAO(gdb)),
		tx:          dao.NewTransactor(gdb),
		gateway:     ledger.NewMemoryGateway(),
		mailer:      notify.NewLogMailer(),
	}

	env.auth = NewAuthService(env.users, env.tx)
	env.userSvc = NewUserService(env.users)
	env.formation = NewFormationService(env.formations, env.enrollRepo, env.users, env.tx)
	env.enrollments = NewEnrollmentService(env.enrollRepo, env.formations, env.certRepo, env.users, env.tx, env.mailer, "https://profutur.example.com")
	env.payments = NewPaymentService(env.paymentRepo, env.certRepo, env.formations, env.users, env.enrollments, env.tx, env.gateway, env.mailer, "USD")

	return env
}

func (e *testEnv) withGateway(g ledger.Gateway) {
	e.payments.ledger = g
}

func (e *testEnv) signup(t *testing.T, email string, role domain.Role) domain.User {
	t.Helper()

	user, err := e.auth.Signup(context.Background(), domain.User{
		Email:    email,
		Password: "Secr3t!pass",
		Name:     "User " + email,
		Role:     role,
	})
	require.NoError(t, err)

	return user
}

func (e *testEnv) newFormation(t *testing.T, maxStudents int) domain.Formation {
	t.Helper()

	center := e.signup(t, uniqueEmail("center"), domain.RoleCenter)
	f, err := e.formation.Create(context.Background(), center.ID, domain.Formation{
		Title:       "Go for backend developers",
		Category:    "programming",
		Level:       domain.LevelIntermediate,
		Duration:    40,
		Price:       decimal.NewFromInt(50),
		MaxStudents: maxStudents,
	})
	require.NoError(t, err)

	return f
}

// finishedEnrollment returns an enrollment of a new student at 100%.
func (e *testEnv) finishedEnrollment(t *testing.T) (domain.User, domain.Enrollment) {
	t.Helper()
	ctx := context.Background()

	student := e.signup(t, uniqueEmail("student"), domain.RoleStudent)
	f := e.newFormation(t, 0)

	enrollment, err := e.enrollments.Enroll(ctx, student.ID, f.ID)
	require.NoError(t, err)
	enrollment, err = e.enrollments.UpdateProgress(ctx, student.ID, enrollment.ID, 100)
	require.NoError(t, err)

	return student, enrollment
}

func (e *testEnv) countRows(t *testing.T, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)

	return n
}
