package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/profutur/profutur-api/docs"
	v1 "github.com/profutur/profutur-api/internal/api/handler/v1"
	"github.com/profutur/profutur-api/internal/api/middleware"
	"github.com/profutur/profutur-api/internal/config"
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/notify"
	"github.com/profutur/profutur-api/internal/repository"
	"github.com/profutur/profutur-api/internal/repository/dao"
	"github.com/profutur/profutur-api/internal/service"
)

const basePath = "/api/v1"

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Exposed for the process lifecycle: hot reload and the cron job.
	Enrollments *service.EnrollmentService
	Reconciler  *service.Reconciler
}

type repositories struct {
	tx           *dao.Transactor
	users        *repository.UserRepository
	formations   *repository.FormationRepository
	enrollments  *repository.EnrollmentRepository
	payments     *repository.PaymentRepository
	certificates *repository.CertificateRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		tx:          dao.NewTransactor(db),
		users:       repository.NewUserRepository(dao.NewUserDAO(db), dao.NewProfileDAO(db)),
		formations:  repository.NewFormationRepository(dao.NewFormationDAO(db)),
		enrollments: repository.NewEnrollmentRepository(dao.NewEnrollmentDAO(db)),
		payments: repository.NewPaymentRepository(
			dao.NewPaymentDAO(db),
			dao.NewTransactionDAO(db),
			dao.NewDonationDAO(db),
		),
		certificates: repository.NewCertificateRepository(dao.NewCertificateDAO(db), dao.NewBlockchainRecordDAO(db)),
	}
}

func NewServer(conf *config.AppConfig, db *gorm.DB, gateway ledger.Gateway, mailer notify.Mailer) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	repos := newRepositories(db)

	userSvc := service.NewUserService(repos.users)
	enrollmentSvc := s.initEnrollmentService(repos, mailer)
	paymentSvc := service.NewPaymentService(
		repos.payments,
		repos.certificates,
		repos.formations,
		repos.users,
		enrollmentSvc,
		repos.tx,
		gateway,
		mailer,
		conf.Payments.Currency,
	)
	formationSvc := service.NewFormationService(repos.formations, repos.enrollments, repos.users, repos.tx)

	s.Enrollments = enrollmentSvc
	s.Reconciler = service.NewReconciler(repos.payments, repos.certificates, paymentSvc, gateway, conf.Payments.PendingExpiry)

	s.MountHandlers(Handlers{
		Auth:        v1.NewAuthHandler(conf.API, service.NewAuthService(repos.users, repos.tx), userSvc),
		Profile:     v1.NewProfileHandler(userSvc),
		Formation:   v1.NewFormationHandler(formationSvc, enrollmentSvc),
		Enrollment:  v1.NewEnrollmentHandler(enrollmentSvc),
		Payment:     v1.NewPaymentHandler(paymentSvc),
		Webhook:     v1.NewWebhookHandler(paymentSvc),
		Healthcheck: v1.NewHealthHandler(service.NewHealthService(repos.tx, gateway)),
	})

	return s
}

func (s *Server) initEnrollmentService(repos *repositories, mailer notify.Mailer) *service.EnrollmentService {
	svc := service.NewEnrollmentService(
		repos.enrollments,
		repos.formations,
		repos.certificates,
		repos.users,
		repos.tx,
		mailer,
		s.Config.API.PublicBaseURL,
	)
	svc.SetEnforceCapacity(s.Config.Enrollment.EnforceCapacity)

	return svc
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

type Handlers struct {
	Auth        *v1.AuthHandler
	Profile     *v1.ProfileHandler
	Formation   *v1.FormationHandler
	Enrollment  *v1.EnrollmentHandler
	Payment     *v1.PaymentHandler
	Webhook     *v1.WebhookHandler
	Healthcheck *v1.HealthHandler
}

func (s *Server) MountHandlers(h Handlers) {
	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth.signup", h.Auth.HandleSignup)
		public.POST("/auth.login", h.Auth.HandleLogin)

		public.GET("/formations.list", h.Formation.HandleList)
		public.GET("/formations.getById", h.Formation.HandleGetByID)
		public.GET("/formations.getEnrollments", h.Formation.HandleGetEnrollments)

		public.GET("/payments.checkPaymentStatus", h.Payment.HandleCheckPaymentStatus)
		public.GET("/payments.verifyCertificate", h.Payment.HandleVerifyCertificate)
		public.GET("/payments.getDonationHistory", h.Payment.HandleGetDonationHistory)
		public.GET("/payments.getPaymentStats", h.Payment.HandleGetPaymentStats)
	}

	optional := s.Router.Group(basePath, authenticator.OptionalJWT())
	{
		optional.POST("/payments.recordDonation", h.Payment.HandleRecordDonation)
	}

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		protected.GET("/auth.me", h.Auth.HandleMe)

		protected.GET("/profiles.getCurrent", h.Profile.HandleGetCurrent)
		protected.GET("/profiles.getStudent", h.Profile.HandleGetStudent)
		protected.GET("/profiles.getCenter", h.Profile.HandleGetCenter)
		protected.GET("/profiles.getAmbassador", h.Profile.HandleGetAmbassador)

		protected.GET("/formations.myEnrollments", h.Formation.HandleMyEnrollments)
		protected.POST("/formations.create", h.Formation.HandleCreate)

		protected.POST("/enrollments.enrollInFormation", h.Enrollment.HandleEnroll)
		protected.POST("/enrollments.updateProgress", h.Enrollment.HandleUpdateProgress)
		protected.POST("/enrollments.issueCertificate", h.Enrollment.HandleIssueCertificate)
		protected.GET("/enrollments.getMyEnrollments", h.Enrollment.HandleGetMyEnrollments)
		protected.POST("/enrollments.dropEnrollment", h.Enrollment.HandleDropEnrollment)

		protected.POST("/payments.initiateMobileMoneyPayment", h.Payment.HandleInitiatePayment)
		protected.POST("/payments.createCertificateNFT", h.Payment.HandleCreateCertificateNFT)
	}

	s.Router.GET(basePath+"/webhooks.health", h.Webhook.HandleHealth)
	webhooks := s.Router.Group(basePath, middleware.VerifySignature(s.Config.Webhooks.Secret))
	{
		webhooks.POST("/webhooks.confirmMobileMoneyPayment", h.Webhook.HandleConfirmPayment)
		webhooks.POST("/webhooks.confirmFormationEnrollment", h.Webhook.HandleConfirmEnrollment)
		webhooks.POST("/webhooks.confirmDonation", h.Webhook.HandleConfirmDonation)
	}

	s.Router.GET("/", h.Healthcheck.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "PROFUTUR API"
	docs.SwaggerInfo.Description = "Formations, enrollments, mobile money payments and ledger-anchored certificates."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
