package service

import (
	"github.com/coursepay/coursepay/internal/handlers/affiliates"
	"github.com/coursepay/coursepay/internal/handlers/audit"
	"github.com/coursepay/coursepay/internal/handlers/auth"
	"github.com/coursepay/coursepay/internal/handlers/courses"
	"github.com/coursepay/coursepay/internal/handlers/payouts"

	pkgauth "github.com/coursepay/coursepay/pkg/auth"

	"github.com/coursepay/coursepay/internal/pg"
	"github.com/coursepay/coursepay/internal/repo"
	affiliateservice "github.com/coursepay/coursepay/internal/service/affiliateservice"
	auditservice "github.com/coursepay/coursepay/internal/service/auditservice"
	authservice "github.com/coursepay/coursepay/internal/service/authservice"
	courseservice "github.com/coursepay/coursepay/internal/service/courseservice"
	enrollmentservice "github.com/coursepay/coursepay/internal/service/enrollmentservice"
	payoutservice "github.com/coursepay/coursepay/internal/service/payoutservice"
)

type Services struct {
	AuthService auth.Service
	// Concrete: the enrollment service backs the webhook, listing and
	// affiliate-enrollment handler interfaces at once.
	EnrollmentService *enrollmentservice.Service
	AffiliateService  affiliates.Service
	PayoutService     payouts.Service
	AuditService      audit.Service
	CourseService     courses.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.OperatorRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	courseService := courseservice.New(repo.CourseRepo)
	affiliateService := affiliateservice.New(repo.AffiliateRepo, repo.EnrollmentRepo)
	enrollmentService := enrollmentservice.New(repo.EnrollmentRepo, repo.AffiliateRepo, affiliateService, courseService)
	payoutService := payoutservice.New(repo.AffiliateRepo, repo.EnrollmentRepo, repo.PayoutRepo, txManager)
	auditService := auditservice.New(repo.AffiliateRepo, repo.EnrollmentRepo, repo.PayoutRepo)

	return &Services{
		AuthService:       authService,
		EnrollmentService: enrollmentService,
		AffiliateService:  affiliateService,
		PayoutService:     payoutService,
		AuditService:      auditService,
		CourseService:     courseService,
	}
}
