package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/coursepay/coursepay/docs"
	affiliatehandlers "github.com/coursepay/coursepay/internal/handlers/affiliates"
	audithandlers "github.com/coursepay/coursepay/internal/handlers/audit"
	authhandlers "github.com/coursepay/coursepay/internal/handlers/auth"
	coursehandlers "github.com/coursepay/coursepay/internal/handlers/courses"
	enrollmenthandlers "github.com/coursepay/coursepay/internal/handlers/enrollments"
	payouthandlers "github.com/coursepay/coursepay/internal/handlers/payouts"
	webhookhandlers "github.com/coursepay/coursepay/internal/handlers/webhook"
	"github.com/coursepay/coursepay/internal/service"
	"github.com/coursepay/coursepay/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	HandlePayment(w http.ResponseWriter, r *http.Request)
}

type EnrollmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AffiliateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	UnpaidSummary(w http.ResponseWriter, r *http.Request)
	Enrollments(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
}

type AuditHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
}

type CourseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	WebhookHandler    WebhookHandler
	EnrollmentHandler EnrollmentHandler
	AffiliateHandler  AffiliateHandler
	PayoutHandler     PayoutHandler
	AuditHandler      AuditHandler
	CourseHandler     CourseHandler
}

func New(s *service.Services, webhookKey string) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		WebhookHandler:    webhookhandlers.New(s.EnrollmentService, webhookKey),
		EnrollmentHandler: enrollmenthandlers.New(s.EnrollmentService),
		AffiliateHandler:  affiliatehandlers.New(s.AffiliateService, s.EnrollmentService),
		PayoutHandler:     payouthandlers.New(s.PayoutService),
		AuditHandler:      audithandlers.New(s.AuditService),
		CourseHandler:     coursehandlers.New(s.CourseService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		// The payment gateway authenticates with a shared key, not a JWT.
		r.Post("/webhooks/payment", h.WebhookHandler.HandlePayment)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/enrollments", h.EnrollmentHandler.List)
			r.Route("/courses", func(r chi.Router) {
				r.Post("/", h.CourseHandler.Create)
				r.Get("/", h.CourseHandler.List)
			})
			r.Route("/affiliates", func(r chi.Router) {
				r.Post("/", h.AffiliateHandler.Create)
				r.Get("/", h.AffiliateHandler.List)
				r.Route("/{email}", func(r chi.Router) {
					r.Get("/", h.AffiliateHandler.Get)
					r.Post("/refresh", h.AffiliateHandler.Refresh)
					r.Get("/unpaid-summary", h.AffiliateHandler.UnpaidSummary)
					r.Get("/enrollments", h.AffiliateHandler.Enrollments)
					r.Post("/payouts", h.PayoutHandler.Process)
					r.Get("/payouts", h.PayoutHandler.History)
					r.Get("/payouts/{id}", h.PayoutHandler.Detail)
					r.Get("/audit", h.AuditHandler.Validate)
					r.Post("/audit/recalculate", h.AuditHandler.Recalculate)
				})
			})
		})
	})

	return r
}
