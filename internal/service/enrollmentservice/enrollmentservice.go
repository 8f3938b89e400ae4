package enrollmentservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/coursepay/coursepay/internal/domain"
	enrollmentrepo "github.com/coursepay/coursepay/internal/repo/enrollment-repo"
	"github.com/coursepay/coursepay/internal/service/commission"
	"github.com/coursepay/coursepay/pkg/money"
	"go.uber.org/zap"
)

type Repo interface {
	FindByPaymentID(ctx context.Context, paymentID string) (*domain.Enrollment, error)
	FindLive(ctx context.Context, customerEmail, courseID string) (*domain.Enrollment, error)
	Save(ctx context.Context, enrollment *domain.Enrollment) error
	SettlePending(ctx context.Context, enrollmentID int) (int64, error)
	FindAll(ctx context.Context) ([]domain.Enrollment, error)
	FindPaidByAffiliate(ctx context.Context, affiliateID int) ([]domain.Enrollment, error)
}

// AffiliateDirectory resolves referral emails. Read-only here: this
// service never creates or mutates affiliate accounts.
type AffiliateDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
}

// AggregateRefresher is the affiliate aggregate's refresh entry point.
type AggregateRefresher interface {
	RefreshAggregate(ctx context.Context, email string) (*domain.Affiliate, error)
}

// CourseNotifier receives "enrollment recorded" notifications so the
// catalog can maintain its own counter projection.
type CourseNotifier interface {
	EnrollmentRecorded(ctx context.Context, courseID string) error
}

type Service struct {
	repo      Repo
	directory AffiliateDirectory
	refresher AggregateRefresher
	courses   CourseNotifier
}

func New(repo Repo, directory AffiliateDirectory, refresher AggregateRefresher, courses CourseNotifier) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		refresher: refresher,
		courses:   courses,
	}
}

const (
	PaidStatus    = "paid"
	PendingStatus = "pending"
	FailedStatus  = "failed"

	LMSNone    = "none"
	LMSPending = "pending"
)

var (
	ErrDuplicatePayment    = errors.New("payment already recorded")
	ErrDuplicateEnrollment = errors.New("customer already enrolled in course")
	ErrUnknownAffiliate    = errors.New("unknown affiliate")
	ErrCommissionMismatch  = errors.New("commission amount does not match rate")
	ErrInvalidAmount       = errors.New("amount must be a non-negative two-decimal value")
	ErrInvalidStatus       = errors.New("status must be paid, pending or failed")
)

type AttributionParams struct {
	AffiliateEmail   string
	CommissionRate   *float64
	CommissionAmount *float64
}

type CreateParams struct {
	CourseID      string
	CustomerEmail string
	Amount        float64
	PaymentID     string
	Status        string
	Attribution   *AttributionParams
}

// Create records one paid course-access event. It is the idempotency
// boundary for duplicate payment webhooks: the second delivery of the same
// paymentID fails with ErrDuplicatePayment and nothing is written. The one
// exception is a paid delivery landing on a pending entry, which settles
// that entry instead of being dropped.
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Enrollment, error) {
	if params.Amount < 0 || !money.IsValid(params.Amount) {
		return nil, ErrInvalidAmount
	}
	switch params.Status {
	case PaidStatus, PendingStatus, FailedStatus:
	default:
		return nil, ErrInvalidStatus
	}
	customerEmail := strings.ToLower(strings.TrimSpace(params.CustomerEmail))

	existing, err := s.repo.FindByPaymentID(ctx, params.PaymentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == PendingStatus && params.Status == PaidStatus {
			return s.settle(ctx, existing)
		}
		zap.L().Info("payment already recorded", zap.String("payment_id", params.PaymentID))
		return nil, ErrDuplicatePayment
	}

	if params.Status != FailedStatus {
		live, err := s.repo.FindLive(ctx, customerEmail, params.CourseID)
		if err != nil {
			return nil, err
		}
		if live != nil {
			zap.L().Info("customer already enrolled",
				zap.String("customer_email", customerEmail),
				zap.String("course_id", params.CourseID),
			)
			return nil, ErrDuplicateEnrollment
		}
	}

	enrollment := &domain.Enrollment{
		CourseID:      params.CourseID,
		CustomerEmail: customerEmail,
		Amount:        params.Amount,
		PaymentID:     params.PaymentID,
		Status:        params.Status,
		LMSStatus:     LMSNone,
		CreatedAt:     time.Now(),
	}
	if params.Status == PaidStatus {
		enrollment.LMSStatus = LMSPending
	}

	if params.Attribution != nil {
		attr, err := s.buildAttribution(ctx, params.Amount, params.Attribution)
		if err != nil {
			return nil, err
		}
		enrollment.Attribution = attr
	}

	if err := s.repo.Save(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, enrollmentrepo.ErrPaymentIDExists):
			return nil, ErrDuplicatePayment
		case errors.Is(err, enrollmentrepo.ErrLiveEnrollmentExists):
			return nil, ErrDuplicateEnrollment
		}
		zap.L().Error("can't save enrollment: ", zap.Error(err))
		return nil, err
	}

	if params.Status == PaidStatus {
		s.recordSideEffects(ctx, enrollment)
	}

	return enrollment, nil
}

// settle promotes a pending entry to paid when its payment finally
// clears. Attribution captured at creation time is kept as-is; going paid
// is what makes it count for aggregates and payouts, so the same side
// effects fire as for an entry born paid.
func (s *Service) settle(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	affected, err := s.repo.SettlePending(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Another delivery settled it first.
		zap.L().Info("payment already recorded", zap.String("payment_id", enrollment.PaymentID))
		return nil, ErrDuplicatePayment
	}

	enrollment.Status = PaidStatus
	enrollment.LMSStatus = LMSPending
	zap.L().Info("pending enrollment settled",
		zap.Int("enrollment_id", enrollment.ID),
		zap.String("payment_id", enrollment.PaymentID),
	)

	s.recordSideEffects(ctx, enrollment)
	return enrollment, nil
}

// buildAttribution resolves the affiliate and settles the commission
// figure. Attribution is always created unpaid and eligible.
func (s *Service) buildAttribution(ctx context.Context, amount float64, params *AttributionParams) (*domain.Attribution, error) {
	affiliateEmail := strings.ToLower(strings.TrimSpace(params.AffiliateEmail))
	affiliate, err := s.directory.FindByEmail(ctx, affiliateEmail)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		zap.L().Info("unknown affiliate", zap.String("affiliate_email", affiliateEmail))
		return nil, ErrUnknownAffiliate
	}

	rate := affiliate.CommissionRate
	if params.CommissionRate != nil {
		rate = *params.CommissionRate
	}

	var commissionAmount float64
	if params.CommissionAmount != nil {
		if !commission.Validate(amount, rate, *params.CommissionAmount) {
			zap.L().Info("commission mismatch",
				zap.Float64("amount", amount),
				zap.Float64("rate", rate),
				zap.Float64("claimed", *params.CommissionAmount),
			)
			return nil, ErrCommissionMismatch
		}
		commissionAmount = *params.CommissionAmount
	} else {
		commissionAmount, err = commission.Calculate(amount, rate)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Attribution{
		AffiliateID:      affiliate.ID,
		AffiliateEmail:   affiliate.Email,
		CommissionRate:   rate,
		CommissionAmount: commissionAmount,
		Eligible:         true,
		Paid:             false,
	}, nil
}

// recordSideEffects runs the post-commit notifications. The ledger entry
// is already persisted; failures here are logged and left to the refresh
// and audit paths to heal, never unwound.
func (s *Service) recordSideEffects(ctx context.Context, enrollment *domain.Enrollment) {
	if enrollment.Attribution != nil {
		if _, err := s.refresher.RefreshAggregate(ctx, enrollment.Attribution.AffiliateEmail); err != nil {
			zap.L().Warn("aggregate refresh after enrollment failed",
				zap.String("affiliate_email", enrollment.Attribution.AffiliateEmail),
				zap.Error(err),
			)
		}
	}
	if err := s.courses.EnrollmentRecorded(ctx, enrollment.CourseID); err != nil {
		zap.L().Warn("course enrollment notification failed",
			zap.String("course_id", enrollment.CourseID),
			zap.Error(err),
		)
	}
}

func (s *Service) GetEnrollments(ctx context.Context) ([]domain.Enrollment, error) {
	enrollments, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get enrollments", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

func (s *Service) GetAffiliateEnrollments(ctx context.Context, affiliateID int) ([]domain.Enrollment, error) {
	enrollments, err := s.repo.FindPaidByAffiliate(ctx, affiliateID)
	if err != nil {
		zap.L().Error("failed to get affiliate enrollments", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}
