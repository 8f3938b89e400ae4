package affiliateservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/pkg/money"
	"github.com/coursepay/coursepay/pkg/validate"
	"go.uber.org/zap"
)

type AffiliateRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error)
	List(ctx context.Context) ([]domain.Affiliate, error)
	UpdateAggregates(ctx context.Context, affiliateID int, pendingCommissions float64, totalReferrals int) (*domain.Affiliate, error)
}

type EnrollmentRepo interface {
	FindPaidByAffiliate(ctx context.Context, affiliateID int) ([]domain.Enrollment, error)
	FindUnpaid(ctx context.Context, affiliateID int, from, to *time.Time) ([]domain.Enrollment, error)
}

type Service struct {
	affiliateRepo  AffiliateRepo
	enrollmentRepo EnrollmentRepo
}

func New(affiliateRepo AffiliateRepo, enrollmentRepo EnrollmentRepo) *Service {
	return &Service{
		affiliateRepo:  affiliateRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

var (
	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrAffiliateExists   = errors.New("affiliate already exists")
	ErrInvalidEmail      = errors.New("invalid affiliate email")
	ErrInvalidRate       = errors.New("commission rate must be between 0 and 100")
)

func (s *Service) Register(ctx context.Context, email, name string, commissionRate float64) (*domain.Affiliate, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validate.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	if commissionRate < 0 || commissionRate > 100 {
		return nil, ErrInvalidRate
	}

	existing, err := s.affiliateRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("affiliate already exists", zap.String("email", email))
		return nil, ErrAffiliateExists
	}

	affiliate, err := s.affiliateRepo.Create(ctx, &domain.Affiliate{
		Email:          email,
		Name:           name,
		CommissionRate: commissionRate,
	})
	if err != nil {
		zap.L().Error("can't create affiliate", zap.Error(err))
		return nil, err
	}
	zap.L().Info("affiliate registered", zap.String("email", email))
	return affiliate, nil
}

func (s *Service) Get(ctx context.Context, email string) (*domain.Affiliate, error) {
	affiliate, err := s.affiliateRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	return affiliate, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Affiliate, error) {
	affiliates, err := s.affiliateRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list affiliates", zap.Error(err))
		return nil, err
	}
	return affiliates, nil
}

// RefreshAggregate recomputes pending_commissions and total_referrals from
// the ledger. total_paid is left alone: payout transactions are its only
// source of truth. Safe to call repeatedly; same inputs, same result.
func (s *Service) RefreshAggregate(ctx context.Context, email string) (*domain.Affiliate, error) {
	affiliate, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.FindPaidByAffiliate(ctx, affiliate.ID)
	if err != nil {
		zap.L().Error("failed to load enrollments for refresh", zap.Error(err))
		return nil, err
	}

	var pending float64
	for _, e := range enrollments {
		attr := e.Attribution
		if attr == nil || !attr.Eligible || attr.Paid {
			continue
		}
		pending = money.Add(pending, attr.CommissionAmount)
	}

	updated, err := s.affiliateRepo.UpdateAggregates(ctx, affiliate.ID, pending, len(enrollments))
	if err != nil {
		zap.L().Error("failed to update affiliate aggregates", zap.Error(err))
		return nil, err
	}
	zap.L().Info("affiliate aggregate refreshed",
		zap.String("email", affiliate.Email),
		zap.Float64("pending_commissions", pending),
		zap.Int("total_referrals", len(enrollments)),
	)
	return updated, nil
}

// GetUnpaidSummary builds the point-in-time unpaid commission view for an
// affiliate, optionally bounded by enrollment creation time. A summary
// with zero commissions is not an error here; callers decide.
func (s *Service) GetUnpaidSummary(ctx context.Context, email string, from, to *time.Time) (*domain.UnpaidSummary, error) {
	affiliate, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.FindUnpaid(ctx, affiliate.ID, from, to)
	if err != nil {
		zap.L().Error("failed to load unpaid enrollments", zap.Error(err))
		return nil, err
	}

	summary := &domain.UnpaidSummary{
		AffiliateID:    affiliate.ID,
		AffiliateEmail: affiliate.Email,
	}
	for _, e := range enrollments {
		summary.CommissionsCount++
		summary.TotalCommission = money.Add(summary.TotalCommission, e.Attribution.CommissionAmount)
		summary.Items = append(summary.Items, domain.PayoutLineItem{
			EnrollmentID:     e.ID,
			CommissionAmount: e.Attribution.CommissionAmount,
			CourseID:         e.CourseID,
			CustomerEmail:    e.CustomerEmail,
			EnrolledAt:       e.CreatedAt,
		})
	}
	return summary, nil
}
