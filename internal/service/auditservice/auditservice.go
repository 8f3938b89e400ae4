package auditservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/pkg/money"
	"go.uber.org/zap"
)

// Tolerance within which stored and recomputed totals count as equal.
const Tolerance = 0.01

type AffiliateRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	OverwriteTotals(ctx context.Context, affiliateID int, totalPaid, pendingCommissions float64) (*domain.Affiliate, error)
}

type EnrollmentRepo interface {
	FindUnpaid(ctx context.Context, affiliateID int, from, to *time.Time) ([]domain.Enrollment, error)
}

type PayoutRepo interface {
	SumProcessedByAffiliate(ctx context.Context, affiliateID int) (float64, error)
}

type Service struct {
	affiliateRepo  AffiliateRepo
	enrollmentRepo EnrollmentRepo
	payoutRepo     PayoutRepo
}

func New(affiliateRepo AffiliateRepo, enrollmentRepo EnrollmentRepo, payoutRepo PayoutRepo) *Service {
	return &Service{
		affiliateRepo:  affiliateRepo,
		enrollmentRepo: enrollmentRepo,
		payoutRepo:     payoutRepo,
	}
}

var ErrAffiliateNotFound = errors.New("affiliate not found")

type Totals struct {
	TotalPaid          float64
	PendingCommissions float64
}

type Report struct {
	AffiliateEmail string
	IsConsistent   bool
	Stored         Totals
	Calculated     Totals
	Discrepancy    Totals
}

type RecalcResult struct {
	Updated bool
	Before  Totals
	After   Totals
}

func (s *Service) groundTruth(ctx context.Context, affiliateID int) (Totals, error) {
	disbursed, err := s.payoutRepo.SumProcessedByAffiliate(ctx, affiliateID)
	if err != nil {
		return Totals{}, err
	}

	enrollments, err := s.enrollmentRepo.FindUnpaid(ctx, affiliateID, nil, nil)
	if err != nil {
		return Totals{}, err
	}
	var unpaid float64
	for _, e := range enrollments {
		unpaid = money.Add(unpaid, e.Attribution.CommissionAmount)
	}

	return Totals{TotalPaid: money.Round(disbursed), PendingCommissions: unpaid}, nil
}

// Validate recomputes the affiliate's totals from payouts and the ledger
// and compares them against the stored aggregate. Read-only.
func (s *Service) Validate(ctx context.Context, email string) (*Report, error) {
	affiliate, err := s.affiliateRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	calculated, err := s.groundTruth(ctx, affiliate.ID)
	if err != nil {
		zap.L().Error("failed to compute ground truth", zap.Error(err))
		return nil, err
	}

	stored := Totals{TotalPaid: affiliate.TotalPaid, PendingCommissions: affiliate.PendingCommissions}
	report := &Report{
		AffiliateEmail: affiliate.Email,
		Stored:         stored,
		Calculated:     calculated,
		Discrepancy: Totals{
			TotalPaid:          money.Sub(stored.TotalPaid, calculated.TotalPaid),
			PendingCommissions: money.Sub(stored.PendingCommissions, calculated.PendingCommissions),
		},
	}
	report.IsConsistent = money.Equal(stored.TotalPaid, calculated.TotalPaid, Tolerance) &&
		money.Equal(stored.PendingCommissions, calculated.PendingCommissions, Tolerance)

	if !report.IsConsistent {
		zap.L().Warn("affiliate aggregate inconsistent",
			zap.String("email", affiliate.Email),
			zap.Float64("total_paid_discrepancy", report.Discrepancy.TotalPaid),
			zap.Float64("pending_discrepancy", report.Discrepancy.PendingCommissions),
		)
	}
	return report, nil
}

// Recalculate overwrites the stored aggregate with ground truth. This is
// the operator-triggered repair tool; nothing calls it automatically.
func (s *Service) Recalculate(ctx context.Context, email string) (*RecalcResult, error) {
	affiliate, err := s.affiliateRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	before := Totals{TotalPaid: affiliate.TotalPaid, PendingCommissions: affiliate.PendingCommissions}
	calculated, err := s.groundTruth(ctx, affiliate.ID)
	if err != nil {
		zap.L().Error("failed to compute ground truth", zap.Error(err))
		return nil, err
	}

	if money.Equal(before.TotalPaid, calculated.TotalPaid, Tolerance) &&
		money.Equal(before.PendingCommissions, calculated.PendingCommissions, Tolerance) {
		return &RecalcResult{Updated: false, Before: before, After: before}, nil
	}

	updated, err := s.affiliateRepo.OverwriteTotals(ctx, affiliate.ID, calculated.TotalPaid, calculated.PendingCommissions)
	if err != nil {
		zap.L().Error("failed to overwrite affiliate totals", zap.Error(err))
		return nil, err
	}

	zap.L().Info("affiliate aggregate recalculated",
		zap.String("email", affiliate.Email),
		zap.Float64("total_paid_before", before.TotalPaid),
		zap.Float64("total_paid_after", updated.TotalPaid),
	)
	return &RecalcResult{
		Updated: true,
		Before:  before,
		After:   Totals{TotalPaid: updated.TotalPaid, PendingCommissions: updated.PendingCommissions},
	}, nil
}
