package payoutservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/pg"
	"github.com/coursepay/coursepay/pkg/money"
	"go.uber.org/zap"
)

type AffiliateRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	LockByEmail(ctx context.Context, email string) (*domain.Affiliate, error)
	ApplyPayout(ctx context.Context, affiliateID int, amount float64, at time.Time) error
}

type EnrollmentRepo interface {
	FindUnpaid(ctx context.Context, affiliateID int, from, to *time.Time) ([]domain.Enrollment, error)
	MarkPaid(ctx context.Context, enrollmentIDs []int, payoutID int, at time.Time) (int64, error)
}

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	FindByID(ctx context.Context, payoutID int) (*domain.Payout, error)
	FindByAffiliateID(ctx context.Context, affiliateID int) ([]domain.Payout, error)
}

type Service struct {
	affiliateRepo  AffiliateRepo
	enrollmentRepo EnrollmentRepo
	payoutRepo     PayoutRepo
	txManager      pg.TXManager
}

func New(affiliateRepo AffiliateRepo, enrollmentRepo EnrollmentRepo, payoutRepo PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		affiliateRepo:  affiliateRepo,
		enrollmentRepo: enrollmentRepo,
		payoutRepo:     payoutRepo,
		txManager:      txManager,
	}
}

const (
	ProcessedStatus = "processed"

	defaultCurrency = "USD"
)

var (
	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrNothingToPayout   = errors.New("nothing to payout")
	ErrInvalidAmount     = errors.New("payout amount must be positive")
	ErrMissingMethod     = errors.New("payout method is required")
	ErrPayoutFailed      = errors.New("payout failed")
)

type ProcessParams struct {
	AffiliateEmail string
	PayoutMethod   string
	Currency       string
	ExternalTxID   string
	ProofLink      string
	ProcessedBy    string
	PeriodStart    *time.Time
	PeriodEnd      *time.Time
}

// Process settles every unpaid eligible commission for the affiliate in
// one transaction: payout record created, enrollments claimed, aggregate
// shifted. Either all three happen or none do. The affiliate row lock
// serializes concurrent attempts, so a second call re-derives an empty
// unpaid set and returns ErrNothingToPayout instead of double-paying.
func (s *Service) Process(ctx context.Context, params ProcessParams) (*domain.Payout, error) {
	if strings.TrimSpace(params.PayoutMethod) == "" {
		return nil, ErrMissingMethod
	}
	currency := params.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	var payout *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		affiliate, err := s.affiliateRepo.LockByEmail(ctx, strings.ToLower(params.AffiliateEmail))
		if err != nil {
			return err
		}
		if affiliate == nil {
			return ErrAffiliateNotFound
		}

		// The summary is re-derived here, under the lock. A caller-held
		// summary may be stale and is never trusted.
		enrollments, err := s.enrollmentRepo.FindUnpaid(ctx, affiliate.ID, params.PeriodStart, params.PeriodEnd)
		if err != nil {
			return err
		}
		if len(enrollments) == 0 {
			return ErrNothingToPayout
		}

		now := time.Now()
		var total float64
		ids := make([]int, 0, len(enrollments))
		items := make([]domain.PayoutLineItem, 0, len(enrollments))
		for _, e := range enrollments {
			total = money.Add(total, e.Attribution.CommissionAmount)
			ids = append(ids, e.ID)
			items = append(items, domain.PayoutLineItem{
				EnrollmentID:     e.ID,
				CommissionAmount: e.Attribution.CommissionAmount,
				CourseID:         e.CourseID,
				CustomerEmail:    e.CustomerEmail,
				EnrolledAt:       e.CreatedAt,
			})
		}
		if total <= 0 {
			return ErrInvalidAmount
		}

		created, err := s.payoutRepo.Create(ctx, &domain.Payout{
			Reference:      uuid.NewString(),
			AffiliateID:    affiliate.ID,
			AffiliateEmail: affiliate.Email,
			Amount:         total,
			Currency:       currency,
			PayoutMethod:   params.PayoutMethod,
			ExternalTxID:   optional(params.ExternalTxID),
			ProofLink:      optional(params.ProofLink),
			ProcessedBy:    params.ProcessedBy,
			ProcessedAt:    now,
			Status:         ProcessedStatus,
			LineItemCount:  len(items),
			PeriodStart:    params.PeriodStart,
			PeriodEnd:      params.PeriodEnd,
			LineItems:      items,
		})
		if err != nil {
			return err
		}

		affected, err := s.enrollmentRepo.MarkPaid(ctx, ids, created.ID, now)
		if err != nil {
			return err
		}
		if affected != int64(len(ids)) {
			// Someone claimed part of the set despite the lock. Abort;
			// the rollback leaves everything unpaid.
			zap.L().Error("payout claim count mismatch",
				zap.Int("expected", len(ids)),
				zap.Int64("affected", affected),
			)
			return ErrPayoutFailed
		}

		if err := s.affiliateRepo.ApplyPayout(ctx, affiliate.ID, total, now); err != nil {
			return err
		}

		payout = created
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAffiliateNotFound),
			errors.Is(err, ErrNothingToPayout),
			errors.Is(err, ErrInvalidAmount):
			return nil, err
		}
		zap.L().Error("payout transaction failed", zap.Error(err))
		return nil, errors.Join(ErrPayoutFailed, err)
	}

	zap.L().Info("payout processed",
		zap.String("affiliate_email", payout.AffiliateEmail),
		zap.String("reference", payout.Reference),
		zap.Float64("amount", payout.Amount),
		zap.Int("line_items", payout.LineItemCount),
	)
	return payout, nil
}

func (s *Service) GetPayouts(ctx context.Context, affiliateEmail string) ([]domain.Payout, error) {
	affiliate, err := s.affiliateRepo.FindByEmail(ctx, strings.ToLower(affiliateEmail))
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	payouts, err := s.payoutRepo.FindByAffiliateID(ctx, affiliate.ID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

func (s *Service) GetPayout(ctx context.Context, payoutID int) (*domain.Payout, error) {
	payout, err := s.payoutRepo.FindByID(ctx, payoutID)
	if err != nil {
		zap.L().Error("failed to fetch payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
