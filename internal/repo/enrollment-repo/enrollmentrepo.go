package enrollmentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/pg"
	"go.uber.org/zap"
)

const enrollmentColumns = `id, course_id, customer_email, amount, payment_id, status, lms_status,
        affiliate_id, affiliate_email, commission_rate, commission_amount,
        commission_eligible, commission_paid, commission_paid_at, payout_id, created_at`

// Unique-index violations surfaced as typed errors so services can map
// them to their own conflict sentinels.
var (
	ErrPaymentIDExists      = errors.New("payment id already recorded")
	ErrLiveEnrollmentExists = errors.New("live enrollment already exists for customer and course")
)

const uniqueViolation = "23505"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var (
		e              domain.Enrollment
		affiliateID    *int
		affiliateEmail *string
		rate, amount   *float64
		eligible, paid bool
		paidAt         *time.Time
		payoutID       *int
	)
	err := row.Scan(
		&e.ID, &e.CourseID, &e.CustomerEmail, &e.Amount, &e.PaymentID, &e.Status, &e.LMSStatus,
		&affiliateID, &affiliateEmail, &rate, &amount,
		&eligible, &paid, &paidAt, &payoutID, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if affiliateID != nil {
		attr := &domain.Attribution{
			AffiliateID: *affiliateID,
			Eligible:    eligible,
			Paid:        paid,
			PaidAt:      paidAt,
			PayoutID:    payoutID,
		}
		if affiliateEmail != nil {
			attr.AffiliateEmail = *affiliateEmail
		}
		if rate != nil {
			attr.CommissionRate = *rate
		}
		if amount != nil {
			attr.CommissionAmount = *amount
		}
		e.Attribution = attr
	}
	return &e, nil
}

func (r *Repository) queryMany(ctx context.Context, query string, args ...interface{}) ([]domain.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			zap.L().Error("can't scan enrollment row", zap.Error(err))
			return nil, err
		}
		enrollments = append(enrollments, *e)
	}
	return enrollments, nil
}

func (r *Repository) FindByPaymentID(ctx context.Context, paymentID string) (*domain.Enrollment, error) {
	query := `
        SELECT ` + enrollmentColumns + `
        FROM enrollments
        WHERE payment_id = $1
    `
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find enrollment by payment id", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}

// FindLive finds a paid or pending enrollment for a customer/course pair.
func (r *Repository) FindLive(ctx context.Context, customerEmail, courseID string) (*domain.Enrollment, error) {
	query := `
        SELECT ` + enrollmentColumns + `
        FROM enrollments
        WHERE customer_email = $1 AND course_id = $2 AND status IN ('paid', 'pending')
    `
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, customerEmail, courseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find live enrollment", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}

func (r *Repository) Save(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
        INSERT INTO enrollments (course_id, customer_email, amount, payment_id, status, lms_status,
            affiliate_id, affiliate_email, commission_rate, commission_amount,
            commission_eligible, commission_paid, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	var (
		affiliateID    *int
		affiliateEmail *string
		rate, amount   *float64
		eligible, paid bool
	)
	if attr := enrollment.Attribution; attr != nil {
		affiliateID = &attr.AffiliateID
		affiliateEmail = &attr.AffiliateEmail
		rate = &attr.CommissionRate
		amount = &attr.CommissionAmount
		eligible = attr.Eligible
		paid = attr.Paid
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			enrollment.CourseID, enrollment.CustomerEmail, enrollment.Amount,
			enrollment.PaymentID, enrollment.Status, enrollment.LMSStatus,
			affiliateID, affiliateEmail, rate, amount,
			eligible, paid, enrollment.CreatedAt,
		).Scan(&enrollment.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				switch pgErr.ConstraintName {
				case "enrollments_payment_id_key":
					return ErrPaymentIDExists
				case "enrollments_customer_course_live_key":
					return ErrLiveEnrollmentExists
				}
			}
			zap.L().Error("can't save enrollment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// SettlePending flips a pending enrollment to paid and queues it for LMS
// provisioning. The status guard makes it a no-op for already-settled rows;
// the rows-affected count tells the caller which case it hit.
func (r *Repository) SettlePending(ctx context.Context, enrollmentID int) (int64, error) {
	query := `
        UPDATE enrollments
        SET status = 'paid', lms_status = 'pending'
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, enrollmentID)
	if err != nil {
		zap.L().Error("can't settle pending enrollment", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Enrollment, error) {
	query := `
        SELECT ` + enrollmentColumns + `
        FROM enrollments
        ORDER BY created_at DESC
    `
	enrollments, err := r.queryMany(ctx, query)
	if err != nil {
		zap.L().Error("can't list enrollments", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

// FindPaidByAffiliate returns every paid enrollment attributed to the
// affiliate, the input for an aggregate refresh.
func (r *Repository) FindPaidByAffiliate(ctx context.Context, affiliateID int) ([]domain.Enrollment, error) {
	query := `
        SELECT ` + enrollmentColumns + `
        FROM enrollments
        WHERE affiliate_id = $1 AND status = 'paid'
        ORDER BY created_at ASC
    `
	enrollments, err := r.queryMany(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't get paid enrollments for affiliate", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

// FindUnpaid returns paid, eligible, not-yet-paid-out enrollments for the
// affiliate, optionally bounded by creation time.
func (r *Repository) FindUnpaid(ctx context.Context, affiliateID int, from, to *time.Time) ([]domain.Enrollment, error) {
	query := `
        SELECT ` + enrollmentColumns + `
        FROM enrollments
        WHERE affiliate_id = $1
          AND status = 'paid'
          AND commission_eligible = TRUE
          AND commission_paid = FALSE
          AND ($2::timestamptz IS NULL OR created_at >= $2)
          AND ($3::timestamptz IS NULL OR created_at <= $3)
        ORDER BY created_at ASC
    `
	enrollments, err := r.queryMany(ctx, query, affiliateID, from, to)
	if err != nil {
		zap.L().Error("can't get unpaid enrollments for affiliate", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

// MarkPaid claims the given enrollments for a payout. The commission_paid
// predicate makes the claim a compare-and-swap; callers must verify the
// affected count matches what they expect.
func (r *Repository) MarkPaid(ctx context.Context, enrollmentIDs []int, payoutID int, at time.Time) (int64, error) {
	query := `
        UPDATE enrollments
        SET commission_paid = TRUE, commission_paid_at = $2, payout_id = $3
        WHERE id = ANY($1) AND commission_paid = FALSE
    `
	tag, err := r.db.Exec(ctx, query, enrollmentIDs, at, payoutID)
	if err != nil {
		zap.L().Error("can't mark enrollments paid", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindForLMSSync returns paid enrollments not yet provisioned in the LMS.
func (r *Repository) FindForLMSSync(ctx context.Context, limit uint32) ([]domain.Enrollment, error) {
	query := `
        SELECT ` + enrollmentColumns + `
        FROM enrollments
        WHERE status = 'paid' AND lms_status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	enrollments, err := r.queryMany(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get enrollments for LMS sync", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

func (r *Repository) UpdateLMSStatus(ctx context.Context, enrollmentID int, status string) error {
	query := `
        UPDATE enrollments
        SET lms_status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, enrollmentID)
	if err != nil {
		zap.L().Error("can't update enrollment lms status", zap.Error(err))
		return err
	}
	return nil
}
