package affiliaterepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/pg"
	"go.uber.org/zap"
)

const affiliateColumns = "id, email, name, commission_rate, total_paid, pending_commissions, total_referrals, last_payout_date, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) scanOne(ctx context.Context, query string, args ...interface{}) (*domain.Affiliate, error) {
	var a domain.Affiliate
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.Email, &a.Name, &a.CommissionRate,
		&a.TotalPaid, &a.PendingCommissions, &a.TotalReferrals,
		&a.LastPayoutDate, &a.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Affiliate, error) {
	query := `
        SELECT ` + affiliateColumns + `
        FROM affiliates
        WHERE email = $1
    `
	affiliate, err := r.scanOne(ctx, query, email)
	if err != nil {
		zap.L().Error("can't find affiliate", zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}

// LockByEmail reads the affiliate row under FOR UPDATE. Must run inside a
// transaction; it is what serializes concurrent payouts per affiliate.
func (r *Repository) LockByEmail(ctx context.Context, email string) (*domain.Affiliate, error) {
	query := `
        SELECT ` + affiliateColumns + `
        FROM affiliates
        WHERE email = $1
        FOR UPDATE
    `
	affiliate, err := r.scanOne(ctx, query, email)
	if err != nil {
		zap.L().Error("can't lock affiliate", zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}

func (r *Repository) Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	query := `
        INSERT INTO affiliates (email, name, commission_rate)
        VALUES ($1, $2, $3)
        RETURNING ` + affiliateColumns + `
    `
	created, err := r.scanOne(ctx, query, affiliate.Email, affiliate.Name, affiliate.CommissionRate)
	if err != nil {
		zap.L().Error("can't create affiliate", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Affiliate, error) {
	query := `
        SELECT ` + affiliateColumns + `
        FROM affiliates
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list affiliates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var affiliates []domain.Affiliate
	for rows.Next() {
		var a domain.Affiliate
		err := rows.Scan(
			&a.ID, &a.Email, &a.Name, &a.CommissionRate,
			&a.TotalPaid, &a.PendingCommissions, &a.TotalReferrals,
			&a.LastPayoutDate, &a.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan affiliate row", zap.Error(err))
			return nil, err
		}
		affiliates = append(affiliates, a)
	}
	return affiliates, nil
}

// UpdateAggregates rewrites the ledger-derived counters. total_paid is
// deliberately not touched here; payouts are its only writer.
func (r *Repository) UpdateAggregates(ctx context.Context, affiliateID int, pendingCommissions float64, totalReferrals int) (*domain.Affiliate, error) {
	query := `
        UPDATE affiliates
        SET pending_commissions = $1, total_referrals = $2
        WHERE id = $3
        RETURNING ` + affiliateColumns + `
    `
	affiliate, err := r.scanOne(ctx, query, pendingCommissions, totalReferrals, affiliateID)
	if err != nil {
		zap.L().Error("can't update affiliate aggregates", zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}

// ApplyPayout shifts amount from pending to paid with SQL-side increments,
// never a read-modify-write.
func (r *Repository) ApplyPayout(ctx context.Context, affiliateID int, amount float64, at time.Time) error {
	query := `
        UPDATE affiliates
        SET total_paid = total_paid + $1,
            pending_commissions = pending_commissions - $1,
            last_payout_date = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, amount, at, affiliateID)
	if err != nil {
		zap.L().Error("can't apply payout to affiliate", zap.Error(err))
		return err
	}
	if tag.RowsAffected() != 1 {
		zap.L().Error("payout applied to no affiliate row", zap.Int("affiliate_id", affiliateID))
		return pgx.ErrNoRows
	}
	return nil
}

// OverwriteTotals replaces both stored totals with ground-truth values.
// Only the audit recalculation path calls this.
func (r *Repository) OverwriteTotals(ctx context.Context, affiliateID int, totalPaid, pendingCommissions float64) (*domain.Affiliate, error) {
	query := `
        UPDATE affiliates
        SET total_paid = $1, pending_commissions = $2
        WHERE id = $3
        RETURNING ` + affiliateColumns + `
    `
	affiliate, err := r.scanOne(ctx, query, totalPaid, pendingCommissions, affiliateID)
	if err != nil {
		zap.L().Error("can't overwrite affiliate totals", zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}
