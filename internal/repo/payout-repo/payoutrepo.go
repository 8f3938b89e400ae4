package payoutrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/pg"
	"go.uber.org/zap"
)

const payoutColumns = `id, reference, affiliate_id, affiliate_email, amount, currency, payout_method,
        external_tx_id, proof_link, processed_by, processed_at, status, line_item_count,
        period_start, period_end`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	err := row.Scan(
		&p.ID, &p.Reference, &p.AffiliateID, &p.AffiliateEmail, &p.Amount, &p.Currency, &p.PayoutMethod,
		&p.ExternalTxID, &p.ProofLink, &p.ProcessedBy, &p.ProcessedAt, &p.Status, &p.LineItemCount,
		&p.PeriodStart, &p.PeriodEnd,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts the payout record and its line items. Callers run it
// inside the payout transaction; the record is immutable afterwards.
func (r *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
        INSERT INTO payouts (reference, affiliate_id, affiliate_email, amount, currency, payout_method,
            external_tx_id, proof_link, processed_by, processed_at, status, line_item_count,
            period_start, period_end)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		payout.Reference, payout.AffiliateID, payout.AffiliateEmail, payout.Amount,
		payout.Currency, payout.PayoutMethod, payout.ExternalTxID, payout.ProofLink,
		payout.ProcessedBy, payout.ProcessedAt, payout.Status, payout.LineItemCount,
		payout.PeriodStart, payout.PeriodEnd,
	).Scan(&payout.ID)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return nil, err
	}

	itemQuery := `
        INSERT INTO payout_line_items (payout_id, enrollment_id, commission_amount, course_id, customer_email, enrolled_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	for i := range payout.LineItems {
		item := &payout.LineItems[i]
		item.PayoutID = payout.ID
		err := r.db.QueryRow(ctx, itemQuery,
			payout.ID, item.EnrollmentID, item.CommissionAmount,
			item.CourseID, item.CustomerEmail, item.EnrolledAt,
		).Scan(&item.ID)
		if err != nil {
			zap.L().Error("can't save payout line item", zap.Error(err))
			return nil, err
		}
	}
	return payout, nil
}

func (r *Repository) FindByID(ctx context.Context, payoutID int) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE id = $1
    `
	payout, err := scanPayout(r.db.QueryRow(ctx, query, payoutID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}

	itemQuery := `
        SELECT id, payout_id, enrollment_id, commission_amount, course_id, customer_email, enrolled_at
        FROM payout_line_items
        WHERE payout_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, itemQuery, payoutID)
	if err != nil {
		zap.L().Error("can't get payout line items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.PayoutLineItem
		err := rows.Scan(&item.ID, &item.PayoutID, &item.EnrollmentID, &item.CommissionAmount,
			&item.CourseID, &item.CustomerEmail, &item.EnrolledAt)
		if err != nil {
			zap.L().Error("can't scan payout line item row", zap.Error(err))
			return nil, err
		}
		payout.LineItems = append(payout.LineItems, item)
	}
	return payout, nil
}

func (r *Repository) FindByAffiliateID(ctx context.Context, affiliateID int) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE affiliate_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("can't get payouts for affiliate", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, *p)
	}
	return payouts, nil
}

// SumProcessedByAffiliate is the ground truth for an affiliate's total
// disbursed amount.
func (r *Repository) SumProcessedByAffiliate(ctx context.Context, affiliateID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payouts
        WHERE affiliate_id = $1 AND status = 'processed'
    `
	var total float64
	err := r.db.QueryRow(ctx, query, affiliateID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum processed payouts", zap.Error(err))
		return 0, err
	}
	return total, nil
}
