package domain

import "time"

type Operator struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Affiliate struct {
	ID                 int        `db:"id"`
	Email              string     `db:"email"`
	Name               string     `db:"name"`
	CommissionRate     float64    `db:"commission_rate"`
	TotalPaid          float64    `db:"total_paid"`
	PendingCommissions float64    `db:"pending_commissions"`
	TotalReferrals     int        `db:"total_referrals"`
	LastPayoutDate     *time.Time `db:"last_payout_date"`
	CreatedAt          time.Time  `db:"created_at"`
}

type Course struct {
	ID              string  `db:"id"`
	Title           string  `db:"title"`
	Price           float64 `db:"price"`
	EnrollmentCount int     `db:"enrollment_count"`
}

// Attribution ties an enrollment to the affiliate who referred it.
// Paid may only flip to true inside a payout transaction.
type Attribution struct {
	AffiliateID      int        `db:"affiliate_id"`
	AffiliateEmail   string     `db:"affiliate_email"`
	CommissionRate   float64    `db:"commission_rate"`
	CommissionAmount float64    `db:"commission_amount"`
	Eligible         bool       `db:"commission_eligible"`
	Paid             bool       `db:"commission_paid"`
	PaidAt           *time.Time `db:"commission_paid_at"`
	PayoutID         *int       `db:"payout_id"`
}

type Enrollment struct {
	ID            int     `db:"id"`
	CourseID      string  `db:"course_id"`
	CustomerEmail string  `db:"customer_email"`
	Amount        float64 `db:"amount"`
	PaymentID     string  `db:"payment_id"`
	Status        string  `db:"status"`
	LMSStatus     string  `db:"lms_status"`
	Attribution   *Attribution
	CreatedAt     time.Time `db:"created_at"`
}

type Payout struct {
	ID             int        `db:"id"`
	Reference      string     `db:"reference"`
	AffiliateID    int        `db:"affiliate_id"`
	AffiliateEmail string     `db:"affiliate_email"`
	Amount         float64    `db:"amount"`
	Currency       string     `db:"currency"`
	PayoutMethod   string     `db:"payout_method"`
	ExternalTxID   *string    `db:"external_tx_id"`
	ProofLink      *string    `db:"proof_link"`
	ProcessedBy    string     `db:"processed_by"`
	ProcessedAt    time.Time  `db:"processed_at"`
	Status         string     `db:"status"`
	LineItemCount  int        `db:"line_item_count"`
	PeriodStart    *time.Time `db:"period_start"`
	PeriodEnd      *time.Time `db:"period_end"`
	LineItems      []PayoutLineItem
}

type PayoutLineItem struct {
	ID               int       `db:"id"`
	PayoutID         int       `db:"payout_id"`
	EnrollmentID     int       `db:"enrollment_id"`
	CommissionAmount float64   `db:"commission_amount"`
	CourseID         string    `db:"course_id"`
	CustomerEmail    string    `db:"customer_email"`
	EnrolledAt       time.Time `db:"enrolled_at"`
}

// UnpaidSummary is a point-in-time view of an affiliate's unpaid eligible
// commissions, used as the input for a payout.
type UnpaidSummary struct {
	AffiliateID      int
	AffiliateEmail   string
	CommissionsCount int
	TotalCommission  float64
	Items            []PayoutLineItem
}
