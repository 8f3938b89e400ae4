package dto

import "time"

type CreateAffiliateRequestDTO struct {
	Email          string  `json:"email" validate:"required,email" example:"a@x.com"`
	Name           string  `json:"name" validate:"max=255" example:"Alex Partner"`
	CommissionRate float64 `json:"commission_rate" validate:"gte=0,lte=100" example:"10"`
}

type AffiliateResponseDTO struct {
	ID                 int        `json:"id" example:"1"`
	Email              string     `json:"email" example:"a@x.com"`
	Name               string     `json:"name" example:"Alex Partner"`
	CommissionRate     float64    `json:"commission_rate" example:"10"`
	TotalPaid          float64    `json:"total_paid" example:"35"`
	PendingCommissions float64    `json:"pending_commissions" example:"0"`
	TotalReferrals     int        `json:"total_referrals" example:"3"`
	LastPayoutDate     *time.Time `json:"last_payout_date,omitempty"`
}

type UnpaidSummaryResponseDTO struct {
	AffiliateEmail   string                 `json:"affiliate_email" example:"a@x.com"`
	CommissionsCount int                    `json:"commissions_count" example:"3"`
	TotalCommission  float64                `json:"total_commission" example:"35"`
	Items            []UnpaidSummaryItemDTO `json:"items,omitempty"`
}

type UnpaidSummaryItemDTO struct {
	EnrollmentID     int       `json:"enrollment_id" example:"1"`
	CommissionAmount float64   `json:"commission_amount" example:"10"`
	CourseID         string    `json:"course_id" example:"go-fundamentals"`
	CustomerEmail    string    `json:"customer_email" example:"student@example.com"`
	EnrolledAt       time.Time `json:"enrolled_at" example:"2026-01-12T16:09:57+03:00"`
}
