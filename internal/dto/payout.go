package dto

import "time"

type ProcessPayoutRequestDTO struct {
	PayoutMethod string     `json:"payout_method" validate:"required" example:"paypal"`
	Currency     string     `json:"currency" validate:"omitempty,len=3" example:"USD"`
	ExternalTxID string     `json:"external_tx_id,omitempty" example:"PAYPAL-8XJ2291"`
	ProofLink    string     `json:"proof_link,omitempty" example:"https://files.example.com/receipts/8xj.pdf"`
	PeriodStart  *time.Time `json:"period_start,omitempty"`
	PeriodEnd    *time.Time `json:"period_end,omitempty"`
}

type PayoutLineItemDTO struct {
	EnrollmentID     int       `json:"enrollment_id" example:"1"`
	CommissionAmount float64   `json:"commission_amount" example:"10"`
	CourseID         string    `json:"course_id" example:"go-fundamentals"`
	CustomerEmail    string    `json:"customer_email" example:"student@example.com"`
	EnrolledAt       time.Time `json:"enrolled_at" example:"2026-01-12T16:09:57+03:00"`
}

type PayoutResponseDTO struct {
	ID             int                 `json:"id" example:"1"`
	Reference      string              `json:"reference" example:"7b7adf85-1d14-4dca-a21e-50c3ff0b1dc7"`
	AffiliateEmail string              `json:"affiliate_email" example:"a@x.com"`
	Amount         float64             `json:"amount" example:"35"`
	Currency       string              `json:"currency" example:"USD"`
	PayoutMethod   string              `json:"payout_method" example:"paypal"`
	ExternalTxID   *string             `json:"external_tx_id,omitempty" example:"PAYPAL-8XJ2291"`
	ProofLink      *string             `json:"proof_link,omitempty"`
	ProcessedBy    string              `json:"processed_by" example:"admin"`
	ProcessedAt    time.Time           `json:"processed_at" example:"2026-01-12T16:09:57+03:00"`
	Status         string              `json:"status" example:"processed"`
	LineItemCount  int                 `json:"line_item_count" example:"3"`
	PeriodStart    *time.Time          `json:"period_start,omitempty"`
	PeriodEnd      *time.Time          `json:"period_end,omitempty"`
	LineItems      []PayoutLineItemDTO `json:"line_items,omitempty"`
}
