package dto

import "time"

// PaymentWebhookRequestDTO is the payment gateway's settlement
// notification. Delivery is at-least-once.
type PaymentWebhookRequestDTO struct {
	PaymentID        string   `json:"payment_id" validate:"required" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
	CourseID         string   `json:"course_id" validate:"required" example:"go-fundamentals"`
	CustomerEmail    string   `json:"customer_email" validate:"required,email" example:"student@example.com"`
	Amount           float64  `json:"amount" validate:"gte=0" example:"100"`
	Status           string   `json:"status" validate:"required,oneof=paid pending failed" example:"paid"`
	AffiliateEmail   string   `json:"affiliate_email,omitempty" validate:"omitempty,email" example:"a@x.com"`
	CommissionRate   *float64 `json:"commission_rate,omitempty" example:"10"`
	CommissionAmount *float64 `json:"commission_amount,omitempty" example:"10"`
}

type PaymentWebhookResponseDTO struct {
	Message      string `json:"message"`
	EnrollmentID int    `json:"enrollment_id,omitempty"`
}

type AttributionDTO struct {
	AffiliateEmail   string     `json:"affiliate_email" example:"a@x.com"`
	CommissionRate   float64    `json:"commission_rate" example:"10"`
	CommissionAmount float64    `json:"commission_amount" example:"10"`
	Eligible         bool       `json:"eligible" example:"true"`
	Paid             bool       `json:"paid" example:"false"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	PayoutID         *int       `json:"payout_id,omitempty"`
}

type EnrollmentResponseDTO struct {
	ID            int             `json:"id" example:"1"`
	CourseID      string          `json:"course_id" example:"go-fundamentals"`
	CustomerEmail string          `json:"customer_email" example:"student@example.com"`
	Amount        float64         `json:"amount" example:"100"`
	PaymentID     string          `json:"payment_id" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
	Status        string          `json:"status" example:"paid"`
	LMSStatus     string          `json:"lms_status,omitempty" example:"synced"`
	Attribution   *AttributionDTO `json:"attribution,omitempty"`
	CreatedAt     time.Time       `json:"created_at" example:"2026-01-12T16:09:57+03:00"`
}
