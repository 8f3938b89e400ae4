package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/dto"
	"github.com/coursepay/coursepay/internal/service/enrollmentservice"
	"github.com/coursepay/coursepay/pkg/utils"
	"github.com/coursepay/coursepay/pkg/validate"
)

// KeyHeader carries the shared secret the payment gateway is configured
// to send with every webhook delivery.
const KeyHeader = "X-Webhook-Key"

type Service interface {
	Create(ctx context.Context, params enrollmentservice.CreateParams) (*domain.Enrollment, error)
}

type WebhookHandler struct {
	enrollmentService Service
	webhookKey        string
}

func New(enrollmentService Service, webhookKey string) *WebhookHandler {
	return &WebhookHandler{
		enrollmentService: enrollmentService,
		webhookKey:        webhookKey,
	}
}

// HandlePayment godoc
//
//	@Summary		Record a settled payment
//	@Description	Payment gateway webhook. Creates a ledger entry for the enrollment, computing affiliate commission when a referral email is attached. Deliveries are at-least-once: a repeated payment_id is acknowledged with 200 and recorded exactly once.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Key	header		string							true	"Shared webhook key"
//	@Param			request			body		dto.PaymentWebhookRequestDTO	true	"Payment settlement payload"
//	@Success		201				{object}	dto.PaymentWebhookResponseDTO	"Enrollment recorded"
//	@Success		200				{object}	dto.PaymentWebhookResponseDTO	"Payment already recorded"
//	@Failure		400				{object}	utils.Response					"Invalid payload"
//	@Failure		401				{object}	utils.Response					"Bad webhook key"
//	@Failure		404				{object}	utils.Response					"Unknown affiliate"
//	@Failure		409				{object}	utils.Response					"Customer already enrolled"
//	@Failure		422				{object}	utils.Response					"Commission mismatch or invalid amount"
//	@Failure		500				{object}	utils.Response					"Internal server error"
//	@Router			/api/webhooks/payment [post]
func (h *WebhookHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	if subtle.ConstantTimeCompare([]byte(r.Header.Get(KeyHeader)), []byte(h.webhookKey)) != 1 {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PaymentWebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment payload")
		return
	}

	params := enrollmentservice.CreateParams{
		CourseID:      req.CourseID,
		CustomerEmail: req.CustomerEmail,
		Amount:        req.Amount,
		PaymentID:     req.PaymentID,
		Status:        req.Status,
	}
	if req.AffiliateEmail != "" {
		params.Attribution = &enrollmentservice.AttributionParams{
			AffiliateEmail:   req.AffiliateEmail,
			CommissionRate:   req.CommissionRate,
			CommissionAmount: req.CommissionAmount,
		}
	}

	enrollment, err := h.enrollmentService.Create(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, enrollmentservice.ErrDuplicatePayment):
			// The gateway retried a delivery we already hold. Ack it so
			// the retries stop.
			utils.RespondWithJSON(w, http.StatusOK, dto.PaymentWebhookResponseDTO{
				Message: "payment already recorded",
			})
		case errors.Is(err, enrollmentservice.ErrDuplicateEnrollment):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, enrollmentservice.ErrUnknownAffiliate):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, enrollmentservice.ErrCommissionMismatch),
			errors.Is(err, enrollmentservice.ErrInvalidAmount),
			errors.Is(err, enrollmentservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentWebhookResponseDTO{
		Message:      "enrollment recorded",
		EnrollmentID: enrollment.ID,
	})
}
