package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/dto"
	"github.com/coursepay/coursepay/internal/service/payoutservice"
	"github.com/coursepay/coursepay/pkg/auth"
	"github.com/coursepay/coursepay/pkg/utils"
	"github.com/coursepay/coursepay/pkg/validate"
)

type Service interface {
	Process(ctx context.Context, params payoutservice.ProcessParams) (*domain.Payout, error)
	GetPayouts(ctx context.Context, affiliateEmail string) ([]domain.Payout, error)
	GetPayout(ctx context.Context, payoutID int) (*domain.Payout, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService}
}

func toPayoutDTO(p *domain.Payout) dto.PayoutResponseDTO {
	response := dto.PayoutResponseDTO{
		ID:             p.ID,
		Reference:      p.Reference,
		AffiliateEmail: p.AffiliateEmail,
		Amount:         p.Amount,
		Currency:       p.Currency,
		PayoutMethod:   p.PayoutMethod,
		ExternalTxID:   p.ExternalTxID,
		ProofLink:      p.ProofLink,
		ProcessedBy:    p.ProcessedBy,
		ProcessedAt:    p.ProcessedAt,
		Status:         p.Status,
		LineItemCount:  p.LineItemCount,
		PeriodStart:    p.PeriodStart,
		PeriodEnd:      p.PeriodEnd,
	}
	for _, item := range p.LineItems {
		response.LineItems = append(response.LineItems, dto.PayoutLineItemDTO{
			EnrollmentID:     item.EnrollmentID,
			CommissionAmount: item.CommissionAmount,
			CourseID:         item.CourseID,
			CustomerEmail:    item.CustomerEmail,
			EnrolledAt:       item.EnrolledAt,
		})
	}
	return response
}

// Process godoc
//
//	@Summary		Process a payout
//	@Description	Pay out every unpaid eligible commission for the affiliate in one transaction. Re-derives the unpaid set under lock so a commission is never paid twice.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Param			request	body		dto.ProcessPayoutRequestDTO	true	"Payout payload"
//	@Success		201		{object}	dto.PayoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		409		{object}	utils.Response	"Nothing to pay out"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/payouts [post]
func (h *PayoutHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessPayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout payload")
		return
	}

	processedBy, _ := r.Context().Value(auth.OperatorLoginKey).(string)
	if processedBy == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Operator not authorized")
		return
	}

	params := payoutservice.ProcessParams{
		AffiliateEmail: chi.URLParam(r, "email"),
		PayoutMethod:   req.PayoutMethod,
		Currency:       req.Currency,
		ExternalTxID:   req.ExternalTxID,
		ProofLink:      req.ProofLink,
		ProcessedBy:    processedBy,
		PeriodStart:    req.PeriodStart,
		PeriodEnd:      req.PeriodEnd,
	}
	payout, err := h.payoutService.Process(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrAffiliateNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, payoutservice.ErrNothingToPayout):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, payoutservice.ErrMissingMethod),
			errors.Is(err, payoutservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			zap.L().Error("payout failed", zap.String("affiliate", params.AffiliateEmail), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPayoutDTO(payout))
}

// History godoc
//
//	@Summary		List payouts
//	@Description	Payout history for the affiliate, newest first.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Success		200		{array}		dto.PayoutResponseDTO
//	@Success		204		{object}	utils.Response	"No payouts"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/payouts [get]
func (h *PayoutHandler) History(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payoutService.GetPayouts(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		if errors.Is(err, payoutservice.ErrAffiliateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(payouts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payouts not found")
		return
	}

	response := make([]dto.PayoutResponseDTO, len(payouts))
	for i := range payouts {
		response[i] = toPayoutDTO(&payouts[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Detail godoc
//
//	@Summary		Get a payout
//	@Description	A single payout record with its commission line items.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Param			id		path		int		true	"Payout id"
//	@Success		200		{object}	dto.PayoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payout id"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Payout not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/payouts/{id} [get]
func (h *PayoutHandler) Detail(w http.ResponseWriter, r *http.Request) {
	payoutID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout id")
		return
	}

	payout, err := h.payoutService.GetPayout(r.Context(), payoutID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if payout == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Payout not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}
