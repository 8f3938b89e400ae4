package affiliates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/dto"
	"github.com/coursepay/coursepay/internal/service/affiliateservice"
	"github.com/coursepay/coursepay/pkg/utils"
	"github.com/coursepay/coursepay/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, email, name string, commissionRate float64) (*domain.Affiliate, error)
	Get(ctx context.Context, email string) (*domain.Affiliate, error)
	List(ctx context.Context) ([]domain.Affiliate, error)
	RefreshAggregate(ctx context.Context, email string) (*domain.Affiliate, error)
	GetUnpaidSummary(ctx context.Context, email string, from, to *time.Time) (*domain.UnpaidSummary, error)
}

type EnrollmentService interface {
	GetAffiliateEnrollments(ctx context.Context, affiliateID int) ([]domain.Enrollment, error)
}

type AffiliateHandler struct {
	affiliateService  Service
	enrollmentService EnrollmentService
}

func New(affiliateService Service, enrollmentService EnrollmentService) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateService:  affiliateService,
		enrollmentService: enrollmentService,
	}
}

func toAffiliateDTO(a *domain.Affiliate) dto.AffiliateResponseDTO {
	return dto.AffiliateResponseDTO{
		ID:                 a.ID,
		Email:              a.Email,
		Name:               a.Name,
		CommissionRate:     a.CommissionRate,
		TotalPaid:          a.TotalPaid,
		PendingCommissions: a.PendingCommissions,
		TotalReferrals:     a.TotalReferrals,
		LastPayoutDate:     a.LastPayoutDate,
	}
}

// Create godoc
//
//	@Summary		Register an affiliate
//	@Description	Create an affiliate account with a default commission rate. The email doubles as the referral identifier.
//	@Tags			Affiliates
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAffiliateRequestDTO	true	"Affiliate payload"
//	@Success		201		{object}	dto.AffiliateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		409		{object}	utils.Response	"Affiliate already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates [post]
func (h *AffiliateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAffiliateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid affiliate payload")
		return
	}

	affiliate, err := h.affiliateService.Register(r.Context(), req.Email, req.Name, req.CommissionRate)
	if err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrAffiliateExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, affiliateservice.ErrInvalidEmail),
			errors.Is(err, affiliateservice.ErrInvalidRate):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAffiliateDTO(affiliate))
}

// Get godoc
//
//	@Summary		Get affiliate aggregate
//	@Description	Retrieve the affiliate's running totals: pending commissions, total paid, referral count.
//	@Tags			Affiliates
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Success		200		{object}	dto.AffiliateResponseDTO
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email} [get]
func (h *AffiliateHandler) Get(w http.ResponseWriter, r *http.Request) {
	affiliate, err := h.affiliateService.Get(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		if errors.Is(err, affiliateservice.ErrAffiliateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAffiliateDTO(affiliate))
}

// List godoc
//
//	@Summary	List affiliates
//	@Tags		Affiliates
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AffiliateResponseDTO
//	@Failure	401	{object}	utils.Response	"Operator not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/affiliates [get]
func (h *AffiliateHandler) List(w http.ResponseWriter, r *http.Request) {
	affiliates, err := h.affiliateService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.AffiliateResponseDTO, len(affiliates))
	for i := range affiliates {
		response[i] = toAffiliateDTO(&affiliates[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Refresh godoc
//
//	@Summary		Refresh affiliate aggregate
//	@Description	Recompute pending commissions and referral counts from the enrollment ledger. Total paid is never touched here.
//	@Tags			Affiliates
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Success		200		{object}	dto.AffiliateResponseDTO
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/refresh [post]
func (h *AffiliateHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	affiliate, err := h.affiliateService.RefreshAggregate(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		if errors.Is(err, affiliateservice.ErrAffiliateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAffiliateDTO(affiliate))
}

// UnpaidSummary godoc
//
//	@Summary		Get unpaid commission summary
//	@Description	Sum the affiliate's paid, eligible, not-yet-paid-out commissions, optionally bounded by enrollment date (RFC 3339).
//	@Tags			Affiliates
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Param			from	query		string	false	"Period start (RFC 3339)"
//	@Param			to		query		string	false	"Period end (RFC 3339)"
//	@Success		200		{object}	dto.UnpaidSummaryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid period bound"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/unpaid-summary [get]
func (h *AffiliateHandler) UnpaidSummary(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimeParam(r, "from")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid 'from' bound")
		return
	}
	to, err := parseTimeParam(r, "to")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid 'to' bound")
		return
	}

	summary, err := h.affiliateService.GetUnpaidSummary(r.Context(), chi.URLParam(r, "email"), from, to)
	if err != nil {
		if errors.Is(err, affiliateservice.ErrAffiliateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.UnpaidSummaryResponseDTO{
		AffiliateEmail:   summary.AffiliateEmail,
		CommissionsCount: summary.CommissionsCount,
		TotalCommission:  summary.TotalCommission,
	}
	for _, item := range summary.Items {
		response.Items = append(response.Items, dto.UnpaidSummaryItemDTO{
			EnrollmentID:     item.EnrollmentID,
			CommissionAmount: item.CommissionAmount,
			CourseID:         item.CourseID,
			CustomerEmail:    item.CustomerEmail,
			EnrolledAt:       item.EnrolledAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Enrollments godoc
//
//	@Summary		List affiliate enrollments
//	@Description	Paid enrollments attributed to the affiliate, oldest first.
//	@Tags			Affiliates
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Success		200		{array}		dto.EnrollmentResponseDTO
//	@Success		204		{object}	utils.Response	"No enrollments"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/enrollments [get]
func (h *AffiliateHandler) Enrollments(w http.ResponseWriter, r *http.Request) {
	affiliate, err := h.affiliateService.Get(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		if errors.Is(err, affiliateservice.ErrAffiliateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	enrollments, err := h.enrollmentService.GetAffiliateEnrollments(r.Context(), affiliate.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}
	if len(enrollments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Enrollments not found")
		return
	}

	response := make([]dto.EnrollmentResponseDTO, len(enrollments))
	for i, e := range enrollments {
		response[i] = dto.EnrollmentResponseDTO{
			ID:            e.ID,
			CourseID:      e.CourseID,
			CustomerEmail: e.CustomerEmail,
			Amount:        e.Amount,
			PaymentID:     e.PaymentID,
			Status:        e.Status,
			CreatedAt:     e.CreatedAt,
		}
		if attr := e.Attribution; attr != nil {
			response[i].Attribution = &dto.AttributionDTO{
				AffiliateEmail:   attr.AffiliateEmail,
				CommissionRate:   attr.CommissionRate,
				CommissionAmount: attr.CommissionAmount,
				Eligible:         attr.Eligible,
				Paid:             attr.Paid,
				PaidAt:           attr.PaidAt,
				PayoutID:         attr.PayoutID,
			}
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
