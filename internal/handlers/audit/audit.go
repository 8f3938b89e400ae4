package audit

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coursepay/coursepay/internal/dto"
	"github.com/coursepay/coursepay/internal/service/auditservice"
	"github.com/coursepay/coursepay/pkg/utils"
)

type Service interface {
	Validate(ctx context.Context, email string) (*auditservice.Report, error)
	Recalculate(ctx context.Context, email string) (*auditservice.RecalcResult, error)
}

type AuditHandler struct {
	auditService Service
}

func New(auditService Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func toTotalsDTO(t auditservice.Totals) dto.AuditTotalsDTO {
	return dto.AuditTotalsDTO{
		TotalPaid:          t.TotalPaid,
		PendingCommissions: t.PendingCommissions,
	}
}

// Validate godoc
//
//	@Summary		Audit affiliate totals
//	@Description	Compare the affiliate's stored aggregate against totals recomputed from the enrollment ledger and payout history. Read-only.
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Success		200		{object}	dto.AuditReportResponseDTO
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/audit [get]
func (h *AuditHandler) Validate(w http.ResponseWriter, r *http.Request) {
	report, err := h.auditService.Validate(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		if errors.Is(err, auditservice.ErrAffiliateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuditReportResponseDTO{
		AffiliateEmail: report.AffiliateEmail,
		IsConsistent:   report.IsConsistent,
		Stored:         toTotalsDTO(report.Stored),
		Calculated:     toTotalsDTO(report.Calculated),
		Discrepancy:    toTotalsDTO(report.Discrepancy),
	})
}

// Recalculate godoc
//
//	@Summary		Repair affiliate totals
//	@Description	Overwrite the stored aggregate with totals recomputed from the ledger. No-op when the drift is within tolerance.
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"Affiliate email"
//	@Success		200		{object}	dto.RecalculateResponseDTO
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliates/{email}/audit/recalculate [post]
func (h *AuditHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	result, err := h.auditService.Recalculate(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		if errors.Is(err, auditservice.ErrAffiliateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecalculateResponseDTO{
		Updated: result.Updated,
		Before:  toTotalsDTO(result.Before),
		After:   toTotalsDTO(result.After),
	})
}
