package enrollments

import (
	"context"
	"net/http"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/dto"
	"github.com/coursepay/coursepay/pkg/utils"
)

type Service interface {
	GetEnrollments(ctx context.Context) ([]domain.Enrollment, error)
}

type EnrollmentHandler struct {
	enrollmentService Service
}

func New(enrollmentService Service) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// List godoc
//
//	@Summary		List enrollments
//	@Description	Every ledger entry, newest first, with attribution when present.
//	@Tags			Enrollments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.EnrollmentResponseDTO
//	@Success		204	{object}	utils.Response	"No enrollments"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/enrollments [get]
func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.enrollmentService.GetEnrollments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
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
			LMSStatus:     e.LMSStatus,
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
