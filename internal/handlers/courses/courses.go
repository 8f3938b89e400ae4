package courses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/dto"
	"github.com/coursepay/coursepay/internal/service/courseservice"
	"github.com/coursepay/coursepay/pkg/utils"
	"github.com/coursepay/coursepay/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, courseID, title string, price float64) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
}

type CourseHandler struct {
	courseService Service
}

func New(courseService Service) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// Create godoc
//
//	@Summary	Create a course
//	@Tags		Courses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateCourseRequestDTO	true	"Course payload"
//	@Success	201		{object}	dto.CourseResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	401		{object}	utils.Response	"Operator not authorized"
//	@Failure	409		{object}	utils.Response	"Course already exists"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/courses [post]
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCourseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid course payload")
		return
	}

	course, err := h.courseService.Create(r.Context(), req.ID, req.Title, req.Price)
	if err != nil {
		if errors.Is(err, courseservice.ErrCourseExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CourseResponseDTO{
		ID:              course.ID,
		Title:           course.Title,
		Price:           course.Price,
		EnrollmentCount: course.EnrollmentCount,
	})
}

// List godoc
//
//	@Summary	List courses
//	@Tags		Courses
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.CourseResponseDTO
//	@Failure	401	{object}	utils.Response	"Operator not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.CourseResponseDTO, len(courses))
	for i, c := range courses {
		response[i] = dto.CourseResponseDTO{
			ID:              c.ID,
			Title:           c.Title,
			Price:           c.Price,
			EnrollmentCount: c.EnrollmentCount,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
