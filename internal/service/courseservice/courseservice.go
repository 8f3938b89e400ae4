package courseservice

import (
	"context"
	"errors"

	"github.com/coursepay/coursepay/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, courseID string) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	IncrementEnrollmentCount(ctx context.Context, courseID string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrCourseExists = errors.New("course already exists")

func (s *Service) Create(ctx context.Context, courseID, title string, price float64) (*domain.Course, error) {
	existing, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCourseExists
	}

	course, err := s.repo.Create(ctx, &domain.Course{ID: courseID, Title: title, Price: price})
	if err != nil {
		zap.L().Error("can't create course", zap.Error(err))
		return nil, err
	}
	return course, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list courses", zap.Error(err))
		return nil, err
	}
	return courses, nil
}

// EnrollmentRecorded bumps the course's counter projection.
func (s *Service) EnrollmentRecorded(ctx context.Context, courseID string) error {
	return s.repo.IncrementEnrollmentCount(ctx, courseID)
}
