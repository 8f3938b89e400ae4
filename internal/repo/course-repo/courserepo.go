package courserepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, courseID string) (*domain.Course, error) {
	query := `
        SELECT id, title, price, enrollment_count
        FROM courses
        WHERE id = $1
    `
	var course domain.Course
	err := r.db.QueryRow(ctx, query, courseID).Scan(&course.ID, &course.Title, &course.Price, &course.EnrollmentCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find course", zap.Error(err))
		return nil, err
	}
	return &course, nil
}

func (r *Repository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	query := `
        INSERT INTO courses (id, title, price)
        VALUES ($1, $2, $3)
        RETURNING id, title, price, enrollment_count
    `
	var created domain.Course
	err := r.db.QueryRow(ctx, query, course.ID, course.Title, course.Price).
		Scan(&created.ID, &created.Title, &created.Price, &created.EnrollmentCount)
	if err != nil {
		zap.L().Error("can't create course", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Course, error) {
	query := `
        SELECT id, title, price, enrollment_count
        FROM courses
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list courses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		err := rows.Scan(&course.ID, &course.Title, &course.Price, &course.EnrollmentCount)
		if err != nil {
			zap.L().Error("can't scan course row", zap.Error(err))
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// IncrementEnrollmentCount bumps the materialized counter. The enrollments
// table remains the source of truth; this is a projection only.
func (r *Repository) IncrementEnrollmentCount(ctx context.Context, courseID string) error {
	query := `
        UPDATE courses
        SET enrollment_count = enrollment_count + 1
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, courseID)
	if err != nil {
		zap.L().Error("can't increment course enrollment count", zap.Error(err))
		return err
	}
	return nil
}
