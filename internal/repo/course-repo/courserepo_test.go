package courserepo

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/coursepay/coursepay/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "title", "price", "enrollment_count"}).
		AddRow("go-fundamentals", "Go Fundamentals", 100.0, 42)
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
		WithArgs("go-fundamentals").
		WillReturnRows(rows)

	course, err := repo.FindByID(context.Background(), "go-fundamentals")
	assert.NoError(t, err)
	assert.Equal(t, 42, course.EnrollmentCount)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	course, err = repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, course)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "title", "price", "enrollment_count"}).
		AddRow("go-fundamentals", "Go Fundamentals", 100.0, 0)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO courses")).
		WithArgs("go-fundamentals", "Go Fundamentals", 100.0).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), &domain.Course{
		ID:    "go-fundamentals",
		Title: "Go Fundamentals",
		Price: 100,
	})
	assert.NoError(t, err)
	assert.Equal(t, "go-fundamentals", created.ID)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "title", "price", "enrollment_count"}).
		AddRow("go-advanced", "Go Advanced", 200.0, 5).
		AddRow("go-fundamentals", "Go Fundamentals", 100.0, 42)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id ASC")).
		WillReturnRows(rows)

	courses, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestRepository_IncrementEnrollmentCount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET enrollment_count = enrollment_count + 1")).
		WithArgs("go-fundamentals").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.IncrementEnrollmentCount(context.Background(), "go-fundamentals"))
}
