package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/pg"
	affiliaterepo "github.com/coursepay/coursepay/internal/repo/affiliate-repo"
	courserepo "github.com/coursepay/coursepay/internal/repo/course-repo"
	enrollmentrepo "github.com/coursepay/coursepay/internal/repo/enrollment-repo"
	operatorrepo "github.com/coursepay/coursepay/internal/repo/operator-repo"
	payoutrepo "github.com/coursepay/coursepay/internal/repo/payout-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.OperatorRepo)
	assert.NotNil(t, repo.AffiliateRepo)
	assert.NotNil(t, repo.EnrollmentRepo)
	assert.NotNil(t, repo.PayoutRepo)
	assert.NotNil(t, repo.CourseRepo)

	assert.IsType(t, &operatorrepo.Repository{}, repo.OperatorRepo)
	assert.IsType(t, &affiliaterepo.Repository{}, repo.AffiliateRepo)
	assert.IsType(t, &enrollmentrepo.Repository{}, repo.EnrollmentRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)
	assert.IsType(t, &courserepo.Repository{}, repo.CourseRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
