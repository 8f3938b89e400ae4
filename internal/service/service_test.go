package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/pg"
	"github.com/coursepay/coursepay/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	services := New(repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.EnrollmentService)
	assert.NotNil(t, services.AffiliateService)
	assert.NotNil(t, services.PayoutService)
	assert.NotNil(t, services.AuditService)
	assert.NotNil(t, services.CourseService)
}
